package physics

import "testing"

func TestRegistryPointerStability(t *testing.T) {
	reg := NewRegistry()
	first := reg.Generate(nil, nil)
	first.ContactCount = 3

	for i := 0; i < registryChunkSize*3; i++ {
		reg.Generate(nil, nil)
	}

	if reg.At(0) != first {
		t.Error("Manifold moved after the registry grew")
	}
	if first.ContactCount != 3 {
		t.Errorf("Expected manifold contents to survive growth, got %d contacts", first.ContactCount)
	}
	if reg.Count() != registryChunkSize*3+1 {
		t.Errorf("Expected %d manifolds, got %d", registryChunkSize*3+1, reg.Count())
	}
	if len(reg.Manifolds()) != reg.Count() {
		t.Errorf("Expected Manifolds to list %d entries, got %d", reg.Count(), len(reg.Manifolds()))
	}
}

func TestRegistryReset(t *testing.T) {
	reg := NewRegistry()
	m := reg.Generate(nil, nil)
	m.AddContact(vec3(1, 1, 1), 1)

	reg.Reset()
	if reg.Count() != 0 {
		t.Errorf("Expected empty registry after Reset, got %d", reg.Count())
	}

	reused := reg.Generate(nil, nil)
	if reused.ContactCount != 0 {
		t.Errorf("Expected a zeroed manifold after Reset, got %d contacts", reused.ContactCount)
	}
}

func TestRegistryAtOutOfRange(t *testing.T) {
	reg := NewRegistry()
	reg.Generate(nil, nil)

	defer func() {
		if recover() == nil {
			t.Error("Expected At past Count to panic")
		}
	}()
	reg.At(1)
}

func TestRegistryTruncate(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 5; i++ {
		reg.Generate(nil, nil)
	}
	reg.truncate(2)
	if reg.Count() != 2 {
		t.Errorf("Expected 2 manifolds after truncate, got %d", reg.Count())
	}
	reg.truncate(10)
	if reg.Count() != 2 {
		t.Errorf("Expected truncate past Count to be a no-op, got %d", reg.Count())
	}
}
