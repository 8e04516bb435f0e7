package physics

import (
	"strings"
	"testing"

	"collide3d/internal/geometry"
)

func TestManifoldAddContactClamps(t *testing.T) {
	var m Manifold
	for i := 0; i < MaxContacts; i++ {
		if !m.AddContact(vec3(float32(i), 0, 0), 0.1) {
			t.Fatalf("Expected contact %d to be accepted", i)
		}
	}
	if m.AddContact(vec3(9, 9, 9), 1) {
		t.Error("Expected a fifth contact to be rejected")
	}
	if m.ContactCount != MaxContacts {
		t.Errorf("Expected %d contacts, got %d", MaxContacts, m.ContactCount)
	}
	if m.MaxDepth() != 0.1 {
		t.Errorf("Expected max depth 0.1, got %f", m.MaxDepth())
	}
}

func TestManifoldFlip(t *testing.T) {
	a := newBody("a", geometry.NewSphere(vec3(0, 0, 0), 1))
	b := newBody("b", geometry.NewSphere(vec3(1, 0, 0), 1))
	m := Manifold{Normal: vec3(1, 0, 0), Bodies: [2]*Rigidbody{a, b}}
	m.AddContact(vec3(0.5, 0, 0), 1)

	m.flip()

	if m.Bodies[0] != b || m.Bodies[1] != a {
		t.Error("Expected bodies to swap")
	}
	if m.Normal != vec3(-1, 0, 0) {
		t.Errorf("Expected negated normal, got %v", m.Normal)
	}
	if m.Points()[0].Point != vec3(0.5, 0, 0) {
		t.Error("Contact points should not move")
	}
}

func TestManifoldString(t *testing.T) {
	a := newBody("crate", geometry.NewAABBFromCenter(vec3(0, 0, 0), vec3(1, 1, 1)))
	b := newBody("", geometry.NewSphere(vec3(0, 1, 0), 1))
	m := Manifold{Normal: vec3(0, 1, 0), Bodies: [2]*Rigidbody{a, b}}
	m.AddContact(vec3(0, 0.5, 0), 0.5)

	s := m.String()
	if !strings.Contains(s, "crate -> Sphere") {
		t.Errorf("Expected body names in %q", s)
	}
	if !strings.Contains(s, "depth=0.5000") {
		t.Errorf("Expected contact depth in %q", s)
	}
}
