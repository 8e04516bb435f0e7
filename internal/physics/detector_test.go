package physics

import (
	"testing"

	"collide3d/internal/geometry"
)

type recordingListener struct {
	enters []Pair
	exits  []Pair
}

func (l *recordingListener) OnCollisionEnter(a, b *Rigidbody) {
	l.enters = append(l.enters, makePair(a, b))
}

func (l *recordingListener) OnCollisionExit(a, b *Rigidbody) {
	l.exits = append(l.exits, makePair(a, b))
}

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	d, err := NewDetector()
	if err != nil {
		t.Fatalf("NewDetector failed: %v", err)
	}
	return d
}

func TestDetectorStep(t *testing.T) {
	d := newTestDetector(t)
	floor := ground()
	resting := newBody("resting", geometry.NewSphere(vec3(0, 0.8, 0), 1))
	far := newBody("far", geometry.NewSphere(vec3(10, 5, 0), 1))

	n := d.Step([]*Rigidbody{floor, resting, far})
	if n != 1 {
		t.Errorf("Expected 1 manifold, got %d", n)
	}

	stats := d.Stats()
	if stats.PairsTested != 3 {
		t.Errorf("Expected 3 pairs tested, got %d", stats.PairsTested)
	}
	if stats.Colliding != 1 || stats.Manifolds != 1 {
		t.Errorf("Expected 1 colliding pair and 1 manifold, got %+v", stats)
	}

	m := d.Registry().At(0)
	if m.Bodies[0] != floor || m.Bodies[1] != resting {
		t.Errorf("Expected manifold for ground -> resting, got %v", m)
	}
	if !d.Touching(resting, floor) {
		t.Error("Expected Touching to report the pair in either order")
	}
	if d.Touching(floor, far) {
		t.Error("Expected far sphere not to touch the ground")
	}
}

func TestDetectorSkipRules(t *testing.T) {
	d := newTestDetector(t)

	wallA := newBody("wallA", geometry.NewAABBFromCenter(vec3(0, 0, 0), vec3(2, 2, 2)))
	wallA.Immovable = true
	wallB := newBody("wallB", geometry.NewAABBFromCenter(vec3(1, 0, 0), vec3(2, 2, 2)))
	wallB.Immovable = true

	d.Step([]*Rigidbody{wallA, wallB})
	if d.Stats().PairsSkipped != 1 || d.Stats().PairsTested != 0 {
		t.Errorf("Expected immovable pair to be skipped, got %+v", d.Stats())
	}

	sleeperA := newBody("sleeperA", geometry.NewSphere(vec3(0, 0, 0), 1))
	sleeperB := newBody("sleeperB", geometry.NewSphere(vec3(1, 0, 0), 1))
	sleeperA.Sleep()
	sleeperB.Sleep()

	if n := d.Step([]*Rigidbody{sleeperA, sleeperB}); n != 0 {
		t.Errorf("Expected sleeping pair to produce no manifolds, got %d", n)
	}

	sleeperB.Wake()
	if n := d.Step([]*Rigidbody{sleeperA, sleeperB}); n != 1 {
		t.Errorf("Expected one awake body to be enough, got %d manifolds", n)
	}

	// An awake immovable body is still tested against a sleeping one
	wallA.Wake()
	if n := d.Step([]*Rigidbody{wallA, sleeperA}); n != 1 {
		t.Errorf("Expected immovable/sleeping pair with an awake body to be tested, got %d", n)
	}
}

func TestDetectorIgnoresBodiesWithoutColliders(t *testing.T) {
	d := newTestDetector(t)
	ghost := NewRigidbody("ghost", nil)
	ball := newBody("ball", geometry.NewSphere(vec3(0, 0, 0), 1))

	if n := d.Step([]*Rigidbody{ghost, nil, ball}); n != 0 {
		t.Errorf("Expected no manifolds, got %d", n)
	}
	if d.Stats().PairsTested != 0 {
		t.Errorf("Expected no pairs tested, got %d", d.Stats().PairsTested)
	}
}

func TestDetectorCollisionCallbacks(t *testing.T) {
	d := newTestDetector(t)
	listener := &recordingListener{}
	d.SetListener(listener)

	floor := ground()
	ball := newBody("ball", geometry.NewSphere(vec3(0, 0.8, 0), 1))
	bodies := []*Rigidbody{floor, ball}

	d.Step(bodies)
	if len(listener.enters) != 1 || listener.enters[0] != makePair(floor, ball) {
		t.Fatalf("Expected one enter for ground/ball, got %v", listener.enters)
	}

	d.Step(bodies)
	if len(listener.enters) != 1 {
		t.Errorf("Expected no repeated enter while touching, got %d enters", len(listener.enters))
	}
	if len(listener.exits) != 0 {
		t.Errorf("Expected no exit while touching, got %d", len(listener.exits))
	}

	ball.Collider.Shape = geometry.NewSphere(vec3(0, 5, 0), 1)
	d.Step(bodies)
	if len(listener.exits) != 1 || listener.exits[0] != makePair(floor, ball) {
		t.Errorf("Expected one exit for ground/ball, got %v", listener.exits)
	}
	if d.Touching(floor, ball) {
		t.Error("Expected pair to stop touching")
	}
}

func TestDetectorRegistryValidUntilNextStep(t *testing.T) {
	d := newTestDetector(t)
	var bodies []*Rigidbody
	for i := 0; i < 30; i++ {
		bodies = append(bodies, newBody("ball", geometry.NewSphere(vec3(float32(i)*0.5, 0, 0), 1)))
	}

	n := d.Step(bodies)
	if n < registryChunkSize {
		t.Fatalf("Expected more than one registry chunk of manifolds, got %d", n)
	}
	first := d.Registry().At(0)
	last := d.Registry().At(n - 1)
	if first.ContactCount == 0 || last.ContactCount == 0 {
		t.Error("Expected every manifold to carry a contact")
	}
}

func TestMakePairIsOrderIndependent(t *testing.T) {
	a := newBody("a", geometry.NewSphere(vec3(0, 0, 0), 1))
	b := newBody("b", geometry.NewSphere(vec3(0, 0, 0), 1))
	if makePair(a, b) != makePair(b, a) {
		t.Error("Expected the same pair regardless of argument order")
	}
}
