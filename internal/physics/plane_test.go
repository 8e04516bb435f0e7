package physics

import (
	"testing"

	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func ground() *Rigidbody {
	rb := newBody("ground", geometry.NewPlane(vec3(0, 1, 0), 0))
	rb.Immovable = true
	return rb
}

func TestPlaneSphere(t *testing.T) {
	ball := newBody("ball", geometry.NewSphere(vec3(0, 0.8, 0), 1))

	m, ok := collidePair(t, ground(), ball)
	if !ok {
		t.Fatal("Expected sphere sunk into the plane to collide")
	}
	expectManifold(t, "plane/sphere", m, vec3(0, 1, 0), 0.2, 1e-4)
	if p := m.Contacts[0].Point; !nearVec(p, vec3(0, -0.2, 0), 1e-4) {
		t.Errorf("Expected contact at the sphere's lowest point, got %v", p)
	}

	resting := newBody("resting", geometry.NewSphere(vec3(0, 1, 0), 1))
	if _, ok := collidePair(t, ground(), resting); ok {
		t.Error("Sphere exactly touching the plane should not collide")
	}
}

func TestPlaneBox(t *testing.T) {
	crate := newBody("crate", geometry.NewAABBFromCenter(vec3(0, 0.9, 0), vec3(2, 2, 2)))

	m, ok := collidePair(t, ground(), crate)
	if !ok {
		t.Fatal("Expected box sunk into the plane to collide")
	}
	if m.ContactCount != 4 {
		t.Errorf("Expected the 4 bottom corners, got %d contacts", m.ContactCount)
	}
	expectManifold(t, "plane/box", m, vec3(0, 1, 0), 0.1, 1e-4)

	floating := newBody("floating", geometry.NewOBB(vec3(0, 3, 0), vec3(1, 1, 1), vec3(0, 45, 0)))
	if _, ok := collidePair(t, ground(), floating); ok {
		t.Error("Box above the plane should not collide")
	}
}

func TestPlaneCapsule(t *testing.T) {
	lying := newBody("lying", geometry.NewCapsule(vec3(0, 0.4, 0), vec3(1, 0, 0), 0.5, 2))

	m, ok := collidePair(t, ground(), lying)
	if !ok {
		t.Fatal("Expected lying capsule to collide")
	}
	if m.ContactCount != 2 {
		t.Errorf("Expected one contact per hemisphere, got %d", m.ContactCount)
	}
	expectManifold(t, "plane/capsule", m, vec3(0, 1, 0), 0.1, 1e-4)
}

func TestPlaneCylinder(t *testing.T) {
	standing := newBody("standing", geometry.NewCylinder(vec3(0, 0.9, 0), vec3(0, 1, 0), 1, 2))
	m, ok := collidePair(t, ground(), standing)
	if !ok {
		t.Fatal("Expected standing cylinder to collide")
	}
	if m.ContactCount != 4 {
		t.Errorf("Expected 4 rim points on the bottom cap, got %d", m.ContactCount)
	}
	expectManifold(t, "standing cylinder", m, vec3(0, 1, 0), 0.1, 1e-4)

	lying := newBody("lying", geometry.NewCylinder(vec3(0, 0.9, 0), vec3(1, 0, 0), 1, 2))
	m, ok = collidePair(t, ground(), lying)
	if !ok {
		t.Fatal("Expected lying cylinder to collide")
	}
	if m.ContactCount != 2 {
		t.Errorf("Expected one rim point per cap, got %d", m.ContactCount)
	}
	expectManifold(t, "lying cylinder", m, vec3(0, 1, 0), 0.1, 1e-4)
}

func TestPlaneCone(t *testing.T) {
	upright := newBody("upright", geometry.NewCone(vec3(0, 0.9, 0), vec3(0, 1, 0), 1, 2))
	m, ok := collidePair(t, ground(), upright)
	if !ok {
		t.Fatal("Expected cone standing on its base to collide")
	}
	if m.ContactCount != 4 {
		t.Errorf("Expected 4 base rim points, got %d", m.ContactCount)
	}
	expectManifold(t, "upright cone", m, vec3(0, 1, 0), 0.1, 1e-4)

	inverted := newBody("inverted", geometry.NewCone(vec3(0, 0.9, 0), vec3(0, -1, 0), 1, 2))
	m, ok = collidePair(t, ground(), inverted)
	if !ok {
		t.Fatal("Expected cone standing on its apex to collide")
	}
	if m.ContactCount != 1 {
		t.Errorf("Expected only the apex, got %d contacts", m.ContactCount)
	}
	if p := m.Contacts[0].Point; !nearVec(p, vec3(0, -0.1, 0), 1e-4) {
		t.Errorf("Expected apex contact at (0, -0.1, 0), got %v", p)
	}
}

func TestPlaneCircle(t *testing.T) {
	upright := newBody("coin", geometry.NewCircle(vec3(0, 0.5, 0), vec3(1, 0, 0), 1))
	m, ok := collidePair(t, ground(), upright)
	if !ok {
		t.Fatal("Expected upright disc to collide")
	}
	expectManifold(t, "plane/circle", m, vec3(0, 1, 0), 0.5, 1e-4)
}

func TestPlanePolygon(t *testing.T) {
	tilted := newBody("ramp", geometry.NewPolygon([]rl.Vector3{
		vec3(-1, -0.2, -1),
		vec3(-1, -0.2, 1),
		vec3(1, 0.2, 1),
		vec3(1, 0.2, -1),
	}))
	m, ok := collidePair(t, ground(), tilted)
	if !ok {
		t.Fatal("Expected tilted polygon to collide")
	}
	if m.ContactCount != 2 {
		t.Errorf("Expected the 2 low vertices, got %d", m.ContactCount)
	}
	expectManifold(t, "plane/polygon", m, vec3(0, 1, 0), 0.2, 1e-4)
}

func TestPlanePlaneNeverCollides(t *testing.T) {
	tilted := newBody("tilted", geometry.NewPlane(vec3(1, 1, 0), 0))
	if _, ok := collidePair(t, ground(), tilted); ok {
		t.Error("Planes should never collide")
	}
}

func TestPlaneMirroredOrder(t *testing.T) {
	ball := newBody("ball", geometry.NewSphere(vec3(0, 0.8, 0), 1))
	floor := ground()

	m, ok := collidePair(t, ball, floor)
	if !ok {
		t.Fatal("Expected sphere and plane to collide in either order")
	}
	expectManifold(t, "sphere/plane", m, vec3(0, -1, 0), 0.2, 1e-4)
}
