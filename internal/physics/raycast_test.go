package physics

import (
	"testing"

	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRaycastClosestHit(t *testing.T) {
	crate := newBody("crate", geometry.NewAABBFromCenter(vec3(0, 0, 5), vec3(2, 2, 2)))
	far := newBody("far", geometry.NewSphere(vec3(0, 0, 10), 1))
	bodies := []*Rigidbody{far, crate}

	hit, ok := Raycast(bodies, vec3(0, 0, 0), vec3(0, 0, 1), 100)
	if !ok {
		t.Fatal("Expected the ray to hit something")
	}
	if hit.Body != crate {
		t.Errorf("Expected closest body crate, got %v", hit.Body)
	}
	if hit.Distance != 4 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if hit.Normal != vec3(0, 0, -1) {
		t.Errorf("Expected normal facing the ray, got %v", hit.Normal)
	}
}

func TestRaycastMaxDistance(t *testing.T) {
	ball := newBody("ball", geometry.NewSphere(vec3(0, 0, 10), 1))
	bodies := []*Rigidbody{ball}

	if _, ok := Raycast(bodies, vec3(0, 0, 0), vec3(0, 0, 1), 5); ok {
		t.Error("Expected hit beyond maxDistance to be ignored")
	}
	if _, ok := Raycast(bodies, vec3(0, 0, 0), vec3(0, 0, 1), 9); !ok {
		t.Error("Expected hit at exactly maxDistance to count")
	}
}

func TestRaycastSkipsTriggers(t *testing.T) {
	zone := newBody("zone", geometry.NewAABBFromCenter(vec3(0, 0, 3), vec3(2, 2, 2)))
	zone.Collider.IsTrigger = true
	wall := newBody("wall", geometry.NewPlane(vec3(0, 0, -1), -8))
	bodies := []*Rigidbody{zone, wall}

	hit, ok := Raycast(bodies, vec3(0, 0, 0), vec3(0, 0, 1), 100)
	if !ok {
		t.Fatal("Expected the ray to reach the wall")
	}
	if hit.Body != wall {
		t.Errorf("Expected trigger to be ignored, hit %v", hit.Body)
	}
	if !near(hit.Distance, 8, 1e-4) {
		t.Errorf("Expected distance 8, got %f", hit.Distance)
	}
}

func TestRaycastDegenerateDirection(t *testing.T) {
	ball := newBody("ball", geometry.NewSphere(vec3(0, 0, 0), 1))
	if _, ok := Raycast([]*Rigidbody{ball}, vec3(0, 0, -5), vec3(0, 0, 0), 100); ok {
		t.Error("Expected a zero direction to miss")
	}
}

func TestRaycastRay(t *testing.T) {
	drum := newBody("drum", geometry.NewCylinder(vec3(0, 0, 0), vec3(0, 1, 0), 1, 2))
	ray := rl.Ray{Position: vec3(0, 5, 0), Direction: vec3(0, -2, 0)}

	hit, ok := RaycastRay([]*Rigidbody{drum}, ray, 100)
	if !ok {
		t.Fatal("Expected the ray to hit the cylinder cap")
	}
	if !near(hit.Distance, 4, 1e-4) {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if !nearVec(hit.Point, vec3(0, 1, 0), 1e-4) {
		t.Errorf("Expected hit point on the top cap, got %v", hit.Point)
	}
}
