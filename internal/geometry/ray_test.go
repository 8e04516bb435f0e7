package geometry

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRayIntersect(t *testing.T) {
	tests := []struct {
		name     string
		ray      Ray
		shape    Shape
		distance float32
		normal   rl.Vector3
	}{
		{"box front face", NewRay(vec3(0, 0, -5), vec3(0, 0, 1)), NewAABBasOBB(vec3(0, 0, 0), vec3(1, 1, 1)), 4.5, vec3(0, 0, -1)},
		{"aabb top face", NewRay(vec3(0, 10, 0), vec3(0, -1, 0)), NewAABBFromCenter(vec3(0, 0, 0), vec3(2, 2, 2)), 9, vec3(0, 1, 0)},
		{"box from inside", NewRay(vec3(0, 0, 0), vec3(1, 0, 0)), NewAABBasOBB(vec3(0, 0, 0), vec3(2, 2, 2)), 1, vec3(1, 0, 0)},
		{"sphere", NewRay(vec3(0, 0, -5), vec3(0, 0, 2)), NewSphere(vec3(0, 0, 0), 1), 4, vec3(0, 0, -1)},
		{"sphere from inside", NewRay(vec3(0, 0, 0), vec3(0, 0, 1)), NewSphere(vec3(0, 0, 0), 1), 1, vec3(0, 0, 1)},
		{"plane", NewRay(vec3(0, 5, 0), vec3(0, -1, 0)), NewPlane(vec3(0, 1, 0), 0), 5, vec3(0, 1, 0)},
		{"cylinder cap", NewRay(vec3(0, 5, 0), vec3(0, -1, 0)), NewCylinder(vec3(0, 0, 0), vec3(0, 1, 0), 1, 2), 4, vec3(0, 1, 0)},
		{"cylinder side", NewRay(vec3(5, 0, 0), vec3(-1, 0, 0)), NewCylinder(vec3(0, 0, 0), vec3(0, 1, 0), 1, 2), 4, vec3(1, 0, 0)},
		{"capsule end", NewRay(vec3(0, 5, 0), vec3(0, -1, 0)), NewCapsule(vec3(0, 0, 0), vec3(0, 1, 0), 0.5, 2), 3.5, vec3(0, 1, 0)},
		{"capsule side", NewRay(vec3(5, 0, 0), vec3(-1, 0, 0)), NewCapsule(vec3(0, 0, 0), vec3(0, 1, 0), 0.5, 2), 4.5, vec3(1, 0, 0)},
		{"cone side", NewRay(vec3(5, 0, 0), vec3(-1, 0, 0)), NewCone(vec3(0, 0, 0), vec3(0, 1, 0), 1, 2), 4.5, vec3(0.894427, 0.447214, 0)},
		{"cone base", NewRay(vec3(0, -5, 0), vec3(0, 1, 0)), NewCone(vec3(0, 0, 0), vec3(0, 1, 0), 1, 2), 4, vec3(0, -1, 0)},
		{"disc", NewRay(vec3(0.5, 3, 0), vec3(0, -1, 0)), NewCircle(vec3(0, 0, 0), vec3(0, 1, 0), 1), 3, vec3(0, 1, 0)},
		{"polygon", NewRay(vec3(0, 3, 0), vec3(0, -1, 0)), unitSquare(), 3, vec3(0, 1, 0)},
	}
	for _, tt := range tests {
		hit, ok := RayIntersect(tt.ray, tt.shape)
		if !ok {
			t.Errorf("%s: expected a hit", tt.name)
			continue
		}
		if !near(hit.Distance, tt.distance, 1e-3) {
			t.Errorf("%s: expected distance %f, got %f", tt.name, tt.distance, hit.Distance)
		}
		if !nearVec(hit.Normal, tt.normal, 1e-3) {
			t.Errorf("%s: expected normal %v, got %v", tt.name, tt.normal, hit.Normal)
		}
		if !nearVec(hit.Point, tt.ray.At(hit.Distance), 1e-4) {
			t.Errorf("%s: hit point %v is not on the ray", tt.name, hit.Point)
		}
	}
}

func TestRayMisses(t *testing.T) {
	tests := []struct {
		name  string
		ray   Ray
		shape Shape
	}{
		{"box behind", NewRay(vec3(0, 0, 5), vec3(0, 0, 1)), NewAABBasOBB(vec3(0, 0, 0), vec3(1, 1, 1))},
		{"box beside", NewRay(vec3(2, 0, -5), vec3(0, 0, 1)), NewAABBasOBB(vec3(0, 0, 0), vec3(1, 1, 1))},
		{"sphere beside", NewRay(vec3(0, 2, -5), vec3(0, 0, 1)), NewSphere(vec3(0, 0, 0), 1)},
		{"plane parallel", NewRay(vec3(0, 1, 0), vec3(1, 0, 0)), NewPlane(vec3(0, 1, 0), 0)},
		{"plane facing away", NewRay(vec3(0, 1, 0), vec3(0, 1, 0)), NewPlane(vec3(0, 1, 0), 0)},
		{"disc outside rim", NewRay(vec3(2, 3, 0), vec3(0, -1, 0)), NewCircle(vec3(0, 0, 0), vec3(0, 1, 0), 1)},
		{"polygon outside", NewRay(vec3(3, 3, 0), vec3(0, -1, 0)), unitSquare()},
		{"cylinder above", NewRay(vec3(5, 3, 0), vec3(-1, 0, 0)), NewCylinder(vec3(0, 0, 0), vec3(0, 1, 0), 1, 2)},
	}
	for _, tt := range tests {
		if hit, ok := RayIntersect(tt.ray, tt.shape); ok {
			t.Errorf("%s: expected a miss, got hit at distance %f", tt.name, hit.Distance)
		}
	}
}

func TestFromRaylib(t *testing.T) {
	r := FromRaylib(rl.Ray{Position: vec3(1, 2, 3), Direction: vec3(0, 0, 5)})
	expectVec(t, "origin", r.Origin, vec3(1, 2, 3))
	expectVec(t, "direction", r.Direction, vec3(0, 0, 1))
	expectVec(t, "point at 2", r.At(2), vec3(1, 2, 5))
}
