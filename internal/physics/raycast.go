package physics

import (
	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Body     *Rigidbody
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast checks for intersection with all collidable bodies and returns the closest
// hit no further than maxDistance. Trigger colliders are ignored.
func Raycast(bodies []*Rigidbody, origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	if lengthSq(direction) < geometry.Epsilon*geometry.Epsilon {
		return RaycastHit{}, false
	}
	return raycast(bodies, geometry.NewRay(origin, direction), maxDistance)
}

// RaycastRay is Raycast for a raylib ray, as produced by rl.GetScreenToWorldRay.
func RaycastRay(bodies []*Rigidbody, r rl.Ray, maxDistance float32) (RaycastHit, bool) {
	if lengthSq(r.Direction) < geometry.Epsilon*geometry.Epsilon {
		return RaycastHit{}, false
	}
	return raycast(bodies, geometry.FromRaylib(r), maxDistance)
}

func raycast(bodies []*Rigidbody, ray geometry.Ray, maxDistance float32) (RaycastHit, bool) {
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, body := range bodies {
		if body == nil || body.Collider == nil || body.Collider.IsTrigger {
			continue
		}
		h, ok := geometry.RayIntersect(ray, body.Collider.Shape)
		if !ok || h.Distance > closestHit.Distance || (hit && h.Distance == closestHit.Distance) {
			continue
		}
		closestHit = RaycastHit{Body: body, Point: h.Point, Normal: h.Normal, Distance: h.Distance}
		hit = true
	}

	return closestHit, hit
}
