package physics

import (
	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// roundPair is the closed form shared by every pair of round features: a ball of
// radius ra at pa against a ball of radius rb at pb. The contact lands on b's surface
// at pa + normal*(ra - depth).
func roundPair(a, b *Rigidbody, reg *Registry, pa rl.Vector3, ra float32, pb rl.Vector3, rb float32, fallback rl.Vector3) bool {
	diff := sub(pb, pa)
	distSq := lengthSq(diff)
	sum := ra + rb
	if distSq >= sum*sum {
		return false
	}

	dist := sqrtf(distSq)
	normal := fallback
	if dist >= geometry.Epsilon {
		normal = scale(diff, 1/dist)
	}
	depth := sum - dist

	m := reg.Generate(a, b)
	m.Normal = normal
	m.AddContact(add(pa, scale(normal, ra-depth)), depth)
	return true
}

// sphereSphere handles two spheres. Exactly coincident centers have no defined normal
// and report no collision.
func sphereSphere(a, b *Rigidbody, reg *Registry) bool {
	sA := a.Collider.Sphere()
	sB := b.Collider.Sphere()

	diff := sub(sB.Center, sA.Center)
	if lengthSq(diff) == 0 {
		return false
	}
	return roundPair(a, b, reg, sA.Center, sA.Radius, sB.Center, sB.Radius, geometry.Up())
}

// boxSphere handles a box (AABB or OBB) against a sphere using the closest point on
// the box to the sphere center.
func boxSphere(a, b *Rigidbody, reg *Registry) bool {
	box := a.Collider.Box()
	sphere := b.Collider.Sphere()

	closest := geometry.ClosestPointOnOBB(box, sphere.Center)
	diff := sub(sphere.Center, closest)
	distSq := lengthSq(diff)
	if distSq >= sphere.Radius*sphere.Radius {
		return false
	}

	m := reg.Generate(a, b)
	if distSq < geometry.Epsilon*geometry.Epsilon || geometry.PointInOBB(box, sphere.Center, 0) {
		// Center inside the box: push straight up, by the overlap along that axis
		up := geometry.Up()
		depth := dot(box.Support(up), up) - dot(sphere.Center, up) + sphere.Radius
		m.Normal = up
		m.AddContact(sphere.Center, depth)
		return true
	}

	dist := sqrtf(distSq)
	m.Normal = scale(diff, 1/dist)
	m.AddContact(closest, sphere.Radius-dist)
	return true
}

// sphereCapsule reduces the capsule to the closest point on its segment.
func sphereCapsule(a, b *Rigidbody, reg *Registry) bool {
	sphere := a.Collider.Sphere()
	capsule := b.Collider.Capsule()

	q, _ := geometry.ClosestPointOnSegment(capsule.Segment(), sphere.Center)
	fallback := fallbackNormal(sphere.Center, capsule.Center, capsule.Right)
	if n, ok := geometry.Normalize(geometry.ProjectOntoPlane(fallback, capsule.Axis)); ok {
		fallback = n
	}
	return roundPair(a, b, reg, sphere.Center, sphere.Radius, q, capsule.Radius, fallback)
}

// sphereAgainstPoint finishes a sphere test once the closest point q on the other
// solid is known. inside is used when q coincides with the sphere center.
func sphereAgainstPoint(a, b *Rigidbody, reg *Registry, sphere geometry.Sphere, q rl.Vector3, inside func() (rl.Vector3, float32)) bool {
	diff := sub(q, sphere.Center)
	distSq := lengthSq(diff)
	if distSq >= sphere.Radius*sphere.Radius {
		return false
	}

	m := reg.Generate(a, b)
	if distSq < geometry.Epsilon*geometry.Epsilon {
		normal, depth := inside()
		m.Normal = normal
		m.AddContact(sphere.Center, depth)
		return true
	}
	dist := sqrtf(distSq)
	m.Normal = scale(diff, 1/dist)
	m.AddContact(q, sphere.Radius-dist)
	return true
}

func sphereCylinder(a, b *Rigidbody, reg *Registry) bool {
	sphere := a.Collider.Sphere()
	cyl := b.Collider.Cylinder()

	q := geometry.ClosestPointOnCylinder(cyl, sphere.Center)
	return sphereAgainstPoint(a, b, reg, sphere, q, func() (rl.Vector3, float32) {
		// The sphere leaves through the nearest cylinder face; the cylinder moves the other way
		_, outward, dist := geometry.CylinderExit(cyl, sphere.Center)
		return negate(outward), sphere.Radius + dist
	})
}

func sphereCircle(a, b *Rigidbody, reg *Registry) bool {
	sphere := a.Collider.Sphere()
	disc := b.Collider.Circle()

	q := geometry.ClosestPointOnDisc(disc, sphere.Center)
	return sphereAgainstPoint(a, b, reg, sphere, q, func() (rl.Vector3, float32) {
		return negate(disc.Normal), sphere.Radius
	})
}

func spherePolygon(a, b *Rigidbody, reg *Registry) bool {
	sphere := a.Collider.Sphere()
	poly := b.Collider.Polygon()

	q := geometry.ClosestPointOnPolygon(poly, sphere.Center)
	return sphereAgainstPoint(a, b, reg, sphere, q, func() (rl.Vector3, float32) {
		return negate(poly.Normal), sphere.Radius
	})
}
