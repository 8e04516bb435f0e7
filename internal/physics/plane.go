package physics

import (
	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane routines treat the plane as a solid half-space below its normal. The normal
// always points from the plane toward the other body.

// writePlaneContacts emits one manifold holding the deepest candidates.
func writePlaneContacts(a, b *Rigidbody, reg *Registry, plane geometry.Plane, cands []candidate) bool {
	if len(cands) == 0 {
		return false
	}
	m := reg.Generate(a, b)
	m.Normal = plane.Normal
	for _, c := range deepestFour(cands) {
		m.AddContact(c.point, c.depth)
	}
	return true
}

func planeSphere(a, b *Rigidbody, reg *Registry) bool {
	plane := a.Collider.Plane()
	sphere := b.Collider.Sphere()

	s := plane.SignedDistance(sphere.Center)
	if s >= sphere.Radius {
		return false
	}
	m := reg.Generate(a, b)
	m.Normal = plane.Normal
	m.AddContact(sub(sphere.Center, scale(plane.Normal, sphere.Radius)), sphere.Radius-s)
	return true
}

// planeBox keeps up to four corners that are on or below the plane.
func planeBox(a, b *Rigidbody, reg *Registry) bool {
	plane := a.Collider.Plane()
	box := b.Collider.Box()

	var cands []candidate
	for _, corner := range box.Corners() {
		if s := plane.SignedDistance(corner); s <= 0 {
			cands = append(cands, candidate{point: corner, depth: -s})
		}
	}
	return writePlaneContacts(a, b, reg, plane, cands)
}

func planeCapsule(a, b *Rigidbody, reg *Registry) bool {
	plane := a.Collider.Plane()
	capsule := b.Collider.Capsule()

	seg := capsule.Segment()
	var cands []candidate
	for _, end := range [2]rl.Vector3{seg.A, seg.B} {
		if s := plane.SignedDistance(end); s < capsule.Radius {
			cands = append(cands, candidate{
				point: sub(end, scale(plane.Normal, capsule.Radius)),
				depth: capsule.Radius - s,
			})
		}
	}
	return writePlaneContacts(a, b, reg, plane, cands)
}

// circleCandidates turns a disc's penetrating points into candidates.
func circleCandidates(plane geometry.Plane, disc geometry.Circle) []candidate {
	points, depths := geometry.PlaneCircleIntersection(plane, disc)
	cands := make([]candidate, len(points))
	for i := range points {
		cands[i] = candidate{point: points[i], depth: depths[i]}
	}
	return cands
}

func planeCircle(a, b *Rigidbody, reg *Registry) bool {
	plane := a.Collider.Plane()
	return writePlaneContacts(a, b, reg, plane, circleCandidates(plane, b.Collider.Circle()))
}

// planeCylinder tests both cap circles. A cylinder lying on its side gets one deepest
// rim point per cap; one standing on a cap gets four spread rim points.
func planeCylinder(a, b *Rigidbody, reg *Registry) bool {
	plane := a.Collider.Plane()
	cyl := b.Collider.Cylinder()

	var cands []candidate
	for _, disc := range cyl.Caps() {
		cands = append(cands, circleCandidates(plane, disc)...)
	}
	return writePlaneContacts(a, b, reg, plane, cands)
}

func planeCone(a, b *Rigidbody, reg *Registry) bool {
	plane := a.Collider.Plane()
	cone := b.Collider.Cone()

	cands := circleCandidates(plane, cone.Base())
	apex := cone.Apex()
	if s := plane.SignedDistance(apex); s < 0 {
		cands = append(cands, candidate{point: apex, depth: -s})
	}
	return writePlaneContacts(a, b, reg, plane, cands)
}

func planePolygon(a, b *Rigidbody, reg *Registry) bool {
	plane := a.Collider.Plane()
	poly := b.Collider.Polygon()

	var cands []candidate
	for _, v := range poly.Vertices {
		if s := plane.SignedDistance(v); s < 0 {
			cands = append(cands, candidate{point: v, depth: -s})
		}
	}
	return writePlaneContacts(a, b, reg, plane, cands)
}

// planePlane never collides: two unbounded half-spaces have no finite manifold.
func planePlane(a, b *Rigidbody, reg *Registry) bool {
	return false
}
