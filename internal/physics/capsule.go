package physics

import (
	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// segmentPair tests two swept segments: the closest points between the central
// segments are treated as two balls.
func segmentPair(a, b *Rigidbody, reg *Registry, segA geometry.Segment, ra float32, axisA rl.Vector3,
	segB geometry.Segment, rb float32, axisB rl.Vector3) bool {
	pa, pb := geometry.ClosestPointsSegmentSegment(segA, segB)

	// Crossing axes meet at one point; separate along their common perpendicular
	fallback, ok := geometry.Normalize(cross(axisA, axisB))
	if !ok {
		fallback = geometry.Perpendicular(axisA)
	}
	centerA := geometry.Center(a.Collider.Shape)
	centerB := geometry.Center(b.Collider.Shape)
	fallback = orientAlong(fallback, sub(centerB, centerA))

	return roundPair(a, b, reg, pa, ra, pb, rb, fallback)
}

func capsuleCapsule(a, b *Rigidbody, reg *Registry) bool {
	cA := a.Collider.Capsule()
	cB := b.Collider.Capsule()
	return segmentPair(a, b, reg, cA.Segment(), cA.Radius, cA.Axis, cB.Segment(), cB.Radius, cB.Axis)
}

// capsuleCylinder approximates the cylinder by its axis segment and radius, which is
// exact against its side and rounds off its cap edges.
func capsuleCylinder(a, b *Rigidbody, reg *Registry) bool {
	capsule := a.Collider.Capsule()
	cyl := b.Collider.Cylinder()
	return segmentPair(a, b, reg, capsule.Segment(), capsule.Radius, capsule.Axis, cyl.Segment(), cyl.Radius, cyl.Axis)
}
