package physics

import (
	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// circleCircle intersects two flat discs.
//
// Non-parallel discs can only touch along the line shared by their planes. A third
// plane through a's center pins a point on that line, each disc cuts a chord out of
// it, and the discs overlap iff the chords do. Coplanar discs reduce to a 2D circle
// test; parallel discs in different planes never touch.
func circleCircle(a, b *Rigidbody, reg *Registry) bool {
	dA := a.Collider.Circle()
	dB := b.Collider.Circle()

	lineDir, ok := geometry.Normalize(cross(dA.Normal, dB.Normal))
	if !ok || absf(dot(dA.Normal, dB.Normal)) >= geometry.ParallelCosine {
		return coplanarCircles(a, b, reg, dA, dB)
	}

	pin := geometry.Plane{Normal: lineDir, Distance: dot(lineDir, dA.Center)}
	x0, ok := geometry.IntersectThreePlanes(dA.Plane(), dB.Plane(), pin)
	if !ok {
		return false
	}

	// Chord of a, centered on x0 by construction
	distA := lengthSq(sub(x0, dA.Center))
	if distA >= dA.Radius*dA.Radius {
		return false
	}
	hA := sqrtf(dA.Radius*dA.Radius - distA)

	// Chord of b, centered on the foot of b's center
	tB := dot(sub(dB.Center, x0), lineDir)
	footB := add(x0, scale(lineDir, tB))
	distB := lengthSq(sub(footB, dB.Center))
	if distB >= dB.Radius*dB.Radius {
		return false
	}
	hB := sqrtf(dB.Radius*dB.Radius - distB)

	lo := maxf(-hA, tB-hB)
	hi := minf(hA, tB+hB)
	if lo >= hi {
		return false
	}

	n, depth := crossingDepth(dA, dB)
	m := reg.Generate(a, b)
	m.Normal = n
	m.AddContact(add(x0, scale(lineDir, (lo+hi)/2)), depth)
	return true
}

// crossingDepth picks the shortest push that takes b clear of a's plane, or a clear
// of b's plane.
func crossingDepth(dA, dB geometry.Circle) (rl.Vector3, float32) {
	sin := rl.Vector3Length(cross(dA.Normal, dB.Normal))

	// b's span of signed distances from a's plane, and a's from b's
	sB := dA.Plane().SignedDistance(dB.Center)
	loB, hiB := sB-dB.Radius*sin, sB+dB.Radius*sin
	sA := dB.Plane().SignedDistance(dA.Center)
	loA, hiA := sA-dA.Radius*sin, sA+dA.Radius*sin

	// b moves along +normal, a along -normal
	n, depth := dA.Normal, -loB
	if hiB < depth {
		n, depth = negate(dA.Normal), hiB
	}
	if hiA < depth {
		n, depth = dB.Normal, hiA
	}
	if -loA < depth {
		n, depth = negate(dB.Normal), -loA
	}
	return n, depth
}

func coplanarCircles(a, b *Rigidbody, reg *Registry, dA, dB geometry.Circle) bool {
	plane := dA.Plane()
	if absf(plane.SignedDistance(dB.Center)) > geometry.SurfaceTolerance {
		return false
	}
	return roundPair(a, b, reg, dA.Center, dA.Radius, plane.Project(dB.Center), dB.Radius, dA.Normal)
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
