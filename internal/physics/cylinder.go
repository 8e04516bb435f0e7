package physics

import (
	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// rimSamples returns points on a cylinder's cap rims likely to be in contact when
// the cylinder is pushed along dir: the rim point of each cap furthest along dir plus
// four spread rim points per cap.
func rimSamples(cyl geometry.Cylinder, dir rl.Vector3) []rl.Vector3 {
	samples := make([]rl.Vector3, 0, 10)
	radial, hasRadial := geometry.Normalize(geometry.ProjectOntoPlane(dir, cyl.Axis))
	for _, disc := range cyl.Caps() {
		if hasRadial {
			samples = append(samples, add(disc.Center, scale(radial, disc.Radius)))
		}
		rim := disc.RimPoints()
		samples = append(samples, rim[:]...)
	}
	return samples
}

// sideLine returns the line on a cylinder's side surface furthest along dir. It fails
// when dir runs along the axis.
func sideLine(cyl geometry.Cylinder, dir rl.Vector3) (geometry.Segment, bool) {
	radial, ok := geometry.Normalize(geometry.ProjectOntoPlane(dir, cyl.Axis))
	if !ok {
		return geometry.Segment{}, false
	}
	seg := cyl.Segment()
	offset := scale(radial, cyl.Radius)
	return geometry.Segment{A: add(seg.A, offset), B: add(seg.B, offset)}, true
}

// cylinderBox runs SAT over the box axes, the cylinder axis, their crosses and the
// closest-point direction. Contacts come from box corners inside the cylinder, cap rim
// points inside the box and the cylinder's leading side line clipped to the box.
func cylinderBox(a, b *Rigidbody, reg *Registry) bool {
	cyl := a.Collider.Cylinder()
	box := b.Collider.Box()

	q := geometry.ClosestPointOnOBB(box, cyl.Center)
	p, _ := geometry.ClosestPointOnSegment(cyl.Segment(), q)

	candidates := make([]rl.Vector3, 0, 8)
	candidates = append(candidates, box.Axes[:]...)
	candidates = append(candidates, cyl.Axis)
	for i := 0; i < 3; i++ {
		candidates = append(candidates, cross(cyl.Axis, box.Axes[i]))
	}
	candidates = append(candidates, sub(q, p))

	sat, ok := separatingAxis(cyl, box, candidates, 4)
	if !ok {
		return false
	}
	n := sat.normal

	var points []rl.Vector3
	for _, corner := range box.Corners() {
		if geometry.PointInCylinder(cyl, corner, geometry.SurfaceTolerance) {
			points = appendUnique(points, corner)
		}
	}
	for _, sample := range rimSamples(cyl, n) {
		if geometry.PointInOBB(box, sample, geometry.SurfaceTolerance) {
			points = appendUnique(points, sample)
		}
	}
	if line, ok := sideLine(cyl, n); ok {
		if clipped, ok := geometry.ClipSegmentToOBB(box, line); ok {
			points = appendUnique(points, clipped.A)
			points = appendUnique(points, clipped.B)
		}
	}
	if len(points) == 0 {
		points = append(points, midpointContact(cyl, box, n))
	}

	m := reg.Generate(a, b)
	m.Normal = n
	for _, pt := range reduceToFour(points, n) {
		m.AddContact(pt, sat.depth)
	}
	return true
}

// cylinderCylinder runs SAT over both axes, their cross, the direction between the
// closest axis points and its crosses with each axis. If b's deepest point sits inside
// a, the normal of a's face nearest to it is tried as one more axis; it wins when
// pushing b along it takes less than the SAT depth.
func cylinderCylinder(a, b *Rigidbody, reg *Registry) bool {
	cA := a.Collider.Cylinder()
	cB := b.Collider.Cylinder()

	pa, pb := geometry.ClosestPointsSegmentSegment(cA.Segment(), cB.Segment())
	d := sub(pb, pa)
	candidates := []rl.Vector3{
		cA.Axis,
		cB.Axis,
		cross(cA.Axis, cB.Axis),
		d,
		cross(cA.Axis, d),
		cross(cB.Axis, d),
	}

	sat, ok := separatingAxis(cA, cB, candidates, 2)
	if !ok {
		return false
	}
	n, depth := sat.normal, sat.depth

	deepest := cB.Support(negate(n))
	if geometry.PointInCylinder(cA, deepest, 0) {
		_, outward, _ := geometry.CylinderExit(cA, deepest)
		ia := geometry.ProjectOntoAxis(cA, outward)
		ib := geometry.ProjectOntoAxis(cB, outward)
		if overlap := ia.Max - ib.Min; overlap > 0 && overlap < depth {
			n, depth = outward, overlap
		}
	}

	var points []rl.Vector3
	for _, sample := range rimSamples(cB, negate(n)) {
		if geometry.PointInCylinder(cA, sample, geometry.SurfaceTolerance) {
			points = appendUnique(points, sample)
		}
	}
	for _, sample := range rimSamples(cA, n) {
		if geometry.PointInCylinder(cB, sample, geometry.SurfaceTolerance) {
			points = appendUnique(points, sample)
		}
	}
	if len(points) == 0 {
		points = append(points, midpointContact(cA, cB, n))
	}

	m := reg.Generate(a, b)
	m.Normal = n
	for _, pt := range reduceToFour(points, n) {
		m.AddContact(pt, depth)
	}
	return true
}
