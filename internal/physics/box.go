package physics

import (
	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// boxAxes lists the 15 SAT candidates for two boxes: three face normals each, then the
// nine edge cross products. Parallel edges give near-zero crosses, which the test skips.
func boxAxes(a, b geometry.OBB) []rl.Vector3 {
	axes := make([]rl.Vector3, 0, 15)
	axes = append(axes, a.Axes[:]...)
	axes = append(axes, b.Axes[:]...)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axes = append(axes, cross(a.Axes[i], b.Axes[j]))
		}
	}
	return axes
}

// boxBox handles any two boxes. Every contact carries the single SAT depth.
func boxBox(a, b *Rigidbody, reg *Registry) bool {
	boxA := a.Collider.Box()
	boxB := b.Collider.Box()

	sat, ok := separatingAxis(boxA, boxB, boxAxes(boxA, boxB), 6)
	if !ok {
		return false
	}

	var points []rl.Vector3
	if sat.index >= 6 {
		points = edgeContact(boxA, boxB, sat)
	} else {
		points = faceContacts(boxA, boxB, sat.normal)
	}
	if len(points) == 0 {
		points = []rl.Vector3{midpointContact(boxA, boxB, sat.normal)}
	}

	m := reg.Generate(a, b)
	m.Normal = sat.normal
	for _, p := range reduceToFour(points, sat.normal) {
		m.AddContact(p, sat.depth)
	}
	return true
}

// faceContacts clips box b against the reference face of box a. The primary pass clips
// the incident box's side edges against the reference plane; the fallbacks run in order
// until at least two points survive.
func faceContacts(a, b geometry.OBB, n rl.Vector3) []rl.Vector3 {
	refAxis, refSign := a.BestFace(n)
	incAxis, incSign := b.BestFace(negate(n))
	refPlane := a.FacePlane(refAxis, refSign)
	incPlane := b.FacePlane(incAxis, incSign)

	var points []rl.Vector3
	keep := func(p rl.Vector3) {
		if geometry.PointInOBB(a, p, geometry.SurfaceTolerance) && geometry.PointInOBB(b, p, geometry.SurfaceTolerance) {
			points = appendUnique(points, p)
		}
	}
	clipAll := func(plane geometry.Plane, edges [4]geometry.Segment) {
		for _, e := range edges {
			if p, ok := geometry.ClipLine(plane, e); ok {
				keep(p)
			}
		}
	}

	clipAll(refPlane, b.SideEdges(incAxis))
	if len(points) < 2 {
		// (a) reference face edges against the incident box's side planes
		for _, plane := range b.SidePlanes(incAxis) {
			clipAll(plane, a.FaceEdges(refAxis, refSign))
		}
	}
	if len(points) < 2 {
		// (b) reference box side edges against the incident face plane
		clipAll(incPlane, a.SideEdges(refAxis))
	}
	if len(points) < 2 {
		// (c) incident face edges against the reference plane
		clipAll(refPlane, b.FaceEdges(incAxis, incSign))
	}
	return points
}

// edgeContact returns the closest point between the two edges that produced the
// winning cross-product axis, taken on b's edge.
func edgeContact(a, b geometry.OBB, sat satResult) []rl.Vector3 {
	k := sat.index - 6
	i, j := k/3, k%3

	edgeA := supportEdge(a.SideEdges(i), sat.normal)
	edgeB := supportEdge(b.SideEdges(j), negate(sat.normal))
	_, pb := geometry.ClosestPointsSegmentSegment(edgeA, edgeB)
	return []rl.Vector3{pb}
}

// supportEdge picks the edge furthest along dir.
func supportEdge(edges [4]geometry.Segment, dir rl.Vector3) geometry.Segment {
	best := edges[0]
	bestDot := dot(add(best.A, best.B), dir)
	for _, e := range edges[1:] {
		if d := dot(add(e.A, e.B), dir); d > bestDot {
			best, bestDot = e, d
		}
	}
	return best
}
