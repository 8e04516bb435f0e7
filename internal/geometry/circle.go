package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

// IsPointInCircle reports whether p lies on the disc: within SurfaceTolerance of its plane
// and strictly inside its radius.
func IsPointInCircle(c Circle, p rl.Vector3) bool {
	local := sub(p, c.Center)
	h := dot(local, c.Normal)
	if absf(h) > SurfaceTolerance {
		return false
	}
	radial := sub(local, scale(c.Normal, h))
	return lengthSq(radial) < c.Radius*c.Radius
}

// RimPoints returns four rim points spread around the disc at 90 degree steps.
func (c Circle) RimPoints() [4]rl.Vector3 {
	fwd := c.Forward()
	return [4]rl.Vector3{
		addScaled(c.Center, c.Right, c.Radius),
		addScaled(c.Center, fwd, c.Radius),
		addScaled(c.Center, c.Right, -c.Radius),
		addScaled(c.Center, fwd, -c.Radius),
	}
}

// PlaneCircleIntersection returns the points of a disc that penetrate a plane's solid
// half-space, each paired with its depth below the plane.
//
// The 3D test reduces to a 2D one: the line shared by the plane and the disc's own plane
// is pinned by a third plane through the disc center, and that point's distance to the
// center decides whether the plane cuts the disc. A disc almost parallel to the plane has
// no stable deepest point, so four spread rim points are tested instead.
func PlaneCircleIntersection(plane Plane, c Circle) ([]rl.Vector3, []float32) {
	var points []rl.Vector3
	var depths []float32
	keep := func(p rl.Vector3) {
		if s := plane.SignedDistance(p); s < 0 {
			points = append(points, p)
			depths = append(depths, -s)
		}
	}

	if absf(dot(plane.Normal, c.Normal)) >= ParallelCosine {
		for _, p := range c.RimPoints() {
			keep(p)
		}
		return points, depths
	}

	down, ok := Normalize(ProjectOntoPlane(scale(plane.Normal, -1), c.Normal))
	if !ok {
		return nil, nil
	}
	deepest := addScaled(c.Center, down, c.Radius)

	lineDir, ok := Normalize(rl.Vector3CrossProduct(plane.Normal, c.Normal))
	if !ok {
		return nil, nil
	}
	pin := Plane{Normal: lineDir, Distance: dot(lineDir, c.Center)}
	if x, ok := IntersectThreePlanes(plane, c.Plane(), pin); ok && IsPointInCircle(c, x) {
		keep(deepest)
		return points, depths
	}

	// The plane misses the disc: it is either fully clear or fully embedded.
	if plane.SignedDistance(c.Center) < 0 {
		keep(deepest)
	}
	return points, depths
}
