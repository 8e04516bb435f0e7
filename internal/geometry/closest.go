package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

// Local expresses a world point in the box's axes, relative to its center.
func (o OBB) Local(point rl.Vector3) rl.Vector3 {
	d := sub(point, o.Center)
	return rl.Vector3{X: dot(d, o.Axes[0]), Y: dot(d, o.Axes[1]), Z: dot(d, o.Axes[2])}
}

// World is the inverse of Local.
func (o OBB) World(local rl.Vector3) rl.Vector3 {
	p := addScaled(o.Center, o.Axes[0], local.X)
	p = addScaled(p, o.Axes[1], local.Y)
	return addScaled(p, o.Axes[2], local.Z)
}

// ClosestPointOnOBB returns the point of the solid OBB closest to the given point.
// Points inside the box are returned unchanged.
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	if PointInOBB(o, point, 0) {
		return point
	}
	l := o.Local(point)
	return o.World(rl.Vector3{
		X: clampf(l.X, -o.HalfSize.X, o.HalfSize.X),
		Y: clampf(l.Y, -o.HalfSize.Y, o.HalfSize.Y),
		Z: clampf(l.Z, -o.HalfSize.Z, o.HalfSize.Z),
	})
}

// PointInOBB reports whether point lies inside the box grown by tolerance.
func PointInOBB(o OBB, point rl.Vector3, tolerance float32) bool {
	l := o.Local(point)
	return absf(l.X) <= o.HalfSize.X+tolerance &&
		absf(l.Y) <= o.HalfSize.Y+tolerance &&
		absf(l.Z) <= o.HalfSize.Z+tolerance
}

// ClosestPointOnSegment returns the closest point on seg to p and its clamped parameter.
func ClosestPointOnSegment(seg Segment, p rl.Vector3) (rl.Vector3, float32) {
	d := seg.Direction()
	lenSq := lengthSq(d)
	if lenSq < Epsilon*Epsilon {
		return seg.A, 0
	}
	t := clampf(dot(sub(p, seg.A), d)/lenSq, 0, 1)
	return seg.PointAt(t), t
}

// ClosestPointsSegmentSegment returns the pair of closest points between two segments,
// with both segment parameters clamped to [0,1].
func ClosestPointsSegmentSegment(s1, s2 Segment) (rl.Vector3, rl.Vector3) {
	const degenerate = Epsilon * Epsilon

	d1 := s1.Direction()
	d2 := s2.Direction()
	r := sub(s1.A, s2.A)
	a := lengthSq(d1)
	e := lengthSq(d2)
	f := dot(d2, r)

	var s, t float32
	switch {
	case a <= degenerate && e <= degenerate:
		return s1.A, s2.A
	case a <= degenerate:
		t = clampf(f/e, 0, 1)
	default:
		c := dot(d1, r)
		if e <= degenerate {
			s = clampf(-c/a, 0, 1)
			break
		}
		b := dot(d1, d2)
		denom := a*e - b*b
		// Parallel segments: any s works, start from s1.A
		if denom > PlaneEpsilon*a*e {
			s = clampf((b*f-c*e)/denom, 0, 1)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = clampf(-c/a, 0, 1)
		} else if t > 1 {
			t = 1
			s = clampf((b-c)/a, 0, 1)
		}
	}
	return s1.PointAt(s), s2.PointAt(t)
}

// ClosestPointOnDisc returns the point of the flat disc closest to p.
func ClosestPointOnDisc(c Circle, p rl.Vector3) rl.Vector3 {
	q := sub(p, scale(c.Normal, dot(sub(p, c.Center), c.Normal)))
	radial := sub(q, c.Center)
	if lengthSq(radial) > c.Radius*c.Radius {
		n, _ := Normalize(radial)
		return addScaled(c.Center, n, c.Radius)
	}
	return q
}

// ClosestPointOnCylinder returns the point of the solid cylinder closest to p.
// Points inside the cylinder are returned unchanged.
func ClosestPointOnCylinder(c Cylinder, p rl.Vector3) rl.Vector3 {
	local := sub(p, c.Center)
	h := dot(local, c.Axis)
	radial := sub(local, scale(c.Axis, h))
	h = clampf(h, -c.Height/2, c.Height/2)
	if lengthSq(radial) > c.Radius*c.Radius {
		n, _ := Normalize(radial)
		radial = scale(n, c.Radius)
	}
	return add(addScaled(c.Center, c.Axis, h), radial)
}

// PointInCylinder reports whether p lies inside the cylinder grown by tolerance.
func PointInCylinder(c Cylinder, p rl.Vector3, tolerance float32) bool {
	local := sub(p, c.Center)
	h := dot(local, c.Axis)
	if absf(h) > c.Height/2+tolerance {
		return false
	}
	radial := sub(local, scale(c.Axis, h))
	r := c.Radius + tolerance
	return lengthSq(radial) <= r*r
}

// CylinderExit finds the nearest boundary point for a point inside a cylinder.
// It returns that point, the outward surface normal there, and the distance to it.
func CylinderExit(c Cylinder, p rl.Vector3) (rl.Vector3, rl.Vector3, float32) {
	local := sub(p, c.Center)
	h := dot(local, c.Axis)
	radial := sub(local, scale(c.Axis, h))
	radialLen := rl.Vector3Length(radial)

	top := c.Height/2 - h
	bottom := h + c.Height/2
	side := c.Radius - radialLen

	if side < top && side < bottom {
		n, ok := Normalize(radial)
		if !ok {
			n = c.Right
		}
		return addScaled(p, n, side), n, side
	}
	if top <= bottom {
		return addScaled(p, c.Axis, top), c.Axis, top
	}
	down := scale(c.Axis, -1)
	return addScaled(p, down, bottom), down, bottom
}

// PointInPolygon reports whether p, assumed to lie in the polygon's plane, is inside it.
func PointInPolygon(poly Polygon, p rl.Vector3) bool {
	n := len(poly.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := poly.Vertices[i]
		b := poly.Vertices[(i+1)%n]
		edgeCross := rl.Vector3CrossProduct(sub(b, a), sub(p, a))
		if dot(edgeCross, poly.Normal) < -Epsilon {
			return false
		}
	}
	return true
}

// ClosestPointOnPolygon returns the point of the convex polygon closest to p.
func ClosestPointOnPolygon(poly Polygon, p rl.Vector3) rl.Vector3 {
	n := len(poly.Vertices)
	if n == 0 {
		return p
	}
	q := sub(p, scale(poly.Normal, poly.Plane().SignedDistance(p)))
	if PointInPolygon(poly, q) {
		return q
	}
	best := poly.Vertices[0]
	bestDist := lengthSq(sub(p, best))
	for i := 0; i < n; i++ {
		c, _ := ClosestPointOnSegment(Segment{A: poly.Vertices[i], B: poly.Vertices[(i+1)%n]}, p)
		if d := lengthSq(sub(p, c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
