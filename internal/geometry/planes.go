package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

// SignedDistance is positive on the side the normal points to.
func (p Plane) SignedDistance(point rl.Vector3) float32 {
	return dot(p.Normal, point) - p.Distance
}

// Project drops point onto the plane.
func (p Plane) Project(point rl.Vector3) rl.Vector3 {
	return addScaled(point, p.Normal, -p.SignedDistance(point))
}

// IntersectThreePlanes returns the single point shared by three planes. It fails when
// the normals are linearly dependent (two planes parallel, or all three share a line).
func IntersectThreePlanes(p1, p2, p3 Plane) (rl.Vector3, bool) {
	n2xn3 := rl.Vector3CrossProduct(p2.Normal, p3.Normal)
	det := dot(p1.Normal, n2xn3)
	if absf(det) < PlaneEpsilon {
		return rl.Vector3{}, false
	}
	n3xn1 := rl.Vector3CrossProduct(p3.Normal, p1.Normal)
	n1xn2 := rl.Vector3CrossProduct(p1.Normal, p2.Normal)

	point := scale(n2xn3, p1.Distance)
	point = addScaled(point, n3xn1, p2.Distance)
	point = addScaled(point, n1xn2, p3.Distance)
	return scale(point, 1/det), true
}

// ClipLine returns where seg crosses plane. It fails when the segment is parallel to the
// plane, when both endpoints lie on the same side, or when the crossing parameter falls
// outside [0,1].
func ClipLine(plane Plane, seg Segment) (rl.Vector3, bool) {
	d := seg.Direction()
	nd := dot(plane.Normal, d)
	if absf(nd) < Epsilon {
		return rl.Vector3{}, false
	}
	da := plane.SignedDistance(seg.A)
	db := plane.SignedDistance(seg.B)
	if da*db > 0 {
		return rl.Vector3{}, false
	}
	t := -da / nd
	if t < 0 || t > 1 {
		return rl.Vector3{}, false
	}
	return seg.PointAt(t), true
}
