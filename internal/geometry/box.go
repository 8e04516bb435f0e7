package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

// Box enumerators are indexed by a local axis 0/1/2. For a given axis the "face" is the
// one whose normal is ±Axes[axis]; the "sides" are the four faces around it.

func (o OBB) otherAxes(axis int) (int, int) {
	return (axis + 1) % 3, (axis + 2) % 3
}

// Corners returns the 8 box vertices.
func (o OBB) Corners() [8]rl.Vector3 {
	var corners [8]rl.Vector3
	for i := 0; i < 8; i++ {
		p := o.Center
		for axis := 0; axis < 3; axis++ {
			s := float32(1)
			if i&(1<<axis) != 0 {
				s = -1
			}
			p = addScaled(p, o.Axes[axis], s*o.Extent(axis))
		}
		corners[i] = p
	}
	return corners
}

// FacePlane returns the outward plane of the face with normal sign*Axes[axis].
func (o OBB) FacePlane(axis int, sign float32) Plane {
	n := scale(o.Axes[axis], signf(sign))
	return Plane{Normal: n, Distance: dot(n, o.Center) + o.Extent(axis)}
}

// FaceCorners returns the four corners of a face, wound around the face.
func (o OBB) FaceCorners(axis int, sign float32) [4]rl.Vector3 {
	u, v := o.otherAxes(axis)
	fc := addScaled(o.Center, o.Axes[axis], signf(sign)*o.Extent(axis))
	eu := scale(o.Axes[u], o.Extent(u))
	ev := scale(o.Axes[v], o.Extent(v))
	return [4]rl.Vector3{
		add(add(fc, eu), ev),
		add(sub(fc, eu), ev),
		sub(sub(fc, eu), ev),
		sub(add(fc, eu), ev),
	}
}

// FaceEdges returns the four edges bounding a face.
func (o OBB) FaceEdges(axis int, sign float32) [4]Segment {
	c := o.FaceCorners(axis, sign)
	return [4]Segment{
		{A: c[0], B: c[1]},
		{A: c[1], B: c[2]},
		{A: c[2], B: c[3]},
		{A: c[3], B: c[0]},
	}
}

// SideEdges returns the four edges running parallel to Axes[axis], from the -axis face
// to the +axis face.
func (o OBB) SideEdges(axis int) [4]Segment {
	u, v := o.otherAxes(axis)
	along := scale(o.Axes[axis], o.Extent(axis))
	var edges [4]Segment
	signs := [4][2]float32{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	for i, s := range signs {
		base := addScaled(o.Center, o.Axes[u], s[0]*o.Extent(u))
		base = addScaled(base, o.Axes[v], s[1]*o.Extent(v))
		edges[i] = Segment{A: sub(base, along), B: add(base, along)}
	}
	return edges
}

// SidePlanes returns the outward planes of the four faces around Axes[axis].
func (o OBB) SidePlanes(axis int) [4]Plane {
	u, v := o.otherAxes(axis)
	return [4]Plane{
		o.FacePlane(u, 1),
		o.FacePlane(u, -1),
		o.FacePlane(v, 1),
		o.FacePlane(v, -1),
	}
}

// BestFace returns the face of o whose outward normal has the largest dot product with dir.
func (o OBB) BestFace(dir rl.Vector3) (int, float32) {
	bestAxis := 0
	bestDot := float32(-2)
	bestSign := float32(1)
	for i := 0; i < 3; i++ {
		d := dot(o.Axes[i], dir)
		if absf(d) > bestDot {
			bestAxis, bestDot, bestSign = i, absf(d), signf(d)
		}
	}
	return bestAxis, bestSign
}

// ClipSegmentToOBB trims seg to the part inside the box. It fails when the segment
// misses the box entirely.
func ClipSegmentToOBB(o OBB, seg Segment) (Segment, bool) {
	d := seg.Direction()
	local := sub(seg.A, o.Center)
	tMin, tMax := float32(0), float32(1)
	for i := 0; i < 3; i++ {
		p := dot(local, o.Axes[i])
		v := dot(d, o.Axes[i])
		e := o.Extent(i)
		if absf(v) < Epsilon {
			if absf(p) > e {
				return Segment{}, false
			}
			continue
		}
		t1 := (-e - p) / v
		t2 := (e - p) / v
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = maxf(tMin, t1)
		tMax = minf(tMax, t2)
		if tMin > tMax {
			return Segment{}, false
		}
	}
	return Segment{A: seg.PointAt(tMin), B: seg.PointAt(tMax)}, true
}
