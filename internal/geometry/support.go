package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

func (s Sphere) Support(dir rl.Vector3) rl.Vector3 {
	n, ok := Normalize(dir)
	if !ok {
		return s.Center
	}
	return addScaled(s.Center, n, s.Radius)
}

func (a AABB) Support(dir rl.Vector3) rl.Vector3 {
	p := a.Min
	if dir.X > 0 {
		p.X = a.Max.X
	}
	if dir.Y > 0 {
		p.Y = a.Max.Y
	}
	if dir.Z > 0 {
		p.Z = a.Max.Z
	}
	return p
}

func (o OBB) Support(dir rl.Vector3) rl.Vector3 {
	p := o.Center
	for i := 0; i < 3; i++ {
		p = addScaled(p, o.Axes[i], signf(dot(dir, o.Axes[i]))*o.Extent(i))
	}
	return p
}

func (c Capsule) Support(dir rl.Vector3) rl.Vector3 {
	seg := c.Segment()
	p := seg.B
	if dot(dir, c.Axis) < 0 {
		p = seg.A
	}
	if n, ok := Normalize(dir); ok {
		p = addScaled(p, n, c.Radius)
	}
	return p
}

func (c Cylinder) Support(dir rl.Vector3) rl.Vector3 {
	p := addScaled(c.Center, c.Axis, signf(dot(dir, c.Axis))*c.Height/2)
	if radial, ok := Normalize(ProjectOntoPlane(dir, c.Axis)); ok {
		p = addScaled(p, radial, c.Radius)
	}
	return p
}

func (c Cone) Support(dir rl.Vector3) rl.Vector3 {
	apex := c.Apex()
	base := c.Base()
	rim := base.Center
	if radial, ok := Normalize(ProjectOntoPlane(dir, c.Axis)); ok {
		rim = addScaled(rim, radial, c.Radius)
	}
	if dot(apex, dir) >= dot(rim, dir) {
		return apex
	}
	return rim
}

func (c Circle) Support(dir rl.Vector3) rl.Vector3 {
	if radial, ok := Normalize(ProjectOntoPlane(dir, c.Normal)); ok {
		return addScaled(c.Center, radial, c.Radius)
	}
	return c.Center
}

func (p Polygon) Support(dir rl.Vector3) rl.Vector3 {
	if len(p.Vertices) == 0 {
		return rl.Vector3{}
	}
	best := p.Vertices[0]
	bestDot := dot(best, dir)
	for _, v := range p.Vertices[1:] {
		if d := dot(v, dir); d > bestDot {
			best, bestDot = v, d
		}
	}
	return best
}

// Center returns a representative interior point of a convex shape, used to seed searches.
func Center(s Shape) rl.Vector3 {
	switch v := s.(type) {
	case AABB:
		return v.Center()
	case OBB:
		return v.Center
	case Sphere:
		return v.Center
	case Capsule:
		return v.Center
	case Cylinder:
		return v.Center
	case Cone:
		return v.Center
	case Circle:
		return v.Center
	case Polygon:
		return v.Centroid()
	case Plane:
		return scale(v.Normal, v.Distance)
	}
	return rl.Vector3{}
}
