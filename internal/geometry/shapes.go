package geometry

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind identifies which geometric variant a Shape holds.
type Kind uint8

const (
	KindAABB Kind = iota
	KindOBB
	KindSphere
	KindPlane
	KindCapsule
	KindCylinder
	KindCone
	KindCircle
	KindPolygon

	// NumKinds is the number of shape kinds; dispatch tables are NumKinds x NumKinds.
	NumKinds
)

var kindNames = [NumKinds]string{
	KindAABB:     "AABB",
	KindOBB:      "OBB",
	KindSphere:   "Sphere",
	KindPlane:    "Plane",
	KindCapsule:  "Capsule",
	KindCylinder: "Cylinder",
	KindCone:     "Cone",
	KindCircle:   "Circle",
	KindPolygon:  "Polygon",
}

func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a kind name (as returned by String) back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Shape is the closed set of collision primitives. Every shape is a world-space value.
type Shape interface {
	Kind() Kind
	isShape()
}

// Convex is a bounded shape that can answer support queries.
// Support returns the point of the shape furthest along dir.
type Convex interface {
	Shape
	Support(dir rl.Vector3) rl.Vector3
}

// Segment is the line segment from A to B.
type Segment struct {
	A, B rl.Vector3
}

// Direction returns B - A.
func (s Segment) Direction() rl.Vector3 {
	return sub(s.B, s.A)
}

// PointAt returns A + t*(B-A).
func (s Segment) PointAt(t float32) rl.Vector3 {
	return addScaled(s.A, s.Direction(), t)
}

// Sphere is a solid ball.
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func NewSphere(center rl.Vector3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

func (Sphere) Kind() Kind { return KindSphere }
func (Sphere) isShape()   {}

// Plane is the set of points p with dot(Normal, p) == Distance. The half-space
// dot(Normal, p) < Distance is solid.
type Plane struct {
	Normal   rl.Vector3
	Distance float32
}

// NewPlane normalizes the normal and scales the distance to match.
func NewPlane(normal rl.Vector3, distance float32) Plane {
	l := rl.Vector3Length(normal)
	if l < Epsilon {
		return Plane{Normal: worldUp, Distance: distance}
	}
	return Plane{Normal: scale(normal, 1/l), Distance: distance / l}
}

// NewPlaneFromPoint builds the plane through point with the given normal.
func NewPlaneFromPoint(normal, point rl.Vector3) Plane {
	n, ok := Normalize(normal)
	if !ok {
		n = worldUp
	}
	return Plane{Normal: n, Distance: dot(n, point)}
}

func (Plane) Kind() Kind { return KindPlane }
func (Plane) isShape()   {}

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, full size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes:     rotationAxes(rotation),
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes:     [3]rl.Vector3{worldRight, worldUp, worldForward},
	}
}

func (OBB) Kind() Kind { return KindOBB }
func (OBB) isShape()   {}

// Extent returns the half-extent along local axis i.
func (o OBB) Extent(i int) float32 {
	switch i {
	case 0:
		return o.HalfSize.X
	case 1:
		return o.HalfSize.Y
	default:
		return o.HalfSize.Z
	}
}

// Capsule is a segment of length Height along Axis, swept by a sphere of Radius.
type Capsule struct {
	Center rl.Vector3
	Axis   rl.Vector3
	Right  rl.Vector3
	Radius float32
	Height float32
}

func NewCapsule(center, axis rl.Vector3, radius, height float32) Capsule {
	a, r := orthonormalPair(axis)
	return Capsule{Center: center, Axis: a, Right: r, Radius: radius, Height: height}
}

func (Capsule) Kind() Kind { return KindCapsule }
func (Capsule) isShape()   {}

// Segment returns the central segment between the two hemisphere centers.
func (c Capsule) Segment() Segment {
	half := scale(c.Axis, c.Height/2)
	return Segment{A: sub(c.Center, half), B: add(c.Center, half)}
}

// Cylinder is a solid circular cylinder with caps at Center ± Axis*Height/2.
type Cylinder struct {
	Center rl.Vector3
	Axis   rl.Vector3
	Right  rl.Vector3
	Radius float32
	Height float32
}

func NewCylinder(center, axis rl.Vector3, radius, height float32) Cylinder {
	a, r := orthonormalPair(axis)
	return Cylinder{Center: center, Axis: a, Right: r, Radius: radius, Height: height}
}

func (Cylinder) Kind() Kind { return KindCylinder }
func (Cylinder) isShape()   {}

// Segment returns the axis segment between the two cap centers.
func (c Cylinder) Segment() Segment {
	half := scale(c.Axis, c.Height/2)
	return Segment{A: sub(c.Center, half), B: add(c.Center, half)}
}

// Caps returns the bottom and top cap discs.
func (c Cylinder) Caps() [2]Circle {
	half := scale(c.Axis, c.Height/2)
	return [2]Circle{
		{Center: sub(c.Center, half), Normal: scale(c.Axis, -1), Right: c.Right, Radius: c.Radius},
		{Center: add(c.Center, half), Normal: c.Axis, Right: c.Right, Radius: c.Radius},
	}
}

// Cone has its apex at Center + Axis*Height/2 and its base disc at Center - Axis*Height/2.
type Cone struct {
	Center rl.Vector3
	Axis   rl.Vector3
	Right  rl.Vector3
	Radius float32
	Height float32
}

func NewCone(center, axis rl.Vector3, radius, height float32) Cone {
	a, r := orthonormalPair(axis)
	return Cone{Center: center, Axis: a, Right: r, Radius: radius, Height: height}
}

func (Cone) Kind() Kind { return KindCone }
func (Cone) isShape()   {}

func (c Cone) Apex() rl.Vector3 {
	return addScaled(c.Center, c.Axis, c.Height/2)
}

// Base returns the base disc, facing away from the apex.
func (c Cone) Base() Circle {
	return Circle{
		Center: addScaled(c.Center, c.Axis, -c.Height/2),
		Normal: scale(c.Axis, -1),
		Right:  c.Right,
		Radius: c.Radius,
	}
}

// Circle is a flat disc embedded in 3D space.
type Circle struct {
	Center rl.Vector3
	Normal rl.Vector3
	Right  rl.Vector3
	Radius float32
}

func NewCircle(center, normal rl.Vector3, radius float32) Circle {
	n, r := orthonormalPair(normal)
	return Circle{Center: center, Normal: n, Right: r, Radius: radius}
}

func (Circle) Kind() Kind { return KindCircle }
func (Circle) isShape()   {}

// Forward completes Normal and Right to a right-handed basis.
func (c Circle) Forward() rl.Vector3 {
	return rl.Vector3CrossProduct(c.Normal, c.Right)
}

// Plane returns the plane the disc lies in.
func (c Circle) Plane() Plane {
	return Plane{Normal: c.Normal, Distance: dot(c.Normal, c.Center)}
}

// Polygon is a planar convex polygon with vertices wound counter-clockwise about Normal.
type Polygon struct {
	Vertices []rl.Vector3
	Normal   rl.Vector3
}

// NewPolygon computes the polygon normal from its winding (Newell's method).
func NewPolygon(vertices []rl.Vector3) Polygon {
	var n rl.Vector3
	for i := range vertices {
		cur := vertices[i]
		next := vertices[(i+1)%len(vertices)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	normal, ok := Normalize(n)
	if !ok {
		normal = worldUp
	}
	verts := make([]rl.Vector3, len(vertices))
	copy(verts, vertices)
	return Polygon{Vertices: verts, Normal: normal}
}

func (Polygon) Kind() Kind { return KindPolygon }
func (Polygon) isShape()   {}

// Centroid returns the vertex average.
func (p Polygon) Centroid() rl.Vector3 {
	var c rl.Vector3
	if len(p.Vertices) == 0 {
		return c
	}
	for _, v := range p.Vertices {
		c = add(c, v)
	}
	return scale(c, 1/float32(len(p.Vertices)))
}

// Plane returns the plane the polygon lies in.
func (p Polygon) Plane() Plane {
	if len(p.Vertices) == 0 {
		return Plane{Normal: p.Normal}
	}
	return Plane{Normal: p.Normal, Distance: dot(p.Normal, p.Vertices[0])}
}

// orthonormalPair normalizes axis and picks a unit vector perpendicular to it.
func orthonormalPair(axis rl.Vector3) (rl.Vector3, rl.Vector3) {
	a, ok := Normalize(axis)
	if !ok {
		a = worldUp
	}
	return a, Perpendicular(a)
}

// Validate reports the first broken invariant of a shape: negative sizes, non-unit or
// non-orthogonal axes, or a degenerate polygon.
func Validate(s Shape) error {
	const axisTolerance = 1e-3

	unit := func(name string, v rl.Vector3) error {
		if absf(rl.Vector3Length(v)-1) > axisTolerance {
			return fmt.Errorf("%s: %s is not unit length", s.Kind(), name)
		}
		return nil
	}
	orthogonal := func(a, b rl.Vector3) error {
		if absf(dot(a, b)) > axisTolerance {
			return fmt.Errorf("%s: axes are not orthogonal", s.Kind())
		}
		return nil
	}
	nonNegative := func(name string, v float32) error {
		if v < 0 {
			return fmt.Errorf("%s: %s is negative (%v)", s.Kind(), name, v)
		}
		return nil
	}

	switch v := s.(type) {
	case AABB:
		if v.Min.X > v.Max.X || v.Min.Y > v.Max.Y || v.Min.Z > v.Max.Z {
			return fmt.Errorf("AABB: min exceeds max")
		}
	case OBB:
		for i := 0; i < 3; i++ {
			if err := nonNegative("extent", v.Extent(i)); err != nil {
				return err
			}
			if err := unit("axis", v.Axes[i]); err != nil {
				return err
			}
		}
		for i := 0; i < 3; i++ {
			if err := orthogonal(v.Axes[i], v.Axes[(i+1)%3]); err != nil {
				return err
			}
		}
	case Sphere:
		return nonNegative("radius", v.Radius)
	case Plane:
		return unit("normal", v.Normal)
	case Capsule:
		return validateRound(v.Axis, v.Right, v.Radius, v.Height, unit, orthogonal, nonNegative)
	case Cylinder:
		return validateRound(v.Axis, v.Right, v.Radius, v.Height, unit, orthogonal, nonNegative)
	case Cone:
		return validateRound(v.Axis, v.Right, v.Radius, v.Height, unit, orthogonal, nonNegative)
	case Circle:
		return validateRound(v.Normal, v.Right, v.Radius, 0, unit, orthogonal, nonNegative)
	case Polygon:
		if len(v.Vertices) < 3 {
			return fmt.Errorf("Polygon: needs at least 3 vertices, got %d", len(v.Vertices))
		}
		if err := unit("normal", v.Normal); err != nil {
			return err
		}
		plane := v.Plane()
		for _, p := range v.Vertices {
			if absf(plane.SignedDistance(p)) > axisTolerance {
				return fmt.Errorf("Polygon: vertices are not coplanar")
			}
		}
	}
	return nil
}

func validateRound(axis, right rl.Vector3, radius, height float32,
	unit func(string, rl.Vector3) error,
	orthogonal func(a, b rl.Vector3) error,
	nonNegative func(string, float32) error) error {
	if err := unit("axis", axis); err != nil {
		return err
	}
	if err := unit("right", right); err != nil {
		return err
	}
	if err := orthogonal(axis, right); err != nil {
		return err
	}
	if err := nonNegative("radius", radius); err != nil {
		return err
	}
	return nonNegative("height", height)
}
