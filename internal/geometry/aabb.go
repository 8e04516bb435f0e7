package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned box. Narrow-phase routines treat it as an OBB with identity axes.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (AABB) Kind() Kind { return KindAABB }
func (AABB) isShape()   {}

func (a AABB) Center() rl.Vector3 {
	return scale(add(a.Min, a.Max), 0.5)
}

func (a AABB) HalfSize() rl.Vector3 {
	return scale(sub(a.Max, a.Min), 0.5)
}

// Intersects is the inclusive overlap test used for quick rejection.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// ToOBB returns the same box as an OBB with world axes.
func (a AABB) ToOBB() OBB {
	return OBB{
		Center:   a.Center(),
		HalfSize: a.HalfSize(),
		Axes:     [3]rl.Vector3{worldRight, worldUp, worldForward},
	}
}

// AsOBB converts either box kind to an OBB. ok is false for any other shape.
func AsOBB(s Shape) (OBB, bool) {
	switch v := s.(type) {
	case OBB:
		return v, true
	case AABB:
		return v.ToOBB(), true
	}
	return OBB{}, false
}
