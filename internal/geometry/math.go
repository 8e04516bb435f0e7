package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// Epsilon guards zero-length vectors, parallel lines and near-parallel edge pairs.
	Epsilon = 1e-5

	// PlaneEpsilon is the smallest determinant accepted by IntersectThreePlanes.
	PlaneEpsilon = 1e-6

	// ParallelCosine is the normal alignment above which a disc is treated as parallel to a plane.
	ParallelCosine = 0.999976

	// SurfaceTolerance is the slack used by containment tests on boundary points.
	SurfaceTolerance = 1e-3
)

var (
	worldUp      = rl.Vector3{X: 0, Y: 1, Z: 0}
	worldRight   = rl.Vector3{X: 1, Y: 0, Z: 0}
	worldForward = rl.Vector3{X: 0, Y: 0, Z: 1}
)

// Up returns the world up vector used as the fallback contact normal.
func Up() rl.Vector3 {
	return worldUp
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
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

func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}

func signf(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

func dot(a, b rl.Vector3) float32 {
	return rl.Vector3DotProduct(a, b)
}

func lengthSq(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(v, v)
}

func add(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(a, b)
}

func sub(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3Subtract(a, b)
}

func scale(v rl.Vector3, s float32) rl.Vector3 {
	return rl.Vector3Scale(v, s)
}

// addScaled returns a + v*s.
func addScaled(a, v rl.Vector3, s float32) rl.Vector3 {
	return rl.Vector3Add(a, rl.Vector3Scale(v, s))
}

// Normalize returns v scaled to unit length, or false if v is too short to have a direction.
func Normalize(v rl.Vector3) (rl.Vector3, bool) {
	l := rl.Vector3Length(v)
	if l < Epsilon {
		return rl.Vector3{}, false
	}
	return rl.Vector3Scale(v, 1/l), true
}

// Perpendicular returns a unit vector orthogonal to n.
func Perpendicular(n rl.Vector3) rl.Vector3 {
	// Cross with the world axis least aligned with n
	ref := worldRight
	if absf(n.Y) < absf(n.X) && absf(n.Y) <= absf(n.Z) {
		ref = worldUp
	} else if absf(n.Z) < absf(n.X) {
		ref = worldForward
	}
	p, ok := Normalize(rl.Vector3CrossProduct(n, ref))
	if !ok {
		return worldUp
	}
	return p
}

// ProjectOntoPlane removes the component of v along the unit normal n.
func ProjectOntoPlane(v, n rl.Vector3) rl.Vector3 {
	return sub(v, scale(n, dot(v, n)))
}

// rotationAxes returns the local X, Y, Z axes for an Euler rotation in degrees,
// using the engine's X then Y then Z order.
func rotationAxes(rotation rl.Vector3) [3]rl.Vector3 {
	rotX := rl.MatrixRotateX(rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rotation.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	return [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}
}

// AxesFromRotation exposes the rotated local axes for callers building shapes from transforms.
func AxesFromRotation(rotation rl.Vector3) [3]rl.Vector3 {
	return rotationAxes(rotation)
}
