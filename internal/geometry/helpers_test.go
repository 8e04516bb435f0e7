package geometry

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func vec3(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func near(a, b, eps float32) bool {
	return absf(a-b) <= eps
}

func nearVec(a, b rl.Vector3, eps float32) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps)
}

func expectVec(t *testing.T, what string, got, want rl.Vector3) {
	t.Helper()
	if !nearVec(got, want, 1e-4) {
		t.Errorf("Expected %s (%.4f, %.4f, %.4f), got (%.4f, %.4f, %.4f)",
			what, want.X, want.Y, want.Z, got.X, got.Y, got.Z)
	}
}
