package physics

import (
	"math"

	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Edge axes must beat the best face axis by a margin before they are chosen. Face
// contacts are far more stable to clip against.
const (
	edgeRelativeTolerance = 0.95
	edgeAbsoluteTolerance = 1e-4
)

// satResult is the axis of least penetration found by separatingAxis.
type satResult struct {
	normal rl.Vector3 // unit, oriented from a toward b
	depth  float32
	index  int // index into the candidate list
}

// separatingAxis projects both shapes onto each candidate axis and reports the one of
// minimum overlap. Candidates shorter than geometry.Epsilon are skipped. The first
// faceCount candidates are face axes; the rest only win with a clear margin. ok is
// false as soon as one axis separates the shapes.
func separatingAxis(a, b geometry.Shape, candidates []rl.Vector3, faceCount int) (satResult, bool) {
	best := satResult{depth: math.MaxFloat32, index: -1}
	var bestFace float32 = math.MaxFloat32

	for i, raw := range candidates {
		if rl.Vector3Length(raw) < geometry.Epsilon {
			continue
		}
		axis := rl.Vector3Normalize(raw)

		ia := geometry.ProjectOntoAxis(a, axis)
		ib := geometry.ProjectOntoAxis(b, axis)
		if !ia.Overlaps(ib) {
			return satResult{}, false
		}

		depth := ia.Penetration(ib)
		if i >= faceCount && depth >= bestFace*edgeRelativeTolerance-edgeAbsoluteTolerance {
			continue
		}
		if depth < best.depth {
			// b sits on whichever side needs the shorter push
			n := axis
			if ib.Max-ia.Min < ia.Max-ib.Min {
				n = negate(axis)
			}
			best = satResult{normal: n, depth: depth, index: i}
		}
		if i < faceCount && depth < bestFace {
			bestFace = depth
		}
	}

	if best.index < 0 {
		return satResult{}, false
	}
	return best, true
}
