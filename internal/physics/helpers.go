package physics

import (
	"math"

	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func dot(a, b rl.Vector3) float32 {
	return rl.Vector3DotProduct(a, b)
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

func negate(v rl.Vector3) rl.Vector3 {
	return rl.Vector3Scale(v, -1)
}

func cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3CrossProduct(a, b)
}

func lengthSq(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(v, v)
}

func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// orientAlong flips n so that it does not point against dir.
func orientAlong(n, dir rl.Vector3) rl.Vector3 {
	if dot(n, dir) < 0 {
		return negate(n)
	}
	return n
}

// fallbackNormal picks a separating direction when the closest features coincide:
// the center-to-center direction if it exists, otherwise the given axis.
func fallbackNormal(centerA, centerB, axis rl.Vector3) rl.Vector3 {
	if n, ok := geometry.Normalize(sub(centerB, centerA)); ok {
		return n
	}
	return axis
}

// candidate is a contact point with its own depth, used before a manifold is filled.
type candidate struct {
	point rl.Vector3
	depth float32
}

// appendUnique adds p unless a point within weldDistance is already present.
func appendUnique(points []rl.Vector3, p rl.Vector3) []rl.Vector3 {
	const weldDistance = 1e-4
	for _, q := range points {
		if lengthSq(sub(p, q)) < weldDistance*weldDistance {
			return points
		}
	}
	return append(points, p)
}

// reduceToFour keeps at most four points that span the largest area on the contact
// plane: the first point, the point furthest from it, and the two points that make the
// largest triangles on either side of that diagonal.
func reduceToFour(points []rl.Vector3, normal rl.Vector3) []rl.Vector3 {
	if len(points) <= MaxContacts {
		return points
	}
	p0 := points[0]

	i1 := 1
	best := float32(-1)
	for i, p := range points {
		if d := lengthSq(sub(p, p0)); d > best {
			i1, best = i, d
		}
	}
	p1 := points[i1]
	diag := sub(p1, p0)

	i2, i3 := -1, -1
	var maxArea, minArea float32
	for i, p := range points {
		if i == 0 || i == i1 {
			continue
		}
		area := dot(cross(diag, sub(p, p0)), normal)
		if area > maxArea {
			i2, maxArea = i, area
		}
		if area < minArea {
			i3, minArea = i, area
		}
	}

	out := []rl.Vector3{p0, p1}
	if i2 >= 0 {
		out = append(out, points[i2])
	}
	if i3 >= 0 {
		out = append(out, points[i3])
	}
	return out
}

// deepestFour keeps the four deepest candidates, deepest first.
func deepestFour(cands []candidate) []candidate {
	// Insertion sort: candidate lists are at most a handful long
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && cands[j].depth > cands[j-1].depth; j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}
	if len(cands) > MaxContacts {
		return cands[:MaxContacts]
	}
	return cands
}
