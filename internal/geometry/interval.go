package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Interval is the range a shape covers when projected onto an axis.
type Interval struct {
	Min, Max float32
}

// Overlaps reports strict overlap; touching intervals do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Min < b.Max && b.Min < a.Max
}

// Penetration is how far the intervals would have to move apart to stop overlapping.
func (a Interval) Penetration(b Interval) float32 {
	return minf(b.Max-a.Min, a.Max-b.Min)
}

func centered(center rl.Vector3, axis rl.Vector3, radius float32) Interval {
	c := dot(center, axis)
	return Interval{Min: c - radius, Max: c + radius}
}

// ProjectOntoAxis projects a shape onto a unit axis.
func ProjectOntoAxis(s Shape, axis rl.Vector3) Interval {
	switch v := s.(type) {
	case OBB:
		return centered(v.Center, axis, obbRadius(v, axis))
	case AABB:
		o := v.ToOBB()
		return centered(o.Center, axis, obbRadius(o, axis))
	case Sphere:
		return centered(v.Center, axis, v.Radius)
	case Capsule:
		return centered(v.Center, axis, v.Height/2*absf(dot(axis, v.Axis))+v.Radius)
	case Cylinder:
		return centered(v.Center, axis, cylinderRadius(v.Axis, v.Radius, v.Height, axis))
	case Plane:
		// A half-space is unbounded unless the axis is its normal.
		cos := dot(axis, v.Normal)
		if absf(cos) < ParallelCosine {
			return Interval{Min: -math.MaxFloat32, Max: math.MaxFloat32}
		}
		d := v.Distance * signf(cos)
		if cos > 0 {
			return Interval{Min: -math.MaxFloat32, Max: d}
		}
		return Interval{Min: d, Max: math.MaxFloat32}
	case Convex:
		return Interval{
			Min: dot(v.Support(scale(axis, -1)), axis),
			Max: dot(v.Support(axis), axis),
		}
	}
	return Interval{}
}

func obbRadius(o OBB, axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(dot(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(dot(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(dot(o.Axes[2], axis))
}

// cylinderRadius is the half-length of a cylinder's projection: the height extent
// along its own axis plus the radius extent perpendicular to it.
func cylinderRadius(cylAxis rl.Vector3, radius, height float32, axis rl.Vector3) float32 {
	cos := absf(dot(axis, cylAxis))
	sin := sqrtf(1 - cos*cos)
	return height/2*cos + radius*sin
}
