package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a half-line from Origin along a unit Direction.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// NewRay normalizes direction.
func NewRay(origin, direction rl.Vector3) Ray {
	return Ray{Origin: origin, Direction: rl.Vector3Normalize(direction)}
}

// FromRaylib converts a raylib ray.
func FromRaylib(r rl.Ray) Ray {
	return NewRay(r.Position, r.Direction)
}

func (r Ray) At(t float32) rl.Vector3 {
	return addScaled(r.Origin, r.Direction, t)
}

// RayHit is a single ray/shape intersection.
type RayHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// nearestHit keeps the smallest non-negative distance offered to it.
type nearestHit struct {
	t      float32
	normal rl.Vector3
	ok     bool
}

func (h *nearestHit) offer(t float32, normal rl.Vector3) {
	if t < 0 {
		return
	}
	if !h.ok || t < h.t {
		h.t, h.normal, h.ok = t, normal, true
	}
}

func (h nearestHit) result(r Ray) (RayHit, bool) {
	if !h.ok {
		return RayHit{}, false
	}
	return RayHit{Point: r.At(h.t), Normal: h.normal, Distance: h.t}, true
}

// RayIntersect returns the nearest forward intersection of the ray with a shape.
func RayIntersect(r Ray, s Shape) (RayHit, bool) {
	switch v := s.(type) {
	case AABB:
		return rayOBB(r, v.ToOBB())
	case OBB:
		return rayOBB(r, v)
	case Sphere:
		return raySphere(r, v.Center, v.Radius)
	case Plane:
		return rayPlane(r, v)
	case Capsule:
		return rayCapsule(r, v)
	case Cylinder:
		return rayCylinder(r, v)
	case Cone:
		return rayCone(r, v)
	case Circle:
		return rayDisc(r, v)
	case Polygon:
		return rayPolygon(r, v)
	}
	return RayHit{}, false
}

func rayOBB(r Ray, o OBB) (RayHit, bool) {
	local := sub(r.Origin, o.Center)
	tMin := float32(-math.MaxFloat32)
	tMax := float32(math.MaxFloat32)
	var nMin, nMax rl.Vector3

	for i := 0; i < 3; i++ {
		e := dot(local, o.Axes[i])
		f := dot(r.Direction, o.Axes[i])
		h := o.Extent(i)
		if absf(f) < Epsilon {
			// Parallel to this slab: must already be between its faces
			if e < -h || e > h {
				return RayHit{}, false
			}
			continue
		}
		t1 := (-h - e) / f
		t2 := (h - e) / f
		n1 := scale(o.Axes[i], -1)
		n2 := o.Axes[i]
		if t1 > t2 {
			t1, t2 = t2, t1
			n1, n2 = n2, n1
		}
		if t1 > tMin {
			tMin, nMin = t1, n1
		}
		if t2 < tMax {
			tMax, nMax = t2, n2
		}
		if tMin > tMax {
			return RayHit{}, false
		}
	}

	var hit nearestHit
	if tMin >= 0 {
		hit.offer(tMin, nMin)
	} else {
		// Origin inside the box: report the exit face
		hit.offer(tMax, nMax)
	}
	return hit.result(r)
}

func raySphere(r Ray, center rl.Vector3, radius float32) (RayHit, bool) {
	var hit nearestHit
	offerSphere(&hit, r, center, radius)
	return hit.result(r)
}

func offerSphere(hit *nearestHit, r Ray, center rl.Vector3, radius float32) {
	oc := sub(r.Origin, center)
	b := 2.0 * dot(oc, r.Direction)
	c := dot(oc, oc) - radius*radius
	t0, t1, ok := solveQuadratic(1, b, c)
	if !ok {
		return
	}
	for _, t := range [2]float32{t0, t1} {
		p := r.At(t)
		n, _ := Normalize(sub(p, center))
		hit.offer(t, n)
	}
}

func rayPlane(r Ray, p Plane) (RayHit, bool) {
	var hit nearestHit
	offerPlane(&hit, r, p, func(rl.Vector3) bool { return true })
	return hit.result(r)
}

// offerPlane intersects the ray with a plane and offers the hit if inside accepts the point.
func offerPlane(hit *nearestHit, r Ray, p Plane, inside func(rl.Vector3) bool) {
	denom := dot(p.Normal, r.Direction)
	if absf(denom) < Epsilon {
		return
	}
	t := -p.SignedDistance(r.Origin) / denom
	if t < 0 || !inside(r.At(t)) {
		return
	}
	n := p.Normal
	if denom > 0 {
		n = scale(n, -1)
	}
	hit.offer(t, n)
}

func rayDisc(r Ray, c Circle) (RayHit, bool) {
	var hit nearestHit
	offerDisc(&hit, r, c)
	return hit.result(r)
}

func offerDisc(hit *nearestHit, r Ray, c Circle) {
	offerPlane(hit, r, c.Plane(), func(p rl.Vector3) bool {
		return lengthSq(sub(p, c.Center)) <= c.Radius*c.Radius
	})
}

func rayPolygon(r Ray, poly Polygon) (RayHit, bool) {
	var hit nearestHit
	offerPlane(&hit, r, poly.Plane(), func(p rl.Vector3) bool {
		return PointInPolygon(poly, p)
	})
	return hit.result(r)
}

// offerTube intersects the ray with the lateral surface of a cylinder of the given radius
// around seg, keeping only hits between the segment's end planes.
func offerTube(hit *nearestHit, r Ray, seg Segment, radius float32) {
	axisVec := seg.Direction()
	length := rl.Vector3Length(axisVec)
	if length < Epsilon {
		return
	}
	axis := scale(axisVec, 1/length)
	co := sub(r.Origin, seg.A)
	dPerp := ProjectOntoPlane(r.Direction, axis)
	oPerp := ProjectOntoPlane(co, axis)

	a := lengthSq(dPerp)
	if a < Epsilon*Epsilon {
		return
	}
	t0, t1, ok := solveQuadratic(a, 2*dot(dPerp, oPerp), lengthSq(oPerp)-radius*radius)
	if !ok {
		return
	}
	for _, t := range [2]float32{t0, t1} {
		h := dot(co, axis) + t*dot(r.Direction, axis)
		if h < 0 || h > length {
			continue
		}
		n, _ := Normalize(add(oPerp, scale(dPerp, t)))
		hit.offer(t, n)
	}
}

func rayCylinder(r Ray, c Cylinder) (RayHit, bool) {
	var hit nearestHit
	offerTube(&hit, r, c.Segment(), c.Radius)
	for _, disc := range c.Caps() {
		offerDisc(&hit, r, disc)
	}
	return hit.result(r)
}

func rayCapsule(r Ray, c Capsule) (RayHit, bool) {
	var hit nearestHit
	seg := c.Segment()
	offerTube(&hit, r, seg, c.Radius)
	offerSphere(&hit, r, seg.A, c.Radius)
	offerSphere(&hit, r, seg.B, c.Radius)
	return hit.result(r)
}

func rayCone(r Ray, c Cone) (RayHit, bool) {
	var hit nearestHit
	apex := c.Apex()
	v := scale(c.Axis, -1) // apex toward base
	h2 := c.Height * c.Height
	cos2 := h2 / (h2 + c.Radius*c.Radius)

	co := sub(r.Origin, apex)
	dv := dot(r.Direction, v)
	cv := dot(co, v)
	a := dv*dv - cos2
	b := 2 * (dv*cv - dot(r.Direction, co)*cos2)
	cc := cv*cv - dot(co, co)*cos2

	if t0, t1, ok := solveQuadratic(a, b, cc); ok {
		for _, t := range [2]float32{t0, t1} {
			w := sub(r.At(t), apex)
			m := dot(w, v)
			// Reject the mirrored nappe and anything past the base
			if m < 0 || m > c.Height {
				continue
			}
			n, ok := Normalize(sub(scale(w, cos2), scale(v, m)))
			if !ok {
				n = c.Axis
			}
			hit.offer(t, n)
		}
	}
	offerDisc(&hit, r, c.Base())
	return hit.result(r)
}

// solveQuadratic returns the real roots of a*t^2 + b*t + c in ascending order.
// A vanishing a falls back to the linear solution.
func solveQuadratic(a, b, c float32) (float32, float32, bool) {
	if absf(a) < Epsilon*Epsilon {
		if absf(b) < Epsilon {
			return 0, 0, false
		}
		t := -c / b
		return t, t, true
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := sqrtf(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}
