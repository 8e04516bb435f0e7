package physics

import (
	"math"

	"collide3d/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GJK and EPA limits. Both loops return their best answer when the limit is hit.
const (
	gjkMaxIterations = 32
	epaMaxIterations = 64
	epaTolerance     = 1e-4
)

// vertex is a point of the Minkowski difference a - b together with the support
// point of a that produced it. The matching point of b is onA - v.
type vertex struct {
	v   rl.Vector3
	onA rl.Vector3
}

func support(a, b geometry.Convex, dir rl.Vector3) vertex {
	pa := a.Support(dir)
	return vertex{v: sub(pa, b.Support(negate(dir))), onA: pa}
}

// minkowski returns the support point of the Minkowski difference a - b along dir.
func minkowski(a, b geometry.Convex, dir rl.Vector3) rl.Vector3 {
	return support(a, b, dir).v
}

// simplex holds up to four Minkowski points; the newest point is last.
type simplex struct {
	points [4]vertex
	count  int
}

func (s *simplex) set(points ...vertex) {
	s.count = copy(s.points[:], points)
}

func (s *simplex) push(p vertex) {
	s.points[s.count] = p
	s.count++
}

// gjk reports whether the origin lies in a - b. On success the simplex encloses the
// origin or touches it; it may hold fewer than four points when the origin sits on a
// lower-dimensional feature.
func gjk(a, b geometry.Convex, s *simplex) bool {
	dir := sub(geometry.Center(b), geometry.Center(a))
	if lengthSq(dir) < geometry.Epsilon*geometry.Epsilon {
		dir = rl.Vector3{X: 1}
	}

	s.set(support(a, b, dir))
	dir = negate(s.points[0].v)
	if lengthSq(dir) < geometry.Epsilon*geometry.Epsilon {
		return true
	}

	for i := 0; i < gjkMaxIterations; i++ {
		p := support(a, b, dir)
		if dot(p.v, dir) <= 0 {
			return false
		}
		s.push(p)
		if s.reduce(&dir) {
			return true
		}
	}
	return false
}

// reduce keeps the feature of the simplex nearest the origin and points dir at the
// origin from it. It returns true once the origin is enclosed or touched.
func (s *simplex) reduce(dir *rl.Vector3) bool {
	switch s.count {
	case 2:
		return s.line(dir)
	case 3:
		return s.triangle(dir)
	case 4:
		return s.tetrahedron(dir)
	}
	return false
}

func (s *simplex) line(dir *rl.Vector3) bool {
	a, b := s.points[1], s.points[0]
	ab := sub(b.v, a.v)
	ao := negate(a.v)

	if dot(ab, ao) <= 0 || lengthSq(ab) < geometry.Epsilon*geometry.Epsilon {
		s.set(a)
		*dir = ao
		return lengthSq(ao) < geometry.Epsilon*geometry.Epsilon
	}
	perp := cross(cross(ab, ao), ab)
	if lengthSq(perp) < geometry.Epsilon*geometry.Epsilon {
		return true
	}
	*dir = perp
	return false
}

func (s *simplex) triangle(dir *rl.Vector3) bool {
	a, b, c := s.points[2], s.points[1], s.points[0]
	ab := sub(b.v, a.v)
	ac := sub(c.v, a.v)
	ao := negate(a.v)
	abc := cross(ab, ac)

	if lengthSq(abc) < geometry.Epsilon*geometry.Epsilon {
		s.set(b, a)
		return s.line(dir)
	}
	if dot(cross(ab, abc), ao) > 0 {
		s.set(b, a)
		return s.line(dir)
	}
	if dot(cross(abc, ac), ao) > 0 {
		s.set(c, a)
		return s.line(dir)
	}

	side := dot(abc, ao)
	switch {
	case side > 0:
		*dir = abc
	case side < 0:
		s.set(b, c, a)
		*dir = negate(abc)
	default:
		return true
	}
	return false
}

func (s *simplex) tetrahedron(dir *rl.Vector3) bool {
	a, b, c, d := s.points[3], s.points[2], s.points[1], s.points[0]
	ao := negate(a.v)

	faces := [3][3]vertex{{a, b, c}, {a, c, d}, {a, d, b}}
	opposite := [3]vertex{d, b, c}
	for i, f := range faces {
		n := cross(sub(f[1].v, f[0].v), sub(f[2].v, f[0].v))
		if dot(n, sub(opposite[i].v, a.v)) > 0 {
			n = negate(n)
		}
		if lengthSq(n) < geometry.Epsilon*geometry.Epsilon {
			s.set(c, b, a)
			return s.triangle(dir)
		}
		if dot(n, ao) > 0 {
			s.set(f[2], f[1], f[0])
			return s.triangle(dir)
		}
	}
	return true
}

// complete grows a touching simplex into a tetrahedron so EPA has a volume to expand.
// It fails when a - b is flat along the axis directions tried.
func (s *simplex) complete(a, b geometry.Convex) bool {
	const minSpread = 1e-4

	axes := []rl.Vector3{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}}
	for s.count == 1 {
		added := false
		for _, dir := range axes {
			if p := support(a, b, dir); lengthSq(sub(p.v, s.points[0].v)) > minSpread*minSpread {
				s.push(p)
				added = true
				break
			}
		}
		if !added {
			return false
		}
	}

	if s.count == 2 {
		ab, _ := geometry.Normalize(sub(s.points[1].v, s.points[0].v))
		u := geometry.Perpendicular(ab)
		v := cross(ab, u)
		added := false
		for _, dir := range []rl.Vector3{u, negate(u), v, negate(v)} {
			p := support(a, b, dir)
			if lengthSq(cross(ab, sub(p.v, s.points[0].v))) > minSpread*minSpread {
				s.push(p)
				added = true
				break
			}
		}
		if !added {
			return false
		}
	}

	if s.count == 3 {
		n, ok := geometry.Normalize(cross(sub(s.points[1].v, s.points[0].v), sub(s.points[2].v, s.points[0].v)))
		if !ok {
			return false
		}
		added := false
		for _, dir := range []rl.Vector3{n, negate(n)} {
			p := support(a, b, dir)
			if absf(dot(sub(p.v, s.points[0].v), n)) > minSpread {
				s.push(p)
				added = true
				break
			}
		}
		if !added {
			return false
		}
	}
	return s.count == 4
}

// polytopeFace is a triangle of the EPA polytope wound counter-clockwise seen from
// outside.
type polytopeFace struct {
	a, b, c  int
	normal   rl.Vector3
	distance float32
}

type polytopeEdge struct {
	a, b int
}

type polytope struct {
	vertices []vertex
	faces    []polytopeFace
}

func (p *polytope) addFace(a, b, c int) {
	n, ok := geometry.Normalize(cross(sub(p.vertices[b].v, p.vertices[a].v), sub(p.vertices[c].v, p.vertices[a].v)))
	f := polytopeFace{a: a, b: b, c: c, normal: n, distance: math.MaxFloat32}
	if ok {
		f.distance = dot(n, p.vertices[a].v)
	}
	p.faces = append(p.faces, f)
}

func (p *polytope) closest() int {
	best := 0
	for i := range p.faces {
		if p.faces[i].distance < p.faces[best].distance {
			best = i
		}
	}
	return best
}

// expand adds v, replacing every face that can see it by a fan around the horizon.
func (p *polytope) expand(v vertex) {
	idx := len(p.vertices)
	p.vertices = append(p.vertices, v)

	var horizon []polytopeEdge
	addEdge := func(a, b int) {
		for i, e := range horizon {
			if e.a == b && e.b == a {
				horizon = append(horizon[:i], horizon[i+1:]...)
				return
			}
		}
		horizon = append(horizon, polytopeEdge{a: a, b: b})
	}

	kept := p.faces[:0]
	for _, f := range p.faces {
		if dot(f.normal, sub(v.v, p.vertices[f.a].v)) > 0 {
			addEdge(f.a, f.b)
			addEdge(f.b, f.c)
			addEdge(f.c, f.a)
			continue
		}
		kept = append(kept, f)
	}
	p.faces = kept

	for _, e := range horizon {
		p.addFace(e.a, e.b, idx)
	}
}

// penetration is what EPA measures: the normal from a toward b, the depth along it,
// and the deepest point of each shape inside the other.
type penetration struct {
	normal rl.Vector3
	depth  float32
	onA    rl.Vector3
	onB    rl.Vector3
}

// contact is halfway between the two witness points, inside both shapes.
func (p penetration) contact() rl.Vector3 {
	return scale(add(p.onA, p.onB), 0.5)
}

// witness maps the point of face f nearest the origin back onto both shapes using
// its barycentric coordinates in the face.
func (p *polytope) witness(f polytopeFace) penetration {
	va, vb, vc := p.vertices[f.a], p.vertices[f.b], p.vertices[f.c]
	proj := scale(f.normal, f.distance)

	u, v, w := float32(1)/3, float32(1)/3, float32(1)/3
	e0 := sub(vb.v, va.v)
	e1 := sub(vc.v, va.v)
	e2 := sub(proj, va.v)
	d00, d01, d11 := dot(e0, e0), dot(e0, e1), dot(e1, e1)
	d20, d21 := dot(e2, e0), dot(e2, e1)
	if denom := d00*d11 - d01*d01; absf(denom) > geometry.Epsilon*geometry.Epsilon {
		v = (d11*d20 - d01*d21) / denom
		w = (d00*d21 - d01*d20) / denom
		u = 1 - v - w
	}

	onA := add(add(scale(va.onA, u), scale(vb.onA, v)), scale(vc.onA, w))
	return penetration{
		normal: f.normal,
		depth:  f.distance,
		onA:    onA,
		onB:    sub(onA, proj),
	}
}

// epa finds the face of a - b nearest the origin, starting from a tetrahedron, and
// returns the penetration it describes.
func epa(a, b geometry.Convex, s *simplex) penetration {
	v0, v1, v2, v3 := s.points[0], s.points[1], s.points[2], s.points[3]
	if dot(cross(sub(v1.v, v0.v), sub(v2.v, v0.v)), sub(v3.v, v0.v)) > 0 {
		v1, v2 = v2, v1
	}

	poly := polytope{vertices: []vertex{v0, v1, v2, v3}}
	poly.addFace(0, 1, 2)
	poly.addFace(0, 3, 1)
	poly.addFace(0, 2, 3)
	poly.addFace(1, 3, 2)

	var best polytopeFace
	for i := 0; i < epaMaxIterations && len(poly.faces) > 0; i++ {
		best = poly.faces[poly.closest()]
		v := support(a, b, best.normal)
		if dot(v.v, best.normal)-best.distance < epaTolerance {
			break
		}
		poly.expand(v)
	}
	return poly.witness(best)
}

// penetrate runs GJK and then EPA. It fails when the shapes are apart or the overlap
// is too thin to measure.
func penetrate(a, b geometry.Convex) (penetration, bool) {
	var s simplex
	if !gjk(a, b, &s) {
		return penetration{}, false
	}
	if s.count < 4 && !s.complete(a, b) {
		return penetration{}, false
	}

	pen := epa(a, b, &s)
	if pen.depth <= geometry.Epsilon || pen.depth == math.MaxFloat32 {
		return penetration{}, false
	}
	return pen, true
}

// convexConvex is the general path for convex pairs without a closed form. GJK decides
// overlap and EPA measures the penetration; the single contact sits between the
// deepest points of both shapes.
func convexConvex(a, b *Rigidbody, reg *Registry) bool {
	pen, ok := penetrate(a.Collider.Convex(), b.Collider.Convex())
	if !ok {
		return false
	}

	m := reg.Generate(a, b)
	m.Normal = pen.normal
	m.AddContact(pen.contact(), pen.depth)
	return true
}

// midpointContact is the last-resort contact for the closed-form routines when
// clipping finds nothing: the EPA contact when it can be measured, otherwise halfway
// between the support points along n.
func midpointContact(a, b geometry.Convex, n rl.Vector3) rl.Vector3 {
	if pen, ok := penetrate(a, b); ok {
		return pen.contact()
	}
	return scale(add(a.Support(n), b.Support(negate(n))), 0.5)
}
