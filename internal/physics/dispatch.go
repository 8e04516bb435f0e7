package physics

import (
	"fmt"
	"strings"

	"collide3d/internal/geometry"
)

// CollisionFunc tests one ordered pair of bodies. On overlap it appends at least one
// manifold to reg, with the normal pointing from a to b, and returns true.
type CollisionFunc func(a, b *Rigidbody, reg *Registry) bool

// DispatchTable maps a pair of shape kinds to the routine that collides them. It is
// filled once by NewDispatchTable and read-only afterwards.
type DispatchTable struct {
	cells [geometry.NumKinds][geometry.NumKinds]CollisionFunc
}

// NewDispatchTable registers every canonical pair, then sends the remaining convex
// combinations to the GJK path.
func NewDispatchTable() *DispatchTable {
	t := &DispatchTable{}

	t.register(geometry.KindSphere, geometry.KindSphere, sphereSphere)
	t.register(geometry.KindAABB, geometry.KindSphere, boxSphere)
	t.register(geometry.KindOBB, geometry.KindSphere, boxSphere)

	t.register(geometry.KindPlane, geometry.KindSphere, planeSphere)
	t.register(geometry.KindPlane, geometry.KindAABB, planeBox)
	t.register(geometry.KindPlane, geometry.KindOBB, planeBox)
	t.register(geometry.KindPlane, geometry.KindCapsule, planeCapsule)
	t.register(geometry.KindPlane, geometry.KindCylinder, planeCylinder)
	t.register(geometry.KindPlane, geometry.KindCircle, planeCircle)
	t.register(geometry.KindPlane, geometry.KindCone, planeCone)
	t.register(geometry.KindPlane, geometry.KindPolygon, planePolygon)
	t.register(geometry.KindPlane, geometry.KindPlane, planePlane)

	t.register(geometry.KindCapsule, geometry.KindCapsule, capsuleCapsule)
	t.register(geometry.KindCapsule, geometry.KindCylinder, capsuleCylinder)

	t.register(geometry.KindSphere, geometry.KindCapsule, sphereCapsule)
	t.register(geometry.KindSphere, geometry.KindCylinder, sphereCylinder)
	t.register(geometry.KindSphere, geometry.KindCircle, sphereCircle)
	t.register(geometry.KindSphere, geometry.KindPolygon, spherePolygon)

	t.register(geometry.KindAABB, geometry.KindAABB, boxBox)
	t.register(geometry.KindOBB, geometry.KindOBB, boxBox)
	t.register(geometry.KindAABB, geometry.KindOBB, boxBox)

	t.register(geometry.KindCylinder, geometry.KindAABB, cylinderBox)
	t.register(geometry.KindCylinder, geometry.KindOBB, cylinderBox)
	t.register(geometry.KindCylinder, geometry.KindCylinder, cylinderCylinder)

	t.register(geometry.KindCircle, geometry.KindCircle, circleCircle)

	for ka := geometry.Kind(0); ka < geometry.NumKinds; ka++ {
		for kb := ka; kb < geometry.NumKinds; kb++ {
			if ka == geometry.KindPlane || kb == geometry.KindPlane || t.cells[ka][kb] != nil {
				continue
			}
			t.register(ka, kb, convexConvex)
		}
	}
	return t
}

// register installs fn for (ka, kb) and its mirror for (kb, ka).
func (t *DispatchTable) register(ka, kb geometry.Kind, fn CollisionFunc) {
	t.cells[ka][kb] = fn
	if ka != kb {
		t.cells[kb][ka] = mirrored(fn)
	}
}

// mirrored runs a canonical routine with its arguments swapped, then restores the
// caller's order on every manifold that call appended: bodies swap back and the
// normal is negated so it still points from Bodies[0] to Bodies[1].
func mirrored(fn CollisionFunc) CollisionFunc {
	return func(a, b *Rigidbody, reg *Registry) bool {
		start := reg.Count()
		hit := fn(b, a, reg)
		for i := start; i < reg.Count(); i++ {
			reg.At(i).flip()
		}
		return hit
	}
}

// Lookup returns the routine for a pair of kinds, or nil if none is registered.
func (t *DispatchTable) Lookup(ka, kb geometry.Kind) CollisionFunc {
	if ka >= geometry.NumKinds || kb >= geometry.NumKinds {
		return nil
	}
	return t.cells[ka][kb]
}

// Validate reports every empty cell. A table that fails here must not be used.
func (t *DispatchTable) Validate() error {
	var missing []string
	for ka := geometry.Kind(0); ka < geometry.NumKinds; ka++ {
		for kb := geometry.Kind(0); kb < geometry.NumKinds; kb++ {
			if t.cells[ka][kb] == nil {
				missing = append(missing, ka.String()+"/"+kb.String())
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("no collision routine for %s", strings.Join(missing, ", "))
	}
	return nil
}

// Collide runs the routine for the pair's kinds. Manifolds left behind by a routine
// that reports no overlap are discarded.
func (t *DispatchTable) Collide(a, b *Rigidbody, reg *Registry) bool {
	fn := t.Lookup(a.Collider.Kind(), b.Collider.Kind())
	if fn == nil {
		return false
	}
	start := reg.Count()
	if !fn(a, b, reg) {
		reg.truncate(start)
		return false
	}
	return true
}
