package physics

import (
	"collide3d/internal/geometry"
)

// Default material values, matching what the engine hands new rigidbodies.
const (
	DefaultFriction    = 0.1
	DefaultRestitution = 0.5
)

// Collider owns exactly one shape plus the material hints the solver reads.
// The narrow phase never copies material values onto manifolds; consumers
// re-join them through Manifold.Bodies.
type Collider struct {
	Shape       geometry.Shape
	Friction    float32 // 0 = ice, 1 = stops immediately
	Restitution float32 // 0 = no bounce, 1 = perfect bounce
	IsTrigger   bool
}

func NewCollider(shape geometry.Shape) *Collider {
	return &Collider{
		Shape:       shape,
		Friction:    DefaultFriction,
		Restitution: DefaultRestitution,
	}
}

// Kind is the dispatch tag of the held shape.
func (c *Collider) Kind() geometry.Kind {
	return c.Shape.Kind()
}

// Typed accessors. Dispatch guarantees the kind, so a mismatch is a programming error
// and panics like any failed type assertion.

func (c *Collider) Sphere() geometry.Sphere     { return c.Shape.(geometry.Sphere) }
func (c *Collider) Plane() geometry.Plane       { return c.Shape.(geometry.Plane) }
func (c *Collider) Capsule() geometry.Capsule   { return c.Shape.(geometry.Capsule) }
func (c *Collider) Cylinder() geometry.Cylinder { return c.Shape.(geometry.Cylinder) }
func (c *Collider) Cone() geometry.Cone         { return c.Shape.(geometry.Cone) }
func (c *Collider) Circle() geometry.Circle     { return c.Shape.(geometry.Circle) }
func (c *Collider) Polygon() geometry.Polygon   { return c.Shape.(geometry.Polygon) }

// Box returns the collider as an OBB; AABB colliders are converted.
func (c *Collider) Box() geometry.OBB {
	o, ok := geometry.AsOBB(c.Shape)
	if !ok {
		panic("physics: collider " + c.Kind().String() + " is not a box")
	}
	return o
}

// Convex returns the collider's support-mapped form for the GJK path.
func (c *Collider) Convex() geometry.Convex {
	return c.Shape.(geometry.Convex)
}

// Rigidbody is the narrow phase's read-only view of a simulated body.
// Integration and the sleep policy live outside this package.
type Rigidbody struct {
	Name      string
	Collider  *Collider
	Immovable bool // static geometry: never pushed by the solver
	IsAwake   bool
}

func NewRigidbody(name string, collider *Collider) *Rigidbody {
	return &Rigidbody{
		Name:     name,
		Collider: collider,
		IsAwake:  true,
	}
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsAwake = true
}

// Sleep marks the rigidbody as resting.
func (r *Rigidbody) Sleep() {
	r.IsAwake = false
}

func (r *Rigidbody) String() string {
	if r == nil {
		return "<nil>"
	}
	if r.Name != "" {
		return r.Name
	}
	if r.Collider != nil {
		return r.Collider.Kind().String()
	}
	return "rigidbody"
}
