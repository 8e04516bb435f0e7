package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"collide3d/internal/geometry"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Bodies []BodyDef `json:"bodies" jsonschema:"description=Bodies handed to the detector, in order"`
}

type BodyDef struct {
	Name        string     `json:"name" jsonschema:"description=Label used in output and logs"`
	Shape       ShapeDef   `json:"shape" jsonschema:"required"`
	Position    [3]float32 `json:"position" jsonschema:"description=World-space center of the shape"`
	Rotation    [3]float32 `json:"rotation,omitempty" jsonschema:"description=Euler angles in degrees applied in X then Y then Z order"`
	Immovable   bool       `json:"immovable,omitempty"`
	Asleep      bool       `json:"asleep,omitempty"`
	Friction    *float32   `json:"friction,omitempty" jsonschema:"minimum=0,maximum=1"`
	Restitution *float32   `json:"restitution,omitempty" jsonschema:"minimum=0,maximum=1"`
	Trigger     bool       `json:"trigger,omitempty"`
}

// ShapeDef describes one collider shape. Which fields apply depends on Type; the
// local up axis after rotation is the axis of capsules, cylinders and cones and the
// default normal of planes and circles.
type ShapeDef struct {
	Type     string       `json:"type" jsonschema:"enum=AABB,enum=OBB,enum=Sphere,enum=Plane,enum=Capsule,enum=Cylinder,enum=Cone,enum=Circle,enum=Polygon"`
	Size     [3]float32   `json:"size,omitempty" jsonschema:"description=Full box size (AABB and OBB)"`
	Radius   float32      `json:"radius,omitempty" jsonschema:"minimum=0"`
	Height   float32      `json:"height,omitempty" jsonschema:"minimum=0,description=Segment length of capsules; full height of cylinders and cones"`
	Normal   [3]float32   `json:"normal,omitempty" jsonschema:"description=Overrides the rotated up axis for planes and circles"`
	Vertices [][3]float32 `json:"vertices,omitempty" jsonschema:"description=Polygon vertices relative to position, counter-clockwise"`
}

// --- Loading ---

// Load reads and parses a scene file.
func Load(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scene from JSON.
func Parse(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

// Build turns every body definition into a rigidbody. The first invalid shape
// aborts the build.
func (sf *SceneFile) Build() ([]*physics.Rigidbody, error) {
	bodies := make([]*physics.Rigidbody, 0, len(sf.Bodies))
	for i, def := range sf.Bodies {
		rb, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("body %d (%q): %w", i, def.Name, err)
		}
		bodies = append(bodies, rb)
	}
	return bodies, nil
}

// Build creates the rigidbody for one definition, applying material defaults.
func (def BodyDef) Build() (*physics.Rigidbody, error) {
	shape, err := def.Shape.build(vec(def.Position), vec(def.Rotation))
	if err != nil {
		return nil, err
	}
	if err := geometry.Validate(shape); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", shape.Kind(), err)
	}

	col := physics.NewCollider(shape)
	if def.Friction != nil {
		col.Friction = *def.Friction
	}
	if def.Restitution != nil {
		col.Restitution = *def.Restitution
	}
	col.IsTrigger = def.Trigger

	rb := physics.NewRigidbody(def.Name, col)
	rb.Immovable = def.Immovable
	if def.Asleep {
		rb.Sleep()
	}
	return rb, nil
}

func (def ShapeDef) build(position, rotation rl.Vector3) (geometry.Shape, error) {
	kind, ok := geometry.ParseKind(def.Type)
	if !ok {
		return nil, fmt.Errorf("unknown shape type %q", def.Type)
	}

	axes := geometry.AxesFromRotation(rotation)
	up := axes[1]
	normal := up
	if def.Normal != [3]float32{} {
		normal = vec(def.Normal)
	}

	switch kind {
	case geometry.KindAABB:
		return geometry.NewAABBFromCenter(position, vec(def.Size)), nil
	case geometry.KindOBB:
		return geometry.NewOBB(position, vec(def.Size), rotation), nil
	case geometry.KindSphere:
		return geometry.NewSphere(position, def.Radius), nil
	case geometry.KindPlane:
		return geometry.NewPlaneFromPoint(normal, position), nil
	case geometry.KindCapsule:
		return geometry.NewCapsule(position, up, def.Radius, def.Height), nil
	case geometry.KindCylinder:
		return geometry.NewCylinder(position, up, def.Radius, def.Height), nil
	case geometry.KindCone:
		return geometry.NewCone(position, up, def.Radius, def.Height), nil
	case geometry.KindCircle:
		return geometry.NewCircle(position, normal, def.Radius), nil
	case geometry.KindPolygon:
		if len(def.Vertices) < 3 {
			return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(def.Vertices))
		}
		verts := make([]rl.Vector3, len(def.Vertices))
		for i, v := range def.Vertices {
			local := vec(v)
			world := position
			world = rl.Vector3Add(world, rl.Vector3Scale(axes[0], local.X))
			world = rl.Vector3Add(world, rl.Vector3Scale(axes[1], local.Y))
			world = rl.Vector3Add(world, rl.Vector3Scale(axes[2], local.Z))
			verts[i] = world
		}
		return geometry.NewPolygon(verts), nil
	}
	return nil, fmt.Errorf("unsupported shape type %q", def.Type)
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Saving ---

// Save writes the scene as indented JSON.
func (sf *SceneFile) Save(path string) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}
