package scene

import "github.com/invopop/jsonschema"

// Schema describes the scene file format for editors and validators.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(SceneFile))
	schema.Title = "collide3d scene"
	schema.Description = "Bodies and collider shapes loaded by the collide command"
	return schema
}
