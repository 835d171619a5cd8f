package tool

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// reflector produces inline object schemas suitable for tool parameters.
// It also handles unnamed struct types such as struct{}.
var reflector = &jsonschema.Reflector{
	DoNotReference: true,
	Anonymous:      true,
}

// SchemaFor generates a JSON schema for the arguments struct T.
// Field names come from json tags; jsonschema and jsonschema_description
// tags add descriptions, enums and defaults. Fields without omitempty are required.
func SchemaFor[T any]() (json.RawMessage, error) {
	var zero T
	s := reflector.Reflect(&zero)
	s.Version = ""
	s.ID = ""
	return json.Marshal(s)
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any]() json.RawMessage {
	schema, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return schema
}
