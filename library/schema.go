package library

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema for library documents. Editors and
// validation tooling can use it to check snippet files before loading.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	return r.Reflect(&Document{})
}
