package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SettingsSchema returns a JSON Schema describing Settings.
func SettingsSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Settings{})
	sch.Title = "gconsole settings"
	sch.Description = "Keys accepted in " + SettingsFileName + " (one key=value per line)."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
