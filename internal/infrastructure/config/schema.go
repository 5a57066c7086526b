package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/gstwebsrc/internal/domain/entity"
)

// SchemaID identifies the engine options schema.
const SchemaID = "https://github.com/bnema/gstwebsrc/engine-options.schema.json"

// EngineOptionsSchema returns the JSON schema of entity.EngineOptions,
// indented for display.
func EngineOptionsSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.EngineOptions{})

	schema.ID = SchemaID
	schema.Title = "Web engine options"
	schema.Description = "Process-wide options the webkitwebsrc element publishes to the web engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
