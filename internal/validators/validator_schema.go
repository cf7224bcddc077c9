package validators

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"path"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema names accepted by [SchemaValidator.Validate].
const (
	SchemaPostInput = "post_input.json"
	SchemaUserInput = "user_input.json"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// SchemaValidator validates documents against the embedded JSON schemas.
// It is safe for concurrent use.
type SchemaValidator struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator compiles every embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	names := []string{SchemaPostInput, SchemaUserInput}
	for _, name := range names {
		data, err := schemaFiles.ReadFile(path.Join("schemas", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
		}
		if err = compiler.AddResource(name, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
		}
	}

	v := &SchemaValidator{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		schema, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		v.schemas[name] = schema
	}

	return v, nil
}

// Validate implements [Validator]. doc must be the output of
// json.Unmarshal into an empty interface.
func (v *SchemaValidator) Validate(ctx context.Context, doc any, schemas ...string) error {
	if len(schemas) == 0 {
		return ErrNoSchema
	}

	for _, name := range schemas {
		schema, ok := v.schemas[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
		}
		if err := schema.Validate(doc); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}

	return nil
}
