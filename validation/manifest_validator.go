// Package validation checks provider manifests against JSON schemas
// before they are turned into registrable providers.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// SchemaManifestValidator implements ManifestValidator using compiled
// JSON schemas from a SchemaSource. The compiled schema is cached and
// recompiled only when the source's schema text changes.
type SchemaManifestValidator struct {
	schemas SchemaSource

	mu          sync.Mutex
	compiledFor string
	compiled    *jsonschema.Schema
}

var _ ManifestValidator = (*SchemaManifestValidator)(nil)

// NewManifestValidator creates a validator backed by the given schemas.
func NewManifestValidator(schemas SchemaSource) *SchemaManifestValidator {
	return &SchemaManifestValidator{schemas: schemas}
}

// Validate checks a raw manifest document against the manifest schema.
// The document may be YAML or JSON; YAML is normalized to JSON types
// before validation. A schema violation yields Valid=false with the
// violations listed; a missing schema or unparseable document is an error.
func (v *SchemaManifestValidator) Validate(document []byte) (*ValidationResult, error) {
	schemaStr, ok := v.schemas.GetSchema(ManifestSchemaKind)
	if !ok {
		return nil, fmt.Errorf("no schema registered for kind %q", ManifestSchemaKind)
	}

	schema, err := v.compiledSchema(schemaStr)
	if err != nil {
		return nil, err
	}

	instance, err := normalize(document)
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(instance); err != nil {
		result := &ValidationResult{Valid: false}
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			for _, cause := range ve.BasicOutput().Errors {
				if cause.Error == "" {
					continue
				}
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", cause.InstanceLocation, cause.Error))
			}
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
		return result, nil
	}

	return &ValidationResult{Valid: true}, nil
}

// compiledSchema returns the cached compiled schema, recompiling when
// the schema text differs from the one the cache was built from.
func (v *SchemaManifestValidator) compiledSchema(schemaStr string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.compiled != nil && v.compiledFor == schemaStr {
		return v.compiled, nil
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("manifest.json", strings.NewReader(schemaStr)); err != nil {
		return nil, fmt.Errorf("invalid manifest schema: %w", err)
	}
	schema, err := compiler.Compile("manifest.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile manifest schema: %w", err)
	}

	v.compiledFor = schemaStr
	v.compiled = schema
	return schema, nil
}

// normalize decodes a YAML or JSON document and round-trips it through
// JSON so the validator sees JSON-typed values only.
func normalize(document []byte) (interface{}, error) {
	var raw interface{}
	if err := yaml.Unmarshal(document, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest document: %w", err)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("manifest document is not JSON-representable: %w", err)
	}

	var instance interface{}
	if err := json.Unmarshal(b, &instance); err != nil {
		return nil, fmt.Errorf("failed to normalize manifest document: %w", err)
	}
	return instance, nil
}
