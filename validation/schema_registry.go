package validation

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/questkit-dev/questkit-host-sdk/manifest"
)

// ManifestSchemaKind is the schema kind the manifest validator looks up.
const ManifestSchemaKind = "manifest"

// SchemaRegistry stores JSON schemas by kind using in-memory storage.
type SchemaRegistry struct {
	schemas    map[string]string
	mu         sync.RWMutex
	strictMode bool
	reflector  *jsonschema.Reflector
}

// SchemaRegistryOption configures the SchemaRegistry.
type SchemaRegistryOption func(*SchemaRegistry)

// WithStrictMode controls whether re-registering a kind is an error.
func WithStrictMode(strict bool) SchemaRegistryOption {
	return func(r *SchemaRegistry) {
		r.strictMode = strict
	}
}

// NewSchemaRegistry creates a new schema registry.
func NewSchemaRegistry(opts ...SchemaRegistryOption) *SchemaRegistry {
	r := &SchemaRegistry{
		schemas:    make(map[string]string),
		reflector:  new(jsonschema.Reflector),
		strictMode: true,
	}

	r.reflector.ExpandedStruct = true

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewDefaultSchemaRegistry creates a registry preloaded with the schema
// reflected from the provider manifest shape.
func NewDefaultSchemaRegistry(opts ...SchemaRegistryOption) (*SchemaRegistry, error) {
	r := NewSchemaRegistry(opts...)
	if err := r.Register(ManifestSchemaKind, &manifest.Manifest{}); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a schema for a kind.
// model can be a Go struct (to generate a schema via reflection) or a raw
// JSON schema string, map, or byte slice.
func (r *SchemaRegistry) Register(kind string, model interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[kind]; exists && r.strictMode {
		return fmt.Errorf("schema kind already registered: %s", kind)
	}

	var schemaStr string

	switch v := model.(type) {
	case string:
		schemaStr = v
	case []byte:
		schemaStr = string(v)
	case map[string]interface{}:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal schema map: %w", err)
		}
		schemaStr = string(b)
	default:
		s := r.reflector.Reflect(model)
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal generated schema: %w", err)
		}
		schemaStr = string(b)
	}

	r.schemas[kind] = schemaStr
	return nil
}

// GetSchema retrieves the JSON schema for a kind.
func (r *SchemaRegistry) GetSchema(kind string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[kind]
	return s, ok
}

// List returns all registered schema kinds.
func (r *SchemaRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		kinds = append(kinds, k)
	}
	return kinds
}
