package validation

// ManifestValidator validates provider manifest documents against a schema.
type ManifestValidator interface {
	// Validate checks a raw manifest document (YAML or JSON) against the
	// registered manifest schema.
	Validate(document []byte) (*ValidationResult, error)
}

// ValidationResult reports the outcome of a manifest validation.
type ValidationResult struct {
	Errors []string
	Valid  bool
}

// SchemaSource supplies JSON schemas by kind.
type SchemaSource interface {
	GetSchema(kind string) (string, bool)
}
