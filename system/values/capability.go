package values

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Capability represents a validated capability identifier.
// Enforces non-empty, trimmed capability names.
type Capability struct {
	value string
}

// NewCapability creates a Capability with strict validation.
// A valid capability name must:
// - Be non-empty
// - contain only alphanumeric characters, underscores, hyphens, and dots
// - NOT contain paths or other special characters
// - Be at most 64 characters long
func NewCapability(name string) (Capability, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Capability{}, fmt.Errorf("capability name cannot be empty")
	}

	if len(name) > 64 {
		return Capability{}, fmt.Errorf("capability name too long (max 64 chars)")
	}

	// Security check: Path separators
	if strings.ContainsAny(name, `/\`) {
		return Capability{}, fmt.Errorf("capability name cannot contain path separators")
	}

	// Security check: Directory traversal
	if strings.Contains(name, "..") {
		return Capability{}, fmt.Errorf("capability name cannot contain parent directory references")
	}

	for _, ch := range name {
		if !isValidCapabilityChar(ch) {
			return Capability{}, fmt.Errorf("invalid capability name %q: must contain only alphanumeric characters, underscores, hyphens, and dots", name)
		}
	}

	return Capability{value: name}, nil
}

func isValidCapabilityChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_' ||
		r == '-' ||
		r == '.'
}

// MustNewCapability creates a Capability or panics
func MustNewCapability(name string) Capability {
	c, err := NewCapability(name)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the string representation
func (c Capability) String() string {
	return c.value
}

// IsEmpty returns true if this is the zero value
func (c Capability) IsEmpty() bool {
	return c.value == ""
}

// Equals checks if two capabilities are equal
func (c Capability) Equals(other Capability) bool {
	return c.value == other.value
}

// MarshalJSON implements json.Marshaler.
// Uses json.Marshal for proper character escaping.
func (c Capability) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Capability) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid capability JSON: %w", err)
	}

	cap, err := NewCapability(s)
	if err != nil {
		return err
	}
	*c = cap
	return nil
}
