package system

import (
	"fmt"
	"strings"
)

// Priority ranks providers competing for the same capability.
// It arbitrates nothing else.
type Priority int

const (
	// PriorityUnspecified is the zero value; metadata treats it as Normal.
	PriorityUnspecified Priority = iota
	PriorityLowest
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityHighest
)

var priorityNames = map[Priority]string{
	PriorityUnspecified: "UNSPECIFIED",
	PriorityLowest:      "LOWEST",
	PriorityLow:         "LOW",
	PriorityNormal:      "NORMAL",
	PriorityHigh:        "HIGH",
	PriorityHighest:     "HIGHEST",
}

// Compare returns a negative value if p ranks below other, zero if they
// rank equally, and a positive value if p ranks above other. Unspecified
// compares as Normal.
func (p Priority) Compare(other Priority) int {
	return int(p.effective()) - int(other.effective())
}

func (p Priority) effective() Priority {
	if p == PriorityUnspecified {
		return PriorityNormal
	}
	return p
}

// IsValid reports whether p is one of the declared levels.
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// String returns the symbolic name of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PRIORITY(%d)", int(p))
}

// ParsePriority converts a symbolic name into a Priority.
// Matching is case-insensitive; the empty string parses as Unspecified.
func ParsePriority(s string) (Priority, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return PriorityUnspecified, nil
	}
	upper := strings.ToUpper(trimmed)
	for p, name := range priorityNames {
		if name == upper {
			return p, nil
		}
	}
	return PriorityUnspecified, fmt.Errorf("unknown priority: %s", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid priority %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so manifests can
// carry symbolic priorities.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
