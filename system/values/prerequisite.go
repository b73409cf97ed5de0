package values

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Prerequisite represents a single environmental dependency a provider
// needs before it can be activated.
//
// The textual form is "ident" or "ident@<constraint>", where ident names a
// dependency the host environment can answer for (a plugin, a class, a
// service) and the optional constraint is a semver range matched against the
// version the environment reports. The ident may contain glob
// metacharacters; pattern resolution is up to the environment adapter.
type Prerequisite struct {
	id         string
	constraint *semver.Constraints
	raw        string
}

// NewPrerequisite parses a prerequisite declaration.
func NewPrerequisite(decl string) (Prerequisite, error) {
	raw := strings.TrimSpace(decl)
	if raw == "" {
		return Prerequisite{}, fmt.Errorf("prerequisite cannot be empty")
	}

	id := raw
	var constraint *semver.Constraints
	if at := strings.Index(raw, "@"); at >= 0 {
		id = strings.TrimSpace(raw[:at])
		spec := strings.TrimSpace(raw[at+1:])
		if id == "" {
			return Prerequisite{}, fmt.Errorf("prerequisite %q has no identifier", raw)
		}
		if spec == "" {
			return Prerequisite{}, fmt.Errorf("prerequisite %q has an empty version constraint", raw)
		}
		c, err := semver.NewConstraint(spec)
		if err != nil {
			return Prerequisite{}, fmt.Errorf("invalid version constraint in prerequisite %q: %w", raw, err)
		}
		constraint = c
	}

	return Prerequisite{id: id, constraint: constraint, raw: raw}, nil
}

// MustNewPrerequisite creates a Prerequisite or panics
func MustNewPrerequisite(decl string) Prerequisite {
	p, err := NewPrerequisite(decl)
	if err != nil {
		panic(err)
	}
	return p
}

// ID returns the dependency identifier without any version constraint.
func (p Prerequisite) ID() string {
	return p.id
}

// HasConstraint reports whether a version constraint was declared.
func (p Prerequisite) HasConstraint() bool {
	return p.constraint != nil
}

// Allows reports whether the given version satisfies the declared
// constraint. A prerequisite without a constraint allows any version.
// Unparseable versions never satisfy a constraint.
func (p Prerequisite) Allows(version string) bool {
	if p.constraint == nil {
		return true
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return p.constraint.Check(v)
}

// IsPattern reports whether the identifier contains glob metacharacters.
func (p Prerequisite) IsPattern() bool {
	return strings.ContainsAny(p.id, `*?[{`)
}

// String returns the original declaration.
func (p Prerequisite) String() string {
	return p.raw
}

// IsEmpty returns true if this is the zero value
func (p Prerequisite) IsEmpty() bool {
	return p.raw == ""
}
