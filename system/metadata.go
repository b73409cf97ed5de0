package system

import (
	"fmt"

	"github.com/questkit-dev/questkit-host-sdk/system/ports"
	"github.com/questkit-dev/questkit-host-sdk/system/values"
)

// Metadata holds a provider's declared registration requirements:
// its priority and the environmental prerequisites that must resolve
// before the provider is eligible. Immutable once created.
type Metadata struct {
	priority Priority
	requires []values.Prerequisite
}

// NewMetadata creates metadata with the given priority and prerequisites.
// PriorityUnspecified is reported as Normal.
func NewMetadata(priority Priority, requires ...values.Prerequisite) *Metadata {
	m := &Metadata{priority: priority}
	if len(requires) > 0 {
		m.requires = make([]values.Prerequisite, len(requires))
		copy(m.requires, requires)
	}
	return m
}

// Priority returns the declared priority, defaulting to Normal.
func (m *Metadata) Priority() Priority {
	if m.priority == PriorityUnspecified {
		return PriorityNormal
	}
	return m.priority
}

// Requires returns a copy of the declared prerequisites.
func (m *Metadata) Requires() []values.Prerequisite {
	if len(m.requires) == 0 {
		return nil
	}
	out := make([]values.Prerequisite, len(m.requires))
	copy(out, m.requires)
	return out
}

// Satisfied reports whether every prerequisite resolves in the given
// environment. An empty prerequisite set is vacuously satisfied. When a
// prerequisite carries a version constraint the environment must report
// versions; against a plain Environment such a prerequisite fails.
// The returned reason names the first unmet prerequisite.
func (m *Metadata) Satisfied(env ports.Environment) (bool, string) {
	if len(m.requires) == 0 {
		return true, ""
	}
	if env == nil {
		return false, "no environment to resolve prerequisites against"
	}

	for _, req := range m.requires {
		if req.HasConstraint() {
			// Version lookups are exact; a constraint on a glob
			// identifier can never resolve.
			if req.IsPattern() {
				return false, fmt.Sprintf("prerequisite %q combines a version constraint with a pattern identifier", req)
			}
			versioned, ok := env.(ports.VersionedEnvironment)
			if !ok {
				return false, fmt.Sprintf("prerequisite %q needs version information the environment does not report", req)
			}
			version, present := versioned.Version(req.ID())
			if !present {
				return false, fmt.Sprintf("prerequisite %q not present", req)
			}
			if !req.Allows(version) {
				return false, fmt.Sprintf("prerequisite %q present at version %s, which does not satisfy the constraint", req, version)
			}
			continue
		}
		if !env.Present(req.ID()) {
			return false, fmt.Sprintf("prerequisite %q not present", req)
		}
	}
	return true, ""
}
