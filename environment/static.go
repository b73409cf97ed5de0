// Package environment provides host-environment adapters the registry
// probes prerequisites against.
package environment

import (
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/questkit-dev/questkit-host-sdk/system/ports"
)

// Static is an in-memory environment: a table of present dependency
// identifiers and the versions the host reports for them. Hosts populate
// it once at startup from whatever they consider "installed".
//
// Present accepts doublestar glob patterns ("rpgcore.*" matches any
// identifier under rpgcore), matched against the table keys. Version
// lookups are exact; constraints make no sense against a pattern.
type Static struct {
	mu      sync.RWMutex
	entries map[string]string
}

var _ ports.VersionedEnvironment = (*Static)(nil)

// NewStatic creates an environment from an identifier -> version table.
// Entries without a meaningful version may use the empty string.
func NewStatic(entries map[string]string) *Static {
	e := &Static{entries: make(map[string]string, len(entries))}
	for id, version := range entries {
		e.entries[id] = version
	}
	return e
}

// Add records a dependency as present, replacing any previous version.
func (e *Static) Add(id, version string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries[id] = version
}

// Remove deletes a dependency. Removing an absent identifier is a no-op.
func (e *Static) Remove(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.entries, id)
}

// Present reports whether the identifier resolves in this environment.
// The identifier may be a doublestar glob pattern; an invalid pattern
// matches nothing.
func (e *Static) Present(id string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if _, ok := e.entries[id]; ok {
		return true
	}
	if !doublestar.ValidatePattern(id) {
		return false
	}
	for key := range e.entries {
		if ok, _ := doublestar.Match(id, key); ok {
			return true
		}
	}
	return false
}

// Version returns the reported version for an exact identifier.
func (e *Static) Version(id string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	version, ok := e.entries[id]
	return version, ok
}

// Identifiers returns the known identifiers.
func (e *Static) Identifiers() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, 0, len(e.entries))
	for id := range e.entries {
		out = append(out, id)
	}
	return out
}
