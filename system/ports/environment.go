package ports

// Environment answers whether a named external dependency is present in
// the host. The registry only asks; it never loads or resolves the
// dependency itself.
type Environment interface {
	// Present reports whether the identifier resolves in the host
	// environment. Identifiers may be glob patterns; pattern support is
	// up to the implementation.
	Present(id string) bool
}

// VersionedEnvironment additionally reports dependency versions.
// Prerequisites carrying a version constraint require this; against a
// plain Environment they are treated as unsatisfied.
type VersionedEnvironment interface {
	Environment

	// Version returns the version the environment reports for the
	// identifier, and whether the identifier is known.
	Version(id string) (string, bool)
}
