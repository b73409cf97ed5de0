// Package system implements the player-capability registry: providers
// declare which capability they implement, at what priority, and which
// environmental prerequisites they need; the registry arbitrates competing
// providers and hands out the winning factory per capability.
package system

import (
	"github.com/questkit-dev/questkit-host-sdk/system/values"
)

// System is the contract every provider-built capability instance
// satisfies. Concrete capabilities (level system, class system, ...)
// embed it in their own interfaces.
type System interface {
	// Tag returns the tag of the provider that built this instance.
	// The basic no-op provider of a capability uses the empty tag.
	Tag() string

	// Enabled reports whether the backing implementation is usable.
	Enabled() bool
}

// Provider is the self-declaration contract a concrete implementation
// must satisfy to be registered. It replaces any runtime introspection:
// the provider states its capability, metadata, and default factory
// explicitly, so a malformed provider is a compile-time problem, not a
// registration-time one.
type Provider interface {
	// Capability returns the capability this provider implements.
	Capability() values.Capability

	// Metadata returns the provider's declared metadata. Returning nil
	// means "no metadata declared" and fails registration; an empty
	// metadata value is valid and means no prerequisites at Normal
	// priority.
	Metadata() *Metadata

	// Factory returns the provider's default factory. Registration may
	// override it with an explicit factory.
	Factory() *Factory
}
