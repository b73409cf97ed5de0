package system

import (
	"context"
	"fmt"

	"github.com/questkit-dev/questkit-host-sdk/system/values"
)

// BuildFunc constructs a capability instance for a subject (typically a
// player handle supplied by the host). It must not touch the registry.
type BuildFunc func(ctx context.Context, subject any) (System, error)

// Factory builds capability instances for one provider.
// The registry holds a reference to the winning factory per capability;
// the provider keeps ownership.
type Factory struct {
	capability values.Capability
	tag        string
	build      BuildFunc
}

// NewFactory creates a factory for the given capability.
// The tag distinguishes competing factories within one capability; the
// empty tag is reserved for a capability's basic no-op provider. Tags are
// not required to be unique, and the registry does not enforce it.
func NewFactory(capability values.Capability, tag string, build BuildFunc) (*Factory, error) {
	if capability.IsEmpty() {
		return nil, fmt.Errorf("factory requires a capability")
	}
	if build == nil {
		return nil, fmt.Errorf("factory for capability %q requires a build function", capability)
	}
	return &Factory{capability: capability, tag: tag, build: build}, nil
}

// MustNewFactory creates a Factory or panics
func MustNewFactory(capability values.Capability, tag string, build BuildFunc) *Factory {
	f, err := NewFactory(capability, tag, build)
	if err != nil {
		panic(err)
	}
	return f
}

// Capability returns the capability this factory builds for.
func (f *Factory) Capability() values.Capability {
	return f.capability
}

// Tag returns the factory's tag.
func (f *Factory) Tag() string {
	return f.tag
}

// New builds a capability instance. It never returns a nil System without
// an error: a factory that cannot construct fails loudly instead of
// handing back a placeholder.
func (f *Factory) New(ctx context.Context, subject any) (System, error) {
	s, err := f.build(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("factory %q for capability %q: %w", f.tag, f.capability, err)
	}
	if s == nil {
		return nil, fmt.Errorf("factory %q for capability %q returned no system", f.tag, f.capability)
	}
	return s, nil
}
