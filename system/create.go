package system

import (
	"context"
	"fmt"

	"github.com/questkit-dev/questkit-host-sdk/system/entities"
	"github.com/questkit-dev/questkit-host-sdk/system/values"
)

// Create resolves the active factory for the capability and builds a
// typed instance for the subject. Construction runs outside the registry
// lock.
//
// Fails with ErrSystemNotFound when no binding exists, and with
// ErrIllegalProvider when the bound factory builds a system that does not
// satisfy T: the registry was populated with a wrongly-parameterized
// provider, which is a programming error.
func Create[T System](ctx context.Context, r *Registry, capability values.Capability, subject any) (T, error) {
	var zero T

	factory, err := r.Factory(capability)
	if err != nil {
		return zero, err
	}

	instance, err := factory.New(ctx, subject)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("%w: factory %q for capability %q built %T, want %T",
			entities.ErrIllegalProvider, factory.Tag(), capability, instance, zero)
	}
	return typed, nil
}
