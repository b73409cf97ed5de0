package entities

import (
	"errors"
	"fmt"

	"github.com/questkit-dev/questkit-host-sdk/system/values"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrNotNeeded is returned when registration is correctly skipped: the
	// environment lacks a prerequisite or an equal-or-higher priority
	// provider is already bound. Expected and recoverable.
	ErrNotNeeded = errors.New("provider not needed")

	// ErrNotRegistered is returned when a provider is misconfigured and
	// cannot be registered: missing metadata, unresolvable factory, or a
	// capability mismatch.
	ErrNotRegistered = errors.New("provider not registered")

	// ErrSystemNotFound is returned when resolution is requested for a
	// capability with no active binding.
	ErrSystemNotFound = errors.New("system not found")

	// ErrMetadataMissing is returned when a provider declares no metadata
	// at all. Always wrapped in a NotRegisteredError.
	ErrMetadataMissing = errors.New("provider metadata missing")

	// ErrIllegalProvider is returned when a provider type does not follow
	// the self-declaration contract. Always a programming error.
	ErrIllegalProvider = errors.New("illegal provider")
)

// NotNeededError indicates registration was correctly skipped.
// Provides the capability, the competing tag, and the skip reason.
type NotNeededError struct {
	Capability values.Capability
	Tag        string
	Reason     string
}

func (e *NotNeededError) Error() string {
	return fmt.Sprintf("provider %q for capability %q not needed: %s", e.Tag, e.Capability, e.Reason)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, entities.ErrNotNeeded)
func (e *NotNeededError) Is(target error) bool {
	return target == ErrNotNeeded
}

// NotRegisteredError indicates a misconfigured provider.
// Wraps the underlying cause (ErrMetadataMissing, ErrIllegalProvider, ...).
type NotRegisteredError struct {
	Capability values.Capability
	Tag        string
	Cause      error
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("provider %q for capability %q not registered: %v", e.Tag, e.Capability, e.Cause)
}

// Is implements error matching for errors.Is() checks.
func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// Unwrap exposes the cause so callers can distinguish ErrMetadataMissing
// from ErrIllegalProvider with errors.Is().
func (e *NotRegisteredError) Unwrap() error {
	return e.Cause
}

// SystemNotFoundError indicates no binding exists for a capability.
type SystemNotFoundError struct {
	Capability values.Capability
	Cause      error
}

func (e *SystemNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("no system bound for capability %q: %v", e.Capability, e.Cause)
	}
	return fmt.Sprintf("no system bound for capability %q", e.Capability)
}

// Is implements error matching for errors.Is() checks.
func (e *SystemNotFoundError) Is(target error) bool {
	return target == ErrSystemNotFound
}

// Unwrap exposes the cause, if any.
func (e *SystemNotFoundError) Unwrap() error {
	return e.Cause
}
