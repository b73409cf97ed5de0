// Package hostsdk wires the capability registry into a host's startup
// and shutdown path: it registers batches of providers, treats expected
// skips as skips instead of failures, and tears everything down at the
// end of the host's life.
package hostsdk

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/questkit-dev/questkit-host-sdk/manifest"
	"github.com/questkit-dev/questkit-host-sdk/system"
	"github.com/questkit-dev/questkit-host-sdk/system/entities"
	"github.com/questkit-dev/questkit-host-sdk/validation"
)

// Hook registers providers against a registry at host startup.
// A NotNeeded outcome is logged and swallowed (the environment simply
// does not need that provider); a NotRegistered outcome is logged and
// returned so the host can decide whether to continue without the
// capability.
type Hook struct {
	registry  *system.Registry
	validator validation.ManifestValidator
	parser    manifest.Parser
	logger    *slog.Logger
}

// HookOption configures a Hook.
type HookOption func(*Hook)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) HookOption {
	return func(h *Hook) { h.logger = l }
}

// WithValidator sets a manifest validator applied before parsing.
func WithValidator(v validation.ManifestValidator) HookOption {
	return func(h *Hook) { h.validator = v }
}

// WithParser sets the manifest parser. Defaults to YAML.
func WithParser(p manifest.Parser) HookOption {
	return func(h *Hook) { h.parser = p }
}

// NewHook creates a hook for the given registry.
func NewHook(registry *system.Registry, opts ...HookOption) *Hook {
	h := &Hook{
		registry: registry,
		parser:   manifest.NewYAMLParser(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers a single provider, translating NotNeeded into a
// logged skip.
func (h *Hook) Register(p system.Provider, opts ...system.RegisterOption) error {
	err := h.registry.Register(p, opts...)
	switch {
	case err == nil:
		factory, lookupErr := h.registry.FactoryFor(p)
		if lookupErr == nil {
			h.logger.Info("capability provider registered",
				"capability", p.Capability().String(),
				"tag", factory.Tag())
		}
		return nil
	case errors.Is(err, entities.ErrNotNeeded):
		h.logger.Info("capability provider skipped", "reason", err.Error())
		return nil
	default:
		h.logger.Error("capability provider rejected", "error", err.Error())
		return err
	}
}

// RegisterAll registers every provider, continuing past failures.
// The returned error joins all NotRegistered outcomes.
func (h *Hook) RegisterAll(providers ...system.Provider) error {
	var errs []error
	for _, p := range providers {
		if err := h.Register(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RegisterManifest validates and parses a manifest document, pairs it
// with the build function, and registers the resulting provider.
func (h *Hook) RegisterManifest(document []byte, build system.BuildFunc) error {
	if h.validator != nil {
		result, err := h.validator.Validate(document)
		if err != nil {
			return fmt.Errorf("manifest validation: %w", err)
		}
		if !result.Valid {
			err := &entities.NotRegisteredError{
				Cause: fmt.Errorf("%w: manifest invalid: %v", entities.ErrIllegalProvider, result.Errors),
			}
			h.logger.Error("capability provider rejected", "error", err.Error())
			return err
		}
	}

	m, err := h.parser.Parse(document)
	if err != nil {
		return fmt.Errorf("manifest parse: %w", err)
	}
	p, err := m.Provider(build)
	if err != nil {
		return &entities.NotRegisteredError{Cause: err}
	}
	return h.Register(p)
}

// Close unregisters everything. Safe to call with zero bindings.
func (h *Hook) Close() {
	h.registry.UnregisterAll()
	h.logger.Info("capability registry cleared")
}
