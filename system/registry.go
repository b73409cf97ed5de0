package system

import (
	"sync"

	"github.com/questkit-dev/questkit-host-sdk/system/entities"
	"github.com/questkit-dev/questkit-host-sdk/system/ports"
	"github.com/questkit-dev/questkit-host-sdk/system/values"
)

// binding is the active capability -> factory mapping entry.
type binding struct {
	factory  *Factory
	priority Priority
}

// Registry arbitrates competing providers per capability and hands out
// the winning factory. It is an owned instance: the host's composition
// root creates it at startup and clears it at shutdown, there is no
// package-level singleton.
//
// Register and the unregister methods take the write lock; Factory and
// FactoryFor take the read lock. Factory construction happens outside
// any lock and must not re-enter the registry.
type Registry struct {
	mu        sync.RWMutex
	bindings  map[values.Capability]binding
	byFactory map[*Factory]values.Capability
	env       ports.Environment
}

// NewRegistry creates a registry that resolves prerequisites against the
// given environment. A nil environment rejects every provider that
// declares prerequisites; providers without prerequisites still register.
func NewRegistry(env ports.Environment) *Registry {
	return &Registry{
		bindings:  make(map[values.Capability]binding),
		byFactory: make(map[*Factory]values.Capability),
		env:       env,
	}
}

// RegisterOption configures a single Register call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	factory *Factory
}

// WithFactory overrides the provider's self-declared factory for this
// registration.
func WithFactory(f *Factory) RegisterOption {
	return func(c *registerConfig) {
		c.factory = f
	}
}

// Register installs the provider's factory as the active binding for its
// capability, if the provider is eligible.
//
// It fails with ErrNotRegistered when the provider is misconfigured
// (nil provider, no metadata, no factory, or a factory declared for a
// different capability) and with ErrNotNeeded when registration is
// correctly skipped (a prerequisite is unmet, or an equal-or-higher
// priority provider is already bound). ErrNotNeeded is an expected
// outcome; callers should skip the capability, not crash.
//
// The replace-or-reject decision is atomic: a failed registration never
// leaves a partially installed binding.
func (r *Registry) Register(p Provider, opts ...RegisterOption) error {
	var cfg registerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if p == nil {
		return &entities.NotRegisteredError{Cause: entities.ErrIllegalProvider}
	}
	capability := p.Capability()
	if capability.IsEmpty() {
		return &entities.NotRegisteredError{Cause: entities.ErrIllegalProvider}
	}

	meta := p.Metadata()
	if meta == nil {
		return &entities.NotRegisteredError{Capability: capability, Cause: entities.ErrMetadataMissing}
	}

	// Eligibility comes before factory resolution: a provider the
	// environment does not need is skipped even when its factory is also
	// unresolvable. Probing is a fast local lookup; doing it outside the
	// lock keeps the write section to the replace-or-reject decision.
	if ok, reason := meta.Satisfied(r.env); !ok {
		return &entities.NotNeededError{Capability: capability, Tag: declaredTag(cfg.factory, p), Reason: reason}
	}

	factory := cfg.factory
	if factory == nil {
		factory = p.Factory()
	}
	if factory == nil {
		return &entities.NotRegisteredError{Capability: capability, Cause: entities.ErrIllegalProvider}
	}
	if !factory.Capability().Equals(capability) {
		return &entities.NotRegisteredError{
			Capability: capability,
			Tag:        factory.Tag(),
			Cause:      entities.ErrIllegalProvider,
		}
	}

	priority := meta.Priority()

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, bound := r.bindings[capability]; bound {
		if priority.Compare(current.priority) <= 0 {
			return &entities.NotNeededError{
				Capability: capability,
				Tag:        factory.Tag(),
				Reason: "already bound to " + describeFactory(current.factory) +
					" at priority " + current.priority.String(),
			}
		}
		delete(r.byFactory, current.factory)
	}

	r.bindings[capability] = binding{factory: factory, priority: priority}
	r.byFactory[factory] = capability
	return nil
}

// Factory returns the active factory for the capability.
// Fails with ErrSystemNotFound when no binding exists; no implicit
// default is synthesized.
func (r *Registry) Factory(capability values.Capability) (*Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bindings[capability]
	if !ok {
		return nil, &entities.SystemNotFoundError{Capability: capability}
	}
	return b.factory, nil
}

// FactoryFor derives the capability from the provider's declaration and
// returns the active factory for it. The bound factory is not necessarily
// the provider's own: a higher-priority competitor may have won.
// A provider that declares no capability fails with ErrSystemNotFound
// wrapping ErrIllegalProvider.
func (r *Registry) FactoryFor(p Provider) (*Factory, error) {
	if p == nil {
		return nil, &entities.SystemNotFoundError{Cause: entities.ErrIllegalProvider}
	}
	capability := p.Capability()
	if capability.IsEmpty() {
		return nil, &entities.SystemNotFoundError{Cause: entities.ErrIllegalProvider}
	}
	return r.Factory(capability)
}

// Unregister removes the active binding for the provider's capability,
// whichever factory currently holds it. Unregistering a capability with
// no binding is a no-op.
func (r *Registry) Unregister(p Provider) {
	if p == nil {
		return
	}
	capability := p.Capability()
	if capability.IsEmpty() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bindings[capability]
	if !ok {
		return
	}
	delete(r.bindings, capability)
	delete(r.byFactory, b.factory)
}

// UnregisterFactory removes the binding holding the given factory,
// matched by identity. Idempotent.
func (r *Registry) UnregisterFactory(f *Factory) {
	if f == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	capability, ok := r.byFactory[f]
	if !ok {
		return
	}
	delete(r.byFactory, f)
	delete(r.bindings, capability)
}

// UnregisterAll clears every binding. Safe to call repeatedly and with
// zero bindings; used once at host shutdown.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.bindings)
	clear(r.byFactory)
}

// Capabilities returns the capabilities that currently have a binding.
func (r *Registry) Capabilities() []values.Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]values.Capability, 0, len(r.bindings))
	for c := range r.bindings {
		out = append(out, c)
	}
	return out
}

func describeFactory(f *Factory) string {
	if f.Tag() == "" {
		return "the basic provider"
	}
	return "provider " + f.Tag()
}

// declaredTag is best-effort: the skip happens before factory
// resolution, so the tag may simply not be declared yet.
func declaredTag(explicit *Factory, p Provider) string {
	if explicit != nil {
		return explicit.Tag()
	}
	if f := p.Factory(); f != nil {
		return f.Tag()
	}
	return ""
}
