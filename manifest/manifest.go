// Package manifest parses provider manifests: the descriptor a provider
// ships alongside its code declaring which capability it implements, at
// what priority, and which host dependencies it requires.
package manifest

import (
	"fmt"

	"github.com/questkit-dev/questkit-host-sdk/system"
	"github.com/questkit-dev/questkit-host-sdk/system/values"
)

// Manifest is a provider descriptor as read from YAML or JSON.
type Manifest struct {
	Capability  string   `yaml:"capability" json:"capability"`
	Tag         string   `yaml:"tag" json:"tag,omitempty"`
	Priority    string   `yaml:"priority" json:"priority,omitempty"`
	Requires    []string `yaml:"requires" json:"requires,omitempty"`
	Description string   `yaml:"description" json:"description,omitempty"`
}

// CapabilityValue returns the validated capability identifier.
func (m *Manifest) CapabilityValue() (values.Capability, error) {
	return values.NewCapability(m.Capability)
}

// Metadata converts the declared priority and requirements into registry
// metadata. An absent priority means Normal.
func (m *Manifest) Metadata() (*system.Metadata, error) {
	priority, err := system.ParsePriority(m.Priority)
	if err != nil {
		return nil, fmt.Errorf("manifest for capability %q: %w", m.Capability, err)
	}

	requires := make([]values.Prerequisite, 0, len(m.Requires))
	for _, decl := range m.Requires {
		req, err := values.NewPrerequisite(decl)
		if err != nil {
			return nil, fmt.Errorf("manifest for capability %q: %w", m.Capability, err)
		}
		requires = append(requires, req)
	}

	return system.NewMetadata(priority, requires...), nil
}

// Provider pairs the manifest with a build function, yielding a
// registrable provider. The manifest supplies capability, tag, and
// metadata; the code supplies construction.
func (m *Manifest) Provider(build system.BuildFunc) (system.Provider, error) {
	capability, err := m.CapabilityValue()
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	meta, err := m.Metadata()
	if err != nil {
		return nil, err
	}
	factory, err := system.NewFactory(capability, m.Tag, build)
	if err != nil {
		return nil, fmt.Errorf("manifest for capability %q: %w", m.Capability, err)
	}

	return &manifestProvider{capability: capability, meta: meta, factory: factory}, nil
}

// manifestProvider adapts a parsed manifest to the provider contract.
type manifestProvider struct {
	capability values.Capability
	meta       *system.Metadata
	factory    *system.Factory
}

func (p *manifestProvider) Capability() values.Capability { return p.capability }
func (p *manifestProvider) Metadata() *system.Metadata    { return p.meta }
func (p *manifestProvider) Factory() *system.Factory      { return p.factory }
