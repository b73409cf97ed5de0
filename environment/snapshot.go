package environment

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// snapshotDocument is the on-disk shape of an environment snapshot:
// a flat table of present dependency identifiers and their versions.
type snapshotDocument struct {
	Dependencies map[string]string `yaml:"dependencies"`
}

// snapshotConfig holds configuration for the SnapshotStore.
type snapshotConfig struct {
	path     string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

func defaultSnapshotConfig() snapshotConfig {
	return snapshotConfig{
		path:     filepath.Join(os.Getenv("HOME"), ".questkit", "environment.yaml"),
		dirPerm:  0o755,
		filePerm: 0o644,
	}
}

// SnapshotOption configures a SnapshotStore instance.
type SnapshotOption func(*snapshotConfig)

// WithPath sets the path to the snapshot file.
func WithPath(path string) SnapshotOption {
	return func(c *snapshotConfig) {
		if path != "" {
			c.path = path
		}
	}
}

// WithFilePermissions sets the file permissions for the snapshot file.
func WithFilePermissions(perm os.FileMode) SnapshotOption {
	return func(c *snapshotConfig) {
		c.filePerm = perm
	}
}

// SnapshotStore persists an environment's dependency table as YAML, so
// hosts and tests can fixture environments from a file. Registry
// bindings are never persisted; only the host-reported dependency table
// is.
type SnapshotStore struct {
	config snapshotConfig
}

// NewSnapshotStore creates a new SnapshotStore with the given options.
func NewSnapshotStore(opts ...SnapshotOption) *SnapshotStore {
	cfg := defaultSnapshotConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SnapshotStore{config: cfg}
}

// Load reads the snapshot and builds a Static environment from it.
// A missing file yields an empty environment.
func (s *SnapshotStore) Load() (*Static, error) {
	data, err := os.ReadFile(s.config.path)
	if os.IsNotExist(err) {
		return NewStatic(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read environment snapshot: %w", err)
	}

	var doc snapshotDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse environment snapshot: %w", err)
	}
	return NewStatic(doc.Dependencies), nil
}

// Save persists the environment's dependency table.
func (s *SnapshotStore) Save(env *Static) error {
	doc := snapshotDocument{Dependencies: make(map[string]string)}
	if env != nil {
		for _, id := range env.Identifiers() {
			version, _ := env.Version(id)
			doc.Dependencies[id] = version
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal environment snapshot: %w", err)
	}

	dir := filepath.Dir(s.config.path)
	if err := os.MkdirAll(dir, s.config.dirPerm); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	if err := os.WriteFile(s.config.path, data, s.config.filePerm); err != nil {
		return fmt.Errorf("failed to write environment snapshot: %w", err)
	}
	return nil
}

// ConfigPath returns the path to the backing file.
func (s *SnapshotStore) ConfigPath() string {
	return s.config.path
}
