package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/log"
)

// Layer is one configuration file in precedence order.
type Layer struct {
	Name string
	Path string
}

// Manager loads and merges configuration layers. Later layers take
// precedence. The last successfully loaded Config stays current when a
// reload fails.
type Manager struct {
	mu          sync.RWMutex
	layers      []Layer
	current     *Config
	subscribers []func(*Config)
	logger      *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLayer appends a layer.
func WithLayer(name, path string) ManagerOption {
	return func(m *Manager) {
		m.layers = append(m.layers, Layer{Name: name, Path: path})
	}
}

// WithLogger sets the manager's logger.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a manager. Until Load succeeds, Current returns the
// built-in defaults.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		current: Default(),
		logger:  log.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = log.WithComponent(m.logger, "config")
	return m
}

// DefaultLayers returns the user layer and, when present in dir, the
// project layer. A non-empty userPath replaces the standard user file.
func DefaultLayers(userPath, dir string) []Layer {
	var layers []Layer
	if userPath == "" {
		if base, err := os.UserConfigDir(); err == nil {
			userPath = filepath.Join(base, "commentary", "config.toml")
		}
	}
	if userPath != "" {
		layers = append(layers, Layer{Name: "user", Path: userPath})
	}
	for _, name := range []string{".commentary.toml", ".commentary.yaml", ".commentary.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			layers = append(layers, Layer{Name: "project", Path: p})
			break
		}
	}
	return layers
}

// AddLayer appends a layer with the highest precedence.
func (m *Manager) AddLayer(name, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layers = append(m.layers, Layer{Name: name, Path: path})
}

// Layers returns the layers in precedence order.
func (m *Manager) Layers() []Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.layers)
}

// Subscribe registers fn to be called with each newly loaded Config.
func (m *Manager) Subscribe(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Current returns the last successfully loaded Config.
func (m *Manager) Current() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Load reads every layer, merges them, and makes the result current.
// A file that fails to parse aborts the load and leaves the current
// Config in place. Invalid fields are logged and skipped.
func (m *Manager) Load() (*Config, error) {
	layers := m.Layers()

	merged := make(map[string]any)
	for _, l := range layers {
		data, err := LoadFile(l.Path)
		if err != nil {
			return nil, err
		}
		if data == nil {
			m.logger.Debug("config layer not found", "layer", l.Name, log.PathKey, l.Path)
			continue
		}
		merged = DeepMerge(merged, data)
	}

	cfg, fieldErrs := Decode(merged)
	for _, fe := range fieldErrs {
		m.logger.Warn("ignoring invalid setting", "field", fe.Field, "reason", fe.Message)
	}

	m.mu.Lock()
	m.current = cfg
	subs := slices.Clone(m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(cfg)
	}
	return cfg, nil
}

// BindResolver keeps r's override table in sync with m.
func BindResolver(m *Manager, r *resolve.Resolver) {
	r.SetOverrides(m.Current().Overrides())
	m.Subscribe(func(cfg *Config) {
		r.SetOverrides(cfg.Overrides())
	})
}
