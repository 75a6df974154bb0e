package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/taskboard/internal/domain"
)

// Manager manages configuration files.
type Manager struct {
	dataDir       string // Path to the board data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskboard)
}

// NewManager creates a new Manager.
func NewManager(dataDir string) *Manager {
	return &Manager{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(dataDir, globalConfDir string) *Manager {
	return &Manager{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// LocalPath returns the path of the data directory config file.
func (m *Manager) LocalPath() string {
	return domain.LocalConfigPath(m.dataDir)
}

// GlobalPath returns the path of the global config file, or "" if unavailable.
func (m *Manager) GlobalPath() string {
	if m.globalConfDir == "" {
		return ""
	}
	return filepath.Join(m.globalConfDir, domain.ConfigFileName)
}

// InitLocal writes cfg to the data directory config file.
// It fails with domain.ErrConfigExists if the file is already present.
func (m *Manager) InitLocal(cfg *domain.Config) (string, error) {
	path := m.LocalPath()
	if _, err := os.Stat(path); err == nil {
		return path, domain.ErrConfigExists
	}

	content, err := Render(cfg)
	if err != nil {
		return path, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return path, fmt.Errorf("create config directory: %w", err)
	}
	return path, os.WriteFile(path, []byte(content), 0o600)
}

// Render encodes cfg as TOML.
func Render(cfg *domain.Config) (string, error) {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(b), nil
}
