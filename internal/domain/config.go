package domain

import (
	"fmt"
	"slices"
)

// Storage backends.
const (
	BackendFile   = "file"   // One JSON file per key (default)
	BackendSQLite = "sqlite" // SQLite key-value table
	BackendMemory = "memory" // Process-lifetime map
	BackendNone   = "none"   // No durable storage
)

// Identifier strategies.
const (
	IDStrategyTimestamp = "timestamp" // Millisecond timestamp, monotonic within a process
	IDStrategyUUID      = "uuid"      // Random UUIDv4
)

// Defaults.
const (
	DefaultStorageKey = "devtaskmanager_issues"
	DefaultBackend    = BackendFile
	DefaultIDStrategy = IDStrategyTimestamp
	DefaultLogLevel   = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Board    BoardConfig   `toml:"board"`
	Storage  StorageConfig `toml:"storage"`
	Issues   IssuesConfig  `toml:"issues"`
	Log      LogConfig     `toml:"log"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend string `toml:"backend,omitempty"` // file, sqlite, memory or none
	Key     string `toml:"key,omitempty"`     // Storage key holding the issue list
	Path    string `toml:"path,omitempty"`    // Backend location override (directory for file, database for sqlite)
}

// IssuesConfig holds settings from the [issues] section.
type IssuesConfig struct {
	IDStrategy string `toml:"id_strategy,omitempty"` // timestamp or uuid
}

// BoardConfig holds settings from the [board] section.
type BoardConfig struct {
	Columns []string `toml:"columns,omitempty"` // Column order for rendering
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	columns := make([]string, 0, len(DefaultColumns()))
	for _, s := range DefaultColumns() {
		columns = append(columns, string(s))
	}
	return &Config{
		Storage: StorageConfig{
			Backend: DefaultBackend,
			Key:     DefaultStorageKey,
		},
		Issues: IssuesConfig{
			IDStrategy: DefaultIDStrategy,
		},
		Board: BoardConfig{
			Columns: columns,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Columns returns the configured board columns as statuses.
func (c *Config) Columns() []Status {
	if len(c.Board.Columns) == 0 {
		return DefaultColumns()
	}
	columns := make([]Status, 0, len(c.Board.Columns))
	for _, name := range c.Board.Columns {
		columns = append(columns, Status(name))
	}
	return columns
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	backends := []string{BackendFile, BackendSQLite, BackendMemory, BackendNone}
	if !slices.Contains(backends, c.Storage.Backend) {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	if err := ValidateKey(c.Storage.Key); err != nil {
		return fmt.Errorf("%w: %q", err, c.Storage.Key)
	}
	switch c.Issues.IDStrategy {
	case IDStrategyTimestamp, IDStrategyUUID:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIDStrategy, c.Issues.IDStrategy)
	}
	return nil
}
