package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, domain.DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, domain.IDStrategyTimestamp, cfg.Issues.IDStrategy)
	assert.Equal(t, []string{"Backlog", "To Do", "In Progress", "Done"}, cfg.Board.Columns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[storage]
backend = "sqlite"
key = "issues"

[issues]
id_strategy = "uuid"

[board]
columns = ["Todo", "Doing", "Done"]

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "issues", cfg.Storage.Key)
	assert.Equal(t, domain.IDStrategyUUID, cfg.Issues.IDStrategy)
	assert.Equal(t, []string{"Todo", "Doing", "Done"}, cfg.Board.Columns)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	dataDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[storage]
backend = "sqlite"
path = "/srv/board.db"

[log]
level = "warn"
`)
	writeConfig(t, dataDir, `
[storage]
backend = "file"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BackendFile, cfg.Storage.Backend, "local wins")
	assert.Equal(t, "/srv/board.db", cfg.Storage.Path, "global kept when local is silent")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_Load_Warnings(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[storage]
backend = "memory"
color = "red"

[agents]
default = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"unknown key in [storage]: color",
		"unknown section: agents",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidValues(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[storage]
backend = "redis"
`)

	_, err := NewLoaderWithGlobalDir(dataDir, t.TempDir()).Load()
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestLoader_Load_MalformedTOML(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `[storage`)

	_, err := NewLoaderWithGlobalDir(dataDir, t.TempDir()).Load()
	assert.Error(t, err)
}

func TestLoader_NoGlobalDir(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), "")

	_, err := loader.LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.BackendFile, cfg.Storage.Backend)
}

func TestMergeConfigs_DoesNotAliasColumns(t *testing.T) {
	base := domain.NewDefaultConfig()
	merged := mergeConfigs(base, &domain.Config{})
	merged.Board.Columns[0] = "changed"

	assert.Equal(t, "Backlog", base.Board.Columns[0])
}
