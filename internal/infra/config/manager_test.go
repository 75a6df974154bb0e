package config

import (
	"path/filepath"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_InitLocal(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "board")
	m := NewManagerWithGlobalDir(dataDir, t.TempDir())

	cfg := domain.NewDefaultConfig()
	cfg.Storage.Backend = domain.BackendSQLite

	path, err := m.InitLocal(cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.LocalConfigPath(dataDir), path)

	// The written file loads back to the same settings.
	loaded, err := NewLoaderWithGlobalDir(dataDir, "").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.BackendSQLite, loaded.Storage.Backend)
	assert.Equal(t, cfg.Board.Columns, loaded.Board.Columns)
	assert.Empty(t, loaded.Warnings)

	// Second init refuses to overwrite.
	_, err = m.InitLocal(cfg)
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_Paths(t *testing.T) {
	m := NewManagerWithGlobalDir("/data", "/home/u/.config/taskboard")
	assert.Equal(t, "/data/config.toml", m.LocalPath())
	assert.Equal(t, "/home/u/.config/taskboard/config.toml", m.GlobalPath())

	m = NewManagerWithGlobalDir("/data", "")
	assert.Empty(t, m.GlobalPath())
}

func TestRender(t *testing.T) {
	out, err := Render(domain.NewDefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "[storage]")
	assert.Contains(t, out, "devtaskmanager_issues")
	assert.Contains(t, out, "[board]")
	assert.NotContains(t, out, "Warnings")
}
