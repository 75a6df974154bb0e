package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExportCommand_Stdout(t *testing.T) {
	container, _ := newTestContainer(t, testIssue("1", domain.StatusTodo, "a"))

	cmd := newExportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `[{"id":"1","status":"To Do","title":"a"}]`, buf.String())
}

func TestNewExportCommand_FileFormatFromExtension(t *testing.T) {
	container, _ := newTestContainer(t, testIssue("1", domain.StatusTodo, "a"))
	path := filepath.Join(t.TempDir(), "issues.yaml")

	cmd := newExportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-o", path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Exported 1 issues to "+path+"\n", buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "status: To Do")
}

func TestNewExportCommand_UnknownFormat(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newExportCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrUnknownFormat)
}

func TestNewImportCommand_ReplaceFromFile(t *testing.T) {
	container, _ := newTestContainer(t, testIssue("old", domain.StatusBacklog, "old"))
	path := filepath.Join(t.TempDir(), "issues.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","status":"Done","title":"x"}]`), 0o600))

	cmd := newImportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Imported 1 issues (1 total)\n", buf.String())
	assert.Equal(t, []domain.Issue{testIssue("a", domain.StatusDone, "x")}, container.Issues.Issues())
}

func TestNewImportCommand_AppendFromStdin(t *testing.T) {
	container, _ := newTestContainer(t, testIssue("old", domain.StatusBacklog, "old"))

	cmd := newImportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader("- title: x\n"))
	cmd.SetArgs([]string{"-", "--format", "yaml", "--append"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Imported 1 issues (2 total)\n", buf.String())

	issue, ok := container.Issues.Find("id-1")
	require.True(t, ok)
	assert.Equal(t, "x", issue.Title())
}

func TestNewImportCommand_MissingFile(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newImportCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json")})

	assert.ErrorIs(t, cmd.Execute(), os.ErrNotExist)
}
