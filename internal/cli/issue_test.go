package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Add Command Tests
// =============================================================================

func TestNewAddCommand_CreateIssue(t *testing.T) {
	// Setup
	container, storage := newTestContainer(t)

	// Create command
	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--title", "Test issue"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Created issue id-1\n", buf.String())

	issues := container.Issues.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "Test issue", issues[0].Title())
	assert.Equal(t, domain.StatusBacklog, issues[0].Status)
	assert.Contains(t, storage.Value(domain.DefaultStorageKey), `"title":"Test issue"`)
}

func TestNewAddCommand_WithStatusAndFields(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--title", "Fix login",
		"--status", "In Progress",
		"--field", "priority=high",
		"-f", "owner=sam",
	})

	require.NoError(t, cmd.Execute())

	issue, ok := container.Issues.Find("id-1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusInProgress, issue.Status)
	assert.Equal(t, "high", issue.Fields["priority"])
	assert.Equal(t, "sam", issue.Fields["owner"])
}

func TestNewAddCommand_MissingTitle(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
	assert.Empty(t, container.Issues.Issues())
}

func TestNewAddCommand_BadField(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--title", "x", "--field", "nokey"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrInvalidField)
}

// =============================================================================
// Move Command Tests
// =============================================================================

func TestNewMoveCommand_Success(t *testing.T) {
	container, _ := newTestContainer(t, testIssue("1", domain.StatusBacklog, "a"))

	cmd := newMoveCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1", "Done"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Moved issue 1 to Done\n", buf.String())

	issue, _ := container.Issues.Find("1")
	assert.Equal(t, domain.StatusDone, issue.Status)
}

func TestNewMoveCommand_UnknownIDWarns(t *testing.T) {
	container, _ := newTestContainer(t, testIssue("1", domain.StatusBacklog, "a"))
	logs := captureLog(container)

	cmd := newMoveCommand(container)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"2", "Done"})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), `level=WARN msg="no such issue" id=2`)
}

func TestNewMoveCommand_UnknownIDStrict(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newMoveCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"2", "Done", "--strict"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrIssueNotFound)
}

func TestNewMoveCommand_RequiresTwoArgs(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newMoveCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"1"})

	assert.Error(t, cmd.Execute())
}

// =============================================================================
// Rm Command Tests
// =============================================================================

func TestNewRmCommand_Success(t *testing.T) {
	container, _ := newTestContainer(t,
		testIssue("1", domain.StatusBacklog, "a"),
		testIssue("2", domain.StatusBacklog, "b"),
	)

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Deleted issue 1\n", buf.String())
	assert.Equal(t, []domain.Issue{testIssue("2", domain.StatusBacklog, "b")}, container.Issues.Issues())
}

func TestNewRmCommand_UnknownIDWarns(t *testing.T) {
	container, _ := newTestContainer(t)
	logs := captureLog(container)

	cmd := newRmCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"9"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, logs.String(), `level=WARN msg="no such issue" id=9`)
}
