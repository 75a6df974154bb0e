package tui

import (
	"log/slog"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/board"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
)

// newTestModel creates a Model over an in-memory store seeded with issues.
func newTestModel(t *testing.T, seed ...domain.Issue) (*Model, *board.Store) {
	t.Helper()
	store := board.New(board.WithIDGenerator(&testutil.SequenceIDs{}))
	if len(seed) > 0 {
		store.Set(seed)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	c := app.NewWithDeps(app.Config{}, nil, store, logger)

	m := New(c)
	t.Cleanup(m.Close)
	return m, store
}

func testIssue(id string, status domain.Status, title string) domain.Issue {
	return domain.Issue{ID: id, Status: status, Fields: map[string]any{domain.FieldTitle: title}}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key to the model and returns the last command.
func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m *Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	m.Update(msg)
	return msg
}

// syncIssues delivers the store's current list to the model.
func syncIssues(m *Model, store *board.Store) {
	m.Update(MsgIssuesUpdated{Issues: store.Issues()})
}
