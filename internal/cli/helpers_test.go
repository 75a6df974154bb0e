package cli

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/board"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
)

// newTestContainer creates an app.Container over mock storage.
// New issues get ids "id-1", "id-2", ...
func newTestContainer(t *testing.T, seed ...domain.Issue) (*app.Container, *testutil.MockStorage) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	storage := testutil.NewMockStorage()
	store := board.New(
		board.WithStorage(storage),
		board.WithIDGenerator(&testutil.SequenceIDs{}),
	)
	if len(seed) > 0 {
		store.Set(seed)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	container := app.NewWithDeps(
		app.Config{DataDir: t.TempDir()},
		nil,
		store,
		logger,
	)
	return container, storage
}

// captureLog replaces the container logger with one writing to the returned buffer.
func captureLog(c *app.Container) *bytes.Buffer {
	var buf bytes.Buffer
	c.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return &buf
}

func testIssue(id string, status domain.Status, title string) domain.Issue {
	return domain.Issue{ID: id, Status: status, Fields: map[string]any{domain.FieldTitle: title}}
}
