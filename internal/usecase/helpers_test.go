package usecase

import (
	"testing"

	"github.com/runoshun/taskboard/internal/board"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
)

// newTestStore returns a store over mock storage with ids "id-1", "id-2", ...
func newTestStore(t *testing.T, seed ...domain.Issue) (*board.Store, *testutil.MockStorage) {
	t.Helper()
	storage := testutil.NewMockStorage()
	s := board.New(
		board.WithStorage(storage),
		board.WithIDGenerator(&testutil.SequenceIDs{}),
	)
	if len(seed) > 0 {
		s.Set(seed)
	}
	return s, storage
}

func issue(id string, status domain.Status, title string) domain.Issue {
	return domain.Issue{ID: id, Status: status, Fields: map[string]any{domain.FieldTitle: title}}
}
