package tui

import (
	"testing"

	"github.com/runoshun/taskboard/internal/board"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_LatestListWins(t *testing.T) {
	store := board.New(board.WithIDGenerator(&testutil.SequenceIDs{}))
	f := newFeed(store)
	defer f.close()

	store.AddIssue(domain.IssueData{"title": "a"})
	store.AddIssue(domain.IssueData{"title": "b"})
	store.AddIssue(domain.IssueData{"title": "c"})

	msg, ok := f.wait()().(MsgIssuesUpdated)
	require.True(t, ok)
	assert.Len(t, msg.Issues, 3)
}

func TestFeed_CloseStopsWaiting(t *testing.T) {
	store := board.New()
	f := newFeed(store)
	<-f.ch // drain the initial list

	f.close()
	f.close()

	assert.Nil(t, f.wait()())

	// Further changes are not delivered
	store.AddIssue(domain.IssueData{"title": "a"})
	assert.Empty(t, f.ch)
}
