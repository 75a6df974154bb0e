package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBoard_Execute(t *testing.T) {
	store, _ := newTestStore(t,
		issue("1", domain.StatusDone, "a"),
		issue("2", "Blocked", "b"),
		issue("3", domain.StatusBacklog, "c"),
		issue("4", domain.StatusDone, "d"),
	)
	uc := NewListBoard(store, domain.DefaultColumns())

	out, err := uc.Execute(context.Background(), ListBoardInput{})

	require.NoError(t, err)
	assert.Equal(t, 4, out.Total)

	var statuses []domain.Status
	for _, col := range out.Columns {
		statuses = append(statuses, col.Status)
	}
	assert.Equal(t, []domain.Status{
		domain.StatusBacklog, domain.StatusTodo, domain.StatusInProgress, domain.StatusDone, "Blocked",
	}, statuses)

	done := out.Columns[3]
	require.Len(t, done.Issues, 2)
	assert.Equal(t, "1", done.Issues[0].ID)
	assert.Equal(t, "4", done.Issues[1].ID)
	assert.Empty(t, out.Columns[1].Issues)
}

func TestListBoard_Execute_StatusFilter(t *testing.T) {
	store, _ := newTestStore(t,
		issue("1", domain.StatusDone, "a"),
		issue("2", domain.StatusBacklog, "b"),
	)
	uc := NewListBoard(store, domain.DefaultColumns())

	out, err := uc.Execute(context.Background(), ListBoardInput{Status: domain.StatusDone})

	require.NoError(t, err)
	require.Len(t, out.Columns, 1)
	assert.Equal(t, domain.StatusDone, out.Columns[0].Status)
	assert.Equal(t, 1, out.Total)
}

func TestListBoard_Execute_UnknownStatusFilter(t *testing.T) {
	store, _ := newTestStore(t, issue("1", domain.StatusDone, "a"))
	uc := NewListBoard(store, domain.DefaultColumns())

	out, err := uc.Execute(context.Background(), ListBoardInput{Status: "Nowhere"})

	require.NoError(t, err)
	require.Len(t, out.Columns, 1)
	assert.Equal(t, domain.Status("Nowhere"), out.Columns[0].Status)
	assert.Empty(t, out.Columns[0].Issues)
	assert.Zero(t, out.Total)
}
