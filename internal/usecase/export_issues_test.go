package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportIssues_Execute_JSON(t *testing.T) {
	store, _ := newTestStore(t,
		issue("1", domain.StatusBacklog, "a"),
		issue("2", domain.StatusDone, "b"),
	)
	uc := NewExportIssues(store)
	var buf bytes.Buffer

	out, err := uc.Execute(context.Background(), ExportIssuesInput{Writer: &buf})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.JSONEq(t,
		`[{"id":"1","status":"Backlog","title":"a"},{"id":"2","status":"Done","title":"b"}]`,
		buf.String())
}

func TestExportIssues_Execute_YAML(t *testing.T) {
	store, _ := newTestStore(t, issue("1", domain.StatusTodo, "a"))
	uc := NewExportIssues(store)
	var buf bytes.Buffer

	_, err := uc.Execute(context.Background(), ExportIssuesInput{Writer: &buf, Format: domain.FormatYAML})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `id: "1"`)
	assert.Contains(t, buf.String(), "status: To Do")
	assert.Contains(t, buf.String(), "title: a")
}

func TestExportIssues_Execute_Empty(t *testing.T) {
	store, _ := newTestStore(t)
	uc := NewExportIssues(store)
	var buf bytes.Buffer

	_, err := uc.Execute(context.Background(), ExportIssuesInput{Writer: &buf})

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, buf.String())
}

func TestExportIssues_Execute_UnknownFormat(t *testing.T) {
	store, _ := newTestStore(t)
	uc := NewExportIssues(store)

	_, err := uc.Execute(context.Background(), ExportIssuesInput{Writer: &bytes.Buffer{}, Format: "xml"})

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}
