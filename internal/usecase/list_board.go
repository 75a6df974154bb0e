package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// ListBoardInput contains the parameters for listing the board.
type ListBoardInput struct {
	Status domain.Status // Only this column (optional)
}

// Column is one board column with its issues in list order.
type Column struct {
	Status domain.Status
	Issues []domain.Issue
}

// ListBoardOutput contains the board grouped by status.
type ListBoardOutput struct {
	Columns []Column
	Total   int // Number of issues across the returned columns
}

// ListBoard is the use case for listing issues grouped by status.
type ListBoard struct {
	issues  domain.IssueStore
	columns []domain.Status
}

// NewListBoard creates a new ListBoard use case.
func NewListBoard(issues domain.IssueStore, columns []domain.Status) *ListBoard {
	return &ListBoard{
		issues:  issues,
		columns: columns,
	}
}

// Execute returns the configured columns, followed by any other status in use.
func (uc *ListBoard) Execute(_ context.Context, in ListBoardInput) (*ListBoardOutput, error) {
	return BuildBoard(uc.issues.Issues(), uc.columns, in.Status), nil
}

// BuildBoard groups issues into columns. A non-empty only keeps that column.
func BuildBoard(issues []domain.Issue, columns []domain.Status, only domain.Status) *ListBoardOutput {
	groups := domain.GroupByStatus(issues)
	out := &ListBoardOutput{}
	for _, status := range domain.BoardColumns(columns, issues) {
		if only != "" && status != only {
			continue
		}
		col := Column{Status: status, Issues: groups[status]}
		out.Columns = append(out.Columns, col)
		out.Total += len(col.Issues)
	}
	if only != "" && len(out.Columns) == 0 {
		out.Columns = []Column{{Status: only}}
	}
	return out
}
