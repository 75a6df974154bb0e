package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// DeleteIssueInput contains the parameters for deleting an issue.
type DeleteIssueInput struct {
	ID     string // Issue ID
	Strict bool   // Fail instead of ignoring an unknown ID
}

// DeleteIssueOutput contains the result of deleting an issue.
type DeleteIssueOutput struct {
	Issue domain.Issue // The deleted issue, zero when not found
	Found bool
}

// DeleteIssue is the use case for removing an issue from the board.
type DeleteIssue struct {
	issues domain.IssueStore
	logger domain.Logger
}

// NewDeleteIssue creates a new DeleteIssue use case.
func NewDeleteIssue(issues domain.IssueStore, logger domain.Logger) *DeleteIssue {
	return &DeleteIssue{
		issues: issues,
		logger: logger,
	}
}

// Execute deletes the issue.
func (uc *DeleteIssue) Execute(_ context.Context, in DeleteIssueInput) (*DeleteIssueOutput, error) {
	issue, found := uc.issues.Find(in.ID)
	if !found && in.Strict {
		return nil, fmt.Errorf("delete issue %s: %w", in.ID, domain.ErrIssueNotFound)
	}

	uc.issues.DeleteIssue(in.ID)

	if found {
		uc.logger.Info("issue", fmt.Sprintf("deleted %s %q", in.ID, issue.Title()))
	} else {
		uc.logger.Warn("issue", fmt.Sprintf("delete: no issue %s", in.ID))
	}
	return &DeleteIssueOutput{Issue: issue, Found: found}, nil
}
