package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskboard/internal/domain"
)

// MoveIssueInput contains the parameters for moving an issue.
type MoveIssueInput struct {
	ID     string        // Issue ID
	Status domain.Status // Target status
	Strict bool          // Fail instead of ignoring an unknown ID
}

// MoveIssueOutput contains the result of moving an issue.
// Issue is only meaningful when Found is true.
type MoveIssueOutput struct {
	Issue domain.Issue
	From  domain.Status
	Found bool
}

// MoveIssue is the use case for changing the status of an issue.
type MoveIssue struct {
	issues domain.IssueStore
	logger domain.Logger
}

// NewMoveIssue creates a new MoveIssue use case.
func NewMoveIssue(issues domain.IssueStore, logger domain.Logger) *MoveIssue {
	return &MoveIssue{
		issues: issues,
		logger: logger,
	}
}

// Execute moves the issue to the target status.
// An unknown ID is a no-op unless Strict is set.
func (uc *MoveIssue) Execute(_ context.Context, in MoveIssueInput) (*MoveIssueOutput, error) {
	status := domain.Status(strings.TrimSpace(string(in.Status)))
	if status == "" {
		return nil, domain.ErrEmptyStatus
	}

	before, found := uc.issues.Find(in.ID)
	if !found && in.Strict {
		return nil, fmt.Errorf("move issue %s: %w", in.ID, domain.ErrIssueNotFound)
	}

	uc.issues.MoveIssue(in.ID, status)

	out := &MoveIssueOutput{Found: found}
	if !found {
		uc.logger.Warn("issue", fmt.Sprintf("move: no issue %s", in.ID))
		return out, nil
	}
	out.From = before.Status
	out.Issue = before.WithStatus(status)
	uc.logger.Info("issue", fmt.Sprintf("moved %s from %s to %s", in.ID, before.Status, status))
	return out, nil
}
