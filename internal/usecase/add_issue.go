// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskboard/internal/domain"
)

// AddIssueInput contains the parameters for adding an issue.
// Fields are ordered to minimize memory padding.
type AddIssueInput struct {
	Fields map[string]any // Extra fields (optional)
	Title  string         // Issue title (required)
	Status domain.Status  // Initial status (optional, default Backlog)
}

// AddIssueOutput contains the result of adding an issue.
type AddIssueOutput struct {
	Issue domain.Issue // The created issue
}

// AddIssue is the use case for adding an issue to the board.
type AddIssue struct {
	issues domain.IssueStore
	logger domain.Logger
}

// NewAddIssue creates a new AddIssue use case.
func NewAddIssue(issues domain.IssueStore, logger domain.Logger) *AddIssue {
	return &AddIssue{
		issues: issues,
		logger: logger,
	}
}

// Execute adds a new issue.
func (uc *AddIssue) Execute(_ context.Context, in AddIssueInput) (*AddIssueOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	data := make(domain.IssueData, len(in.Fields)+2)
	for k, v := range in.Fields {
		if k == domain.FieldID || k == domain.FieldStatus || k == domain.FieldTitle {
			return nil, fmt.Errorf("%w: %q", domain.ErrReservedField, k)
		}
		data[k] = v
	}
	data[domain.FieldTitle] = title
	if in.Status != "" {
		data[domain.FieldStatus] = string(in.Status)
	}

	issue := uc.issues.AddIssue(data)
	uc.logger.Info("issue", fmt.Sprintf("created %s %q in %s", issue.ID, title, issue.Status))

	return &AddIssueOutput{Issue: issue}, nil
}

// ParseFields parses "key=value" pairs into a field map.
// Values are kept as strings.
func ParseFields(pairs []string) (map[string]any, error) {
	fields := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q (want key=value)", domain.ErrInvalidField, pair)
		}
		fields[k] = v
	}
	return fields, nil
}
