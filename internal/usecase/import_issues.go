package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"

	"github.com/runoshun/taskboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// ImportIssuesInput contains the parameters for importing issues.
type ImportIssuesInput struct {
	Reader io.Reader     // Source
	Format domain.Format // Input format (default json)
	Append bool          // Add as new issues instead of replacing the list
}

// ImportIssuesOutput contains the result of an import.
type ImportIssuesOutput struct {
	Imported int // Number of issues read
	Total    int // Size of the list afterwards
}

// ImportIssues is the use case for loading issues from a file or stream.
type ImportIssues struct {
	issues domain.IssueStore
	logger domain.Logger
}

// NewImportIssues creates a new ImportIssues use case.
func NewImportIssues(issues domain.IssueStore, logger domain.Logger) *ImportIssues {
	return &ImportIssues{
		issues: issues,
		logger: logger,
	}
}

// Execute reads the list and either replaces the board with it or, with
// Append, adds every record as a new issue with a freshly generated id.
// In replace mode every issue needs a unique id.
func (uc *ImportIssues) Execute(_ context.Context, in ImportIssuesInput) (*ImportIssuesOutput, error) {
	issues, err := DecodeList(in.Reader, in.Format)
	if err != nil {
		return nil, fmt.Errorf("import issues: %w", err)
	}

	if in.Append {
		for _, issue := range issues {
			data := make(domain.IssueData, len(issue.Fields)+1)
			maps.Copy(data, issue.Fields)
			if issue.Status != "" {
				data[domain.FieldStatus] = string(issue.Status)
			}
			uc.issues.AddIssue(data)
		}
	} else {
		if err := checkIDs(issues); err != nil {
			return nil, fmt.Errorf("import issues: %w", err)
		}
		uc.issues.Set(issues)
	}

	total := len(uc.issues.Issues())
	uc.logger.Info("issue", fmt.Sprintf("imported %d issues (append=%t), %d total", len(issues), in.Append, total))
	return &ImportIssuesOutput{Imported: len(issues), Total: total}, nil
}

// DecodeList reads an issue list from r in the given format.
func DecodeList(r io.Reader, format domain.Format) ([]domain.Issue, error) {
	var issues []domain.Issue
	switch format {
	case "", domain.FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if issues, err = domain.DecodeIssues(string(data)); err != nil {
			return nil, err
		}
	case domain.FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&issues); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
	if issues == nil {
		issues = []domain.Issue{}
	}
	return issues, nil
}

func checkIDs(issues []domain.Issue) error {
	seen := make(map[string]struct{}, len(issues))
	for i, issue := range issues {
		if issue.ID == "" {
			return fmt.Errorf("entry %d: %w", i, domain.ErrMissingIssueID)
		}
		if _, dup := seen[issue.ID]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateIssueID, issue.ID)
		}
		seen[issue.ID] = struct{}{}
	}
	return nil
}
