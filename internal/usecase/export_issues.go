package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/runoshun/taskboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// ExportIssuesInput contains the parameters for exporting issues.
type ExportIssuesInput struct {
	Writer io.Writer     // Destination
	Format domain.Format // Output format (default json)
}

// ExportIssuesOutput contains the result of an export.
type ExportIssuesOutput struct {
	Count int // Number of exported issues
}

// ExportIssues is the use case for writing the issue list to a file or stream.
type ExportIssues struct {
	issues domain.IssueStore
}

// NewExportIssues creates a new ExportIssues use case.
func NewExportIssues(issues domain.IssueStore) *ExportIssues {
	return &ExportIssues{issues: issues}
}

// Execute writes every issue in list order.
func (uc *ExportIssues) Execute(_ context.Context, in ExportIssuesInput) (*ExportIssuesOutput, error) {
	issues := uc.issues.Issues()
	if err := EncodeList(in.Writer, in.Format, issues); err != nil {
		return nil, fmt.Errorf("export issues: %w", err)
	}
	return &ExportIssuesOutput{Count: len(issues)}, nil
}

// EncodeList writes issues to w in the given format.
func EncodeList(w io.Writer, format domain.Format, issues []domain.Issue) error {
	if issues == nil {
		issues = []domain.Issue{}
	}
	switch format {
	case "", domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(issues)
	case domain.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(issues); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}
