package cli

import (
	"encoding/json"
	"fmt"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
	"github.com/spf13/cobra"
)

// lsOptions holds options for the ls command.
type lsOptions struct {
	Status string
	JSON   bool
}

// jsonColumn is the --json shape of one board column.
type jsonColumn struct {
	Status string         `json:"status"`
	Issues []domain.Issue `json:"issues"`
}

// newLsCommand creates the ls command for listing the board.
func newLsCommand(c *app.Container) *cobra.Command {
	var opts lsOptions

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List issues grouped by status",
		Long: `List the board: every configured column in order, followed by any
other status that is in use. Issues keep their list order within a column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListBoardUseCase().Execute(cmd.Context(), usecase.ListBoardInput{
				Status: domain.Status(opts.Status),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.JSON {
				cols := make([]jsonColumn, 0, len(out.Columns))
				for _, col := range out.Columns {
					issues := col.Issues
					if issues == nil {
						issues = []domain.Issue{}
					}
					cols = append(cols, jsonColumn{Status: string(col.Status), Issues: issues})
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(cols)
			}

			_, _ = fmt.Fprintln(w, renderBoard(out, isTerminalFunc()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Only show this column")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// renderBoard renders the board as one table, one row group per column.
func renderBoard(out *usecase.ListBoardOutput, colorize bool) string {
	groups := make([]tableGroup, 0, len(out.Columns))
	for _, col := range out.Columns {
		var g tableGroup
		if len(col.Issues) == 0 {
			g.rows = append(g.rows, []string{col.Status.Display(), "", "(no issues)"})
		}
		for _, issue := range col.Issues {
			g.rows = append(g.rows, []string{col.Status.Display(), issue.ID, issue.Title()})
		}
		groups = append(groups, g)
	}
	footer := []string{"Total", fmt.Sprintf("%d", out.Total), ""}
	return renderTable([]string{"Status", "ID", "Title"}, groups, footer, colorize)
}
