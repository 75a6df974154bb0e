package cli

import (
	"fmt"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
	"github.com/spf13/cobra"
)

// addOptions holds options for the add command.
type addOptions struct {
	Title  string
	Status string
	Fields []string
}

// newAddCommand creates the add command for adding issues.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new issue",
		Long: `Add a new issue to the board.

The issue starts in the Backlog column unless --status is given.
Extra fields are stored verbatim as strings.

Examples:
  board add --title "Write release notes"
  board add --title "Fix login" --status "In Progress" --field priority=high`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, err := usecase.ParseFields(opts.Fields)
			if err != nil {
				return err
			}

			out, err := c.AddIssueUseCase().Execute(cmd.Context(), usecase.AddIssueInput{
				Title:  opts.Title,
				Status: domain.Status(opts.Status),
				Fields: fields,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created issue %s\n", out.Issue.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Issue title (required)")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Initial status (default Backlog)")
	cmd.Flags().StringArrayVarP(&opts.Fields, "field", "f", nil, "Extra field as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newMoveCommand creates the move command for changing an issue's status.
func newMoveCommand(c *app.Container) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move an issue to another column",
		Long: `Move an issue to another status column, keeping its position in the list.

An unknown id only prints a warning, unless --strict is given.

Examples:
  board move 1700000000000 Done
  board move 1700000000000 "In Progress"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.MoveIssueUseCase().Execute(cmd.Context(), usecase.MoveIssueInput{
				ID:     args[0],
				Status: domain.Status(args[1]),
				Strict: strict,
			})
			if err != nil {
				return err
			}

			if !out.Found {
				c.Logger.Warn("no such issue", "id", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved issue %s to %s\n", args[0], out.Issue.Status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if the issue does not exist")

	return cmd
}

// newRmCommand creates the rm command for deleting issues.
func newRmCommand(c *app.Container) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an issue",
		Long: `Delete an issue from the board.

Deleting an unknown id only prints a warning, unless --strict is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeleteIssueUseCase().Execute(cmd.Context(), usecase.DeleteIssueInput{
				ID:     args[0],
				Strict: strict,
			})
			if err != nil {
				return err
			}

			if !out.Found {
				c.Logger.Warn("no such issue", "id", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted issue %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if the issue does not exist")

	return cmd
}
