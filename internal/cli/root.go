// Package cli provides the command-line interface for board.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/runoshun/taskboard/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupIssue = "issue"
	groupData  = "data"
	groupSetup = "setup"
)

// DirFlag is the persistent flag selecting the data directory.
// main reads it before the container is built.
const DirFlag = "dir"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// isTerminalFunc reports whether stdout is a terminal. Tests replace it.
var isTerminalFunc = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewRootCommand creates the root command for board.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:   "board",
		Short: "Kanban issue board",
		Long: `board keeps a list of issues grouped into workflow columns.

The list is stored as JSON in the board data directory: $BOARD_DIR,
.git/board inside a git repository, or the user data directory.
Run without arguments in a terminal to open the interactive board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				c.Logger.Warn("config", "problem", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || !isTerminalFunc() {
				return cmd.Help()
			}
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&dir, DirFlag, "", "Board data directory (overrides $BOARD_DIR)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupIssue, Title: "Issue Commands:"},
		&cobra.Group{ID: groupData, Title: "Data Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Issue commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupIssue

	moveCmd := newMoveCommand(c)
	moveCmd.GroupID = groupIssue

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupIssue

	lsCmd := newLsCommand(c)
	lsCmd.GroupID = groupIssue

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupIssue

	// Data commands
	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupData

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupData

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		moveCmd,
		rmCmd,
		lsCmd,
		tuiCmd,
		exportCmd,
		importCmd,
		configCmd,
	)

	return root
}
