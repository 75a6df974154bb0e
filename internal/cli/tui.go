package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/tui"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Long: `Open the interactive kanban board.

Keys: h/l or ←/→ change column, j/k or ↑/↓ change issue,
< and > move the selected issue, a adds, d deletes, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the board TUI until the user quits.
func launchTUI(c *app.Container) error {
	m := tui.New(c)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
