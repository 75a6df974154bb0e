package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/taskboard/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color

	// Title colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Status colors
	Backlog    lipgloss.Color
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Backlog:    lipgloss.Color("#B2BEC3"), // Light gray
	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Done:       lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Columns
	Column        lipgloss.Style
	ColumnFocused lipgloss.Style
	ColumnTitle   lipgloss.Style

	// Issues
	Issue         lipgloss.Style
	IssueSelected lipgloss.Style
	IssueID       lipgloss.Style
	Empty         lipgloss.Style

	// Footer and dialogs
	Footer      lipgloss.Style
	InputPrompt lipgloss.Style
	Dialog      lipgloss.Style
	ErrorMsg    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header:     lipgloss.NewStyle().MarginBottom(1),
		HeaderText: lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),
		ColumnFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),
		ColumnTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),

		Issue:         lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		IssueSelected: lipgloss.NewStyle().Foreground(Colors.TitleSelected).Bold(true),
		IssueID:       lipgloss.NewStyle().Foreground(Colors.Muted),
		Empty:         lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),

		Footer:      lipgloss.NewStyle().Foreground(Colors.Muted).MarginTop(1),
		InputPrompt: lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning).
			Padding(0, 1).
			MarginTop(1),
		ErrorMsg: lipgloss.NewStyle().Foreground(Colors.Error),
	}
}

// StatusColor returns the color of a status column. Unknown statuses share
// the secondary color.
func StatusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusBacklog:
		return Colors.Backlog
	case domain.StatusTodo:
		return Colors.Todo
	case domain.StatusInProgress:
		return Colors.InProgress
	case domain.StatusDone:
		return Colors.Done
	default:
		return Colors.Secondary
	}
}

// StatusStyle returns the title style of a status column.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	return s.ColumnTitle.Foreground(StatusColor(status))
}
