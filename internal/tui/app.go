package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	feed      *feed
	err       error

	// State
	issues  []domain.Issue
	columns []domain.Status       // Configured columns
	cursor  map[domain.Status]int // Selected row per column

	// Components
	keys       KeyMap
	styles     Styles
	help       help.Model
	titleInput textinput.Model

	followID  string // Issue to select once the next list arrives
	confirmID string

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	col           int
	width         int
	height        int
}

// New creates a new TUI Model with the given container.
// The model subscribes to the store; call Close when done.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Issue title"
	ti.CharLimit = 200

	return &Model{
		container:  c,
		feed:       newFeed(c.Issues),
		issues:     c.Issues.Issues(),
		columns:    c.Columns(),
		cursor:     make(map[domain.Status]int),
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		titleInput: ti,
		mode:       ModeNormal,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.feed.wait()
}

// Close unsubscribes from the store.
func (m *Model) Close() {
	m.feed.close()
}

// Mode returns the current mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// boardColumns returns the configured columns plus any other status in use.
func (m *Model) boardColumns() []domain.Status {
	return domain.BoardColumns(m.columns, m.issues)
}

// currentColumn returns the focused column status.
func (m *Model) currentColumn() domain.Status {
	cols := m.boardColumns()
	if len(cols) == 0 {
		return domain.DefaultStatus
	}
	return cols[min(m.col, len(cols)-1)]
}

// columnIssues returns the issues of a column in list order.
func (m *Model) columnIssues(status domain.Status) []domain.Issue {
	var out []domain.Issue
	for _, issue := range m.issues {
		if issue.Status == status {
			out = append(out, issue)
		}
	}
	return out
}

// SelectedIssue returns the currently selected issue.
func (m *Model) SelectedIssue() (domain.Issue, bool) {
	status := m.currentColumn()
	issues := m.columnIssues(status)
	row := m.cursor[status]
	if row < 0 || row >= len(issues) {
		return domain.Issue{}, false
	}
	return issues[row], true
}

// setIssues installs a new list and keeps the cursors in range.
func (m *Model) setIssues(issues []domain.Issue) {
	m.issues = issues

	if m.followID != "" {
		if idx := domain.IndexOf(issues, m.followID); idx >= 0 {
			m.selectIssue(issues[idx])
		}
		m.followID = ""
	}

	cols := m.boardColumns()
	if m.col >= len(cols) {
		m.col = max(len(cols)-1, 0)
	}
	for status, row := range m.cursor {
		n := len(m.columnIssues(status))
		if row >= n {
			m.cursor[status] = max(n-1, 0)
		}
	}
}

// follow selects the issue once the list shows it with the given status.
// The store notification and the command result arrive in either order.
func (m *Model) follow(id string, status domain.Status) {
	if idx := domain.IndexOf(m.issues, id); idx >= 0 && m.issues[idx].Status == status {
		m.selectIssue(m.issues[idx])
		return
	}
	m.followID = id
}

// selectIssue focuses the column and row holding issue.
func (m *Model) selectIssue(issue domain.Issue) {
	for i, status := range m.boardColumns() {
		if status != issue.Status {
			continue
		}
		m.col = i
		for row, candidate := range m.columnIssues(status) {
			if candidate.ID == issue.ID {
				m.cursor[status] = row
				return
			}
		}
	}
}
