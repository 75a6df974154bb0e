package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/taskboard/internal/domain"
)

const (
	minColumnWidth = 18
	columnGap      = 1
)

// View renders the TUI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString(m.viewBoard())

	switch m.mode {
	case ModeInputTitle:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render(fmt.Sprintf("New issue in %s: ", m.currentColumn().Display())))
		b.WriteString(m.titleInput.View())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirm())
	case ModeHelp:
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render(m.help.FullHelpView(m.keys.FullHelp())))
	case ModeNormal:
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}

	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("board")
	count := m.styles.IssueID.Render(fmt.Sprintf("  %d issues", len(m.issues)))
	return m.styles.Header.Render(title + count)
}

// viewBoard renders the columns side by side.
func (m *Model) viewBoard() string {
	cols := m.boardColumns()
	width := m.columnWidth(len(cols))

	rendered := make([]string, 0, len(cols)*2)
	for i, status := range cols {
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", columnGap))
		}
		rendered = append(rendered, m.viewColumn(status, i == m.col, width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) viewColumn(status domain.Status, focused bool, width int) string {
	issues := m.columnIssues(status)
	inner := max(width-4, 4) // border and padding

	var b strings.Builder
	title := fmt.Sprintf("%s (%d)", status.Display(), len(issues))
	b.WriteString(m.styles.StatusStyle(status).Render(truncate(title, inner)))
	b.WriteString("\n")

	if len(issues) == 0 {
		b.WriteString(m.styles.Empty.Render("empty"))
	}
	for row, issue := range issues {
		if row > 0 {
			b.WriteString("\n")
		}
		line := issue.Title()
		if line == "" {
			line = issue.ID
		}
		line = truncate(line, inner-2)
		if focused && row == m.cursor[status] {
			b.WriteString(m.styles.IssueSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Issue.Render("  " + line))
		}
	}

	style := m.styles.Column
	if focused {
		style = m.styles.ColumnFocused
	}
	return style.Width(width - 2).Render(b.String())
}

func (m *Model) viewConfirm() string {
	issue, ok := m.findIssue(m.confirmID)
	name := m.confirmID
	if ok && issue.Title() != "" {
		name = fmt.Sprintf("%q", issue.Title())
	}
	return m.styles.Dialog.Render(fmt.Sprintf("%s %s? (y/n)", capitalize(m.confirmAction.String()), name))
}

// columnWidth spreads the window width over n columns.
func (m *Model) columnWidth(n int) int {
	if n == 0 || m.width == 0 {
		return minColumnWidth + 8
	}
	avail := m.width - m.styles.App.GetHorizontalFrameSize() - columnGap*(n-1)
	return max(avail/n, minColumnWidth)
}

func (m *Model) findIssue(id string) (domain.Issue, bool) {
	if idx := domain.IndexOf(m.issues, id); idx >= 0 {
		return m.issues[idx], true
	}
	return domain.Issue{}, false
}

// truncate shortens s to at most n cells, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	return runewidth.Truncate(s, n, "…")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
