package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case MsgIssuesUpdated:
		m.setIssues(msg.Issues)
		return m, m.feed.wait()

	case MsgIssueAdded:
		m.err = nil
		m.follow(msg.Issue.ID, msg.Issue.Status)
		return m, nil

	case MsgIssueMoved:
		m.err = nil
		m.follow(msg.ID, msg.Status)
		return m, nil

	case MsgIssueDeleted:
		m.err = nil
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key input by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeInputTitle:
		return m.handleInputTitleMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.boardColumns())-1 {
			m.col++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		status := m.currentColumn()
		if m.cursor[status] > 0 {
			m.cursor[status]--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		status := m.currentColumn()
		if m.cursor[status] < len(m.columnIssues(status))-1 {
			m.cursor[status]++
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveLeft):
		return m, m.moveSelected(-1)

	case key.Matches(msg, m.keys.MoveRight):
		return m, m.moveSelected(1)

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeInputTitle
		m.titleInput.Reset()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		issue, ok := m.SelectedIssue()
		if !ok {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmID = issue.ID
		return m, nil
	}

	return m, nil
}

func (m *Model) handleInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		title := strings.TrimSpace(m.titleInput.Value())
		m.mode = ModeNormal
		m.titleInput.Blur()
		if title == "" {
			return m, nil
		}
		return m, m.addIssue(title, m.currentColumn())
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, id := m.confirmAction, m.confirmID
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone
	m.confirmID = ""

	if !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}
	switch action {
	case ConfirmDelete:
		return m, m.deleteIssue(id)
	case ConfirmNone:
	}
	return m, nil
}

// handleHelpMode closes the help overlay on any key.
func (m *Model) handleHelpMode(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	return m, nil
}

// moveSelected moves the selected issue offset columns to the side.
func (m *Model) moveSelected(offset int) tea.Cmd {
	issue, ok := m.SelectedIssue()
	if !ok {
		return nil
	}
	target := domain.Neighbor(m.boardColumns(), issue.Status, offset)
	if target == issue.Status {
		return nil
	}

	uc := m.container.MoveIssueUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.MoveIssueInput{
			ID:     issue.ID,
			Status: target,
			Strict: true,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgIssueMoved{ID: issue.ID, Status: out.Issue.Status}
	}
}

func (m *Model) addIssue(title string, status domain.Status) tea.Cmd {
	uc := m.container.AddIssueUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.AddIssueInput{
			Title:  title,
			Status: status,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgIssueAdded{Issue: out.Issue}
	}
}

func (m *Model) deleteIssue(id string) tea.Cmd {
	uc := m.container.DeleteIssueUseCase()
	return func() tea.Msg {
		if _, err := uc.Execute(context.Background(), usecase.DeleteIssueInput{ID: id, Strict: true}); err != nil {
			return MsgError{Err: err}
		}
		return MsgIssueDeleted{ID: id}
	}
}
