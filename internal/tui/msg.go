package tui

import "github.com/runoshun/taskboard/internal/domain"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgIssuesUpdated is sent when the store publishes a new list.
type MsgIssuesUpdated struct {
	Issues []domain.Issue
}

func (MsgIssuesUpdated) sealed() {}

// MsgIssueAdded is sent after an issue has been created.
type MsgIssueAdded struct {
	Issue domain.Issue
}

func (MsgIssueAdded) sealed() {}

// MsgIssueMoved is sent after an issue has changed column.
type MsgIssueMoved struct {
	ID     string
	Status domain.Status
}

func (MsgIssueMoved) sealed() {}

// MsgIssueDeleted is sent after an issue has been deleted.
type MsgIssueDeleted struct {
	ID string
}

func (MsgIssueDeleted) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
