package domain

import "errors"

// Domain errors.
var (
	ErrIssueNotFound     = errors.New("issue not found")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyStatus       = errors.New("status cannot be empty")
	ErrInvalidField      = errors.New("invalid field (expected key=value)")
	ErrReservedField     = errors.New("field name is reserved")
	ErrInvalidKey        = errors.New("invalid storage key")
	ErrUnknownBackend    = errors.New("unknown storage backend")
	ErrUnknownIDStrategy = errors.New("unknown id strategy")
	ErrUnknownFormat     = errors.New("unknown format (expected json or yaml)")
	ErrNoDataDir         = errors.New("cannot determine data directory")
	ErrNotGitRepository  = errors.New("not a git repository (or any of the parent directories)")
	ErrConfigExists      = errors.New("config file already exists")
	ErrMissingIssueID    = errors.New("issue has no id")
	ErrDuplicateIssueID  = errors.New("duplicate issue id")
)
