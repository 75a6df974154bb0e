package domain

import "time"

// Storage is a durable key-value string store.
// A nil Storage means no durable storage is available; callers keep state in memory only.
type Storage interface {
	// Get returns the value stored under key. ok is false if the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// IDGenerator produces identifiers for new issues.
type IDGenerator interface {
	// NewID returns a fresh identifier.
	NewID() string
}

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger provides logging functionality.
// Messages are tagged with a category such as "store" or "issue".
type Logger interface {
	// Info logs an info message.
	Info(category, msg string)
	// Debug logs a debug message.
	Debug(category, msg string)
	// Warn logs a warning message.
	Warn(category, msg string)
	// Error logs an error message.
	Error(category, msg string)
}

// NopLogger discards every message.
type NopLogger struct{}

func (NopLogger) Info(_, _ string)  {}
func (NopLogger) Debug(_, _ string) {}
func (NopLogger) Warn(_, _ string)  {}
func (NopLogger) Error(_, _ string) {}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (global + local).
	Load() (*Config, error)
}

// IssueStore is the reactive issue list used by the use cases and the TUI.
type IssueStore interface {
	// Issues returns a copy of the current list.
	Issues() []Issue

	// Find returns the issue with the given id.
	Find(id string) (Issue, bool)

	// AddIssue appends a new issue and returns it.
	AddIssue(data IssueData) Issue

	// MoveIssue sets the status of the issue with the given id.
	MoveIssue(id string, status Status)

	// DeleteIssue removes every issue with the given id.
	DeleteIssue(id string)

	// Set replaces the whole list.
	Set(issues []Issue)

	// Update replaces the list with fn(current).
	Update(fn func([]Issue) []Issue)

	// Subscribe registers fn for the current and every future list.
	Subscribe(fn func([]Issue)) (unsubscribe func())
}
