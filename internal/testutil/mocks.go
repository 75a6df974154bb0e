// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockStorage is a test double for domain.Storage.
// Fields are ordered to minimize memory padding.
type MockStorage struct {
	Values   map[string]string
	GetErr   error
	SetErr   error
	SetCalls int
	mu       sync.Mutex
}

// NewMockStorage creates a new MockStorage with an initialized map.
func NewMockStorage() *MockStorage {
	return &MockStorage{Values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MockStorage) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MockStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Values[key] = value
	return nil
}

// Value returns the stored value for key, or "" if absent.
func (m *MockStorage) Value(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Values[key]
}

// Snapshot returns a copy of all stored values.
func (m *MockStorage) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.Values)
}

// SequenceIDs is a test double for domain.IDGenerator returning "id-1", "id-2", ...
type SequenceIDs struct {
	Prefix string
	mu     sync.Mutex
	n      int
}

// NewID returns the next id in the sequence.
func (s *SequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id-"
	}
	return fmt.Sprintf("%s%d", prefix, s.n)
}

// FixedIDs is a test double for domain.IDGenerator that always returns the same id.
type FixedIDs string

// NewID returns the fixed id.
func (f FixedIDs) NewID() string {
	return string(f)
}

// LogEntry is a message recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// ByLevel returns recorded entries with the given level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

var (
	_ domain.Clock       = (*MockClock)(nil)
	_ domain.Storage     = (*MockStorage)(nil)
	_ domain.IDGenerator = (*SequenceIDs)(nil)
	_ domain.IDGenerator = FixedIDs("")
	_ domain.Logger      = (*MockLogger)(nil)
)
