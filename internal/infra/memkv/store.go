// Package memkv provides an in-memory implementation of domain.Storage.
package memkv

import (
	"maps"
	"sync"

	"github.com/runoshun/taskboard/internal/domain"
)

// Store keeps values in a map for the lifetime of the process.
type Store struct {
	values map[string]string
	mu     sync.RWMutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Snapshot returns a copy of all stored values.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Ensure Store implements domain.Storage.
var _ domain.Storage = (*Store)(nil)
