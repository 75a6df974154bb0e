// Package filekv provides a file-based implementation of domain.Storage.
// Each key is stored as <dir>/<key>.json.
package filekv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/runoshun/taskboard/internal/domain"
)

// Store implements domain.Storage using one file per key.
// Access is serialized across processes with a lock file in the same directory,
// and across goroutines with a mutex (flock locks are per file handle).
type Store struct {
	lock *flock.Flock
	dir  string
	mu   sync.Mutex
}

// New creates a new Store rooted at dir.
// The directory does not need to exist; it will be created on first write.
func New(dir string) *Store {
	return &Store{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, ".lock")),
	}
}

// Dir returns the directory holding the value files.
func (s *Store) Dir() string {
	return s.dir
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)
	err = s.withLock(false, func() error {
		content, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("read %s: %w", key, err)
		}
		value, found = string(content), true
		return nil
	})
	return value, found, err
}

// Set stores value under key, replacing the file atomically.
func (s *Store) Set(key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	return s.withLock(true, func() error {
		return writeAtomic(path, []byte(value))
	})
}

func (s *Store) path(key string) (string, error) {
	if err := domain.ValidateKey(key); err != nil {
		return "", fmt.Errorf("%w: %q", err, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// withLock executes fn holding a shared lock, or an exclusive lock if exclusive is set.
func (s *Store) withLock(exclusive bool, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	lockFn := s.lock.RLock
	if exclusive {
		lockFn = s.lock.Lock
	}
	if err := lockFn(); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	return fn()
}

// writeAtomic writes to a temp file first, then renames it over path.
func writeAtomic(path string, content []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements domain.Storage.
var _ domain.Storage = (*Store)(nil)
