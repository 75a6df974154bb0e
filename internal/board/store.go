// Package board provides the issue store: an ordered issue list mirrored to a
// key-value storage and broadcast to subscribers on every change.
package board

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/idgen"
)

// Option configures a Store.
type Option func(*Store)

// WithStorage sets the durable storage. A nil storage disables persistence.
func WithStorage(storage domain.Storage) Option {
	return func(s *Store) {
		s.storage = storage
	}
}

// WithKey sets the storage key holding the issue list.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithIDGenerator sets the generator used for new issue ids.
func WithIDGenerator(ids domain.IDGenerator) Option {
	return func(s *Store) {
		s.ids = ids
	}
}

// WithLogger sets the logger.
func WithLogger(logger domain.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithErrorHandler sets a callback for storage failures.
// op is "load" or "save". By default failures are logged as warnings.
// fn runs while the store is locked and must not call back into it.
func WithErrorHandler(fn func(op string, err error)) Option {
	return func(s *Store) {
		s.onError = fn
	}
}

// subscriber is a registered callback. A pending subscriber has not yet had
// its first call and is skipped by notification rounds.
type subscriber struct {
	fn      func([]domain.Issue)
	id      int
	pending bool
}

// Store holds the issue list.
//
// Every mutation replaces the list with a new slice, writes the full list to
// storage and notifies subscribers. Published slices are never modified
// afterwards, so subscribers may keep them. Storage failures are never
// returned to callers; they go to the error handler.
//
// Notification is synchronous and runs outside the internal lock. A mutation
// made while a notification round is in progress (from a callback or another
// goroutine) is delivered by that round, which repeats with the newest list.
// The first call made by Subscribe counts as a round, so no subscriber is
// handed a list older than one it has already seen.
// Fields are ordered to minimize memory padding.
type Store struct {
	storage   domain.Storage
	ids       domain.IDGenerator
	logger    domain.Logger
	onError   func(op string, err error)
	key       string
	issues    []domain.Issue
	subs      []*subscriber
	mu        sync.Mutex
	nextSub   int
	version   uint64
	notifying bool
	dirty     bool
}

// New creates a Store and loads the list from storage.
// Absent or unparsable stored data yields an empty list.
func New(opts ...Option) *Store {
	s := &Store{
		key:    domain.DefaultStorageKey,
		logger: domain.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = idgen.NewTimestamp(domain.RealClock{})
	}
	if s.onError == nil {
		s.onError = func(op string, err error) {
			s.logger.Warn("store", fmt.Sprintf("%s %q: %v", op, s.key, err))
		}
	}

	var raw string
	s.issues, raw = s.load()
	s.version = 1
	// The loaded list is written back once, replacing unparsable data.
	// A value already in canonical form is left alone.
	if encoded, err := domain.EncodeIssues(s.issues); err != nil || encoded != raw {
		s.save(s.issues)
	}
	return s
}

// Subscribe registers fn and calls it immediately with the current list, then
// again after every change. The returned function unsubscribes; calling it
// more than once is harmless.
func (s *Store) Subscribe(fn func([]domain.Issue)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	sub := &subscriber{id: id, fn: fn, pending: true}
	s.subs = append(s.subs, sub)
	current, version := s.issues, s.version
	owner := !s.notifying
	s.notifying = true
	s.mu.Unlock()

	fn(current)

	s.mu.Lock()
	sub.pending = false
	if s.version != version {
		s.dirty = true
	}
	if owner || !s.notifying {
		s.notifying = true
		s.drainLocked()
	} else {
		// The running round sees dirty and repeats.
		s.mu.Unlock()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subs = slices.DeleteFunc(slices.Clone(s.subs), func(sub *subscriber) bool {
				return sub.id == id
			})
		})
	}
}

// Issues returns a copy of the current list.
func (s *Store) Issues() []domain.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.issues)
}

// Find returns the issue with the given id.
func (s *Store) Find(id string) (domain.Issue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := domain.IndexOf(s.issues, id)
	if idx < 0 {
		return domain.Issue{}, false
	}
	return s.issues[idx], true
}

// AddIssue appends a new issue built from data and returns it.
// The id is always generated; data["status"] overrides the default status.
func (s *Store) AddIssue(data domain.IssueData) domain.Issue {
	var added domain.Issue
	s.Update(func(issues []domain.Issue) []domain.Issue {
		added = s.newIssue(data, issues)
		return append(slices.Clip(issues), added)
	})
	return added
}

// MoveIssue sets the status of the issue with the given id, keeping its
// position and other fields. An unknown id leaves the list unchanged, but the
// list is still persisted and published.
func (s *Store) MoveIssue(id string, status domain.Status) {
	s.Update(func(issues []domain.Issue) []domain.Issue {
		next := make([]domain.Issue, len(issues))
		for i, issue := range issues {
			if issue.ID == id {
				issue = issue.WithStatus(status)
			}
			next[i] = issue
		}
		return next
	})
}

// DeleteIssue removes every issue with the given id.
func (s *Store) DeleteIssue(id string) {
	s.Update(func(issues []domain.Issue) []domain.Issue {
		next := make([]domain.Issue, 0, len(issues))
		for _, issue := range issues {
			if issue.ID != id {
				next = append(next, issue)
			}
		}
		return next
	})
}

// Set replaces the whole list without validation.
func (s *Store) Set(issues []domain.Issue) {
	s.Update(func([]domain.Issue) []domain.Issue {
		return slices.Clone(issues)
	})
}

// Update replaces the list with fn(current). fn must not modify its argument.
func (s *Store) Update(fn func([]domain.Issue) []domain.Issue) {
	s.mu.Lock()
	next := fn(s.issues)
	if next == nil {
		next = []domain.Issue{}
	}
	s.issues = next
	s.version++
	s.save(next)
	s.publishLocked()
}

// publishLocked notifies subscribers. It must be called with s.mu held and
// releases it.
func (s *Store) publishLocked() {
	s.dirty = true
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true
	s.drainLocked()
}

// drainLocked runs notification rounds until the list stops changing. It must
// be called with s.mu held and s.notifying set, and releases s.mu.
func (s *Store) drainLocked() {
	for s.dirty {
		s.dirty = false
		current := s.issues
		subs := slices.DeleteFunc(slices.Clone(s.subs), func(sub *subscriber) bool {
			return sub.pending
		})
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(current)
		}

		s.mu.Lock()
	}
	s.notifying = false
	s.mu.Unlock()
}

// newIssue builds an issue from data with an id not used by issues. Ids from
// another process sharing the storage may be ahead of this generator.
func (s *Store) newIssue(data domain.IssueData, issues []domain.Issue) domain.Issue {
	issue := domain.Issue{
		Status: domain.DefaultStatus,
		Fields: make(map[string]any, len(data)),
	}
	maps.Copy(issue.Fields, data)
	if v, ok := issue.Fields[domain.FieldStatus]; ok {
		issue.Status = domain.StatusOf(v)
		delete(issue.Fields, domain.FieldStatus)
	}
	delete(issue.Fields, domain.FieldID)
	issue.ID = s.ids.NewID()
	for domain.IndexOf(issues, issue.ID) >= 0 {
		issue.ID = s.ids.NewID()
	}
	return issue
}

// load returns the stored list and the raw stored value.
func (s *Store) load() ([]domain.Issue, string) {
	if s.storage == nil {
		return []domain.Issue{}, ""
	}
	raw, ok, err := s.storage.Get(s.key)
	if err != nil {
		s.onError("load", err)
		return []domain.Issue{}, ""
	}
	if !ok || raw == "" {
		return []domain.Issue{}, ""
	}
	issues, err := domain.DecodeIssues(raw)
	if err != nil {
		s.onError("load", fmt.Errorf("parse stored issues: %w", err))
		return []domain.Issue{}, raw
	}
	s.logger.Debug("store", fmt.Sprintf("loaded %d issues from %q", len(issues), s.key))
	return issues, raw
}

func (s *Store) save(issues []domain.Issue) {
	if s.storage == nil {
		return
	}
	raw, err := domain.EncodeIssues(issues)
	if err != nil {
		s.onError("save", fmt.Errorf("encode issues: %w", err))
		return
	}
	if err := s.storage.Set(s.key, raw); err != nil {
		s.onError("save", err)
	}
}

// Ensure Store implements domain.IssueStore.
var _ domain.IssueStore = (*Store)(nil)
