// Package idgen provides identifier generators for new issues.
package idgen

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/runoshun/taskboard/internal/domain"
)

// Timestamp generates ids from the current Unix time in milliseconds, as a
// decimal string. Within one generator ids are strictly increasing: if the
// clock has not moved past the last id, the next id is last+1.
type Timestamp struct {
	clock domain.Clock
	mu    sync.Mutex
	last  int64
}

// NewTimestamp creates a Timestamp generator reading from clock.
func NewTimestamp(clock domain.Clock) *Timestamp {
	return &Timestamp{clock: clock}
}

// NewID returns the next id.
func (g *Timestamp) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.clock.Now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// New returns the generator for a configured strategy.
func New(strategy string, clock domain.Clock) (domain.IDGenerator, error) {
	switch strategy {
	case "", domain.IDStrategyTimestamp:
		return NewTimestamp(clock), nil
	case domain.IDStrategyUUID:
		return UUID{}, nil
	default:
		return nil, domain.ErrUnknownIDStrategy
	}
}

var (
	_ domain.IDGenerator = (*Timestamp)(nil)
	_ domain.IDGenerator = UUID{}
)
