package services

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driven"
)

// Ensure generators implement the interface.
var (
	_ driven.IDGenerator = (*TimestampIDGenerator)(nil)
	_ driven.IDGenerator = UUIDGenerator{}
)

// TimestampIDGenerator derives identifiers from the current nanosecond
// timestamp. Within one process identifiers are strictly increasing; two
// processes creating entities in the same nanosecond can still collide.
type TimestampIDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTimestampIDGenerator creates a timestamp generator.
// A nil clock uses time.Now.
func NewTimestampIDGenerator(now func() time.Time) *TimestampIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimestampIDGenerator{now: now}
}

// NewID returns the current timestamp as a decimal string.
func (g *TimestampIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := g.now().UnixNano()
	if ts <= g.last {
		ts = g.last + 1
	}
	g.last = ts
	return strconv.FormatInt(ts, 10)
}

// UUIDGenerator produces random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// NewIDGenerator returns the generator for the configured strategy.
func NewIDGenerator(strategy domain.IDStrategy) (driven.IDGenerator, error) {
	switch strategy {
	case domain.IDStrategyTimestamp, "":
		return NewTimestampIDGenerator(nil), nil
	case domain.IDStrategyUUID:
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("id strategy %q: %w", strategy, domain.ErrInvalidInput)
	}
}
