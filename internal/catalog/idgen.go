package catalog

import (
	"fmt"
	"sync"
	"time"
)

// IDGenerator mints product ids for admin-added products.
// Implemented by TimestampGenerator (production) and FixedGenerator
// (tests).
type IDGenerator interface {
	Generate() string
}

// TimestampGenerator produces ids of the form "NEW-<unix milliseconds>".
//
// Within a process the ids are guaranteed monotonically distinct: if two
// products are added inside the same millisecond, the generator bumps
// past the last issued timestamp instead of repeating it.
type TimestampGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewTimestampGenerator creates a generator on the wall clock.
func NewTimestampGenerator() *TimestampGenerator {
	return &TimestampGenerator{now: time.Now}
}

// Generate returns the next unique product id.
func (g *TimestampGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("NEW-%d", ms)
}

// FixedGenerator returns predetermined ids for testing.
//
// Tests provide a known sequence of ids and assert exact catalog
// contents.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
//
// Example:
//
//	gen := NewFixedGenerator("NEW-1", "NEW-2")
//	gen.Generate() // "NEW-1"
//	gen.Generate() // "NEW-2"
//	gen.Generate() // panic: all ids exhausted
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined id.
// Panics when all ids have been consumed. Fail-fast to catch test
// misconfiguration (test added more products than expected).
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
