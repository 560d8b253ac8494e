// Package domaintest provides deterministic clocks and ID generators for
// tests that build domain entities.
package domaintest

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock is a manually driven clock. The zero value starts at the Unix epoch.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock frozen at t.
func NewClock(t time.Time) *Clock { return &Clock{now: t} }

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// IDs hands out predictable UUIDs: 00000000-0000-0000-0000-000000000001, ...2
// and so on.
type IDs struct {
	mu   sync.Mutex
	next uint64
}

func (g *IDs) NewID() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	var id uuid.UUID
	for i := 0; i < 8; i++ {
		id[15-i] = byte(g.next >> (8 * i))
	}

	return id
}
