// Package ident issues record identifiers of the form PREFIX<digits>.
package ident

import (
	"strconv"
	"sync"
	"time"
)

// Generator derives ids from the wall clock in milliseconds. Tokens are
// strictly increasing within a process: when two calls land in the same
// millisecond the second one is bumped past the first.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock returns a generator reading time from now.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns prefix followed by a unique decimal token.
func (g *Generator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	token := g.now().UnixMilli()
	if token <= g.last {
		token = g.last + 1
	}
	g.last = token
	return prefix + strconv.FormatInt(token, 10)
}
