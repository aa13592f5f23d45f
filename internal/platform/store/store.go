// Package store holds the process-wide record collections. Every collection
// keeps insertion order and is scanned linearly; volumes are small enough that
// no index is kept.
package store

import (
	"sort"
	"sync"
)

type registered interface {
	collectionName() string
	size() int
	clear()
}

// Store owns a set of named collections. It is constructed once at startup
// and handed to each repository.
type Store struct {
	mu          sync.Mutex
	collections []registered
}

func New() *Store {
	return &Store{}
}

func (s *Store) register(c registered) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = append(s.collections, c)
}

// Reset empties every collection. Only test harnesses call it; it is never
// reachable over HTTP.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.collections {
		c.clear()
	}
}

// Counts returns the number of records held per collection name.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.collections))
	for _, c := range s.collections {
		out[c.collectionName()] = c.size()
	}
	return out
}

// Names returns the registered collection names in sorted order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.collections))
	for _, c := range s.collections {
		names = append(names, c.collectionName())
	}
	sort.Strings(names)
	return names
}

// Collection is an ordered, lock-guarded sequence of records. Records are
// held by value so callers never share memory with the stored copy.
type Collection[T any] struct {
	name  string
	mu    sync.RWMutex
	items []T
}

// NewCollection creates a collection and registers it with s so that
// s.Reset clears it.
func NewCollection[T any](s *Store, name string) *Collection[T] {
	c := &Collection[T]{name: name}
	s.register(c)
	return c
}

func (c *Collection[T]) collectionName() string { return c.name }

func (c *Collection[T]) size() int { return c.Len() }

func (c *Collection[T]) clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Append adds rec at the end of the collection.
func (c *Collection[T]) Append(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, rec)
}

// List returns a copy of every record in insertion order. The result is never
// nil.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every record matching pred, preserving order. The result is
// never nil.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0)
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Update applies fn to the first record matching pred while holding the write
// lock and returns the updated copy.
func (c *Collection[T]) Update(pred func(T) bool, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if pred(c.items[i]) {
			fn(&c.items[i])
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// RemoveFirst deletes the first record matching pred and reports whether a
// record was removed.
func (c *Collection[T]) RemoveFirst(pred func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if pred(c.items[i]) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
