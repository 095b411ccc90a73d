package registry

import (
	"sync"
)

// Registry is a generic, thread-safe, append-only collection that keeps
// insertion order and suppresses duplicates
type Registry[T comparable] interface {
	// Append adds an item at the end unless it is already present.
	// It reports whether the item was added.
	Append(item T) bool

	// Has checks if an item is present
	Has(item T) bool

	// List returns a copy of all items in insertion order
	List() []T

	// Count returns the number of items
	Count() int
}

// registry is the internal implementation of Registry
type registry[T comparable] struct {
	mu    sync.RWMutex
	items []T
	index map[T]struct{}
}

// New creates a new Registry holding the given items, in order, without duplicates
func New[T comparable](items ...T) Registry[T] {
	r := &registry[T]{
		items: make([]T, 0, len(items)),
		index: make(map[T]struct{}, len(items)),
	}
	for _, item := range items {
		r.Append(item)
	}
	return r
}

// Append adds an item unless it is already registered
func (r *registry[T]) Append(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[item]; exists {
		return false
	}

	r.items = append(r.items, item)
	r.index[item] = struct{}{}
	return true
}

// Has checks if an item is registered
func (r *registry[T]) Has(item T) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.index[item]
	return exists
}

// List returns all items in insertion order
func (r *registry[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
