// Package set provides a thread-safe hash set with the usual algebra
// (union, intersection, difference).
package set

import "sync"

// Set is a thread-safe unordered collection of unique items.
// The zero value is not usable; call New.
type Set[T comparable] struct {
	items map[T]struct{}
	mu    sync.RWMutex
}

// New creates a set containing the given items.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

// Add inserts an item. Returns true if the item was not already present.
func (s *Set[T]) Add(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item]; exists {
		return false
	}
	s.items[item] = struct{}{}
	return true
}

// Remove deletes an item. Returns true if the item was present.
func (s *Set[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item]; !exists {
		return false
	}
	delete(s.items, item)
	return true
}

// Contains reports whether the set holds the given item.
func (s *Set[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.items[item]
	return exists
}

// Len returns the number of items in the set.
func (s *Set[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// IsEmpty reports whether the set has no items.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes all items from the set.
func (s *Set[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[T]struct{})
}

// Items returns the set contents in unspecified order.
func (s *Set[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.items))
	for item := range s.items {
		items = append(items, item)
	}
	return items
}

// Union returns a new set with every item present in either set.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	result := New[T](s.Items()...)
	for _, item := range other.Items() {
		result.Add(item)
	}
	return result
}

// Intersect returns a new set with the items present in both sets.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	result := New[T]()
	for _, item := range s.Items() {
		if other.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

// Difference returns a new set with the items of s that are not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	result := New[T]()
	for _, item := range s.Items() {
		if !other.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

// Equal reports whether both sets hold exactly the same items.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, item := range s.Items() {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the set contents, usable with Restore.
func (s *Set[T]) Snapshot() []T {
	return s.Items()
}

// Restore replaces the set contents with a previous snapshot.
func (s *Set[T]) Restore(snapshot []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[T]struct{}, len(snapshot))
	for _, item := range snapshot {
		s.items[item] = struct{}{}
	}
}
