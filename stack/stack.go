// Package stack provides a thread-safe LIFO (Last In, First Out) stack.
//
// All operations are safe for concurrent use. Push, Pop, and Peek are O(1);
// bulk operations are O(k) in the number of items moved.
package stack

import "sync"

// Stack is a thread-safe LIFO stack backed by a growable slice.
// The zero value is not usable; call New.
type Stack[T comparable] struct {
	items []T
	mu    sync.RWMutex
}

// New creates an empty, unbounded stack.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds an item to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
// Returns ErrEmpty if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}

	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero // release reference
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Peek returns the top item without removing it.
// The second return is false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// IsEmpty reports whether the stack has no items.
func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes all items from the stack.
func (s *Stack[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// BulkPush pushes multiple items onto the stack in order.
// The last item of the slice ends up on top.
func (s *Stack[T]) BulkPush(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
}

// BulkPop removes count items from the top of the stack, top first.
// The operation is all-or-nothing: if fewer than count items are present,
// nothing is removed and ErrInsufficient is returned. A non-positive count
// returns ErrInvalidCount.
func (s *Stack[T]) BulkPop(count int) ([]T, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if count > len(s.items) {
		return nil, ErrInsufficient
	}

	var zero T
	result := make([]T, 0, count)
	for i := 0; i < count; i++ {
		top := len(s.items) - 1
		result = append(result, s.items[top])
		s.items[top] = zero
		s.items = s.items[:top]
	}
	return result, nil
}

// Snapshot returns a copy of the stack contents, bottom to top.
// The copy is safe to retain and pass to Restore later.
func (s *Stack[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make([]T, len(s.items))
	copy(snap, s.items)
	return snap
}

// Restore replaces the stack contents with a previous snapshot.
// The snapshot slice is copied, not aliased.
func (s *Stack[T]) Restore(snapshot []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]T, len(snapshot))
	copy(s.items, snapshot)
}

// Reverse reverses the stack in place: the bottom item becomes the top.
func (s *Stack[T]) Reverse() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, j := 0, len(s.items)-1; i < j; i, j = i+1, j-1 {
		s.items[i], s.items[j] = s.items[j], s.items[i]
	}
}

// DuplicateTop pushes a second copy of the top item.
// Returns ErrEmpty if the stack is empty.
func (s *Stack[T]) DuplicateTop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return ErrEmpty
	}
	s.items = append(s.items, s.items[len(s.items)-1])
	return nil
}

// SwapTop exchanges the top two items.
// Returns ErrInsufficient if the stack holds fewer than two items.
func (s *Stack[T]) SwapTop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	if n < 2 {
		return ErrInsufficient
	}
	s.items[n-1], s.items[n-2] = s.items[n-2], s.items[n-1]
	return nil
}

// Contains reports whether the stack holds the given item.
func (s *Stack[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.items {
		if v == item {
			return true
		}
	}
	return false
}

// Items returns the stack contents from top to bottom.
func (s *Stack[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, len(s.items))
	for i, v := range s.items {
		items[len(s.items)-1-i] = v
	}
	return items
}
