// Package list provides a thread-safe doubly linked list.
//
// End operations (PushFront, PushBack, PopFront, PopBack) are O(1);
// Remove and Contains scan from the front and are O(n).
package list

import "sync"

// node is a list element with links in both directions.
type node[T comparable] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a thread-safe doubly linked list.
// The zero value is not usable; call New.
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
	mu   sync.RWMutex
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// PushFront adds an item at the head of the list.
func (l *List[T]) PushFront(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := &node[T]{value: item, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack adds an item at the tail of the list.
func (l *List[T]) PushBack(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := &node[T]{value: item, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the head item.
// Returns ErrEmpty if the list is empty.
func (l *List[T]) PopFront() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	if l.head == nil {
		return zero, ErrEmpty
	}

	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.size--
	return n.value, nil
}

// PopBack removes and returns the tail item.
// Returns ErrEmpty if the list is empty.
func (l *List[T]) PopBack() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	if l.tail == nil {
		return zero, ErrEmpty
	}

	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.size--
	return n.value, nil
}

// Front returns the head item without removing it.
// The second return is false if the list is empty.
func (l *List[T]) Front() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var zero T
	if l.head == nil {
		return zero, false
	}
	return l.head.value, true
}

// Back returns the tail item without removing it.
// The second return is false if the list is empty.
func (l *List[T]) Back() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var zero T
	if l.tail == nil {
		return zero, false
	}
	return l.tail.value, true
}

// Remove unlinks the first occurrence of item, scanning from the head.
// Returns ErrNotFound if the item is not present.
func (l *List[T]) Remove(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for n := l.head; n != nil; n = n.next {
		if n.value != item {
			continue
		}

		if n.prev != nil {
			n.prev.next = n.next
		} else {
			l.head = n.next
		}
		if n.next != nil {
			n.next.prev = n.prev
		} else {
			l.tail = n.prev
		}
		l.size--
		return nil
	}
	return ErrNotFound
}

// Contains reports whether the list holds the given item.
func (l *List[T]) Contains(item T) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for n := l.head; n != nil; n = n.next {
		if n.value == item {
			return true
		}
	}
	return false
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size
}

// IsEmpty reports whether the list has no items.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Clear removes all items from the list.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Reverse reverses the list in place by swapping every node's links.
func (l *List[T]) Reverse() {
	l.mu.Lock()
	defer l.mu.Unlock()

	var prev *node[T]
	current := l.head
	l.head, l.tail = l.tail, l.head
	for current != nil {
		next := current.next
		current.next = prev
		current.prev = next
		prev = current
		current = next
	}
}

// Snapshot returns a copy of the list contents, head to tail.
func (l *List[T]) Snapshot() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snap := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		snap = append(snap, n.value)
	}
	return snap
}

// Restore replaces the list contents with a previous snapshot.
func (l *List[T]) Restore(snapshot []T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.head = nil
	l.tail = nil
	l.size = 0
	for _, item := range snapshot {
		n := &node[T]{value: item, prev: l.tail}
		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}
		l.tail = n
		l.size++
	}
}

// Items returns the list contents from head to tail.
func (l *List[T]) Items() []T {
	return l.Snapshot()
}
