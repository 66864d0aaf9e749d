// Package deque provides a thread-safe double-ended queue.
//
// The deque is backed by a growable ring buffer: pushes and pops at either
// end are amortized O(1), and At provides O(1) indexed access from the front.
package deque

import "sync"

const minCapacity = 16

// Deque is a thread-safe double-ended queue backed by a ring buffer.
// The zero value is not usable; call New.
type Deque[T comparable] struct {
	buf   []T
	head  int
	count int
	mu    sync.RWMutex
}

// New creates an empty, unbounded deque.
func New[T comparable]() *Deque[T] {
	return &Deque[T]{}
}

// PushBack adds an item to the back of the deque.
func (d *Deque[T]) PushBack(item T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.count == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.count)%len(d.buf)] = item
	d.count++
}

// PushFront adds an item to the front of the deque.
func (d *Deque[T]) PushFront(item T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.count == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = item
	d.count++
}

// PopFront removes and returns the front item.
// Returns ErrEmpty if the deque is empty.
func (d *Deque[T]) PopFront() (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if d.count == 0 {
		return zero, ErrEmpty
	}

	item := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.count--
	return item, nil
}

// PopBack removes and returns the back item.
// Returns ErrEmpty if the deque is empty.
func (d *Deque[T]) PopBack() (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if d.count == 0 {
		return zero, ErrEmpty
	}

	tail := (d.head + d.count - 1) % len(d.buf)
	item := d.buf[tail]
	d.buf[tail] = zero
	d.count--
	return item, nil
}

// Front returns the front item without removing it.
// The second return is false if the deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var zero T
	if d.count == 0 {
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the back item without removing it.
// The second return is false if the deque is empty.
func (d *Deque[T]) Back() (T, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var zero T
	if d.count == 0 {
		return zero, false
	}
	return d.buf[(d.head+d.count-1)%len(d.buf)], true
}

// At returns the item at position i counted from the front.
// Returns ErrOutOfRange if i is negative or beyond the last item.
func (d *Deque[T]) At(i int) (T, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var zero T
	if i < 0 || i >= d.count {
		return zero, ErrOutOfRange
	}
	return d.buf[(d.head+i)%len(d.buf)], nil
}

// Len returns the number of items in the deque.
func (d *Deque[T]) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.count
}

// IsEmpty reports whether the deque has no items.
func (d *Deque[T]) IsEmpty() bool {
	return d.Len() == 0
}

// Clear removes all items from the deque.
func (d *Deque[T]) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf = nil
	d.head = 0
	d.count = 0
}

// Contains reports whether the deque holds the given item.
func (d *Deque[T]) Contains(item T) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := 0; i < d.count; i++ {
		if d.buf[(d.head+i)%len(d.buf)] == item {
			return true
		}
	}
	return false
}

// Items returns the deque contents from front to back.
func (d *Deque[T]) Items() []T {
	d.mu.RLock()
	defer d.mu.RUnlock()

	items := make([]T, d.count)
	for i := 0; i < d.count; i++ {
		items[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	return items
}

// grow doubles the ring buffer capacity and linearizes the contents.
// Caller holds the lock.
func (d *Deque[T]) grow() {
	newCap := len(d.buf) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}

	buf := make([]T, newCap)
	for i := 0; i < d.count; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}
