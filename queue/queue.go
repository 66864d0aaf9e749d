// Package queue provides a thread-safe FIFO (First In, First Out) queue.
//
// The queue is backed by a growable ring buffer, so Enqueue and Dequeue are
// amortized O(1) with no element shifting. All operations are safe for
// concurrent use.
package queue

import "sync"

const minCapacity = 16

// Queue is a thread-safe FIFO queue backed by a ring buffer.
// The zero value is not usable; call New.
type Queue[T comparable] struct {
	buf   []T
	head  int
	count int
	mu    sync.RWMutex
}

// New creates an empty, unbounded queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds an item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.push(item)
}

// Dequeue removes and returns the front item.
// Returns ErrEmpty if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if q.count == 0 {
		return zero, ErrEmpty
	}
	return q.pop(), nil
}

// Peek returns the front item without removing it.
// The second return is false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	var zero T
	if q.count == 0 {
		return zero, false
	}
	return q.buf[q.head], true
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.count
}

// IsEmpty reports whether the queue has no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear removes all items from the queue.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = nil
	q.head = 0
	q.count = 0
}

// BulkEnqueue adds multiple items to the back of the queue in order.
func (q *Queue[T]) BulkEnqueue(items []T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, item := range items {
		q.push(item)
	}
}

// BulkDequeue removes count items from the front of the queue.
// The operation is all-or-nothing: if fewer than count items are present,
// nothing is removed and ErrInsufficient is returned. A non-positive count
// returns ErrInvalidCount.
func (q *Queue[T]) BulkDequeue(count int) ([]T, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if count > q.count {
		return nil, ErrInsufficient
	}

	result := make([]T, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, q.pop())
	}
	return result, nil
}

// Snapshot returns a copy of the queue contents, front to back.
// The copy is safe to retain and pass to Restore later.
func (q *Queue[T]) Snapshot() []T {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.items()
}

// Restore replaces the queue contents with a previous snapshot.
// The snapshot slice is copied, not aliased.
func (q *Queue[T]) Restore(snapshot []T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.buf = make([]T, max(len(snapshot), minCapacity))
	copy(q.buf, snapshot)
	q.head = 0
	q.count = len(snapshot)
}

// Reverse reverses the order of the queue in place: the back item becomes
// the front.
func (q *Queue[T]) Reverse() {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items()
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	q.buf = items
	q.head = 0
	q.count = len(items)
}

// Contains reports whether the queue holds the given item.
func (q *Queue[T]) Contains(item T) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	for i := 0; i < q.count; i++ {
		if q.buf[(q.head+i)%len(q.buf)] == item {
			return true
		}
	}
	return false
}

// Items returns the queue contents from front to back.
func (q *Queue[T]) Items() []T {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.items()
}

// push appends to the ring buffer, growing it when full. Caller holds the lock.
func (q *Queue[T]) push(item T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = item
	q.count++
}

// pop removes the front item. Caller holds the lock and has checked count > 0.
func (q *Queue[T]) pop() T {
	var zero T
	item := q.buf[q.head]
	q.buf[q.head] = zero // release reference
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return item
}

// grow doubles the ring buffer capacity and linearizes the contents.
// Caller holds the lock.
func (q *Queue[T]) grow() {
	newCap := len(q.buf) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}

	buf := make([]T, newCap)
	for i := 0; i < q.count; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}

// items copies the contents front to back. Caller holds at least a read lock.
func (q *Queue[T]) items() []T {
	items := make([]T, q.count)
	for i := 0; i < q.count; i++ {
		items[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return items
}
