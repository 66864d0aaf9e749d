// Package fenwick provides a thread-safe binary indexed tree (Fenwick tree)
// over a fixed-length sequence of numbers, with O(log n) point updates and
// prefix-sum queries.
package fenwick

import "sync"

// Number is any built-in numeric type a Fenwick tree can accumulate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Tree is a thread-safe Fenwick tree of fixed length.
// Indexes are zero-based in the public API; the internal array is one-based,
// the classic Fenwick layout where index i covers i & (-i) trailing elements.
type Tree[T Number] struct {
	tree []T
	n    int
	mu   sync.RWMutex
}

// New creates a Fenwick tree over n zero-valued elements.
func New[T Number](n int) *Tree[T] {
	if n < 0 {
		n = 0
	}
	return &Tree[T]{
		tree: make([]T, n+1),
		n:    n,
	}
}

// From creates a Fenwick tree initialized with the given values in O(n).
func From[T Number](values []T) *Tree[T] {
	t := New[T](len(values))
	for i, v := range values {
		// Propagate each value to its immediate parent only; by the time
		// index i is reached its partial sum is already complete.
		j := i + 1
		t.tree[j] += v
		if parent := j + (j & -j); parent <= t.n {
			t.tree[parent] += t.tree[j]
		}
	}
	return t
}

// Len returns the number of elements the tree covers.
func (t *Tree[T]) Len() int {
	return t.n
}

// Add adds delta to the element at index i.
// Returns ErrOutOfRange if i is outside [0, Len).
func (t *Tree[T]) Add(i int, delta T) error {
	if i < 0 || i >= t.n {
		return ErrOutOfRange
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for j := i + 1; j <= t.n; j += j & -j {
		t.tree[j] += delta
	}
	return nil
}

// PrefixSum returns the sum of the first i elements (indexes [0, i)).
// Returns ErrOutOfRange if i is outside [0, Len].
func (t *Tree[T]) PrefixSum(i int) (T, error) {
	var zero T
	if i < 0 || i > t.n {
		return zero, ErrOutOfRange
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.prefix(i), nil
}

// RangeSum returns the sum of elements in the half-open range [lo, hi).
// Returns ErrOutOfRange if the range is inverted or outside the tree.
func (t *Tree[T]) RangeSum(lo, hi int) (T, error) {
	var zero T
	if lo < 0 || hi > t.n || lo > hi {
		return zero, ErrOutOfRange
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.prefix(hi) - t.prefix(lo), nil
}

// Get returns the element at index i.
// Returns ErrOutOfRange if i is outside [0, Len).
func (t *Tree[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= t.n {
		return zero, ErrOutOfRange
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.prefix(i+1) - t.prefix(i), nil
}

// Set replaces the element at index i with v.
// Returns ErrOutOfRange if i is outside [0, Len).
func (t *Tree[T]) Set(i int, v T) error {
	if i < 0 || i >= t.n {
		return ErrOutOfRange
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	delta := v - (t.prefix(i+1) - t.prefix(i))
	for j := i + 1; j <= t.n; j += j & -j {
		t.tree[j] += delta
	}
	return nil
}

// prefix computes the sum of indexes [0, i). Caller holds at least a read lock.
func (t *Tree[T]) prefix(i int) T {
	var sum T
	for j := i; j > 0; j -= j & -j {
		sum += t.tree[j]
	}
	return sum
}
