// Package segtree provides a thread-safe segment tree over a fixed-length
// sequence, parameterized by an associative combiner. Point updates and
// range queries are O(log n).
package segtree

import "sync"

// Combiner merges two segment aggregates. It must be associative; the
// identity element is returned for empty ranges.
type Combiner[T any] func(a, b T) T

// Tree is a thread-safe segment tree stored as a flat array: the node at
// index i has children at 2i and 2i+1, leaves start at the internal offset.
type Tree[T any] struct {
	nodes    []T
	n        int
	leafBase int
	combine  Combiner[T]
	identity T
	mu       sync.RWMutex
}

// New builds a segment tree over the given values in O(n).
// combine must be associative and identity its neutral element
// (e.g. 0 for sums, -inf for maxima).
func New[T any](values []T, identity T, combine Combiner[T]) *Tree[T] {
	n := len(values)
	leafBase := 1
	for leafBase < n {
		leafBase *= 2
	}

	nodes := make([]T, 2*leafBase)
	for i := range nodes {
		nodes[i] = identity
	}
	copy(nodes[leafBase:], values)

	for i := leafBase - 1; i >= 1; i-- {
		nodes[i] = combine(nodes[2*i], nodes[2*i+1])
	}

	return &Tree[T]{
		nodes:    nodes,
		n:        n,
		leafBase: leafBase,
		combine:  combine,
		identity: identity,
	}
}

// Len returns the number of elements the tree covers.
func (t *Tree[T]) Len() int {
	return t.n
}

// Update replaces the element at index i and recomputes the aggregates on
// the path to the root. Returns ErrOutOfRange if i is outside [0, Len).
func (t *Tree[T]) Update(i int, value T) error {
	if i < 0 || i >= t.n {
		return ErrOutOfRange
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	pos := t.leafBase + i
	t.nodes[pos] = value
	for pos /= 2; pos >= 1; pos /= 2 {
		t.nodes[pos] = t.combine(t.nodes[2*pos], t.nodes[2*pos+1])
	}
	return nil
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
	return t.nodes[t.leafBase+i], nil
}

// Query returns the combined aggregate over the half-open range [lo, hi).
// An empty range yields the identity element. Returns ErrOutOfRange if the
// range is inverted or outside the tree.
func (t *Tree[T]) Query(lo, hi int) (T, error) {
	var zero T
	if lo < 0 || hi > t.n || lo > hi {
		return zero, ErrOutOfRange
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	// Bottom-up traversal: fold in left-edge nodes as the range closes in
	// from both sides. Keeping separate accumulators preserves operand
	// order for non-commutative combiners.
	left := t.identity
	right := t.identity
	for l, r := t.leafBase+lo, t.leafBase+hi; l < r; l, r = l/2, r/2 {
		if l%2 == 1 {
			left = t.combine(left, t.nodes[l])
			l++
		}
		if r%2 == 1 {
			r--
			right = t.combine(t.nodes[r], right)
		}
	}
	return t.combine(left, right), nil
}
