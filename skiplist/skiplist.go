// Package skiplist provides a thread-safe probabilistic ordered map with
// O(log n) expected insert, lookup, and delete, and ordered iteration.
package skiplist

import (
	"cmp"
	"sync"
	"sync/atomic"
)

const (
	maxLevel = 16   // Maximum height of the skip list
	levelP   = 0.25 // Probability of level increase
)

// node is a skip list node with one forward pointer per level.
type node[K cmp.Ordered, V any] struct {
	key     K
	value   V
	forward []*node[K, V]
}

// SkipList is a thread-safe ordered map. Level assignment uses a xorshift64
// PRNG with a geometric distribution (p=0.25), so the expected height of the
// list stays logarithmic in the number of keys.
type SkipList[K cmp.Ordered, V any] struct {
	head  *node[K, V]
	level int
	count int64
	mu    sync.RWMutex
	rng   uint64 // PRNG state for level generation
}

// New creates an empty skip list.
func New[K cmp.Ordered, V any]() *SkipList[K, V] {
	return &SkipList[K, V]{
		head: &node[K, V]{
			forward: make([]*node[K, V], maxLevel),
		},
		rng: uint64(1), // Seed PRNG
	}
}

// randomLevel generates a random level for a new node using a geometric
// distribution driven by a xorshift64 step.
func (s *SkipList[K, V]) randomLevel() int {
	level := 0
	s.rng ^= s.rng << 13
	s.rng ^= s.rng >> 7
	s.rng ^= s.rng << 17

	for level < maxLevel-1 && (s.rng&0xFFFF) < uint64(0xFFFF/4) {
		level++
		s.rng ^= s.rng << 13
		s.rng ^= s.rng >> 7
		s.rng ^= s.rng << 17
	}
	return level
}

// Put inserts or updates the value for a key.
// Returns true if the key was newly inserted.
func (s *SkipList[K, V]) Put(key K, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	update := make([]*node[K, V], maxLevel)
	current := s.head

	// Find insertion point.
	for i := s.level; i >= 0; i-- {
		for current.forward[i] != nil && current.forward[i].key < key {
			current = current.forward[i]
		}
		update[i] = current
	}

	// Update existing entry in place.
	if next := current.forward[0]; next != nil && next.key == key {
		next.value = value
		return false
	}

	level := s.randomLevel()
	if level > s.level {
		for i := s.level + 1; i <= level; i++ {
			update[i] = s.head
		}
		s.level = level
	}

	n := &node[K, V]{
		key:     key,
		value:   value,
		forward: make([]*node[K, V], level+1),
	}
	for i := 0; i <= level; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}

	atomic.AddInt64(&s.count, 1)
	return true
}

// Get returns the value for a key.
// The second return is false if the key is not present.
func (s *SkipList[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.head
	for i := s.level; i >= 0; i-- {
		for current.forward[i] != nil && current.forward[i].key < key {
			current = current.forward[i]
		}
	}

	current = current.forward[0]
	if current != nil && current.key == key {
		return current.value, true
	}
	var zero V
	return zero, false
}

// Delete unlinks a key from every level it appears on.
// Returns ErrKeyNotFound if the key is not present.
func (s *SkipList[K, V]) Delete(key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	update := make([]*node[K, V], maxLevel)
	current := s.head

	for i := s.level; i >= 0; i-- {
		for current.forward[i] != nil && current.forward[i].key < key {
			current = current.forward[i]
		}
		update[i] = current
	}

	current = current.forward[0]
	if current == nil || current.key != key {
		return ErrKeyNotFound
	}

	for i := 0; i <= s.level; i++ {
		if update[i].forward[i] != current {
			break
		}
		update[i].forward[i] = current.forward[i]
	}

	// Shrink the list level if the top levels emptied out.
	for s.level > 0 && s.head.forward[s.level] == nil {
		s.level--
	}

	atomic.AddInt64(&s.count, -1)
	return nil
}

// Contains reports whether the key is present.
func (s *SkipList[K, V]) Contains(key K) bool {
	_, found := s.Get(key)
	return found
}

// Len returns the number of keys in the list.
func (s *SkipList[K, V]) Len() int {
	return int(atomic.LoadInt64(&s.count))
}

// Keys returns all keys in ascending order.
func (s *SkipList[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]K, 0, atomic.LoadInt64(&s.count))
	for n := s.head.forward[0]; n != nil; n = n.forward[0] {
		keys = append(keys, n.key)
	}
	return keys
}

// Iterator provides ordered iteration over the skip list.
// It holds a read lock until Close is called.
type Iterator[K cmp.Ordered, V any] struct {
	current *node[K, V]
	sl      *SkipList[K, V]
}

// NewIterator returns an iterator positioned before the first key.
// Close must be called to release the read lock.
func (s *SkipList[K, V]) NewIterator() *Iterator[K, V] {
	s.mu.RLock()
	return &Iterator[K, V]{
		current: s.head,
		sl:      s,
	}
}

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator[K, V]) Next() bool {
	if it.current == nil {
		return false
	}
	it.current = it.current.forward[0]
	return it.current != nil
}

// Key returns the key at the current position.
func (it *Iterator[K, V]) Key() K {
	return it.current.key
}

// Value returns the value at the current position.
func (it *Iterator[K, V]) Value() V {
	return it.current.value
}

// Seek positions the iterator at the first key >= target.
// Returns false if no such key exists.
func (it *Iterator[K, V]) Seek(target K) bool {
	current := it.sl.head
	for i := it.sl.level; i >= 0; i-- {
		for current.forward[i] != nil && current.forward[i].key < target {
			current = current.forward[i]
		}
	}
	it.current = current.forward[0]
	return it.current != nil
}

// Close releases the read lock.
func (it *Iterator[K, V]) Close() {
	it.sl.mu.RUnlock()
}
