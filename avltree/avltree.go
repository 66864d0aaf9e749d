// Package avltree provides a thread-safe, self-balancing ordered map.
//
// The tree is an AVL tree: after every mutation the balance factor of each
// node stays within {-1, 0, 1}, which bounds Put, Get, and Delete at O(log n).
package avltree

import (
	"cmp"
	"sync"
)

// node is a tree node carrying its subtree height for rebalancing.
type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	height int
	left   *node[K, V]
	right  *node[K, V]
}

// Tree is a thread-safe ordered map keyed by any ordered type.
// The zero value is not usable; call New.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
	mu   sync.RWMutex
}

// New creates an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Put inserts or updates the value for a key.
// Returns true if the key was newly inserted.
func (t *Tree[K, V]) Put(key K, value V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	var inserted bool
	t.root, inserted = t.put(t.root, key, value)
	if inserted {
		t.size++
	}
	return inserted
}

// Get returns the value for a key.
// The second return is false if the key is not present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes a key. Returns ErrKeyNotFound if the key is not present.
func (t *Tree[K, V]) Delete(key K) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var deleted bool
	t.root, deleted = t.delete(t.root, key)
	if !deleted {
		return ErrKeyNotFound
	}
	t.size--
	return nil
}

// Min returns the smallest key and its value.
// The third return is false if the tree is empty.
func (t *Tree[K, V]) Min() (K, V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var zeroK K
	var zeroV V
	if t.root == nil {
		return zeroK, zeroV, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Max returns the largest key and its value.
// The third return is false if the tree is empty.
func (t *Tree[K, V]) Max() (K, V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var zeroK K
	var zeroV V
	if t.root == nil {
		return zeroK, zeroV, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Height returns the height of the tree (0 for an empty tree).
func (t *Tree[K, V]) Height() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return height(t.root)
}

// Ascend visits every key/value pair in ascending key order.
// The visit stops early if fn returns false. The tree is read-locked for
// the duration of the walk; fn must not mutate the tree.
func (t *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ascend(t.root, fn)
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]K, 0, t.size)
	ascend(t.root, func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func ascend[K cmp.Ordered, V any](n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return ascend(n.right, fn)
}

func (t *Tree[K, V]) put(n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{key: key, value: value, height: 1}, true
	}

	var inserted bool
	switch {
	case key < n.key:
		n.left, inserted = t.put(n.left, key, value)
	case key > n.key:
		n.right, inserted = t.put(n.right, key, value)
	default:
		n.value = value
		return n, false
	}
	return rebalance(n), inserted
}

func (t *Tree[K, V]) delete(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}

	var deleted bool
	switch {
	case key < n.key:
		n.left, deleted = t.delete(n.left, key)
	case key > n.key:
		n.right, deleted = t.delete(n.right, key)
	default:
		deleted = true
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// Two children: replace with the in-order successor.
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key = succ.key
		n.value = succ.value
		n.right, _ = t.delete(n.right, succ.key)
	}

	return rebalance(n), deleted
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor[K cmp.Ordered, V any](n *node[K, V]) int {
	return height(n.left) - height(n.right)
}

func update[K cmp.Ordered, V any](n *node[K, V]) {
	lh, rh := height(n.left), height(n.right)
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
}

func rotateRight[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	update(n)
	update(l)
	return l
}

func rotateLeft[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	update(n)
	update(r)
	return r
}

func rebalance[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	update(n)

	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left) // left-right case
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right) // right-left case
		}
		return rotateLeft(n)
	}
	return n
}
