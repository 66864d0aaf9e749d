// Package hashring provides a thread-safe consistent hashing ring.
//
// Keys and nodes are hashed onto the same 64-bit ring; a key is owned by the
// first node clockwise from its hash. Each node is placed at many virtual
// points so that adding or removing one node only remaps a small, even share
// of the key space.
package hashring

import (
	"fmt"
	"hash/fnv"
	"sort"
	"sync"
)

// DefaultReplicas is the number of virtual points per node.
const DefaultReplicas = 128

// Ring is a thread-safe consistent hashing ring.
// The zero value is not usable; call New.
type Ring struct {
	replicas int
	points   []uint64          // sorted virtual point hashes
	owners   map[uint64]string // virtual point hash -> node
	nodes    map[string]bool
	mu       sync.RWMutex
}

// New creates an empty ring with DefaultReplicas virtual points per node.
func New() *Ring {
	return NewWithReplicas(DefaultReplicas)
}

// NewWithReplicas creates an empty ring with the given number of virtual
// points per node. Values below 1 are clamped to 1.
func NewWithReplicas(replicas int) *Ring {
	if replicas < 1 {
		replicas = 1
	}
	return &Ring{
		replicas: replicas,
		owners:   make(map[uint64]string),
		nodes:    make(map[string]bool),
	}
}

// AddNode places a node on the ring. Returns ErrNodeExists if the node is
// already present.
func (r *Ring) AddNode(node string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nodes[node] {
		return ErrNodeExists
	}
	r.nodes[node] = true

	for i := 0; i < r.replicas; i++ {
		h := hashKey(virtualName(node, i))
		// A virtual point collision keeps the earlier owner; with a 64-bit
		// ring this is effectively unreachable.
		if _, taken := r.owners[h]; taken {
			continue
		}
		r.owners[h] = node
		r.points = append(r.points, h)
	}
	sort.Slice(r.points, func(i, j int) bool { return r.points[i] < r.points[j] })
	return nil
}

// RemoveNode removes a node and all its virtual points.
// Returns ErrNodeNotFound if the node is not present.
func (r *Ring) RemoveNode(node string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.nodes[node] {
		return ErrNodeNotFound
	}
	delete(r.nodes, node)

	kept := r.points[:0]
	for _, h := range r.points {
		if r.owners[h] == node {
			delete(r.owners, h)
			continue
		}
		kept = append(kept, h)
	}
	r.points = kept
	return nil
}

// Locate returns the node that owns the given key.
// Returns ErrEmptyRing if no nodes are present.
func (r *Ring) Locate(key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.points) == 0 {
		return "", ErrEmptyRing
	}
	return r.owners[r.pointAfter(hashKey(key))], nil
}

// LocateN returns the n distinct nodes that follow the key clockwise,
// in ring order; the first is the key's owner. Fewer nodes are returned if
// the ring holds fewer than n. Returns ErrEmptyRing if no nodes are present.
func (r *Ring) LocateN(key string, n int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.points) == 0 {
		return nil, ErrEmptyRing
	}
	if n > len(r.nodes) {
		n = len(r.nodes)
	}
	if n <= 0 {
		return nil, nil
	}

	result := make([]string, 0, n)
	seen := make(map[string]bool, n)

	start := r.indexAfter(hashKey(key))
	for i := 0; len(result) < n && i < len(r.points); i++ {
		node := r.owners[r.points[(start+i)%len(r.points)]]
		if !seen[node] {
			seen[node] = true
			result = append(result, node)
		}
	}
	return result, nil
}

// Nodes returns all nodes on the ring in unspecified order.
func (r *Ring) Nodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nodes := make([]string, 0, len(r.nodes))
	for node := range r.nodes {
		nodes = append(nodes, node)
	}
	return nodes
}

// Len returns the number of nodes on the ring.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// pointAfter returns the first virtual point clockwise from h.
// Caller holds at least a read lock and has checked the ring is not empty.
func (r *Ring) pointAfter(h uint64) uint64 {
	return r.points[r.indexAfter(h)]
}

// indexAfter returns the index of the first virtual point >= h, wrapping
// around past the largest point.
func (r *Ring) indexAfter(h uint64) int {
	i := sort.Search(len(r.points), func(i int) bool { return r.points[i] >= h })
	if i == len(r.points) {
		return 0
	}
	return i
}

func virtualName(node string, replica int) string {
	return fmt.Sprintf("%s#%d", node, replica)
}

func hashKey(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}
