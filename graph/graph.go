// Package graph provides a thread-safe directed or undirected weighted graph
// with the standard traversals (BFS, DFS), topological sorting, cycle
// detection, and Dijkstra shortest paths.
//
// Vertices are identified by any comparable type. Traversals take a read
// lock for their full duration, so they observe a consistent snapshot even
// with concurrent mutation.
package graph

import "sync"

// Edge is a weighted connection between two vertices.
type Edge[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// Graph is a thread-safe adjacency-map graph.
// The zero value is not usable; call New or NewUndirected.
type Graph[V comparable] struct {
	adj      map[V]map[V]float64
	directed bool
	edges    int
	mu       sync.RWMutex
}

// New creates an empty directed graph.
func New[V comparable]() *Graph[V] {
	return &Graph[V]{adj: make(map[V]map[V]float64), directed: true}
}

// NewUndirected creates an empty undirected graph.
// Every edge is stored in both directions and counted once.
func NewUndirected[V comparable]() *Graph[V] {
	return &Graph[V]{adj: make(map[V]map[V]float64)}
}

// Directed reports whether the graph is directed.
func (g *Graph[V]) Directed() bool {
	return g.directed
}

// AddVertex adds a vertex. Adding an existing vertex is a no-op.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertex(v)
}

// RemoveVertex removes a vertex and every edge touching it.
// Returns ErrVertexNotFound if the vertex is not present.
func (g *Graph[V]) RemoveVertex(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adj[v]; !exists {
		return ErrVertexNotFound
	}

	// Drop outgoing edges.
	g.edges -= len(g.adj[v])
	delete(g.adj, v)

	// Drop incoming edges from the remaining vertices.
	for _, neighbors := range g.adj {
		if _, exists := neighbors[v]; exists {
			delete(neighbors, v)
			if g.directed {
				g.edges--
			}
		}
	}
	return nil
}

// AddEdge adds a weighted edge, creating missing vertices on the fly.
// Self-loops are rejected with ErrSelfLoop. Re-adding an edge updates its
// weight.
func (g *Graph[V]) AddEdge(from, to V, weight float64) error {
	if from == to {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertex(from)
	g.addVertex(to)

	if _, exists := g.adj[from][to]; !exists {
		g.edges++
	}
	g.adj[from][to] = weight
	if !g.directed {
		g.adj[to][from] = weight
	}
	return nil
}

// RemoveEdge removes the edge between two vertices.
// Returns ErrEdgeNotFound if the edge is not present.
func (g *Graph[V]) RemoveEdge(from, to V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	neighbors, exists := g.adj[from]
	if !exists {
		return ErrEdgeNotFound
	}
	if _, exists := neighbors[to]; !exists {
		return ErrEdgeNotFound
	}

	delete(neighbors, to)
	if !g.directed {
		delete(g.adj[to], from)
	}
	g.edges--
	return nil
}

// HasVertex reports whether the vertex is present.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adj[v]
	return exists
}

// HasEdge reports whether an edge exists between two vertices.
func (g *Graph[V]) HasEdge(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adj[from][to]
	return exists
}

// Weight returns the weight of the edge between two vertices.
// The second return is false if the edge is not present.
func (g *Graph[V]) Weight(from, to V) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, exists := g.adj[from][to]
	return w, exists
}

// Neighbors returns the vertices directly reachable from v, in unspecified
// order. Returns ErrVertexNotFound if v is not present.
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors, exists := g.adj[v]
	if !exists {
		return nil, ErrVertexNotFound
	}

	result := make([]V, 0, len(neighbors))
	for n := range neighbors {
		result = append(result, n)
	}
	return result, nil
}

// Degree returns the out-degree of v (total degree for undirected graphs).
// Returns ErrVertexNotFound if v is not present.
func (g *Graph[V]) Degree(v V) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors, exists := g.adj[v]
	if !exists {
		return 0, ErrVertexNotFound
	}
	return len(neighbors), nil
}

// Vertices returns all vertices in unspecified order.
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vertices := make([]V, 0, len(g.adj))
	for v := range g.adj {
		vertices = append(vertices, v)
	}
	return vertices
}

// Edges returns all edges. For undirected graphs each edge appears once,
// with an arbitrary orientation.
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	type pair struct{ from, to V }
	seen := make(map[pair]bool)
	edges := make([]Edge[V], 0, g.edges)
	for from, neighbors := range g.adj {
		for to, w := range neighbors {
			if !g.directed {
				if seen[pair{to, from}] {
					continue
				}
				seen[pair{from, to}] = true
			}
			edges = append(edges, Edge[V]{From: from, To: to, Weight: w})
		}
	}
	return edges
}

// Order returns the number of vertices.
func (g *Graph[V]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// Size returns the number of edges.
func (g *Graph[V]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}

// addVertex inserts a vertex if missing. Caller holds the write lock.
func (g *Graph[V]) addVertex(v V) {
	if _, exists := g.adj[v]; !exists {
		g.adj[v] = make(map[V]float64)
	}
}
