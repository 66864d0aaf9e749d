package graph

import "container/heap"

// BFS visits vertices reachable from start in breadth-first order.
// The visit stops early if fn returns false.
// Returns ErrVertexNotFound if start is not present.
func (g *Graph[V]) BFS(start V, fn func(v V) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.adj[start]; !exists {
		return ErrVertexNotFound
	}

	visited := map[V]bool{start: true}
	frontier := []V{start}

	for len(frontier) > 0 {
		v := frontier[0]
		frontier = frontier[1:]

		if !fn(v) {
			return nil
		}
		for n := range g.adj[v] {
			if !visited[n] {
				visited[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	return nil
}

// DFS visits vertices reachable from start in depth-first order.
// The visit stops early if fn returns false.
// Returns ErrVertexNotFound if start is not present.
func (g *Graph[V]) DFS(start V, fn func(v V) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.adj[start]; !exists {
		return ErrVertexNotFound
	}

	visited := make(map[V]bool)
	stack := []V{start}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[v] {
			continue
		}
		visited[v] = true

		if !fn(v) {
			return nil
		}
		for n := range g.adj[v] {
			if !visited[n] {
				stack = append(stack, n)
			}
		}
	}
	return nil
}

// TopologicalSort returns the vertices of a directed acyclic graph in an
// order where every edge points forward (Kahn's algorithm).
// Returns ErrUndirected on undirected graphs and ErrCycle if the graph has
// a cycle.
func (g *Graph[V]) TopologicalSort() ([]V, error) {
	if !g.directed {
		return nil, ErrUndirected
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	indegree := make(map[V]int, len(g.adj))
	for v := range g.adj {
		indegree[v] = 0
	}
	for _, neighbors := range g.adj {
		for n := range neighbors {
			indegree[n]++
		}
	}

	ready := make([]V, 0, len(g.adj))
	for v, d := range indegree {
		if d == 0 {
			ready = append(ready, v)
		}
	}

	order := make([]V, 0, len(g.adj))
	for len(ready) > 0 {
		v := ready[0]
		ready = ready[1:]
		order = append(order, v)

		for n := range g.adj[v] {
			indegree[n]--
			if indegree[n] == 0 {
				ready = append(ready, n)
			}
		}
	}

	if len(order) != len(g.adj) {
		return nil, ErrCycle
	}
	return order, nil
}

// HasCycle reports whether the graph contains a cycle.
// Directed graphs use DFS coloring; undirected graphs look for any edge
// back to a visited vertex other than the parent.
func (g *Graph[V]) HasCycle() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.directed {
		return g.hasDirectedCycle()
	}
	return g.hasUndirectedCycle()
}

// hasDirectedCycle runs a white/gray/black DFS: an edge into a gray vertex
// closes a cycle. Caller holds at least a read lock.
func (g *Graph[V]) hasDirectedCycle() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[V]int, len(g.adj))

	var dfs func(v V) bool
	dfs = func(v V) bool {
		color[v] = gray
		for n := range g.adj[v] {
			switch color[n] {
			case gray:
				return true
			case white:
				if dfs(n) {
					return true
				}
			}
		}
		color[v] = black
		return false
	}

	for v := range g.adj {
		if color[v] == white && dfs(v) {
			return true
		}
	}
	return false
}

// hasUndirectedCycle runs DFS tracking the parent of each visited vertex.
// Caller holds at least a read lock.
func (g *Graph[V]) hasUndirectedCycle() bool {
	visited := make(map[V]bool, len(g.adj))

	var dfs func(v, parent V, hasParent bool) bool
	dfs = func(v, parent V, hasParent bool) bool {
		visited[v] = true
		for n := range g.adj[v] {
			if !visited[n] {
				if dfs(n, v, true) {
					return true
				}
			} else if !hasParent || n != parent {
				return true
			}
		}
		return false
	}

	for v := range g.adj {
		if !visited[v] {
			var none V
			if dfs(v, none, false) {
				return true
			}
		}
	}
	return false
}

// pqItem is a vertex with its tentative distance in the Dijkstra frontier.
type pqItem[V comparable] struct {
	vertex V
	dist   float64
}

type distanceHeap[V comparable] []pqItem[V]

func (h distanceHeap[V]) Len() int            { return len(h) }
func (h distanceHeap[V]) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distanceHeap[V]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distanceHeap[V]) Push(x any)         { *h = append(*h, x.(pqItem[V])) }
func (h *distanceHeap[V]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// ShortestPath returns the minimum-weight path from start to end and its
// total weight, using Dijkstra's algorithm. All edge weights must be
// non-negative (ErrNegativeWeight otherwise). Returns ErrVertexNotFound if
// either endpoint is missing and ErrNoPath if end is unreachable.
func (g *Graph[V]) ShortestPath(start, end V) ([]V, float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.adj[start]; !exists {
		return nil, 0, ErrVertexNotFound
	}
	if _, exists := g.adj[end]; !exists {
		return nil, 0, ErrVertexNotFound
	}

	dist := map[V]float64{start: 0}
	prev := make(map[V]V)
	done := make(map[V]bool)

	frontier := &distanceHeap[V]{{vertex: start, dist: 0}}
	heap.Init(frontier)

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(pqItem[V])
		if done[item.vertex] {
			continue
		}
		done[item.vertex] = true

		if item.vertex == end {
			break
		}

		for n, w := range g.adj[item.vertex] {
			if w < 0 {
				return nil, 0, ErrNegativeWeight
			}
			alt := item.dist + w
			if d, seen := dist[n]; !seen || alt < d {
				dist[n] = alt
				prev[n] = item.vertex
				heap.Push(frontier, pqItem[V]{vertex: n, dist: alt})
			}
		}
	}

	if !done[end] {
		return nil, 0, ErrNoPath
	}

	// Rebuild the path by walking the predecessor chain backwards.
	path := []V{end}
	for v := end; v != start; v = prev[v] {
		path = append(path, prev[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[end], nil
}
