package graph

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestGraph_VerticesAndEdges(t *testing.T) {
	g := New[string]()

	g.AddVertex("a")
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 2))

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.Size())
	assert.True(t, g.HasVertex("b"))
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"), "directed edges are one-way")

	w, ok := g.Weight("b", "c")
	require.True(t, ok)
	assert.Equal(t, 2.0, w)

	// Re-adding an edge updates the weight without double counting.
	require.NoError(t, g.AddEdge("a", "b", 9))
	assert.Equal(t, 2, g.Size())
	w, _ = g.Weight("a", "b")
	assert.Equal(t, 9.0, w)

	assert.ErrorIs(t, g.AddEdge("a", "a", 1), ErrSelfLoop)
}

func TestGraph_RemoveVertexAndEdge(t *testing.T) {
	g := New[int]()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 1, 1))

	require.NoError(t, g.RemoveEdge(2, 3))
	assert.False(t, g.HasEdge(2, 3))
	assert.Equal(t, 2, g.Size())
	assert.ErrorIs(t, g.RemoveEdge(2, 3), ErrEdgeNotFound)

	// Removing a vertex drops incoming edges too.
	require.NoError(t, g.RemoveVertex(1))
	assert.False(t, g.HasVertex(1))
	assert.False(t, g.HasEdge(3, 1))
	assert.Equal(t, 0, g.Size())

	assert.ErrorIs(t, g.RemoveVertex(1), ErrVertexNotFound)
}

func TestGraph_Undirected(t *testing.T) {
	g := NewUndirected[string]()
	require.NoError(t, g.AddEdge("a", "b", 1))

	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
	assert.Equal(t, 1, g.Size(), "undirected edge counts once")
	assert.Len(t, g.Edges(), 1)

	deg, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	require.NoError(t, g.RemoveEdge("b", "a"))
	assert.False(t, g.HasEdge("a", "b"))
	assert.Equal(t, 0, g.Size())
}

func TestGraph_Neighbors(t *testing.T) {
	g := New[string]()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "c", 1))

	neighbors, err := g.Neighbors("a")
	require.NoError(t, err)
	sort.Strings(neighbors)
	assert.Equal(t, []string{"b", "c"}, neighbors)

	_, err = g.Neighbors("zzz")
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestGraph_BFSVisitsEverythingReachable(t *testing.T) {
	g := New[int]()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 4, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))
	g.AddVertex(99) // unreachable

	var visited []int
	require.NoError(t, g.BFS(1, func(v int) bool {
		visited = append(visited, v)
		return true
	}))

	sort.Ints(visited)
	assert.Equal(t, []int{1, 2, 3, 4}, visited)
	assert.Equal(t, 1, visited[0], "start vertex first")

	assert.ErrorIs(t, g.BFS(1000, func(int) bool { return true }), ErrVertexNotFound)
}

func TestGraph_DFSEarlyStop(t *testing.T) {
	g := New[int]()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	count := 0
	require.NoError(t, g.DFS(1, func(v int) bool {
		count++
		return count < 2
	}))
	assert.Equal(t, 2, count)
}

func TestGraph_TopologicalSort(t *testing.T) {
	g := New[string]()
	require.NoError(t, g.AddEdge("compile", "link", 1))
	require.NoError(t, g.AddEdge("link", "package", 1))
	require.NoError(t, g.AddEdge("compile", "test", 1))
	require.NoError(t, g.AddEdge("test", "package", 1))

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[string]int)
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %s->%s out of order", e.From, e.To)
	}
}

func TestGraph_TopologicalSortErrors(t *testing.T) {
	cyclic := New[int]()
	require.NoError(t, cyclic.AddEdge(1, 2, 1))
	require.NoError(t, cyclic.AddEdge(2, 3, 1))
	require.NoError(t, cyclic.AddEdge(3, 1, 1))

	_, err := cyclic.TopologicalSort()
	assert.ErrorIs(t, err, ErrCycle)

	undirected := NewUndirected[int]()
	_, err = undirected.TopologicalSort()
	assert.ErrorIs(t, err, ErrUndirected)
}

func TestGraph_HasCycle(t *testing.T) {
	dag := New[int]()
	require.NoError(t, dag.AddEdge(1, 2, 1))
	require.NoError(t, dag.AddEdge(1, 3, 1))
	require.NoError(t, dag.AddEdge(2, 3, 1))
	assert.False(t, dag.HasCycle())

	require.NoError(t, dag.AddEdge(3, 1, 1))
	assert.True(t, dag.HasCycle())

	// An undirected edge is not a cycle; a triangle is.
	ug := NewUndirected[int]()
	require.NoError(t, ug.AddEdge(1, 2, 1))
	assert.False(t, ug.HasCycle())
	require.NoError(t, ug.AddEdge(2, 3, 1))
	assert.False(t, ug.HasCycle())
	require.NoError(t, ug.AddEdge(3, 1, 1))
	assert.True(t, ug.HasCycle())
}

func TestGraph_ShortestPath(t *testing.T) {
	g := New[string]()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 2))
	require.NoError(t, g.AddEdge("a", "c", 10))
	require.NoError(t, g.AddEdge("c", "d", 1))

	path, weight, err := g.ShortestPath("a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)
	assert.Equal(t, 4.0, weight)

	// Trivial path.
	path, weight, err = g.ShortestPath("a", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, path)
	assert.Equal(t, 0.0, weight)
}

func TestGraph_ShortestPathErrors(t *testing.T) {
	g := New[string]()
	require.NoError(t, g.AddEdge("a", "b", 1))
	g.AddVertex("island")

	_, _, err := g.ShortestPath("a", "island")
	assert.ErrorIs(t, err, ErrNoPath)

	_, _, err = g.ShortestPath("a", "missing")
	assert.ErrorIs(t, err, ErrVertexNotFound)

	neg := New[string]()
	require.NoError(t, neg.AddEdge("a", "b", -1))
	_, _, err = neg.ShortestPath("a", "b")
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestGraph_ConcurrentMutation(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := New[int]()
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				g.AddEdge(base*1000+i, base*1000+i+1, 1)
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				g.Order()
				g.Size()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4*250, g.Size())
}

func BenchmarkGraph_AddEdge(b *testing.B) {
	g := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(i, i+1, 1)
	}
}

func BenchmarkGraph_ShortestPath(b *testing.B) {
	g := New[int]()
	for i := 0; i < 1000; i++ {
		g.AddEdge(i, i+1, 1)
		if i%10 == 0 {
			g.AddEdge(i, i+10, 5)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ShortestPath(0, 1000)
	}
}
