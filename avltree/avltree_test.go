package avltree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_PutGetDelete(t *testing.T) {
	tr := New[string, int]()

	assert.True(t, tr.Put("b", 2))
	assert.True(t, tr.Put("a", 1))
	assert.True(t, tr.Put("c", 3))
	assert.False(t, tr.Put("b", 20), "update reports not-inserted")

	require.Equal(t, 3, tr.Len())

	v, ok := tr.Get("b")
	require.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = tr.Get("z")
	assert.False(t, ok)

	require.NoError(t, tr.Delete("b"))
	_, ok = tr.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, tr.Len())

	assert.ErrorIs(t, tr.Delete("b"), ErrKeyNotFound)
}

func TestTree_MinMax(t *testing.T) {
	tr := New[int, string]()

	_, _, ok := tr.Min()
	assert.False(t, ok)
	_, _, ok = tr.Max()
	assert.False(t, ok)

	for _, k := range []int{5, 1, 9, 3, 7} {
		tr.Put(k, "v")
	}

	k, _, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 1, k)

	k, _, ok = tr.Max()
	require.True(t, ok)
	assert.Equal(t, 9, k)
}

func TestTree_AscendOrder(t *testing.T) {
	tr := New[int, int]()
	keys := []int{8, 3, 10, 1, 6, 14, 4, 7, 13}
	for _, k := range keys {
		tr.Put(k, k*10)
	}

	var visited []int
	tr.Ascend(func(k, v int) bool {
		assert.Equal(t, k*10, v)
		visited = append(visited, k)
		return true
	})

	want := append([]int(nil), keys...)
	sort.Ints(want)
	assert.Equal(t, want, visited)
	assert.Equal(t, want, tr.Keys())

	// Early stop.
	visited = visited[:0]
	tr.Ascend(func(k, _ int) bool {
		visited = append(visited, k)
		return len(visited) < 3
	})
	assert.Equal(t, []int{1, 3, 4}, visited)
}

func TestTree_StaysBalanced(t *testing.T) {
	tr := New[int, struct{}]()

	// Sequential inserts are the degenerate case for an unbalanced BST.
	const n = 1024
	for i := 0; i < n; i++ {
		tr.Put(i, struct{}{})
	}

	require.Equal(t, n, tr.Len())
	// A height-balanced tree of 1024 keys has height at most
	// 1.44*log2(n+2) ~ 14.
	assert.LessOrEqual(t, tr.Height(), 15, "tree degenerated: height %d", tr.Height())
}

func TestTree_RandomChurn(t *testing.T) {
	tr := New[int, int]()
	rng := rand.New(rand.NewSource(42))
	ref := make(map[int]int)

	for i := 0; i < 5000; i++ {
		k := rng.Intn(500)
		switch rng.Intn(3) {
		case 0, 1:
			tr.Put(k, i)
			ref[k] = i
		case 2:
			err := tr.Delete(k)
			if _, exists := ref[k]; exists {
				require.NoError(t, err)
				delete(ref, k)
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound)
			}
		}
	}

	require.Equal(t, len(ref), tr.Len())
	for k, want := range ref {
		v, ok := tr.Get(k)
		require.True(t, ok, "missing key %d", k)
		assert.Equal(t, want, v)
	}

	// In-order walk must match the reference ordering.
	wantKeys := make([]int, 0, len(ref))
	for k := range ref {
		wantKeys = append(wantKeys, k)
	}
	sort.Ints(wantKeys)
	assert.Equal(t, wantKeys, tr.Keys())
}

func BenchmarkTree_Put(b *testing.B) {
	tr := New[int, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Put(i, i)
	}
}

func BenchmarkTree_Get(b *testing.B) {
	tr := New[int, int]()
	const n = 100000
	for i := 0; i < n; i++ {
		tr.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Get(i % n)
	}
}
