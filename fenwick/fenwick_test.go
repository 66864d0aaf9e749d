package fenwick

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_AddAndPrefixSum(t *testing.T) {
	ft := New[int](5)

	require.NoError(t, ft.Add(0, 1))
	require.NoError(t, ft.Add(2, 3))
	require.NoError(t, ft.Add(4, 5))

	sum, err := ft.PrefixSum(0)
	require.NoError(t, err)
	assert.Equal(t, 0, sum)

	sum, err = ft.PrefixSum(3)
	require.NoError(t, err)
	assert.Equal(t, 4, sum)

	sum, err = ft.PrefixSum(5)
	require.NoError(t, err)
	assert.Equal(t, 9, sum)
}

func TestTree_From(t *testing.T) {
	values := []int{3, 1, 4, 1, 5, 9, 2, 6}
	ft := From(values)
	require.Equal(t, len(values), ft.Len())

	want := 0
	for i, v := range values {
		got, err := ft.Get(i)
		require.NoError(t, err)
		assert.Equal(t, v, got, "element %d", i)

		sum, err := ft.PrefixSum(i)
		require.NoError(t, err)
		assert.Equal(t, want, sum, "prefix of %d", i)
		want += v
	}
}

func TestTree_RangeSum(t *testing.T) {
	ft := From([]int{1, 2, 3, 4, 5})

	sum, err := ft.RangeSum(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 9, sum)

	sum, err = ft.RangeSum(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, sum)

	sum, err = ft.RangeSum(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, sum, "empty range")
}

func TestTree_SetGet(t *testing.T) {
	ft := From([]int{10, 20, 30})

	require.NoError(t, ft.Set(1, 5))

	v, err := ft.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	sum, err := ft.PrefixSum(3)
	require.NoError(t, err)
	assert.Equal(t, 45, sum)
}

func TestTree_OutOfRange(t *testing.T) {
	ft := New[int](3)

	assert.ErrorIs(t, ft.Add(-1, 1), ErrOutOfRange)
	assert.ErrorIs(t, ft.Add(3, 1), ErrOutOfRange)
	assert.ErrorIs(t, ft.Set(3, 1), ErrOutOfRange)

	_, err := ft.Get(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ft.PrefixSum(4)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ft.RangeSum(2, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ft.RangeSum(0, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTree_AgainstNaiveSums(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(99))

	ref := make([]int64, n)
	ft := New[int64](n)

	for op := 0; op < 2000; op++ {
		i := rng.Intn(n)
		delta := int64(rng.Intn(100) - 50)
		ref[i] += delta
		require.NoError(t, ft.Add(i, delta))
	}

	for q := 0; q < 200; q++ {
		lo := rng.Intn(n)
		hi := lo + rng.Intn(n-lo)

		var want int64
		for i := lo; i < hi; i++ {
			want += ref[i]
		}

		got, err := ft.RangeSum(lo, hi)
		require.NoError(t, err)
		assert.Equal(t, want, got, "range [%d,%d)", lo, hi)
	}
}

func BenchmarkTree_Add(b *testing.B) {
	ft := New[int64](1 << 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ft.Add(i%(1<<20), 1)
	}
}

func BenchmarkTree_PrefixSum(b *testing.B) {
	ft := New[int64](1 << 20)
	for i := 0; i < 1<<20; i++ {
		ft.Add(i, int64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ft.PrefixSum(i % (1 << 20))
	}
}
