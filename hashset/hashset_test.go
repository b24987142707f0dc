package hashset

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/gocoll"
	"github.com/npillmayer/gocoll/arraylist"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.hashset")
	defer teardown()
	//
	s := New[string]()
	added, err := s.Add("a")
	require.NoError(t, err)
	assert.True(t, added)
	added, _ = s.Add("a")
	assert.False(t, added)
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.Contains("a"))
	removed, _ := s.Remove("a")
	assert.True(t, removed)
	removed, _ = s.Remove("a")
	assert.False(t, removed)
	assert.True(t, s.IsEmpty())
}

func TestModCountOnlyForChanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.hashset")
	defer teardown()
	//
	s := Of(1, 2, 3)
	mc := s.ModCount()
	s.Add(2)
	s.Remove(7)
	assert.Equal(t, mc, s.ModCount(), "unsuccessful changes must not count")
	s.Add(4)
	assert.Equal(t, mc+1, s.ModCount())
}

func TestCollaborators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.hashset")
	defer teardown()
	//
	linked := NewWith[string](NewLinkedGodsMap[string, struct{}]())
	for _, x := range []string{"c", "a", "b", "a"} {
		linked.Add(x)
	}
	assert.Equal(t, []string{"c", "a", "b"}, linked.ToSlice(), "insertion order")
	//
	sorted := NewWith[int](NewSortedGodsMap[int, struct{}](gocoll.NaturalOrder[int]))
	for _, x := range []int{5, 1, 4, 1, 3} {
		sorted.Add(x)
	}
	assert.Equal(t, []int{1, 3, 4, 5}, sorted.ToSlice(), "comparator order")
	//
	rev := NewWith[int](NewSortedGodsMap[int, struct{}](gocoll.ReverseOrder(gocoll.NaturalOrder[int])))
	rev.AddAll(sorted)
	assert.Equal(t, []int{5, 4, 3, 1}, rev.ToSlice())
	assert.True(t, rev.Equal(sorted))
	assert.Equal(t, sorted.HashCode(), rev.HashCode())
}

type point struct {
	Label  string
	Coords []int
}

func TestDigestMapForIncomparableElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.hashset")
	defer teardown()
	//
	s := NewWith[point](NewDigestMap[point, struct{}]())
	added, _ := s.Add(point{"p", []int{1, 2}})
	assert.True(t, added)
	added, _ = s.Add(point{"p", []int{1, 2}})
	assert.False(t, added, "structurally equal element must be found")
	added, _ = s.Add(point{"p", []int{2, 1}})
	assert.True(t, added)
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains(point{"p", []int{2, 1}}))
	removed, _ := s.Remove(point{"p", []int{1, 2}})
	assert.True(t, removed)
	assert.Equal(t, 1, s.Size())
	c := s.Clone()
	assert.True(t, c.Equal(s))
	s.Clear()
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 0, s.Size())
}

func TestBulk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.hashset")
	defer teardown()
	//
	s := Of(1, 2, 3, 4, 5, 6)
	changed, err := s.RemoveAll(arraylist.Of(2, 4))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, s.Equal(Of(1, 3, 5, 6)))
	changed, _ = s.RemoveAll(arraylist.Of(1, 1, 1, 1, 1, 1, 1))
	assert.True(t, changed, "filtering strategy for large argument")
	s.RetainAll(Of(5, 6, 7))
	assert.True(t, s.Equal(Of(5, 6)))
	s.RemoveIf(func(x int) bool { return x > 5 })
	assert.Equal(t, []int{5}, s.ToSlice())
	assert.True(t, gocoll.ContainsAll[int](Of(1, 5), s))
	f := From[int](arraylist.Of(3, 3, 2))
	assert.Equal(t, 2, f.Size())
}

func TestIteratorFailFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.hashset")
	defer teardown()
	//
	s := Of(1, 2, 3)
	it := s.Iterator()
	_, err := it.Next()
	require.NoError(t, err)
	s.Add(4)
	_, err = it.Next()
	assert.True(t, errors.Is(err, gocoll.ErrConcurrentModification))
	//
	it = s.Iterator()
	for it.HasNext() {
		x, err := it.Next()
		require.NoError(t, err)
		if x%2 == 0 {
			require.NoError(t, it.Remove())
			assert.ErrorIs(t, it.Remove(), gocoll.ErrIllegalState)
		}
	}
	assert.True(t, s.Equal(Of(1, 3)))
}

func TestSpliterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.hashset")
	defer teardown()
	//
	const n = 1000
	s := New[int]()
	for i := 0; i < n; i++ {
		s.Add(i)
	}
	sp := s.Spliterator()
	assert.True(t, sp.Characteristics().Has(gocoll.Distinct|gocoll.Sized))
	var count, sum atomic.Int64
	err := gocoll.Parallel(context.Background(), sp, 4, func(x int) {
		count.Add(1)
		sum.Add(int64(x))
	})
	require.NoError(t, err)
	assert.Equal(t, int64(n), count.Load())
	assert.Equal(t, int64(n*(n-1)/2), sum.Load())
	//
	sp = s.Spliterator()
	sp.TryAdvance(func(int) {})
	s.Remove(0)
	_, err = sp.TryAdvance(func(int) {})
	assert.ErrorIs(t, err, gocoll.ErrConcurrentModification)
}
