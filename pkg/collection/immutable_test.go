package collection_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typedcoll/pkg/collection"
	"github.com/aretw0/typedcoll/pkg/types"
)

func mustImmutable(t *testing.T, declared any, items ...any) *collection.Immutable {
	t.Helper()
	c, err := collection.NewImmutable(declared, items)
	require.NoError(t, err)
	return c
}

func TestImmutable_AddLeavesOriginal(t *testing.T) {
	orig := mustImmutable(t, "int", 1, 2)

	next, err := orig.Add(3)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, orig.ToSlice())
	assert.Equal(t, []any{1, 2, 3}, next.ToSlice())

	bad, err := orig.Add(3.0)
	assert.Nil(t, bad)
	assert.ErrorIs(t, err, types.ErrTypeMismatch)
}

func TestImmutable_DerivationsLeaveOriginal(t *testing.T) {
	orig := mustImmutable(t, "int", 3, 1, 2, 1)
	snapshot := orig.ToSlice()

	steps := map[string]func() (collection.Collection, error){
		"InsertAt": func() (collection.Collection, error) { return orig.InsertAt(0, 9) },
		"RemoveAt": func() (collection.Collection, error) { return orig.RemoveAt(0) },
		"Map":      func() (collection.Collection, error) { return orig.Map(func(v any) any { return v.(int) * 2 }) },
		"Merge":    func() (collection.Collection, error) { return orig.Merge(mustImmutable(t, "int", 7)) },
		"DropFirst": func() (collection.Collection, error) {
			return orig.DropFirst(), nil
		},
		"DropLast":  func() (collection.Collection, error) { return orig.DropLast(), nil },
		"Clear":     func() (collection.Collection, error) { return orig.Clear(), nil },
		"Filter":    func() (collection.Collection, error) { return orig.Filter(func(any) bool { return false }), nil },
		"Reverse":   func() (collection.Collection, error) { return orig.Reverse(), nil },
		"Sort":      func() (collection.Collection, error) { return orig.Sort(byInt), nil },
		"Shuffle":   func() (collection.Collection, error) { return orig.Shuffle(), nil },
		"Unique":    func() (collection.Collection, error) { return orig.Unique(), nil },
		"Slice":     func() (collection.Collection, error) { return orig.Slice(1, 1), nil },
		"SliceFrom": func() (collection.Collection, error) { return orig.SliceFrom(2), nil },
	}

	for name, step := range steps {
		t.Run(name, func(t *testing.T) {
			next, err := step()
			require.NoError(t, err)
			require.NotNil(t, next)
			assert.Equal(t, snapshot, orig.ToSlice())
			assert.Equal(t, types.Integer(), orig.Type())
		})
	}
}

func TestImmutable_Results(t *testing.T) {
	c := mustImmutable(t, "int", 3, 1, 2, 1)

	sorted := c.Sort(byInt)
	assert.Equal(t, []any{1, 1, 2, 3}, sorted.ToSlice())

	assert.Equal(t, []any{1, 2, 1, 3}, c.Reverse().ToSlice())
	assert.Equal(t, []any{3, 1, 2}, c.Unique().ToSlice())

	inserted, err := c.InsertAt(1, 9)
	require.NoError(t, err)
	assert.Equal(t, []any{3, 9, 1, 2, 1}, inserted.ToSlice())

	removed, err := inserted.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, c.ToSlice(), removed.ToSlice())

	_, err = c.RemoveAt(4)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}

func TestImmutable_SliceLengthBeyondEnd(t *testing.T) {
	c := mustImmutable(t, "string", "a", "b", "c", "d")

	assert.Equal(t, []any{"b", "c", "d"}, c.Slice(1, math.MaxInt).ToSlice())
	assert.Equal(t, []any{"c", "d"}, c.Slice(-2, math.MaxInt).ToSlice())
	assert.Equal(t, []any{"b", "c"}, c.Slice(1, 2).ToSlice())
	assert.Empty(t, c.Slice(4, math.MaxInt).ToSlice())
}

func TestImmutable_Map(t *testing.T) {
	c := mustImmutable(t, "int", 1, 2, 3)
	mapped, err := c.Map(func(item any) any { return fmt.Sprintf("item%d", item) })
	require.NoError(t, err)

	assert.Equal(t, types.String(), mapped.Type())
	assert.Equal(t, []any{"item1", "item2", "item3"}, mapped.ToSlice())
	assert.Equal(t, types.Integer(), c.Type())
}

func TestImmutable_MergeRejected(t *testing.T) {
	c := mustImmutable(t, "string", "a")
	merged, err := c.Merge(mustImmutable(t, "int", 1))
	assert.Nil(t, merged)
	assert.ErrorIs(t, err, types.ErrTypeMismatch)

	merged, err = c.Merge(mustMutable(t, "string", "b"))
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, merged.ToSlice())
}

func TestImmutable_EmptyDrops(t *testing.T) {
	empty := mustImmutable(t, "int")
	first := empty.DropFirst()
	last := empty.DropLast()
	assert.True(t, first.IsEmpty())
	assert.True(t, last.IsEmpty())
	assert.Equal(t, types.Integer(), first.Type())
}

func TestImmutable_Queries(t *testing.T) {
	empty := mustImmutable(t, "int")
	_, ok := empty.First()
	assert.False(t, ok)
	_, ok = empty.Last()
	assert.False(t, ok)
	_, ok = empty.FirstIndex()
	assert.False(t, ok)
	_, ok = empty.LastIndex()
	assert.False(t, ok)

	c := mustImmutable(t, "int", 0, 10, 20, 30)

	first, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, 0, first, "a zero first element is still returned")

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, 30, last)

	idx, ok := c.LastIndex()
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	over10 := func(_ int, item any) bool { return item.(int) > 10 }
	v, ok := c.FindFirst(over10)
	require.True(t, ok)
	assert.Equal(t, 20, v)

	v, ok = c.FindLast(over10)
	require.True(t, ok)
	assert.Equal(t, 30, v)

	i, ok := c.FindFirstIndex(over10)
	require.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = c.FindLastIndex(func(_ int, item any) bool { return item.(int) < 20 })
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = c.FindFirst(func(int, any) bool { return false })
	assert.False(t, ok)
	_, ok = c.FindLastIndex(func(int, any) bool { return false })
	assert.False(t, ok)

	sum := c.Reduce(func(acc, item any) any { return acc.(int) + item.(int) }, 0)
	assert.Equal(t, 60, sum)

	var seen []int
	for i, item := range c.All() {
		seen = append(seen, i)
		if item.(int) == 10 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestImmutable_FilterIndexes(t *testing.T) {
	c := mustImmutable(t, "int", 4, 5, 6, 7)
	even := c.FilterIndexes(func(_ int, item any) bool { return item.(int)%2 == 0 })
	assert.Equal(t, types.Integer(), even.Type())
	assert.Equal(t, []any{0, 2}, even.ToSlice())
}

func TestImmutable_ConcurrentReaders(t *testing.T) {
	c := mustImmutable(t, "int", 1, 2, 3)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			next, err := c.Add(n)
			assert.NoError(t, err)
			assert.Equal(t, 4, next.Len())
			assert.Equal(t, 3, c.Len())
		}(i)
	}
	wg.Wait()
	assert.Equal(t, []any{1, 2, 3}, c.ToSlice())
}
