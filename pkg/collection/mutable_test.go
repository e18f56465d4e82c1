package collection_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typedcoll/pkg/collection"
	"github.com/aretw0/typedcoll/pkg/types"
)

type point struct{ X, Y int }

type labeled struct {
	point
	Label string
}

func byInt(a, b any) int { return a.(int) - b.(int) }

func mustMutable(t *testing.T, declared any, items ...any) *collection.Mutable {
	t.Helper()
	c, err := collection.NewMutable(declared, items)
	require.NoError(t, err)
	return c
}

func TestMutable_New(t *testing.T) {
	t.Run("Round Trips Input Order", func(t *testing.T) {
		c := mustMutable(t, "string", "b", "a", "c")
		assert.Equal(t, []any{"b", "a", "c"}, c.ToSlice())
		assert.Equal(t, types.String(), c.Type())
		assert.Equal(t, 3, c.Len())
	})

	t.Run("Invalid Callable Item", func(t *testing.T) {
		c, err := collection.NewMutable(types.Callable(), []any{"test"})
		assert.Nil(t, c)
		assert.ErrorIs(t, err, types.ErrTypeMismatch)
		assert.Contains(t, err.Error(), "not of type callable")
	})

	t.Run("Invalid Class Item", func(t *testing.T) {
		reg := types.NewRegistry()
		require.NoError(t, types.RegisterType[fmt.Stringer](reg, "Stringer"))

		_, err := collection.NewMutable("Stringer", []any{point{}}, types.WithRegistry(reg))
		assert.ErrorIs(t, err, types.ErrTypeMismatch)
		assert.Contains(t, err.Error(), "not of type Stringer")
	})

	t.Run("Unknown Declared Type", func(t *testing.T) {
		_, err := collection.NewMutable("object", nil)
		assert.ErrorIs(t, err, types.ErrInvalidType)
	})

	t.Run("Fails On First Invalid Item", func(t *testing.T) {
		_, err := collection.NewMutable("int", []any{1, 2, 3.5, "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "element 2")
	})

	t.Run("Input Slice Is Copied", func(t *testing.T) {
		items := []any{1, 2}
		c, err := collection.NewMutable("int", items)
		require.NoError(t, err)
		items[0] = 99
		v, _ := c.At(0)
		assert.Equal(t, 1, v)
	})
}

func TestMutable_At(t *testing.T) {
	empty := mustMutable(t, types.Integer())
	_, err := empty.At(0)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)

	c := mustMutable(t, "string", "test")
	v, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, "test", v)

	_, err = c.At(-1)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
	_, err = c.At(1)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}

func TestMutable_Contains(t *testing.T) {
	p1 := &point{1, 2}
	p2 := &point{1, 2}
	c := mustMutable(t, types.ClassOf[*point]("Point"), p1)

	assert.True(t, c.Contains(p1))
	assert.False(t, c.Contains(p2), "a distinct pointer is not the same element")

	ints := mustMutable(t, "int", 1, 2)
	assert.True(t, ints.Contains(2))
	assert.False(t, ints.Contains(int64(2)), "strict equality includes the Go type")
	assert.False(t, ints.Contains("2"))
}

func TestMutable_Add(t *testing.T) {
	c := mustMutable(t, "int", 1)

	err := c.Add("two")
	assert.ErrorIs(t, err, types.ErrTypeMismatch)
	assert.Equal(t, []any{1}, c.ToSlice())

	require.NoError(t, c.Add(2))
	assert.Equal(t, []any{1, 2}, c.ToSlice())
}

func TestMutable_AddSubclass(t *testing.T) {
	c := mustMutable(t, types.ClassOf[point]("Point"))
	require.NoError(t, c.Add(point{1, 1}))
	require.NoError(t, c.Add(labeled{point: point{2, 2}, Label: "b"}))
	assert.Equal(t, 2, c.Len())
}

func TestMutable_InsertAt(t *testing.T) {
	t.Run("Invalid Index", func(t *testing.T) {
		c := mustMutable(t, "string", "a", "b")
		assert.ErrorIs(t, c.InsertAt(2, "c"), types.ErrIndexOutOfRange, "inserting at len is out of range")
		assert.ErrorIs(t, c.InsertAt(-1, "c"), types.ErrIndexOutOfRange)
		assert.Equal(t, []any{"a", "b"}, c.ToSlice())
	})

	t.Run("Invalid Item", func(t *testing.T) {
		c := mustMutable(t, "string", "a", "b")
		assert.ErrorIs(t, c.InsertAt(0, 1), types.ErrTypeMismatch)
		assert.Equal(t, []any{"a", "b"}, c.ToSlice())
	})

	t.Run("Inserts Before Index", func(t *testing.T) {
		c := mustMutable(t, "string", "a", "c")
		require.NoError(t, c.InsertAt(1, "b"))
		assert.Equal(t, []any{"a", "b", "c"}, c.ToSlice())
	})

	t.Run("Insert Then Remove Restores", func(t *testing.T) {
		c := mustMutable(t, "int", 1, 2, 3)
		for i := 0; i < 3; i++ {
			require.NoError(t, c.InsertAt(i, 42))
			require.NoError(t, c.RemoveAt(i))
			assert.Equal(t, []any{1, 2, 3}, c.ToSlice())
		}
	})
}

func TestMutable_RemoveAt(t *testing.T) {
	c := mustMutable(t, "int", 1, 2, 3)
	assert.ErrorIs(t, c.RemoveAt(3), types.ErrIndexOutOfRange)

	require.NoError(t, c.RemoveAt(1))
	assert.Equal(t, []any{1, 3}, c.ToSlice())

	// Indices stay dense after removal.
	v, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestMutable_Drop(t *testing.T) {
	c := mustMutable(t, "int", 1, 2, 3)
	c.DropFirst()
	assert.Equal(t, []any{2, 3}, c.ToSlice())
	c.DropLast()
	assert.Equal(t, []any{2}, c.ToSlice())

	empty := mustMutable(t, "int")
	assert.NotPanics(t, func() {
		empty.DropFirst()
		empty.DropLast()
	})
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, types.Integer(), empty.Type())
}

func TestMutable_Clear(t *testing.T) {
	c := mustMutable(t, "int", 1, 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, types.Integer(), c.Type())
	assert.Equal(t, []any{}, c.ToSlice())
}

func TestMutable_FilterReverseSort(t *testing.T) {
	c := mustMutable(t, "int", 5, 1, 4, 2, 3)

	c.Filter(func(item any) bool { return item.(int) != 4 })
	assert.Equal(t, []any{5, 1, 2, 3}, c.ToSlice())

	c.Reverse()
	assert.Equal(t, []any{3, 2, 1, 5}, c.ToSlice())

	c.Sort(byInt)
	assert.Equal(t, []any{1, 2, 3, 5}, c.ToSlice())
}

func TestMutable_Map(t *testing.T) {
	t.Run("Type Follows First Result", func(t *testing.T) {
		c := mustMutable(t, "int", 1, 2, 3)
		require.NoError(t, c.Map(func(item any) any { return fmt.Sprintf("item%d", item) }))
		assert.Equal(t, types.String(), c.Type())
		assert.Equal(t, []any{"item1", "item2", "item3"}, c.ToSlice())

		assert.ErrorIs(t, c.Add(4), types.ErrTypeMismatch)
		assert.NoError(t, c.Add("item4"))
	})

	t.Run("Class Results", func(t *testing.T) {
		c := mustMutable(t, "int", 1, 2)
		require.NoError(t, c.Map(func(item any) any { return point{X: item.(int)} }))
		assert.True(t, c.Type().Equal(types.ClassOf[point]("")))
	})

	t.Run("Empty Keeps Type", func(t *testing.T) {
		c := mustMutable(t, "int")
		require.NoError(t, c.Map(func(item any) any { return "x" }))
		assert.Equal(t, types.Integer(), c.Type())
	})

	t.Run("Heterogeneous Results Are Not Checked Eagerly", func(t *testing.T) {
		c := mustMutable(t, "int", 1, 2)
		require.NoError(t, c.Map(func(item any) any {
			if item.(int) == 1 {
				return "one"
			}
			return 2.0
		}))
		assert.Equal(t, types.String(), c.Type())
		assert.Equal(t, []any{"one", 2.0}, c.ToSlice())
	})

	t.Run("Nil First Result", func(t *testing.T) {
		c := mustMutable(t, "int", 1)
		err := c.Map(func(item any) any { return nil })
		assert.ErrorIs(t, err, types.ErrUnsupportedType)
		assert.Equal(t, []any{1}, c.ToSlice())
		assert.Equal(t, types.Integer(), c.Type())
	})
}

func TestMutable_Merge(t *testing.T) {
	c := mustMutable(t, "string", "a")
	other := mustMutable(t, "string", "b", "c")

	require.NoError(t, c.Merge(other))
	assert.Equal(t, []any{"a", "b", "c"}, c.ToSlice())
	assert.Equal(t, []any{"b", "c"}, other.ToSlice())

	bad := mustMutable(t, "array", []any{"x"})
	assert.ErrorIs(t, c.Merge(bad), types.ErrTypeMismatch)
	assert.Equal(t, []any{"a", "b", "c"}, c.ToSlice())
}

func TestMutable_MergeRejectsPartialBatch(t *testing.T) {
	c := mustMutable(t, "int", 1)
	// After Map the declared type is integer but a string result is left behind.
	drifted := mustMutable(t, "int", 1, 2)
	require.NoError(t, drifted.Map(func(item any) any {
		if item.(int) == 1 {
			return 10
		}
		return "two"
	}))

	assert.ErrorIs(t, c.Merge(drifted), types.ErrTypeMismatch)
	assert.Equal(t, []any{1}, c.ToSlice())
}

func TestMutable_Slice(t *testing.T) {
	c := mustMutable(t, "string", "a", "b", "c", "d")

	s := c.Slice(1, 2)
	assert.Equal(t, []any{"b", "c"}, s.ToSlice())
	assert.Equal(t, c.Type(), s.Type())
	assert.Equal(t, 4, c.Len(), "slicing leaves the source untouched")

	tests := []struct {
		name   string
		offset int
		length int
		from   bool
		want   []any
	}{
		{"From Offset", 2, 0, true, []any{"c", "d"}},
		{"Negative Offset", -2, 0, true, []any{"c", "d"}},
		{"Negative Length", 0, -1, false, []any{"a", "b", "c"}},
		{"Length Past End", 3, 10, false, []any{"d"}},
		{"Offset Past End", 9, 1, false, []any{}},
		{"Offset Before Start", -9, 2, false, []any{"a", "b"}},
		{"Lengths Cross", 2, -3, false, []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *collection.Mutable
			if tt.from {
				got = c.SliceFrom(tt.offset)
			} else {
				got = c.Slice(tt.offset, tt.length)
			}
			assert.Equal(t, tt.want, got.ToSlice())
		})
	}
}

func TestMutable_Shuffle(t *testing.T) {
	items := []any{1, 2, 3, 4, 5, 6, 7, 8}
	c := mustMutable(t, "int", items...)
	c.Shuffle()
	assert.ElementsMatch(t, items, c.ToSlice())
	assert.Equal(t, types.Integer(), c.Type())
}

func TestMutable_Unique(t *testing.T) {
	c := mustMutable(t, "int", 5, 5, 3, 3)
	c.Unique()
	assert.Equal(t, []any{5, 3}, c.ToSlice())
}

func TestMutable_FilterIndexes(t *testing.T) {
	c := mustMutable(t, "string", "apple", "kiwi", "avocado")
	idx := c.FilterIndexes(func(_ int, item any) bool { return strings.HasPrefix(item.(string), "a") })
	assert.Equal(t, types.Integer(), idx.Type())
	assert.Equal(t, []any{0, 2}, idx.ToSlice())
}

func TestMutable_Conversion(t *testing.T) {
	m := mustMutable(t, "int", 1, 2)
	im := m.Immutable()
	require.NoError(t, m.Add(3))
	assert.Equal(t, []any{1, 2}, im.ToSlice())

	back := im.Mutable()
	require.NoError(t, back.Add(9))
	assert.Equal(t, []any{1, 2}, im.ToSlice())
	assert.Equal(t, []any{1, 2, 9}, back.ToSlice())
}
