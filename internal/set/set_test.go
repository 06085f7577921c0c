package set

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_InsertRemove(t *testing.T) {
	var s Set[int]
	require.Equal(t, 0, s.Len())
	require.False(t, s.Has(1))

	require.True(t, s.Insert(1))
	require.False(t, s.Insert(1))
	require.True(t, s.Has(1))

	s.Remove(1)
	require.False(t, s.Has(1))

	// removing from the zero value must not panic
	var empty Set[int]
	empty.Remove(5)
}

func TestSet_Intersects(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(7, 3)
	c := Of(8)

	require.True(t, a.Intersects(&b))
	require.True(t, b.Intersects(&a))
	require.False(t, a.Intersects(&c))

	var empty Set[int]
	require.False(t, empty.Intersects(&a))
	require.False(t, a.Intersects(&empty))
}

func TestSet_Values(t *testing.T) {
	s := Of("b", "a")
	require.Equal(t, []string{"a", "b"}, slices.Sorted(s.Values()))
}
