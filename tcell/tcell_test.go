package tcell_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tgraph/seq"
	"github.com/katalvlaran/tgraph/tcell"
	"github.com/stretchr/testify/require"
)

func TestSetAndLatestAt(t *testing.T) {
	c := tcell.New[string]()
	c.Set(1, "a")
	c.Set(3, "b")

	v, ok := c.LatestAt(0)
	require.False(t, ok)
	require.Equal(t, "", v)

	v, ok = c.LatestAt(1)
	require.True(t, ok)
	require.Equal(t, "a", v)

	v, ok = c.LatestAt(2)
	require.True(t, ok)
	require.Equal(t, "a", v)

	v, ok = c.LatestAt(10)
	require.True(t, ok)
	require.Equal(t, "b", v)
}

func TestSetOverwrite(t *testing.T) {
	c := tcell.New[int]()
	c.Set(5, 1)
	c.Set(5, 2)
	require.Equal(t, 1, c.Len())
	v, ok := c.LatestAt(5)
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestOutOfOrderInsertionReorders(t *testing.T) {
	c := tcell.New[string]()
	c.Set(5, "later")
	c.Set(1, "earlier")
	c.Set(3, "middle")

	got := seq.Collect(c.IterRange(math.MinInt64, math.MaxInt64))
	require.Equal(t, []tcell.Point[string]{
		{T: 1, V: "earlier"},
		{T: 3, V: "middle"},
		{T: 5, V: "later"},
	}, got)
}

func TestIterRangeHalfOpen(t *testing.T) {
	c := tcell.New[int]()
	c.Set(1, 10)
	c.Set(3, 30)

	require.Equal(t, []tcell.Point[int]{{T: 1, V: 10}, {T: 3, V: 30}}, seq.Collect(c.IterRange(1, 10)))
	require.Empty(t, seq.Collect(c.IterRange(2, 3)))
	require.Empty(t, seq.Collect(c.IterRange(5, 1))) // t_start > t_end: empty, not an error
}

func TestEmptyCell(t *testing.T) {
	c := tcell.New[int]()
	require.True(t, c.IsEmpty())
	require.Equal(t, 0, c.Len())
	_, ok := c.LatestAt(0)
	require.False(t, ok)
}
