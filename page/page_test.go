package page_test

import (
	"testing"

	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/seq"
	"github.com/stretchr/testify/require"
)

func TestAppendAndScan(t *testing.T) {
	m := page.NewManager(page.WithPageSize(4))
	loc, err := m.FindNextFreePage(page.Location{})
	require.NoError(t, err)

	pg, err := m.GetPage(loc)
	require.NoError(t, err)

	_, err = pg.Append(page.VertexTriplet(1), 10)
	require.NoError(t, err)
	_, err = pg.Append(page.VertexTriplet(1), 20)
	require.NoError(t, err)

	lo, hi, ok := pg.TimeRange()
	require.True(t, ok)
	require.Equal(t, int64(10), lo)
	require.Equal(t, int64(20), hi)

	got := seq.Collect(pg.Scan(page.Window{Start: 15, End: 25}))
	require.Len(t, got, 1)
	require.Equal(t, int64(20), got[0].T)

	require.Empty(t, seq.Collect(pg.Scan(page.Window{Start: 100, End: 200})))
}

func TestPageFullOnOverCapacity(t *testing.T) {
	m := page.NewManager(page.WithPageSize(1))
	loc, err := m.FindNextFreePage(page.Location{})
	require.NoError(t, err)
	pg, err := m.GetPage(loc)
	require.NoError(t, err)

	_, err = pg.Append(page.VertexTriplet(1), 1)
	require.NoError(t, err)
	_, err = pg.Append(page.VertexTriplet(1), 2)
	require.ErrorIs(t, err, page.ErrPageFull)
}

func TestGetPageNotFound(t *testing.T) {
	m := page.NewManager()
	_, err := m.GetPage(page.Location{Page: 99})
	require.ErrorIs(t, err, page.ErrPageNotFound)
}

func TestWindowContainsAndIntersect(t *testing.T) {
	w := page.Window{Start: 2, End: 5}
	require.True(t, w.Contains(2))
	require.False(t, w.Contains(5))
	require.False(t, w.Disjoint(3, 4))
	require.True(t, w.Disjoint(10, 20))

	i := page.Intersect(page.Window{Start: 0, End: 10}, page.Window{Start: 5, End: 20})
	require.Equal(t, page.Window{Start: 5, End: 10}, i)
}

func TestUnboundedWindow(t *testing.T) {
	w := page.UnboundedWindow()
	require.True(t, w.Contains(page.MinTime))
	require.True(t, w.Contains(page.MaxTime-1))
}
