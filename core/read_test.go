package core_test

import (
	"testing"

	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/prop"
	"github.com/katalvlaran/tgraph/seq"
	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(core.WithPageSize(2)) // small pages to exercise overflow chaining
	_, err := g.AddEdge(1, 2, 10)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 20)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 1, 30)
	require.NoError(t, err)

	return g
}

func TestNeighboursOutInBoth(t *testing.T) {
	g := buildTriangle(t)

	out := seq.Collect(g.Neighbours(1, core.Out))
	require.ElementsMatch(t, []uint64{2}, out)

	in := seq.Collect(g.Neighbours(1, core.In))
	require.ElementsMatch(t, []uint64{3}, in)

	both := seq.Collect(g.Neighbours(1, core.Both))
	require.ElementsMatch(t, []uint64{2, 3}, both)
}

func TestDegreeCountsDistinctNeighbours(t *testing.T) {
	g := core.New()
	_, err := g.AddEdge(1, 2, 10)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 20) // parallel edge, same neighbour
	require.NoError(t, err)

	require.Equal(t, 1, g.Degree(1, core.Out))
	require.Equal(t, 2, g.NumEdges()) // but both events are counted
}

func TestHasEdgeAndEdgeInWindow(t *testing.T) {
	g := buildTriangle(t)

	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(2, 1))

	_, ok := g.EdgeInWindow(1, 2, page.Window{Start: 0, End: 10})
	require.False(t, ok) // half-open: t=10 excluded

	ev, ok := g.EdgeInWindow(1, 2, page.Window{Start: 10, End: 11})
	require.True(t, ok)
	require.Equal(t, int64(10), ev.T)
}

func TestEarliestLatestTime(t *testing.T) {
	g := buildTriangle(t)

	earliest, ok := g.EarliestTime(1)
	require.True(t, ok)
	require.Equal(t, int64(10), earliest) // edge 1->2@10 and 3->1@30

	latest, ok := g.LatestTime(1)
	require.True(t, ok)
	require.Equal(t, int64(30), latest)
}

func TestHasVertexInWindowBoundary(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex(1, 10))

	require.True(t, g.HasVertexInWindow(1, page.Window{Start: 0, End: 11}, false))
	require.False(t, g.HasVertexInWindow(1, page.Window{Start: 0, End: 10}, false))

	// outside its only activity window, a static property still counts the
	// vertex as present when includeStatic is set.
	require.NoError(t, g.AddStaticVertexProperties(1, map[string]prop.Value{"tag": prop.Str("x")}))
	require.False(t, g.HasVertexInWindow(1, page.Window{Start: 0, End: 10}, false))
	require.True(t, g.HasVertexInWindow(1, page.Window{Start: 0, End: 10}, true))
}

func TestNumEdgesInWindowCountsRawEvents(t *testing.T) {
	g := core.New()
	_, err := g.AddEdge(1, 2, 10)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 20)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 15)
	require.NoError(t, err)

	require.Equal(t, 3, g.NumEdgesInWindow(page.UnboundedWindow()))
	require.Equal(t, 2, g.NumEdgesInWindow(page.Window{Start: 0, End: 16}))
}

func TestEdgesInWindowResolvesGlobalIDs(t *testing.T) {
	g := buildTriangle(t)

	events := seq.Collect(g.EdgesInWindow(page.UnboundedWindow()))
	require.Len(t, events, 3)

	seen := make(map[[2]uint64]bool)
	for _, e := range events {
		seen[[2]uint64{e.Src, e.Dst}] = true
	}
	require.True(t, seen[[2]uint64{1, 2}])
	require.True(t, seen[[2]uint64{2, 3}])
	require.True(t, seen[[2]uint64{3, 1}])
}

func TestVertexIDsInWindow(t *testing.T) {
	g := buildTriangle(t)

	ids := seq.Collect(g.VertexIDsInWindow(page.Window{Start: 0, End: 21}, false))
	require.ElementsMatch(t, []uint64{1, 2, 3}, ids)

	ids = seq.Collect(g.VertexIDsInWindow(page.Window{Start: 0, End: 11}, false))
	require.ElementsMatch(t, []uint64{1, 2}, ids)
}

func TestVertexPropertyHistoryIsWindowed(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertexProperties(1, 10, map[string]prop.Value{"weight": prop.I64(1)}))
	require.NoError(t, g.AddVertexProperties(1, 20, map[string]prop.Value{"weight": prop.I64(2)}))
	require.NoError(t, g.AddVertexProperties(1, 30, map[string]prop.Value{"weight": prop.I64(3)}))

	points := seq.Collect(g.VertexPropertyHistory(1, "weight", page.Window{Start: 10, End: 21}))
	require.Len(t, points, 2)
	require.Equal(t, int64(10), points[0].T)
	require.Equal(t, int64(20), points[1].T)
}
