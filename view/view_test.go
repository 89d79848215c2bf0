package view_test

import (
	"testing"

	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/prop"
	"github.com/katalvlaran/tgraph/seq"
	"github.com/katalvlaran/tgraph/view"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	_, err := g.AddEdge(1, 2, 10)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 20)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 4, 30)
	require.NoError(t, err)

	return g
}

func TestWindowedGraphNarrowsReads(t *testing.T) {
	g := buildChain(t)

	full := view.Unbounded(g)
	require.Equal(t, 4, full.NumVertices())
	require.Equal(t, 3, full.NumEdges())

	early := view.Window(g, 0, 21)
	require.Equal(t, 3, early.NumVertices()) // 1,2,3 active by t<21
	require.Equal(t, 2, early.NumEdges())
}

func TestWindowedGraphWindowIntersects(t *testing.T) {
	g := buildChain(t)

	outer := view.Window(g, 0, 25)
	narrower := outer.Window(15, 100) // intersect -> [15, 25)
	require.Equal(t, page.Window{Start: 15, End: 25}, narrower.Bounds())

	require.True(t, narrower.HasEdge(2, 3))
	require.False(t, narrower.HasEdge(1, 2)) // t=10 excluded by the intersection
}

func TestWindowedVertexDegreesAndNeighbours(t *testing.T) {
	g := buildChain(t)
	gv := view.Unbounded(g)

	v, ok := gv.Vertex(2)
	require.True(t, ok)
	require.Equal(t, uint64(2), v.ID())
	require.Equal(t, 1, v.OutDegree())
	require.Equal(t, 1, v.InDegree())

	nbs := seq.Collect(v.Neighbours(core.Both))
	ids := make([]uint64, len(nbs))
	for i, n := range nbs {
		ids[i] = n.ID()
	}
	require.ElementsMatch(t, []uint64{1, 3}, ids)
}

func TestWindowedEdgeProperties(t *testing.T) {
	g := buildChain(t)
	require.NoError(t, g.AddEdgeProperties(1, 2, 10, map[string]prop.Value{"w": prop.I64(5)}))

	gv := view.Unbounded(g)
	e, ok := gv.Edge(1, 2)
	require.True(t, ok)

	val, ok := e.Property("w", false)
	require.True(t, ok)
	n, _ := val.AsI64()
	require.Equal(t, int64(5), n)
}

func TestPathFromVertexMultiHop(t *testing.T) {
	g := buildChain(t)
	gv := view.Unbounded(g)
	v, ok := gv.Vertex(1)
	require.True(t, ok)

	ids := seq.Collect(v.PathFromVertex().OutNeighbours().OutNeighbours().IDs())
	require.ElementsMatch(t, []uint64{3}, ids) // 1 -> 2 -> 3
}

func TestPathFromVertexZeroHopsIsStart(t *testing.T) {
	g := buildChain(t)
	gv := view.Unbounded(g)
	v, ok := gv.Vertex(1)
	require.True(t, ok)

	ids := seq.Collect(v.PathFromVertex().IDs())
	require.Equal(t, []uint64{1}, ids)
}

func TestPathFromGraphIsNestedPerStart(t *testing.T) {
	g := buildChain(t)
	gv := view.Unbounded(g)

	outer := gv.PathFromGraph().OutNeighbours().IDs()
	var flattened [][]uint64
	for {
		inner, ok := outer.Next()
		if !ok {
			break
		}
		flattened = append(flattened, seq.Collect(inner))
	}
	require.Len(t, flattened, 4) // one nested sequence per starting vertex (1,2,3,4)
}

func TestRollingWindowSet(t *testing.T) {
	g := buildChain(t)

	windows := seq.Collect(view.Rolling(g, 0, 40, 10, 10))
	require.Len(t, windows, 4)
	require.Equal(t, page.Window{Start: 0, End: 10}, windows[0].Bounds())
	require.Equal(t, page.Window{Start: 30, End: 40}, windows[3].Bounds())

	// each rolling window sees only the edge(s) active in its slice
	require.Equal(t, 0, windows[0].NumEdges()) // [0,10): no edge yet (edge at t=10 excluded)
	require.Equal(t, 1, windows[1].NumEdges()) // [10,20): edge 1->2
	require.Equal(t, 1, windows[3].NumEdges()) // [30,40): edge 3->4
}
