package view

import (
	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/seq"
)

// WindowedGraph is an immutable (*core.Graph, window) handle. Every read
// it exposes is narrowed to its window; views it derives stay within that
// window unless narrowed further with Window, which intersects rather than
// replaces it.
type WindowedGraph struct {
	g      *core.Graph
	window page.Window
}

// Window constructs the WindowedGraph covering [tStart, tEnd) over g. It
// lives here rather than on core.Graph to avoid core depending on view.
func Window(g *core.Graph, tStart, tEnd int64) WindowedGraph {
	return WindowedGraph{g: g, window: page.Window{Start: tStart, End: tEnd}}
}

// Unbounded constructs the WindowedGraph covering all representable time.
func Unbounded(g *core.Graph) WindowedGraph {
	return WindowedGraph{g: g, window: page.UnboundedWindow()}
}

// Bounds returns the window this view is narrowed to.
func (v WindowedGraph) Bounds() page.Window { return v.window }

// Window narrows v to the intersection of its current window and
// [tStart, tEnd).
func (v WindowedGraph) Window(tStart, tEnd int64) WindowedGraph {
	return WindowedGraph{g: v.g, window: page.Intersect(v.window, page.Window{Start: tStart, End: tEnd})}
}

// HasVertex reports whether gID has activity within the view's window.
func (v WindowedGraph) HasVertex(gID uint64) bool {
	return v.g.HasVertexInWindow(gID, v.window, false)
}

// Vertex returns gID narrowed to this view's window, if it has activity
// within it.
func (v WindowedGraph) Vertex(gID uint64) (WindowedVertex, bool) {
	if !v.HasVertex(gID) {
		return WindowedVertex{}, false
	}

	return WindowedVertex{g: v.g, window: v.window, id: gID}, true
}

// VertexIDs returns a lazy sequence of the ids of vertices with activity
// within the window. Producing the sequence is O(1); the scan happens in
// Next(), see core.Graph.VertexIDsInWindow.
func (v WindowedGraph) VertexIDs() seq.Seq[uint64] {
	return v.g.VertexIDsInWindow(v.window, false)
}

// Vertices returns a lazy sequence of every vertex with activity within the
// window.
func (v WindowedGraph) Vertices() seq.Seq[WindowedVertex] {
	return seq.Map(v.VertexIDs(), func(gid uint64) WindowedVertex {
		return WindowedVertex{g: v.g, window: v.window, id: gid}
	})
}

// HasEdge reports whether any edge event from srcGID to dstGID falls
// within the window.
func (v WindowedGraph) HasEdge(srcGID, dstGID uint64) bool {
	return v.g.HasEdgeInWindow(srcGID, dstGID, v.window)
}

// Edge returns the first matching edge event from srcGID to dstGID within
// the window, if any.
func (v WindowedGraph) Edge(srcGID, dstGID uint64) (WindowedEdge, bool) {
	ev, ok := v.g.EdgeInWindow(srcGID, dstGID, v.window)
	if !ok {
		return WindowedEdge{}, false
	}

	return newWindowedEdge(v.g, v.window, ev), true
}

// Edges returns a lazy sequence of every edge event within the window.
func (v WindowedGraph) Edges() seq.Seq[WindowedEdge] {
	return seq.Map(v.g.EdgesInWindow(v.window), func(ev core.EdgeEvent) WindowedEdge {
		return newWindowedEdge(v.g, v.window, ev)
	})
}

// NumVertices counts vertices with activity within the window.
func (v WindowedGraph) NumVertices() int { return v.g.NumVerticesInWindow(v.window, false) }

// NumEdges counts edge events within the window; see
// core.Graph.NumEdgesInWindow for why this counts raw events rather than
// distinct neighbour pairs.
func (v WindowedGraph) NumEdges() int { return v.g.NumEdgesInWindow(v.window) }

// EarliestTime returns the earliest recorded event of any kind within the
// window.
func (v WindowedGraph) EarliestTime() (int64, bool) { return v.g.GraphEarliestTimeInWindow(v.window) }

// LatestTime returns the latest recorded event of any kind within the
// window.
func (v WindowedGraph) LatestTime() (int64, bool) { return v.g.GraphLatestTimeInWindow(v.window) }

// PathFromGraph starts a symbolic multi-hop traversal from every vertex
// with activity in this view's window.
func (v WindowedGraph) PathFromGraph() PathFromGraph {
	return PathFromGraph{g: v.g, window: v.window}
}
