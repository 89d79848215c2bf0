package view

import (
	"strconv"

	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/prop"
	"github.com/katalvlaran/tgraph/seq"
	"github.com/katalvlaran/tgraph/tcell"
)

// WindowedVertex is an immutable (*core.Graph, window, global vertex id)
// handle. Traversal reads and property histories are narrowed to its
// window; HasProperty and Property read the vertex's latest value
// regardless of the window.
type WindowedVertex struct {
	g      *core.Graph
	window page.Window
	id     uint64 // global id
}

// ID returns the vertex's global id.
func (v WindowedVertex) ID() uint64 { return v.id }

// Name returns the vertex's reserved _name static property, falling back
// to its decimal global id when no name has been set.
func (v WindowedVertex) Name() string {
	if name, ok := v.g.VertexName(v.id); ok {
		return name
	}

	return strconv.FormatUint(v.id, 10)
}

// Bounds returns the window this view is narrowed to.
func (v WindowedVertex) Bounds() page.Window { return v.window }

// Window narrows v to the intersection of its current window and
// [tStart, tEnd).
func (v WindowedVertex) Window(tStart, tEnd int64) WindowedVertex {
	return WindowedVertex{g: v.g, window: page.Intersect(v.window, page.Window{Start: tStart, End: tEnd}), id: v.id}
}

// Degree counts distinct neighbours in direction dir within the window.
func (v WindowedVertex) Degree(dir core.Direction) int {
	return v.g.DegreeInWindow(v.id, dir, v.window)
}

// InDegree counts distinct in-neighbours within the window.
func (v WindowedVertex) InDegree() int { return v.Degree(core.In) }

// OutDegree counts distinct out-neighbours within the window.
func (v WindowedVertex) OutDegree() int { return v.Degree(core.Out) }

// NeighbourIDs returns the distinct neighbour ids in direction dir within
// the window.
func (v WindowedVertex) NeighbourIDs(dir core.Direction) seq.Seq[uint64] {
	return v.g.NeighboursInWindow(v.id, dir, v.window)
}

// Neighbours returns the distinct neighbours in direction dir within the
// window, as views sharing this vertex's window.
func (v WindowedVertex) Neighbours(dir core.Direction) seq.Seq[WindowedVertex] {
	return seq.Map(v.NeighbourIDs(dir), func(id uint64) WindowedVertex {
		return WindowedVertex{g: v.g, window: v.window, id: id}
	})
}

// Edges returns the edge events incident to v in direction dir within the
// window (not deduplicated by neighbour).
func (v WindowedVertex) Edges(dir core.Direction) seq.Seq[WindowedEdge] {
	return seq.Map(v.g.EdgesInWindowDir(v.id, dir, v.window), func(ev core.EdgeEvent) WindowedEdge {
		return newWindowedEdge(v.g, v.window, ev)
	})
}

// HasProperty reports whether v has a property named name.
func (v WindowedVertex) HasProperty(name string, includeStatic bool) bool {
	return v.g.VertexHasProperty(v.id, name, includeStatic)
}

// Property returns v's most recent value for name.
func (v WindowedVertex) Property(name string, includeStatic bool) (prop.Value, bool) {
	return v.g.VertexProperty(v.id, name, includeStatic)
}

// PropertyHistory returns v's temporal history for name within the window.
func (v WindowedVertex) PropertyHistory(name string) seq.Seq[tcell.Point[prop.Value]] {
	return v.g.VertexPropertyHistory(v.id, name, v.window)
}

// PropertyHistories returns every temporal property's history on v within
// the window.
func (v WindowedVertex) PropertyHistories() map[string]seq.Seq[tcell.Point[prop.Value]] {
	return v.g.VertexPropertyHistories(v.id, v.window)
}

// PathFromVertex starts a symbolic multi-hop traversal from v.
func (v WindowedVertex) PathFromVertex() PathFromVertex {
	return PathFromVertex{g: v.g, window: v.window, start: v.id}
}
