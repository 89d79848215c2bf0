package view

import (
	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/prop"
	"github.com/katalvlaran/tgraph/seq"
	"github.com/katalvlaran/tgraph/tcell"
)

// WindowedEdge is an immutable (*core.Graph, window, src, dst, t, edge key)
// handle for one edge event. Property reads are shared across every
// parallel edge between src and dst.
type WindowedEdge struct {
	g       *core.Graph
	window  page.Window
	src     uint64
	dst     uint64
	t       int64
	edgeKey uint64
}

func newWindowedEdge(g *core.Graph, window page.Window, ev core.EdgeEvent) WindowedEdge {
	return WindowedEdge{g: g, window: window, src: ev.Src, dst: ev.Dst, t: ev.T, edgeKey: ev.EdgeKey}
}

// Src returns the edge event's source vertex id.
func (e WindowedEdge) Src() uint64 { return e.src }

// Dst returns the edge event's destination vertex id.
func (e WindowedEdge) Dst() uint64 { return e.dst }

// T returns the edge event's timestamp.
func (e WindowedEdge) T() int64 { return e.t }

// EdgeKey returns the edge event's unique key (distinguishes parallel
// edges between the same pair).
func (e WindowedEdge) EdgeKey() uint64 { return e.edgeKey }

// Bounds returns the window this view is narrowed to.
func (e WindowedEdge) Bounds() page.Window { return e.window }

// Window narrows e to the intersection of its current window and
// [tStart, tEnd).
func (e WindowedEdge) Window(tStart, tEnd int64) WindowedEdge {
	e.window = page.Intersect(e.window, page.Window{Start: tStart, End: tEnd})

	return e
}

// HasProperty reports whether the (src, dst) pair has a property named
// name.
func (e WindowedEdge) HasProperty(name string, includeStatic bool) bool {
	return e.g.EdgeHasProperty(e.src, e.dst, name, includeStatic)
}

// Property returns the (src, dst) pair's most recent value for name.
func (e WindowedEdge) Property(name string, includeStatic bool) (prop.Value, bool) {
	return e.g.EdgeProperty(e.src, e.dst, name, includeStatic)
}

// PropertyHistory returns the (src, dst) pair's temporal history for name
// within the window.
func (e WindowedEdge) PropertyHistory(name string) seq.Seq[tcell.Point[prop.Value]] {
	return e.g.EdgePropertyHistory(e.src, e.dst, name, e.window)
}

// PropertyHistories returns every temporal property's history on the
// (src, dst) pair within the window.
func (e WindowedEdge) PropertyHistories() map[string]seq.Seq[tcell.Point[prop.Value]] {
	return e.g.EdgePropertyHistories(e.src, e.dst, e.window)
}
