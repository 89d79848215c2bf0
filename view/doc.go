// Package view implements the windowed view algebra over a core.Graph:
// WindowedGraph, WindowedVertex, and WindowedEdge are immutable handles of
// (*core.Graph, page.Window[, ids]) that narrow traversal, count and
// history reads to a window (latest-value property reads are not
// windowed). Calling Window on a view intersects the caller's window with
// the view's own, per the composition law: every derived view or sequence
// carries [max(outer.Start, inner.Start), min(outer.End, inner.End)).
//
// PathFromVertex and PathFromGraph are symbolic: they accumulate a list of
// traversal steps and apply them only when the path is finally iterated,
// so a multi-hop query builds no intermediate slice.
//
// Rolling produces a rolling-window set as a seq.Seq[WindowedGraph], one
// WindowedGraph per window.
package view
