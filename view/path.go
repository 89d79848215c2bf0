package view

import (
	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/seq"
)

// pathOp is one symbolic traversal step: expand the current frontier via
// Neighbours/InNeighbours/OutNeighbours, optionally narrowed to its own
// window (nil means inherit the path's window unchanged).
type pathOp struct {
	dir    core.Direction
	window *page.Window
}

func (op pathOp) resolveWindow(outer page.Window) page.Window {
	if op.window == nil {
		return outer
	}

	return page.Intersect(outer, *op.window)
}

// expand lazily maps every id in frontier to its neighbours under op,
// concatenating the results without materialising the frontier.
func expand(g *core.Graph, outer page.Window, op pathOp, frontier seq.Seq[uint64]) seq.Seq[uint64] {
	win := op.resolveWindow(outer)
	var current seq.Seq[uint64] = seq.Empty[uint64]()

	return seq.Func[uint64](func() (uint64, bool) {
		for {
			if v, ok := current.Next(); ok {
				return v, true
			}
			id, ok := frontier.Next()
			if !ok {
				return 0, false
			}
			current = g.NeighboursInWindow(id, op.dir, win)
		}
	})
}

// PathFromVertex is a symbolic multi-hop traversal starting from a single
// vertex: it accumulates ops and defers applying them until IDs or
// Vertices is iterated, so a chain of hops never materialises an
// intermediate slice.
type PathFromVertex struct {
	g      *core.Graph
	window page.Window
	start  uint64
	ops    []pathOp
}

func (p PathFromVertex) appendOp(dir core.Direction, window *page.Window) PathFromVertex {
	ops := make([]pathOp, len(p.ops)+1)
	copy(ops, p.ops)
	ops[len(p.ops)] = pathOp{dir: dir, window: window}

	return PathFromVertex{g: p.g, window: p.window, start: p.start, ops: ops}
}

// Neighbours appends an undirected hop. An explicit window narrows just
// this hop, per the composition law; omit it to inherit the path's window.
func (p PathFromVertex) Neighbours(window ...page.Window) PathFromVertex {
	return p.appendOp(core.Both, firstWindow(window))
}

// OutNeighbours appends an outward hop.
func (p PathFromVertex) OutNeighbours(window ...page.Window) PathFromVertex {
	return p.appendOp(core.Out, firstWindow(window))
}

// InNeighbours appends an inward hop.
func (p PathFromVertex) InNeighbours(window ...page.Window) PathFromVertex {
	return p.appendOp(core.In, firstWindow(window))
}

// IDs materialises the path: the ids reachable after applying every
// accumulated hop in order. A path with no hops yields just the start
// vertex.
func (p PathFromVertex) IDs() seq.Seq[uint64] {
	var frontier seq.Seq[uint64] = seq.FromSlice([]uint64{p.start})
	for _, op := range p.ops {
		frontier = expand(p.g, p.window, op, frontier)
	}

	return frontier
}

// Vertices materialises the path as views sharing the path's window.
func (p PathFromVertex) Vertices() seq.Seq[WindowedVertex] {
	return seq.Map(p.IDs(), func(id uint64) WindowedVertex {
		return WindowedVertex{g: p.g, window: p.window, id: id}
	})
}

// PathFromGraph is a symbolic multi-hop traversal starting from every
// vertex with activity in the graph view's window. Materialising it
// produces one nested sequence per starting vertex, each deferred until
// its turn is pulled.
type PathFromGraph struct {
	g      *core.Graph
	window page.Window
	ops    []pathOp
}

func (p PathFromGraph) appendOp(dir core.Direction, window *page.Window) PathFromGraph {
	ops := make([]pathOp, len(p.ops)+1)
	copy(ops, p.ops)
	ops[len(p.ops)] = pathOp{dir: dir, window: window}

	return PathFromGraph{g: p.g, window: p.window, ops: ops}
}

// Neighbours appends an undirected hop, applied independently from every
// starting vertex.
func (p PathFromGraph) Neighbours(window ...page.Window) PathFromGraph {
	return p.appendOp(core.Both, firstWindow(window))
}

// OutNeighbours appends an outward hop.
func (p PathFromGraph) OutNeighbours(window ...page.Window) PathFromGraph {
	return p.appendOp(core.Out, firstWindow(window))
}

// InNeighbours appends an inward hop.
func (p PathFromGraph) InNeighbours(window ...page.Window) PathFromGraph {
	return p.appendOp(core.In, firstWindow(window))
}

// IDs returns, for every vertex with activity in the window, a lazy
// sequence of the ids reachable after applying every accumulated hop.
func (p PathFromGraph) IDs() seq.Seq[seq.Seq[uint64]] {
	starts := p.g.VertexIDsInWindow(p.window, false)

	return seq.Map(starts, func(id uint64) seq.Seq[uint64] {
		var frontier seq.Seq[uint64] = seq.FromSlice([]uint64{id})
		for _, op := range p.ops {
			frontier = expand(p.g, p.window, op, frontier)
		}

		return frontier
	})
}

func firstWindow(windows []page.Window) *page.Window {
	if len(windows) == 0 {
		return nil
	}

	return &windows[0]
}
