package view

import (
	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/seq"
)

// Rolling returns a lazy sequence of WindowedGraph views at [t, t+size) for
// t = start, start+step, ..., stopping once t >= end. Passing
// page.MaxTime as end with a positive step produces an unbounded sequence;
// step <= 0 with a finite end is the caller's responsibility to avoid (it
// would never terminate).
func Rolling(g *core.Graph, start, end, step, size int64) seq.Seq[WindowedGraph] {
	t := start

	return seq.Func[WindowedGraph](func() (WindowedGraph, bool) {
		if t >= end {
			return WindowedGraph{}, false
		}
		w := WindowedGraph{g: g, window: page.Window{Start: t, End: t + size}}
		t += step

		return w, true
	})
}
