package view_test

import (
	"fmt"

	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/seq"
	"github.com/katalvlaran/tgraph/view"
)

// ExampleWindow narrows reads to a half-open time range: an edge event
// outside the window is invisible to it.
func ExampleWindow() {
	g := core.New()
	_, _ = g.AddEdge(1, 2, 50)
	_, _ = g.AddEdge(2, 3, 150)

	w := view.Window(g, 0, 100)
	fmt.Println(w.NumVertices(), w.NumEdges())
	// Output:
	// 2 1
}

// ExampleWindowedVertex_PathFromVertex walks a two-hop out-neighbourhood
// symbolically; the underlying graph is only scanned once IDs is drained.
func ExampleWindowedVertex_PathFromVertex() {
	g := core.New()
	_, _ = g.AddEdge(1, 2, 10)
	_, _ = g.AddEdge(2, 3, 20)

	v, _ := view.Unbounded(g).Vertex(1)
	hops := seq.Collect(v.PathFromVertex().OutNeighbours().OutNeighbours().IDs())
	fmt.Println(hops)
	// Output:
	// [3]
}
