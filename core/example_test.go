package core_test

import (
	"fmt"

	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/prop"
)

// ExampleGraph_AddEdge ingests a handful of edge events, arriving out of
// order, and reports the resulting degree and event count.
func ExampleGraph_AddEdge() {
	g := core.New()

	_, _ = g.AddEdge(1, 2, 100)
	_, _ = g.AddEdge(2, 3, 50) // arrives "earlier" than the first event
	_, _ = g.AddEdge(1, 3, 150)

	fmt.Println(g.NumVertices(), g.NumEdges(), g.Degree(1, core.Out))
	// Output:
	// 3 3 2
}

// ExampleGraph_AddVertexProperties shows a vertex's most recent property
// value reflecting the latest write by timestamp, not insertion order.
func ExampleGraph_AddVertexProperties() {
	g := core.New()

	_ = g.AddVertexProperties(1, 100, map[string]prop.Value{"load": prop.I64(10)})
	_ = g.AddVertexProperties(1, 50, map[string]prop.Value{"load": prop.I64(5)})

	v, _ := g.VertexProperty(1, "load", false)
	fmt.Println(v)
	// Output:
	// 10
}
