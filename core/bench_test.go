package core_test

import (
	"testing"

	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/seq"
)

// BenchmarkGraph_AddEdge measures sustained edge-event ingestion into a
// ring of 10,000 vertices, N0 -> N1 -> ... -> N9999 -> N0.
func BenchmarkGraph_AddEdge(b *testing.B) {
	g := core.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := uint64(i % 10000)
		dst := uint64((i + 1) % 10000)
		_, _ = g.AddEdge(src, dst, int64(i))
	}
}

// BenchmarkGraph_Neighbours measures repeated distinct-neighbour lookups
// against a fixed hub vertex with 1,000 out-edges to distinct neighbours.
func BenchmarkGraph_Neighbours(b *testing.B) {
	g := core.New()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge(0, uint64(i+1), int64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.Count(g.Neighbours(0, core.Out))
	}
}
