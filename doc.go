// Package tgraph is an in-memory temporal property graph storage engine:
// append-only ingestion of vertices and directed edge events tagged with a
// timestamp, and windowed reads over any half-open time range.
//
// The engine is organized as a small stack of single-purpose packages:
//
//	seq/   — the one lazy-sequence iterator contract every other package produces
//	tcell/ — sparse per-property time series (sorted-slice ordered map)
//	page/  — fixed-capacity, chained adjacency pages and their allocator
//	prop/  — the tagged property value type
//	core/  — the graph itself: vertex table, adjacency chains, property stores
//	view/  — the windowed view algebra (WindowedGraph/Vertex/Edge, paths, rolling windows)
//
// Typical use:
//
//	g := core.New()
//	g.AddEdge(1, 2, 100)
//	w := view.Window(g, 0, 200)
//	for _, n := range seq.Collect(w.Vertices()) { ... }
//
// See cmd/tgraphdemo for a runnable walkthrough.
package tgraph
