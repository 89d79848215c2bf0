// Command tgraphdemo ingests a small synthetic event stream into a tgraph
// core.Graph and runs a handful of windowed queries over it.
package main

import (
	"log"

	"github.com/katalvlaran/tgraph/core"
	"github.com/katalvlaran/tgraph/prop"
	"github.com/katalvlaran/tgraph/seq"
	"github.com/katalvlaran/tgraph/view"
)

// contact is one observed interaction between two users at t.
type contact struct {
	from, to uint64
	t        int64
}

// ContactLog is a tiny synthetic social-contact stream: users 1-5
// exchanging messages over a day, in arbitrary (not strictly increasing)
// arrival order.
var ContactLog = []contact{
	{1, 2, 100},
	{2, 3, 150},
	{1, 3, 90}, // arrives after t=150 was already ingested but logically earlier
	{3, 4, 200},
	{4, 5, 250},
	{2, 5, 300},
}

func main() {
	g := core.New(core.WithPageSize(4))

	for gid := uint64(1); gid <= 5; gid++ {
		if err := g.AddVertex(gid, 0); err != nil {
			log.Fatalf("add vertex %d: %v", gid, err)
		}
	}
	if err := g.AddStaticVertexProperties(1, map[string]prop.Value{core.NameProperty: prop.Str("alice")}); err != nil {
		log.Fatalf("set name: %v", err)
	}

	for _, c := range ContactLog {
		if _, err := g.AddEdge(c.from, c.to, c.t); err != nil {
			log.Fatalf("add edge %d->%d@%d: %v", c.from, c.to, c.t, err)
		}
	}

	log.Printf("ingested %d vertices, %d edge events", g.NumVertices(), g.NumEdges())

	full := view.Unbounded(g)
	v, ok := full.Vertex(1)
	if !ok {
		log.Fatalf("vertex 1 missing")
	}
	log.Printf("vertex %d (%s): out-degree=%d", v.ID(), v.Name(), v.OutDegree())

	morning := view.Window(g, 0, 200)
	log.Printf("window [0,200): %d vertices, %d edge events", morning.NumVertices(), morning.NumEdges())

	hops := seq.Collect(v.PathFromVertex().OutNeighbours().OutNeighbours().IDs())
	log.Printf("vertex %d's two-hop out-neighbours: %v", v.ID(), hops)

	for _, w := range seq.Collect(view.Rolling(g, 0, 400, 100, 100)) {
		log.Printf("rolling window %v: %d vertices, %d edges", w.Bounds(), w.NumVertices(), w.NumEdges())
	}
}
