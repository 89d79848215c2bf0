package core

import (
	"sort"

	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/prop"
	"github.com/katalvlaran/tgraph/seq"
	"github.com/katalvlaran/tgraph/tcell"
)

// observedEvent tags a page.Entry with which chain it was scanned from:
// Outward means logical (the vertex being traversed) is the event's src,
// Outward == false means logical is the event's dst. Both chains store
// Triplet.Vertex as the chain owner regardless of direction, so this tag is
// the only way to recover src/dst after merging the two chains.
type observedEvent struct {
	Entry   page.Entry
	Outward bool
}

type chainRef struct {
	head    page.Location
	outward bool
}

// chainsFor returns the chain(s) dir selects for logical, as (head,
// outward) pairs.
func (g *Graph) chainsFor(dir Direction, logical uint64) []chainRef {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	switch dir {
	case Out:
		return []chainRef{{g.adjHeads[logical], true}}
	case In:
		return []chainRef{{g.inAdjHeads[logical], false}}
	default:
		return []chainRef{{g.adjHeads[logical], true}, {g.inAdjHeads[logical], false}}
	}
}

// scanChain lazily walks the page chain rooted at head, yielding every
// entry whose t falls within window, in chain order. Each Next holds
// muIndex's read lock for just that step, so reading a page's entries and
// overflow link never overlaps an append (writers hold muIndex for writing).
func (g *Graph) scanChain(head page.Location, window page.Window) seq.Seq[page.Entry] {
	locs := g.pages.WalkChain(head)
	var current seq.Seq[page.Entry] = seq.Empty[page.Entry]()

	return seq.Locked[page.Entry](g.muIndex.RLocker(), seq.Func[page.Entry](func() (page.Entry, bool) {
		for {
			if e, ok := current.Next(); ok {
				return e, true
			}
			loc, ok := locs.Next()
			if !ok {
				var zero page.Entry
				return zero, false
			}
			pg, err := g.pages.GetPage(loc)
			if err != nil {
				var zero page.Entry
				return zero, false
			}
			current = pg.Scan(window)
		}
	}))
}

// walkEvents lazily merges the chain(s) dir selects for logical, tagging
// each entry with the direction it came from.
func (g *Graph) walkEvents(logical uint64, dir Direction, window page.Window) seq.Seq[observedEvent] {
	var merged seq.Seq[observedEvent] = seq.Empty[observedEvent]()
	for _, ref := range g.chainsFor(dir, logical) {
		outward := ref.outward
		tagged := seq.Map(g.scanChain(ref.head, window), func(e page.Entry) observedEvent {
			return observedEvent{Entry: e, Outward: outward}
		})
		merged = seq.Concat(merged, tagged)
	}

	return merged
}

// logicalOf is defined in write.go; gidOf and vertexRecordOf are its
// read-side counterparts.

func (g *Graph) gidOf(logical uint64) uint64 {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	return g.vertices[logical].gID
}

func (g *Graph) vertexRecordOf(logical uint64) vertexRecord {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	return g.vertices[logical]
}

// HasVertex reports whether gID has ever been recorded.
func (g *Graph) HasVertex(gID uint64) bool {
	_, ok := g.logicalOf(gID)

	return ok
}

// Vertex returns a snapshot of gID's identity.
func (g *Graph) Vertex(gID uint64) (Vertex, bool) {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return Vertex{}, false
	}
	rec := g.vertexRecordOf(logical)

	return Vertex{GID: rec.gID, FirstSeen: rec.firstSeen}, true
}

// EdgesInWindowDir returns the edge events incident to gID in direction dir
// within window, each resolved to global ids.
func (g *Graph) EdgesInWindowDir(gID uint64, dir Direction, window page.Window) seq.Seq[EdgeEvent] {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return seq.Empty[EdgeEvent]()
	}
	events := seq.Filter(g.walkEvents(logical, dir, window), func(o observedEvent) bool {
		return !o.Entry.Triplet.IsVertexOnly()
	})

	return seq.Map(events, func(o observedEvent) EdgeEvent {
		t := o.Entry.Triplet
		src, dst := t.Vertex, *t.Other
		if !o.Outward {
			src, dst = *t.Other, t.Vertex
		}

		return EdgeEvent{Src: g.gidOf(src), Dst: g.gidOf(dst), T: o.Entry.T, EdgeKey: *t.EdgeKey}
	})
}

// Edges returns every edge event ever recorded incident to gID in direction
// dir.
func (g *Graph) Edges(gID uint64, dir Direction) seq.Seq[EdgeEvent] {
	return g.EdgesInWindowDir(gID, dir, page.UnboundedWindow())
}

// NeighboursInWindow returns the distinct neighbours of gID in direction dir
// within window. Degree counts distinct neighbours, not raw edge events.
func (g *Graph) NeighboursInWindow(gID uint64, dir Direction, window page.Window) seq.Seq[uint64] {
	events := g.EdgesInWindowDir(gID, dir, window)
	seen := make(map[uint64]struct{})

	return seq.Func[uint64](func() (uint64, bool) {
		for {
			e, ok := events.Next()
			if !ok {
				return 0, false
			}
			other := e.Dst
			if e.Dst == gID {
				other = e.Src
			}
			if _, dup := seen[other]; dup {
				continue
			}
			seen[other] = struct{}{}

			return other, true
		}
	})
}

// Neighbours returns the distinct neighbours of gID in direction dir, over
// all time.
func (g *Graph) Neighbours(gID uint64, dir Direction) seq.Seq[uint64] {
	return g.NeighboursInWindow(gID, dir, page.UnboundedWindow())
}

// DegreeInWindow counts gID's distinct neighbours in direction dir within
// window.
func (g *Graph) DegreeInWindow(gID uint64, dir Direction, window page.Window) int {
	return seq.Count(g.NeighboursInWindow(gID, dir, window))
}

// Degree counts gID's distinct neighbours in direction dir, over all time.
func (g *Graph) Degree(gID uint64, dir Direction) int {
	return g.DegreeInWindow(gID, dir, page.UnboundedWindow())
}

// HasEdgeInWindow reports whether any edge event from srcGID to dstGID
// falls within window.
func (g *Graph) HasEdgeInWindow(srcGID, dstGID uint64, window page.Window) bool {
	_, ok := g.EdgeInWindow(srcGID, dstGID, window)

	return ok
}

// HasEdge reports whether any edge event from srcGID to dstGID was ever
// recorded.
func (g *Graph) HasEdge(srcGID, dstGID uint64) bool {
	return g.HasEdgeInWindow(srcGID, dstGID, page.UnboundedWindow())
}

// EdgeInWindow returns the first (in chain order) edge event from srcGID to
// dstGID within window.
func (g *Graph) EdgeInWindow(srcGID, dstGID uint64, window page.Window) (EdgeEvent, bool) {
	events := g.EdgesInWindowDir(srcGID, Out, window)
	for {
		e, ok := events.Next()
		if !ok {
			return EdgeEvent{}, false
		}
		if e.Dst == dstGID {
			return e, true
		}
	}
}

// activityRange scans every event (vertex-only or edge) incident to logical
// within window and returns its earliest/latest timestamp.
func (g *Graph) activityRange(logical uint64, window page.Window) (earliest, latest int64, ok bool) {
	events := g.walkEvents(logical, Both, window)
	for {
		o, more := events.Next()
		if !more {
			break
		}
		if !ok || o.Entry.T < earliest {
			earliest = o.Entry.T
		}
		if !ok || o.Entry.T > latest {
			latest = o.Entry.T
		}
		ok = true
	}

	return earliest, latest, ok
}

// EarliestTimeInWindow returns gID's earliest recorded activity within
// window.
func (g *Graph) EarliestTimeInWindow(gID uint64, window page.Window) (int64, bool) {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return 0, false
	}
	earliest, _, found := g.activityRange(logical, window)

	return earliest, found
}

// LatestTimeInWindow returns gID's latest recorded activity within window.
func (g *Graph) LatestTimeInWindow(gID uint64, window page.Window) (int64, bool) {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return 0, false
	}
	_, latest, found := g.activityRange(logical, window)

	return latest, found
}

// EarliestTime returns gID's earliest recorded activity, over all time.
func (g *Graph) EarliestTime(gID uint64) (int64, bool) {
	return g.EarliestTimeInWindow(gID, page.UnboundedWindow())
}

// LatestTime returns gID's latest recorded activity, over all time.
func (g *Graph) LatestTime(gID uint64) (int64, bool) {
	return g.LatestTimeInWindow(gID, page.UnboundedWindow())
}

// HasVertexInWindow reports whether gID shows any activity within window,
// or (if includeStatic is set) has at least one static property recorded:
// static properties carry no timestamp and are treated as always present.
func (g *Graph) HasVertexInWindow(gID uint64, window page.Window, includeStatic bool) bool {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return false
	}
	events := g.walkEvents(logical, Both, window)
	if _, more := events.Next(); more {
		return true
	}
	if includeStatic {
		if ps, ok := g.existingVertexPropertyStore(logical); ok && ps.hasAnyStatic() {
			return true
		}
	}

	return false
}

// allGIDs returns a snapshot of every vertex's global id, in logical-id
// order.
func (g *Graph) allGIDs() []uint64 {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	out := make([]uint64, len(g.vertices))
	for i, rec := range g.vertices {
		out[i] = rec.gID
	}

	return out
}

// VertexIDsInWindow returns a lazy sequence of the global ids of every
// vertex with activity (or a static property, per includeStatic) within
// window. Producing the sequence is O(1); the id snapshot is taken on the
// first Next() and each vertex's window check runs as it is reached.
func (g *Graph) VertexIDsInWindow(window page.Window, includeStatic bool) seq.Seq[uint64] {
	var ids seq.Seq[uint64]
	snapshot := seq.Func[uint64](func() (uint64, bool) {
		if ids == nil {
			ids = seq.FromSlice(g.allGIDs())
		}

		return ids.Next()
	})

	return seq.Filter[uint64](snapshot, func(gid uint64) bool {
		return g.HasVertexInWindow(gid, window, includeStatic)
	})
}

// VerticesInWindow returns a lazy sequence of every vertex with activity
// within window.
func (g *Graph) VerticesInWindow(window page.Window, includeStatic bool) seq.Seq[Vertex] {
	return seq.Map(g.VertexIDsInWindow(window, includeStatic), func(gid uint64) Vertex {
		v, _ := g.Vertex(gid)

		return v
	})
}

// NumVerticesInWindow counts vertices with activity within window.
func (g *Graph) NumVerticesInWindow(window page.Window, includeStatic bool) int {
	return seq.Count(g.VertexIDsInWindow(window, includeStatic))
}

// NumEdgesInWindow counts raw edge events (not distinct neighbour pairs,
// and not deduplicated across parallel edges) within window, scanning only
// out-chains so each event is counted once. This reading of "num_edges"
// (event count, the quantity AddEdge actually produces one of per call)
// coincides with the sum of distinct-neighbour out-degrees only when there
// are no parallel edges.
func (g *Graph) NumEdgesInWindow(window page.Window) int {
	g.muIndex.RLock()
	heads := append([]page.Location(nil), g.adjHeads...)
	g.muIndex.RUnlock()

	total := 0
	for _, head := range heads {
		events := g.scanChain(head, window)
		for {
			e, ok := events.Next()
			if !ok {
				break
			}
			if !e.Triplet.IsVertexOnly() {
				total++
			}
		}
	}

	return total
}

// EdgesInWindow lazily yields every edge event recorded within window,
// scanning only out-chains so each event is yielded once.
func (g *Graph) EdgesInWindow(window page.Window) seq.Seq[EdgeEvent] {
	var heads []page.Location
	started := false
	idx := 0
	var current seq.Seq[EdgeEvent] = seq.Empty[EdgeEvent]()

	return seq.Func[EdgeEvent](func() (EdgeEvent, bool) {
		if !started {
			g.muIndex.RLock()
			heads = append([]page.Location(nil), g.adjHeads...)
			g.muIndex.RUnlock()
			started = true
		}
		for {
			if e, ok := current.Next(); ok {
				return e, true
			}
			if idx >= len(heads) {
				var zero EdgeEvent
				return zero, false
			}
			head := heads[idx]
			idx++
			filtered := seq.Filter(g.scanChain(head, window), func(e page.Entry) bool { return !e.Triplet.IsVertexOnly() })
			current = seq.Map(filtered, func(e page.Entry) EdgeEvent {
				t := e.Triplet

				return EdgeEvent{Src: g.gidOf(t.Vertex), Dst: g.gidOf(*t.Other), T: e.T, EdgeKey: *t.EdgeKey}
			})
		}
	})
}

// NumVertices returns the total number of vertices ever recorded.
func (g *Graph) NumVertices() int {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	return len(g.vertices)
}

// NumEdges returns the total number of edge events ever recorded.
func (g *Graph) NumEdges() int {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	return int(g.nextEdgeKey)
}

// existingVertexPropertyStore returns gID's property store without
// creating one, identified by its logical id.
func (g *Graph) existingVertexPropertyStore(logical uint64) (*propertyStore, bool) {
	g.muProps.RLock()
	defer g.muProps.RUnlock()

	ps, ok := g.vertexProps[logical]

	return ps, ok
}

// existingEdgePropertyStore returns the property store for a logical edge
// pair without creating one.
func (g *Graph) existingEdgePropertyStore(key edgeKey) (*propertyStore, bool) {
	g.muProps.RLock()
	defer g.muProps.RUnlock()

	ps, ok := g.edgeProps[key]

	return ps, ok
}

// VertexHasProperty reports whether gID has a property named name.
func (g *Graph) VertexHasProperty(gID uint64, name string, includeStatic bool) bool {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return false
	}
	ps, ok := g.existingVertexPropertyStore(logical)
	if !ok {
		return false
	}

	return ps.has(name, includeStatic)
}

// VertexProperty returns gID's most recent value for name.
func (g *Graph) VertexProperty(gID uint64, name string, includeStatic bool) (prop.Value, bool) {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return prop.Value{}, false
	}
	ps, ok := g.existingVertexPropertyStore(logical)
	if !ok {
		return prop.Value{}, false
	}

	return ps.latest(name, includeStatic)
}

// VertexPropertyHistory returns gID's temporal history for name within
// window.
func (g *Graph) VertexPropertyHistory(gID uint64, name string, window page.Window) seq.Seq[tcell.Point[prop.Value]] {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return seq.Empty[tcell.Point[prop.Value]]()
	}
	ps, ok := g.existingVertexPropertyStore(logical)
	if !ok {
		return seq.Empty[tcell.Point[prop.Value]]()
	}

	return ps.history(name, window)
}

// VertexPropertyHistories returns every temporal property's history on gID
// within window.
func (g *Graph) VertexPropertyHistories(gID uint64, window page.Window) map[string]seq.Seq[tcell.Point[prop.Value]] {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return nil
	}
	ps, ok := g.existingVertexPropertyStore(logical)
	if !ok {
		return nil
	}

	return ps.histories(window)
}

// VertexPropertyNames lists gID's property names.
func (g *Graph) VertexPropertyNames(gID uint64, includeStatic bool) []string {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return nil
	}
	ps, ok := g.existingVertexPropertyStore(logical)
	if !ok {
		return nil
	}

	return ps.names(includeStatic)
}

// EdgeHasProperty reports whether the (srcGID, dstGID) pair has a property
// named name.
func (g *Graph) EdgeHasProperty(srcGID, dstGID uint64, name string, includeStatic bool) bool {
	key, ok := g.edgeLogicalKey(srcGID, dstGID)
	if !ok {
		return false
	}
	ps, ok := g.existingEdgePropertyStore(key)
	if !ok {
		return false
	}

	return ps.has(name, includeStatic)
}

// EdgeProperty returns the (srcGID, dstGID) pair's most recent value for
// name.
func (g *Graph) EdgeProperty(srcGID, dstGID uint64, name string, includeStatic bool) (prop.Value, bool) {
	key, ok := g.edgeLogicalKey(srcGID, dstGID)
	if !ok {
		return prop.Value{}, false
	}
	ps, ok := g.existingEdgePropertyStore(key)
	if !ok {
		return prop.Value{}, false
	}

	return ps.latest(name, includeStatic)
}

// EdgePropertyHistory returns the (srcGID, dstGID) pair's temporal history
// for name within window.
func (g *Graph) EdgePropertyHistory(srcGID, dstGID uint64, name string, window page.Window) seq.Seq[tcell.Point[prop.Value]] {
	key, ok := g.edgeLogicalKey(srcGID, dstGID)
	if !ok {
		return seq.Empty[tcell.Point[prop.Value]]()
	}
	ps, ok := g.existingEdgePropertyStore(key)
	if !ok {
		return seq.Empty[tcell.Point[prop.Value]]()
	}

	return ps.history(name, window)
}

// EdgePropertyHistories returns every temporal property's history on the
// (srcGID, dstGID) pair within window.
func (g *Graph) EdgePropertyHistories(srcGID, dstGID uint64, window page.Window) map[string]seq.Seq[tcell.Point[prop.Value]] {
	key, ok := g.edgeLogicalKey(srcGID, dstGID)
	if !ok {
		return nil
	}
	ps, ok := g.existingEdgePropertyStore(key)
	if !ok {
		return nil
	}

	return ps.histories(window)
}

// GraphEarliestTimeInWindow returns the earliest key of the global temporal
// index that falls within window, i.e. the first recorded event of any
// kind. This is the graph-wide counterpart of EarliestTimeInWindow, which
// is scoped to a single vertex.
func (g *Graph) GraphEarliestTimeInWindow(window page.Window) (int64, bool) {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	i := sort.Search(len(g.tIndexKeys), func(i int) bool { return g.tIndexKeys[i] >= window.Start })
	if i < len(g.tIndexKeys) && g.tIndexKeys[i] < window.End {
		return g.tIndexKeys[i], true
	}

	return 0, false
}

// GraphLatestTimeInWindow returns the latest key of the global temporal
// index that falls within window.
func (g *Graph) GraphLatestTimeInWindow(window page.Window) (int64, bool) {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	i := sort.Search(len(g.tIndexKeys), func(i int) bool { return g.tIndexKeys[i] >= window.End })
	if i == 0 {
		return 0, false
	}
	if g.tIndexKeys[i-1] >= window.Start {
		return g.tIndexKeys[i-1], true
	}

	return 0, false
}

// VertexName returns gID's reserved _name static property, if set.
func (g *Graph) VertexName(gID uint64) (string, bool) {
	v, ok := g.VertexProperty(gID, NameProperty, true)
	if !ok {
		return "", false
	}

	return v.AsStr()
}
