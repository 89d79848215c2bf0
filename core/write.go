package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/prop"
)

// resolveOrCreate returns the logical id for gID, creating a new vertex
// record and chain slots if gID has never been seen. Callers must hold
// muIndex for writing.
func (g *Graph) resolveOrCreate(gID uint64, t int64) uint64 {
	if logical, ok := g.gidToLogical[gID]; ok {
		if t < g.vertices[logical].firstSeen {
			g.vertices[logical].firstSeen = t
		}

		return logical
	}

	logical := uint64(len(g.vertices))
	g.vertices = append(g.vertices, vertexRecord{gID: gID, firstSeen: t})
	g.gidToLogical[gID] = logical
	g.adjHeads = append(g.adjHeads, page.Location{})
	g.adjTails = append(g.adjTails, page.Location{})
	g.inAdjHeads = append(g.inAdjHeads, page.Location{})
	g.inAdjTails = append(g.inAdjTails, page.Location{})

	return logical
}

// appendChain appends triplet at t into the chain owned by logical,
// allocating a fresh page (and linking it as overflow) when the current
// tail is full, and updating heads/tails in place. It returns the entry
// Location (Page and Slot both meaningful) for temporal indexing. heads and
// tails must always be one of (g.adjHeads, g.adjTails) or (g.inAdjHeads,
// g.inAdjTails); callers must hold muIndex for writing.
func (g *Graph) appendChain(heads, tails []page.Location, logical uint64, triplet page.Triplet, t int64) (page.Location, error) {
	tail := tails[logical]
	loc, err := g.pages.FindNextFreePage(tail)
	if err != nil {
		return page.Location{}, err
	}
	pg, err := g.pages.GetPage(loc)
	if err != nil {
		return page.Location{}, err
	}
	slot, err := pg.Append(triplet, t)
	if err != nil {
		return page.Location{}, err
	}

	if heads[logical].IsZero() {
		heads[logical] = page.Location{Page: loc.Page}
	}
	tails[logical] = page.Location{Page: loc.Page}

	return page.Location{Page: loc.Page, Slot: slot}, nil
}

// indexLocked records loc under timestamp t in the global temporal index,
// keeping tIndexKeys sorted and unique. Callers must hold muIndex for
// writing.
func (g *Graph) indexLocked(t int64, loc page.Location) {
	if _, ok := g.tIndex[t]; !ok {
		i := sort.Search(len(g.tIndexKeys), func(i int) bool { return g.tIndexKeys[i] >= t })
		g.tIndexKeys = append(g.tIndexKeys, 0)
		copy(g.tIndexKeys[i+1:], g.tIndexKeys[i:])
		g.tIndexKeys[i] = t
	}
	g.tIndex[t] = append(g.tIndex[t], loc)
}

// AddVertex records gID as active at t, creating it if this is the first
// time gID has been seen. t need not be greater than previously recorded
// timestamps for gID — out-of-order ingestion is expected.
func (g *Graph) AddVertex(gID uint64, t int64) error {
	g.muIndex.Lock()
	defer g.muIndex.Unlock()

	logical := g.resolveOrCreate(gID, t)
	loc, err := g.appendChain(g.adjHeads, g.adjTails, logical, page.VertexTriplet(logical), t)
	if err != nil {
		return fmt.Errorf("core: add vertex %d at t=%d: %w", gID, t, err)
	}
	g.indexLocked(t, loc)

	return nil
}

// AddEdge records a directed edge from srcGID to dstGID at t, auto-creating
// either endpoint that has not been seen before. Every call creates a new
// edge event: parallel edges between the same pair are never merged, each
// getting its own EdgeKey.
func (g *Graph) AddEdge(srcGID, dstGID uint64, t int64) (EdgeEvent, error) {
	g.muIndex.Lock()
	defer g.muIndex.Unlock()

	srcLogical := g.resolveOrCreate(srcGID, t)
	dstLogical := g.resolveOrCreate(dstGID, t)

	key := g.nextEdgeKey
	g.nextEdgeKey++

	outLoc, err := g.appendChain(g.adjHeads, g.adjTails, srcLogical, page.EdgeTriplet(srcLogical, dstLogical, key), t)
	if err != nil {
		return EdgeEvent{}, fmt.Errorf("core: add edge %d->%d at t=%d: %w", srcGID, dstGID, t, err)
	}
	g.indexLocked(t, outLoc)

	inLoc, err := g.appendChain(g.inAdjHeads, g.inAdjTails, dstLogical, page.EdgeTriplet(dstLogical, srcLogical, key), t)
	if err != nil {
		return EdgeEvent{}, fmt.Errorf("core: add edge %d->%d at t=%d (mirror): %w", srcGID, dstGID, t, err)
	}
	g.indexLocked(t, inLoc)

	return EdgeEvent{Src: srcGID, Dst: dstGID, T: t, EdgeKey: key}, nil
}

// logicalOf returns gID's logical id, if gID has been seen.
func (g *Graph) logicalOf(gID uint64) (uint64, bool) {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	logical, ok := g.gidToLogical[gID]

	return logical, ok
}

// vertexPropertyStoreFor returns (creating if necessary) the property store
// for the vertex addressed by logical.
func (g *Graph) vertexPropertyStoreFor(logical uint64) *propertyStore {
	g.muProps.Lock()
	defer g.muProps.Unlock()

	ps, ok := g.vertexProps[logical]
	if !ok {
		ps = newPropertyStore()
		g.vertexProps[logical] = ps
	}

	return ps
}

// edgePropertyStoreFor returns (creating if necessary) the property store
// shared by every parallel edge between the logical pair in key.
func (g *Graph) edgePropertyStoreFor(key edgeKey) *propertyStore {
	g.muProps.Lock()
	defer g.muProps.Unlock()

	ps, ok := g.edgeProps[key]
	if !ok {
		ps = newPropertyStore()
		g.edgeProps[key] = ps
	}

	return ps
}

// AddVertexProperties writes temporal properties on gID at t, auto-creating
// gID if it has not been seen before.
func (g *Graph) AddVertexProperties(gID uint64, t int64, props map[string]prop.Value) error {
	g.muIndex.Lock()
	logical := g.resolveOrCreate(gID, t)
	g.muIndex.Unlock()

	ps := g.vertexPropertyStoreFor(logical)
	for name, v := range props {
		ps.setTemporal(name, t, v)
	}

	return nil
}

// AddStaticVertexProperties writes write-once static properties on gID.
// Unlike temporal writes, a static write carries no timestamp to
// auto-create a vertex with, so gID must already exist: this returns
// ErrUnknownVertex otherwise. A name already written statically returns
// ErrStaticPropertyRewrite.
func (g *Graph) AddStaticVertexProperties(gID uint64, props map[string]prop.Value) error {
	logical, ok := g.logicalOf(gID)
	if !ok {
		return fmt.Errorf("core: static properties for vertex %d: %w", gID, ErrUnknownVertex)
	}

	ps := g.vertexPropertyStoreFor(logical)
	for name, v := range props {
		if err := ps.setStatic(name, v); err != nil {
			return err
		}
	}

	return nil
}

// AddEdgeProperties writes temporal properties on the (srcGID, dstGID)
// pair at t, auto-creating either endpoint if needed. The property store is
// keyed by the logical pair, not by a specific EdgeKey, so it is shared by
// every parallel edge between the two vertices.
func (g *Graph) AddEdgeProperties(srcGID, dstGID uint64, t int64, props map[string]prop.Value) error {
	g.muIndex.Lock()
	srcLogical := g.resolveOrCreate(srcGID, t)
	dstLogical := g.resolveOrCreate(dstGID, t)
	g.muIndex.Unlock()

	ps := g.edgePropertyStoreFor(edgeKey{src: srcLogical, dst: dstLogical})
	for name, v := range props {
		ps.setTemporal(name, t, v)
	}

	return nil
}

// AddStaticEdgeProperties writes write-once static properties on the
// (srcGID, dstGID) pair. Both endpoints must already exist; returns
// ErrUnknownVertex otherwise, for the same reason as
// AddStaticVertexProperties.
func (g *Graph) AddStaticEdgeProperties(srcGID, dstGID uint64, props map[string]prop.Value) error {
	key, ok := g.edgeLogicalKey(srcGID, dstGID)
	if !ok {
		return fmt.Errorf("core: static properties for edge %d->%d: %w", srcGID, dstGID, ErrUnknownVertex)
	}

	ps := g.edgePropertyStoreFor(key)
	for name, v := range props {
		if err := ps.setStatic(name, v); err != nil {
			return err
		}
	}

	return nil
}

// edgeLogicalKey resolves both endpoints to logical ids, failing if either
// is unknown.
func (g *Graph) edgeLogicalKey(srcGID, dstGID uint64) (edgeKey, bool) {
	srcLogical, ok := g.logicalOf(srcGID)
	if !ok {
		return edgeKey{}, false
	}
	dstLogical, ok := g.logicalOf(dstGID)
	if !ok {
		return edgeKey{}, false
	}

	return edgeKey{src: srcLogical, dst: dstLogical}, true
}
