package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/tgraph/page"
)

// Sentinel errors for the core package.
var (
	// ErrStaticPropertyRewrite indicates an attempt to overwrite a
	// write-once static property.
	ErrStaticPropertyRewrite = errors.New("core: static property already set")

	// ErrUnknownVertex indicates a static-property write (which carries no
	// timestamp to auto-create a vertex with) targeted a g_id the store has
	// never seen via AddVertex/AddEdge.
	ErrUnknownVertex = errors.New("core: unknown vertex")
)

// NameProperty is the reserved static-property name WindowedVertex.Name
// reads.
const NameProperty = "_name"

// Direction selects which adjacency chain(s) a traversal walks.
type Direction int

// The three traversal directions.
const (
	Out Direction = iota
	In
	Both
)

// Vertex is a read-only snapshot of one vertex's identity.
type Vertex struct {
	GID       uint64
	FirstSeen int64
}

// EdgeEvent is one (src, dst, t, edge key) adjacency event. Events are not
// deduplicated: two calls to AddEdge with the same endpoints at different
// t produce two EdgeEvents sharing no identity beyond their endpoints.
type EdgeEvent struct {
	Src     uint64
	Dst     uint64
	T       int64
	EdgeKey uint64
}

// vertexRecord is the internal, logical-id-indexed vertex record.
type vertexRecord struct {
	gID       uint64
	firstSeen int64
}

// edgeKey addresses an edge property store: shared across every parallel
// edge between the same ordered pair.
type edgeKey struct {
	src, dst uint64
}

// graphConfig holds GraphOption-configured construction parameters.
type graphConfig struct {
	pageSize int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

// WithPageSize overrides page.DefaultPageSize for this Graph's page
// manager. n <= 0 is ignored (the default is kept).
func WithPageSize(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// Graph is the temporal graph core: append-only, multi-reader, with
// exclusive access serialized per write. See doc.go for the locking model.
type Graph struct {
	muIndex sync.RWMutex

	pages page.Allocator

	gidToLogical map[uint64]uint64
	vertices     []vertexRecord

	adjHeads   []page.Location // out-chain heads, indexed by logical id
	adjTails   []page.Location // out-chain tails
	inAdjHeads []page.Location // in-chain heads (mirror, for InNeighbours)
	inAdjTails []page.Location // in-chain tails

	tIndexKeys []int64 // sorted, unique
	tIndex     map[int64][]page.Location

	nextEdgeKey uint64

	muProps     sync.RWMutex
	vertexProps map[uint64]*propertyStore  // keyed by logical id
	edgeProps   map[edgeKey]*propertyStore // keyed by (src,dst) logical pair
}

// New constructs an empty Graph.
func New(opts ...GraphOption) *Graph {
	cfg := graphConfig{pageSize: page.DefaultPageSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		pages:        page.NewManager(page.WithPageSize(cfg.pageSize)),
		gidToLogical: make(map[uint64]uint64),
		tIndex:       make(map[int64][]page.Location),
		vertexProps:  make(map[uint64]*propertyStore),
		edgeProps:    make(map[edgeKey]*propertyStore),
	}
}
