package page

import "errors"

// Sentinel errors for the page package.
var (
	// ErrPageNotFound indicates a Location referred to an unallocated page.
	// This is a programmer error (a corrupted Location) and is surfaced,
	// never swallowed.
	ErrPageNotFound = errors.New("page: page not found")

	// ErrPageFull indicates Append was called on a page already at
	// capacity. This must never escape core.Graph's write path: the graph
	// core is required to consult Manager.FindNextFreePage first.
	ErrPageFull = errors.New("page: page is full")
)

// ID identifies a page within a Manager. IDs are 1-based; the zero ID
// never denotes an allocated page, which lets Location's zero value mean
// "no location" without a separate boolean flag.
type ID uint32

// Location is an opaque handle identifying either a page (Slot ignored) —
// as used for adjacency-chain heads and chain links — or a specific entry
// within a page (Page and Slot both meaningful) — as used in the temporal
// index and in values yielded by Scan.
type Location struct {
	Page ID
	Slot uint16
}

// IsZero reports whether l is the zero Location, i.e. "no page/entry".
func (l Location) IsZero() bool { return l.Page == 0 }

// Triplet is the payload stored in a page entry: a vertex-only triplet
// (Other == nil) records vertex activity at t; a full triplet (Other and
// EdgeKey both set) records a directed adjacency event.
type Triplet struct {
	Vertex  uint64
	Other   *uint64
	EdgeKey *uint64
}

// VertexTriplet builds a vertex-only Triplet recording activity of v.
func VertexTriplet(v uint64) Triplet {
	return Triplet{Vertex: v}
}

// EdgeTriplet builds a full Triplet recording a directed adjacency event
// from the page-owning vertex to other, carrying edgeKey.
func EdgeTriplet(owner, other, edgeKey uint64) Triplet {
	o, k := other, edgeKey

	return Triplet{Vertex: owner, Other: &o, EdgeKey: &k}
}

// IsVertexOnly reports whether t records plain vertex activity rather than
// an adjacency event.
func (t Triplet) IsVertexOnly() bool { return t.Other == nil }

// Entry is one stored (Triplet, t) observation, addressed by its Location.
type Entry struct {
	Loc     Location
	Triplet Triplet
	T       int64
}

// Window is a half-open time interval [Start, End). Use the package-level
// MinTime/MaxTime sentinels for "unbounded".
type Window struct {
	Start int64
	End   int64
}

// MinTime/MaxTime stand in for an unbounded window endpoint.
const (
	MinTime = int64(-1) << 63
	MaxTime = int64(1<<63 - 1)
)

// UnboundedWindow is the window covering all representable timestamps.
func UnboundedWindow() Window { return Window{Start: MinTime, End: MaxTime} }

// Contains reports whether t falls within the half-open window.
func (w Window) Contains(t int64) bool { return t >= w.Start && t < w.End }

// Disjoint reports whether w shares no timestamp with [lo, hi] inclusive
// (the (tMin, tMax) range a page reports). An empty window (Start >= End)
// is disjoint from everything.
func (w Window) Disjoint(lo, hi int64) bool {
	if w.Start >= w.End {
		return true
	}

	return hi < w.Start || lo >= w.End
}

// Intersect returns the window [max(a.Start,b.Start), min(a.End,b.End)),
// the narrowing rule every windowed view composes with.
func Intersect(a, b Window) Window {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}

	return Window{Start: start, End: end}
}
