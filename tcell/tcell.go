package tcell

import (
	"sort"

	"github.com/katalvlaran/tgraph/seq"
)

// Point is one (t, v) observation yielded by IterRange.
type Point[V any] struct {
	T int64
	V V
}

// TimeCell is a sorted, sparse t -> V map. The zero value is ready to use.
type TimeCell[V any] struct {
	entries []Point[V]
}

// New returns an empty TimeCell.
func New[V any]() *TimeCell[V] {
	return &TimeCell[V]{}
}

// search returns the index of t if present, and whether it was found.
// Complexity: O(log n).
func (c *TimeCell[V]) search(t int64) (int, bool) {
	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].T >= t })
	if i < len(c.entries) && c.entries[i].T == t {
		return i, true
	}

	return i, false
}

// Set inserts or overwrites the value at t. If t is already present its
// value is replaced in place; otherwise a new entry is inserted keeping
// entries sorted by T, so out-of-order arrivals land in sorted position
// regardless of insertion order.
// Complexity: O(log n) to locate, O(n) worst case to shift on insert.
func (c *TimeCell[V]) Set(t int64, v V) {
	i, found := c.search(t)
	if found {
		c.entries[i].V = v
		return
	}
	c.entries = append(c.entries, Point[V]{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = Point[V]{T: t, V: v}
}

// IterRange returns a lazy, ascending sequence of (t, v) with tStart <= t <
// tEnd. Use math.MinInt64/math.MaxInt64 (or the sentinels used elsewhere in
// this module) for an unbounded side.
// Producing the Seq is O(1); the first Next locates tStart in O(log n), and
// iterating the whole range is O(log n + k).
func (c *TimeCell[V]) IterRange(tStart, tEnd int64) seq.Seq[Point[V]] {
	if tStart >= tEnd {
		return seq.Empty[Point[V]]()
	}
	i := -1

	return seq.Func[Point[V]](func() (Point[V], bool) {
		if i < 0 {
			i, _ = c.search(tStart)
		}
		if i >= len(c.entries) || c.entries[i].T >= tEnd {
			var zero Point[V]
			return zero, false
		}
		p := c.entries[i]
		i++

		return p, true
	})
}

// LatestAt returns the value with the greatest key <= t, if any.
// Complexity: O(log n).
func (c *TimeCell[V]) LatestAt(t int64) (V, bool) {
	i, found := c.search(t)
	if found {
		return c.entries[i].V, true
	}
	// i is the first entry with T > t (or len(entries)); the candidate is
	// the one just before it, if it exists.
	if i == 0 {
		var zero V
		return zero, false
	}

	return c.entries[i-1].V, true
}

// Len reports the number of distinct timestamps stored.
func (c *TimeCell[V]) Len() int { return len(c.entries) }

// IsEmpty reports whether the cell holds no entries.
func (c *TimeCell[V]) IsEmpty() bool { return len(c.entries) == 0 }
