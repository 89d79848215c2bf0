package page

import "github.com/katalvlaran/tgraph/seq"

// entry is a (Triplet, t) observation stored in insertion order.
type entry struct {
	triplet Triplet
	t       int64
}

// Page is a fixed-capacity, append-only store of (Triplet, t) entries.
// Entries are NOT sorted by t; ordering is insertion order, and the page's
// own (tMin, tMax) range is enough for Scan to prune whole pages cheaply.
type Page struct {
	id       ID
	capacity int
	entries  []entry
	tMin     int64
	tMax     int64
	hasAny   bool
	overflow Location
}

// newPage allocates an empty page with the given id and capacity.
func newPage(id ID, capacity int) *Page {
	return &Page{id: id, capacity: capacity, entries: make([]entry, 0, capacity)}
}

// ID returns this page's identifier.
func (p *Page) ID() ID { return p.id }

// Full reports whether the page has no remaining capacity.
func (p *Page) Full() bool { return len(p.entries) >= p.capacity }

// Len reports the number of entries currently stored.
func (p *Page) Len() int { return len(p.entries) }

// TimeRange returns the page's observed (tMin, tMax); the second return is
// false if the page is empty.
func (p *Page) TimeRange() (lo, hi int64, ok bool) { return p.tMin, p.tMax, p.hasAny }

// Append stores (triplet, t) in the next free slot and returns its Slot
// index within the page. Returns ErrPageFull at capacity — callers
// (core.Graph) must consult Manager.FindNextFreePage first.
func (p *Page) Append(triplet Triplet, t int64) (uint16, error) {
	if p.Full() {
		return 0, ErrPageFull
	}
	slot := uint16(len(p.entries))
	p.entries = append(p.entries, entry{triplet: triplet, t: t})
	if !p.hasAny {
		p.tMin, p.tMax, p.hasAny = t, t, true
	} else {
		if t < p.tMin {
			p.tMin = t
		}
		if t > p.tMax {
			p.tMax = t
		}
	}

	return slot, nil
}

// Scan returns a lazy, insertion-order sequence of the entries whose t
// falls within window. If the page's (tMin, tMax) range is disjoint from
// window, an empty Seq is returned without touching the entry slice.
func (p *Page) Scan(window Window) seq.Seq[Entry] {
	if !p.hasAny || window.Disjoint(p.tMin, p.tMax) {
		return seq.Empty[Entry]()
	}
	i := 0

	return seq.Func[Entry](func() (Entry, bool) {
		for i < len(p.entries) {
			e := p.entries[i]
			slot := uint16(i)
			i++
			if window.Contains(e.t) {
				return Entry{Loc: Location{Page: p.id, Slot: slot}, Triplet: e.triplet, T: e.t}, true
			}
		}
		var zero Entry
		return zero, false
	})
}

// Overflow returns the Location of the next page in this page's chain, if
// any has been linked.
func (p *Page) Overflow() (Location, bool) {
	if p.overflow.IsZero() {
		return Location{}, false
	}

	return p.overflow, true
}

// setOverflow records loc as this page's overflow link. Called only by
// Manager, which holds the lock protecting the page pool.
func (p *Page) setOverflow(loc Location) { p.overflow = loc }
