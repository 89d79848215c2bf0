package core

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/prop"
	"github.com/katalvlaran/tgraph/seq"
	"github.com/katalvlaran/tgraph/tcell"
)

// propertyStore holds one entity's (vertex or edge pair) property history:
// a name -> TimeCell map for temporal properties, and a name -> Value map
// for write-once static properties. It carries its own lock so the
// property writes themselves on disjoint entities do not contend with each
// other or with adjacency writes; locating or creating the store takes
// Graph's muProps (and resolving the vertex, muIndex) briefly.
type propertyStore struct {
	mu       sync.RWMutex
	temporal map[string]*tcell.TimeCell[prop.Value]
	static   map[string]prop.Value
}

func newPropertyStore() *propertyStore {
	return &propertyStore{
		temporal: make(map[string]*tcell.TimeCell[prop.Value]),
		static:   make(map[string]prop.Value),
	}
}

func (s *propertyStore) setTemporal(name string, t int64, v prop.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cell, ok := s.temporal[name]
	if !ok {
		cell = tcell.New[prop.Value]()
		s.temporal[name] = cell
	}
	cell.Set(t, v)
}

// setStatic writes name once. A second write to the same name is rejected
// with ErrStaticPropertyRewrite.
func (s *propertyStore) setStatic(name string, v prop.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.static[name]; exists {
		return fmt.Errorf("core: property %q: %w", name, ErrStaticPropertyRewrite)
	}
	s.static[name] = v

	return nil
}

func (s *propertyStore) has(name string, includeStatic bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.temporal[name]; ok {
		return true
	}
	if includeStatic {
		_, ok := s.static[name]
		return ok
	}

	return false
}

func (s *propertyStore) hasAnyStatic() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.static) > 0
}

// latest returns the most recent temporal value (at page.MaxTime), falling
// back to the static value when includeStatic is set and no temporal
// history exists.
func (s *propertyStore) latest(name string, includeStatic bool) (prop.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cell, ok := s.temporal[name]; ok {
		if v, ok2 := cell.LatestAt(page.MaxTime); ok2 {
			return v, true
		}
	}
	if includeStatic {
		if v, ok := s.static[name]; ok {
			return v, true
		}
	}

	var zero prop.Value
	return zero, false
}

// history returns the temporal history of name within window. Each Next
// call on the returned Seq takes s's read lock for just that step, rather
// than holding it across the whole iteration.
func (s *propertyStore) history(name string, window page.Window) seq.Seq[tcell.Point[prop.Value]] {
	s.mu.RLock()
	cell, ok := s.temporal[name]
	s.mu.RUnlock()
	if !ok {
		return seq.Empty[tcell.Point[prop.Value]]()
	}

	return seq.Locked[tcell.Point[prop.Value]](s.mu.RLocker(), cell.IterRange(window.Start, window.End))
}

// histories returns every temporal property's history within window.
func (s *propertyStore) histories(window page.Window) map[string]seq.Seq[tcell.Point[prop.Value]] {
	s.mu.RLock()
	names := make([]string, 0, len(s.temporal))
	cells := make(map[string]*tcell.TimeCell[prop.Value], len(s.temporal))
	for name, cell := range s.temporal {
		names = append(names, name)
		cells[name] = cell
	}
	s.mu.RUnlock()

	out := make(map[string]seq.Seq[tcell.Point[prop.Value]], len(names))
	for _, name := range names {
		out[name] = seq.Locked[tcell.Point[prop.Value]](s.mu.RLocker(), cells[name].IterRange(window.Start, window.End))
	}

	return out
}

func (s *propertyStore) names(includeStatic bool) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.temporal)+len(s.static))
	for name := range s.temporal {
		out = append(out, name)
	}
	if includeStatic {
		for name := range s.static {
			if _, ok := s.temporal[name]; !ok {
				out = append(out, name)
			}
		}
	}

	return out
}
