package page

import (
	"sync"

	"github.com/katalvlaran/tgraph/seq"
)

// DefaultPageSize is the default fixed capacity of a page, in entries.
// Small fixed sizes suit unit tests; real deployments tune it via
// WithPageSize.
const DefaultPageSize = 64

// Allocator is the page-pool contract core.Graph writes against. Manager
// is the only implementation today; the interface is a seam so an
// on-disk or mmap-backed allocator can be swapped in later without
// touching the graph core.
type Allocator interface {
	FindNextFreePage(tail Location) (Location, error)
	GetPage(loc Location) (*Page, error)
	WalkChain(head Location) seq.Seq[Location]
}

// ManagerOption configures a Manager at construction time.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	pageSize int
}

// WithPageSize overrides DefaultPageSize. Panics-free: n <= 0 is ignored.
func WithPageSize(n int) ManagerOption {
	return func(c *managerConfig) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// Manager owns a pool of fixed-capacity pages and resolves allocation and
// chain-walking requests against it. Its lock is independent of any lock
// held by core.Graph; callers that need both must respect a fixed lock
// order (documented in core) to avoid deadlock.
type Manager struct {
	mu       sync.RWMutex
	pageSize int
	pages    []*Page
}

var _ Allocator = (*Manager)(nil)

// NewManager constructs an empty Manager.
func NewManager(opts ...ManagerOption) *Manager {
	cfg := managerConfig{pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Manager{pageSize: cfg.pageSize}
}

// PageSize reports the fixed capacity new pages are allocated with.
func (m *Manager) PageSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.pageSize
}

// FindNextFreePage returns a Location with free capacity to append into.
// If tail is the zero Location, a fresh page is allocated and returned. If
// tail refers to a page that still has room, the Location of tail's page
// (Slot zero) is returned.
// Otherwise a fresh page is allocated and linked as tail's overflow.
func (m *Manager) FindNextFreePage(tail Location) (Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tail.IsZero() {
		return m.allocateLocked(), nil
	}
	tailPage, err := m.getPageLocked(tail.Page)
	if err != nil {
		return Location{}, err
	}
	if !tailPage.Full() {
		return Location{Page: tail.Page}, nil
	}
	next := m.allocateLocked()
	tailPage.setOverflow(next)

	return next, nil
}

// GetPage returns the page identified by loc.Page. Holding the returned
// pointer and calling its methods concurrently with other mutators of the
// same page is the caller's responsibility to serialize — core.Graph does
// so by holding its own write lock across the whole append.
func (m *Manager) GetPage(loc Location) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.getPageLocked(loc.Page)
}

// WalkChain returns a lazy sequence yielding head, then its overflow, and
// so on until a page with no overflow link is reached.
func (m *Manager) WalkChain(head Location) seq.Seq[Location] {
	if head.IsZero() {
		return seq.Empty[Location]()
	}
	next := head
	done := false

	return seq.Func[Location](func() (Location, bool) {
		if done {
			return Location{}, false
		}
		cur := next
		pg, err := m.GetPage(cur)
		if err != nil {
			done = true
			return Location{}, false
		}
		if ov, ok := pg.Overflow(); ok {
			next = ov
		} else {
			done = true
		}

		return cur, true
	})
}

func (m *Manager) allocateLocked() Location {
	id := ID(len(m.pages) + 1)
	m.pages = append(m.pages, newPage(id, m.pageSize))

	return Location{Page: id}
}

func (m *Manager) getPageLocked(id ID) (*Page, error) {
	if id == 0 || int(id) > len(m.pages) {
		return nil, ErrPageNotFound
	}

	return m.pages[id-1], nil
}
