// Package core implements the temporal graph core: the vertex table, the
// per-vertex adjacency head/tail tables, and the property stores built on
// tcell.TimeCell. It routes adjacency writes through the page package and
// property writes through tcell.
//
// Graph uses two independent sync.RWMutex locks, one per concern rather
// than a single global lock:
// muIndex guards the vertex/adjacency indices (gidToLogical, the chain
// head/tail tables, the temporal index), and muProps guards the property
// store maps; each property store also carries its own lock, so the
// property write itself does not wait on adjacency writes (resolving or
// creating the target vertex and its store still takes muIndex and muProps
// briefly). A write that must touch both locks the page manager
// (which carries its own lock) while holding muIndex, never the reverse —
// that fixed order is the whole deadlock-avoidance story.
//
// Reads never hold muIndex across an iteration: a Seq's Next only takes a
// lock for the single step it needs (reading a chain head, fetching and
// scanning a page), so a long-lived iterator never blocks concurrent
// writers.
package core
