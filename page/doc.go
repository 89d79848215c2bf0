// Package page implements the fixed-capacity adjacency page and the page
// manager that allocates and chains them.
//
// A Page holds up to PageSize (Triplet, t) entries in insertion order,
// along with the (tMin, tMax) range it has observed, which lets Scan skip
// a whole page when the requested window is disjoint from it. A Manager
// owns a pool of pages and resolves "give me somewhere to write" requests
// (FindNextFreePage) by reusing the current chain tail if it still has
// room, or allocating and linking a fresh overflow page otherwise.
//
// Manager is expressed as an interface (Allocator) with *Manager as the
// only implementation — the one seam in this module where an interface
// sits in front of a single concrete type, so the allocator can be swapped
// for an on-disk or mmap-backed one later without touching core.Graph.
package page
