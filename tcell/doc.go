// Package tcell implements the Time-Cell: a sparse, ordered map from an
// int64 timestamp to a value, supporting range scans and "latest at time t"
// lookups. Property histories are sparse and read by range, so a sorted
// slice with binary-search insertion is the right contract — a sorted
// slice scanned with sort.Search substitutes for an ordered-tree map,
// since no available library ships an ordered-map container.
//
// TimeCell is not itself lockable; callers (core.propertyStore) own the
// lock, the same way core.Graph locks its vertex/edge maps rather than
// pushing a mutex into every Vertex.
package tcell
