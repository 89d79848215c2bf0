// Package seq defines the single iterator abstraction shared by every other
// package in this module: a type-erased, single-pass, send-safe lazy
// sequence of a ground type.
//
// A Seq is produced in O(1) — it closes over whatever state it needs but
// does no work until Next is called — and it is restartable only by
// re-deriving it from its source (a TimeCell, a Page, a WindowedVertex, …).
// Because a Seq value is just an interface wrapping a closure, handing one
// to another goroutine is safe as long as the closure's captured state is
// itself safe for that; producers in this module take their lock, if any,
// inside Next rather than across the whole iteration, so a long iteration
// never blocks a writer indefinitely.
package seq
