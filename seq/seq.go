package seq

import "sync"

// Seq is a single-pass lazy sequence of T. Next returns the next element
// and true, or the zero value and false once the sequence is exhausted.
// Calling Next after it has returned false is undefined; implementations
// in this module simply keep returning (zero, false).
type Seq[T any] interface {
	Next() (T, bool)
}

// Func adapts a plain closure into a Seq.
type Func[T any] func() (T, bool)

// Next implements Seq.
func (f Func[T]) Next() (T, bool) { return f() }

// Empty returns a Seq that yields nothing.
func Empty[T any]() Seq[T] {
	return Func[T](func() (T, bool) {
		var zero T
		return zero, false
	})
}

// FromSlice returns a Seq that yields the elements of items in order.
// The slice is captured by the closure, not copied eagerly by Next.
func FromSlice[T any](items []T) Seq[T] {
	i := 0
	return Func[T](func() (T, bool) {
		if i >= len(items) {
			var zero T
			return zero, false
		}
		v := items[i]
		i++
		return v, true
	})
}

// Map lazily transforms every element a Seq[A] produces into a B, without
// materialising the source sequence. This is how nested sequences (e.g. a
// sequence of sequences) are built without intermediate allocation.
func Map[A, B any](src Seq[A], f func(A) B) Seq[B] {
	return Func[B](func() (B, bool) {
		a, ok := src.Next()
		if !ok {
			var zero B
			return zero, false
		}
		return f(a), true
	})
}

// Filter lazily skips elements for which keep returns false.
func Filter[T any](src Seq[T], keep func(T) bool) Seq[T] {
	return Func[T](func() (T, bool) {
		for {
			v, ok := src.Next()
			if !ok {
				var zero T
				return zero, false
			}
			if keep(v) {
				return v, true
			}
		}
	})
}

// Collect drains a Seq into a slice. Intended for tests and the CLI demo;
// library code should stay lazy and avoid Collect on hot paths.
func Collect[T any](src Seq[T]) []T {
	var out []T
	for {
		v, ok := src.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

// Concat yields every element of a, then every element of b.
func Concat[T any](a, b Seq[T]) Seq[T] {
	aDone := false

	return Func[T](func() (T, bool) {
		if !aDone {
			if v, ok := a.Next(); ok {
				return v, true
			}
			aDone = true
		}

		return b.Next()
	})
}

// Locked wraps src so each Next call is bracketed by l.Lock()/l.Unlock()
// (pass mu.RLocker() for a read lock). This bounds the critical section to
// a single step rather than the whole iteration, so a long-lived iterator
// never blocks concurrent writers.
func Locked[T any](l sync.Locker, src Seq[T]) Seq[T] {
	return Func[T](func() (T, bool) {
		l.Lock()
		defer l.Unlock()

		return src.Next()
	})
}

// Count drains a Seq, returning only how many elements it produced.
func Count[T any](src Seq[T]) int {
	n := 0
	for {
		_, ok := src.Next()
		if !ok {
			break
		}
		n++
	}

	return n
}
