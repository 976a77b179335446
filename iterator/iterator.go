// Package iterator defines the Iterator capability: a polymorphic contract
// over "produce the next element or signal exhaustion".
//
// Any type with a Next method yielding optional.Optional[T] conforms. The
// package provides generic consumers (Count, Collect, Find, ForEach) written
// purely in terms of Next, so every conformer gets them for free, plus lazy
// adapters (Map, Filter, Take) and bridges to Go range-over-func sequences.
package iterator

import (
	"github.com/hupe1980/seqgo/optional"
)

// Iterator produces a sequence of elements one at a time.
//
// Next yields Some(v) for each element in order, then None once the sequence
// is exhausted. Exhaustion is terminal: after the first None, every further
// call returns None unless the concrete type documents otherwise. Next
// mutates the iterator's position; a fresh traversal requires a fresh
// iterator.
type Iterator[T any] interface {
	Next() optional.Optional[T]
}

// Count consumes the remaining sequence and returns the number of elements
// produced. On an already-exhausted iterator it returns 0.
func Count[T any](it Iterator[T]) int {
	n := 0
	for it.Next().IsSome() {
		n++
	}
	return n
}

// Collect consumes the remaining sequence into a slice, preserving order.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for {
		v, ok := it.Next().Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ForEach consumes the remaining sequence, invoking fn once per element.
func ForEach[T any](it Iterator[T], fn func(T)) {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return
		}
		fn(v)
	}
}

// Find advances the iterator until pred matches and returns the matching
// element, or None if the sequence is exhausted first. Elements after the
// match are not visited.
func Find[T any](it Iterator[T], pred func(T) bool) optional.Optional[T] {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return optional.None[T]()
		}
		if pred(v) {
			return optional.Some(v)
		}
	}
}

// Any reports whether pred matches any remaining element, short-circuiting
// on the first match.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	return Find(it, pred).IsSome()
}
