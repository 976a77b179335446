package iterator

import (
	"iter"

	"github.com/hupe1980/seqgo/optional"
)

// Compile time checks to ensure the adapters satisfy Iterator.
var (
	_ Iterator[int]    = (*sliceIterator[int])(nil)
	_ Iterator[string] = (*mapIterator[int, string])(nil)
	_ Iterator[int]    = (*filterIterator[int])(nil)
	_ Iterator[int]    = (*takeIterator[int])(nil)
	_ Iterator[int]    = (*seqIterator[int])(nil)
)

// FromSlice returns an iterator over the elements of items in index order.
// The slice is not copied; it must not be mutated during iteration.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items: items}
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) Next() optional.Optional[T] {
	if it.pos >= len(it.items) {
		return optional.None[T]()
	}
	v := it.items[it.pos]
	it.pos++
	return optional.Some(v)
}

// Map returns a lazy iterator applying fn to each element of it.
func Map[T, U any](it Iterator[T], fn func(T) U) Iterator[U] {
	return &mapIterator[T, U]{inner: it, fn: fn}
}

type mapIterator[T, U any] struct {
	inner Iterator[T]
	fn    func(T) U
}

func (it *mapIterator[T, U]) Next() optional.Optional[U] {
	return optional.Map(it.inner.Next(), it.fn)
}

// Filter returns a lazy iterator yielding only the elements of it for which
// pred returns true.
func Filter[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return &filterIterator[T]{inner: it, pred: pred}
}

type filterIterator[T any] struct {
	inner Iterator[T]
	pred  func(T) bool
}

func (it *filterIterator[T]) Next() optional.Optional[T] {
	for {
		v, ok := it.inner.Next().Get()
		if !ok {
			return optional.None[T]()
		}
		if it.pred(v) {
			return optional.Some(v)
		}
	}
}

// Take returns a lazy iterator yielding at most n elements of it.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	return &takeIterator[T]{inner: it, remaining: n}
}

type takeIterator[T any] struct {
	inner     Iterator[T]
	remaining int
}

func (it *takeIterator[T]) Next() optional.Optional[T] {
	if it.remaining <= 0 {
		return optional.None[T]()
	}
	it.remaining--
	return it.inner.Next()
}

// ToSeq bridges an Iterator to a Go range-over-func sequence. The returned
// sequence is single-use: it consumes the underlying iterator.
func ToSeq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromSeq bridges a Go range-over-func sequence to an Iterator.
//
// The sequence is pulled lazily. The pull is released once the iterator
// observes exhaustion; an iterator abandoned before exhaustion holds the
// pull until garbage collection.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &seqIterator[T]{next: next, stop: stop}
}

type seqIterator[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (it *seqIterator[T]) Next() optional.Optional[T] {
	if it.done {
		return optional.None[T]()
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		it.stop()
		return optional.None[T]()
	}
	return optional.Some(v)
}
