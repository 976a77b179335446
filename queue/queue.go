// Package queue provides a generic priority queue built on container/heap.
//
// Draining a queue yields an iterator over its elements in priority order,
// making the queue a concrete conformer of the iterator capability.
package queue

import (
	"container/heap"

	"github.com/hupe1980/seqgo/iterator"
	"github.com/hupe1980/seqgo/optional"
)

// Compile time checks to ensure the inner heap satisfies the heap interface
// and the drain iterator satisfies the iterator capability.
var (
	_ heap.Interface         = (*items[int])(nil)
	_ iterator.Iterator[int] = (*drainIter[int])(nil)
)

// Priority is a priority queue ordered by a user-supplied less function.
// The element for which less reports true against all others is popped first.
type Priority[T any] struct {
	h *items[T]
}

// New returns an empty priority queue ordered by less.
func New[T any](less func(a, b T) bool) *Priority[T] {
	return &Priority[T]{h: &items[T]{less: less}}
}

// Len returns the number of queued elements.
func (q *Priority[T]) Len() int { return len(q.h.elems) }

// Push adds item to the queue.
func (q *Priority[T]) Push(item T) {
	heap.Push(q.h, item)
}

// Pop removes and returns the highest-priority element, or None if the
// queue is empty.
func (q *Priority[T]) Pop() optional.Optional[T] {
	if len(q.h.elems) == 0 {
		return optional.None[T]()
	}
	v, _ := heap.Pop(q.h).(T)
	return optional.Some(v)
}

// Peek returns the highest-priority element without removing it, or None if
// the queue is empty.
func (q *Priority[T]) Peek() optional.Optional[T] {
	if len(q.h.elems) == 0 {
		return optional.None[T]()
	}
	return optional.Some(q.h.elems[0])
}

// Drain returns an iterator that pops elements in priority order until the
// queue is empty. Draining consumes the queue; elements pushed while a drain
// is in progress are yielded in their priority position.
func (q *Priority[T]) Drain() iterator.Iterator[T] {
	return &drainIter[T]{q: q}
}

type drainIter[T any] struct {
	q *Priority[T]
}

func (it *drainIter[T]) Next() optional.Optional[T] {
	return it.q.Pop()
}

// items implements heap.Interface over a slice of T.
type items[T any] struct {
	elems []T
	less  func(a, b T) bool
}

func (h *items[T]) Len() int { return len(h.elems) }

func (h *items[T]) Less(i, j int) bool { return h.less(h.elems[i], h.elems[j]) }

func (h *items[T]) Swap(i, j int) { h.elems[i], h.elems[j] = h.elems[j], h.elems[i] }

func (h *items[T]) Push(x any) {
	v, _ := x.(T)
	h.elems = append(h.elems, v)
}

func (h *items[T]) Pop() any {
	old := h.elems
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // release the slot
	h.elems = old[:n-1]
	return item
}
