package vector

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/seqgo/iterator"
	"github.com/hupe1980/seqgo/optional"
)

// Compile time checks to ensure the vector iterators satisfy the capability.
var (
	_ iterator.Iterator[int] = (*Iter[int])(nil)
	_ iterator.Iterator[int] = (*selectIter[int])(nil)
)

// Iter is an iterator over a vector's live elements in index order.
type Iter[T any] struct {
	vec *Vector[T]
	pos int
}

// Iter returns an iterator over the live elements in index order. The vector
// must not be mutated during iteration.
func (v *Vector[T]) Iter() *Iter[T] {
	return &Iter[T]{vec: v}
}

// Next returns the next element, or None once all elements have been
// produced. Exhaustion is terminal.
func (it *Iter[T]) Next() optional.Optional[T] {
	if it.pos >= len(it.vec.data) {
		return optional.None[T]()
	}
	v := it.vec.data[it.pos]
	it.pos++
	return optional.Some(v)
}

// Values returns a range-over-func sequence over the live elements in index
// order. The vector must not be mutated during iteration.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.data {
			if !yield(item) {
				return
			}
		}
	}
}

// Select returns an iterator over the elements whose indices are set in bm,
// in ascending index order. Set bits at or beyond Len() are skipped. Neither
// the vector nor the bitmap may be mutated during iteration.
func (v *Vector[T]) Select(bm *roaring.Bitmap) iterator.Iterator[T] {
	return &selectIter[T]{vec: v, indices: bm.Iterator()}
}

type selectIter[T any] struct {
	vec     *Vector[T]
	indices roaring.IntPeekable
}

func (it *selectIter[T]) Next() optional.Optional[T] {
	for it.indices.HasNext() {
		i := int(it.indices.Next())
		if i < len(it.vec.data) {
			return optional.Some(it.vec.data[i])
		}
	}
	return optional.None[T]()
}
