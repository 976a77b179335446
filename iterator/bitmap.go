package iterator

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/seqgo/optional"
)

// Compile time check to ensure the bitmap adapter satisfies Iterator.
var _ Iterator[uint32] = (*bitmapIterator)(nil)

// FromBitmap returns an iterator over the set bits of bm in ascending order.
// The bitmap must not be mutated during iteration.
func FromBitmap(bm *roaring.Bitmap) Iterator[uint32] {
	return &bitmapIterator{it: bm.Iterator()}
}

type bitmapIterator struct {
	it roaring.IntPeekable
}

func (b *bitmapIterator) Next() optional.Optional[uint32] {
	if !b.it.HasNext() {
		return optional.None[uint32]()
	}
	return optional.Some(b.it.Next())
}
