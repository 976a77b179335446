package iterator

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/seqgo/optional"
	"github.com/stretchr/testify/assert"
)

func TestFromSlice_Order(t *testing.T) {
	it := FromSlice([]int{10, 20, 30})
	assert.Equal(t, optional.Some(10), it.Next())
	assert.Equal(t, optional.Some(20), it.Next())
	assert.Equal(t, optional.Some(30), it.Next())
	assert.True(t, it.Next().IsNone())
	// None is terminal.
	assert.True(t, it.Next().IsNone())
}

func TestMap_Lazy(t *testing.T) {
	calls := 0
	it := Map(FromSlice([]int{1, 2, 3}), func(x int) int {
		calls++
		return x * 10
	})

	assert.Equal(t, 0, calls, "Map must not evaluate eagerly")
	assert.Equal(t, optional.Some(10), it.Next())
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{20, 30}, Collect(it))
}

func TestFilter(t *testing.T) {
	even := Filter(FromSlice([]int{1, 2, 3, 4, 5, 6}), func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, Collect(even))

	none := Filter(FromSlice([]int{1, 3}), func(x int) bool { return x%2 == 0 })
	assert.True(t, none.Next().IsNone())
}

func TestTake(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Collect(Take(FromSlice([]int{1, 2, 3}), 2)))
	assert.Equal(t, []int{1, 2, 3}, Collect(Take(FromSlice([]int{1, 2, 3}), 10)))
	assert.Empty(t, Collect(Take(FromSlice([]int{1, 2, 3}), 0)))
}

func TestTake_DoesNotOverConsume(t *testing.T) {
	inner := FromSlice([]int{1, 2, 3, 4})
	assert.Equal(t, 2, Count(Take(inner, 2)))
	// The untaken elements are still available on the inner iterator.
	assert.Equal(t, []int{3, 4}, Collect(inner))
}

func TestToSeq(t *testing.T) {
	var got []int
	for v := range ToSeq(FromSlice([]int{1, 2, 3})) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestToSeq_EarlyBreak(t *testing.T) {
	it := FromSlice([]int{1, 2, 3, 4})
	for v := range ToSeq[int](it) {
		if v == 2 {
			break
		}
	}
	// Breaking the range leaves the iterator at the next element.
	assert.Equal(t, optional.Some(3), it.Next())
}

func TestFromSeq(t *testing.T) {
	seq := func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
	}

	it := FromSeq[int](seq)
	assert.Equal(t, []int{1, 2, 3}, Collect(it))
	assert.True(t, it.Next().IsNone())
}

func TestFromSeq_Count(t *testing.T) {
	seq := func(yield func(string) bool) {
		yield("a")
	}
	assert.Equal(t, 1, Count(FromSeq[string](seq)))
}

func TestFromBitmap(t *testing.T) {
	bm := roaring.BitmapOf(5, 1, 1000000, 42)

	// Set bits come out in ascending order.
	assert.Equal(t, []uint32{1, 5, 42, 1000000}, Collect(FromBitmap(bm)))
}

func TestFromBitmap_Count(t *testing.T) {
	bm := roaring.New()
	assert.Equal(t, 0, Count(FromBitmap(bm)))

	bm.AddRange(0, 100)
	assert.Equal(t, 100, Count(FromBitmap(bm)))
}
