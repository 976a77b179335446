// Package vector provides an owned, growable, contiguous sequence of elements.
//
// A Vector[T] exclusively owns its backing storage: constructors copy caller
// slices, accessors return values rather than aliases, and removal operations
// zero vacated slots so the collector can reclaim dropped elements. Elements
// at index [0, Len()) are live and kept in insertion order; Len() never
// exceeds Cap(), and growth reallocation preserves the order and values of
// existing elements.
//
// Absence is modeled structurally: Get, Pop and Remove return
// optional.Optional[T] instead of panicking on out-of-range access.
//
// A Vector must not be accessed concurrently without external
// synchronization; none is provided internally.
package vector

import (
	"github.com/hupe1980/seqgo/optional"
)

// Vector is an owned, growable sequence of elements of type T.
// The zero value is an empty vector ready for use.
type Vector[T any] struct {
	data []T
}

// New returns an empty vector with no allocated capacity.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with storage preallocated for
// capacity elements. It panics if capacity is negative.
func WithCapacity[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		panic("vector: negative capacity")
	}
	return &Vector[T]{data: make([]T, 0, capacity)}
}

// Of returns a vector holding copies of items in the given order.
func Of[T any](items ...T) *Vector[T] {
	data := make([]T, len(items))
	copy(data, items)
	return &Vector[T]{data: data}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int { return cap(v.data) }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return len(v.data) == 0 }

// Push appends item to the end of the vector, growing storage if needed.
func (v *Vector[T]) Push(item T) {
	if len(v.data) == cap(v.data) {
		v.grow(len(v.data) + 1)
	}
	v.data = append(v.data, item)
}

// Append appends all items to the end of the vector in order.
func (v *Vector[T]) Append(items ...T) {
	if need := len(v.data) + len(items); need > cap(v.data) {
		v.grow(need)
	}
	v.data = append(v.data, items...)
}

// Pop removes and returns the last element, or None if the vector is empty.
func (v *Vector[T]) Pop() optional.Optional[T] {
	n := len(v.data)
	if n == 0 {
		return optional.None[T]()
	}
	item := v.data[n-1]
	var zero T
	v.data[n-1] = zero // release the slot
	v.data = v.data[:n-1]
	return optional.Some(item)
}

// Get returns the element at index i, or None if i is out of range.
func (v *Vector[T]) Get(i int) optional.Optional[T] {
	if i < 0 || i >= len(v.data) {
		return optional.None[T]()
	}
	return optional.Some(v.data[i])
}

// Set replaces the element at index i and reports whether i was in range.
func (v *Vector[T]) Set(i int, item T) bool {
	if i < 0 || i >= len(v.data) {
		return false
	}
	v.data[i] = item
	return true
}

// Insert inserts item at index i, shifting later elements right. Valid
// indices are [0, Len()]; Insert reports whether i was valid.
func (v *Vector[T]) Insert(i int, item T) bool {
	if i < 0 || i > len(v.data) {
		return false
	}
	if len(v.data) == cap(v.data) {
		v.grow(len(v.data) + 1)
	}
	var zero T
	v.data = append(v.data, zero)
	copy(v.data[i+1:], v.data[i:])
	v.data[i] = item
	return true
}

// Remove removes and returns the element at index i, shifting later elements
// left. It returns None if i is out of range.
func (v *Vector[T]) Remove(i int) optional.Optional[T] {
	if i < 0 || i >= len(v.data) {
		return optional.None[T]()
	}
	item := v.data[i]
	n := len(v.data)
	copy(v.data[i:], v.data[i+1:])
	var zero T
	v.data[n-1] = zero // release the vacated slot
	v.data = v.data[:n-1]
	return optional.Some(item)
}

// Clear removes all elements, keeping the allocated capacity.
func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

// Truncate shortens the vector to n elements. If n is negative it is treated
// as 0; if n >= Len() the vector is unchanged.
func (v *Vector[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(v.data) {
		return
	}
	clear(v.data[n:])
	v.data = v.data[:n]
}

// Reserve ensures capacity for at least n additional elements beyond Len().
// It panics if n is negative.
func (v *Vector[T]) Reserve(n int) {
	if n < 0 {
		panic("vector: negative reserve")
	}
	if need := len(v.data) + n; need > cap(v.data) {
		v.grow(need)
	}
}

// Any reports whether pred returns true for any live element, visiting
// elements in index order and stopping at the first match. On an empty
// vector Any returns false for every predicate.
//
// pred receives each element by value and cannot mutate the vector's
// contents through it.
func (v *Vector[T]) Any(pred func(T) bool) bool {
	for _, item := range v.data {
		if pred(item) {
			return true
		}
	}
	return false
}

// All reports whether pred returns true for every live element, stopping at
// the first failure. On an empty vector All returns true.
func (v *Vector[T]) All(pred func(T) bool) bool {
	for _, item := range v.data {
		if !pred(item) {
			return false
		}
	}
	return true
}

// ToSlice returns a copy of the live elements in index order.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns a vector holding a copy of the live elements.
func (v *Vector[T]) Clone() *Vector[T] {
	return Of(v.data...)
}

// grow reallocates the backing array to hold at least minCap elements,
// doubling the current capacity until it fits. Element order and values
// are preserved.
func (v *Vector[T]) grow(minCap int) {
	newCap := cap(v.data)
	if newCap == 0 {
		newCap = 4
	}
	for newCap < minCap {
		newCap *= 2
	}
	buf := make([]T, len(v.data), newCap)
	copy(buf, v.data)
	v.data = buf
}

// Contains reports whether the vector holds an element equal to target.
func Contains[T comparable](v *Vector[T], target T) bool {
	return v.Any(func(item T) bool { return item == target })
}

// IndexOf returns the index of the first element equal to target, or None.
func IndexOf[T comparable](v *Vector[T], target T) optional.Optional[int] {
	for i, item := range v.data {
		if item == target {
			return optional.Some(i)
		}
	}
	return optional.None[int]()
}
