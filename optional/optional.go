// Package optional provides a two-variant sum type for values that may be absent.
//
// An Optional[T] is either Some(v), holding exactly one value of T, or None,
// holding nothing. There is no third state: the zero value of Optional[T] is
// None. Use it instead of sentinel values or (T, bool) pairs when absence is
// part of a type's contract rather than an error condition.
package optional

import (
	"encoding/json"
	"fmt"
)

// Optional represents a value of type T that may be absent.
//
// Optional values are immutable: transforming one produces a new Optional,
// the variant of an existing value never changes.
type Optional[T any] struct {
	value T
	some  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, some: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns Some(*p) if p is non-nil, None otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the Optional holds a value.
func (o Optional[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Optional is empty.
// It is always the exact negation of IsSome.
func (o Optional[T]) IsNone() bool {
	return !o.IsSome()
}

// Get returns the held value and whether it was present.
// If the Optional is None, the returned value is the zero value of T.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the held value and panics if the Optional is None.
func (o Optional[T]) MustGet() T {
	if !o.some {
		panic("optional: MustGet on None")
	}
	return o.value
}

// Or returns the held value if present, otherwise fallback.
//
// The fallback is a plain value, evaluated by the caller before the call.
// If computing the fallback is expensive or has side effects that should
// only happen on the None path, use OrElse instead.
func (o Optional[T]) Or(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// OrElse returns the held value if present; otherwise it invokes fallback
// exactly once and returns its result.
//
// fallback is never invoked when the Optional is Some. That guarantee is
// what distinguishes OrElse from Or and is the reason both exist.
func (o Optional[T]) OrElse(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

// Ptr returns a pointer to a copy of the held value, or nil if None.
func (o Optional[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MarshalJSON encodes Some(v) as the JSON encoding of v and None as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and any other JSON value as Some.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Map applies f to the held value if present and wraps the result in Some.
// If o is None, f is not invoked and the result is None.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// FlatMap applies f to the held value if present and returns its result
// unchanged. If o is None, f is not invoked and the result is None.
func FlatMap[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}
