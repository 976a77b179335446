// Package seqgo provides generic sequence primitives for Go.
//
// Seqgo is a small foundation library built around three abstractions:
//
//   - optional.Optional[T]: a two-variant sum type for values that may be
//     absent (Some / None), with eager and lazy fallback extraction.
//   - iterator.Iterator[T]: a capability over "produce the next element or
//     signal exhaustion", expressed in terms of Optional. Any conformer gets
//     Count, Collect, Find and the lazy adapters for free.
//   - vector.Vector[T]: an owned, growable, contiguous sequence with
//     short-circuiting search and index-order iteration.
//
// # Quick Start
//
//	v := vector.Of(3, 7, 2, 9)
//	v.Any(func(x int) bool { return x > 8 }) // true, stops at 9
//
//	it := v.Iter()
//	iterator.Count[int](it) // 4
//
//	optional.Some(5).Or(0)  // 5
//	optional.None[int]().Or(0) // 0
//
// # Snapshots
//
// The root package persists vectors as self-describing binary snapshots
// (codec name, compression and checksum recorded in the file):
//
//	var buf bytes.Buffer
//	err := seqgo.Save(&buf, v, seqgo.WithCompression(seqgo.CompressionZSTD))
//	v2, err := seqgo.Load[int](&buf)
//
// # Concurrency
//
// The core types are single-owner data structures: no operation may be
// called concurrently on the same value without external synchronization.
package seqgo
