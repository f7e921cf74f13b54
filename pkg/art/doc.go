// Package art provides an ordered, in-memory associative index keyed by
// byte strings, implemented as an Adaptive Radix Tree (ART).
//
// The tree maps encoded byte keys (see pkg/art/key) to values of any type,
// preserving lexicographic key order. Inner nodes adapt their physical
// layout (Node4, Node16, Node48, Node256) to their child count and compress
// shared key prefixes onto edges, so lookups run in O(key length) with
// memory proportional to the stored data.
//
// Two variants share one core:
//
//   - Tree is the single-owner variant: one exclusive writer, no internal
//     locking, no reference-count traffic. Fastest.
//   - Versioned adds O(1) snapshots with copy-on-write structural sharing.
//     Snapshot returns an independently mutable handle; mutating either
//     handle clones only the spine of touched nodes, so the other handle's
//     view never changes.
//
// # Ordering and iteration
//
// Iter, Range, PrefixIter and the iter.Seq2 adapters (All, AllRange,
// AllPrefix) yield entries in ascending byte-lexicographic key order.
// Range accepts Included, Excluded and Unbounded bounds on both ends.
// Iterators are pull-driven and do not allocate per step; the key slices
// they yield are views of stored keys and must be copied if retained.
//
// # Concurrency
//
// A Tree supports one writer, with readers only while the writer is
// quiescent. A Versioned handle supports one writer at a time — concurrent
// mutation of the same handle panics — while other handles (snapshots) may
// be read and mutated freely on other goroutines.
package art
