package art

import (
	"sync/atomic"

	"github.com/timandy/routine"

	"github.com/rdaum/rart/pkg/art/node"
	"github.com/rdaum/rart/pkg/art/tree"
)

// Versioned is the snapshotting Adaptive Radix Tree.
//
// Snapshot returns a new handle sharing this handle's nodes; the clone
// costs one reference-count increment. Mutating any handle copies only the
// spine of nodes it touches, so every other handle keeps its version
// unchanged. Handles may be read and mutated on different goroutines
// independently; a single handle tolerates one writer at a time, and a
// second concurrent writer panics.
type Versioned[T any] struct {
	root node.Node[T]
	size int

	// writer latches the goroutine id of an in-flight mutation.
	writer int64
}

// NewVersioned returns an empty versioned tree.
func NewVersioned[T any]() *Versioned[T] {
	return &Versioned[T]{}
}

// Snapshot returns a new handle on the current state. O(1). The snapshot
// is independently mutable and unaffected by later writes to v, and vice
// versa.
func (v *Versioned[T]) Snapshot() *Versioned[T] {
	if v.root != nil {
		v.root.Retain()
	}
	return &Versioned[T]{root: v.root, size: v.size}
}

// Len returns the number of stored entries.
func (v *Versioned[T]) Len() int { return v.size }

// Get returns the value stored under key.
func (v *Versioned[T]) Get(key []byte) (value T, ok bool) {
	if l := tree.Search(v.root, key); l != nil {
		return l.Value, true
	}
	return
}

// Insert stores value under key, replacing and returning any previous
// value. Nodes shared with snapshots are cloned before being touched.
func (v *Versioned[T]) Insert(key []byte, value T) (prev T, replaced bool) {
	v.beginWrite()
	defer v.endWrite()

	prev, replaced = tree.Insert(&v.root, key, value, true, true)
	if !replaced {
		v.size++
	}
	return
}

// InsertNoReplace stores value under key unless the key is already
// present, in which case the existing value is kept and returned.
func (v *Versioned[T]) InsertNoReplace(key []byte, value T) (existing T, present bool) {
	v.beginWrite()
	defer v.endWrite()

	existing, present = tree.Insert(&v.root, key, value, false, true)
	if !present {
		v.size++
	}
	return
}

// Delete removes key and returns the value it held.
func (v *Versioned[T]) Delete(key []byte) (old T, deleted bool) {
	// Check presence first: a miss must not clone the descent spine.
	if tree.Search(v.root, key) == nil {
		return
	}

	v.beginWrite()
	defer v.endWrite()

	l := tree.Delete(&v.root, key, true)
	if l == nil {
		return
	}
	v.size--
	return l.Value, true
}

// Minimum returns the entry with the smallest key.
func (v *Versioned[T]) Minimum() (key []byte, value T, ok bool) {
	if v.root == nil {
		return
	}
	l := v.root.Minimum()
	return l.Key, l.Value, true
}

// Maximum returns the entry with the largest key.
func (v *Versioned[T]) Maximum() (key []byte, value T, ok bool) {
	if v.root == nil {
		return
	}
	l := v.root.Maximum()
	return l.Key, l.Value, true
}

// LongestPrefixMatch returns the entry with the longest stored key that is
// a prefix of key. Exact matches qualify.
func (v *Versioned[T]) LongestPrefixMatch(key []byte) (match []byte, value T, ok bool) {
	if l := tree.LongestPrefix(v.root, key); l != nil {
		return l.Key, l.Value, true
	}
	return
}

// Iter returns an iterator over all entries in ascending key order.
func (v *Versioned[T]) Iter() *Iterator[T] {
	return newIterator(v.root, Unbounded(), Unbounded(), nil)
}

// Range returns an iterator over the entries between start and end, in
// ascending key order.
func (v *Versioned[T]) Range(start, end Bound) *Iterator[T] {
	return newIterator(v.root, start, end, nil)
}

// PrefixIter returns an iterator over the entries whose keys start with
// prefix, in ascending key order.
func (v *Versioned[T]) PrefixIter(prefix []byte) *Iterator[T] {
	if prefix == nil {
		prefix = []byte{}
	}
	return newIterator(v.root, Unbounded(), Unbounded(), prefix)
}

// beginWrite latches this handle for the calling goroutine. Two goroutines
// mutating the same handle is a contract violation, reported loudly rather
// than serialized.
func (v *Versioned[T]) beginWrite() {
	if !atomic.CompareAndSwapInt64(&v.writer, 0, routine.Goid()) {
		panic("art: concurrent mutation of the same versioned handle")
	}
}

func (v *Versioned[T]) endWrite() {
	atomic.StoreInt64(&v.writer, 0)
}
