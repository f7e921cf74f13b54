package node

import (
	"bytes"
	"sync/atomic"
)

// Leaf is a terminal node holding one key-value pair.
//
// The full encoded key is retained, not just the suffix below the leaf's
// position. It anchors pessimistic prefix restoration for ancestors whose
// prefix outgrew the inline buffer, and iteration hands it out directly
// instead of stitching prefixes back together.
type Leaf[T any] struct {
	refs int32

	// Key is the complete encoded key for this entry.
	Key []byte

	// Value is the data stored under Key.
	Value T
}

var _ Node[any] = (*Leaf[any])(nil)

// NewLeaf returns a leaf holding a copy of key, referenced once.
func NewLeaf[T any](key []byte, value T) *Leaf[T] {
	k := make([]byte, len(key))
	copy(k, key)

	return &Leaf[T]{refs: 1, Key: k, Value: value}
}

// Type returns TypeLeaf.
func (l *Leaf[T]) Type() Type { return TypeLeaf }

// Full always reports true; leaves cannot take children.
func (l *Leaf[T]) Full() bool { return true }

// Meta panics; leaves carry no child table or prefix.
func (l *Leaf[T]) Meta() *Base { panic("leaf has no metadata") }

// Minimum returns the leaf itself.
func (l *Leaf[T]) Minimum() *Leaf[T] { return l }

// Maximum returns the leaf itself.
func (l *Leaf[T]) Maximum() *Leaf[T] { return l }

// FindChild panics; leaves cannot have children.
func (l *Leaf[T]) FindChild(b byte) *Node[T] { panic("leaf cannot have children") }

// AddChild panics; leaves cannot have children.
func (l *Leaf[T]) AddChild(b byte, child Node[T]) { panic("leaf cannot have children") }

// RemoveChild panics; leaves cannot have children.
func (l *Leaf[T]) RemoveChild(b byte) { panic("leaf cannot have children") }

// Grow panics; leaves cannot have children.
func (l *Leaf[T]) Grow() Node[T] { panic("leaf cannot grow") }

// Shrink panics; leaves cannot have children.
func (l *Leaf[T]) Shrink() Node[T] { panic("leaf cannot shrink") }

// Clone returns a copy referenced once. The key bytes are shared: stored
// keys are never mutated in place.
func (l *Leaf[T]) Clone() Node[T] {
	return &Leaf[T]{refs: 1, Key: l.Key, Value: l.Value}
}

// Retain increments the reference count.
func (l *Leaf[T]) Retain() { atomic.AddInt32(&l.refs, 1) }

// ReleaseRef decrements the reference count.
func (l *Leaf[T]) ReleaseRef() int32 { return atomic.AddInt32(&l.refs, -1) }

// Shared reports whether the leaf is referenced more than once.
func (l *Leaf[T]) Shared() bool { return atomic.LoadInt32(&l.refs) > 1 }

// Matches reports whether this leaf stores exactly key. This full
// comparison is the authoritative check that rejects optimistic-prefix
// false positives during lookup.
func (l *Leaf[T]) Matches(key []byte) bool {
	return bytes.Equal(l.Key, key)
}

// MatchesPrefix reports whether this leaf's key starts with prefix.
func (l *Leaf[T]) MatchesPrefix(prefix []byte) bool {
	return bytes.HasPrefix(l.Key, prefix)
}
