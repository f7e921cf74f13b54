package art

import (
	"github.com/rdaum/rart/pkg/art/node"
	"github.com/rdaum/rart/pkg/art/tree"
)

// Tree is the single-owner Adaptive Radix Tree.
//
// It exclusively owns its nodes and mutates them in place: one writer, no
// internal locking, readers only while the writer is quiescent. For O(1)
// snapshots and concurrent readers across versions, use Versioned.
type Tree[T any] struct {
	root node.Node[T]
	size int
}

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of stored entries.
func (t *Tree[T]) Len() int { return t.size }

// Get returns the value stored under key.
func (t *Tree[T]) Get(key []byte) (value T, ok bool) {
	if l := tree.Search(t.root, key); l != nil {
		return l.Value, true
	}
	return
}

// Insert stores value under key, replacing and returning any previous
// value.
func (t *Tree[T]) Insert(key []byte, value T) (prev T, replaced bool) {
	prev, replaced = tree.Insert(&t.root, key, value, true, false)
	if !replaced {
		t.size++
	}
	return
}

// InsertNoReplace stores value under key unless the key is already
// present, in which case the existing value is kept and returned.
func (t *Tree[T]) InsertNoReplace(key []byte, value T) (existing T, present bool) {
	existing, present = tree.Insert(&t.root, key, value, false, false)
	if !present {
		t.size++
	}
	return
}

// Delete removes key and returns the value it held.
func (t *Tree[T]) Delete(key []byte) (old T, deleted bool) {
	l := tree.Delete(&t.root, key, false)
	if l == nil {
		return
	}
	t.size--
	return l.Value, true
}

// Minimum returns the entry with the smallest key.
func (t *Tree[T]) Minimum() (key []byte, value T, ok bool) {
	if t.root == nil {
		return
	}
	l := t.root.Minimum()
	return l.Key, l.Value, true
}

// Maximum returns the entry with the largest key.
func (t *Tree[T]) Maximum() (key []byte, value T, ok bool) {
	if t.root == nil {
		return
	}
	l := t.root.Maximum()
	return l.Key, l.Value, true
}

// LongestPrefixMatch returns the entry with the longest stored key that is
// a prefix of key. Exact matches qualify.
func (t *Tree[T]) LongestPrefixMatch(key []byte) (match []byte, value T, ok bool) {
	if l := tree.LongestPrefix(t.root, key); l != nil {
		return l.Key, l.Value, true
	}
	return
}

// Iter returns an iterator over all entries in ascending key order.
func (t *Tree[T]) Iter() *Iterator[T] {
	return newIterator(t.root, Unbounded(), Unbounded(), nil)
}

// Range returns an iterator over the entries between start and end, in
// ascending key order. A start above the end yields nothing.
func (t *Tree[T]) Range(start, end Bound) *Iterator[T] {
	return newIterator(t.root, start, end, nil)
}

// PrefixIter returns an iterator over the entries whose keys start with
// prefix, in ascending key order. An empty prefix iterates the whole tree.
func (t *Tree[T]) PrefixIter(prefix []byte) *Iterator[T] {
	if prefix == nil {
		prefix = []byte{}
	}
	return newIterator(t.root, Unbounded(), Unbounded(), prefix)
}
