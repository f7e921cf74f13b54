package node

import (
	"github.com/rdaum/rart/internal/debug"
	"github.com/rdaum/rart/pkg/art/simd"
)

// Node16 stores up to 16 children in sorted parallel arrays, like Node4 but
// with the key search routed through the simd package's word-parallel find.
type Node16[T any] struct {
	Base

	// Keys holds the child key bytes in strictly ascending order; only the
	// first NumChildren entries are valid.
	Keys [16]byte

	// Children holds the child slots parallel to Keys.
	Children [16]Node[T]
}

var _ Node[any] = (*Node16[any])(nil)

// NewNode16 returns an empty Node16, referenced once.
func NewNode16[T any]() *Node16[T] {
	return &Node16[T]{Base: newMeta()}
}

// Type returns TypeNode16.
func (n *Node16[T]) Type() Type { return TypeNode16 }

// Full reports whether all 16 slots are occupied.
func (n *Node16[T]) Full() bool { return n.NumChildren == 16 }

// Minimum returns the leftmost leaf below this node.
func (n *Node16[T]) Minimum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[0].Minimum()
}

// Maximum returns the rightmost leaf below this node.
func (n *Node16[T]) Maximum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[n.NumChildren-1].Maximum()
}

// FindChild returns the slot for the given key byte, or nil.
func (n *Node16[T]) FindChild(b byte) *Node[T] {
	if i := simd.FindKeyIndex(&n.Keys, n.NumChildren, b); i >= 0 {
		return &n.Children[i]
	}
	return nil
}

// AddChild inserts a child, shifting entries to keep Keys sorted.
func (n *Node16[T]) AddChild(b byte, child Node[T]) {
	debug.Assert(!n.Full(), "node16 must not be full")

	i := simd.FindInsertPosition(&n.Keys, n.NumChildren, b)

	copy(n.Keys[i+1:], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:], n.Children[i:n.NumChildren])

	n.Keys[i] = b
	n.Children[i] = child
	n.NumChildren++
}

// RemoveChild unlinks the child under b, shifting entries left.
func (n *Node16[T]) RemoveChild(b byte) {
	i := simd.FindKeyIndex(&n.Keys, n.NumChildren, b)
	if i < 0 {
		return
	}

	copy(n.Keys[i:], n.Keys[i+1:n.NumChildren])
	copy(n.Children[i:], n.Children[i+1:n.NumChildren])
	n.NumChildren--
	n.Children[n.NumChildren] = nil
}

// Grow converts this node to a Node48.
func (n *Node16[T]) Grow() Node[T] {
	nn := &Node48[T]{Base: n.cloneMeta()}

	copy(nn.Children[:], n.Children[:n.NumChildren])

	for i := 0; i < n.NumChildren; i++ {
		nn.Keys[n.Keys[i]] = byte(i + 1)
		nn.Occupied.Set(n.Keys[i])
	}

	return nn
}

// Shrink converts this node to a Node4 once occupancy falls below 5.
func (n *Node16[T]) Shrink() Node[T] {
	if n.NumChildren >= 5 {
		return n
	}

	nn := &Node4[T]{Base: n.cloneMeta()}

	copy(nn.Keys[:], n.Keys[:n.NumChildren])
	copy(nn.Children[:], n.Children[:n.NumChildren])

	return nn
}

// Clone returns a shallow copy; children are shared and re-retained.
func (n *Node16[T]) Clone() Node[T] {
	nn := &Node16[T]{Base: n.cloneMeta(), Keys: n.Keys}

	for i := 0; i < n.NumChildren; i++ {
		nn.Children[i] = n.Children[i]
		nn.Children[i].Retain()
	}

	return nn
}
