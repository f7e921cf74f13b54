package node

import "github.com/rdaum/rart/internal/debug"

// Node256 is the largest inner layout: the key byte indexes the child array
// directly. Lookup is a single load; the occupancy bitset keeps ordered
// iteration and min/max from probing empty slots.
type Node256[T any] struct {
	Base

	// Occupied marks the key bytes that currently have a child.
	Occupied BitSet256

	// Children holds one slot per possible key byte.
	Children [256]Node[T]
}

var _ Node[any] = (*Node256[any])(nil)

// NewNode256 returns an empty Node256, referenced once.
func NewNode256[T any]() *Node256[T] {
	return &Node256[T]{Base: newMeta()}
}

// Type returns TypeNode256.
func (n *Node256[T]) Type() Type { return TypeNode256 }

// Full always reports false; there is no larger layout to grow into.
func (n *Node256[T]) Full() bool { return false }

// Minimum returns the leftmost leaf below this node.
func (n *Node256[T]) Minimum() *Leaf[T] {
	if b, ok := n.Occupied.FirstSet(); ok {
		return n.Children[b].Minimum()
	}
	return nil
}

// Maximum returns the rightmost leaf below this node.
func (n *Node256[T]) Maximum() *Leaf[T] {
	if b, ok := n.Occupied.LastSet(); ok {
		return n.Children[b].Maximum()
	}
	return nil
}

// FindChild returns the slot for the given key byte, or nil.
func (n *Node256[T]) FindChild(b byte) *Node[T] {
	if n.Children[b] != nil {
		return &n.Children[b]
	}
	return nil
}

// AddChild stores the child directly under its key byte.
func (n *Node256[T]) AddChild(b byte, child Node[T]) {
	if n.Children[b] == nil {
		n.Occupied.Set(b)
		n.NumChildren++
	}
	n.Children[b] = child

	debug.Assert(n.NumChildren == n.Occupied.Count(), "child count out of sync with occupancy")
}

// RemoveChild unlinks the child under b.
func (n *Node256[T]) RemoveChild(b byte) {
	if n.Children[b] == nil {
		return
	}

	n.Children[b] = nil
	n.Occupied.Clear(b)
	n.NumChildren--
}

// Grow panics; Node256 is the largest layout.
func (n *Node256[T]) Grow() Node[T] { panic("node256 cannot grow") }

// Shrink converts this node to a Node48 once occupancy falls below 49.
func (n *Node256[T]) Shrink() Node[T] {
	if n.NumChildren >= 49 {
		return n
	}

	nn := &Node48[T]{Base: n.cloneMeta(), Occupied: n.Occupied}

	var i int
	for b, ok := n.Occupied.NextSet(0); ok; b, ok = n.Occupied.NextSet(uint(b) + 1) {
		nn.Keys[b] = byte(i + 1)
		nn.Children[i] = n.Children[b]
		i++
	}

	return nn
}

// Clone returns a shallow copy; children are shared and re-retained.
func (n *Node256[T]) Clone() Node[T] {
	nn := &Node256[T]{Base: n.cloneMeta(), Occupied: n.Occupied}

	for b, ok := n.Occupied.NextSet(0); ok; b, ok = n.Occupied.NextSet(uint(b) + 1) {
		nn.Children[b] = n.Children[b]
		nn.Children[b].Retain()
	}

	return nn
}
