package node

import "github.com/rdaum/rart/internal/debug"

// Node4 is the smallest inner layout, storing up to 4 children in sorted
// parallel arrays. It is the layout every split starts in and the one most
// nodes near the leaves stay in.
type Node4[T any] struct {
	Base

	// Keys holds the child key bytes in strictly ascending order; only the
	// first NumChildren entries are valid.
	Keys [4]byte

	// Children holds the child slots parallel to Keys.
	Children [4]Node[T]
}

var _ Node[any] = (*Node4[any])(nil)

// NewNode4 returns an empty Node4, referenced once.
func NewNode4[T any]() *Node4[T] {
	return &Node4[T]{Base: newMeta()}
}

// Type returns TypeNode4.
func (n *Node4[T]) Type() Type { return TypeNode4 }

// Full reports whether all 4 slots are occupied.
func (n *Node4[T]) Full() bool { return n.NumChildren == 4 }

// Minimum returns the leftmost leaf below this node.
func (n *Node4[T]) Minimum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[0].Minimum()
}

// Maximum returns the rightmost leaf below this node.
func (n *Node4[T]) Maximum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[n.NumChildren-1].Maximum()
}

// FindChild returns the slot for the given key byte, or nil. Linear search;
// at this size it beats anything cleverer.
func (n *Node4[T]) FindChild(b byte) *Node[T] {
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == b {
			return &n.Children[i]
		}
	}
	return nil
}

// AddChild inserts a child, shifting entries to keep Keys sorted.
func (n *Node4[T]) AddChild(b byte, child Node[T]) {
	debug.Assert(!n.Full(), "node4 must not be full")

	var i int
	for ; i < n.NumChildren; i++ {
		if b < n.Keys[i] {
			break
		}
	}

	copy(n.Keys[i+1:], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:], n.Children[i:n.NumChildren])

	n.Keys[i] = b
	n.Children[i] = child
	n.NumChildren++
}

// RemoveChild unlinks the child under b, shifting entries left.
func (n *Node4[T]) RemoveChild(b byte) {
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == b {
			copy(n.Keys[i:], n.Keys[i+1:n.NumChildren])
			copy(n.Children[i:], n.Children[i+1:n.NumChildren])
			n.NumChildren--
			n.Children[n.NumChildren] = nil
			return
		}
	}
}

// Grow converts this node to a Node16. Children transfer as-is.
func (n *Node4[T]) Grow() Node[T] {
	nn := &Node16[T]{Base: n.cloneMeta()}

	copy(nn.Keys[:], n.Keys[:n.NumChildren])
	copy(nn.Children[:], n.Children[:n.NumChildren])

	return nn
}

// Shrink collapses the node once a single child remains. A leaf child
// replaces the node outright; an inner child is spliced up with its prefix
// rewritten to parent.prefix ++ edge byte ++ child.prefix. The combined
// logical length is always recorded, but only what fits the inline buffer
// is kept — past that the prefix becomes optimistic.
//
// The caller must ensure the surviving child is not shared before Shrink
// mutates its prefix.
func (n *Node4[T]) Shrink() Node[T] {
	if n.NumChildren > 1 {
		return n
	}

	debug.Assert(n.NumChildren == 1, "shrink of empty node4")

	child := n.Children[0]
	if child.Type() == TypeLeaf {
		return child
	}

	m := child.Meta()

	var buf [MaxPrefixLen]byte
	inline := min(n.PartialLen, MaxPrefixLen)
	copy(buf[:], n.Partial[:inline])

	if inline < MaxPrefixLen {
		buf[inline] = n.Keys[0]
		childInline := min(m.PartialLen, MaxPrefixLen)
		copy(buf[inline+1:], m.Partial[:childInline])
	}

	combined := n.PartialLen + 1 + m.PartialLen
	m.Partial = buf
	m.PartialLen = combined

	return child
}

// Clone returns a shallow copy; children are shared and re-retained.
func (n *Node4[T]) Clone() Node[T] {
	nn := &Node4[T]{Base: n.cloneMeta(), Keys: n.Keys}

	for i := 0; i < n.NumChildren; i++ {
		nn.Children[i] = n.Children[i]
		nn.Children[i].Retain()
	}

	return nn
}
