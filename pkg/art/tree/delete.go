package tree

import "github.com/rdaum/rart/pkg/art/node"

// Delete removes key from the tree rooted in ref and returns the unlinked
// leaf, or nil if the key is not stored. Parents falling below their
// layout's occupancy threshold are demoted, and a Node4 left with a single
// child is merged away. With cow set, the descent spine is made private
// before mutation; callers avoid cloning on misses by checking presence
// first.
func Delete[T any](ref *node.Node[T], key []byte, cow bool) *node.Leaf[T] {
	return recursiveDelete(ref, key, 0, cow)
}

func recursiveDelete[T any](ref *node.Node[T], key []byte, depth int, cow bool) *node.Leaf[T] {
	if *ref == nil {
		return nil
	}

	// Root is a lone leaf.
	if l, ok := (*ref).(*node.Leaf[T]); ok {
		if !l.Matches(key) {
			return nil
		}
		if cow {
			l.ReleaseRef()
		}
		*ref = nil
		return l
	}

	n := writable(ref, cow)
	m := n.Meta()

	if m.PartialLen > 0 {
		if m.CheckPartial(key, depth) != min(m.PartialLen, node.MaxPrefixLen) {
			return nil
		}
		depth += m.PartialLen
	}

	if depth > len(key) {
		return nil
	}

	b := byteAt(key, depth)

	child := n.FindChild(b)
	if child == nil {
		return nil
	}

	if l, ok := (*child).(*node.Leaf[T]); ok {
		if !l.Matches(key) {
			return nil
		}

		if cow {
			l.ReleaseRef()
		}
		n.RemoveChild(b)
		shrink(ref, n, cow)

		return l
	}

	return recursiveDelete(child, key, depth+1, cow)
}

// shrink demotes n if the removal dropped it below its layout's threshold
// and installs the replacement in the parent slot.
func shrink[T any](ref *node.Node[T], n node.Node[T], cow bool) {
	// A merge rewrites the surviving child's prefix; make the child private
	// first so no snapshot observes the edit.
	if n4, ok := n.(*node.Node4[T]); ok && n4.NumChildren == 1 {
		if n4.Children[0].Type() != node.TypeLeaf {
			writable(&n4.Children[0], cow)
		}
	}

	if s := n.Shrink(); s != n {
		*ref = s
	}
}
