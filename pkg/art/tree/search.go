package tree

import "github.com/rdaum/rart/pkg/art/node"

// Search descends from n and returns the leaf storing exactly key, or nil.
//
// Prefix comparisons on the way down are optimistic — they never look past
// a node's inline buffer — so the descent can reach a wrong leaf when a
// long prefix lies. The final Matches comparison against the leaf's full
// key is the authoritative check that rejects such false positives.
func Search[T any](n node.Node[T], key []byte) *node.Leaf[T] {
	depth := 0

	for n != nil {
		if l, ok := n.(*node.Leaf[T]); ok {
			if l.Matches(key) {
				return l
			}
			return nil
		}

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

		child := n.FindChild(byteAt(key, depth))
		if child == nil {
			return nil
		}

		n = *child
		depth++
	}

	return nil
}
