package tree

import "github.com/rdaum/rart/pkg/art/node"

// Insert adds key to the tree rooted in ref, replacing the value of an
// existing entry when replace is set. It returns the previous value and
// whether the key was already present. With cow set, every node on the
// descent spine is made private before mutation.
func Insert[T any](ref *node.Node[T], key []byte, value T, replace, cow bool) (old T, existed bool) {
	return recursiveInsert(ref, key, value, 0, replace, cow)
}

func recursiveInsert[T any](ref *node.Node[T], key []byte, value T, depth int, replace, cow bool) (old T, existed bool) {
	if *ref == nil {
		*ref = node.NewLeaf(key, value)
		return
	}

	n := writable(ref, cow)

	if l, ok := n.(*node.Leaf[T]); ok {
		if l.Matches(key) {
			old, existed = l.Value, true
			if replace {
				l.Value = value
			}
			return
		}

		// Two distinct keys under one slot: split the leaf into a Node4
		// whose prefix is the bytes they still share.
		lcp := LongestCommonPrefix(l.Key, key, depth)

		nn := node.NewNode4[T]()
		nn.SetPartial(key[depth:lcp])
		nn.AddChild(byteAt(key, lcp), node.NewLeaf(key, value))
		nn.AddChild(byteAt(l.Key, lcp), l)

		*ref = nn
		return
	}

	m := n.Meta()
	if m.PartialLen > 0 {
		diff := PrefixMismatch(n, key, depth)
		if diff < m.PartialLen {
			splitPrefix(ref, n, key, value, depth, diff)
			return
		}
		depth += m.PartialLen
	}

	b := byteAt(key, depth)

	if child := n.FindChild(b); child != nil {
		return recursiveInsert(child, key, value, depth+1, replace, cow)
	}

	if n.Full() {
		n = n.Grow()
		*ref = n
	}
	n.AddChild(b, node.NewLeaf(key, value))

	return
}

// splitPrefix breaks n's prefix at diff: a new Node4 takes the matching
// head, n keeps the tail past the split byte, and the new leaf goes in as
// the second child.
func splitPrefix[T any](ref *node.Node[T], n node.Node[T], key []byte, value T, depth, diff int) {
	m := n.Meta()

	nn := node.NewNode4[T]()
	nn.SetPartial(key[depth : depth+diff])

	var edge byte
	if m.PartialLen <= node.MaxPrefixLen {
		edge = m.Partial[diff]
		m.TrimPartial(diff + 1)
	} else {
		// The split byte and the surviving tail sit past the inline buffer;
		// restore them from a leaf of the subtree.
		l := n.Minimum()
		edge = l.Key[depth+diff]
		m.RestorePartial(l.Key, depth+diff+1, m.PartialLen-diff-1)
	}

	nn.AddChild(edge, n)
	nn.AddChild(byteAt(key, depth+diff), node.NewLeaf(key, value))

	*ref = nn
}
