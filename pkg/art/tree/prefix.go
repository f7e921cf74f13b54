// Package tree implements the structural algorithms of the ART: search,
// insert with prefix splitting, delete with demotion and merging, longest
// prefix match, prefix descent and the copy-on-write spine. The facade in
// pkg/art drives these over a root slot; the same code serves the
// single-owner and the versioned variants via the cow flag.
package tree

import "github.com/rdaum/rart/pkg/art/node"

// byteAt returns key[i], or 0 past the end of the key. Terminated and
// fixed-width keys never probe past their end on the match path; the zero
// default only shows up while splitting against prefix-violating raw keys,
// where it mirrors the terminator.
func byteAt(key []byte, i int) byte {
	if i < len(key) {
		return key[i]
	}
	return 0
}

// LongestCommonPrefix returns the first index at or after depth where l and
// r diverge.
func LongestCommonPrefix(l, r []byte, depth int) int {
	n := min(len(l), len(r))

	i := depth
	for i < n && l[i] == r[i] {
		i++
	}
	return i
}

// PrefixMismatch returns the number of prefix bytes of n matching key at
// depth. Unlike Base.CheckPartial this is pessimistic: when the logical
// prefix exceeds the inline buffer the remaining bytes are restored from
// the subtree's minimum leaf, so the result is authoritative and safe to
// split on. In that case the scan continues along the minimum leaf to the
// end of the shorter key, so a full match can exceed PartialLen.
func PrefixMismatch[T any](n node.Node[T], key []byte, depth int) int {
	m := n.Meta()

	limit := min(min(node.MaxPrefixLen, m.PartialLen), len(key)-depth)

	var i int
	for ; i < limit; i++ {
		if m.Partial[i] != key[depth+i] {
			return i
		}
	}

	if m.PartialLen > node.MaxPrefixLen {
		l := n.Minimum()
		limit = min(len(l.Key), len(key)) - depth
		for ; i < limit; i++ {
			if l.Key[depth+i] != key[depth+i] {
				return i
			}
		}
	}

	return i
}

// PartialBytes returns the true prefix bytes of n, whose subtree starts at
// depth. Inline bytes are used while complete; an optimistic prefix is
// restored from the minimum leaf.
func PartialBytes[T any](n node.Node[T], depth int) []byte {
	m := n.Meta()
	if m.PartialLen <= node.MaxPrefixLen {
		return m.Partial[:m.PartialLen]
	}

	l := n.Minimum()
	return l.Key[depth : depth+m.PartialLen]
}
