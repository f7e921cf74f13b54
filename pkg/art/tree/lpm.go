package tree

import (
	"bytes"

	"github.com/rdaum/rart/pkg/art/key"
	"github.com/rdaum/rart/pkg/art/node"
)

// LongestPrefix returns the leaf holding the longest stored key that is a
// prefix of probe, or nil if no stored key qualifies. Exact matches
// qualify.
//
// Proper-prefix detection relies on the terminated encoding: a stored key
// ending where the probe continues always hangs off its branch node under
// the terminator byte, so the descent checks that child at every level.
// Each candidate is verified against its full leaf key, which keeps
// optimistic prefixes from faking a match.
func LongestPrefix[T any](n node.Node[T], probe []byte) *node.Leaf[T] {
	var best *node.Leaf[T]
	depth := 0

	for n != nil {
		if l, ok := n.(*node.Leaf[T]); ok {
			if isPrefixKey(l.Key, probe) {
				best = l
			}
			return best
		}

		m := n.Meta()
		if m.PartialLen > 0 {
			if m.CheckPartial(probe, depth) != min(m.PartialLen, node.MaxPrefixLen) {
				return best
			}
			depth += m.PartialLen
		}

		if depth > len(probe) {
			return best
		}

		b := byteAt(probe, depth)

		// A shorter stored key ends here iff the terminator child exists
		// while the probe still has payload left.
		if b != key.Terminator {
			if tc := n.FindChild(key.Terminator); tc != nil {
				if tl, ok := (*tc).(*node.Leaf[T]); ok && isPrefixKey(tl.Key, probe) {
					best = tl
				}
			}
		}

		child := n.FindChild(b)
		if child == nil {
			return best
		}

		n = *child
		depth++
	}

	return best
}

// isPrefixKey reports whether the stored key's payload is a payload prefix
// of probe. Non-terminated (fixed-width) keys only qualify on exact
// equality.
func isPrefixKey(stored, probe []byte) bool {
	if len(stored) == 0 || stored[len(stored)-1] != key.Terminator {
		return bytes.Equal(stored, probe)
	}

	if n := len(probe); n > 0 && probe[n-1] == key.Terminator {
		probe = probe[:n-1]
	}

	return bytes.HasPrefix(probe, stored[:len(stored)-1])
}
