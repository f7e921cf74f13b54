package art

import (
	"bytes"

	"github.com/rdaum/rart/pkg/art/node"
	"github.com/rdaum/rart/pkg/art/tree"
)

// Iterator walks a subtree in ascending byte-lexicographic key order.
//
// It is a pull iterator driven by Next; Key and Value read the current
// entry. The engine keeps an explicit stack of per-node cursors over the
// concrete layouts, so stepping allocates nothing: sorted layouts advance
// an array index and the table layouts advance a byte cursor through their
// occupancy bitset.
//
// The key returned by Key is a view of the stored key and must be copied
// if it outlives the entry.
type Iterator[T any] struct {
	stack []iterFrame[T]

	key   []byte
	value T

	start   Bound
	end     Bound
	started bool

	prefix []byte
}

// iterFrame is one level of the traversal. For sorted layouts pos is the
// next child index; for table layouts it is the next candidate byte.
type iterFrame[T any] struct {
	n   node.Node[T]
	pos int
}

func newIterator[T any](root node.Node[T], start, end Bound, prefix []byte) *Iterator[T] {
	it := &Iterator[T]{
		stack:  make([]iterFrame[T], 0, 16),
		start:  start,
		end:    end,
		prefix: prefix,
	}

	if root == nil || emptyRange(start, end) {
		return it
	}

	switch {
	case prefix != nil:
		it.seekPrefix(root)
	case start.kind != boundNone:
		it.seekStart(root)
	default:
		it.started = true
		it.push(root, 0)
	}

	return it
}

// Next advances to the next entry in order, reporting false when the
// subtree, the prefix or the end bound is exhausted.
func (it *Iterator[T]) Next() bool {
	for len(it.stack) > 0 {
		f := &it.stack[len(it.stack)-1]

		switch n := f.n.(type) {
		case *node.Leaf[T]:
			it.pop()

			if it.prefix != nil && !n.MatchesPrefix(it.prefix) {
				continue
			}

			// The seek lands near the start bound but may overshoot low;
			// filter until the first in-range key, then disengage.
			if !it.started {
				if !it.start.acceptsStart(n.Key) {
					continue
				}
				it.started = true
			}

			// Children are visited in ascending order, so the first key past
			// the end bound ends the whole traversal.
			if !it.end.acceptsEnd(n.Key) {
				it.stack = it.stack[:0]
				return false
			}

			it.key, it.value = n.Key, n.Value
			return true

		case *node.Node4[T]:
			if f.pos >= n.NumChildren {
				it.pop()
				continue
			}
			child := n.Children[f.pos]
			f.pos++
			it.push(child, 0)

		case *node.Node16[T]:
			if f.pos >= n.NumChildren {
				it.pop()
				continue
			}
			child := n.Children[f.pos]
			f.pos++
			it.push(child, 0)

		case *node.Node48[T]:
			b, ok := n.Occupied.NextSet(uint(f.pos))
			if !ok {
				it.pop()
				continue
			}
			f.pos = int(b) + 1
			it.push(n.Children[n.Keys[b]-1], 0)

		case *node.Node256[T]:
			b, ok := n.Occupied.NextSet(uint(f.pos))
			if !ok {
				it.pop()
				continue
			}
			f.pos = int(b) + 1
			it.push(n.Children[b], 0)
		}
	}

	return false
}

// Key returns the current entry's key. Valid after Next reports true.
func (it *Iterator[T]) Key() []byte { return it.key }

// Value returns the current entry's value. Valid after Next reports true.
func (it *Iterator[T]) Value() T { return it.value }

func (it *Iterator[T]) push(n node.Node[T], pos int) {
	it.stack = append(it.stack, iterFrame[T]{n: n, pos: pos})
}

func (it *Iterator[T]) pop() {
	it.stack = it.stack[:len(it.stack)-1]
}

// seekStart positions the stack at the first key that can satisfy the
// start bound, descending along the bound and queueing every
// greater-than-bound sibling on the way. Prefix comparisons here are
// pessimistic — an optimistic prefix could otherwise discard a subtree the
// range owns — and the leaf filter in Next covers the remaining slack.
func (it *Iterator[T]) seekStart(n node.Node[T]) {
	skey := it.start.key
	depth := 0

	for {
		if _, ok := n.(*node.Leaf[T]); ok {
			it.push(n, 0)
			return
		}

		m := n.Meta()
		if m.PartialLen > 0 {
			p := tree.PartialBytes(n, depth)
			rest := skey[depth:]

			cl := min(len(p), len(rest))
			switch c := bytes.Compare(p[:cl], rest[:cl]); {
			case c > 0:
				// Entire subtree sorts above the bound.
				it.push(n, 0)
				return
			case c < 0:
				// Entire subtree sorts below the bound.
				return
			}
			depth += m.PartialLen
		}

		if depth >= len(skey) {
			// Bound exhausted: every key below extends it.
			it.push(n, 0)
			return
		}

		b := skey[depth]

		switch nd := n.(type) {
		case *node.Node4[T]:
			i := sortedSeekPos(nd.Keys[:nd.NumChildren], b)
			if i < nd.NumChildren && nd.Keys[i] == b {
				it.push(n, i+1)
				n = nd.Children[i]
				depth++
				continue
			}
			it.push(n, i)
			return

		case *node.Node16[T]:
			i := sortedSeekPos(nd.Keys[:nd.NumChildren], b)
			if i < nd.NumChildren && nd.Keys[i] == b {
				it.push(n, i+1)
				n = nd.Children[i]
				depth++
				continue
			}
			it.push(n, i)
			return

		case *node.Node48[T]:
			it.push(n, int(b)+1)
			if c := nd.FindChild(b); c != nil {
				n = *c
				depth++
				continue
			}
			return

		case *node.Node256[T]:
			it.push(n, int(b)+1)
			if c := nd.FindChild(b); c != nil {
				n = *c
				depth++
				continue
			}
			return
		}
	}
}

// sortedSeekPos returns the index of the first key byte >= b.
func sortedSeekPos(keys []byte, b byte) int {
	var i int
	for i < len(keys) && keys[i] < b {
		i++
	}
	return i
}

// seekPrefix descends to the deepest node whose aggregated prefix matches
// the iteration prefix and stacks its whole subtree. Every yielded leaf is
// still verified against the prefix in Next, which both covers optimistic
// prefixes and trims the one partially-matching edge node.
func (it *Iterator[T]) seekPrefix(n node.Node[T]) {
	prefix := it.prefix
	depth := 0

	for {
		if _, ok := n.(*node.Leaf[T]); ok {
			it.push(n, 0)
			return
		}

		if depth >= len(prefix) {
			it.push(n, 0)
			return
		}

		m := n.Meta()
		if m.PartialLen > 0 {
			p := tree.PartialBytes(n, depth)

			cl := min(len(p), len(prefix)-depth)
			if !bytes.Equal(p[:cl], prefix[depth:depth+cl]) {
				return
			}

			depth += m.PartialLen
			if depth >= len(prefix) {
				it.push(n, 0)
				return
			}
		}

		child := n.FindChild(prefix[depth])
		if child == nil {
			return
		}

		n = *child
		depth++
	}
}
