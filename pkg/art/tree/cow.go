package tree

import "github.com/rdaum/rart/pkg/art/node"

// writable returns the node in ref, cloning it first when the versioned
// tree is about to mutate a shared node. The clone re-retains the children,
// takes the parent slot, and the original gives up one reference; untouched
// subtrees stay shared. With cow disabled this is a plain read.
func writable[T any](ref *node.Node[T], cow bool) node.Node[T] {
	n := *ref
	if !cow || !n.Shared() {
		return n
	}

	c := n.Clone()
	n.ReleaseRef()
	*ref = c

	return c
}
