package tlist

import "math/bits"

// buildBalanced constructs a tree in O(N) from values, in the order given,
// with no rotations: the midpoint of each sub-range becomes the local
// root, recursively, producing a binary tree that is full at every level
// except possibly the last; the last level's nodes are not necessarily
// packed to the left.
//
// Colors are assigned by depth from the deepest level, not by alternating
// parity from the root: every level above the last is black, and the last
// (possibly only partially filled) level is red. A node at that last level
// is always a leaf there, so a red node never ends up with a red child,
// and a missing child at that level contributes the same black-height as
// a red leaf would, keeping every root-to-nil path's black count equal.
// Depth-parity coloring does not have this property: a red node with one
// real black child and one nil child produces unequal black-height on its
// two sides, which happens whenever a sub-range of even size lands at an
// odd depth — pervasive for any N that isn't exactly 2^k-1.
//
// Grounded on original_source's from_data/prepare_left_child/
// prepare_right_child for the midpoint split itself, and on
// Trees/base.go's buildIfs for the equivalent iterative-stack shape; the
// depth-from-bottom coloring is this package's own resolution of the
// black-height invariant (spec.md §3.5.2) that a naive depth-from-root
// parity scheme does not actually preserve.
func (t *tree[T]) buildBalanced(values []T) {
	t.clear()
	if len(values) == 0 {
		return
	}
	t.arena.nodes = make([]node[T], 0, len(values))
	maxDepth := bits.Len(uint(len(values))) - 1
	t.root = t.buildSubtree(values, 0, maxDepth, nilIndex)
	t.length = len(values)
}

// buildSubtree places values[mid] at depth, recurses into both halves, and
// colors the node black unless it sits at maxDepth (the deepest level of
// the whole tree being built) and isn't the overall root — the root is
// always black regardless of maxDepth, per invariant 3.5.1.
func (t *tree[T]) buildSubtree(values []T, depth, maxDepth int, parent nodeIndex) nodeIndex {
	if len(values) == 0 {
		return nilIndex
	}
	mid := len(values) / 2

	c := black
	if depth != 0 && depth == maxDepth {
		c = red
	}

	idx := t.arena.alloc(node[T]{value: values[mid], parent: parent, color: c})

	left := t.buildSubtree(values[:mid], depth+1, maxDepth, idx)
	right := t.buildSubtree(values[mid+1:], depth+1, maxDepth, idx)

	n := t.arena.get(idx)
	n.left = left
	n.right = right
	n.leftCount = mid

	return idx
}
