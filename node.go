package tlist

// nodeIndex is a slot identifier: an index into the arena's dense node
// store. nilIndex is the reserved sentinel denoting the absence of a
// child, parent, or root — the maximum representable value of the type,
// per the convention the teacher's S-parameterized trees use for their own
// loopback/nil slots.
type nodeIndex uint32

const nilIndex nodeIndex = ^nodeIndex(0)

// color is the Red-Black color of a node. The zero value is red, so a
// freshly zeroed node record (as left behind by free()) never reads back
// as an accidental black node.
type color uint8

const (
	red color = iota
	black
)

// node is a single record in the arena. No node stores its own position or
// its own subtree total size: leftCount, the number of live nodes
// reachable through left, is the sole augmentation, and position is
// derived on descent by accumulating leftCount along the path from root.
type node[T any] struct {
	value  T
	left   nodeIndex
	right  nodeIndex
	parent nodeIndex
	color  color

	// leftCount is the augmentation: the exact count of nodes in this
	// node's left subtree. It is maintained on descent during insert,
	// on path-unwind during remove, and locally recomputed by the two
	// rotation primitives in rotate.go.
	leftCount int
}
