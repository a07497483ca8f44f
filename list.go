package tlist

import (
	"fmt"
	"strings"
)

// TList is an indexable sequence, backed by an order-statistic Red-Black
// tree over a flat arena, that supports O(log N) positional Get, Insert,
// and Remove. Its public surface mirrors a slice's (index in, value out)
// while the tree and arena underneath stay unexported — the split the
// teacher uses between Queues/ArrayQueue.go's exported circArrQ-returning
// constructors and its unexported circArrQ struct.
type TList[T any] struct {
	tree tree[T]

	// generation is bumped on every structural mutation (Insert, Remove,
	// Push, Pop, Clear) and checked by Iter's Next, so an iterator
	// outlived by a concurrent mutation panics instead of walking stale
	// or freed slots.
	generation uint64
}

// New returns an empty TList.
func New[T any]() *TList[T] {
	return &TList[T]{tree: newTree[T](0)}
}

// WithCapacity returns an empty TList whose arena is pre-sized for n
// elements, avoiding reallocation as long as the list never grows past n.
func WithCapacity[T any](n int) *TList[T] {
	return &TList[T]{tree: newTree[T](n)}
}

// FromSlice builds a TList whose in-order traversal reproduces data's
// order, in O(N) with no rotations.
func FromSlice[T any](data []T) *TList[T] {
	l := &TList[T]{tree: newTree[T](len(data))}
	l.tree.buildBalanced(data)
	return l
}

// Len reports the number of elements currently stored.
func (l *TList[T]) Len() int { return l.tree.len() }

// Cap reports the arena's current capacity: how many live-or-freed slots
// are reserved before the next growth.
func (l *TList[T]) Cap() int { return l.tree.cap() }

// Get returns the value at position i and true, or the zero value and
// false if i is out of range.
func (l *TList[T]) Get(i int) (T, bool) {
	p, ok := l.tree.get(i)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// GetPtr returns a pointer to the value at position i, or nil if i is out
// of range. The pointer is valid until the next structural mutation.
func (l *TList[T]) GetPtr(i int) (*T, bool) {
	return l.tree.get(i)
}

// Set overwrites the value at position i, returning false if i is out of
// range. This does not change the tree's shape, so it does not bump
// generation: outstanding iterators stay valid across a Set.
func (l *TList[T]) Set(i int, v T) bool {
	p, ok := l.tree.get(i)
	if !ok {
		return false
	}
	*p = v
	return true
}

// Insert places v at position i, shifting every element at or past i one
// position later. i must satisfy 0 <= i <= Len(); otherwise Insert panics
// with ErrIndexOutOfRange. Use InsertOrPush for a variant that clamps to
// an append instead of panicking.
func (l *TList[T]) Insert(v T, i int) {
	l.tree.insert(v, i)
	l.generation++
}

// Push appends v, equivalent to Insert(v, l.Len()).
func (l *TList[T]) Push(v T) {
	l.tree.push(v)
	l.generation++
}

// InsertOrPush places v at position i if i is in range, or appends it
// otherwise. Unlike Insert, this never panics.
func (l *TList[T]) InsertOrPush(v T, i int) {
	l.tree.insertOrPush(v, i)
	l.generation++
}

// Remove deletes and returns the value at position i, shifting every
// element past i one position earlier. The bool is false, and the value
// zero, if i is out of range.
func (l *TList[T]) Remove(i int) (T, bool) {
	v, ok := l.tree.remove(i)
	if ok {
		l.generation++
	}
	return v, ok
}

// Pop removes and returns the last element, equivalent to
// Remove(l.Len()-1). The bool is false on an empty list.
func (l *TList[T]) Pop() (T, bool) {
	v, ok := l.tree.pop()
	if ok {
		l.generation++
	}
	return v, ok
}

// Clear empties the list in O(1), dropping every node at once rather than
// removing them one at a time.
func (l *TList[T]) Clear() {
	l.tree.clear()
	l.generation++
}

// Clone returns a new TList with an independent copy of every element, in
// the same order, built in O(N) rather than by N individual inserts.
func (l *TList[T]) Clone() *TList[T] {
	return FromSlice(l.slice())
}

// String renders the list's elements in order, for debugging. It mirrors
// the teacher's plain-println debug dumps (Trees/SBTree.go's _Print)
// rather than attempting a structural tree dump, since TList's contract
// (spec.md §6) is positional, not tree-shaped.
func (l *TList[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	it := l.Iter()
	first := true
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
