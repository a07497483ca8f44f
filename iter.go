package tlist

// Iter is a borrowing in-order iterator. It walks the tree with an
// explicit left-spine stack rather than a Morris traversal, so the
// traversal never temporarily rewrites a node's child pointers while a
// caller might be reading through a concurrently held reference — the
// same reasoning Trees/base.go's InOrder applies when choosing its stack
// branch over its Morris branch. Any mutation of the originating TList
// after construction invalidates the iterator.
type Iter[T any] struct {
	list       *TList[T]
	stack      []nodeIndex
	generation uint64
}

func (l *TList[T]) Iter() *Iter[T] {
	it := &Iter[T]{list: l, generation: l.generation}
	it.pushLeftSpine(l.tree.root)
	return it
}

func (it *Iter[T]) pushLeftSpine(idx nodeIndex) {
	for idx != nilIndex {
		it.stack = append(it.stack, idx)
		idx = it.list.tree.arena.get(idx).left
	}
}

// Next returns the next value in index order, or the zero value and false
// once exhausted. It panics with ErrConcurrentModification if the source
// TList was mutated since the iterator (or the last call to Next) ran.
func (it *Iter[T]) Next() (T, bool) {
	if it.generation != it.list.generation {
		panic(ErrConcurrentModification{})
	}
	if len(it.stack) == 0 {
		var zero T
		return zero, false
	}
	idx := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	n := it.list.tree.arena.get(idx)
	it.pushLeftSpine(n.right)
	return n.value, true
}

// Drain is a consuming pull-iterator: each call to Next removes and
// returns the current first element of the underlying TList, shrinking it
// as the drain is consumed. It is the Go-idiomatic stand-in for an
// owned-by-value into_iter: rather than move the receiver, Drain empties
// it through repeated calls, which is consistent with this package's
// single-owner, non-consuming method set everywhere else.
type Drain[T any] struct {
	list *TList[T]
}

func (l *TList[T]) Drain() *Drain[T] {
	l.generation++
	return &Drain[T]{list: l}
}

func (d *Drain[T]) Next() (T, bool) {
	v, ok := d.list.tree.remove(0)
	if ok {
		d.list.generation++
	}
	return v, ok
}

// IntoSlice drains the list and accumulates every value into a freshly
// allocated slice, in order. The receiver is empty after this returns.
func (l *TList[T]) IntoSlice() []T {
	out := make([]T, 0, l.Len())
	d := l.Drain()
	for {
		v, ok := d.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// slice is the non-consuming counterpart used internally by Clone and
// String: it borrows via Iter instead of draining.
func (l *TList[T]) slice() []T {
	out := make([]T, 0, l.Len())
	it := l.Iter()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
