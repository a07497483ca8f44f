package tlist

import "fmt"

// ErrIndexOutOfRange is panicked by Insert when called with an index
// greater than Len(). InsertOrPush never panics; it appends instead. This
// is the implementation's resolution of the Open Question in spec.md §9:
// out-of-range Insert is rejected rather than silently treated as a push.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("tlist: index %d out of range for length %d", e.Index, e.Len)
}

// ErrConcurrentModification is panicked by an Iter's Next when the TList it
// was created from was mutated after the iterator's construction.
type ErrConcurrentModification struct{}

func (e ErrConcurrentModification) Error() string {
	return "tlist: list modified during iteration"
}

// ErrInvalidSlot is panicked only by arena.checkedGet: a slot id that is
// out of range or currently on the free list. Unreachable from the public
// TList API under correct internal use; it exists for tests that want to
// assert the arena never hands back a stale or wild slot id.
type ErrInvalidSlot struct {
	Slot nodeIndex
	Cap  int
}

func (e ErrInvalidSlot) Error() string {
	return fmt.Sprintf("tlist: invalid slot %d (capacity %d)", e.Slot, e.Cap)
}
