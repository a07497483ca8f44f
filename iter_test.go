package tlist

import "testing"

func TestIter_WalksInOrder(t *testing.T) {
	l := FromSlice([]int{5, 1, 4, 2, 3})
	it := l.Iter()
	want := []int{5, 1, 4, 2, 3}
	for i, w := range want {
		v, ok := it.Next()
		if !ok || v != w {
			t.Fatalf("Next() #%d = %d, %v; want %d, true", i, v, ok, w)
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("exhausted iterator should report false")
	}
}

func TestIter_PanicsOnConcurrentModification(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it := l.Iter()
	it.Next()
	l.Push(4)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic after mutation during iteration")
		}
	}()
	it.Next()
}

func TestIter_SurvivesNonStructuralSet(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it := l.Iter()
	l.Set(0, 99)
	// Set does not bump generation, so the iterator should keep working.
	// Its stack holds slot indices, not values, so it reads 99 (the
	// post-Set value) once it reaches that slot; here we only assert it
	// doesn't panic.
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
}

func TestDrain_EmptiesListInOrder(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	d := l.Drain()
	want := []int{1, 2, 3}
	for i, w := range want {
		v, ok := d.Next()
		if !ok || v != w {
			t.Fatalf("Next() #%d = %d, %v; want %d, true", i, v, ok, w)
		}
	}
	if _, ok := d.Next(); ok {
		t.Fatalf("exhausted drain should report false")
	}
	if l.Len() != 0 {
		t.Fatalf("source list should be empty after full drain, len=%d", l.Len())
	}
}

func TestIntoSlice_MatchesOrderAndEmpties(t *testing.T) {
	l := FromSlice([]int{7, 8, 9})
	got := l.IntoSlice()
	want := []int{7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IntoSlice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if l.Len() != 0 {
		t.Fatalf("list should be empty after IntoSlice, len=%d", l.Len())
	}
}
