package tlist

// insertFixup restores the Red-Black invariants after attaching z as a red
// leaf. This is the textbook CLRS case split (red uncle: recolor and
// ascend; black uncle: rotate into one of the four shapes and terminate),
// adapted from the walk in original_source's insert_fix_up and from
// Sumatoshi-tech-codefang/pkg/rbtree/rbtree.go's Insert loop. Augmentation
// needs nothing extra here: rotateLeft/rotateRight already keep leftCount
// correct as they run.
func (t *tree[T]) insertFixup(z nodeIndex) {
	for {
		zn := t.arena.get(z)
		p := zn.parent
		if p == nilIndex {
			break
		}
		pn := t.arena.get(p)
		if pn.color == black {
			break
		}

		gp := pn.parent
		gpn := t.arena.get(gp)
		parentIsLeft := gpn.left == p

		var uncle nodeIndex
		if parentIsLeft {
			uncle = gpn.right
		} else {
			uncle = gpn.left
		}

		if t.colorOf(uncle) == red {
			t.arena.get(p).color = black
			t.arena.get(uncle).color = black
			t.arena.get(gp).color = red
			z = gp
			continue
		}

		zIsLeft := pn.left == z
		if parentIsLeft {
			if !zIsLeft {
				t.rotateLeft(p)
				z = p
				p = t.arena.get(z).parent
			}
			t.arena.get(p).color = black
			t.arena.get(gp).color = red
			t.rotateRight(gp)
		} else {
			if zIsLeft {
				t.rotateRight(p)
				z = p
				p = t.arena.get(z).parent
			}
			t.arena.get(p).color = black
			t.arena.get(gp).color = red
			t.rotateLeft(gp)
		}
		break
	}
	t.arena.get(t.root).color = black
}

// deleteFixup restores the invariants after splice has been marked with
// its child's color (a "this subtree is one black-height short" marker),
// while splice is still physically linked into the tree. Cases 1-4 live
// here; cases 5-6 are deleteFixupTerminal. Ported case-for-case from
// Sumatoshi-tech-codefang/pkg/rbtree/rbtree.go's deleteCase1/deleteCase5,
// which uses the same in-place-marker technique to avoid a sentinel nil
// node — the only adaptation is that sibling/parent lookups here are
// plain slot dereferences instead of allocator-index lookups.
func (t *tree[T]) deleteFixup(x nodeIndex) {
	for {
		p := t.arena.get(x).parent
		if p == nilIndex {
			return
		}

		if t.colorOf(t.sibling(x)) == red {
			t.arena.get(p).color = red
			t.arena.get(t.sibling(x)).color = black
			if t.isLeftChild(x) {
				t.rotateLeft(p)
			} else {
				t.rotateRight(p)
			}
		}

		p = t.arena.get(x).parent
		sib := t.sibling(x)
		sibn := t.arena.get(sib)

		if t.colorOf(p) == black && t.colorOf(sib) == black &&
			t.colorOf(sibn.left) == black && t.colorOf(sibn.right) == black {
			t.arena.get(sib).color = red
			x = p
			continue
		}

		if t.colorOf(p) == red && t.colorOf(sib) == black &&
			t.colorOf(sibn.left) == black && t.colorOf(sibn.right) == black {
			t.arena.get(sib).color = red
			t.arena.get(p).color = black
			return
		}

		t.deleteFixupTerminal(x)
		return
	}
}

func (t *tree[T]) deleteFixupTerminal(x nodeIndex) {
	p := t.arena.get(x).parent
	sib := t.sibling(x)
	sibn := t.arena.get(sib)

	if t.isLeftChild(x) && t.colorOf(sib) == black &&
		t.colorOf(sibn.left) == red && t.colorOf(sibn.right) == black {
		t.arena.get(sib).color = red
		t.arena.get(sibn.left).color = black
		t.rotateRight(sib)
	} else if !t.isLeftChild(x) && t.colorOf(sib) == black &&
		t.colorOf(sibn.right) == red && t.colorOf(sibn.left) == black {
		t.arena.get(sib).color = red
		t.arena.get(sibn.right).color = black
		t.rotateLeft(sib)
	}

	p = t.arena.get(x).parent
	sib = t.sibling(x)
	sibn = t.arena.get(sib)

	t.arena.get(sib).color = t.colorOf(p)
	t.arena.get(p).color = black
	if t.isLeftChild(x) {
		t.arena.get(sibn.right).color = black
		t.rotateLeft(p)
	} else {
		t.arena.get(sibn.left).color = black
		t.rotateRight(p)
	}
}

func (t *tree[T]) isLeftChild(idx nodeIndex) bool {
	p := t.arena.get(idx).parent
	return t.arena.get(p).left == idx
}

func (t *tree[T]) sibling(idx nodeIndex) nodeIndex {
	p := t.arena.get(idx).parent
	pn := t.arena.get(p)
	if pn.left == idx {
		return pn.right
	}
	return pn.left
}
