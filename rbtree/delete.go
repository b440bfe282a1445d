package rbtree

// Remove excises the node at h and returns its payload. If h has two
// children, its in-order successor's head and payload move into h's slot
// and the successor's slot is the one freed. The arena then compacts by
// moving its last live node into the freed slot, so a handle equal to the
// arena's former last slot no longer refers to that node. Use
// RemoveReturningSuccessor when a caller needs to keep following the
// in-order sequence across a removal.
func (t *Tree[H, S, P, K]) Remove(h Handle) P {
	_, payload := t.removeInternal(h, NoHandle)
	return payload
}

// RemoveReturningSuccessor excises the node at h and returns both its
// payload and the handle that is now the in-order successor of the removed
// position (NoHandle if h was the rightmost node). The returned handle
// accounts for every relabeling the removal performs, including the
// two-children content-splice and the arena's swap-with-last compaction.
func (t *Tree[H, S, P, K]) RemoveReturningSuccessor(h Handle) (Handle, P) {
	successorHandle := t.Successor(h)
	return t.removeInternal(h, successorHandle)
}

// removeInternal implements spec.md's four-step removal: splice content
// down to a node with at most one child (Step A), excise that node and run
// the black-height fixup (Steps B/C), then compact the arena (Step D). The
// tracked handle, if it pointed at a node that moves during the splice or
// the compaction, is relabeled accordingly.
func (t *Tree[H, S, P, K]) removeInternal(h Handle, tracked Handle) (Handle, P) {
	hn := t.arena.at(h)
	removedPayload := hn.payload

	victim := h
	if hn.left != NoHandle && hn.right != NoHandle {
		s := t.FurthestUnder(hn.right, Left)
		sn := t.arena.at(s)
		hn.head = sn.head
		hn.payload = sn.payload
		t.updateSummaryAt(h)
		if tracked == s {
			tracked = h
		}
		victim = s
	}

	t.exciseAndRebalance(victim)

	moved := t.arena.removeSwapLast(victim)
	if moved != NoHandle {
		n := t.arena.at(victim)
		if n.parent != NoHandle {
			p := t.arena.at(n.parent)
			if p.left == moved {
				p.left = victim
			} else if p.right == moved {
				p.right = victim
			}
		}
		if n.left != NoHandle {
			t.arena.at(n.left).parent = victim
		}
		if n.right != NoHandle {
			t.arena.at(n.right).parent = victim
		}
		if t.root == moved {
			t.root = victim
		}
		if t.leftmost == moved {
			t.leftmost = victim
		}
		if t.rightmost == moved {
			t.rightmost = victim
		}
		if tracked == moved {
			tracked = victim
		}
	}

	T().Debugf("rbtree: removed handle %d", h)
	return tracked, removedPayload
}

// exciseAndRebalance removes v — which has at most one child — from the
// tree's link structure, maintains leftmost/rightmost, bubbles summaries,
// and runs the CLRS delete rebalance if v's removal could have shortened a
// black height.
func (t *Tree[H, S, P, K]) exciseAndRebalance(v Handle) {
	vn := t.arena.at(v)
	child := vn.left
	if child == NoHandle {
		child = vn.right
	}

	rebalance := vn.color == Black
	if child != NoHandle && t.colorOf(child) == Red {
		t.setColor(child, Black)
		rebalance = false
	}

	parent := vn.parent
	if child != NoHandle {
		t.arena.at(child).parent = parent
	}
	if parent == NoHandle {
		t.root = child
	} else if t.childOf(parent, Left) == v {
		t.setChild(parent, Left, child)
	} else {
		t.setChild(parent, Right, child)
	}

	if t.leftmost == v {
		if child != NoHandle {
			t.leftmost = t.FurthestUnder(child, Left)
		} else {
			t.leftmost = parent
		}
	}
	if t.rightmost == v {
		if child != NoHandle {
			t.rightmost = t.FurthestUnder(child, Right)
		} else {
			t.rightmost = parent
		}
	}

	if parent != NoHandle {
		t.updateSummariesAtAndAbove(parent)
	}

	if rebalance {
		t.blackFixup(child, parent)
	}
}

// blackFixup is CLRS RB-DELETE-FIXUP, generalized over Dir. x is the node
// (possibly NoHandle) that moved into the excised slot and is short one
// black; parent is x's parent, tracked separately because x may be
// NoHandle and so cannot carry its own parent link.
func (t *Tree[H, S, P, K]) blackFixup(x, parent Handle) {
	for x != t.root && t.colorOf(x) == Black {
		dir := Left
		if t.childOf(parent, Right) == x {
			dir = Right
		}
		oppDir := dir.Opposite()
		sibling := t.childOf(parent, oppDir)
		assert(sibling != NoHandle, "blackFixup: sibling must exist")

		if t.colorOf(sibling) == Red {
			// Case 1: red sibling — rotate it into the grandparent's
			// position and recolor, then fall through with the new,
			// necessarily-black sibling.
			t.setColor(sibling, Black)
			t.setColor(parent, Red)
			t.rotate(parent, dir)
			sibling = t.childOf(parent, oppDir)
		}

		close_ := t.childOf(sibling, dir)
		far := t.childOf(sibling, oppDir)

		if t.colorOf(close_) == Black && t.colorOf(far) == Black {
			// Case 2: both nephews black — push the deficiency up to
			// the parent's own slot.
			t.setColor(sibling, Red)
			x = parent
			parent = t.arena.at(x).parent
			continue
		}

		if t.colorOf(far) != Red {
			// Case 3: close nephew red, far nephew black — rotate the
			// close nephew into the sibling's position so Case 4's
			// shape applies uniformly.
			t.setColor(close_, Black)
			t.setColor(sibling, Red)
			t.rotate(sibling, oppDir)
			sibling = t.childOf(parent, oppDir)
			far = t.childOf(sibling, oppDir)
		}

		// Case 4: far nephew red — one rotation restores the black
		// height and terminates the fixup.
		t.setColor(sibling, t.colorOf(parent))
		t.setColor(parent, Black)
		t.setColor(far, Black)
		t.rotate(parent, dir)
		x = t.root
		break
	}
	t.setColor(x, Black)
}
