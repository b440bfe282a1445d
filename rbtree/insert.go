package rbtree

// Insert places a new node ordered by its own derived insertion key among
// the existing nodes and returns its handle. Duplicates (equal insertion
// keys) land to the right of existing equal nodes, matching the tree's
// InsertionKey total order.
func (t *Tree[H, S, P, K]) Insert(head H, payload P) Handle {
	targetKey := t.cfg.InsertionKey(t.cfg.Scheme.Zero(), head)
	parent := NoHandle
	dir := Left
	descend(t, t.cfg.InsertionKey, targetKey, func(m Match, h Handle) stepResult {
		parent = h
		if m == Before {
			dir = Left
			return stepLeft
		}
		dir = Right
		return stepRight
	})
	h := t.attachNewLeaf(parent, dir, head, payload)
	T().Debugf("rbtree: inserted handle %d", h)
	return h
}

// InsertAfter places a new node immediately after predecessor in in-order
// position, without recomputing any derived key. A NoHandle predecessor
// means "insert at the current leftmost position".
func (t *Tree[H, S, P, K]) InsertAfter(predecessor Handle, head H, payload P) Handle {
	if predecessor == NoHandle {
		if t.root == NoHandle {
			return t.attachNewLeaf(NoHandle, Left, head, payload)
		}
		return t.attachNewLeaf(t.leftmost, Left, head, payload)
	}
	n := t.arena.at(predecessor)
	if n.right != NoHandle {
		target := t.FurthestUnder(n.right, Left)
		return t.attachNewLeaf(target, Left, head, payload)
	}
	return t.attachNewLeaf(predecessor, Right, head, payload)
}

// InsertBefore places a new node immediately before successor in in-order
// position, without recomputing any derived key. A NoHandle successor
// means "insert at the current rightmost position".
func (t *Tree[H, S, P, K]) InsertBefore(successor Handle, head H, payload P) Handle {
	if successor == NoHandle {
		if t.root == NoHandle {
			return t.attachNewLeaf(NoHandle, Left, head, payload)
		}
		return t.attachNewLeaf(t.rightmost, Right, head, payload)
	}
	n := t.arena.at(successor)
	if n.left != NoHandle {
		target := t.FurthestUnder(n.left, Right)
		return t.attachNewLeaf(target, Right, head, payload)
	}
	return t.attachNewLeaf(successor, Left, head, payload)
}

// SetPayloadOf overwrites the payload of the node whose derived key matches
// head's, inserting a new node if none matches. It returns the previous
// payload and whether a match existed.
func (t *Tree[H, S, P, K]) SetPayloadOf(head H, payload P) (previous P, existed bool) {
	targetKey := t.cfg.InsertionKey(t.cfg.Scheme.Zero(), head)
	h := descend(t, t.cfg.InsertionKey, targetKey, func(m Match, _ Handle) stepResult {
		switch m {
		case Before:
			return stepLeft
		case After:
			return stepRight
		default:
			return stepStop
		}
	})
	if h != NoHandle {
		n := t.arena.at(h)
		previous = n.payload
		n.payload = payload
		return previous, true
	}
	t.Insert(head, payload)
	var zero P
	return zero, false
}

// SetPayloadAt overwrites the payload stored at h and returns the previous
// value.
func (t *Tree[H, S, P, K]) SetPayloadAt(h Handle, payload P) P {
	n := t.arena.at(h)
	previous := n.payload
	n.payload = payload
	return previous
}

// SetHeadAt replaces the head stored at h. The caller must ensure this does
// not change h's derived key — assert verifies it under the same
// contract-by-precondition discipline as every other structural invariant
// in this package.
func (t *Tree[H, S, P, K]) SetHeadAt(h Handle, head H) {
	prefix := t.SummaryBefore(h)
	n := t.arena.at(h)
	oldKey := t.cfg.InsertionKey(prefix, n.head)
	newKey := t.cfg.InsertionKey(prefix, head)
	assert(oldKey.Compare(newKey) == 0, "SetHeadAt: head change must not alter derived key")
	n.head = head
	t.updateSummariesAtAndAbove(h)
}

// attachNewLeaf allocates a new Red leaf at (parent, dir) — or as the root
// if parent is NoHandle — maintains the leftmost/rightmost cache, bubbles
// summaries, and runs the CLRS insert rebalance.
func (t *Tree[H, S, P, K]) attachNewLeaf(parent Handle, dir Dir, head H, payload P) Handle {
	h := t.arena.allocate(node[H, S, P]{
		parent:  parent,
		left:    NoHandle,
		right:   NoHandle,
		color:   Red,
		head:    head,
		summary: t.cfg.Scheme.Seed(head),
		payload: payload,
	})

	if parent == NoHandle {
		t.root, t.leftmost, t.rightmost = h, h, h
	} else {
		t.setChild(parent, dir, h)
		if dir == Left && parent == t.leftmost {
			t.leftmost = h
		}
		if dir == Right && parent == t.rightmost {
			t.rightmost = h
		}
		t.updateSummariesAtAndAbove(parent)
	}

	t.insertFixup(h)
	return h
}

// insertFixup is CLRS RB-INSERT-FIXUP, generalized over Dir so the two
// mirror-image branches (z.p is a left child / z.p is a right child) share
// one implementation.
func (t *Tree[H, S, P, K]) insertFixup(z Handle) {
	for {
		p := t.arena.at(z).parent
		if p == NoHandle || t.colorOf(p) != Red {
			break
		}
		gp := t.arena.at(p).parent
		assert(gp != NoHandle, "insertFixup: a red node must have a grandparent")

		parentDir := Left
		if t.childOf(gp, Right) == p {
			parentDir = Right
		}
		auntDir := parentDir.Opposite()
		aunt := t.childOf(gp, auntDir)

		if t.colorOf(aunt) == Red {
			t.setColor(p, Black)
			t.setColor(aunt, Black)
			t.setColor(gp, Red)
			z = gp
			continue
		}

		if t.childOf(p, auntDir) == z {
			z = p
			t.rotate(z, parentDir)
		}

		p = t.arena.at(z).parent
		gp = t.arena.at(p).parent
		t.setColor(p, Black)
		t.setColor(gp, Red)
		t.rotate(gp, auntDir)
		break
	}
	if t.root != NoHandle {
		t.setColor(t.root, Black)
	}
}
