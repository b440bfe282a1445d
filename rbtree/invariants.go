package rbtree

import (
	"fmt"
	"reflect"
)

// Check validates every structural invariant from spec.md §3/§8: parent/
// child link symmetry, root-is-black, no red node with a red child,
// uniform black height on every path, non-decreasing key order under the
// tree's own InsertionKey (equal keys, such as duplicates placed by Insert,
// are accepted), correctly cached leftmost/rightmost handles, and
// — unless the scheme is zero-sized — correctly cached subtree summaries.
// It returns the first violation found, or nil if the tree is consistent.
func (t *Tree[H, S, P, K]) Check() error {
	if t.arena.len() == 0 {
		if t.root != NoHandle || t.leftmost != NoHandle || t.rightmost != NoHandle {
			return fmt.Errorf("rbtree: empty arena but root/leftmost/rightmost not NoHandle")
		}
		return nil
	}
	if t.colorOf(t.root) != Black {
		return fmt.Errorf("rbtree: root is not black")
	}

	var prevKey *K
	checkedLeftmost, checkedRightmost := NoHandle, NoHandle
	_, err := t.checkSubtree(t.root, NoHandle, t.cfg.Scheme.Zero(), &prevKey, &checkedLeftmost, &checkedRightmost)
	if err != nil {
		return err
	}
	if checkedLeftmost != t.leftmost {
		return fmt.Errorf("rbtree: cached leftmost %d does not match actual %d", t.leftmost, checkedLeftmost)
	}
	if checkedRightmost != t.rightmost {
		return fmt.Errorf("rbtree: cached rightmost %d does not match actual %d", t.rightmost, checkedRightmost)
	}
	return nil
}

// checkSubtree recursively validates the subtree rooted at h, returning its
// black height. prevKey tracks the most recently visited node's derived
// key in in-order traversal order, to check that no key orders after its
// in-order successor's.
func (t *Tree[H, S, P, K]) checkSubtree(h, parent Handle, prefix S, prevKey **K, leftmost, rightmost *Handle) (int, error) {
	if h == NoHandle {
		return 1, nil
	}
	n := t.arena.at(h)
	if n.parent != parent {
		return 0, fmt.Errorf("rbtree: node %d parent link %d does not match actual parent %d", h, n.parent, parent)
	}
	if n.color == Red {
		if t.colorOf(n.left) == Red || t.colorOf(n.right) == Red {
			return 0, fmt.Errorf("rbtree: red node %d has a red child", h)
		}
	}

	leftBH, err := t.checkSubtree(n.left, h, prefix, prevKey, leftmost, rightmost)
	if err != nil {
		return 0, err
	}

	key := t.cfg.InsertionKey(t.cfg.Scheme.Add(prefix, t.SummaryUnder(n.left)), n.head)
	if *prevKey != nil && (**prevKey).Compare(key) > 0 {
		return 0, fmt.Errorf("rbtree: node %d breaks ascending key order", h)
	}
	*prevKey = &key
	if *leftmost == NoHandle {
		*leftmost = h
	}
	*rightmost = h

	rightPrefix := t.cfg.Scheme.Add(t.cfg.Scheme.Add(prefix, t.SummaryUnder(n.left)), t.cfg.Scheme.Seed(n.head))
	rightBH, err := t.checkSubtree(n.right, h, rightPrefix, prevKey, leftmost, rightmost)
	if err != nil {
		return 0, err
	}

	if leftBH != rightBH {
		return 0, fmt.Errorf("rbtree: node %d has unequal black heights (%d vs %d)", h, leftBH, rightBH)
	}

	if !t.zeroSized {
		want := t.cfg.Scheme.Add(t.cfg.Scheme.Add(t.SummaryUnder(n.left), t.cfg.Scheme.Seed(n.head)), t.SummaryUnder(n.right))
		if !reflect.DeepEqual(want, n.summary) {
			return 0, fmt.Errorf("rbtree: node %d has a stale cached summary", h)
		}
	}

	bh := leftBH
	if n.color == Black {
		bh++
	}
	return bh, nil
}
