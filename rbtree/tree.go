package rbtree

// Tree is an arena-backed red-black tree augmented with a monoid summary.
// H is the per-node head, S the summary monoid, P the payload, and K the
// derived key type used to order nodes inserted through Insert/SetPayloadOf.
// A zero Tree is not usable; construct one with New.
type Tree[H, S, P any, K Ordered[K]] struct {
	cfg       Config[H, S, P, K]
	arena     arena[H, S, P]
	root      Handle
	leftmost  Handle
	rightmost Handle
	zeroSized bool
}

// New constructs an empty Tree from the given Config. It returns
// ErrInvalidConfig (wrapped) if the config is missing required fields.
func New[H, S, P any, K Ordered[K]](cfg Config[H, S, P, K]) (*Tree[H, S, P, K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[H, S, P, K]{
		cfg:       cfg,
		root:      NoHandle,
		leftmost:  NoHandle,
		rightmost: NoHandle,
		zeroSized: zeroSizedOf[H, S](cfg.Scheme),
	}, nil
}

// Config returns the tree's configuration.
func (t *Tree[H, S, P, K]) Config() Config[H, S, P, K] {
	return t.cfg
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[H, S, P, K]) IsEmpty() bool {
	return t.root == NoHandle
}

// Len returns the number of nodes in the tree.
func (t *Tree[H, S, P, K]) Len() int {
	return t.arena.len()
}

// Root returns the handle of the root node, or NoHandle if the tree is
// empty.
func (t *Tree[H, S, P, K]) Root() Handle {
	return t.root
}

// Leftmost returns the handle of the in-order-first node, or NoHandle if
// the tree is empty.
func (t *Tree[H, S, P, K]) Leftmost() Handle {
	return t.leftmost
}

// Rightmost returns the handle of the in-order-last node, or NoHandle if
// the tree is empty.
func (t *Tree[H, S, P, K]) Rightmost() Handle {
	return t.rightmost
}

// HeadAt returns the head stored at h.
func (t *Tree[H, S, P, K]) HeadAt(h Handle) H {
	return t.arena.at(h).head
}

// PayloadAt returns the payload stored at h.
func (t *Tree[H, S, P, K]) PayloadAt(h Handle) P {
	return t.arena.at(h).payload
}

// ColorAt returns the color of the node at h.
func (t *Tree[H, S, P, K]) ColorAt(h Handle) Color {
	return t.colorOf(h)
}

// ParentOf, LeftOf and RightOf expose the raw structural links, for
// diagnostic printers that walk the tree without reimplementing navigation.
func (t *Tree[H, S, P, K]) ParentOf(h Handle) Handle { return t.arena.at(h).parent }
func (t *Tree[H, S, P, K]) LeftOf(h Handle) Handle   { return t.arena.at(h).left }
func (t *Tree[H, S, P, K]) RightOf(h Handle) Handle  { return t.arena.at(h).right }

// KeyAt recomputes the derived insertion key of the node at h.
func (t *Tree[H, S, P, K]) KeyAt(h Handle) K {
	return t.cfg.InsertionKey(t.SummaryBefore(h), t.arena.at(h).head)
}

// Reserve ensures the tree's backing storage can hold at least n nodes
// without reallocating, for callers staging a bulk build who know the final
// size up front.
func (t *Tree[H, S, P, K]) Reserve(n int) {
	t.arena.reserve(n)
}

// Clear empties the tree. If keepCapacity is true the underlying arena
// storage is retained for reuse by subsequent inserts.
func (t *Tree[H, S, P, K]) Clear(keepCapacity bool) {
	if keepCapacity {
		t.arena.nodes = t.arena.nodes[:0]
	} else {
		t.arena.nodes = nil
	}
	t.root, t.leftmost, t.rightmost = NoHandle, NoHandle, NoHandle
}

func (t *Tree[H, S, P, K]) slotOf(h Handle) Slot {
	n := t.arena.at(h)
	if n.parent == NoHandle {
		return Slot{IsRoot: true}
	}
	p := t.arena.at(n.parent)
	if p.left == h {
		return Slot{Parent: n.parent, Dir: Left}
	}
	return Slot{Parent: n.parent, Dir: Right}
}
