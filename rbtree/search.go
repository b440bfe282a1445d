package rbtree

// Match is the three-way outcome of comparing a search's target key against
// a visited node's derived key.
type Match int8

const (
	Before   Match = -1
	Matching Match = 0
	After    Match = 1
)

type stepResult uint8

const (
	stepStop stepResult = iota
	stepLeft
	stepRight
)

// descend drives every search entry point in this package. It walks from
// the root, deriving each visited node's key from the running prefix
// summary and the node's head, comparing target against it, and asking
// visit which way to continue. Before leaves the running prefix unchanged;
// continuing right extends it by left.summary ⊕ node.head, regardless of
// whether the step was taken because of an After or a Matching verdict —
// callers that want to keep scanning past a match (leftmost/rightmost
// variants) still get a correctly maintained prefix. descend returns the
// handle on which visit answered stepStop, or NoHandle if the walk fell off
// the tree.
//
// K is the tree's own derived-key type; Q is independent and bound solely
// by the call site, per spec design note: no dynamic dispatch is needed
// because the query key's type is always known where it is used.
func descend[H, S, P any, K Ordered[K], Q Ordered[Q]](
	t *Tree[H, S, P, K],
	keyOf KeyFunc[H, S, Q],
	target Q,
	visit func(m Match, h Handle) stepResult,
) Handle {
	h := t.root
	prefix := t.cfg.Scheme.Zero()
	for h != NoHandle {
		n := t.arena.at(h)
		k := keyOf(prefix, n.head)
		var m Match
		switch c := target.Compare(k); {
		case c < 0:
			m = Before
		case c > 0:
			m = After
		default:
			m = Matching
		}
		switch visit(m, h) {
		case stepStop:
			return h
		case stepLeft:
			h = n.left
		case stepRight:
			left := t.cfg.Scheme.Add(prefix, t.SummaryUnder(n.left))
			prefix = t.cfg.Scheme.Add(left, t.cfg.Scheme.Seed(n.head))
			h = n.right
		}
	}
	return NoHandle
}

// Find returns the first matching node encountered top-down, or NoHandle.
// It is the topmost match: equivalent to TopmostMatching.
func Find[H, S, P any, K Ordered[K], Q Ordered[Q]](t *Tree[H, S, P, K], keyOf KeyFunc[H, S, Q], target Q) Handle {
	return descend(t, keyOf, target, func(m Match, h Handle) stepResult {
		switch m {
		case Before:
			return stepLeft
		case After:
			return stepRight
		default:
			return stepStop
		}
	})
}

// TopmostMatching is an alias for Find, named to mirror the other three
// *Matching search variants.
func TopmostMatching[H, S, P any, K Ordered[K], Q Ordered[Q]](t *Tree[H, S, P, K], keyOf KeyFunc[H, S, Q], target Q) Handle {
	return Find(t, keyOf, target)
}

// LeftmostMatching returns the in-order-first node whose derived key
// matches target, or NoHandle if none does.
func LeftmostMatching[H, S, P any, K Ordered[K], Q Ordered[Q]](t *Tree[H, S, P, K], keyOf KeyFunc[H, S, Q], target Q) Handle {
	best := NoHandle
	descend(t, keyOf, target, func(m Match, h Handle) stepResult {
		switch m {
		case Before:
			return stepLeft
		case After:
			return stepRight
		default:
			best = h
			return stepLeft
		}
	})
	return best
}

// RightmostMatching returns the in-order-last node whose derived key
// matches target, or NoHandle if none does.
func RightmostMatching[H, S, P any, K Ordered[K], Q Ordered[Q]](t *Tree[H, S, P, K], keyOf KeyFunc[H, S, Q], target Q) Handle {
	best := NoHandle
	descend(t, keyOf, target, func(m Match, h Handle) stepResult {
		switch m {
		case Before:
			return stepLeft
		case After:
			return stepRight
		default:
			best = h
			return stepRight
		}
	})
	return best
}

// RightmostBefore returns the in-order-last node whose derived key orders
// strictly before target, or NoHandle if none does.
func RightmostBefore[H, S, P any, K Ordered[K], Q Ordered[Q]](t *Tree[H, S, P, K], keyOf KeyFunc[H, S, Q], target Q) Handle {
	candidate := NoHandle
	descend(t, keyOf, target, func(m Match, h Handle) stepResult {
		if m == After {
			candidate = h
			return stepRight
		}
		return stepLeft
	})
	return candidate
}

// LeftmostAfter returns the in-order-first node whose derived key orders
// strictly after target, or NoHandle if none does.
func LeftmostAfter[H, S, P any, K Ordered[K], Q Ordered[Q]](t *Tree[H, S, P, K], keyOf KeyFunc[H, S, Q], target Q) Handle {
	candidate := NoHandle
	descend(t, keyOf, target, func(m Match, h Handle) stepResult {
		if m == Before {
			candidate = h
			return stepLeft
		}
		return stepRight
	})
	return candidate
}
