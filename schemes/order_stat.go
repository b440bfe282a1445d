package schemes

import "github.com/attaswift/RedBlackTree/rbtree"

// Ordinal is the derived key of an OrderStatistic tree: a zero-based
// position in the sequence.
type Ordinal int

// Compare implements rbtree.Ordered[Ordinal].
func (o Ordinal) Compare(other Ordinal) int {
	return int(o) - int(other)
}

// countScheme gives every node a weight of exactly one: the running prefix
// summed over a subtree is its size, so the derived key of a node is its
// zero-based rank among all of the tree's nodes in in-order position.
type countScheme struct{}

func (countScheme) Zero() int           { return 0 }
func (countScheme) Add(l, r int) int    { return l + r }
func (countScheme) Seed(_ struct{}) int { return 1 }

func ordinalKey(prefix int, _ struct{}) Ordinal {
	return Ordinal(prefix)
}

// OrderStatistic builds a Config for a sequence addressed purely by
// position: inserting, removing, or reading the Nth element runs in
// O(log n) without ever touching an element's neighbors, because the
// position is a derived key rather than stored state. New elements are
// normally placed with Tree.InsertAfter/InsertBefore rather than the
// keyed Insert, since a position only becomes meaningful once an element
// actually occupies it.
func OrderStatistic[P any]() rbtree.Config[struct{}, int, P, Ordinal] {
	return rbtree.Config[struct{}, int, P, Ordinal]{
		Scheme:       countScheme{},
		InsertionKey: ordinalKey,
	}
}
