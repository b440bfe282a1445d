package redblacktree

import (
	"iter"

	"github.com/attaswift/RedBlackTree/rbtree"
	"github.com/attaswift/RedBlackTree/schemes"
)

// Sequence is a red-black tree addressed purely by position: an
// order-statistic list where insert/remove/read-at-index all run in
// O(log n), and an element's index is a derived key rather than stored
// state that shifts on every mutation.
type Sequence[V any] struct {
	tree *rbtree.Tree[struct{}, int, V, schemes.Ordinal]
}

// NewSequence returns an empty Sequence.
func NewSequence[V any]() *Sequence[V] {
	tree, _ := rbtree.New(schemes.OrderStatistic[V]())
	return &Sequence[V]{tree: tree}
}

// Len returns the number of elements.
func (s *Sequence[V]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the sequence has no elements.
func (s *Sequence[V]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// At returns the element at position i and whether i was in range.
func (s *Sequence[V]) At(i int) (V, bool) {
	h := rbtree.Find(s.tree, ordinalKeyOf[V], schemes.Ordinal(i))
	if h == rbtree.NoHandle {
		var zero V
		return zero, false
	}
	return s.tree.PayloadAt(h), true
}

// Append adds value to the end of the sequence.
func (s *Sequence[V]) Append(value V) {
	s.tree.InsertAfter(s.tree.Rightmost(), struct{}{}, value)
}

// Prepend adds value to the front of the sequence.
func (s *Sequence[V]) Prepend(value V) {
	s.tree.InsertBefore(s.tree.Leftmost(), struct{}{}, value)
}

// InsertAt inserts value so that it occupies position i, shifting every
// later element's derived position by one. i must be in [0, Len()];
// inserting at Len() is equivalent to Append.
func (s *Sequence[V]) InsertAt(i int, value V) {
	if i >= s.tree.Len() {
		s.Append(value)
		return
	}
	successor := rbtree.Find(s.tree, ordinalKeyOf[V], schemes.Ordinal(i))
	s.tree.InsertBefore(successor, struct{}{}, value)
}

// RemoveAt removes the element at position i, returning it and whether i
// was in range.
func (s *Sequence[V]) RemoveAt(i int) (V, bool) {
	h := rbtree.Find(s.tree, ordinalKeyOf[V], schemes.Ordinal(i))
	if h == rbtree.NoHandle {
		var zero V
		return zero, false
	}
	return s.tree.Remove(h), true
}

// All returns an iterator over the sequence's elements in order.
func (s *Sequence[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		c := s.tree.Generate()
		for {
			_, v, ok := c.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Check validates the sequence's underlying tree invariants; it is intended
// for use in tests.
func (s *Sequence[V]) Check() error {
	return s.tree.Check()
}

func ordinalKeyOf[V any](prefix int, _ struct{}) schemes.Ordinal {
	return schemes.Ordinal(prefix)
}
