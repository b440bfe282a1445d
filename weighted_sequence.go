package redblacktree

import (
	"iter"

	"github.com/attaswift/RedBlackTree/rbtree"
	"github.com/attaswift/RedBlackTree/schemes"
)

// WeightedSequence is a list addressed by cumulative weight rather than
// position: each element carries a non-negative weight, and lookups are by
// a target cumulative weight rather than an index, e.g. for mapping a
// pointer offset inside a concatenated byte range back to the piece that
// owns it.
type WeightedSequence[V any] struct {
	tree *rbtree.Tree[float64, float64, V, schemes.WeightedPosition]
}

// NewWeightedSequence returns an empty WeightedSequence.
func NewWeightedSequence[V any]() *WeightedSequence[V] {
	tree, _ := rbtree.New(schemes.Weighted[V]())
	return &WeightedSequence[V]{tree: tree}
}

// Len returns the number of elements.
func (s *WeightedSequence[V]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the sequence has no elements.
func (s *WeightedSequence[V]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// TotalWeight returns the sum of every element's weight.
func (s *WeightedSequence[V]) TotalWeight() float64 {
	if s.tree.IsEmpty() {
		return 0
	}
	return s.tree.SummaryUnder(s.tree.Root())
}

// Append adds value with the given weight to the end of the sequence.
// weight must be non-negative.
func (s *WeightedSequence[V]) Append(weight float64, value V) {
	s.tree.InsertAfter(s.tree.Rightmost(), weight, value)
}

// Prepend adds value with the given weight to the front of the sequence.
func (s *WeightedSequence[V]) Prepend(weight float64, value V) {
	s.tree.InsertBefore(s.tree.Leftmost(), weight, value)
}

// SeekWeight locates the element whose half-open cumulative-weight range
// contains target, returning that element, the cumulative weight at the
// start of its range, and whether such an element exists. A target at or
// beyond TotalWeight reports ok=false.
func (s *WeightedSequence[V]) SeekWeight(target float64) (value V, rangeStart float64, ok bool) {
	if target < 0 {
		var zero V
		return zero, 0, false
	}
	h := rbtree.LeftmostAfter(s.tree, weightedKeyOf[V], schemes.WeightedPosition(target))
	if h == rbtree.NoHandle {
		var zero V
		return zero, 0, false
	}
	start := s.tree.SummaryBefore(h)
	return s.tree.PayloadAt(h), start, true
}

// All returns an iterator over the sequence's elements in order.
func (s *WeightedSequence[V]) All() iter.Seq[V] {
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
func (s *WeightedSequence[V]) Check() error {
	return s.tree.Check()
}

func weightedKeyOf[V any](prefix, head float64) schemes.WeightedPosition {
	return schemes.WeightedPosition(prefix + head)
}
