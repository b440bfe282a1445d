package redblacktree

import "github.com/attaswift/RedBlackTree/rbtree"

// NewOrderedMapFrom builds an OrderedMap from keys and values in a single
// bulk pass, the way the teacher's Builder stages fragments and materializes
// a cord in one shot rather than growing it search-by-search. keys must
// already be in strictly ascending order; otherwise NewOrderedMapFrom
// returns ErrIllegalArguments and no map.
func NewOrderedMapFrom[K rbtree.Ordered[K], V any](keys []K, values []V) (*OrderedMap[K, V], error) {
	if len(keys) != len(values) {
		return nil, ErrIllegalArguments
	}
	m := NewOrderedMap[K, V]()
	m.tree.Reserve(len(keys))
	prev := zeroOrderedMapKey[K]()
	for i, k := range keys {
		if i > 0 && prev.Compare(k) >= 0 {
			return nil, ErrIllegalArguments
		}
		m.tree.InsertAfter(m.tree.Rightmost(), k, values[i])
		prev = k
	}
	return m, nil
}

// NewSequenceFrom builds a Sequence holding values in order, in a single
// bulk pass.
func NewSequenceFrom[V any](values []V) *Sequence[V] {
	s := NewSequence[V]()
	s.tree.Reserve(len(values))
	for _, v := range values {
		s.Append(v)
	}
	return s
}

// NewWeightedSequenceFrom builds a WeightedSequence from parallel weights
// and values slices, in a single bulk pass. It returns ErrIllegalArguments
// if the slices differ in length or any weight is negative.
func NewWeightedSequenceFrom[V any](weights []float64, values []V) (*WeightedSequence[V], error) {
	if len(weights) != len(values) {
		return nil, ErrIllegalArguments
	}
	for _, w := range weights {
		if w < 0 {
			return nil, ErrIllegalArguments
		}
	}
	s := NewWeightedSequence[V]()
	s.tree.Reserve(len(weights))
	for i, w := range weights {
		s.Append(w, values[i])
	}
	return s, nil
}

func zeroOrderedMapKey[K rbtree.Ordered[K]]() K {
	var zero K
	return zero
}
