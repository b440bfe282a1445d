package schemes

import "github.com/attaswift/RedBlackTree/rbtree"

// WeightedPosition is the derived key of a Weighted tree: the cumulative
// weight of every element up to and including a node.
type WeightedPosition float64

// Compare implements rbtree.Ordered[WeightedPosition].
func (w WeightedPosition) Compare(other WeightedPosition) int {
	switch {
	case w < other:
		return -1
	case w > other:
		return 1
	default:
		return 0
	}
}

// weightScheme sums each node's own head — its weight — into the subtree
// summary, so a node's derived key is the running total of every weight up
// to and including its own.
type weightScheme struct{}

func (weightScheme) Zero() float64             { return 0 }
func (weightScheme) Add(l, r float64) float64  { return l + r }
func (weightScheme) Seed(head float64) float64 { return head }

func weightedKey(prefix float64, head float64) WeightedPosition {
	return WeightedPosition(prefix + head)
}

// Weighted builds a Config for a sequence where each element carries its
// own numeric weight (a duration, a byte length, a probability mass) and is
// addressed by cumulative weight: its derived key is the total weight up to
// and including itself — the same shape as the
// teacher's byte/line Dimensions over text chunks, generalized to an
// arbitrary per-element weight instead of a fixed chunk encoding.
func Weighted[P any]() rbtree.Config[float64, float64, P, WeightedPosition] {
	return rbtree.Config[float64, float64, P, WeightedPosition]{
		Scheme:       weightScheme{},
		InsertionKey: weightedKey,
	}
}
