package schemes

import "github.com/attaswift/RedBlackTree/rbtree"

// Dimension is a numeric projection of a tree's summary monoid, in the
// style of the teacher's btree.Dimension: Zero is the identity accumulator,
// Add folds one more summary chunk into it, and Compare orders an
// accumulated value against a target. It lets a caller seek by a
// projection of S (a byte offset out of a richer line/byte/char summary,
// say) without that projection needing to be the tree's own derived key.
type Dimension[S, D any] interface {
	Zero() D
	Add(acc D, summary S) D
	Compare(acc, target D) int
}

// Seek descends the tree accumulating dim over every node strictly before
// the current position, stopping at the first node whose own accumulated
// value (left subtree plus itself) reaches target. It returns that node's
// handle and the accumulated value strictly before it — NoHandle and the
// whole tree's accumulated dimension if target is never reached.
func Seek[H, S, P any, K rbtree.Ordered[K], D any](
	t *rbtree.Tree[H, S, P, K],
	dim Dimension[S, D],
	target D,
) (rbtree.Handle, D) {
	h := t.Root()
	acc := dim.Zero()
	for h != rbtree.NoHandle {
		leftAcc := dim.Add(acc, t.SummaryUnder(t.LeftOf(h)))
		nodeAcc := dim.Add(leftAcc, t.SeedAt(h))
		if dim.Compare(nodeAcc, target) < 0 {
			acc = nodeAcc
			right := t.RightOf(h)
			if right == rbtree.NoHandle {
				return rbtree.NoHandle, acc
			}
			h = right
			continue
		}
		if dim.Compare(leftAcc, target) < 0 {
			return h, leftAcc
		}
		left := t.LeftOf(h)
		if left == rbtree.NoHandle {
			return h, acc
		}
		h = left
	}
	return rbtree.NoHandle, acc
}
