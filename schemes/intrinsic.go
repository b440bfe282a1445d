// Package schemes supplies concrete rbtree.KeyScheme instances for the
// three lookup modes spec.md describes: intrinsic-key ordered maps,
// order-statistic (positional) sequences, and weighted-position sequences.
package schemes

import "github.com/attaswift/RedBlackTree/rbtree"

// intrinsicScheme is the identity monoid: its summary carries no
// information, so every node's derived key is simply its own head.
type intrinsicScheme[T rbtree.Ordered[T]] struct{}

func (intrinsicScheme[T]) Zero() struct{}             { return struct{}{} }
func (intrinsicScheme[T]) Add(_, _ struct{}) struct{} { return struct{}{} }
func (intrinsicScheme[T]) Seed(_ T) struct{}          { return struct{}{} }
func (intrinsicScheme[T]) ZeroSize() bool             { return true }

func intrinsicKey[T rbtree.Ordered[T]](_ struct{}, head T) T {
	return head
}

// Intrinsic builds a Config for an ordered map keyed directly on the head
// value, with no positional or weighted structure: the classic
// string/int/whatever-keyed map, the simplest of the three lookup modes.
func Intrinsic[T rbtree.Ordered[T], P any]() rbtree.Config[T, struct{}, P, T] {
	return rbtree.Config[T, struct{}, P, T]{
		Scheme:       intrinsicScheme[T]{},
		InsertionKey: intrinsicKey[T],
	}
}
