package redblacktree

import (
	"iter"

	"github.com/attaswift/RedBlackTree/rbtree"
	"github.com/attaswift/RedBlackTree/schemes"
)

// OrderedMap is a red-black tree keyed directly on K, the simplest of the
// three lookup modes: a classic ordered map with O(log n) get/set/delete
// and in-order iteration.
type OrderedMap[K rbtree.Ordered[K], V any] struct {
	tree *rbtree.Tree[K, struct{}, V, K]
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K rbtree.Ordered[K], V any]() *OrderedMap[K, V] {
	// schemes.Intrinsic always supplies both required Config fields, so
	// New cannot fail here.
	tree, _ := rbtree.New(schemes.Intrinsic[K, V]())
	return &OrderedMap[K, V]{tree: tree}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *OrderedMap[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Get returns the value stored at key, and whether it was present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	h := rbtree.Find(m.tree, intrinsicKeyOf[K, V], key)
	if h == rbtree.NoHandle {
		var zero V
		return zero, false
	}
	return m.tree.PayloadAt(h), true
}

// Set stores value at key, returning whatever value was previously stored
// there and whether it existed.
func (m *OrderedMap[K, V]) Set(key K, value V) (previous V, existed bool) {
	return m.tree.SetPayloadOf(key, value)
}

// Delete removes key, returning its value and whether it was present.
func (m *OrderedMap[K, V]) Delete(key K) (V, bool) {
	h := rbtree.Find(m.tree, intrinsicKeyOf[K, V], key)
	if h == rbtree.NoHandle {
		var zero V
		return zero, false
	}
	return m.tree.Remove(h), true
}

// All returns an iterator over the map's entries in ascending key order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := m.tree.Generate()
		for {
			k, v, ok := c.Next()
			if !ok {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Check validates the map's underlying tree invariants; it is intended for
// use in tests.
func (m *OrderedMap[K, V]) Check() error {
	return m.tree.Check()
}

func intrinsicKeyOf[K rbtree.Ordered[K], V any](_ struct{}, head K) K {
	return head
}
