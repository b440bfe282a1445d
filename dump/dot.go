// Package dump supplies diagnostic printers over a red-black tree: a
// Graphviz DOT exporter, a colored terminal dumper, and an HTML exporter.
// None of it reaches into rbtree's arena internals — every printer here is
// built entirely from the public Tree accessors (Len, IsEmpty, Root, LeftOf,
// RightOf, ColorAt, HeadAt, PayloadAt), the same boundary the teacher's dotty.go
// keeps from the Cord facade it renders.
package dump

import (
	"fmt"
	"io"

	"github.com/attaswift/RedBlackTree/rbtree"
)

// DOT writes a Graphviz DOT representation of t to w, one node per tree
// node colored by its red/black state and one edge per parent/child link.
func DOT[H, S, P any, K rbtree.Ordered[K]](t *rbtree.Tree[H, S, P, K], w io.Writer) error {
	fmt.Fprintln(w, "digraph RedBlackTree {")
	fmt.Fprintln(w, "  node [shape=circle, style=filled, fontcolor=white];")
	if t.IsEmpty() {
		fmt.Fprintln(w, "  empty [shape=plaintext, label=\"(empty tree)\"];")
		fmt.Fprintln(w, "}")
		return nil
	}
	ids := make(map[rbtree.Handle]int)
	if err := dotNode(t, t.Root(), ids, w); err != nil {
		return err
	}
	fmt.Fprintln(w, "}")
	return nil
}

func dotID(ids map[rbtree.Handle]int, h rbtree.Handle) int {
	id, ok := ids[h]
	if !ok {
		id = len(ids)
		ids[h] = id
	}
	return id
}

func dotNode[H, S, P any, K rbtree.Ordered[K]](t *rbtree.Tree[H, S, P, K], h rbtree.Handle, ids map[rbtree.Handle]int, w io.Writer) error {
	if h == rbtree.NoHandle {
		return nil
	}
	id := dotID(ids, h)
	fill := "black"
	if t.ColorAt(h) == rbtree.Red {
		fill = "firebrick2"
	}
	label := fmt.Sprintf("%v", t.HeadAt(h))
	if _, err := fmt.Fprintf(w, "  n%d [label=%q, fillcolor=%q];\n", id, label, fill); err != nil {
		return err
	}
	for _, dir := range []rbtree.Dir{rbtree.Left, rbtree.Right} {
		var child rbtree.Handle
		if dir == rbtree.Left {
			child = t.LeftOf(h)
		} else {
			child = t.RightOf(h)
		}
		if child == rbtree.NoHandle {
			continue
		}
		childID := dotID(ids, child)
		if _, err := fmt.Fprintf(w, "  n%d -> n%d;\n", id, childID); err != nil {
			return err
		}
		if err := dotNode(t, child, ids, w); err != nil {
			return err
		}
	}
	return nil
}
