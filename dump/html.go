package dump

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/attaswift/RedBlackTree/rbtree"
)

// HTML writes a nested <ul>/<li> rendering of t to w, one list item per
// node, with a CSS class marking its color and every label escaped through
// x/net/html's EscapeString the way the teacher's HTML formatter escapes styled
// text runs before writing them out.
func HTML[H, S, P any, K rbtree.Ordered[K]](t *rbtree.Tree[H, S, P, K], w io.Writer) error {
	fmt.Fprintln(w, `<ul class="rbtree">`)
	if !t.IsEmpty() {
		if err := htmlNode(t, t.Root(), w); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, `</ul>`)
	return nil
}

func htmlNode[H, S, P any, K rbtree.Ordered[K]](t *rbtree.Tree[H, S, P, K], h rbtree.Handle, w io.Writer) error {
	cls := "black"
	if t.ColorAt(h) == rbtree.Red {
		cls = "red"
	}
	label := html.EscapeString(fmt.Sprintf("%v", t.HeadAt(h)))
	payload := html.EscapeString(fmt.Sprintf("%v", t.PayloadAt(h)))
	if _, err := fmt.Fprintf(w, `<li class="%s">%s = %s`, cls, label, payload); err != nil {
		return err
	}

	left, right := t.LeftOf(h), t.RightOf(h)
	if left != rbtree.NoHandle || right != rbtree.NoHandle {
		fmt.Fprintln(w, `<ul>`)
		if left != rbtree.NoHandle {
			if err := htmlNode(t, left, w); err != nil {
				return err
			}
		}
		if right != rbtree.NoHandle {
			if err := htmlNode(t, right, w); err != nil {
				return err
			}
		}
		fmt.Fprintln(w, `</ul>`)
	}
	fmt.Fprintln(w, `</li>`)
	return nil
}
