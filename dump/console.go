package dump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/attaswift/RedBlackTree/rbtree"
)

var (
	redLabel   = color.New(color.FgRed, color.Bold)
	blackLabel = color.New(color.FgWhite, color.Bold)
)

// Console writes an indented, colored text dump of t to w: one line per
// node, indentation tracking depth, Red nodes printed in red and Black
// nodes in white/bold — the same two-color convention the teacher's
// console formatter uses for styled runs, applied here to node color
// instead of text style.
func Console[H, S, P any, K rbtree.Ordered[K]](t *rbtree.Tree[H, S, P, K], w io.Writer) {
	width := consoleWidth()
	fmt.Fprintf(w, "%s (%d nodes)\n", strings.Repeat("-", width), t.Len())
	if t.IsEmpty() {
		fmt.Fprintln(w, "(empty tree)")
		return
	}
	consoleNode(t, t.Root(), 0, w)
}

// consoleWidth detects the attached terminal's width, falling back to a
// fixed column count when stdout is not a terminal (redirected to a file,
// piped, or running under a test harness).
func consoleWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 60
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 60
	}
	return w
}

func consoleNode[H, S, P any, K rbtree.Ordered[K]](t *rbtree.Tree[H, S, P, K], h rbtree.Handle, depth int, w io.Writer) {
	if h == rbtree.NoHandle {
		return
	}
	consoleNode(t, t.LeftOf(h), depth+1, w)

	label := blackLabel
	if t.ColorAt(h) == rbtree.Red {
		label = redLabel
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s = %v\n", indent, label.Sprintf("%v", t.HeadAt(h)), t.PayloadAt(h))

	consoleNode(t, t.RightOf(h), depth+1, w)
}
