package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/attaswift/RedBlackTree/rbtree"
	"github.com/attaswift/RedBlackTree/schemes"
)

type intKey int

func (k intKey) Compare(other intKey) int { return int(k) - int(other) }

func buildTree(t *testing.T) *rbtree.Tree[intKey, struct{}, string, intKey] {
	tree, err := rbtree.New(schemes.Intrinsic[intKey, string]())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, v := range []intKey{5, 3, 8, 1} {
		tree.Insert(v, "payload")
	}
	return tree
}

func TestDOTIncludesEveryNode(t *testing.T) {
	tree := buildTree(t)
	var buf bytes.Buffer
	if err := DOT(tree, &buf); err != nil {
		t.Fatalf("DOT: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "digraph RedBlackTree {") {
		t.Fatalf("DOT output missing header: %s", out)
	}
	for _, v := range []string{"5", "3", "8", "1"} {
		if !strings.Contains(out, `label="`+v+`"`) {
			t.Fatalf("DOT output missing label %q: %s", v, out)
		}
	}
}

func TestConsoleHandlesEmptyTree(t *testing.T) {
	tree, err := rbtree.New(schemes.Intrinsic[intKey, string]())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	Console(tree, &buf)
	if !strings.Contains(buf.String(), "empty tree") {
		t.Fatalf("Console output missing empty-tree marker: %s", buf.String())
	}
}

func TestHTMLEscapesLabels(t *testing.T) {
	tree, err := rbtree.New(schemes.Intrinsic[stringKey, string]())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tree.Insert("<script>", "payload")
	var buf bytes.Buffer
	if err := HTML(tree, &buf); err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("HTML output was not escaped: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "&lt;script&gt;") {
		t.Fatalf("HTML output missing escaped label: %s", buf.String())
	}
}

type stringKey string

func (s stringKey) Compare(other stringKey) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}
