package segtree

import (
	"strings"
	"testing"

	"github.com/npillmayer/complib/monoid"
)

func TestToDot(t *testing.T) {
	tree, err := From(Config[int]{Monoid: monoid.Sum[int]{}}, []int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := tree.ToDot(&b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT header, have %q", dot[:20])
	}
	if strings.Count(dot, "->") != 6 {
		t.Errorf("expected 6 edges for 7 nodes, have %d", strings.Count(dot, "->"))
	}
	if !strings.Contains(dot, `[0,4)\n6`) {
		t.Errorf("expected root label with sum 6")
	}
	if strings.Count(dot, "style=dashed") != 1 {
		t.Errorf("expected exactly one padding leaf")
	}
}
