package segtree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Every node is labelled with the range of leaves it covers and its value.
// Padding leaves beyond Len() are drawn dashed.
func (t *Tree[T]) ToDot(w io.Writer) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	t.eachNode(func(i, left, right int) {
		label := fmt.Sprintf("[%d,%d)\\n%v", left, right, t.nodes[i])
		label = strings.ReplaceAll(label, `"`, `\"`)
		isLeaf := right-left == 1
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", i, label,
			nodeDotStyles(isLeaf, isLeaf && left >= t.n))
		if !isLeaf {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", i, 2*i+1)
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", i, 2*i+2)
		}
	})
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("segtree DOT: %s", err.Error())
		return err
	}
	return nil
}

// eachNode visits all nodes in pre-order, together with the range of leaves
// each node covers.
func (t *Tree[T]) eachNode(fn func(i, left, right int)) {
	var walk func(i, left, right int)
	walk = func(i, left, right int) {
		fn(i, left, right)
		if right-left > 1 {
			mid := (left + right) / 2
			walk(2*i+1, left, mid)
			walk(2*i+2, mid, right)
		}
	}
	walk(0, 0, t.leafCount)
}

func nodeDotStyles(isleaf bool, padding bool) string {
	if padding {
		return ",style=dashed,shape=box"
	}
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
