/*
Package segtree provides a generic segment tree for range aggregation.

A segment tree stores a sequence of values at the leaves of a complete binary
tree. Every inner node holds the aggregate of its two children, computed by a
client-supplied monoid (see package monoid). This lets the tree answer
aggregation queries over arbitrary half-open ranges [start, end) and apply
point updates, both in O(log n).

The tree is pointer-free: nodes live in a single slice, with the root at
index 0 and the children of node i at 2i+1 and 2i+2. The leaf count is the
smallest power of two covering the logical size; surplus leaves hold the
monoid's neutral element.

	cfg := segtree.Config[int64]{Monoid: monoid.Max[int64]{}}
	tree, _ := segtree.From(cfg, []int64{3, -1, 4, 1, 5, 9, 2, 6})
	m, _ := tree.Query(1, 4) // m == 4

Results of queries always combine values in positional order, left to right.
Monoids therefore need not be commutative.

Trees are not safe for concurrent mutation. Concurrent queries on a tree
without an update in flight are safe.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'complib'
func tracer() tracing.Trace {
	return tracing.Select("complib")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
