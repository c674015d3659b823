/*
Package unionfind implements disjoint-set forests.

Sets are represented as trees of element indices. Root lookups compress
paths, and unions attach the root of the smaller set to the root of the
larger one, which keeps operations at nearly constant amortized cost.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package unionfind

// UnionFind is a disjoint-set forest over elements 0…n-1.
//
// Elements out of range are a programmer error and will panic, just like
// indexing a slice out of range.
type UnionFind struct {
	parent []int
	size   []int // size of set, valid for roots only
	count  int   // number of disjoint sets
}

// New creates a forest of n singleton sets.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Root returns the representative of the set containing x, compressing the
// path from x to the root on the way.
func (uf *UnionFind) Root(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Same reports whether x and y belong to the same set.
func (uf *UnionFind) Same(x, y int) bool {
	return uf.Root(x) == uf.Root(y)
}

// Unite merges the sets containing x and y. It returns false if x and y
// have already been in the same set.
func (uf *UnionFind) Unite(x, y int) bool {
	rx, ry := uf.Root(x), uf.Root(y)
	if rx == ry {
		return false
	}
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	uf.count--
	return true
}

// Size returns the number of elements in the set containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Root(x)]
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}
