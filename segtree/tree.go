package segtree

import (
	"fmt"
	"math/bits"
)

// Tree is a segment tree over values of type T, aggregated by a monoid.
//
// Nodes are stored in array layout: node 0 is the root, the children of
// node i are 2i+1 and 2i+2, and leaves occupy the last leafCount slots.
// Every inner node equals Add(left child, right child) whenever control
// returns to the client.
type Tree[T any] struct {
	cfg       Config[T]
	n         int // logical size
	leafCount int // power of two >= n
	nodes     []T // len(nodes) == 2*leafCount-1
}

// New creates a tree for size logical positions, all holding the monoid's
// neutral element.
//
// A size of 0 is legal and results in a tree with a single (neutral) leaf.
func New[T any](cfg Config[T], size int) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	cfg = cfg.normalized()
	leaves := leafCountFor(size)
	t := &Tree[T]{
		cfg:       cfg,
		n:         size,
		leafCount: leaves,
		nodes:     make([]T, 2*leaves-1),
	}
	zero := cfg.Monoid.Zero()
	for i := range t.nodes {
		t.nodes[i] = zero
	}
	tracer().Debugf("segtree: new tree of size %d with %d leaves", size, leaves)
	return t, nil
}

// From creates a tree holding values at successive leaves.
//
// The result is the same as calling New(cfg, len(values)) and updating every
// position in index order. Inner nodes are computed bottom-up in one pass,
// which is O(n) instead of O(n log n).
func From[T any](cfg Config[T], values []T) (*Tree[T], error) {
	t, err := New(cfg, len(values))
	if err != nil {
		return nil, err
	}
	copy(t.nodes[t.leafCount-1:], values)
	for i := t.leafCount - 2; i >= 0; i-- {
		t.recombine(i)
	}
	return t, nil
}

// leafCountFor returns the smallest power of two >= size, with 0 and 1
// both mapping to 1.
func leafCountFor(size int) int {
	if size <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(size-1))
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	if t == nil {
		return Config[T]{}
	}
	return t.cfg
}

// Len returns the logical size of the tree, i.e. the size it was created with.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// LeafCount returns the number of leaves, which is a power of two >= Len().
// Positions in [Len(), LeafCount()) are padding.
func (t *Tree[T]) LeafCount() int {
	if t == nil {
		return 0
	}
	return t.leafCount
}

// Summary returns the aggregate of all leaves, which is held by the root.
func (t *Tree[T]) Summary() T {
	if t == nil {
		var zero T
		return zero
	}
	return t.nodes[0]
}

// Get returns the value at leaf index.
func (t *Tree[T]) Get(index int) (T, error) {
	var zero T
	if t == nil {
		return zero, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index >= t.leafCount {
		return zero, fmt.Errorf("%w: index %d, leaf count %d", ErrIndexOutOfBounds, index, t.leafCount)
	}
	return t.nodes[t.leaf(index)], nil
}

// Update overwrites the value at leaf index and recombines all ancestors of
// the leaf. index must be in [0, LeafCount()); indices at or beyond Len()
// write into padding.
//
// Indices out of range are never clamped; Update returns ErrIndexOutOfBounds
// and leaves the tree untouched.
func (t *Tree[T]) Update(index int, value T) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index >= t.leafCount {
		return fmt.Errorf("%w: index %d, leaf count %d", ErrIndexOutOfBounds, index, t.leafCount)
	}
	i := t.leaf(index)
	t.nodes[i] = value
	for i > 0 {
		i = (i - 1) / 2
		t.recombine(i)
	}
	return nil
}

// MustUpdate is like Update, but panics if index is out of range.
func (t *Tree[T]) MustUpdate(index int, value T) {
	if err := t.Update(index, value); err != nil {
		panic(err)
	}
}

// Query aggregates the values at leaf positions [start, end), in positional
// order. An empty range returns the neutral element.
//
// Ranges must satisfy 0 <= start <= end <= LeafCount(). Invalid ranges result
// in ErrIndexOutOfBounds or ErrInvalidRange.
func (t *Tree[T]) Query(start, end int) (T, error) {
	var zero T
	if t == nil {
		return zero, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if start < 0 || end > t.leafCount {
		return zero, fmt.Errorf("%w: range [%d,%d), leaf count %d",
			ErrIndexOutOfBounds, start, end, t.leafCount)
	}
	if start > end {
		return zero, fmt.Errorf("%w: [%d,%d)", ErrInvalidRange, start, end)
	}
	if start == end {
		return t.cfg.Monoid.Zero(), nil
	}
	return t.query(start, end, 0, 0, t.leafCount), nil
}

// MustQuery is like Query, but panics if the range is invalid.
func (t *Tree[T]) MustQuery(start, end int) T {
	v, err := t.Query(start, end)
	if err != nil {
		panic(err)
	}
	return v
}

// query aggregates [start, end) within the subtree at node i, which covers
// leaves [left, right).
//
// Nodes disjoint from the query range contribute the neutral element, nodes
// contained in it contribute their stored value without further descent.
// Only nodes partially covered are split at their midpoint; there are at most
// two of them per level.
func (t *Tree[T]) query(start, end, i, left, right int) T {
	if right <= start || end <= left {
		return t.cfg.Monoid.Zero()
	}
	if start <= left && right <= end {
		return t.nodes[i]
	}
	assert(right-left > 1, "query descending below leaf level")
	mid := (left + right) / 2
	l := t.query(start, end, 2*i+1, left, mid)
	r := t.query(start, end, 2*i+2, mid, right)
	return t.cfg.Monoid.Add(l, r)
}

// leaf returns the node index of leaf position index.
func (t *Tree[T]) leaf(index int) int {
	return index + t.leafCount - 1
}

// recombine recomputes inner node i from its children.
func (t *Tree[T]) recombine(i int) {
	t.nodes[i] = t.cfg.Monoid.Add(t.nodes[2*i+1], t.nodes[2*i+2])
}
