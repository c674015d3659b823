package segtree

import "fmt"

// Check validates structural tree invariants: the shape of the node array
// and, for every inner node, that it holds the aggregate of its children.
//
// Values are compared with the configured equality function. Check is O(n)
// and meant for tests and debugging.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.leafCount < 1 || t.leafCount&(t.leafCount-1) != 0 {
		return fmt.Errorf("%w: leaf count %d is not a power of two", ErrBrokenInvariant, t.leafCount)
	}
	if t.leafCount < t.n {
		return fmt.Errorf("%w: leaf count %d smaller than size %d", ErrBrokenInvariant, t.leafCount, t.n)
	}
	if len(t.nodes) != 2*t.leafCount-1 {
		return fmt.Errorf("%w: node count mismatch (%d != %d)", ErrBrokenInvariant,
			len(t.nodes), 2*t.leafCount-1)
	}
	for i := t.leafCount - 2; i >= 0; i-- {
		want := t.cfg.Monoid.Add(t.nodes[2*i+1], t.nodes[2*i+2])
		if !t.cfg.Equal(t.nodes[i], want) {
			return fmt.Errorf("%w: node %d holds %v, children combine to %v",
				ErrBrokenInvariant, i, t.nodes[i], want)
		}
	}
	return nil
}
