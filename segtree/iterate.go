package segtree

// ForEachLeaf walks the logical leaves [0, Len()) in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEachLeaf(fn func(index int, value T) bool) {
	if t == nil || fn == nil {
		return
	}
	for index := 0; index < t.n; index++ {
		if !fn(index, t.nodes[t.leaf(index)]) {
			return
		}
	}
}

// Values returns a copy of the values at the logical leaves.
func (t *Tree[T]) Values() []T {
	if t == nil {
		return nil
	}
	values := make([]T, 0, t.n)
	t.ForEachLeaf(func(_ int, value T) bool {
		values = append(values, value)
		return true
	})
	return values
}
