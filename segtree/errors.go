package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrInvalidSize signals a negative logical tree size.
	ErrInvalidSize = errors.New("segtree: invalid size")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrInvalidRange signals a range with start > end.
	ErrInvalidRange = errors.New("segtree: invalid range")
	// ErrBrokenInvariant signals an inner node which does not hold the
	// aggregate of its children.
	ErrBrokenInvariant = errors.New("segtree: broken invariant")
)
