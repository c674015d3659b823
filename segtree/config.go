package segtree

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/complib/monoid"
)

// Config configures a segment tree.
type Config[T any] struct {
	// Monoid aggregates values up the tree.
	Monoid monoid.Monoid[T]
	// Equal decides equality of values. It is used for invariant checks only.
	// If unset, reflect.DeepEqual is used.
	Equal func(a, b T) bool
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Equal == nil {
		cfg.Equal = func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}
