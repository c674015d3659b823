/*
Package monoid defines the algebraic contract for values which may be
aggregated in a tree: a monoid over a value type T.

A monoid consists of a neutral element Zero and an associative binary
operation Add. Add is not required to be commutative; clients of monoids
(e.g., segment trees) always combine values in positional order, left to
right.

Package monoid provides a couple of ready-made monoids for numeric types
(Max, Min, Sum, Product, GCD) and an adapter for ad-hoc monoids built from
a neutral element and a function (Of).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package monoid

import "errors"

// ErrLawViolated signals that a monoid instance does not obey the monoid laws
// for some sample values.
var ErrLawViolated = errors.New("monoid: law violated")
