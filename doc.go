/*
Package complib is a small library of generic algorithmic primitives.

Segment Trees

The centerpiece is package segtree, a range-query tree over an implicit
array-backed binary tree. It is generic over any monoid supplied by the
client (see package monoid): an associative operation with a neutral
element, like maximum, minimum, sum or gcd. Point updates and range
aggregations both run in O(log n).

Unlike the interval-stabbing segment tree of computational geometry, this
is the range-query variant: leaf i holds the value at position i, and every
inner node holds the aggregate of the leaves below it. A tree over n
positions uses O(n) storage and can be built in O(n) time.

_________________________________________________________________________

Collaborating routines live in packages of their own:

  - unionfind: disjoint-set forests with path compression,
  - graph: Dijkstra shortest paths and grid neighbourhoods,
  - modular: arithmetic modulo 1e9+7 and combinatorics tables,
  - factor: prime factorization by trial division.

None of them depends on the internal representation of a segment tree. Package
modular provides monoids over residues, which may be aggregated in a
segment tree like any other value type.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package complib

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Error is an error type for the complib module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

// ErrMalformedInput is flagged by readers of problem instances whenever
// the input does not follow the expected format.
const ErrMalformedInput = Error("malformed input")

// Version is the version of the library.
const Version = "0.3.0"
