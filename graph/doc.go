/*
Package graph provides shortest-path search and grid helpers.

Dijkstra computes single-source shortest paths on directed graphs with
non-negative integer edge costs. Adjacent4 enumerates the neighbours of a
cell in a rectangular grid.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package graph

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'complib'
func tracer() tracing.Trace {
	return tracing.Select("complib")
}

// ErrNodeOutOfRange signals a node index outside of the graph.
var ErrNodeOutOfRange = errors.New("graph: node out of range")
