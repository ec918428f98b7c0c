/*
Package stablevec provides a growable sequence container whose elements keep
a stable address for the lifetime of the container.

A conventional growable array doubles and reallocates its backing storage,
which invalidates every outstanding pointer on growth. Vector instead stores
elements in fixed-capacity chunks that are allocated once and never move;
growing the container only appends a fresh chunk handle. An element's
address depends on nothing but its chunk, so pointers obtained from Ref, At,
Front, Back or Extend, as well as cursors, survive arbitrarily many appends.

Vectors only grow: there is no element removal, and chunk storage is never
released before the vector itself becomes unreachable (ShrinkToFit is a
documented no-op). The container is not synchronized; see Vector for the
concurrency contract.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package stablevec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stablevec'
func tracer() tracing.Trace {
	return tracing.Select("stablevec")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
