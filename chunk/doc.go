/*
Package chunk provides the storage layer for stable vectors: fixed-capacity
element blocks and the growable index of block handles.

A chunk's backing storage is allocated once and never moves. The index grows
by appending chunk handles; resizing the handle list moves handles only,
never the chunk bodies they refer to. This indirection is what keeps element
addresses stable across container growth.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package chunk

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
