package stablevec

import (
	"errors"

	"github.com/npillmayer/stablevec/chunk"
)

var (
	// ErrIndexOutOfBounds signals a logical index at or beyond the vector
	// length. It is returned only by the checked accessor At; all other
	// accessors trust the caller.
	ErrIndexOutOfBounds = errors.New("stablevec: index out of bounds")

	// ErrBadChunkSize signals a chunk size that is not a power of two.
	// Constructors report it before any storage is allocated.
	ErrBadChunkSize = chunk.ErrBadChunkSize
)
