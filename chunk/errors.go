package chunk

import "errors"

var (
	// ErrChunkFull signals an append to a chunk that is at capacity.
	ErrChunkFull = errors.New("chunk: chunk is full")
	// ErrIndexOutOfBounds signals an invalid logical element position.
	ErrIndexOutOfBounds = errors.New("chunk: index out of bounds")
	// ErrBadChunkSize signals a chunk size that is not a power of two.
	ErrBadChunkSize = errors.New("chunk: chunk size must be a power of two")
)
