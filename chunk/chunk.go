package chunk

// Chunk is a fixed-capacity, append-only block of elements.
//
// The backing storage is allocated exactly once, when the chunk is created,
// and is never reallocated, shifted or compacted afterwards. A pointer to a
// populated slot therefore stays valid for the lifetime of the chunk.
type Chunk[T any] struct {
	buf []T // allocated at construction with len == capacity, never reallocated
	n   int // populated slots, 0 <= n <= len(buf)
}

// New creates an empty chunk with room for capacity elements.
func New[T any](capacity int) *Chunk[T] {
	assert(capacity > 0, "chunk capacity must be positive")
	return &Chunk[T]{buf: make([]T, capacity)}
}

// Len returns the number of populated slots.
func (c *Chunk[T]) Len() int {
	return c.n
}

// Cap returns the fixed slot capacity.
func (c *Chunk[T]) Cap() int {
	return len(c.buf)
}

// Full reports whether no free slot is left.
func (c *Chunk[T]) Full() bool {
	return c.n == len(c.buf)
}

// Push appends value to the chunk. Existing slots are never moved.
//
// Returns ErrChunkFull if the chunk is at capacity.
func (c *Chunk[T]) Push(value T) error {
	if c.Full() {
		return ErrChunkFull
	}
	c.buf[c.n] = value
	c.n++
	return nil
}

// Extend appends a zero value and returns a pointer to the new slot, for
// callers that construct the element in place instead of copying in a
// pre-built value. The pointer stays valid for the chunk's lifetime.
//
// Returns ErrChunkFull if the chunk is at capacity.
func (c *Chunk[T]) Extend() (*T, error) {
	if c.Full() {
		return nil, ErrChunkFull
	}
	slot := &c.buf[c.n] // still the zero value: slots are never reused
	c.n++
	return slot, nil
}

// Ref returns a pointer to slot i. The pointer stays valid across any
// subsequent appends. Callers must guarantee 0 <= i < Len().
func (c *Chunk[T]) Ref(i int) *T {
	assert(i >= 0 && i < c.n, "chunk: slot index out of populated range")
	return &c.buf[i]
}

// Clone returns an independent copy of the chunk with fresh storage.
func (c *Chunk[T]) Clone() *Chunk[T] {
	d := &Chunk[T]{buf: make([]T, len(c.buf)), n: c.n}
	copy(d.buf, c.buf[:c.n])
	return d
}
