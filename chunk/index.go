package chunk

// DefaultChunkSize is the chunk capacity used when none has been configured.
const DefaultChunkSize = 1024

// Index owns an ordered sequence of chunk handles and translates logical
// element positions into (chunk, offset) pairs.
//
// Every chunk before the tail chunk is completely full, the tail chunk is
// the one currently being filled, and any chunks after it are reserved and
// still empty. Growth appends a handle to the list; the handle slice may be
// reallocated by that, but the chunk bodies the handles refer to never
// move. This indirection is what makes element addresses stable.
//
// The zero value is a valid empty index which adopts DefaultChunkSize on
// first growth.
type Index[T any] struct {
	chunks    []*Chunk[T]
	tail      int // chunk currently being filled; 0 <= tail < len(chunks) when non-empty
	chunkSize int // power of two; 0 stands for DefaultChunkSize
}

// NewIndex creates an empty index whose chunks hold chunkSize elements each.
//
// chunkSize must be a power of two; ErrBadChunkSize otherwise.
func NewIndex[T any](chunkSize int) (*Index[T], error) {
	if !isPow2(chunkSize) {
		return nil, ErrBadChunkSize
	}
	return &Index[T]{chunkSize: chunkSize}, nil
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ChunkSize returns the capacity of each chunk.
func (ix *Index[T]) ChunkSize() int {
	if ix.chunkSize == 0 {
		return DefaultChunkSize
	}
	return ix.chunkSize
}

// Chunks returns the number of chunk handles, reserved ones included.
func (ix *Index[T]) Chunks() int {
	return len(ix.chunks)
}

// Size returns the total number of populated elements. All chunks before
// the tail are full, so the count is derived from the tail position and the
// tail chunk's length.
func (ix *Index[T]) Size() int {
	if len(ix.chunks) == 0 {
		return 0
	}
	return ix.tail*ix.ChunkSize() + ix.chunks[ix.tail].Len()
}

// Capacity returns the total element capacity across all chunks.
func (ix *Index[T]) Capacity() int {
	return len(ix.chunks) * ix.ChunkSize()
}

// AddChunk appends one new, empty chunk handle, growing Capacity by
// ChunkSize. Existing chunk storage is not touched.
func (ix *Index[T]) AddChunk() {
	ix.chunks = append(ix.chunks, New[T](ix.ChunkSize()))
	tracer().Debugf("chunk index grown to %d chunks, capacity %d", len(ix.chunks), ix.Capacity())
}

// Writable returns the tail chunk, advancing to the next reserved chunk or
// appending a fresh one first when the tail is full. This is the sole
// growth entry point for insertions; the returned chunk always has room for
// at least one more element, and the populated prefix stays dense.
func (ix *Index[T]) Writable() *Chunk[T] {
	if len(ix.chunks) == 0 {
		ix.AddChunk()
	}
	if ix.chunks[ix.tail].Full() {
		if ix.tail == len(ix.chunks)-1 {
			ix.AddChunk()
		}
		ix.tail++
	}
	return ix.chunks[ix.tail]
}

// Reserve adds chunks until Capacity() >= capacity. It never shrinks and
// never changes Size(); a sufficient capacity makes it a no-op.
func (ix *Index[T]) Reserve(capacity int) {
	for ix.Capacity() < capacity {
		ix.AddChunk()
	}
}

// Ref returns a pointer to the element at logical position i, without
// bounds checking. Callers must guarantee 0 <= i < Size().
func (ix *Index[T]) Ref(i int) *T {
	cs := ix.ChunkSize()
	return ix.chunks[i/cs].Ref(i % cs)
}

// At is the checked counterpart of Ref; it returns ErrIndexOutOfBounds when
// i lies outside [0, Size()).
func (ix *Index[T]) At(i int) (*T, error) {
	if i < 0 || i >= ix.Size() {
		return nil, ErrIndexOutOfBounds
	}
	return ix.Ref(i), nil
}

// Clone returns a deep copy: every chunk is cloned into fresh storage, so
// the copy shares no state with ix.
func (ix *Index[T]) Clone() *Index[T] {
	d := &Index[T]{tail: ix.tail, chunkSize: ix.chunkSize}
	if len(ix.chunks) > 0 {
		d.chunks = make([]*Chunk[T], len(ix.chunks))
		for i, c := range ix.chunks {
			d.chunks[i] = c.Clone()
		}
	}
	return d
}

// Swap exchanges the complete state of two indexes in O(1). No element is
// copied or moved in memory.
func (ix *Index[T]) Swap(other *Index[T]) {
	ix.chunks, other.chunks = other.chunks, ix.chunks
	ix.tail, other.tail = other.tail, ix.tail
	ix.chunkSize, other.chunkSize = other.chunkSize, ix.chunkSize
}

// Take moves the chunk handles out of ix into a new index. Afterwards ix is
// empty but keeps its chunk size and remains usable; appending to it starts
// fresh storage.
func (ix *Index[T]) Take() *Index[T] {
	d := &Index[T]{chunks: ix.chunks, tail: ix.tail, chunkSize: ix.chunkSize}
	ix.chunks = nil
	ix.tail = 0
	return d
}
