package stablevec

import (
	"iter"
	"math"

	"github.com/npillmayer/stablevec/chunk"
)

// DefaultChunkSize is the per-chunk element capacity of vectors that were
// not configured with an explicit one.
const DefaultChunkSize = chunk.DefaultChunkSize

// Vector is a growable sequence container with stable element addresses.
//
// Elements live in fixed-capacity chunks. A full container triggers the
// allocation of one more chunk; existing chunks are never moved, resized or
// released, so a pointer to an element stays valid no matter how many
// elements are appended afterwards. Appending is amortized O(1) and growth
// never copies elements.
//
// A vector created by
//
//	Vector[int]{}
//
// is a valid, empty container using DefaultChunkSize.
//
// A Vector is not synchronized. Concurrent readers are safe as long as no
// goroutine mutates the vector; callers must exclude concurrent mutation
// (Push, Append, Extend, Reserve, Swap, Move) themselves.
type Vector[T any] struct {
	idx chunk.Index[T]
}

// New creates an empty vector with DefaultChunkSize.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithChunkSize creates an empty vector whose chunks hold chunkSize
// elements each. chunkSize must be a power of two; ErrBadChunkSize
// otherwise.
func WithChunkSize[T any](chunkSize int) (*Vector[T], error) {
	ix, err := chunk.NewIndex[T](chunkSize)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{idx: *ix}, nil
}

// Of creates a vector holding the given values in order.
func Of[T any](values ...T) *Vector[T] {
	v := New[T]()
	v.Append(values...)
	return v
}

// Repeat creates a vector holding count copies of value.
func Repeat[T any](value T, count int) *Vector[T] {
	v := New[T]()
	v.Reserve(count)
	for i := 0; i < count; i++ {
		v.Push(value)
	}
	return v
}

// WithLen creates a vector holding count zero values.
func WithLen[T any](count int) *Vector[T] {
	v := New[T]()
	v.Reserve(count)
	for i := 0; i < count; i++ {
		v.Extend()
	}
	return v
}

// FromSeq creates a vector from an iterator sequence, preserving order.
func FromSeq[T any](seq iter.Seq[T]) *Vector[T] {
	v := New[T]()
	for value := range seq {
		v.Push(value)
	}
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.idx.Size()
}

// Cap returns the element capacity across all allocated chunks. Cap is
// always a multiple of the chunk size.
func (v *Vector[T]) Cap() int {
	return v.idx.Capacity()
}

// MaxLen returns an implementation-defined upper bound on Len. It is
// informational, not enforced.
func (v *Vector[T]) MaxLen() int {
	return math.MaxInt
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.idx.Size() == 0
}

// ChunkSize returns the per-chunk element capacity.
func (v *Vector[T]) ChunkSize() int {
	return v.idx.ChunkSize()
}

// Reserve grows capacity to at least n elements without changing Len. It
// never reduces capacity; n at or below Cap() is a no-op.
func (v *Vector[T]) Reserve(n int) {
	v.idx.Reserve(n)
	tracer().Debugf("vector reserved %d, capacity now %d", n, v.idx.Capacity())
}

// ShrinkToFit does nothing, deliberately. Chunk storage is never released
// while the vector lives: outstanding element pointers may reach into any
// chunk, including a partially filled one, and no operation ever needs a
// chunk freed early. The method exists for API symmetry with conventional
// vectors.
func (v *Vector[T]) ShrinkToFit() {}

// Push appends value in amortized O(1). Pointers and cursors to existing
// elements remain valid.
func (v *Vector[T]) Push(value T) {
	err := v.idx.Writable().Push(value)
	assert(err == nil, "writable chunk rejected push")
}

// Append appends all values in order.
func (v *Vector[T]) Append(values ...T) {
	for _, value := range values {
		v.Push(value)
	}
}

// Extend appends a zero value and returns a stable pointer to it, for
// elements that are built in place rather than copied in.
func (v *Vector[T]) Extend() *T {
	slot, err := v.idx.Writable().Extend()
	assert(err == nil, "writable chunk rejected extend")
	return slot
}

// Ref returns a pointer to the element at logical index i, without bounds
// checking. Callers must guarantee 0 <= i < Len(). The pointer stays valid
// across all future appends.
func (v *Vector[T]) Ref(i int) *T {
	return v.idx.Ref(i)
}

// At is the checked counterpart of Ref; it returns ErrIndexOutOfBounds when
// i lies outside [0, Len()). It is the only accessor that validates its
// argument.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.idx.Size() {
		return nil, ErrIndexOutOfBounds
	}
	return v.idx.Ref(i), nil
}

// Front returns a pointer to the first element. The vector must not be
// empty.
func (v *Vector[T]) Front() *T {
	assert(!v.IsEmpty(), "Front called on empty vector")
	return v.idx.Ref(0)
}

// Back returns a pointer to the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	assert(!v.IsEmpty(), "Back called on empty vector")
	return v.idx.Ref(v.idx.Size() - 1)
}

// Clone returns a deep copy. The copy shares no storage with v; mutating
// one never affects the other.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{idx: *v.idx.Clone()}
}

// Move transfers v's chunks into a new vector in O(1). Afterwards v is
// empty but remains usable and keeps its chunk size; appending to it starts
// fresh storage. Element pointers into the moved chunks stay valid and now
// belong to the result.
func (v *Vector[T]) Move() *Vector[T] {
	return &Vector[T]{idx: *v.idx.Take()}
}

// Swap exchanges the contents of v and other in O(1). No element is copied
// or moved in memory, so element pointers stay valid and simply change
// their owning vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.idx.Swap(&other.idx)
}

// Equal reports whether a and b hold equal elements in the same order.
// Chunk sizes do not participate in the comparison. Inequality is the
// logical negation.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison, for element
// types that are not comparable.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(*a.idx.Ref(i), *b.idx.Ref(i)) {
			return false
		}
	}
	return true
}
