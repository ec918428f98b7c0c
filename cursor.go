package stablevec

// Cursor is a random-access position over a vector's logical index space.
//
// A cursor holds its owning vector and a logical index in [0, Len()], where
// Len() is the one-past-end sentinel. It caches no element pointer:
// dereferencing resolves through the vector at call time, so a cursor taken
// before a series of appends still reads current data afterwards.
// Dereferencing a position at or beyond Len() is a caller bug.
//
// Cursors are small values; arithmetic returns new cursors and never
// mutates the receiver. Arithmetic itself is unchecked — a cursor may
// legally be moved outside [0, Len()], it just must be brought back before
// dereferencing.
//
// Distance and Less require both cursors to belong to the same vector and
// panic otherwise. Equality across vectors is well-defined and false.
type Cursor[T any] struct {
	vec *Vector[T]
	pos int
}

// ReadCursor is the read-only counterpart of Cursor. It is obtained from
// ReadBegin/ReadEnd or by widening a Cursor via Read; there is no
// conversion back.
type ReadCursor[T any] struct {
	vec *Vector[T]
	pos int
}

// Begin returns a cursor at logical index 0.
func (v *Vector[T]) Begin() Cursor[T] {
	return Cursor[T]{vec: v}
}

// End returns the one-past-end cursor.
func (v *Vector[T]) End() Cursor[T] {
	return Cursor[T]{vec: v, pos: v.Len()}
}

// ReadBegin returns a read-only cursor at logical index 0.
func (v *Vector[T]) ReadBegin() ReadCursor[T] {
	return ReadCursor[T]{vec: v}
}

// ReadEnd returns the read-only one-past-end cursor.
func (v *Vector[T]) ReadEnd() ReadCursor[T] {
	return ReadCursor[T]{vec: v, pos: v.Len()}
}

// Pos returns the cursor's logical index.
func (c Cursor[T]) Pos() int {
	return c.pos
}

// Ref dereferences the cursor, yielding a stable element pointer. The
// position must lie within [0, Len()).
func (c Cursor[T]) Ref() *T {
	return c.vec.Ref(c.pos)
}

// Add returns a cursor moved n positions forward (backward for negative n).
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.pos += n
	return c
}

// Sub returns a cursor moved n positions backward.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	c.pos -= n
	return c
}

// Next returns the cursor advanced by one position.
func (c Cursor[T]) Next() Cursor[T] {
	c.pos++
	return c
}

// Prev returns the cursor moved back by one position.
func (c Cursor[T]) Prev() Cursor[T] {
	c.pos--
	return c
}

// Distance returns the signed index distance c - other. Both cursors must
// belong to the same vector.
func (c Cursor[T]) Distance(other Cursor[T]) int {
	assert(c.vec == other.vec, "cursor distance across different vectors")
	return c.pos - other.pos
}

// Less orders two cursors of the same vector by logical index.
func (c Cursor[T]) Less(other Cursor[T]) bool {
	assert(c.vec == other.vec, "cursor ordering across different vectors")
	return c.pos < other.pos
}

// Equal reports whether both cursors address the same position of the same
// vector. Cursors of different vectors are never equal.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.vec == other.vec && c.pos == other.pos
}

// EqualRead reports whether c and a read-only cursor address the same
// position of the same vector.
func (c Cursor[T]) EqualRead(other ReadCursor[T]) bool {
	return c.vec == other.vec && c.pos == other.pos
}

// Read widens the cursor to a read-only one. There is no narrowing back.
func (c Cursor[T]) Read() ReadCursor[T] {
	return ReadCursor[T]{vec: c.vec, pos: c.pos}
}

// Pos returns the cursor's logical index.
func (r ReadCursor[T]) Pos() int {
	return r.pos
}

// Value dereferences the cursor, returning a copy of the element. The
// position must lie within [0, Len()).
func (r ReadCursor[T]) Value() T {
	return *r.vec.Ref(r.pos)
}

// Add returns a cursor moved n positions forward (backward for negative n).
func (r ReadCursor[T]) Add(n int) ReadCursor[T] {
	r.pos += n
	return r
}

// Sub returns a cursor moved n positions backward.
func (r ReadCursor[T]) Sub(n int) ReadCursor[T] {
	r.pos -= n
	return r
}

// Next returns the cursor advanced by one position.
func (r ReadCursor[T]) Next() ReadCursor[T] {
	r.pos++
	return r
}

// Prev returns the cursor moved back by one position.
func (r ReadCursor[T]) Prev() ReadCursor[T] {
	r.pos--
	return r
}

// Distance returns the signed index distance r - other. Both cursors must
// belong to the same vector.
func (r ReadCursor[T]) Distance(other ReadCursor[T]) int {
	assert(r.vec == other.vec, "cursor distance across different vectors")
	return r.pos - other.pos
}

// Less orders two cursors of the same vector by logical index.
func (r ReadCursor[T]) Less(other ReadCursor[T]) bool {
	assert(r.vec == other.vec, "cursor ordering across different vectors")
	return r.pos < other.pos
}

// Equal reports whether both cursors address the same position of the same
// vector. Cursors of different vectors are never equal.
func (r ReadCursor[T]) Equal(other ReadCursor[T]) bool {
	return r.vec == other.vec && r.pos == other.pos
}

// EqualCursor is the mirror of Cursor.EqualRead, so that equality between
// the two cursor kinds is symmetric.
func (r ReadCursor[T]) EqualCursor(c Cursor[T]) bool {
	return c.EqualRead(r)
}
