package stablevec

import "iter"

// Range returns an iterator over (index, element value) pairs in logical
// order. The iteration covers the elements present when Range is called.
func (v *Vector[T]) Range() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := v.Len()
		for i := 0; i < n; i++ {
			if !yield(i, *v.idx.Ref(i)) {
				return
			}
		}
	}
}

// RangeValues returns an iterator over element values in logical order.
func (v *Vector[T]) RangeValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := v.Len()
		for i := 0; i < n; i++ {
			if !yield(*v.idx.Ref(i)) {
				return
			}
		}
	}
}

// ForEach walks elements in logical order, handing fn a stable pointer to
// each one, so callers may mutate elements in place.
//
// Iteration stops early if fn returns false.
func (v *Vector[T]) ForEach(fn func(i int, elem *T) bool) {
	if fn == nil {
		return
	}
	n := v.Len()
	for i := 0; i < n; i++ {
		if !fn(i, v.idx.Ref(i)) {
			return
		}
	}
}
