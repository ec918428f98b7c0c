package stablevec

import (
	"testing"
)

func TestBeginEndDereference(t *testing.T) {
	v := New[int]()
	v.Push(1)
	if *v.Begin().Ref() != 1 {
		t.Errorf("*Begin() = %d, want 1", *v.Begin().Ref())
	}
	if *v.End().Sub(1).Ref() != 1 {
		t.Errorf("*(End()-1) = %d, want 1", *v.End().Sub(1).Ref())
	}
	v.Push(2)
	if *v.Begin().Ref() != 1 {
		t.Errorf("*Begin() after growth = %d, want 1", *v.Begin().Ref())
	}
	if *v.End().Prev().Ref() != 2 {
		t.Errorf("*(End()-1) after growth = %d, want 2", *v.End().Prev().Ref())
	}
	if v.ReadBegin().Value() != 1 || v.ReadEnd().Sub(1).Value() != 2 {
		t.Errorf("read cursors disagree with mutable cursors")
	}
}

func TestCursorRoundTrip(t *testing.T) {
	v := Of(0, 1, 2, 3, 4)
	var got []int
	for c := v.Begin(); !c.Equal(v.End()); c = c.Next() {
		got = append(got, *c.Ref())
	}
	if len(got) != 5 {
		t.Fatalf("iterated %d elements, want 5", len(got))
	}
	for i, x := range got {
		if x != i {
			t.Errorf("element %d = %d, want %d", i, x, i)
		}
	}
	if v.ReadEnd().Distance(v.ReadBegin()) != v.Len() {
		t.Errorf("ReadEnd - ReadBegin = %d, want %d", v.ReadEnd().Distance(v.ReadBegin()), v.Len())
	}
	for k := 0; k < v.Len(); k++ {
		if *v.Begin().Add(k).Ref() != k {
			t.Errorf("*(Begin()+%d) = %d, want %d", k, *v.Begin().Add(k).Ref(), k)
		}
	}
}

func TestCursorArithmetic(t *testing.T) {
	v := Of(10, 20, 30, 40)
	c := v.Begin().Add(3).Sub(1).Next().Prev() // index 2
	if c.Pos() != 2 || *c.Ref() != 30 {
		t.Errorf("cursor arithmetic landed at %d (%d), want 2 (30)", c.Pos(), *c.Ref())
	}
	if d := v.End().Distance(v.Begin()); d != 4 {
		t.Errorf("End - Begin = %d, want 4", d)
	}
	if d := v.Begin().Distance(v.End()); d != -4 {
		t.Errorf("Begin - End = %d, want -4", d)
	}
	if !v.Begin().Less(v.End()) || v.End().Less(v.Begin()) {
		t.Errorf("cursor ordering by logical index broken")
	}
}

func TestCursorSurvivesGrowth(t *testing.T) {
	v, err := WithChunkSize[int](2)
	if err != nil {
		t.Fatal(err.Error())
	}
	v.Append(1, 2)
	c := v.Begin().Add(1)
	r := c.Read()
	for k := 3; k <= 9; k++ {
		v.Push(k)
	}
	if *c.Ref() != 2 {
		t.Errorf("cursor dereference after growth = %d, want 2", *c.Ref())
	}
	if r.Value() != 2 {
		t.Errorf("read cursor dereference after growth = %d, want 2", r.Value())
	}
}

func TestCursorKindsCompareSymmetrically(t *testing.T) {
	v := Of(1, 2, 3)
	c := v.Begin().Add(2)
	r := c.Read()
	if !c.EqualRead(r) {
		t.Errorf("cursor should equal its widened read cursor")
	}
	if !r.EqualCursor(c) {
		t.Errorf("read cursor should equal its narrow origin, symmetric case")
	}
	moved := r.Next()
	if c.EqualRead(moved) || moved.EqualCursor(c) {
		t.Errorf("cursors at different positions must not be equal")
	}
}

func TestCursorsOfDifferentVectorsAreUnequal(t *testing.T) {
	v1 := Of(1, 2, 3)
	v2 := Of(1, 2, 3)
	if v1.Begin().Equal(v2.Begin()) {
		t.Errorf("cursors of different vectors must not compare equal")
	}
	if v1.Begin().EqualRead(v2.ReadBegin()) {
		t.Errorf("cross-kind cursors of different vectors must not compare equal")
	}
	if v1.ReadBegin().Equal(v2.ReadBegin()) {
		t.Errorf("read cursors of different vectors must not compare equal")
	}
}

func TestCrossVectorOrderingPanics(t *testing.T) {
	v1 := Of(1, 2, 3)
	v2 := Of(1, 2, 3)
	defer func() {
		if recover() == nil {
			t.Errorf("ordering cursors of different vectors should panic")
		}
	}()
	v1.Begin().Less(v2.End())
}

func TestCrossVectorDistancePanics(t *testing.T) {
	v1 := Of(1, 2, 3)
	v2 := Of(1, 2, 3)
	defer func() {
		if recover() == nil {
			t.Errorf("distance across different vectors should panic")
		}
	}()
	v1.End().Distance(v2.Begin())
}
