// Copyright ©2018 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"math/rand"
	"testing"
)

func TestConstructors(t *testing.T) {
	m := New(2, 3)
	if r, c := m.Dims(); r != 2 || c != 3 {
		t.Errorf("unexpected dims (%v,%v)", r, c)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if m.At(i, j) != 0 {
				t.Errorf("New not zero at (%v,%v)", i, j)
			}
		}
	}

	m = Constant(2, 2, 3.5)
	if m.At(1, 0) != 3.5 {
		t.Errorf("unexpected Constant element %v", m.At(1, 0))
	}

	m = FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if r, c := m.Dims(); r != 3 || c != 2 {
		t.Errorf("unexpected FromRows dims (%v,%v)", r, c)
	}
	if m.At(2, 1) != 6 {
		t.Errorf("unexpected FromRows element %v", m.At(2, 1))
	}

	if err := Maybe(func() { FromRows([][]float64{{1, 2}, {3}}) }); err != ErrRowLength {
		t.Errorf("unequal row lengths: got %v, want ErrRowLength", err)
	}

	m = FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2)
	if r, c := m.Dims(); r != 2 || c != 3 {
		t.Errorf("unexpected FromSlice dims (%v,%v)", r, c)
	}
	if m.At(1, 0) != 4 {
		t.Errorf("unexpected FromSlice element %v", m.At(1, 0))
	}

	if err := Maybe(func() { FromSlice([]float64{1, 2, 3, 4, 5}, 2) }); err != ErrSliceLength {
		t.Errorf("bad packed length: got %v, want ErrSliceLength", err)
	}
	if err := Maybe(func() { New(-1, 2) }); err != ErrNegativeDimension {
		t.Errorf("negative dimension: got %v, want ErrNegativeDimension", err)
	}

	rnd := rand.New(rand.NewSource(1))
	m = Random(20, 10, rnd)
	for i := 0; i < 20; i++ {
		for j := 0; j < 10; j++ {
			if v := m.At(i, j); v < 0 || 1 <= v {
				t.Fatalf("Random element %v outside [0,1)", v)
			}
		}
	}

	m = Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if m.At(i, j) != want {
				t.Errorf("unexpected Identity element at (%v,%v): %v", i, j, m.At(i, j))
			}
		}
	}
}

func TestAccessBounds(t *testing.T) {
	m := New(2, 3)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		i, j := idx[0], idx[1]
		if err := Maybe(func() { m.At(i, j) }); err != ErrIndexOutOfRange {
			t.Errorf("At(%v,%v): got %v, want ErrIndexOutOfRange", i, j, err)
		}
		if err := Maybe(func() { m.Set(i, j, 1) }); err != ErrIndexOutOfRange {
			t.Errorf("Set(%v,%v): got %v, want ErrIndexOutOfRange", i, j, err)
		}
	}
	m.Set(1, 2, 42)
	if m.At(1, 2) != 42 {
		t.Errorf("Set/At roundtrip failed")
	}
}

func TestSubmatrix(t *testing.T) {
	a := FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	s := a.Submatrix(Range{1, 3}, Range{0, 2})
	if !s.Equal(FromRows([][]float64{{5, 6}, {9, 10}})) {
		t.Errorf("unexpected range submatrix")
	}

	s = a.Submatrix(List{2, 0}, List{3, 1})
	if !s.Equal(FromRows([][]float64{{12, 10}, {4, 2}})) {
		t.Errorf("unexpected list submatrix")
	}

	s = a.Submatrix(Range{0, 2}, List{0, 3})
	if !s.Equal(FromRows([][]float64{{1, 4}, {5, 8}})) {
		t.Errorf("unexpected mixed submatrix")
	}

	if err := Maybe(func() { a.Submatrix(Range{0, 4}, Range{0, 1}) }); err != ErrIndexOutOfRange {
		t.Errorf("row range out of bounds: got %v, want ErrIndexOutOfRange", err)
	}
	if err := Maybe(func() { a.Submatrix(List{0, 1}, List{4}) }); err != ErrIndexOutOfRange {
		t.Errorf("column list out of bounds: got %v, want ErrIndexOutOfRange", err)
	}
}

func TestSetSubmatrix(t *testing.T) {
	a := New(3, 3)
	a.SetSubmatrix(Range{1, 3}, List{0, 2}, FromRows([][]float64{{1, 2}, {3, 4}}))
	want := FromRows([][]float64{
		{0, 0, 0},
		{1, 0, 2},
		{3, 0, 4},
	})
	if !a.Equal(want) {
		t.Errorf("unexpected matrix after SetSubmatrix")
	}

	if err := Maybe(func() { a.SetSubmatrix(Range{0, 2}, Range{0, 2}, New(3, 2)) }); err != ErrShape {
		t.Errorf("mismatched SetSubmatrix: got %v, want ErrShape", err)
	}
}

func TestCloneAndViews(t *testing.T) {
	a := FromRows([][]float64{{1, 2}, {3, 4}})
	b := a.Clone()
	b.Set(0, 0, -1)
	if a.At(0, 0) != 1 {
		t.Errorf("Clone aliases the source")
	}

	row := a.Row(1)
	row[0] = -1
	if a.At(1, 0) != 3 {
		t.Errorf("Row aliases the source")
	}
	col := a.Col(1)
	col[0] = -1
	if a.At(0, 1) != 2 {
		t.Errorf("Col aliases the source")
	}

	// RowView is the one view into the backing store.
	rv := a.RowView(0)
	rv[1] = 42
	if a.At(0, 1) != 42 {
		t.Errorf("RowView does not alias the source")
	}

	if a.Equal(b) {
		t.Errorf("unexpected Equal for distinct matrices")
	}
	if !a.Equal(a.Clone()) {
		t.Errorf("matrix not Equal to its clone")
	}
}
