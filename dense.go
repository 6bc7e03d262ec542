// Copyright ©2018 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dense provides dense, real-valued matrices together with the
// classical factorizations used to solve linear systems and to compute
// rank, determinant and condition number.
package dense

import "math/rand"

// Dense is a dense matrix of float64 values stored in a single
// contiguous row-major slice.
//
// A Dense value owns its backing store. Assigning one Dense to another
// copies the header, not the store, so an explicit copy must go through
// Clone. No constructor retains the caller's slices and no accessor
// except RowView exposes the backing store.
//
// The zero value is an empty 0×0 matrix that may be used as the
// destination of any algebraic operation.
type Dense struct {
	rows, cols int
	data       []float64
}

// New returns a zero r×c matrix.
func New(r, c int) *Dense {
	if r < 0 || c < 0 {
		panic(ErrNegativeDimension)
	}
	return &Dense{
		rows: r,
		cols: c,
		data: make([]float64, r*c),
	}
}

// Constant returns an r×c matrix with all elements set to v.
func Constant(r, c int, v float64) *Dense {
	m := New(r, c)
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// FromRows returns a matrix whose i-th row is a copy of rows[i]. All
// rows must have the same length, otherwise FromRows panics with
// ErrRowLength.
func FromRows(rows [][]float64) *Dense {
	r := len(rows)
	var c int
	if r > 0 {
		c = len(rows[0])
	}
	m := New(r, c)
	for i, row := range rows {
		if len(row) != c {
			panic(ErrRowLength)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}
	return m
}

// FromSlice returns an r-row matrix filled row by row from a copy of
// data. The length of data must be a multiple of r, otherwise FromSlice
// panics with ErrSliceLength.
func FromSlice(data []float64, r int) *Dense {
	if r < 0 {
		panic(ErrNegativeDimension)
	}
	if r == 0 {
		if len(data) != 0 {
			panic(ErrSliceLength)
		}
		return New(0, 0)
	}
	if len(data)%r != 0 {
		panic(ErrSliceLength)
	}
	m := New(r, len(data)/r)
	copy(m.data, data)
	return m
}

// Random returns an r×c matrix with elements drawn independently and
// uniformly from [0,1). If rnd is nil the global source is used.
func Random(r, c int, rnd *rand.Rand) *Dense {
	f := rand.Float64
	if rnd != nil {
		f = rnd.Float64
	}
	m := New(r, c)
	for i := range m.data {
		m.data[i] = f()
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Dims returns the number of rows and columns of the matrix.
func (m *Dense) Dims() (r, c int) { return m.rows, m.cols }

// At returns the element at row i, column j. It panics with
// ErrIndexOutOfRange when the indices fall outside the matrix.
func (m *Dense) At(i, j int) float64 {
	if i < 0 || m.rows <= i || j < 0 || m.cols <= j {
		panic(ErrIndexOutOfRange)
	}
	return m.data[i*m.cols+j]
}

// Set sets the element at row i, column j to v. It panics with
// ErrIndexOutOfRange when the indices fall outside the matrix.
func (m *Dense) Set(i, j int, v float64) {
	if i < 0 || m.rows <= i || j < 0 || m.cols <= j {
		panic(ErrIndexOutOfRange)
	}
	m.data[i*m.cols+j] = v
}

// RowView returns the i-th row of the matrix. The returned slice
// aliases the backing store; writes through it modify the matrix. It is
// the only view this package exposes, all other accessors copy.
func (m *Dense) RowView(i int) []float64 {
	if i < 0 || m.rows <= i {
		panic(ErrIndexOutOfRange)
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Row returns a copy of the i-th row.
func (m *Dense) Row(i int) []float64 {
	row := make([]float64, m.cols)
	copy(row, m.RowView(i))
	return row
}

// Col returns a copy of the j-th column.
func (m *Dense) Col(j int) []float64 {
	if j < 0 || m.cols <= j {
		panic(ErrIndexOutOfRange)
	}
	col := make([]float64, m.rows)
	for i := range col {
		col[i] = m.data[i*m.cols+j]
	}
	return col
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Equal reports whether m and a have the same shape and identical
// elements.
func (m *Dense) Equal(a *Dense) bool {
	if m.rows != a.rows || m.cols != a.cols {
		return false
	}
	for i, v := range m.data {
		if v != a.data[i] {
			return false
		}
	}
	return true
}

// An Index selects a set of row or column positions of a matrix for
// submatrix extraction and assignment. Range and List implement Index
// and may be mixed freely between the row and column axes.
type Index interface {
	resolve(dim int) []int
}

// Range selects the contiguous half-open interval [From, To).
type Range struct {
	From, To int
}

func (r Range) resolve(dim int) []int {
	if r.From < 0 || r.To < r.From || dim < r.To {
		panic(ErrIndexOutOfRange)
	}
	idx := make([]int, r.To-r.From)
	for k := range idx {
		idx[k] = r.From + k
	}
	return idx
}

// List selects the given positions in order. Positions may repeat in a
// Submatrix call; repeating a position in SetSubmatrix gives an
// unspecified element value.
type List []int

func (l List) resolve(dim int) []int {
	for _, i := range l {
		if i < 0 || dim <= i {
			panic(ErrIndexOutOfRange)
		}
	}
	return l
}

// Submatrix returns an owned copy of the elements selected by rows and
// cols. The result has one row per selected row position and one
// column per selected column position, in selection order. Selectors
// that reach outside the matrix panic with ErrIndexOutOfRange.
func (m *Dense) Submatrix(rows, cols Index) *Dense {
	ri := rows.resolve(m.rows)
	ci := cols.resolve(m.cols)
	s := New(len(ri), len(ci))
	for i, r := range ri {
		for j, c := range ci {
			s.data[i*s.cols+j] = m.data[r*m.cols+c]
		}
	}
	return s
}

// SetSubmatrix copies a into the region of m selected by rows and
// cols. The shape of a must match the selection exactly, otherwise
// SetSubmatrix panics with ErrShape.
func (m *Dense) SetSubmatrix(rows, cols Index, a *Dense) {
	ri := rows.resolve(m.rows)
	ci := cols.resolve(m.cols)
	if a.rows != len(ri) || a.cols != len(ci) {
		panic(ErrShape)
	}
	for i, r := range ri {
		for j, c := range ci {
			m.data[r*m.cols+c] = a.data[i*a.cols+j]
		}
	}
}

// reuseAs makes sure that m is r×c, allocating the backing store when m
// is the zero value and panicking with ErrShape when m has a different
// nonzero shape.
func (m *Dense) reuseAs(r, c int) {
	if m.data == nil && m.rows == 0 && m.cols == 0 {
		m.rows = r
		m.cols = c
		m.data = make([]float64, r*c)
		return
	}
	if m.rows != r || m.cols != c {
		panic(ErrShape)
	}
}
