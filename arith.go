// Copyright ©2018 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"math"

	"github.com/gonum/floats"
)

// The algebraic operations follow a destination-receiver convention:
// the receiver is overwritten with the result and may alias one of the
// operands, which gives the in-place forms, for example m.Add(m, b). A
// zero-value receiver is allocated to the shape of the result; a
// receiver with any other shape panics with ErrShape.

// Neg stores -a into m.
func (m *Dense) Neg(a *Dense) {
	m.reuseAs(a.rows, a.cols)
	for i, v := range a.data {
		m.data[i] = -v
	}
}

// Add stores the elementwise sum a+b into m. It panics with ErrShape
// when the shapes of a and b differ.
func (m *Dense) Add(a, b *Dense) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrShape)
	}
	m.reuseAs(a.rows, a.cols)
	floats.AddTo(m.data, a.data, b.data)
}

// Sub stores the elementwise difference a-b into m. It panics with
// ErrShape when the shapes of a and b differ.
func (m *Dense) Sub(a, b *Dense) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrShape)
	}
	m.reuseAs(a.rows, a.cols)
	floats.SubTo(m.data, a.data, b.data)
}

// MulElem stores the elementwise product of a and b into m. It panics
// with ErrShape when the shapes of a and b differ.
func (m *Dense) MulElem(a, b *Dense) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrShape)
	}
	m.reuseAs(a.rows, a.cols)
	floats.MulTo(m.data, a.data, b.data)
}

// DivElem stores the elementwise right division a./b into m. It panics
// with ErrShape when the shapes of a and b differ.
func (m *Dense) DivElem(a, b *Dense) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrShape)
	}
	m.reuseAs(a.rows, a.cols)
	floats.DivTo(m.data, a.data, b.data)
}

// LDivElem stores the elementwise left division a.\b, that is b./a,
// into m. It panics with ErrShape when the shapes of a and b differ.
func (m *Dense) LDivElem(a, b *Dense) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrShape)
	}
	m.reuseAs(a.rows, a.cols)
	floats.DivTo(m.data, b.data, a.data)
}

// Scale stores c*a into m.
func (m *Dense) Scale(c float64, a *Dense) {
	m.reuseAs(a.rows, a.cols)
	if m != a {
		copy(m.data, a.data)
	}
	floats.Scale(c, m.data)
}

// ScaleDiv stores a/c into m, dividing every element by c.
func (m *Dense) ScaleDiv(c float64, a *Dense) {
	m.reuseAs(a.rows, a.cols)
	for i, v := range a.data {
		m.data[i] = v / c
	}
}

// Mul stores the matrix product a*b into m. It panics with ErrShape
// when the column count of a differs from the row count of b.
//
// The product is formed one column of b at a time: the column is
// staged into a contiguous buffer and every row of a is reduced
// against it with a dot product, so the cost is O(ra·ca·cb) with no
// repeated strided indexing of b.
func (m *Dense) Mul(a, b *Dense) {
	if a.cols != b.rows {
		panic(ErrShape)
	}
	r, k, c := a.rows, a.cols, b.cols
	m.reuseAs(r, c)
	dst := m.data
	if m == a || m == b {
		dst = make([]float64, r*c)
	}
	col := make([]float64, k)
	for j := 0; j < c; j++ {
		for i := 0; i < k; i++ {
			col[i] = b.data[i*c+j]
		}
		for i := 0; i < r; i++ {
			dst[i*c+j] = floats.Dot(a.data[i*k:(i+1)*k], col)
		}
	}
	if m == a || m == b {
		copy(m.data, dst)
	}
}

// T returns the transpose of m as a new matrix.
func (m *Dense) T() *Dense {
	t := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*t.cols+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Norm1 returns the one norm of m, the maximum column sum of absolute
// values.
func (m *Dense) Norm1() float64 {
	var max float64
	for j := 0; j < m.cols; j++ {
		var s float64
		for i := 0; i < m.rows; i++ {
			s += math.Abs(m.data[i*m.cols+j])
		}
		if s > max {
			max = s
		}
	}
	return max
}

// NormInf returns the infinity norm of m, the maximum row sum of
// absolute values.
func (m *Dense) NormInf() float64 {
	var max float64
	for i := 0; i < m.rows; i++ {
		s := floats.Norm(m.data[i*m.cols:(i+1)*m.cols], 1)
		if s > max {
			max = s
		}
	}
	return max
}

// NormFrob returns the Frobenius norm of m. The sum of squares is
// accumulated with math.Hypot so that elements of extreme magnitude do
// not overflow or underflow the accumulator.
func (m *Dense) NormFrob() float64 {
	var norm float64
	for _, v := range m.data {
		norm = math.Hypot(norm, v)
	}
	return norm
}

// Trace returns the sum of the diagonal elements of m over
// min(rows, cols).
func (m *Dense) Trace() float64 {
	var t float64
	for i := 0; i < min(m.rows, m.cols); i++ {
		t += m.data[i*m.cols+i]
	}
	return t
}
