// Copyright ©2018 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"math"

	"github.com/gonum/floats"

	"github.com/vladimir-ch/dense/internal/packed"
)

// LU is the LU factorization with partial pivoting of an m×n matrix A,
//  A[piv,:] = L*U,
// where L is unit lower triangular, U is upper triangular and piv is a
// row permutation. The factorization exists for every input, including
// singular matrices; only Solve and Det have preconditions.
//
// An LU is immutable once constructed and its accessors return copies,
// so it may be used concurrently without synchronization.
type LU struct {
	lu    *packed.Buffer
	pivot []int
	sign  int
}

// NewLU computes the LU factorization of a using left-looking
// elimination with partial pivoting. The input is copied and never
// modified. NewLU never fails.
func NewLU(a *Dense) *LU {
	m, n := a.rows, a.cols
	lu := packed.New(m, n, a.data)
	pivot := make([]int, m)
	for i := range pivot {
		pivot[i] = i
	}
	sign := 1

	// One destination column at a time: stage the column, remove the
	// contributions of prior columns with prefix dot products, pick
	// the pivot and record the multipliers below the diagonal.
	colj := make([]float64, m)
	for j := 0; j < n; j++ {
		lu.Col(colj, j)
		for i := 0; i < m; i++ {
			rowi := lu.Row(i)
			kmax := min(i, j)
			colj[i] -= floats.Dot(rowi[:kmax], colj[:kmax])
			rowi[j] = colj[i]
		}

		p := j
		for i := j + 1; i < m; i++ {
			if math.Abs(colj[i]) > math.Abs(colj[p]) {
				p = i
			}
		}
		if p != j {
			lu.SwapRows(p, j)
			pivot[p], pivot[j] = pivot[j], pivot[p]
			sign = -sign
		}

		if j < m && lu.At(j, j) != 0 {
			d := lu.At(j, j)
			for i := j + 1; i < m; i++ {
				lu.Set(i, j, lu.At(i, j)/d)
			}
		}
	}

	return &LU{lu: lu, pivot: pivot, sign: sign}
}

// L returns the m×n unit lower triangular factor.
func (f *LU) L() *Dense {
	m, n := f.lu.Rows, f.lu.Cols
	l := New(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i > j:
				l.data[i*n+j] = f.lu.At(i, j)
			case i == j:
				l.data[i*n+j] = 1
			}
		}
	}
	return l
}

// U returns the n×n upper triangular factor. When the factored matrix
// has fewer rows than columns the trailing rows of U are zero.
func (f *LU) U() *Dense {
	m, n := f.lu.Rows, f.lu.Cols
	u := New(n, n)
	for i := 0; i < min(m, n); i++ {
		for j := i; j < n; j++ {
			u.data[i*n+j] = f.lu.At(i, j)
		}
	}
	return u
}

// Pivot returns a copy of the row permutation applied during the
// factorization.
func (f *LU) Pivot() []int {
	p := make([]int, len(f.pivot))
	copy(p, f.pivot)
	return p
}

// Sign returns the parity of the row permutation, +1 for an even and
// -1 for an odd number of row exchanges.
func (f *LU) Sign() int { return f.sign }

// Nonsingular reports whether the factored matrix has full column
// rank, that is whether every diagonal element of U is nonzero.
func (f *LU) Nonsingular() bool {
	m, n := f.lu.Rows, f.lu.Cols
	if m < n {
		return false
	}
	for j := 0; j < n; j++ {
		if f.lu.At(j, j) == 0 {
			return false
		}
	}
	return true
}

// Det returns the determinant of the factored matrix, the pivot sign
// times the product of the diagonal of U. It panics with ErrShape when
// the factored matrix is not square.
func (f *LU) Det() float64 {
	m, n := f.lu.Rows, f.lu.Cols
	if m != n {
		panic(ErrShape)
	}
	d := float64(f.sign)
	for j := 0; j < n; j++ {
		d *= f.lu.At(j, j)
	}
	return d
}

// Solve returns the solution X of A*X = B. It panics with ErrShape
// when b does not have as many rows as the factored matrix, and
// returns ErrSingular when the factorization is singular. The result
// has the same column count as b.
func (f *LU) Solve(b *Dense) (*Dense, error) {
	m, n := f.lu.Rows, f.lu.Cols
	if b.rows != m {
		panic(ErrShape)
	}
	if !f.Nonsingular() {
		return nil, ErrSingular
	}

	nx := b.cols
	x := b.Submatrix(List(f.pivot), Range{0, nx})

	// Solve L*Y = B[piv,:]. The unit diagonal of L is implicit.
	for k := 0; k < n; k++ {
		for i := k + 1; i < n; i++ {
			lik := f.lu.At(i, k)
			for j := 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * lik
			}
		}
	}
	// Solve U*X = Y.
	for k := n - 1; k >= 0; k-- {
		d := f.lu.At(k, k)
		for j := 0; j < nx; j++ {
			x.data[k*nx+j] /= d
		}
		for i := 0; i < k; i++ {
			uik := f.lu.At(i, k)
			for j := 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * uik
			}
		}
	}
	return x, nil
}
