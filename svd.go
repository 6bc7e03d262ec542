// Copyright ©2018 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import "math"

const (
	// eps is the machine epsilon for float64, 2^-52.
	eps = 1.0 / (1 << 52)
	// tiny is 2^-966, the underflow guard in the negligibility
	// threshold of the QR iteration.
	tiny = 1.0 / (1 << 322) / (1 << 322) / (1 << 322)
)

// SVD is the singular value decomposition of an m×n matrix A,
//  A = U * S * Vᵀ,
// where U has orthonormal columns, V is orthogonal and S holds the
// singular values in descending order on its diagonal. The
// decomposition is computed by Householder bidiagonalization followed
// by implicit-shift QR iteration on the bidiagonal form.
//
// An SVD is immutable once constructed and its accessors return
// copies, so it may be used concurrently without synchronization.
type SVD struct {
	m, n int
	nu   int
	s    []float64 // Singular values, descending.
	u    []float64 // m×nu, row-major.
	v    []float64 // n×n, row-major.
}

// NewSVD computes the singular value decomposition of d. The input is
// copied and never modified, and the decomposition is defined for
// every input including rank-deficient matrices. The input
// conventionally has at least as many rows as columns, although the
// algorithm tolerates the opposite.
//
// The QR iteration is bounded at 30·max(m,n) sweeps per active window;
// if a window fails to converge within the bound, NewSVD returns
// ErrNoConvergence and no partial result. The original formulation of
// the algorithm iterates without bound.
func NewSVD(d *Dense) (*SVD, error) {
	m, n := d.rows, d.cols
	a := make([]float64, len(d.data))
	copy(a, d.data)

	nu := min(m, n)
	s := make([]float64, min(m+1, n))
	e := make([]float64, n)
	work := make([]float64, m)
	u := make([]float64, m*nu)
	v := make([]float64, n*n)

	if m == 0 || n == 0 {
		return &SVD{m: m, n: n, nu: nu, s: s[:nu], u: u, v: v}, nil
	}

	// Reduce a to bidiagonal form, storing the diagonal elements in s
	// and the super-diagonal elements in e. Householder vectors are
	// left in a for the later accumulation of U and V.
	nct := min(m-1, n)
	nrt := max(0, min(n-2, m))
	for k := 0; k < max(nct, nrt); k++ {
		if k < nct {
			// Compute the 2-norm of the k-th column tail without
			// under/overflow.
			s[k] = 0
			for i := k; i < m; i++ {
				s[k] = math.Hypot(s[k], a[i*n+k])
			}
			if s[k] != 0 {
				if a[k*n+k] < 0 {
					s[k] = -s[k]
				}
				for i := k; i < m; i++ {
					a[i*n+k] /= s[k]
				}
				a[k*n+k]++
			}
			s[k] = -s[k]
		}
		for j := k + 1; j < n; j++ {
			if k < nct && s[k] != 0 {
				// Apply the reflector to column j.
				var t float64
				for i := k; i < m; i++ {
					t += a[i*n+k] * a[i*n+j]
				}
				t = -t / a[k*n+k]
				for i := k; i < m; i++ {
					a[i*n+j] += t * a[i*n+k]
				}
			}
			// Row k of the upper triangle becomes the start of the
			// row reflector below.
			e[j] = a[k*n+j]
		}
		if k < nct {
			for i := k; i < m; i++ {
				u[i*nu+k] = a[i*n+k]
			}
		}
		if k < nrt {
			// Same construction for the k-th row tail.
			e[k] = 0
			for i := k + 1; i < n; i++ {
				e[k] = math.Hypot(e[k], e[i])
			}
			if e[k] != 0 {
				if e[k+1] < 0 {
					e[k] = -e[k]
				}
				for i := k + 1; i < n; i++ {
					e[i] /= e[k]
				}
				e[k+1]++
			}
			e[k] = -e[k]
			if k+1 < m && e[k] != 0 {
				// Apply the row reflector to the remaining rows.
				for i := k + 1; i < m; i++ {
					work[i] = 0
				}
				for j := k + 1; j < n; j++ {
					for i := k + 1; i < m; i++ {
						work[i] += e[j] * a[i*n+j]
					}
				}
				for j := k + 1; j < n; j++ {
					t := -e[j] / e[k+1]
					for i := k + 1; i < m; i++ {
						a[i*n+j] += t * work[i]
					}
				}
			}
			for i := k + 1; i < n; i++ {
				v[i*n+k] = e[i]
			}
		}
	}

	// Set up the final bidiagonal matrix of order p.
	p := min(n, m+1)
	if nct < n {
		s[nct] = a[nct*n+nct]
	}
	if m < p {
		s[p-1] = 0
	}
	if nrt+1 < p {
		e[nrt] = a[nrt*n+p-1]
	}
	e[p-1] = 0

	// Accumulate U from the column reflectors.
	for j := nct; j < nu; j++ {
		for i := 0; i < m; i++ {
			u[i*nu+j] = 0
		}
		u[j*nu+j] = 1
	}
	for k := nct - 1; k >= 0; k-- {
		if s[k] != 0 {
			for j := k + 1; j < nu; j++ {
				var t float64
				for i := k; i < m; i++ {
					t += u[i*nu+k] * u[i*nu+j]
				}
				t = -t / u[k*nu+k]
				for i := k; i < m; i++ {
					u[i*nu+j] += t * u[i*nu+k]
				}
			}
			for i := k; i < m; i++ {
				u[i*nu+k] = -u[i*nu+k]
			}
			u[k*nu+k]++
			for i := 0; i < k-1; i++ {
				u[i*nu+k] = 0
			}
		} else {
			for i := 0; i < m; i++ {
				u[i*nu+k] = 0
			}
			u[k*nu+k] = 1
		}
	}

	// Accumulate V from the row reflectors.
	for k := n - 1; k >= 0; k-- {
		if k < nrt && e[k] != 0 {
			for j := k + 1; j < nu; j++ {
				var t float64
				for i := k + 1; i < n; i++ {
					t += v[i*n+k] * v[i*n+j]
				}
				t = -t / v[(k+1)*n+k]
				for i := k + 1; i < n; i++ {
					v[i*n+j] += t * v[i*n+k]
				}
			}
		}
		for i := 0; i < n; i++ {
			v[i*n+k] = 0
		}
		v[k*n+k] = 1
	}

	// Main iteration loop for the singular values of the bidiagonal
	// form.
	pp := p - 1
	iter := 0
	maxIter := 30 * max(m, n)
	for p > 0 {
		// Scan for the last negligible super-diagonal element. On
		// completion the window splits at k:
		//  k == p-2        s[p-1] has converged (kase 4),
		//  e[k] negligible and ks == k      shiftable window (kase 3),
		//  s[ks] negligible, ks == p-1      deflate s[p-1]  (kase 1),
		//  s[ks] negligible, k < ks < p-1   split at s[ks]  (kase 2).
		var k int
		for k = p - 2; k >= 0; k-- {
			if math.Abs(e[k]) <= tiny+eps*(math.Abs(s[k])+math.Abs(s[k+1])) {
				e[k] = 0
				break
			}
		}
		var kase int
		if k == p-2 {
			kase = 4
		} else {
			var ks int
			for ks = p - 1; ks > k; ks-- {
				var t float64
				if ks != p {
					t = math.Abs(e[ks])
				}
				if ks != k+1 {
					t += math.Abs(e[ks-1])
				}
				if math.Abs(s[ks]) <= tiny+eps*t {
					s[ks] = 0
					break
				}
			}
			switch ks {
			case k:
				kase = 3
			case p - 1:
				kase = 1
			default:
				kase = 2
				k = ks
			}
		}
		k++

		switch kase {
		case 1:
			// Deflate negligible s[p-1]: chase e[p-2] out through a
			// chain of rotations applied to V.
			f := e[p-2]
			e[p-2] = 0
			for j := p - 2; j >= k; j-- {
				t := math.Hypot(s[j], f)
				cs := s[j] / t
				sn := f / t
				s[j] = t
				if j != k {
					f = -sn * e[j-1]
					e[j-1] = cs * e[j-1]
				}
				for i := 0; i < n; i++ {
					t = cs*v[i*n+j] + sn*v[i*n+p-1]
					v[i*n+p-1] = -sn*v[i*n+j] + cs*v[i*n+p-1]
					v[i*n+j] = t
				}
			}

		case 2:
			// Split at negligible s[k]: rotate the super-diagonal
			// entries down through the window, updating U.
			f := e[k-1]
			e[k-1] = 0
			for j := k; j < p; j++ {
				t := math.Hypot(s[j], f)
				cs := s[j] / t
				sn := f / t
				s[j] = t
				f = -sn * e[j]
				e[j] = cs * e[j]
				if j < nu {
					for i := 0; i < m; i++ {
						t = cs*u[i*nu+j] + sn*u[i*nu+k-1]
						u[i*nu+k-1] = -sn*u[i*nu+j] + cs*u[i*nu+k-1]
						u[i*nu+j] = t
					}
				}
			}

		case 3:
			// One QR sweep with a Wilkinson shift derived from the
			// trailing 2×2 block, chased through the window by paired
			// rotations of U and V.
			scale := math.Max(math.Max(math.Abs(s[p-1]), math.Abs(s[p-2])),
				math.Max(math.Abs(e[p-2]), math.Max(math.Abs(s[k]), math.Abs(e[k]))))
			sp := s[p-1] / scale
			spm1 := s[p-2] / scale
			epm1 := e[p-2] / scale
			sk := s[k] / scale
			ek := e[k] / scale
			b := ((spm1+sp)*(spm1-sp) + epm1*epm1) / 2
			c := (sp * epm1) * (sp * epm1)
			var shift float64
			if b != 0 || c != 0 {
				shift = math.Sqrt(b*b + c)
				if b < 0 {
					shift = -shift
				}
				shift = c / (b + shift)
			}
			f := (sk+sp)*(sk-sp) + shift
			g := sk * ek

			for j := k; j < p-1; j++ {
				t := math.Hypot(f, g)
				cs := f / t
				sn := g / t
				if j != k {
					e[j-1] = t
				}
				f = cs*s[j] + sn*e[j]
				e[j] = cs*e[j] - sn*s[j]
				g = sn * s[j+1]
				s[j+1] = cs * s[j+1]
				for i := 0; i < n; i++ {
					t = cs*v[i*n+j] + sn*v[i*n+j+1]
					v[i*n+j+1] = -sn*v[i*n+j] + cs*v[i*n+j+1]
					v[i*n+j] = t
				}
				t = math.Hypot(f, g)
				cs = f / t
				sn = g / t
				s[j] = t
				f = cs*e[j] + sn*s[j+1]
				s[j+1] = -sn*e[j] + cs*s[j+1]
				g = sn * e[j+1]
				e[j+1] = cs * e[j+1]
				if j < m-1 {
					for i := 0; i < m; i++ {
						t = cs*u[i*nu+j] + sn*u[i*nu+j+1]
						u[i*nu+j+1] = -sn*u[i*nu+j] + cs*u[i*nu+j+1]
						u[i*nu+j] = t
					}
				}
			}
			e[p-2] = f
			iter++
			if iter > maxIter {
				return nil, ErrNoConvergence
			}

		case 4:
			// s[k] has converged. Make it non-negative, then
			// insertion-sort it into the already converged tail,
			// carrying the matching U and V columns along.
			if s[k] <= 0 {
				if s[k] < 0 {
					s[k] = -s[k]
				}
				for i := 0; i <= pp; i++ {
					v[i*n+k] = -v[i*n+k]
				}
			}
			for k < pp {
				if s[k] >= s[k+1] {
					break
				}
				s[k], s[k+1] = s[k+1], s[k]
				if k < n-1 {
					for i := 0; i < n; i++ {
						v[i*n+k], v[i*n+k+1] = v[i*n+k+1], v[i*n+k]
					}
				}
				if k < m-1 {
					for i := 0; i < m; i++ {
						u[i*nu+k], u[i*nu+k+1] = u[i*nu+k+1], u[i*nu+k]
					}
				}
				k++
			}
			iter = 0
			p--
		}
	}

	return &SVD{
		m:  m,
		n:  n,
		nu: nu,
		s:  s[:min(m, n)],
		u:  u,
		v:  v,
	}, nil
}

// U returns the m×min(m,n) matrix of left singular vectors.
func (f *SVD) U() *Dense {
	u := New(f.m, f.nu)
	copy(u.data, f.u)
	return u
}

// V returns the n×n matrix of right singular vectors.
func (f *SVD) V() *Dense {
	v := New(f.n, f.n)
	copy(v.data, f.v)
	return v
}

// Values returns a copy of the min(m,n) singular values in descending
// order.
func (f *SVD) Values() []float64 {
	s := make([]float64, len(f.s))
	copy(s, f.s)
	return s
}

// S returns the n×n diagonal matrix of singular values, so that the
// factored matrix equals U * S * Vᵀ when it has at least as many rows
// as columns.
func (f *SVD) S() *Dense {
	s := New(f.n, f.n)
	for i := 0; i < min(f.n, len(f.s)); i++ {
		s.data[i*f.n+i] = f.s[i]
	}
	return s
}

// Norm2 returns the two norm of the factored matrix, its largest
// singular value.
func (f *SVD) Norm2() float64 { return f.s[0] }

// Cond returns the two norm condition number of the factored matrix,
// the ratio of its largest to its smallest singular value.
func (f *SVD) Cond() float64 { return f.s[0] / f.s[len(f.s)-1] }

// Rank returns the effective numerical rank of the factored matrix,
// the number of singular values exceeding max(m,n)·s[0]·eps.
func (f *SVD) Rank() int {
	tol := float64(max(f.m, f.n)) * f.s[0] * eps
	var r int
	for _, v := range f.s {
		if v > tol {
			r++
		}
	}
	return r
}
