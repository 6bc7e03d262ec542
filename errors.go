// Copyright ©2018 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

// Error is the type of all errors raised by this package. Violated
// preconditions (mismatched shapes, out-of-range indices, malformed
// constructor input) panic with an Error value; data-dependent
// failures (a singular system, a factorization that does not converge)
// are returned as ordinary errors.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrShape is raised when the shapes of the operands of a matrix
	// operation do not conform.
	ErrShape = Error("dense: dimension mismatch")

	// ErrIndexOutOfRange is raised when an element or submatrix
	// access falls outside the matrix.
	ErrIndexOutOfRange = Error("dense: index out of range")

	// ErrNegativeDimension is raised when a constructor is given a
	// negative row or column count.
	ErrNegativeDimension = Error("dense: negative dimension")

	// ErrRowLength is raised by FromRows when the rows do not all
	// have the same length.
	ErrRowLength = Error("dense: unequal row lengths")

	// ErrSliceLength is raised by FromSlice when the slice length is
	// not a multiple of the declared row count.
	ErrSliceLength = Error("dense: slice length is not a multiple of the row count")

	// ErrSingular is returned by LU.Solve when the factored matrix is
	// singular.
	ErrSingular = Error("dense: matrix is singular")

	// ErrNoConvergence is returned by NewSVD when the QR iteration
	// exceeds its iteration limit.
	ErrNoConvergence = Error("dense: SVD failed to converge")
)

// Maybe calls fn and converts a panic raised by this package into a
// returned error. Panics with values of other types are not recovered.
func Maybe(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}
