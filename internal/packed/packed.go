// Copyright ©2018 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package packed provides a row-major working buffer for matrix
// factorizations.
package packed

// Buffer is an r×c row-major buffer of float64 values. It is scratch
// storage owned by a factorization, distinct from any public matrix
// type, and implements only the operations factorizations need.
type Buffer struct {
	Rows, Cols int
	Data       []float64
}

// New returns a buffer initialized from a copy of data, which must
// have length r*c.
func New(r, c int, data []float64) *Buffer {
	if len(data) != r*c {
		panic("packed: mismatched data length")
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &Buffer{Rows: r, Cols: c, Data: d}
}

func (b *Buffer) At(i, j int) float64 { return b.Data[i*b.Cols+j] }

func (b *Buffer) Set(i, j int, v float64) { b.Data[i*b.Cols+j] = v }

// Row returns row i of the buffer. The returned slice aliases the
// buffer.
func (b *Buffer) Row(i int) []float64 {
	return b.Data[i*b.Cols : (i+1)*b.Cols]
}

// Col stores column j of the buffer into dst, which must have length
// Rows.
func (b *Buffer) Col(dst []float64, j int) {
	if len(dst) != b.Rows {
		panic("packed: mismatched column length")
	}
	for i := range dst {
		dst[i] = b.Data[i*b.Cols+j]
	}
}

// SwapRows exchanges rows i and j in place.
func (b *Buffer) SwapRows(i, j int) {
	ri, rj := b.Row(i), b.Row(j)
	for k, v := range ri {
		ri[k], rj[k] = rj[k], v
	}
}
