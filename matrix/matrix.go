// SPDX-License-Identifier: EPL-2.0

package matrix

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/numeric"
)

// Matrix is a strided two-dimensional view over real elements.
// Element (i, j) lives at data[i*rowStride + j*colStride].
type Matrix[R numeric.Real] struct {
	rows, cols           int
	rowStride, colStride int
	data                 []R
}

// NewRowMajor wraps a row-major block of rows x cols elements, as produced by
// most external libraries. data is adopted, not copied.
func NewRowMajor[R numeric.Real](rows, cols int, data []R) (*Matrix[R], error) {
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, audioerr.Specf("matrix.NewRowMajor", "%v", err)
	}
	if n != len(data) {
		return nil, audioerr.Specf("matrix.NewRowMajor",
			"%dx%d matrix holds %d elements, got %d", rows, cols, n, len(data))
	}

	return &Matrix[R]{rows: rows, cols: cols, rowStride: cols, colStride: 1, data: data}, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix[R]) Dims() (r, c int) { return m.rows, m.cols }

func (m *Matrix[R]) offset(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d", i, j, m.rows, m.cols))
	}

	return i*m.rowStride + j*m.colStride
}

// At returns element (i, j). It panics when out of range.
func (m *Matrix[R]) At(i, j int) R { return m.data[m.offset(i, j)] }

// Set stores v at (i, j). It panics when out of range.
func (m *Matrix[R]) Set(i, j int, v R) { m.data[m.offset(i, j)] = v }

// T returns the transpose. It shares storage with m.
func (m *Matrix[R]) T() *Matrix[R] {
	return &Matrix[R]{
		rows: m.cols, cols: m.rows,
		rowStride: m.colStride, colStride: m.rowStride,
		data: m.data,
	}
}

// IsRowMajor reports whether each row is one contiguous run and rows follow
// each other without gaps.
func (m *Matrix[R]) IsRowMajor() bool {
	return (m.cols <= 1 || m.colStride == 1) && (m.rows <= 1 || m.rowStride == m.cols)
}

// IsColMajor reports whether each column is one contiguous run and columns
// follow each other without gaps.
func (m *Matrix[R]) IsColMajor() bool {
	return (m.rows <= 1 || m.rowStride == 1) && (m.cols <= 1 || m.colStride == m.rows)
}

// RowMajor copies the elements out in row-major order.
func (m *Matrix[R]) RowMajor() []R {
	out := make([]R, 0, m.rows*m.cols)
	for i := range m.rows {
		for j := range m.cols {
			out = append(out, m.At(i, j))
		}
	}

	return out
}

// ColMajor copies the elements out in column-major order.
func (m *Matrix[R]) ColMajor() []R {
	return m.T().RowMajor()
}

func elementCount(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("negative dimensions %dx%d", rows, cols)
	}

	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("dimensions %dx%d overflow the index range", rows, cols)
	}

	return int(lo), nil
}
