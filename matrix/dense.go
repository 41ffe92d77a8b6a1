// SPDX-License-Identifier: EPL-2.0

package matrix

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/ik5/audtensor/audioerr"
)

// Dense exposes m to gonum. Row-major and column-major views share storage
// with m (the latter through mat.Transpose); any other layout is copied.
// gonum has no empty matrices, so a matrix with a zero dimension fails.
func Dense(m *Matrix[float64]) (mat.Matrix, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, audioerr.Specf("matrix.Dense", "gonum cannot hold a %dx%d matrix", m.rows, m.cols)
	}

	switch {
	case m.colStride == 1 && m.rowStride >= m.cols:
		var d mat.Dense
		d.SetRawMatrix(blas64.General{
			Rows: m.rows, Cols: m.cols, Stride: m.rowStride,
			Data: m.data[:(m.rows-1)*m.rowStride+m.cols],
		})

		return &d, nil
	case m.rowStride == 1 && m.colStride >= m.rows:
		var d mat.Dense
		d.SetRawMatrix(blas64.General{
			Rows: m.cols, Cols: m.rows, Stride: m.colStride,
			Data: m.data[:(m.cols-1)*m.colStride+m.rows],
		})

		return d.T(), nil
	}

	return mat.NewDense(m.rows, m.cols, m.RowMajor()), nil
}

// FromDense wraps a gonum matrix. *mat.Dense and its transpose are wrapped
// without copying; other implementations are copied element by element.
func FromDense(x mat.Matrix) (*Matrix[float64], error) {
	switch v := x.(type) {
	case mat.RawMatrixer:
		raw := v.RawMatrix()

		return &Matrix[float64]{
			rows: raw.Rows, cols: raw.Cols,
			rowStride: raw.Stride, colStride: 1,
			data: raw.Data,
		}, nil
	case mat.Transpose:
		if rm, ok := v.Matrix.(mat.RawMatrixer); ok {
			raw := rm.RawMatrix()

			return &Matrix[float64]{
				rows: raw.Cols, cols: raw.Rows,
				rowStride: 1, colStride: raw.Stride,
				data: raw.Data,
			}, nil
		}
	}

	r, c := x.Dims()
	data := make([]float64, 0, r*c)
	for i := range r {
		for j := range c {
			data = append(data, x.At(i, j))
		}
	}

	return NewRowMajor(r, c, data)
}
