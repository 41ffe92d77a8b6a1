// SPDX-License-Identifier: EPL-2.0

package matrix

import (
	"unsafe"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/numeric"
)

// FromArray views the buffer of a, read as reals, as a column-major matrix
// with ncols rows and nrows*w columns, where w is 1 for real elements and 2
// for complex ones. Column r holds real slots [r*ncols, (r+1)*ncols), so
// element (f, r) is real slot r*ncols+f.
//
// a must be contiguous and hold nrows logical rows (channels) of ncols
// columns (frames). For real T, column r is channel r and row f is frame f.
// For complex T the buffer is interleaved [re, im] pairs, so channel c spans
// columns 2c and 2c+1: column 2c holds the first ncols reals of its
// interleaved run and column 2c+1 the remaining ncols. A column is not the
// real or imaginary part of a channel. R must be the component type of T. No data is copied:
// writes through the matrix are visible in a.
func FromArray[R numeric.Real, T numeric.Element](a *array.Array[T], nrows, ncols int) (*Matrix[R], error) {
	const op = "matrix.FromArray"

	if err := checkKinds[R, T](op); err != nil {
		return nil, err
	}

	s, ok := a.AsSlice()
	if !ok {
		return nil, audioerr.Specf(op, "array with strides %v is not contiguous", a.Strides())
	}

	width := numeric.KindOf[T]().Width()
	realRows, err := elementCount(nrows, width)
	if err != nil {
		return nil, audioerr.Specf(op, "%v", err)
	}

	n, err := elementCount(realRows, ncols)
	if err != nil {
		return nil, audioerr.Specf(op, "%v", err)
	}

	reals := asReals[R](s)
	if n != len(reals) {
		return nil, audioerr.Specf(op,
			"%d rows of %d %s elements need %d real slots, buffer has %d",
			nrows, ncols, numeric.KindOf[T](), n, len(reals))
	}

	return &Matrix[R]{
		rows:      ncols,
		cols:      realRows,
		rowStride: 1,
		colStride: ncols,
		data:      reals,
	}, nil
}

// ToArray is the inverse of FromArray: the matrix rows are frames and its
// columns are real rows, w of which make up one channel. The result has
// shape [cols/w, rows].
//
// When m is laid out the way FromArray produces it the storage is reused;
// otherwise, for instance for a row-major block from an external library,
// the elements are copied under the same convention.
func ToArray[T numeric.Element, R numeric.Real](m *Matrix[R]) (*array.Array[T], error) {
	const op = "matrix.ToArray"

	if err := checkKinds[R, T](op); err != nil {
		return nil, err
	}

	width := numeric.KindOf[T]().Width()
	frames, realRows := m.rows, m.cols
	if realRows%width != 0 {
		return nil, audioerr.Specf(op,
			"%d real columns cannot hold %s channels of width %d", realRows, numeric.KindOf[T](), width)
	}

	n := frames * realRows
	var buf []R
	if m.IsColMajor() && len(m.data) >= n {
		buf = m.data[:n:n]
	} else {
		buf = m.ColMajor()
	}

	return array.New(array.Shape{realRows / width, frames}, asElements[T](buf))
}

// FromVector treats a single row of reals as a one-channel array. For complex
// T the row holds interleaved real and imaginary parts and must have even
// length. v is shared, not copied.
func FromVector[T numeric.Element, R numeric.Real](v []R) (*array.Array[T], error) {
	const op = "matrix.FromVector"

	if err := checkKinds[R, T](op); err != nil {
		return nil, err
	}

	width := numeric.KindOf[T]().Width()
	if len(v)%width != 0 {
		return nil, audioerr.Specf(op, "vector of %d reals cannot hold %s elements", len(v), numeric.KindOf[T]())
	}

	return array.New(array.Shape{1, len(v) / width}, asElements[T](v))
}

func checkKinds[R numeric.Real, T numeric.Element](op string) error {
	elem, comp := numeric.KindOf[T](), numeric.KindOf[R]()
	switch elem {
	case numeric.Float32, numeric.Float64, numeric.Complex64, numeric.Complex128:
		if elem.Real() == comp {
			return nil
		}
	}

	return audioerr.Specf(op, "%s elements are not made of %s", elem, comp)
}

// asReals reinterprets elements as their real components. Callers have
// checked that R is the component type of T.
func asReals[R numeric.Real, T numeric.Element](s []T) []R {
	if len(s) == 0 {
		return []R{}
	}

	width := numeric.KindOf[T]().Width()

	return unsafe.Slice((*R)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*width)
}

// asElements is the inverse of asReals. len(s) must be a multiple of the
// width of T.
func asElements[T numeric.Element, R numeric.Real](s []R) []T {
	if len(s) == 0 {
		return []T{}
	}

	width := numeric.KindOf[T]().Width()

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(s))), len(s)/width)
}
