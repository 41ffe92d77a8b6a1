// SPDX-License-Identifier: EPL-2.0

package array

import (
	"fmt"

	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/numeric"
)

// Array is an N-dimensional view over a shared buffer of numeric elements.
//
// Handles returned by Share and the rank conversions share one layout with
// a: element writes and Assign through any of them are seen by all. Views
// from Transpose and Reshape alias the elements but keep their own layout,
// so a later Assign leaves them on the old buffer. Use Clone for an
// independent copy. Array does no locking; a caller mutating an array must
// hold exclusive access to its storage.
type Array[T numeric.Element] struct {
	*layout[T]
}

// layout is the part of an array that handles from Share have in common.
type layout[T numeric.Element] struct {
	data    []T
	shape   Shape
	strides []int // in elements
	offset  int
}

// New builds an array of the given shape over values. values is adopted, not
// copied. It fails when the shape holds a different number of elements than
// values, has a negative axis, or overflows the index range.
func New[T numeric.Element](shape Shape, values []T) (*Array[T], error) {
	if err := shape.validate(); err != nil {
		return nil, audioerr.Specf("array.New", "%v", err)
	}

	if n := shape.NumElements(); n != len(values) {
		return nil, audioerr.Specf("array.New",
			"shape %v holds %d elements, got %d values", shape, n, len(values))
	}

	return &Array[T]{&layout[T]{
		data:    values,
		shape:   shape.Clone(),
		strides: contiguousStrides(shape),
	}}, nil
}

// Zeros returns a zero-filled array.
func Zeros[T numeric.Element](shape Shape) (*Array[T], error) {
	if err := shape.validate(); err != nil {
		return nil, audioerr.Specf("array.Zeros", "%v", err)
	}

	return New(shape, make([]T, shape.NumElements()))
}

// Full returns an array with every element set to v.
func Full[T numeric.Element](shape Shape, v T) (*Array[T], error) {
	a, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = v
	}

	return a, nil
}

func (a *Array[T]) Len() int           { return a.shape.NumElements() }
func (a *Array[T]) Shape() Shape       { return a.shape.Clone() }
func (a *Array[T]) NDim() int          { return len(a.shape) }
func (a *Array[T]) IsEmpty() bool      { return a.Len() == 0 }
func (a *Array[T]) Kind() numeric.Kind { return numeric.KindOf[T]() }

// Dim returns the size of axis. It panics when axis is out of range.
func (a *Array[T]) Dim(axis int) int { return a.shape[axis] }

// Strides returns the element step of each axis.
func (a *Array[T]) Strides() []int {
	s := make([]int, len(a.strides))
	copy(s, a.strides)

	return s
}

// IsContiguous reports whether the elements occupy one unbroken run of the
// buffer in row-major order. Axes of size one never break contiguity.
func (a *Array[T]) IsContiguous() bool {
	if a.Len() == 0 {
		return true
	}

	expect := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] == 1 {
			continue
		}
		if a.strides[i] != expect {
			return false
		}
		expect *= a.shape[i]
	}

	return true
}

// AsSlice returns the backing elements in row-major order when the array is
// contiguous, and (nil, false) otherwise. It never copies; writes to the
// returned slice mutate the array.
func (a *Array[T]) AsSlice() ([]T, bool) {
	if !a.IsContiguous() {
		return nil, false
	}

	n := a.Len()
	if n == 0 {
		return a.data[:0:0], true
	}

	return a.data[a.offset : a.offset+n : a.offset+n], true
}

func (a *Array[T]) index(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("array: %d indices for %d axes", len(idx), len(a.shape)))
	}

	off := a.offset
	for i, x := range idx {
		if x < 0 || x >= a.shape[i] {
			panic(fmt.Sprintf("array: index %d out of range for axis %d of size %d", x, i, a.shape[i]))
		}
		off += x * a.strides[i]
	}

	return off
}

// At returns the element at idx. It panics when idx is out of range.
func (a *Array[T]) At(idx ...int) T { return a.data[a.index(idx)] }

// Set stores v at idx. It panics when idx is out of range.
func (a *Array[T]) Set(v T, idx ...int) { a.data[a.index(idx)] = v }

// Share returns a second handle over the same storage and layout. Assign
// through either handle is observed by both.
func (a *Array[T]) Share() *Array[T] { return &Array[T]{a.layout} }

// Clone returns a contiguous deep copy.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{&layout[T]{
		data:    a.Values(),
		shape:   a.shape.Clone(),
		strides: contiguousStrides(a.shape),
	}}
}

// Values copies the elements out in row-major order, whatever the layout.
func (a *Array[T]) Values() []T {
	out := make([]T, 0, a.Len())
	a.walk(func(off int) { out = append(out, a.data[off]) })

	return out
}

// Apply replaces every element x with fn(x).
func (a *Array[T]) Apply(fn func(T) T) {
	if s, ok := a.AsSlice(); ok {
		for i := range s {
			s[i] = fn(s[i])
		}

		return
	}

	a.walk(func(off int) { a.data[off] = fn(a.data[off]) })
}

// walk calls fn with the buffer offset of every element in row-major order.
func (a *Array[T]) walk(fn func(off int)) {
	n := a.Len()
	if n == 0 {
		return
	}

	idx := make([]int, len(a.shape))
	off := a.offset
	for range n {
		fn(off)
		for d := len(a.shape) - 1; d >= 0; d-- {
			idx[d]++
			off += a.strides[d]
			if idx[d] < a.shape[d] {
				break
			}
			off -= a.strides[d] * a.shape[d]
			idx[d] = 0
		}
	}
}

// Transpose returns a view with permuted axes. With no arguments the axis
// order is reversed. The view shares storage and is usually not contiguous.
func (a *Array[T]) Transpose(axes ...int) (*Array[T], error) {
	nd := len(a.shape)
	if len(axes) == 0 {
		axes = make([]int, nd)
		for i := range axes {
			axes[i] = nd - 1 - i
		}
	}
	if len(axes) != nd {
		return nil, audioerr.Specf("array.Transpose", "%d axes given for rank %d", len(axes), nd)
	}

	seen := make([]bool, nd)
	shape := make(Shape, nd)
	strides := make([]int, nd)
	for i, ax := range axes {
		if ax < 0 || ax >= nd {
			return nil, audioerr.Specf("array.Transpose", "axis %d out of range for rank %d", ax, nd)
		}
		if seen[ax] {
			return nil, audioerr.Specf("array.Transpose", "duplicate axis %d", ax)
		}
		seen[ax] = true
		shape[i] = a.shape[ax]
		strides[i] = a.strides[ax]
	}

	return &Array[T]{&layout[T]{data: a.data, shape: shape, strides: strides, offset: a.offset}}, nil
}

// Reshape returns a view with a new shape over the same storage. The array
// must be contiguous and the element count must not change.
func (a *Array[T]) Reshape(shape Shape) (*Array[T], error) {
	if err := shape.validate(); err != nil {
		return nil, audioerr.Specf("array.Reshape", "%v", err)
	}
	if shape.NumElements() != a.Len() {
		return nil, audioerr.Specf("array.Reshape",
			"shape %v holds %d elements, array has %d", shape, shape.NumElements(), a.Len())
	}

	s, ok := a.AsSlice()
	if !ok {
		return nil, audioerr.Specf("array.Reshape", "array with strides %v is not contiguous", a.strides)
	}

	return &Array[T]{&layout[T]{data: s, shape: shape.Clone(), strides: contiguousStrides(shape)}}, nil
}

// Assign rebinds a to values with the given shape, under the same rules as
// New. Every handle obtained through Share or the rank conversions observes
// the new shape and values. Views from Transpose and Reshape keep the old
// buffer.
func (a *Array[T]) Assign(shape Shape, values []T) error {
	b, err := New(shape, values)
	if err != nil {
		return err
	}
	*a.layout = *b.layout

	return nil
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("Array(shape=%v, kind=%s)", a.shape, a.Kind())
}
