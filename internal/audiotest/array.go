// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"testing"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/numeric"
)

// Array builds an array or fails the test.
func Array[T numeric.Element](tb testing.TB, shape array.Shape, values ...T) *array.Array[T] {
	tb.Helper()

	a, err := array.New(shape, values)
	if err != nil {
		tb.Fatalf("array.New(%v): %v", shape, err)
	}

	return a
}

// Channels builds a [len(rows), frames] array from equal-length rows.
func Channels[T numeric.Element](tb testing.TB, rows ...[]T) *array.Array[T] {
	tb.Helper()

	var values []T
	frames := 0
	for i, r := range rows {
		if i == 0 {
			frames = len(r)
		} else if len(r) != frames {
			tb.Fatalf("row %d has %d frames, want %d", i, len(r), frames)
		}
		values = append(values, r...)
	}
	if values == nil {
		values = []T{}
	}

	return Array(tb, array.Shape{len(rows), frames}, values...)
}

// AssertApprox fails the test unless got and want have the same shape and
// every element is within tol.
func AssertApprox[T numeric.Element](tb testing.TB, got, want *array.Array[T], tol float64) {
	tb.Helper()

	if !array.ApproxTol(got, want, tol) {
		tb.Errorf("got %v %v, want %v %v", got.Shape(), got.Values(), want.Shape(), want.Values())
	}
}
