// SPDX-License-Identifier: EPL-2.0

package array

import (
	"fmt"
	"math"
	"math/bits"
)

// Shape holds the size of each axis. An empty Shape describes a scalar.
type Shape []int

// NumElements returns the product of the axis sizes.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// NDim returns the number of axes.
func (s Shape) NDim() int { return len(s) }

// Equal reports whether both shapes have the same axes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns a copy of s.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)

	return c
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// validate checks that every axis is non-negative and that neither the
// element count nor any stride overflows int. Strides are derived from the
// non-zero axes, so an empty axis does not hide an overflow elsewhere.
func (s Shape) validate() error {
	var strideSpan uint64 = 1
	for i, d := range s {
		if d < 0 {
			return fmt.Errorf("axis %d has negative size %d", i, d)
		}
		if d == 0 {
			continue
		}
		hi, lo := bits.Mul64(strideSpan, uint64(d))
		if hi != 0 || lo > math.MaxInt {
			return fmt.Errorf("shape %v overflows the index range", s)
		}
		strideSpan = lo
	}

	return nil
}

// contiguousStrides returns row-major (C order) element strides for shape.
func contiguousStrides(shape Shape) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		if shape[i] > 0 {
			acc *= shape[i]
		}
	}

	return strides
}
