// SPDX-License-Identifier: EPL-2.0

// Package numeric defines the element types that audio arrays may hold.
//
// The set is closed: real and complex floats of two precisions. Complex
// elements are stored by Go as two adjacent components (real first, then
// imaginary), which is what lets a complex buffer be reinterpreted as a real
// buffer of twice the length.
package numeric

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Element is the constraint satisfied by every valid array element.
type Element interface {
	float32 | float64 | complex64 | complex128
}

// Real is the constraint for the component type of an Element.
type Real interface {
	float32 | float64
}

// Kind tags one of the four element types.
type Kind uint8

const (
	Float32 Kind = iota + 1
	Float64
	Complex64  // pair of float32
	Complex128 // pair of float64
)

// KindOf returns the Kind of T.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}

	return 0
}

// IsComplex reports whether k is a complex kind.
func (k Kind) IsComplex() bool {
	switch k {
	case Complex64, Complex128:
		return true
	case Float32, Float64:
		return false
	}

	return false
}

// Width is the number of real storage slots one element occupies.
func (k Kind) Width() int {
	if k.IsComplex() {
		return 2
	}

	return 1
}

// Real returns the component kind of k.
func (k Kind) Real() Kind {
	switch k {
	case Float32, Complex64:
		return Float32
	case Float64, Complex128:
		return Float64
	}

	return 0
}

// Size returns the byte size of one element.
func (k Kind) Size() int {
	switch k {
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	}

	return 0
}

// Valid reports whether k is one of the four element kinds.
func (k Kind) Valid() bool {
	return k >= Float32 && k <= Complex128
}

func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Dist returns |a - b|. For complex values it is the modulus of the difference.
// NaN propagates.
func Dist[T Element](a, b T) float64 {
	switch x := any(a).(type) {
	case float32:
		return math.Abs(float64(x - any(b).(float32)))
	case float64:
		return math.Abs(x - any(b).(float64))
	case complex64:
		return cmplx.Abs(complex128(x - any(b).(complex64)))
	case complex128:
		return cmplx.Abs(x - any(b).(complex128))
	}

	return math.NaN()
}

// FromFloat converts a real float64 to T. Complex results have zero imaginary part.
func FromFloat[T Element](v float64) T {
	var out T
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	case *complex64:
		*p = complex(float32(v), 0)
	case *complex128:
		*p = complex(v, 0)
	}

	return out
}

// ToComplex widens any element to complex128.
func ToComplex[T Element](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}

	return 0
}

// FromComplex narrows a complex128 to T, dropping the imaginary part for
// real kinds.
func FromComplex[T Element](v complex128) T {
	var out T
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(real(v))
	case *float64:
		*p = real(v)
	case *complex64:
		*p = complex64(v)
	case *complex128:
		*p = v
	}

	return out
}
