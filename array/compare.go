// SPDX-License-Identifier: EPL-2.0

package array

import "github.com/ik5/audtensor/numeric"

// DefaultTolerance is the absolute difference under which two elements are
// considered equal by Approx.
const DefaultTolerance = 1e-4

// Approx reports whether lhs and rhs have the same shape and every pair of
// elements differs by less than DefaultTolerance. A NaN on either side makes
// the arrays unequal.
func Approx[T numeric.Element](lhs, rhs *Array[T]) bool {
	return ApproxTol(lhs, rhs, DefaultTolerance)
}

// ApproxTol is Approx with an explicit tolerance.
func ApproxTol[T numeric.Element](lhs, rhs *Array[T], tol float64) bool {
	if !lhs.shape.Equal(rhs.shape) {
		return false
	}

	l, lok := lhs.AsSlice()
	r, rok := rhs.AsSlice()
	if !lok {
		l = lhs.Values()
	}
	if !rok {
		r = rhs.Values()
	}

	for i := range l {
		// Written as !(d < tol) so that NaN fails the pair.
		if !(numeric.Dist(l[i], r[i]) < tol) {
			return false
		}
	}

	return true
}
