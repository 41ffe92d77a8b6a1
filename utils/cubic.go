// SPDX-License-Identifier: EPL-2.0

package utils

import "github.com/ik5/audtensor/numeric"

// CubicInterpolate evaluates the Catmull-Rom spline through four consecutive
// samples at x in [0, 1], where 0 yields y1 and 1 yields y2.
func CubicInterpolate[R numeric.Real](y0, y1, y2, y3, x R) R {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
