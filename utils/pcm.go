// SPDX-License-Identifier: EPL-2.0

package utils

import "github.com/ik5/audtensor/numeric"

// ToInt16 clamps x to [-1, 1] and scales it to 16 bit PCM. Positive full
// scale maps to 32767 so the result never wraps.
func ToInt16[R numeric.Real](x R) int16 {
	switch {
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	case x != x: // NaN
		return 0
	}

	return int16(x * 32767)
}

// Int16s converts src into dst, growing dst when it is too short, and
// returns the filled prefix.
func Int16s[R numeric.Real](dst []int16, src []R) []int16 {
	if cap(dst) < len(src) {
		dst = make([]int16, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = ToInt16(v)
	}

	return dst
}

// FromInt normalizes a signed integer sample of the given bit depth to
// [-1, 1). Depths outside 1..32 are treated as 16 bits.
func FromInt[R numeric.Real](v, bitDepth int) R {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}

	return R(float64(v) / float64(int64(1)<<(bitDepth-1)))
}

// FromUint8 normalizes unsigned 8 bit PCM, whose silence is 128.
func FromUint8[R numeric.Real](v int) R {
	return R(float64(v-128) / 128)
}
