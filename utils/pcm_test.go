// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{"zero", 0, 0},
		{"full scale", 1, math.MaxInt16},
		{"negative full scale", -1, -math.MaxInt16},
		{"half", 0.5, 16383},
		{"small negative", -0.001, -32},
		{"clamp high", 1.5, math.MaxInt16},
		{"clamp low", -100, -math.MaxInt16},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ToInt16(tt.input); got != tt.want {
				t.Errorf("ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
			if got := ToInt16(float32(tt.input)); got != tt.want {
				t.Errorf("ToInt16(float32(%v)) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := ToInt16[float32](-1)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := ToInt16(float32(f))
		if curr < prev {
			t.Fatalf("ToInt16(%v) = %d after %d", f, curr, prev)
		}
		prev = curr
	}
}

func TestInt16s_ReusesDst(t *testing.T) {
	t.Parallel()

	dst := make([]int16, 0, 8)
	out := Int16s(dst, []float32{0, 1, -1})
	if len(out) != 3 || &out[0] != &dst[:1][0] {
		t.Fatalf("Int16s() did not reuse dst: len %d", len(out))
	}
	if out[1] != math.MaxInt16 || out[2] != -math.MaxInt16 {
		t.Errorf("Int16s() = %v", out)
	}

	grown := Int16s(nil, []float64{0.5})
	if len(grown) != 1 || grown[0] != 16383 {
		t.Errorf("Int16s(nil) = %v", grown)
	}
}

func TestFromInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, depth int
		want     float64
	}{
		{0, 16, 0},
		{-32768, 16, -1},
		{16384, 16, 0.5},
		{-128, 8, -1},
		{1 << 22, 24, 0.5},
		{-1 << 31, 32, -1},
		{16384, 0, 0.5},
	}

	for _, tt := range tests {
		if got := FromInt[float64](tt.v, tt.depth); got != tt.want {
			t.Errorf("FromInt(%d, %d) = %v, want %v", tt.v, tt.depth, got, tt.want)
		}
	}

	if got := FromUint8[float32](128); got != 0 {
		t.Errorf("FromUint8(128) = %v, want 0", got)
	}
	if got := FromUint8[float32](0); got != -1 {
		t.Errorf("FromUint8(0) = %v, want -1", got)
	}
}

func BenchmarkInt16s(b *testing.B) {
	src := make([]float32, 8000)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.1))
	}
	dst := make([]int16, len(src))

	b.ReportAllocs()
	for b.Loop() {
		dst = Int16s(dst, src)
	}
}
