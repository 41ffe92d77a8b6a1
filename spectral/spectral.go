// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audioerr"
)

// Options configures Spectrum.
type Options struct {
	Window Window
	// Size is the transform length. It must be a power of two, at least 2
	// and no smaller than the frame count; zero selects the smallest such
	// size.
	Size int
}

// NextPow2 returns the smallest power of two >= n, and 1 for n <= 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// minSize is the shortest transform Spectrum runs.
const minSize = 2

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

// Spectrum transforms every channel of a [channels, frames] array. Frames are
// windowed, zero padded to the transform size, and returned as a
// [channels, size] array of bins.
func Spectrum(a *array.Array[float64], opt Options) (*array.Array[complex128], error) {
	const op = "spectral.Spectrum"

	if a.NDim() != 2 {
		return nil, audioerr.Specf(op, "want a [channels, frames] array, got shape %v", a.Shape())
	}

	channels, frames := a.Dim(0), a.Dim(1)
	if frames == 0 {
		return nil, audioerr.Specf(op, "no frames to transform")
	}

	size := opt.Size
	switch {
	case size == 0:
		size = max(NextPow2(frames), minSize)
	case !isPow2(size) || size < max(frames, minSize):
		return nil, audioerr.Specf(op, "size %d is not a power of two >= %d", size, max(frames, minSize))
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, audioerr.Classify(op, err)
	}

	samples, ok := a.AsSlice()
	if !ok {
		samples = a.Values()
	}

	coeffs := opt.Window.Coefficients(frames)
	windowed := make([]float64, frames)
	in := make([]complex128, size)
	out := make([]complex128, channels*size)

	for c := range channels {
		if err := apply(windowed, samples[c*frames:(c+1)*frames], coeffs); err != nil {
			return nil, audioerr.Classify(op, err)
		}

		clear(in)
		for i, v := range windowed {
			in[i] = complex(v, 0)
		}

		if err := plan.Forward(out[c*size:(c+1)*size], in); err != nil {
			return nil, audioerr.Classify(op, err)
		}
	}

	return array.New(array.Shape{channels, size}, out)
}

// Inverse transforms a [channels, size] spectrum back and keeps the real
// part of the first frames samples of each channel. Windowing applied by
// Spectrum is not undone.
func Inverse(s *array.Array[complex128], frames int) (*array.Array[float64], error) {
	const op = "spectral.Inverse"

	if s.NDim() != 2 {
		return nil, audioerr.Specf(op, "want a [channels, bins] array, got shape %v", s.Shape())
	}

	channels, size := s.Dim(0), s.Dim(1)
	if !isPow2(size) || size < minSize {
		return nil, audioerr.Specf(op, "%d bins is not a power of two >= %d", size, minSize)
	}
	if frames < 0 || frames > size {
		return nil, audioerr.Specf(op, "cannot take %d frames from %d bins", frames, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, audioerr.Classify(op, err)
	}

	bins, ok := s.AsSlice()
	if !ok {
		bins = s.Values()
	}

	tmp := make([]complex128, size)
	out := make([]float64, channels*frames)
	for c := range channels {
		if err := plan.Inverse(tmp, bins[c*size:(c+1)*size]); err != nil {
			return nil, audioerr.Classify(op, err)
		}
		for i := range frames {
			out[c*frames+i] = real(tmp[i])
		}
	}

	return array.New(array.Shape{channels, frames}, out)
}

// split copies the real and imaginary parts of bins into two slices.
func split(bins []complex128) (re, im []float64) {
	re = make([]float64, len(bins))
	im = make([]float64, len(bins))
	for i, b := range bins {
		re[i], im[i] = real(b), imag(b)
	}

	return re, im
}

func reduce(s *array.Array[complex128], fn func(dst, re, im []float64)) *array.Array[float64] {
	bins, ok := s.AsSlice()
	if !ok {
		bins = s.Values()
	}

	re, im := split(bins)
	out := make([]float64, len(bins))
	fn(out, re, im)

	// Same element count as s, so New cannot fail.
	a, _ := array.New(s.Shape(), out)

	return a
}

// Magnitude returns |x| for every bin, in an array of the same shape.
func Magnitude(s *array.Array[complex128]) *array.Array[float64] {
	return reduce(s, vecmath.Magnitude)
}

// Power returns |x|^2 for every bin, in an array of the same shape.
func Power(s *array.Array[complex128]) *array.Array[float64] {
	return reduce(s, vecmath.Power)
}

// BinFrequency returns the centre frequency in Hz of bin k of a transform of
// the given size at sampleRate.
func BinFrequency(k, size, sampleRate int) float64 {
	return float64(k) * float64(sampleRate) / float64(size)
}
