// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/window"
)

// Window selects the taper applied to each channel before the transform.
type Window uint8

const (
	Rectangular Window = iota
	Hann
	Hamming
	Blackman
)

func (w Window) String() string {
	switch w {
	case Rectangular:
		return "rectangular"
	case Hann:
		return "hann"
	case Hamming:
		return "hamming"
	case Blackman:
		return "blackman"
	}

	return fmt.Sprintf("window(%d)", uint8(w))
}

// ParseWindow maps a name as printed by String back to a Window.
func ParseWindow(name string) (Window, bool) {
	for w := Rectangular; w <= Blackman; w++ {
		if w.String() == name {
			return w, true
		}
	}

	return 0, false
}

func (w Window) kind() window.Type {
	switch w {
	case Hann:
		return window.TypeHann
	case Hamming:
		return window.TypeHamming
	case Blackman:
		return window.TypeBlackman
	}

	return window.TypeRectangular
}

// Coefficients returns the n periodic window coefficients, or nil when n <= 0.
// Unknown windows fall back to rectangular.
func (w Window) Coefficients(n int) []float64 {
	return window.Generate(w.kind(), n, window.WithPeriodic())
}

// apply writes samples*coeffs into dst.
func apply(dst, samples, coeffs []float64) error {
	copy(dst, samples)

	return window.ApplyCoefficientsInPlace(dst, coeffs)
}
