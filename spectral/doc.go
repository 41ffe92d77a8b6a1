// SPDX-License-Identifier: EPL-2.0

// Package spectral computes per-channel spectra of [channels, frames]
// arrays.
//
// Spectrum runs one FFT per channel and returns a [channels, size] complex
// array; Inverse undoes it. Magnitude and Power reduce a complex spectrum to
// real values, ready for audio.PowerToDB:
//
//	s, err := spectral.Spectrum(a, spectral.Options{Window: spectral.Hann})
//	if err != nil {
//	    return err
//	}
//	p := spectral.Power(s)
//	err = audio.PowerToDB(p, 1, 1e-10)
package spectral
