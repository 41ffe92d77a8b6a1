// SPDX-License-Identifier: EPL-2.0

// Package audtensor loads audio into typed, shape-aware arrays and runs the
// common conversions on them.
//
// Decoded audio is held as a channel-major *array.Array of shape
// [channels, frames]. The array package provides construction, strided
// views, rank conversion and approximate comparison. Package matrix
// reinterprets an array as a 2D column-major view without copying (complex
// elements become pairs of real rows) and bridges to gonum. Package audio
// holds the domain operators (ToMono, DBToPower, PowerToDB), streaming
// sources and the cubic resampler. Package spectral adds FFT spectra.
//
// # Formats
//
// The default registry decodes:
//   - WAV, integer PCM 8/16/24/32 bit (formats/wav, "wav", "wave")
//   - AIFF, integer PCM (formats/aiff, "aiff", "aif")
//   - MP3 (formats/mp3, "mp3")
//   - Ogg Vorbis (formats/vorbis, "ogg", "oga")
//
// # Quick start
//
//	a, format, err := audtensor.LoadFile("speech.wav", audio.Limits{})
//	if err != nil {
//	    return err
//	}
//	if err := audio.ToMono(a); err != nil {
//	    return err
//	}
//
// ResampleToMono16 runs the whole decode, resample and downmix chain and
// returns 16 bit PCM ready for wav.WritePCM16.
//
// # Errors
//
// Every failure carries an audioerr kind; test it with errors.Is against
// audioerr.ErrDecode, audioerr.ErrResourceLimit and the other sentinels.
// No partially built array is returned alongside an error.
package audtensor
