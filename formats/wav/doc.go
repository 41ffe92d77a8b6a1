// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files through
// github.com/go-audio/wav.
//
// Decoder accepts 8, 16, 24 and 32 bit PCM with any channel count and
// sample rate. Inputs that cannot seek are buffered in memory up to
// Decoder.MaxBytes:
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	a, format, err := audio.ReadAll(src, audio.Limits{})
//
// WriteArray encodes a [channels, frames] array to a seekable writer;
// WritePCM16 streams 16 bit samples to any writer.
package wav
