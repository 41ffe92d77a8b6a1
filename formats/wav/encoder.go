// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/internal/pcm"
)

// WriteArray encodes a [channels, frames] array as integer PCM WAV.
// Samples outside [-1, 1] are clamped.
func WriteArray(w io.WriteSeeker, a *array.Array[float32], sampleRate, bitDepth int) error {
	const op = "wav.WriteArray"

	if a.NDim() != 2 || audio.NChannels(a) == 0 {
		return audioerr.Specf(op, "want a [channels, frames] array, got shape %v", a.Shape())
	}
	if sampleRate <= 0 {
		return audioerr.Specf(op, "sample rate must be positive, got %d", sampleRate)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, audio.NChannels(a), formatPCM)

	return pcm.Write(op, enc, a, sampleRate, bitDepth, true)
}
