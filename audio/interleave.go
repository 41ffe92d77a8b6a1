// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/matrix"
	"github.com/ik5/audtensor/numeric"
)

// FromInterleaved turns frame-interleaved samples, as produced by decoders,
// into a [channels, frames] array. The samples are copied.
func FromInterleaved[R numeric.Real](samples []R, channels int) (*array.Array[R], error) {
	const op = "audio.FromInterleaved"

	if channels <= 0 {
		return nil, audioerr.Specf(op, "channel count must be positive, got %d", channels)
	}
	if len(samples)%channels != 0 {
		return nil, audioerr.Specf(op, "%d samples do not split into %d channels", len(samples), channels)
	}

	frames := len(samples) / channels
	m, err := matrix.NewRowMajor(frames, channels, samples)
	if err != nil {
		return nil, err
	}

	if channels == 1 || frames <= 1 {
		// Already channel-major; the adapter would alias samples.
		return array.New(array.Shape{channels, frames}, append([]R{}, samples...))
	}

	return matrix.ToArray[R](m)
}

// Interleave returns the samples of a [channels, frames] array in
// frame-interleaved order, ready for an encoder or a playback sink.
func Interleave[R numeric.Real](a *array.Array[R]) ([]R, error) {
	const op = "audio.Interleave"

	if a.NDim() != 2 {
		return nil, audioerr.Specf(op, "want a [channels, frames] array, got shape %v", a.Shape())
	}

	if !a.IsContiguous() {
		a = a.Clone()
	}

	m, err := matrix.FromArray[R](a, NChannels(a), NFrames(a))
	if err != nil {
		return nil, err
	}

	return m.RowMajor(), nil
}
