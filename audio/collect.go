// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audioerr"
)

// DefaultMaxSamples caps ReadAll when Limits.MaxSamples is zero: one hour of
// 8 channel audio at 48 kHz.
const DefaultMaxSamples = 48000 * 60 * 60 * 8

// maxIdleReads bounds how many empty, error-free reads a source may return
// in a row before it is considered stuck.
const maxIdleReads = 64

// Limits bounds the memory a decode may claim.
type Limits struct {
	// MaxSamples is the largest number of interleaved samples ReadAll keeps.
	// Zero selects DefaultMaxSamples; a negative value disables the check.
	MaxSamples int
}

func (l Limits) maxSamples() int {
	if l.MaxSamples == 0 {
		return DefaultMaxSamples
	}

	return l.MaxSamples
}

// ReadAll drains src into a [channels, frames] array. A trailing partial
// frame is dropped. It fails with a resource limit error once the stream
// grows past lim, and classifies errors reported by src.
func ReadAll(src Source, lim Limits) (*array.Array[float32], Format, error) {
	const op = "audio.ReadAll"

	f := Format{SampleRate: src.SampleRate(), Channels: src.Channels()}
	if f.Channels <= 0 {
		return nil, f, audioerr.New(audioerr.Decode, op, ErrNoChannels)
	}

	chunk := src.BufSize()
	if chunk < f.Channels {
		chunk = f.Channels * max(1, 4096/f.Channels)
	}
	chunk -= chunk % f.Channels
	buf := make([]float32, chunk)

	limit := lim.maxSamples()
	var samples []float32
	idle := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			idle = 0
			if limit > 0 && len(samples)+n > limit {
				return nil, f, audioerr.Limitf(op, "stream exceeds %d samples", limit)
			}
			samples = append(samples, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, f, audioerr.Classify(op, err)
		}

		if n == 0 {
			idle++
			if idle > maxIdleReads {
				return nil, f, audioerr.New(audioerr.Decode, op, ErrNoProgress)
			}
		}
	}

	samples = samples[:len(samples)-len(samples)%f.Channels]
	if samples == nil {
		samples = []float32{}
	}

	a, err := FromInterleaved(samples, f.Channels)
	if err != nil {
		return nil, f, err
	}

	return a, f, nil
}
