// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
)

// Encoder is the part of a go-audio encoder that Write needs.
type Encoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// chunkFrames is the number of frames handed to the encoder per call.
const chunkFrames = 4096

// Write clamps a [channels, frames] array to [-1, 1], scales it to bitDepth
// integers and feeds it to enc, then closes enc.
func Write(op string, enc Encoder, a *array.Array[float32], sampleRate, bitDepth int, unsigned8 bool) error {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return audioerr.Specf(op, "cannot encode %d bit samples", bitDepth)
	}

	samples, err := audio.Interleave(a)
	if err != nil {
		return err
	}

	channels := audio.NChannels(a)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}

	full := float64(int64(1)<<(bitDepth-1)) - 1
	step := chunkFrames * channels
	for start := 0; start < len(samples); start += step {
		chunk := samples[start:min(start+step, len(samples))]
		buf.Data = buf.Data[:0]
		for _, v := range chunk {
			if v != v { // NaN
				v = 0
			}
			x := int(float64(max(-1, min(1, v))) * full)
			if bitDepth == 8 && unsigned8 {
				x += 128
			}
			buf.Data = append(buf.Data, x)
		}

		if err := enc.Write(buf); err != nil {
			return audioerr.New(audioerr.IO, op, fmt.Errorf("%w", err))
		}
	}

	if err := enc.Close(); err != nil {
		return audioerr.New(audioerr.IO, op, fmt.Errorf("%w", err))
	}

	return nil
}
