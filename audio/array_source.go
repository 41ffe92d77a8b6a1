// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audioerr"
)

// ArraySource replays a [channels, frames] array as an interleaved Source.
type ArraySource struct {
	data       []float32 // channel-major
	channels   int
	frames     int
	sampleRate int
	pos        int // next frame
	bufSize    int
}

// NewArraySource reads a from its first frame. The array is not copied when
// it is contiguous, so it must not be modified while the source is in use.
func NewArraySource(a *array.Array[float32], sampleRate int) (*ArraySource, error) {
	const op = "audio.NewArraySource"

	if a.NDim() != 2 {
		return nil, audioerr.Specf(op, "want a [channels, frames] array, got shape %v", a.Shape())
	}
	if NChannels(a) == 0 {
		return nil, audioerr.Specf(op, "array has no channels")
	}
	if sampleRate <= 0 {
		return nil, audioerr.Specf(op, "sample rate must be positive, got %d", sampleRate)
	}

	data, ok := a.AsSlice()
	if !ok {
		data = a.Values()
	}

	return &ArraySource{
		data:       data,
		channels:   NChannels(a),
		frames:     NFrames(a),
		sampleRate: sampleRate,
		bufSize:    4096,
	}, nil
}

func (s *ArraySource) SampleRate() int { return s.sampleRate }
func (s *ArraySource) Channels() int   { return s.channels }
func (s *ArraySource) BufSize() int    { return s.bufSize }
func (s *ArraySource) Close() error    { return nil }

// SetBufSize changes the chunk size advertised to consumers.
func (s *ArraySource) SetBufSize(n int) {
	if n > 0 {
		s.bufSize = n
	}
}

func (s *ArraySource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.frames-s.pos)
	for c := range s.channels {
		row := s.data[c*s.frames+s.pos : c*s.frames+s.pos+frames]
		for f, v := range row {
			dst[f*s.channels+c] = v
		}
	}
	s.pos += frames

	if s.pos >= s.frames {
		return frames * s.channels, io.EOF
	}

	return frames * s.channels, nil
}
