// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
)

const bufSize = 4096

// oggReader is the part of oggvorbis.Reader the source reads from.
// Read returns a count of values, always a whole number of frames.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	done       bool
}

func newSource(dec oggReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return bufSize - bufSize%s.channels }

// ReadSamples decodes into the largest whole-frame prefix of dst.
func (s *source) ReadSamples(dst []float32) (int, error) {
	const op = "vorbis.ReadSamples"

	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst) < s.channels {
		return 0, audio.ErrInvalidDstSize
	}
	if s.done {
		return 0, io.EOF
	}

	n, err := s.dec.Read(dst[:len(dst)-len(dst)%s.channels])
	if err == io.EOF {
		s.done = true
		return n, io.EOF
	}
	if err != nil {
		return n, audioerr.ClassifyDecode(op, err)
	}

	return n, nil
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	const op = "vorbis.Decode"

	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, audioerr.ClassifyDecode(op, err)
	}
	if dec.Channels() <= 0 || dec.SampleRate() <= 0 {
		return nil, audioerr.New(audioerr.Decode, op, ErrBadHeader)
	}

	return newSource(dec), nil
}
