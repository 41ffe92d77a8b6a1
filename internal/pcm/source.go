// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM codecs of go-audio to audio.Source and
// back. It is shared by the WAV and AIFF formats.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/utils"
)

// Reader is the part of a go-audio decoder that Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams a go-audio decoder as normalized float32 samples.
type Source struct {
	dec        Reader
	op         string
	sampleRate int
	channels   int
	bitDepth   int
	unsigned8  bool
	buf        *goaudio.IntBuffer
}

// Options describe the integer layout behind a Reader.
type Options struct {
	BitDepth int
	// Unsigned8 marks 8 bit samples as unsigned with silence at 128, as WAV
	// stores them.
	Unsigned8 bool
	// Op names the decoder in classified errors.
	Op string
}

// NewSource wraps dec. Bit depths other than 8, 16, 24 and 32 are rejected.
func NewSource(dec Reader, opt Options) (*Source, error) {
	switch opt.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, audioerr.New(audioerr.Decode, opt.Op, fmt.Errorf("%w: %d bits", ErrBitDepth, opt.BitDepth))
	}

	f := dec.Format()
	if f == nil || f.NumChannels <= 0 || f.SampleRate <= 0 {
		return nil, audioerr.New(audioerr.Decode, opt.Op, ErrFormat)
	}

	return &Source{
		dec:        dec,
		op:         opt.Op,
		sampleRate: f.SampleRate,
		channels:   f.NumChannels,
		bitDepth:   opt.BitDepth,
		unsigned8:  opt.Unsigned8,
	}, nil
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}

	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, audioerr.New(audioerr.Decode, s.op, err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		if s.bitDepth == 8 && s.unsigned8 {
			dst[i] = utils.FromUint8[float32](v)
			continue
		}
		dst[i] = utils.FromInt[float32](v, s.bitDepth)
	}

	// A short read means the data chunk is exhausted.
	if n < len(dst) || errors.Is(err, io.EOF) {
		return n, io.EOF
	}

	return n, nil
}
