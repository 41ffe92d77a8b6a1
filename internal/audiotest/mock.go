// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sources and array helpers for tests.
// It does not import package audio so that package can use it in its own
// tests; the sources satisfy audio.Source structurally.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the sample for a frame and channel.
type Waveform func(frame, channel int) float32

// Source generates a fixed number of frames from a Waveform.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	bufSize    int
	closed     bool
	wave       Waveform
}

// NewSource returns a source of frames frames. bufSize defaults to 4096.
func NewSource(sampleRate, channels, frames int, wave Waveform) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		bufSize:    4096,
		wave:       wave,
	}
}

// Silence generates zeros.
func Silence(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// Sine generates the same sine tone on every channel.
func Sine(sampleRate, channels, frames int, hz float64) *Source {
	return NewSource(sampleRate, channels, frames, func(f, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * hz * float64(f) / float64(sampleRate)))
	})
}

// Constant generates v on every channel.
func Constant(sampleRate, channels, frames int, v float32) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return v })
}

// Ramp generates frame+channel*100, which makes misplaced samples obvious.
func Ramp(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(f, c int) float32 { return float32(f + c*100) })
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return s.bufSize }

// WithBufSize changes the advertised buffer size.
func (s *Source) WithBufSize(n int) *Source {
	s.bufSize = n
	return s
}

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

// Reset rewinds to the first frame.
func (s *Source) Reset() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.wave(s.pos+f, c)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}

	return n * s.channels, nil
}

// Failing returns samples until it has produced after samples, then fails
// with err.
type Failing struct {
	*Source
	after int
	err   error
	read  int
}

func NewFailing(src *Source, after int, err error) *Failing {
	return &Failing{Source: src, after: after, err: err}
}

func (f *Failing) ReadSamples(dst []float32) (int, error) {
	if f.read >= f.after {
		return 0, f.err
	}

	n, err := f.Source.ReadSamples(dst[:min(len(dst), f.after-f.read)])
	f.read += n

	return n, err
}

// Stuck never returns samples or an error.
type Stuck struct{ *Source }

func (Stuck) ReadSamples([]float32) (int, error) { return 0, nil }
