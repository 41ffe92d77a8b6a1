// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/utils"
)

// go-mp3 always emits 16-bit little-endian stereo.
const (
	channels       = 2
	bytesPerSample = 2
	bufBytes       = 8192
)

// mp3Reader is the part of gomp3.Decoder the source reads from.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// carry holds a trailing odd byte from the previous read.
	carry []byte
	done  bool
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, bufBytes),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	const op = "mp3.ReadSamples"

	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	k := copy(buf, s.carry)
	s.carry = s.carry[:0]

	n, err := s.dec.Read(buf[k:])
	n += k

	samples := n / bytesPerSample
	if rest := n % bytesPerSample; rest != 0 {
		s.carry = append(s.carry, buf[n-rest:n]...)
	}

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(buf[i*bytesPerSample:]))
		dst[i] = utils.FromInt[float32](int(v), 16)
	}

	if err == io.EOF {
		s.done = true
		return samples, io.EOF
	}
	if err != nil {
		return samples, audioerr.ClassifyDecode(op, err)
	}

	return samples, nil
}

// Decoder reads MPEG-1/2 Layer III streams. Output is always stereo.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	const op = "mp3.Decode"

	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, audioerr.ClassifyDecode(op, err)
	}
	if dec.SampleRate() <= 0 {
		return nil, audioerr.New(audioerr.Decode, op, ErrNoSampleRate)
	}

	return newSource(dec), nil
}
