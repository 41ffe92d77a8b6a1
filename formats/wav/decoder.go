// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/internal/pcm"
)

// formatPCM is the WAVE_FORMAT_PCM tag.
const formatPCM = 1

// Decoder reads integer PCM WAV streams of 8, 16, 24 or 32 bits.
type Decoder struct {
	// MaxBytes bounds how much of a non-seekable input is buffered before
	// parsing. Zero selects pcm.DefaultMaxBytes.
	MaxBytes int64
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	const op = "wav.Decode"

	rs, err := pcm.Seekable(op, r, d.MaxBytes)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, audioerr.New(audioerr.Decode, op, ErrNotWavFile)
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, audioerr.New(audioerr.Decode, op, err)
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, audioerr.New(audioerr.Decode, op, ErrUnsupportedEncoding)
	}

	src, err := pcm.NewSource(dec, pcm.Options{
		BitDepth:  int(dec.BitDepth),
		Unsigned8: true,
		Op:        op,
	})
	if err != nil {
		return nil, err
	}

	return src, nil
}
