// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/internal/pcm"
)

// Decoder reads uncompressed AIFF streams of 8, 16, 24 or 32 bits.
type Decoder struct {
	// MaxBytes bounds how much of a non-seekable input is buffered before
	// parsing. Zero selects pcm.DefaultMaxBytes.
	MaxBytes int64
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	const op = "aiff.Decode"

	rs, err := pcm.Seekable(op, r, d.MaxBytes)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, audioerr.New(audioerr.Decode, op, ErrNotAiffFile)
	}
	dec.ReadInfo()

	// AIFF stores signed 8 bit samples.
	src, err := pcm.NewSource(dec, pcm.Options{BitDepth: int(dec.BitDepth), Op: op})
	if err != nil {
		return nil, err
	}

	return src, nil
}
