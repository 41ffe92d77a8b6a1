// SPDX-License-Identifier: EPL-2.0

package audtensor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
)

// Load decodes r with the decoder registered for format and collects the
// stream into a [channels, frames] array.
func Load(r io.Reader, format string, lim audio.Limits) (*array.Array[float32], audio.Format, error) {
	const op = "audtensor.Load"

	dec, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, audio.Format{}, audioerr.New(audioerr.Decode, op, fmt.Errorf("%w: %q", ErrUnknownFormat, format))
	}

	return decodeAll(dec, r, lim)
}

// LoadFile is Load with the format taken from the file extension.
func LoadFile(path string, lim audio.Limits) (*array.Array[float32], audio.Format, error) {
	const op = "audtensor.LoadFile"

	dec, ok := DefaultRegistry().ForPath(path)
	if !ok {
		return nil, audio.Format{}, audioerr.New(audioerr.Decode, op,
			fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path)))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, audio.Format{}, audioerr.Classify(op, err)
	}
	defer f.Close()

	return decodeAll(dec, f, lim)
}

func decodeAll(dec audio.Decoder, r io.Reader, lim audio.Limits) (*array.Array[float32], audio.Format, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, audio.Format{}, err
	}
	defer src.Close()

	return audio.ReadAll(src, lim)
}
