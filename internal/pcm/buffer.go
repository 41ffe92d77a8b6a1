// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"io"

	"github.com/ik5/audtensor/audioerr"
)

// DefaultMaxBytes bounds how much of a non-seekable input is buffered.
const DefaultMaxBytes = 512 << 20

// Seekable returns r itself when it can seek. Otherwise it reads r into
// memory, failing with a resource limit error past maxBytes. A maxBytes of
// zero selects DefaultMaxBytes. A ReadSeeker whose Seek fails, such as a
// pipe behind an *os.File, yields a Seek error.
func Seekable(op string, r io.Reader, maxBytes int64) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		if _, err := rs.Seek(0, io.SeekCurrent); err != nil {
			return nil, audioerr.New(audioerr.Seek, op,
				&audioerr.SeekError{Offset: 0, Whence: io.SeekCurrent, Err: err})
		}

		return rs, nil
	}

	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, audioerr.New(audioerr.IO, op, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, audioerr.Limitf(op, "input exceeds %d bytes", maxBytes)
	}

	return bytes.NewReader(data), nil
}
