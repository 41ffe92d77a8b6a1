// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes and encodes uncompressed AIFF files through
// github.com/go-audio/aiff.
//
// The go-audio decoder needs to seek. Decoder passes seekable inputs such
// as *os.File straight through and buffers anything else in memory, up to
// MaxBytes:
//
//	src, err := aiff.Decoder{MaxBytes: 64 << 20}.Decode(conn)
//	if errors.Is(err, audioerr.ErrResourceLimit) {
//	    // input too large to buffer
//	}
//
// Samples are normalized to [-1, 1] whatever the stored bit depth.
package aiff
