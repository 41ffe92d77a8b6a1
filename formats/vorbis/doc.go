// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// Samples come out interleaved as float32 in [-1, 1] with the channel
// count and rate from the identification header. ReadSamples only ever
// fills whole frames, so a dst shorter than one frame is rejected with
// audio.ErrInvalidDstSize.
//
// The package registers nothing on its own; the root package maps the
// "ogg" and "oga" keys to Decoder.
package vorbis
