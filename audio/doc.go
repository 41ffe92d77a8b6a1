// SPDX-License-Identifier: EPL-2.0

// Package audio connects decoded streams to channel-major arrays and
// implements the audio operations on them.
//
// Decoders deliver a Source: a stream of interleaved float32 samples in
// [-1, 1]. ReadAll drains a Source into an array of shape
// [channels, frames], and ArraySource replays such an array as a Source:
//
//	a, format, err := audio.ReadAll(src, audio.Limits{})
//	if err != nil {
//	    return err
//	}
//
// The array operations work in place:
//
//   - ToMono averages over the channel axis and drops it.
//   - DBToPower maps decibels to power, x -> ref * 10^(x/10).
//   - PowerToDB is its inverse with an amplitude floor.
//
// # Resampling
//
// ResampleArray converts a whole array between sample rates. For long
// inputs the streaming Resampler and MonoMixer keep memory bounded:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
// # Errors
//
// Failures carry an audioerr.Kind. Shape and argument errors match
// audioerr.ErrSpecification, a stream that outgrows Limits matches
// audioerr.ErrResourceLimit, and invalid rate parameters match
// audioerr.ErrResample. Sources end with io.EOF, which is never wrapped.
package audio
