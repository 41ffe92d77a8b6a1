// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams through github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo float32 samples in [-1, 1];
// mono input is duplicated across both channels by go-mp3. Use
// audio.ToMono or audio.NewMonoMixer to fold it back down.
//
//	f, _ := os.Open("voice.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	a, format, err := audio.ReadAll(src, audio.Limits{})
//
// Parse failures are reported as audioerr.ErrDecode. Encoding is not
// supported.
package mp3
