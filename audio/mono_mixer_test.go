// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audtensor/internal/audiotest"
)

func TestMonoMixer_Passthrough(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.Constant(8000, 1, 100, 0.5))
	if mixer.Channels() != 1 || mixer.SampleRate() != 8000 {
		t.Fatalf("Channels, SampleRate = %d, %d", mixer.Channels(), mixer.SampleRate())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil || n != 10 {
		t.Fatalf("ReadSamples() = %d, %v; want 10, nil", n, err)
	}
	for i, v := range buf {
		if v != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		wave     audiotest.Waveform
		want     func(frame int) float32
	}{
		{
			name:     "stereo",
			channels: 2,
			wave: func(_, c int) float32 {
				if c == 0 {
					return 0.4
				}
				return 0.6
			},
			want: func(int) float32 { return 0.5 },
		},
		{
			name:     "three channel ramp",
			channels: 3,
			wave:     func(f, c int) float32 { return float32(f + c*100) },
			want:     func(f int) float32 { return float32(f + 100) },
		},
		{
			name:     "opposite phases cancel",
			channels: 4,
			wave: func(f, c int) float32 {
				return float32(math.Sin(float64(f)/10)) * float32(1-2*(c%2))
			},
			want: func(int) float32 { return 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mixer := NewMonoMixer(audiotest.NewSource(8000, tt.channels, 50, tt.wave))
			out := drain(t, mixer, 7)
			if len(out) != 50 {
				t.Fatalf("got %d frames, want 50", len(out))
			}
			for f, v := range out {
				if math.Abs(float64(v-tt.want(f))) > 1e-5 {
					t.Errorf("frame %d = %v, want %v", f, v, tt.want(f))
				}
			}
		})
	}
}

func TestMonoMixer_EOFWithData(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.Constant(8000, 2, 10, 1))
	n, err := mixer.ReadSamples(make([]float32, 16))
	if n != 10 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v; want 10, EOF", n, err)
	}

	n, err = mixer.ReadSamples(make([]float32, 16))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, EOF", n, err)
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	n, err := NewMonoMixer(audiotest.Silence(8000, 2, 10)).ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v", n, err)
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.Silence(8000, 2, 10)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatal(err)
	}
	if !src.Closed() {
		t.Error("Close() did not reach the source")
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	src := audiotest.Sine(44100, 2, 44100, 440)
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src.Reset()
		mixer := NewMonoMixer(src)
		for {
			if _, err := mixer.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
