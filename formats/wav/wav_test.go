// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/internal/audiotest"
)

// writeFile encodes a into a temporary WAV file and returns its path.
func writeFile(t *testing.T, a *array.Array[float32], rate, bits int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := WriteArray(f, a, rate, bits); err != nil {
		t.Fatalf("WriteArray() error = %v", err)
	}

	return path
}

func decodeFile(t *testing.T, path string) (*array.Array[float32], audio.Format) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	a, format, err := audio.ReadAll(src, audio.Limits{})
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	return a, format
}

func sine(t *testing.T, channels, frames int) *array.Array[float32] {
	t.Helper()

	a, _, err := audio.ReadAll(audiotest.Sine(8000, channels, frames, 440), audio.Limits{})
	if err != nil {
		t.Fatal(err)
	}

	return a
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		bits     int
		tol      float64
	}{
		{"mono 16 bit", 1, 16, 1e-4},
		{"stereo 16 bit", 2, 16, 1e-4},
		{"stereo 24 bit", 2, 24, 1e-6},
		{"5 channel 32 bit", 5, 32, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := sine(t, tt.channels, 1000)
			got, format := decodeFile(t, writeFile(t, want, 8000, tt.bits))

			if format.SampleRate != 8000 || format.Channels != tt.channels {
				t.Errorf("Format = %+v", format)
			}
			audiotest.AssertApprox(t, got, want, tt.tol)
		})
	}
}

func TestDecode_NonSeekable(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(writeFile(t, sine(t, 2, 100), 8000, 16))
	if err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	_, err = Decoder{MaxBytes: int64(len(data) - 1)}.Decode(io.MultiReader(bytes.NewReader(data)))
	if !errors.Is(err, audioerr.ErrResourceLimit) {
		t.Errorf("Decode() over MaxBytes error = %v, want resource limit", err)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"not riff", []byte("this is not a wav file at all, just some text padding it out")},
		{"truncated header", []byte("RIFF\x10\x00\x00\x00WAVE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.input))
			if !errors.Is(err, audioerr.ErrDecode) {
				t.Errorf("Decode() error = %v, want decode error", err)
			}
		})
	}
}

func TestWriteArray_Errors(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	flat := audiotest.Array[float32](t, array.Shape{3}, 0, 0, 0)
	ok := audiotest.Channels(t, []float32{0, 0})

	if err := WriteArray(f, flat, 8000, 16); !errors.Is(err, audioerr.ErrSpecification) {
		t.Errorf("rank 1 error = %v", err)
	}
	if err := WriteArray(f, ok, 0, 16); !errors.Is(err, audioerr.ErrSpecification) {
		t.Errorf("zero rate error = %v", err)
	}
	if err := WriteArray(f, ok, 8000, 20); !errors.Is(err, audioerr.ErrSpecification) {
		t.Errorf("20 bit error = %v", err)
	}
}

func TestWritePCM16_DecodesBack(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, math.MaxInt16, math.MinInt16, 100}
	var buf bytes.Buffer
	if err := WritePCM16(&buf, 16000, 2, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}
	if buf.Len() != 44+2*len(samples) {
		t.Errorf("wrote %d bytes, want %d", buf.Len(), 44+2*len(samples))
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	a, format, err := audio.ReadAll(src, audio.Limits{})
	if err != nil {
		t.Fatal(err)
	}

	if format.SampleRate != 16000 || format.Channels != 2 {
		t.Errorf("Format = %+v", format)
	}
	got, _ := audio.Interleave(a)
	for i, s := range samples {
		if want := float32(s) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestWritePCM16_Errors(t *testing.T) {
	t.Parallel()

	if err := WritePCM16(io.Discard, 8000, 2, []int16{1, 2, 3}); !errors.Is(err, audioerr.ErrSpecification) {
		t.Errorf("ragged error = %v", err)
	}
	if err := WritePCM16(io.Discard, 0, 1, nil); !errors.Is(err, audioerr.ErrSpecification) {
		t.Errorf("zero rate error = %v", err)
	}
	if err := WritePCM16(failingWriter{}, 8000, 1, []int16{1}); !errors.Is(err, audioerr.ErrIO) {
		t.Errorf("write failure error = %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func BenchmarkDecode(b *testing.B) {
	samples := make([]int16, 2*8000)
	var buf bytes.Buffer
	_ = WritePCM16(&buf, 8000, 2, samples)
	data := buf.Bytes()

	b.ReportAllocs()
	for b.Loop() {
		src, _ := Decoder{}.Decode(bytes.NewReader(data))
		_, _, _ = audio.ReadAll(src, audio.Limits{})
	}
}
