// SPDX-License-Identifier: EPL-2.0

package audtensor

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/formats/aiff"
	"github.com/ik5/audtensor/formats/wav"
	"github.com/ik5/audtensor/internal/audiotest"
)

// pcmStep is one 16 bit quantization step, doubled for rounding slack.
const pcmStep = 2.0 / 32768

func fixture(t *testing.T) *array.Array[float32] {
	t.Helper()

	a, _, err := audio.ReadAll(audiotest.Sine(16000, 2, 320, 440), audio.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	a.Apply(func(x float32) float32 { return x * 0.5 })

	return a
}

func writeFixture(t *testing.T, name string, write func(io.WriteSeeker) error) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}

	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	want := fixture(t)

	tests := []struct {
		name  string
		write func(io.WriteSeeker) error
	}{
		{"clip.wav", func(w io.WriteSeeker) error { return wav.WriteArray(w, want, 16000, 16) }},
		{"clip.WAVE", func(w io.WriteSeeker) error { return wav.WriteArray(w, want, 16000, 24) }},
		{"clip.aiff", func(w io.WriteSeeker) error { return aiff.WriteArray(w, want, 16000, 16) }},
		{"clip.aif", func(w io.WriteSeeker) error { return aiff.WriteArray(w, want, 16000, 24) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFixture(t, tt.name, tt.write)
			got, format, err := LoadFile(path, audio.Limits{})
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if format != (audio.Format{SampleRate: 16000, Channels: 2}) {
				t.Errorf("format = %+v", format)
			}
			audiotest.AssertApprox(t, got, want, pcmStep)
		})
	}
}

func TestLoad_FromMemory(t *testing.T) {
	t.Parallel()

	want := fixture(t)
	path := writeFixture(t, "clip.bin", func(w io.WriteSeeker) error {
		return aiff.WriteArray(w, want, 16000, 16)
	})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	got, _, err := Load(bytes.NewReader(data), "AIFF", audio.Limits{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	audiotest.AssertApprox(t, got, want, pcmStep)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "clip.wav", func(w io.WriteSeeker) error {
		return wav.WriteArray(w, fixture(t), 16000, 16)
	})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()

	tests := []struct {
		name  string
		run   func() error
		wants []error
	}{
		{
			name: "unknown format",
			run: func() error {
				_, _, err := Load(bytes.NewReader(data), "flac", audio.Limits{})
				return err
			},
			wants: []error{ErrUnknownFormat, audioerr.ErrDecode},
		},
		{
			name: "unknown extension",
			run: func() error {
				_, _, err := LoadFile(filepath.Join(dir, "clip.txt"), audio.Limits{})
				return err
			},
			wants: []error{ErrUnknownFormat},
		},
		{
			name: "missing file",
			run: func() error {
				_, _, err := LoadFile(filepath.Join(dir, "missing.wav"), audio.Limits{})
				return err
			},
			wants: []error{audioerr.ErrIO, fs.ErrNotExist},
		},
		{
			name: "over the sample limit",
			run: func() error {
				_, _, err := Load(bytes.NewReader(data), "wav", audio.Limits{MaxSamples: 100})
				return err
			},
			wants: []error{audioerr.ErrResourceLimit},
		},
		{
			name: "wrong decoder",
			run: func() error {
				_, _, err := Load(bytes.NewReader(data), "aiff", audio.Limits{})
				return err
			},
			wants: []error{audioerr.ErrDecode},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.run()
			for _, want := range tt.wants {
				if !errors.Is(err, want) {
					t.Errorf("error = %v, want %v", err, want)
				}
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	got := DefaultRegistry().Formats()
	want := []string{"aif", "aiff", "mp3", "oga", "ogg", "wav", "wave"}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}

	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() is not shared")
	}
	if NewRegistry() == DefaultRegistry() {
		t.Error("NewRegistry() returned the shared registry")
	}
}
