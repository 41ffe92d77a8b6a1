// SPDX-License-Identifier: EPL-2.0

// Command resample converts an audio file to mono PCM at a new sample rate.
//
// Usage:
//
//	resample [flags] <input> <output>
//
// The output is WAV unless its extension is .aif or .aiff. An output of "-"
// streams 16 bit WAV to standard output.
//
// Examples:
//
//	resample call.mp3 call.wav
//	resample -rate 16000 -bits 24 music.ogg music.aiff
//	resample -rate 8000 voice.wav - | aplay
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audtensor"
	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/formats/aiff"
	"github.com/ik5/audtensor/formats/wav"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("resample: ")

	rate := flag.Int("rate", 8000, "output sample rate in Hz")
	bits := flag.Int("bits", 16, "output bit depth (8, 16, 24 or 32)")
	chunk := flag.Int("chunk", 4096, "samples moved per read while resampling")
	maxSamples := flag.Int("max-samples", 0, "largest number of input samples to decode (0 = library default, <0 = unlimited)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: resample [flags] <input> <output>\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	in, out := flag.Arg(0), flag.Arg(1)

	if out == "-" {
		if *bits != 16 {
			log.Fatalf("standard output only carries 16 bit WAV, got -bits %d", *bits)
		}
		if err := stream(in, *rate, *chunk, os.Stdout); err != nil {
			log.Fatal(err)
		}

		return
	}

	a, err := convert(in, *rate, *chunk, audio.Limits{MaxSamples: *maxSamples})
	if err != nil {
		log.Fatal(err)
	}
	if err := write(out, a, *rate, *bits); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %s: %d frames at %d Hz", out, audio.NFrames(a), *rate)
}

// stream runs the 16 bit path, which needs no seekable output.
func stream(in string, rate, chunk int, w io.Writer) error {
	dec, ok := audtensor.DefaultRegistry().ForPath(in)
	if !ok {
		return fmt.Errorf("%s: %w", in, audtensor.ErrUnknownFormat)
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	defer src.Close()

	pcm16, rate, err := audtensor.ResampleToMono16(src, rate, chunk)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	return wav.WritePCM16(w, rate, 1, pcm16)
}

// convert loads in and returns a [1, frames] array at rate.
func convert(in string, rate, chunk int, lim audio.Limits) (*array.Array[float32], error) {
	a, format, err := audtensor.LoadFile(in, lim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}

	a, err = audio.ResampleArray(a, audio.Params{FromRate: format.SampleRate, ToRate: rate, ChunkSize: chunk})
	if err != nil {
		return nil, err
	}
	if err := audio.ToMono(a); err != nil {
		return nil, err
	}

	return a.Reshape(array.Shape{1, a.Dim(0)})
}

func write(path string, a *array.Array[float32], rate, bits int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", ".aiff":
		err = aiff.WriteArray(f, a, rate, bits)
	default:
		err = wav.WriteArray(f, a, rate, bits)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}
