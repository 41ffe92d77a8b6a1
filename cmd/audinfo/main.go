// SPDX-License-Identifier: EPL-2.0

// Command audinfo decodes audio files and prints their array layout, level
// and dominant frequency per channel.
//
// Usage:
//
//	audinfo [flags] file ...
//
// Examples:
//
//	audinfo speech.wav
//	audinfo -window blackman -fft 16384 music.ogg
//	audinfo -max-samples 1000000 long.mp3
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	dsptime "github.com/cwbudde/algo-dsp/stats/time"
	"github.com/ik5/audtensor"
	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/spectral"
)

// silenceFloor is the power below which a channel reads as silent, -120 dBFS.
const silenceFloor = 1e-12

func main() {
	log.SetFlags(0)
	log.SetPrefix("audinfo: ")

	maxSamples := flag.Int("max-samples", 0, "largest number of samples to decode per file (0 = library default, <0 = unlimited)")
	windowName := flag.String("window", "hann", "taper for the frequency estimate (rectangular, hann, hamming, blackman)")
	fftFrames := flag.Int("fft", 8192, "number of leading frames analysed for the dominant frequency")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: audinfo [flags] file ...\n\n")
		fmt.Fprintf(os.Stderr, "Supported formats: wav, aiff, mp3, ogg.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	win, ok := spectral.ParseWindow(*windowName)
	if !ok {
		log.Fatalf("unknown window %q", *windowName)
	}
	if *fftFrames < 2 {
		log.Fatalf("-fft must be at least 2, got %d", *fftFrames)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := describe(path, audio.Limits{MaxSamples: *maxSamples}, win, *fftFrames); err != nil {
			log.Printf("%s: %v", path, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func describe(path string, lim audio.Limits, win spectral.Window, fftFrames int) error {
	a, format, err := audtensor.LoadFile(path, lim)
	if err != nil {
		return err
	}

	channels, frames := audio.NChannels(a), audio.NFrames(a)

	fmt.Printf("%s\n", path)
	fmt.Printf("  rate:     %d Hz\n", format.SampleRate)
	fmt.Printf("  shape:    %v (%s)\n", a.Shape(), a.Kind())
	fmt.Printf("  duration: %.3f s\n", float64(frames)/float64(format.SampleRate))

	if frames == 0 {
		return nil
	}

	samples := toFloat64(a)

	levels, err := rmsDB(samples, channels, frames)
	if err != nil {
		return err
	}

	peaks, err := dominant(samples, channels, frames, fftFrames, win, format.SampleRate)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  channel\tpeak\trms dBFS\tdominant Hz")
	for c := range channels {
		row := samples[c*frames : (c+1)*frames]
		fmt.Fprintf(tw, "  %d\t%.4f\t%.2f\t%.1f\n", c, dsptime.Peak(row), levels[c], peaks[c])
	}

	return tw.Flush()
}

func toFloat64(a *array.Array[float32]) []float64 {
	values := a.Values()
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}

// rmsDB returns the mean power of every channel in dB relative to full scale.
func rmsDB(samples []float64, channels, frames int) ([]float64, error) {
	power := make([]float64, channels)
	for c := range channels {
		rms := dsptime.RMS(samples[c*frames : (c+1)*frames])
		power[c] = rms * rms
	}

	a, err := array.New(array.Shape{channels}, power)
	if err != nil {
		return nil, err
	}
	if err := audio.PowerToDB(a, 1, silenceFloor); err != nil {
		return nil, err
	}

	return a.Values(), nil
}

// dominant returns the strongest non-DC frequency of each channel over its
// leading n frames.
func dominant(samples []float64, channels, frames, n int, win spectral.Window, rate int) ([]float64, error) {
	n = min(n, frames)

	head := make([]float64, channels*n)
	for c := range channels {
		copy(head[c*n:(c+1)*n], samples[c*frames:c*frames+n])
	}

	a, err := array.New(array.Shape{channels, n}, head)
	if err != nil {
		return nil, err
	}

	s, err := spectral.Spectrum(a, spectral.Options{Window: win})
	if err != nil {
		return nil, err
	}

	mag := spectral.Magnitude(s)
	size := mag.Dim(1)
	out := make([]float64, channels)
	for c := range channels {
		best := 1
		for k := 2; k <= size/2; k++ {
			if mag.At(c, k) > mag.At(c, best) {
				best = k
			}
		}
		out[c] = spectral.BinFrequency(best, size, rate)
	}

	return out, nil
}
