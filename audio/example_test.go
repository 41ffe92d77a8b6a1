// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/internal/audiotest"
)

func ExampleToMono() {
	a, _ := array.New(array.Shape{3, 4}, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})

	if err := audio.ToMono(a); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(a.Shape(), a.Values())
	// Output:
	// [4] [5 6 7 8]
}

func ExampleDBToPower() {
	a, _ := array.New(array.Shape{1, 3}, []float64{0, 1, 10})
	audio.DBToPower(a, 1.0)

	fmt.Printf("%.6f\n", a.Values())
	// Output:
	// [1.000000 1.258925 10.000000]
}

func ExampleFromInterleaved() {
	// Three stereo frames as a decoder delivers them.
	a, _ := audio.FromInterleaved([]float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}, 2)

	fmt.Println(a.Shape())
	fmt.Println(a.At(1, 2))
	// Output:
	// [2 3]
	// -0.3
}

func ExampleReadAll() {
	src := audiotest.Sine(16000, 2, 16000, 440)

	a, f, err := audio.ReadAll(src, audio.Limits{})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %d channels, %d frames\n", f.SampleRate, audio.NChannels(a), audio.NFrames(a))
	// Output:
	// 16000 Hz, 2 channels, 16000 frames
}

func ExampleReadAll_limit() {
	src := audiotest.Silence(44100, 2, 44100)

	_, _, err := audio.ReadAll(src, audio.Limits{MaxSamples: 1000})
	fmt.Println(errors.Is(err, audioerr.ErrResourceLimit))
	// Output:
	// true
}

func ExampleResampleArray() {
	a, _ := array.Zeros[float32](array.Shape{2, 48000})

	out, err := audio.ResampleArray(a, audio.Params{FromRate: 48000, ToRate: 16000})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out.Shape())
	// Output:
	// [2 16000]
}

// Streaming resampling keeps memory bounded for long inputs.
func Example_processingChain() {
	source := audiotest.Sine(44100, 2, 44100, 440)
	mono := audio.NewMonoMixer(audio.NewResampler(source, 8000))

	buf := make([]float32, 4096)
	total := 0
	for {
		n, err := mono.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	fmt.Printf("%d Hz, %d channel, %d samples\n", mono.SampleRate(), mono.Channels(), total)
	// Output:
	// 8000 Hz, 1 channel, 8000 samples
}

type sineDecoder struct{}

func (sineDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.Sine(16000, 1, 1000, 440), nil
}

func ExampleRegistry_ForPath() {
	registry := audio.NewRegistry()
	registry.Register("sine", sineDecoder{})

	decoder, ok := registry.ForPath("tones/a440.SINE")
	if !ok {
		fmt.Println("no decoder")
		return
	}

	src, _ := decoder.Decode(nil)
	fmt.Println(src.SampleRate(), src.Channels())
	// Output:
	// 16000 1
}
