// SPDX-License-Identifier: EPL-2.0

package audtensor

import (
	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/utils"
)

// ResampleToMono16 collects src, resamples it to targetRate with cubic
// interpolation, averages the channels and returns 16 bit PCM together with
// the output rate. bufferSize is the number of samples moved per read while
// resampling; zero selects the default. The whole stream is held in memory
// and bounded by audio.DefaultMaxSamples.
//
//	src, _ := wav.Decoder{}.Decode(f)
//	pcm16, rate, err := audtensor.ResampleToMono16(src, 8000, 4096)
//	if err != nil {
//	    return err
//	}
//	err = wav.WritePCM16(out, rate, 1, pcm16)
func ResampleToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, int, error) {
	a, format, err := audio.ReadAll(src, audio.Limits{})
	if err != nil {
		return nil, targetRate, err
	}

	a, err = audio.ResampleArray(a, audio.Params{
		FromRate:  format.SampleRate,
		ToRate:    targetRate,
		ChunkSize: bufferSize,
	})
	if err != nil {
		return nil, targetRate, err
	}

	if err := audio.ToMono(a); err != nil {
		return nil, targetRate, err
	}

	samples, ok := a.AsSlice()
	if !ok {
		samples = a.Values()
	}

	return utils.Int16s(nil, samples), targetRate, nil
}
