// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/utils"
)

// Resampler streams src at another sample rate using Catmull-Rom
// interpolation over interleaved frames. The channel count is preserved.
// When downsampling, frames pass through a one-pole low-pass first.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	channels int

	// window[1] and window[2] bracket the output position; window[0] and
	// window[3] are the outer spline taps. Taps past either end of the
	// stream repeat the nearest real frame.
	window [4][]float32
	live   [4]bool
	primed bool

	// The output position is window[1] plus frac/dstRate source frames.
	// Each output frame adds srcRate, so positions stay exact.
	frac   int
	srcBuf []float32
	eof    bool

	lowPass bool
	seeded  bool
	alpha   float32
	state   []float32
}

// NewResampler wraps src. dstRate must be positive.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		channels: channels,
		srcBuf:   make([]float32, channels),
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	r.lowPass = r.srcRate > r.dstRate
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// fill loads the next source frame into window[i], or repeats window[i-1]
// once the source is exhausted.
func (r *Resampler) fill(i int) error {
	r.live[i] = false
	for idle := 0; !r.eof && !r.live[i]; idle++ {
		if idle > maxIdleReads {
			return ErrNoProgress
		}

		n, err := r.src.ReadSamples(r.srcBuf)
		if n == r.channels {
			r.live[i] = true
			copy(r.window[i], r.srcBuf)
			r.filter(r.window[i])
		}

		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if !r.live[i] && i > 0 {
		copy(r.window[i], r.window[i-1])
	}

	return nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.lowPass {
		return
	}
	if !r.seeded {
		// Start from the first frame to avoid a fade-in.
		copy(r.state, frame)
		r.seeded = true
	}
	for c := range frame {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
		r.state[c] = frame[c]
	}
}

func (r *Resampler) prime() error {
	r.primed = true
	for i := 1; i < len(r.window); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}
	copy(r.window[0], r.window[1])

	return nil
}

// advance moves the window forward by one source frame.
func (r *Resampler) advance() error {
	w := r.window
	r.window = [4][]float32{w[1], w[2], w[3], w[0]}
	r.live = [4]bool{r.live[1], r.live[2], r.live[3], false}

	return r.fill(3)
}

// ReadSamples writes interleaved samples at the target rate. len(dst) must
// be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.frac >= r.dstRate && r.live[1] {
			r.frac -= r.dstRate
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// Past the last frame: nothing left to interpolate.
		if !r.live[1] || (!r.live[2] && r.frac > 0) {
			return written * r.channels, io.EOF
		}

		x := float32(float64(r.frac) / float64(r.dstRate))
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.frac += r.srcRate
	}

	return written * r.channels, nil
}

// Params configures ResampleArray.
type Params struct {
	FromRate int
	ToRate   int
	// ChunkSize is the number of samples moved per read. Zero selects 4096.
	ChunkSize int
}

func (p Params) validate() error {
	const op = "audio.ResampleArray"

	if p.FromRate <= 0 || p.ToRate <= 0 {
		return audioerr.New(audioerr.Resample, op,
			fmt.Errorf("sample rates must be positive, got %d -> %d", p.FromRate, p.ToRate))
	}
	if p.ChunkSize < 0 {
		return audioerr.New(audioerr.Resample, op, fmt.Errorf("negative chunk size %d", p.ChunkSize))
	}

	return nil
}

// ResampleArray converts a [channels, frames] array between sample rates and
// returns a new array of the same channel count. Equal rates return a copy.
func ResampleArray(a *array.Array[float32], p Params) (*array.Array[float32], error) {
	const op = "audio.ResampleArray"

	if err := p.validate(); err != nil {
		return nil, err
	}

	if p.FromRate == p.ToRate {
		if a.NDim() != 2 {
			return nil, audioerr.Specf(op, "want a [channels, frames] array, got shape %v", a.Shape())
		}

		return a.Clone(), nil
	}

	src, err := NewArraySource(a, p.FromRate)
	if err != nil {
		return nil, err
	}
	if p.ChunkSize > 0 {
		src.SetBufSize(p.ChunkSize)
	}

	out, _, err := ReadAll(NewResampler(src, p.ToRate), Limits{MaxSamples: -1})
	if err != nil {
		if audioerr.KindOf(err) != audioerr.Other {
			return nil, err
		}

		return nil, audioerr.New(audioerr.Resample, op, err)
	}

	return out, nil
}
