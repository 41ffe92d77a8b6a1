// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"math/cmplx"

	"github.com/ik5/audtensor/array"
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/numeric"
)

// NChannels returns the size of the channel axis (axis 0).
// The array must have at least one axis.
func NChannels[T numeric.Element](a *array.Array[T]) int { return a.Dim(0) }

// NFrames returns the size of the frame axis (axis 1).
// The array must have at least two axes.
func NFrames[T numeric.Element](a *array.Array[T]) int { return a.Dim(1) }

// DBToPower converts every element in place with x -> reference * 10^(x/10).
// Complex elements use complex exponentiation.
func DBToPower[T numeric.Element](a *array.Array[T], reference float64) {
	if a.Kind().IsComplex() {
		ref := complex(reference, 0)
		a.Apply(func(x T) T {
			return numeric.FromComplex[T](ref * cmplx.Pow(10, numeric.ToComplex(x)*0.1))
		})

		return
	}

	a.Apply(func(x T) T {
		return numeric.FromFloat[T](reference * math.Pow(10, real(numeric.ToComplex(x))*0.1))
	})
}

// PowerToDB converts power values in place to decibels relative to
// reference: 10*log10(max(x, amin)) - 10*log10(max(reference, amin)).
// It only accepts real arrays, and amin and reference must be positive.
func PowerToDB[T numeric.Element](a *array.Array[T], reference, amin float64) error {
	const op = "audio.PowerToDB"

	if a.Kind().IsComplex() {
		return audioerr.Specf(op, "power of %s elements is not defined", a.Kind())
	}
	if !(amin > 0) || !(reference > 0) {
		return audioerr.Specf(op, "reference %v and amin %v must be positive", reference, amin)
	}

	offset := 10 * math.Log10(max(reference, amin))
	a.Apply(func(x T) T {
		return numeric.FromFloat[T](10*math.Log10(max(real(numeric.ToComplex(x)), amin)) - offset)
	})

	return nil
}

// ToMono replaces a with the mean over its channel axis, dropping that axis:
// a [channels, frames] array becomes a [frames] array. The means go into
// fresh storage and every handle sharing a's layout sees the new shape and
// values together. It fails when a has no axes or its channel axis is empty.
func ToMono[T numeric.Element](a *array.Array[T]) error {
	const op = "audio.ToMono"

	if a.NDim() == 0 {
		return audioerr.Specf(op, "array of rank 0 has no channel axis")
	}

	channels := a.Dim(0)
	if channels == 0 {
		return audioerr.Specf(op, "mean over an empty channel axis")
	}

	rest := a.Shape()[1:]
	n := rest.NumElements()

	buf, ok := a.AsSlice()
	if !ok {
		buf = a.Values()
	}

	out := make([]T, n)
	for c := range channels {
		row := buf[c*n : (c+1)*n]
		for i := range out {
			out[i] += row[i]
		}
	}

	div := numeric.FromFloat[T](float64(channels))
	for i := range out {
		out[i] /= div
	}

	return a.Assign(rest, out)
}
