// SPDX-License-Identifier: EPL-2.0

package array

import (
	"github.com/ik5/audtensor/audioerr"
	"github.com/ik5/audtensor/numeric"
)

// Dim is a rank known at compile time.
type Dim interface {
	Rank() int
}

type (
	Ix0 struct{}
	Ix1 struct{}
	Ix2 struct{}
	Ix3 struct{}
	Ix4 struct{}
)

func (Ix0) Rank() int { return 0 }
func (Ix1) Rank() int { return 1 }
func (Ix2) Rank() int { return 2 }
func (Ix3) Rank() int { return 3 }
func (Ix4) Rank() int { return 4 }

// Fixed is an Array whose rank is pinned by D.
type Fixed[D Dim, T numeric.Element] struct {
	arr *Array[T]
}

// IntoFixed reinterprets a as an array of rank D. It fails when a has a
// different rank. The result shares a's storage and layout, so an Assign
// through a later rebinds it too, possibly to another rank; call IntoFixed
// again on IntoDyn to re-pin it.
func IntoFixed[D Dim, T numeric.Element](a *Array[T]) (*Fixed[D, T], error) {
	var d D
	if a.NDim() != d.Rank() {
		return nil, audioerr.Specf("array.IntoFixed",
			"rank mismatch: array has rank %d, want %d", a.NDim(), d.Rank())
	}

	return &Fixed[D, T]{arr: a.Share()}, nil
}

func Into1[T numeric.Element](a *Array[T]) (*Fixed[Ix1, T], error) { return IntoFixed[Ix1](a) }
func Into2[T numeric.Element](a *Array[T]) (*Fixed[Ix2, T], error) { return IntoFixed[Ix2](a) }
func Into3[T numeric.Element](a *Array[T]) (*Fixed[Ix3, T], error) { return IntoFixed[Ix3](a) }

// IntoDyn erases the static rank. It never fails and never copies.
func (f *Fixed[D, T]) IntoDyn() *Array[T] { return f.arr.Share() }

func (f *Fixed[D, T]) Rank() int {
	var d D
	return d.Rank()
}

func (f *Fixed[D, T]) Shape() Shape        { return f.arr.Shape() }
func (f *Fixed[D, T]) Len() int            { return f.arr.Len() }
func (f *Fixed[D, T]) At(idx ...int) T     { return f.arr.At(idx...) }
func (f *Fixed[D, T]) Set(v T, idx ...int) { f.arr.Set(v, idx...) }
