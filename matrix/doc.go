// SPDX-License-Identifier: EPL-2.0

// Package matrix converts audio arrays to and from two-dimensional real
// matrices.
//
// An array of shape [channels, frames] stores each channel as one contiguous
// run. FromArray exposes that buffer as a frames x channels matrix without
// copying, so that a row-major consumer indexing (frame, channel) reads the
// right sample. Complex arrays are seen through their real components: each
// complex row becomes two real rows, so a matrix built from C complex
// channels has 2*C columns.
//
//	a, _ := array.New(array.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	m, _ := matrix.FromArray[float64](a, 2, 3) // dims (3, 2)
//	back, _ := matrix.ToArray[float64](m)     // same storage as a
//
// ToArray accepts any layout, including row-major blocks wrapped with
// NewRowMajor or gonum matrices wrapped with FromDense, and always yields
// the same [channels, frames] convention.
package matrix
