// SPDX-License-Identifier: EPL-2.0

// Package array provides a shape-aware numeric array for audio buffers.
//
// An Array holds float32, float64, complex64 or complex128 elements in a
// shared backing slice plus a shape and strides. Audio buffers use axis 0
// for channels and axis 1 for frames, so each channel is one contiguous run
// of samples:
//
//	a, err := array.New(array.Shape{2, 4}, []float32{
//	    0.1, 0.2, 0.3, 0.4, // left
//	    0.5, 0.6, 0.7, 0.8, // right
//	})
//
// # Rank
//
// Arrays have a dynamic rank. IntoFixed pins a rank at the type level and
// fails when the ranks differ; IntoDyn erases it again. Neither copies.
//
// # Comparison
//
// Approx compares two arrays element by element within DefaultTolerance,
// which absorbs the rounding noise of resampling and mixing.
package array
