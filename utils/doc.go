// SPDX-License-Identifier: EPL-2.0

// Package utils holds scalar helpers shared by the decoders and the
// resampler: cubic interpolation and conversion between normalized floats
// and integer PCM.
package utils
