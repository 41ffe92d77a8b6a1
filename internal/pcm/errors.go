// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrBitDepth = errors.New("unsupported bit depth")
	ErrFormat   = errors.New("missing or invalid stream format")
)
