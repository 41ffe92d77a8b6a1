// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var ErrBadHeader = errors.New("vorbis: identification header has no channels or sample rate")
