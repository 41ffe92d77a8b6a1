// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var ErrNoSampleRate = errors.New("mp3: stream has no sample rate")
