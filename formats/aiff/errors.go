// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

// ErrNotAiffFile indicates the input has no valid FORM/AIFF header.
var ErrNotAiffFile = errors.New("not an AIFF file")
