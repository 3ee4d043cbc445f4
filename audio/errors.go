// SPDX-License-Identifier: MIT

package audio

import "errors"

// ErrInvalidDstSize indicates a destination slice that cannot hold
// whole frames.
var ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
