// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrConfig reports an unreadable or malformed configuration file.
	ErrConfig = errors.New("bench: invalid configuration")

	// ErrResultMismatch reports that the tiled result differs from the
	// single-threaded one, which would make the timing comparison meaningless.
	ErrResultMismatch = errors.New("bench: tiled result differs from single-threaded result")
)
