// SPDX-License-Identifier: MIT

package tiled

import "errors"

var (
	// ErrInvalidParameters reports a request rejected before any work starts:
	// n below MinDimension, a tile size that is non-positive or does not
	// divide n, non-square or mismatched operands, or an unknown mode name.
	ErrInvalidParameters = errors.New("tiled: invalid parameters")

	// ErrWorkerFailed wraps the first error (or recovered panic) raised by a
	// worker task. The whole multiplication fails; no partial result is
	// returned.
	ErrWorkerFailed = errors.New("tiled: worker failed")
)
