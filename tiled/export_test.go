// SPDX-License-Identifier: MIT

package tiled

import "github.com/katalvlaran/mtxmult/matrix"

// WithKernel replaces the per-task kernel; tests use it to count calls and to
// inject failures.
func WithKernel(k func(c, a, b *matrix.Dense) error) Option {
	return func(o *Options) { o.kernel = k }
}
