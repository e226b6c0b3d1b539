// SPDX-License-Identifier: MIT
// Package: multigrid
//
// errors.go: sentinel errors for generation.
//
// Error policy:
//   • A singular combination is NOT an error: it is skipped and counted in Stats.
//   • Every error below aborts generation before or during work; no partial
//     results are returned alongside a non-nil error.

package multigrid

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBasis indicates Generate was called without a basis.
	ErrNilBasis = errors.New("multigrid: basis is nil")

	// ErrBadRange indicates a negative index range, or one so large that the
	// window tuples of a combination cannot be counted in an int.
	ErrBadRange = errors.New("multigrid: index range out of bounds")

	// ErrTooManyCells indicates the run would exceed the configured cell budget.
	ErrTooManyCells = errors.New("multigrid: cell budget exceeded")
)

// generateErrorf prefixes err with the Generate stage that produced it.
func generateErrorf(stage string, err error) error {
	return fmt.Errorf("Generate.%s: %w", stage, err)
}
