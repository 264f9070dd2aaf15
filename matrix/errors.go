// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Callers match with errors.Is;
// methods that add context wrap with %w so the sentinel stays reachable.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrRagged indicates that a [][]float64 input has rows of different lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNilMatrix indicates that a nil Matrix was passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
