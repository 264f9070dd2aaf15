// Package tsp - validation of distance matrices and start vertices.
//
// Checks run in stages and stop at the first failure:
//  1. Shape: non-nil, square, 2 ≤ n ≤ MaxCities.
//  2. Diagonal: finite and |a_ii| ≤ symTol.
//  3. Off-diagonal: no NaN, no negatives; +Inf is a missing edge.
//  4. Symmetry, when requested.
package tsp

import (
	"math"

	"github.com/katalvlaran/boundsearch/matrix"
)

// validateDistMatrix returns the matrix order n on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix, symmetric bool, tol float64) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr == 1 {
		return 0, ErrDimensionMismatch
	}
	if nr > MaxCities {
		return 0, ErrTooManyCities
	}
	n := nr

	var (
		i, j int
		aij  float64
		err  error
	)
	for i = 0; i < n; i++ {
		aij, err = dist.At(i, i)
		if err != nil || math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrDimensionMismatch
		}
		if math.Abs(aij) > tol {
			return 0, ErrNonZeroDiagonal
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			aij, err = dist.At(i, j)
			if err != nil || math.IsNaN(aij) {
				return 0, ErrDimensionMismatch
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	if !symmetric {
		return n, nil
	}
	ok, err := matrix.IsSymmetric(dist, tol)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrAsymmetry
	}

	return n, nil
}

// validateStartVertex verifies that start ∈ [0, n).
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}
