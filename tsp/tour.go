package tsp

import (
	"math"

	"github.com/katalvlaran/boundsearch/matrix"
)

// ValidateTour checks that tour is a closed Hamiltonian cycle over n cities
// anchored at start: len(tour) == n+1, tour[0] == tour[n] == start, and every
// city in [0, n) appears exactly once in tour[0:n].
//
// Complexity: O(n).
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if err := validateStartVertex(n, start); err != nil {
		return err
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums the edges of tour (consecutive pairs) over dist. The result
// is rounded to 1e-9.
//
// Errors: ErrNonSquare, ErrDimensionMismatch for out-of-range cities or NaN,
// ErrIncompleteGraph for a missing edge, ErrNegativeWeight.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return 0, ErrNonSquare
	}

	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w, err := dist.At(u, v)
		switch {
		case err != nil, math.IsNaN(w):
			return 0, ErrDimensionMismatch
		case math.IsInf(w, 0):
			return 0, ErrIncompleteGraph
		case w < 0:
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 rounds x to 1e-9 absolute precision so costs compare stably
// across solvers that sum edges in different orders.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
