// Package tsp - unified dispatcher for TSP solvers.
//
// SolveWithMatrix validates a distance matrix and routes to Solve; Solve
// routes an already validated Instance to the requested algorithm. Returned
// costs are rounded to 1e-9 so exact solvers agree bit for bit on integer
// matrices.
package tsp

import (
	"github.com/katalvlaran/boundsearch/bnb"
	"github.com/katalvlaran/boundsearch/matrix"
)

// Solve runs algo on inst. bnb options only affect BranchAndBound.
func Solve(inst *Instance, algo Algo, opts ...bnb.Option) (TSResult, error) {
	switch algo {
	case BranchAndBound:
		res, _, err := SolveBranchAndBound(inst, opts...)
		return res, err
	case NearestNeighbor:
		return SolveNearestNeighbor(inst)
	case BruteForce:
		return SolveBruteForce(inst)
	case HeldKarp:
		return SolveHeldKarp(inst)
	default:
		return TSResult{}, ErrUnsupportedAlgorithm
	}
}

// SolveWithMatrix builds an Instance from dist and opts, then dispatches.
//
// Complexity: validation O(n² log n); the rest per algorithm.
func SolveWithMatrix(dist matrix.Matrix, opts Options, algo Algo, bopts ...bnb.Option) (TSResult, error) {
	inst, err := NewInstance(dist, opts)
	if err != nil {
		return TSResult{}, err
	}

	return Solve(inst, algo, bopts...)
}
