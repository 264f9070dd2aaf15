// Package tsp - exact search through the bnb engine.
//
// The engine maximizes, so tour lengths travel through it negated and the
// default incumbent is −Inf: any closed tour beats it. Callers holding a
// known tour of length L can pass bnb.WithIncumbent(−L) to prune harder;
// the search then only reports strictly shorter tours.
package tsp

import (
	"math"

	"github.com/katalvlaran/boundsearch/bnb"
)

// SolveBranchAndBound runs the engine from inst.Root().
//
// Errors: ErrNoTour when no tour beats the incumbent, which with the default
// incumbent means no Hamiltonian cycle exists.
func SolveBranchAndBound(inst *Instance, opts ...bnb.Option) (TSResult, bnb.Stats, error) {
	opts = append([]bnb.Option{bnb.WithIncumbent(math.Inf(-1))}, opts...)
	res := bnb.Search(inst.Root(), opts...)
	if !res.Found {
		return TSResult{}, res.Stats, ErrNoTour
	}

	return TSResult{Tour: res.Best.Tour(), Cost: round1e9(-res.Value)}, res.Stats, nil
}
