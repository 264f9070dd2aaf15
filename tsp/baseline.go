package tsp

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// SolveNearestNeighbor builds a tour greedily: from the last city go to the
// cheapest unvisited one (index tiebreak), then close at the start.
//
// Errors: ErrNoTour when the greedy walk reaches a dead end. A dead end does
// not prove that no tour exists.
//
// Complexity: O(n²).
func SolveNearestNeighbor(inst *Instance) (TSResult, error) {
	var (
		n       = inst.n
		tour    = make([]int, 1, n+1)
		visited = uint64(1) << uint(inst.start)
		last    = inst.start
		cost    float64
	)
	tour[0] = inst.start
	for len(tour) < n {
		next := -1
		for _, v := range inst.order[last] {
			if visited&(1<<uint(v)) == 0 {
				next = v
				break
			}
		}
		c := inst.at(last, next)
		if math.IsInf(c, 1) {
			return TSResult{}, ErrNoTour
		}
		cost += c
		visited |= 1 << uint(next)
		tour = append(tour, next)
		last = next
	}
	c := inst.at(last, inst.start)
	if math.IsInf(c, 1) {
		return TSResult{}, ErrNoTour
	}

	return TSResult{Tour: append(tour, inst.start), Cost: round1e9(cost + c)}, nil
}

// SolveBruteForce tries every ordering of the non-start cities and keeps the
// first shortest one in generation order.
//
// Errors: ErrTooManyCities above MaxBruteForceCities, ErrNoTour when every
// ordering uses a missing edge.
//
// Complexity: O(n·(n−1)!).
func SolveBruteForce(inst *Instance) (TSResult, error) {
	n := inst.n
	if n > MaxBruteForceCities {
		return TSResult{}, ErrTooManyCities
	}
	others := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != inst.start {
			others = append(others, v)
		}
	}

	var (
		k        = len(others)
		gen      = combin.NewPermutationGenerator(k, k)
		perm     = make([]int, k)
		best     []int
		bestCost = math.Inf(1)
	)
	for gen.Next() {
		gen.Permutation(perm)
		var (
			cost = 0.0
			last = inst.start
		)
		for _, p := range perm {
			cost += inst.at(last, others[p])
			last = others[p]
		}
		cost += inst.at(last, inst.start)
		if cost < bestCost {
			bestCost = cost
			best = append(best[:0], perm...)
		}
	}
	if best == nil {
		return TSResult{}, ErrNoTour
	}

	tour := make([]int, 0, n+1)
	tour = append(tour, inst.start)
	for _, p := range best {
		tour = append(tour, others[p])
	}

	return TSResult{Tour: append(tour, inst.start), Cost: round1e9(bestCost)}, nil
}
