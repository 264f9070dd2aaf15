// Package knapsack - solver dispatcher and baselines.
//
// Solve routes to BranchAndBound, Greedy or Exhaustive. The two baselines
// exist to measure the engine against: Greedy is fast and often
// sub-optimal, Exhaustive is exact and exponential.
package knapsack

import (
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/boundsearch/bnb"
)

// Solve runs algo on inst. bnb options only affect BranchAndBound.
func Solve(inst *Instance, algo Algo, opts ...bnb.Option) (Solution, error) {
	switch algo {
	case BranchAndBound:
		sol, _ := SolveBranchAndBound(inst, opts...)
		return sol, nil
	case Greedy:
		return SolveGreedy(inst), nil
	case Exhaustive:
		return SolveExhaustive(inst)
	default:
		return Solution{}, ErrUnsupportedAlgorithm
	}
}

// SolveBranchAndBound runs the engine from inst.Root(). When the engine
// finds no selection better than the initial incumbent (0 by default) the
// empty selection is returned with the incumbent value.
func SolveBranchAndBound(inst *Instance, opts ...bnb.Option) (Solution, bnb.Stats) {
	res := bnb.Search(inst.Root(), opts...)
	if !res.Found {
		return Solution{Value: res.Value}, res.Stats
	}

	return inst.solution(res.Best.Selected()), res.Stats
}

// SolveGreedy takes items in ratio order, skipping any that no longer fit.
//
// Complexity: O(n).
func SolveGreedy(inst *Instance) Solution {
	var (
		weight float64
		ids    []int
	)
	for _, it := range inst.items {
		if weight+it.Weight <= inst.capacity+feasTol {
			weight += it.Weight
			ids = append(ids, it.ID)
		}
	}

	return inst.solution(ids)
}

// SolveExhaustive tries every subset and keeps the first best one in mask
// order over items sorted by ID.
//
// Complexity: O(n·2ⁿ).
func SolveExhaustive(inst *Instance) (Solution, error) {
	n := len(inst.items)
	if n > MaxExhaustiveItems {
		return Solution{}, ErrTooManyItems
	}
	byID := inst.Items()
	sort.Slice(byID, func(i, j int) bool { return byID[i].ID < byID[j].ID })

	var (
		bestMask  uint64
		bestValue float64
		mask      uint64
		j         int
	)
	for mask = 0; mask < 1<<uint(n); mask++ {
		var w, v float64
		for j = 0; j < n; j++ {
			if mask>>uint(j)&1 == 1 {
				w += byID[j].Weight
				v += byID[j].Value
				if w > inst.capacity+feasTol {
					break
				}
			}
		}
		if w <= inst.capacity+feasTol && v > bestValue {
			bestValue = v
			bestMask = mask
		}
	}

	var ids []int
	for j = 0; j < n; j++ {
		if bestMask>>uint(j)&1 == 1 {
			ids = append(ids, byID[j].ID)
		}
	}

	return inst.solution(ids), nil
}

// solution totals the given IDs.
func (inst *Instance) solution(ids []int) Solution {
	items := lo.FilterMap(ids, func(id int, _ int) (Item, bool) {
		return inst.Item(id)
	})
	sort.Ints(ids)

	return Solution{
		Items:  ids,
		Value:  lo.SumBy(items, func(it Item) float64 { return it.Value }),
		Weight: lo.SumBy(items, func(it Item) float64 { return it.Weight }),
	}
}
