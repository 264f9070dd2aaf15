package tsp

import "math"

// SolveHeldKarp solves the instance exactly with the Held–Karp dynamic
// program.
//
// dp[mask][j] is the cheapest path that starts at the start vertex, visits
// exactly the vertices in mask (which always contains start) and ends at j.
// The tour closes by returning from the best j to start.
//
// Errors: ErrTooManyCities above MaxHeldKarpCities, ErrNoTour when no
// Hamiltonian cycle exists.
//
// Time complexity:  O(n²·2ⁿ)
// Memory complexity: O(n·2ⁿ)
func SolveHeldKarp(inst *Instance) (TSResult, error) {
	n := inst.n
	if n > MaxHeldKarpCities {
		return TSResult{}, ErrTooManyCities
	}
	var (
		s         = inst.start
		allMask   = 1<<uint(n) - 1
		startMask = 1 << uint(s)
		inf       = math.Inf(1)
		dp        = make([]float64, (allMask+1)*n)
		parent    = make([]int, (allMask+1)*n)
	)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}
	dp[startMask*n+s] = 0

	var mask, j, k int
	for mask = startMask; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if j == s || mask&(1<<uint(j)) == 0 {
				continue
			}
			prev := mask ^ (1 << uint(j))
			for k = 0; k < n; k++ {
				if prev&(1<<uint(k)) == 0 {
					continue
				}
				base := dp[prev*n+k]
				c := inst.at(k, j)
				if math.IsInf(base, 1) || math.IsInf(c, 1) {
					continue
				}
				if cand := base + c; cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	bestCost, last := inf, -1
	for j = 0; j < n; j++ {
		if j == s {
			continue
		}
		c := inst.at(j, s)
		if math.IsInf(c, 1) || math.IsInf(dp[allMask*n+j], 1) {
			continue
		}
		if total := dp[allMask*n+j] + c; total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 {
		return TSResult{}, ErrNoTour
	}

	tour := make([]int, n+1)
	tour[0], tour[n] = s, s
	mask, j = allMask, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask*n+j]
		mask ^= 1 << uint(j)
		j = p
	}

	return TSResult{Tour: tour, Cost: round1e9(bestCost)}, nil
}
