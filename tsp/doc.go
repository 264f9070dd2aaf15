// Package tsp plugs the Travelling Salesman Problem into the bnb engine.
//
// An Instance is built once from a distance matrix and is immutable
// afterwards; every Node holds a pointer to it. Distances follow the
// matrix package conventions:
//
//   - dist.At(i, j) is the cost of the directed edge i→j.
//   - math.Inf(1) marks a missing edge.
//   - The diagonal must be zero; NaN and negative weights are rejected.
//
// The engine maximizes, so a Node reports the negated tour length as its
// objective and the negated degree-1 relaxation as its bound:
//
//	LB = cost(path) + max( Σ minOut[v] over v with open out-edge,
//	                       Σ minIn[v]  over v with open in-edge )
//
// Every Hamiltonian cycle gives each vertex out-degree and in-degree one, so
// LB never exceeds the length of any completion and −LB is admissible.
//
// Solvers:
//
//   - SolveBranchAndBound: the bnb engine over Node. Exact.
//   - SolveHeldKarp: dynamic programming, O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//   - SolveBruteForce: every permutation of the non-start cities.
//   - SolveNearestNeighbor: greedy baseline, not optimal.
//
// Both symmetric TSP and asymmetric ATSP matrices are accepted; symmetry is
// only enforced when Options.Symmetric is set.
package tsp
