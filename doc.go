// Package boundsearch is a small branch-and-bound toolkit: a generic
// depth-first engine plus two problem collaborators and the tooling to
// measure them.
//
// Packages:
//
//	bnb/       the engine: Node contract, LIFO search, incumbent, trace
//	knapsack/  0/1 knapsack nodes, Dantzig bound, greedy & exhaustive baselines
//	tsp/       tour nodes, degree-1 bound, nearest-neighbour, brute force, Held–Karp
//	matrix/    dense float64 matrix used for distance tables
//	casegen/   seeded random instances
//	casefile/  YAML case files and the built-in reference suite
//	bench/     timing harness, comparison tables, run-time histograms
//	cmd/bnbx/  CLI: bench, gen, solve
//
// The engine maximizes. Minimization problems negate their objective, which
// is what tsp does with tour length.
//
// Quick example:
//
//	inst, _ := knapsack.NewInstance(
//		knapsack.WithCapacity(10),
//		knapsack.WithItems([]knapsack.Item{{ID: 1, Weight: 6, Value: 50}, {ID: 2, Weight: 5, Value: 30}}),
//	)
//	sol, stats := knapsack.SolveBranchAndBound(inst)
//
//	go install github.com/katalvlaran/boundsearch/cmd/bnbx@latest
package boundsearch
