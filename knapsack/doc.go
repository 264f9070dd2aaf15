// Package knapsack plugs the 0/1 knapsack problem into the bnb engine.
//
// It includes three solvers over an immutable *Instance:
//
//   - BranchAndBound: bnb.Search over *Node with a fractional (Dantzig)
//     upper bound. Exact.
//
//   - Greedy: value/weight ratio fill that skips items that no longer fit.
//     O(n) after the instance's O(n log n) sort.
//
//   - Exhaustive: bitmask enumeration of all 2ⁿ subsets.
//     O(n·2ⁿ); refused above MaxExhaustiveItems.
//
// Instances are built with NewInstance and functional options. Leaving out
// WithItems yields ErrNoItems; leaving out WithCapacity yields ErrNoCapacity.
// An explicitly empty item set and a zero capacity are valid.
//
// Nodes are persistent: a child stores its parent pointer and one decision,
// so branching is O(1) and never copies the partial assignment.
package knapsack
