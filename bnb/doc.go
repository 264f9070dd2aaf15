// Package bnb implements a generic branch-and-bound search engine.
//
// What:
//
//   - Node[N]: the capability contract a search-space node must satisfy
//     (IsSingular, IsFeasible, Branch, Bound, Objective, String).
//   - Search / SearchWith: an explicit-stack, depth-first exploration that
//     keeps a single incumbent (best singular node and its value) and prunes
//     every child whose bound cannot reach the incumbent.
//   - Tracer: optional diagnostic sink receiving one line per visited node
//     and one line per discarded node, tagged with the discard reason.
//
// Conventions:
//
//   - Maximization: larger is better for Bound and Objective alike.
//     Minimization problems negate their costs.
//   - Bound must be admissible: never below the best objective reachable
//     from the node. Overestimates cost time, underestimates cost optimality.
//   - Leaf acceptance is strict (v > incumbent); the first optimum found
//     wins ties. Child pruning is non-strict: a child whose bound equals
//     the incumbent is still explored.
//   - The stack is LIFO: children are pushed in Branch order, so the LAST
//     child returned by Branch is explored first.
//
// Failure semantics:
//
//   - Search never returns an error. An infeasible root, empty branches, or
//     an initial incumbent nobody beats all yield Result.Found == false and
//     Result.Value equal to the initial incumbent.
//
// Complexity:
//
//   - Worst case exponential in the number of decisions; pruning only
//     improves the practical case.
//   - Memory: O(depth × branching factor) stack entries.
//
// Concurrency:
//
//   - A single Search call is synchronous and owns its stack and incumbent.
//     Separate calls share nothing and may run on separate goroutines as long
//     as the node implementations do not share mutable state.
package bnb
