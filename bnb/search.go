// Package bnb - the explicit-stack search loop.
//
// Search drives a depth-first exploration with a LIFO slice:
//  1. The stack starts with the root (if the root is feasible).
//  2. Pop the most recent node.
//     - Singular: evaluate; replace the incumbent only if strictly better.
//     - Otherwise: branch, then for every child in Branch order
//     drop it if infeasible, push it if singular or bound ≥ incumbent,
//     drop it otherwise.
//  3. Stop when the stack is empty and return the incumbent.
//
// No recursion, no goroutines, no errors.
package bnb

// engine holds the per-call search state. A fresh engine is built for every
// Search call and never escapes it.
type engine[N Node[N]] struct {
	objective func(N) float64
	bound     func(N) float64
	branch    func(N) []N

	tracer  Tracer
	tracing bool

	stack []N

	best      N
	bestValue float64
	found     bool

	stats Stats
}

// Search explores the tree rooted at root using the node's own Objective,
// Bound and Branch methods.
//
// Complexity: exponential worst case; O(1) engine work per node besides
// the node's own methods.
func Search[N Node[N]](root N, opts ...Option) Result[N] {
	return SearchWith(root, Strategy[N]{}, opts...)
}

// SearchWith explores the tree rooted at root, calling s's functions where
// set and the node's methods otherwise.
func SearchWith[N Node[N]](root N, s Strategy[N], opts ...Option) Result[N] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := newEngine(s, o)
	e.run(root)

	return Result[N]{
		Best:  e.best,
		Found: e.found,
		Value: e.bestValue,
		Stats: e.stats,
	}
}

func newEngine[N Node[N]](s Strategy[N], o Options) *engine[N] {
	e := &engine[N]{
		objective: s.Objective,
		bound:     s.Bound,
		branch:    s.Branch,
		tracer:    resolveTracer(o),
		tracing:   o.Trace,
		bestValue: o.Incumbent,
	}
	if e.objective == nil {
		e.objective = func(n N) float64 { return n.Objective() }
	}
	if e.bound == nil {
		e.bound = func(n N) float64 { return n.Bound() }
	}
	if e.branch == nil {
		e.branch = func(n N) []N { return n.Branch() }
	}

	return e
}

// run is the main loop.
func (e *engine[N]) run(root N) {
	if !root.IsFeasible() {
		e.discard(root, Infeasible)
		return
	}
	e.push(root)

	var current N
	for len(e.stack) > 0 {
		current = e.pop()
		e.stats.Visited++
		if e.tracing {
			e.tracer.Visit(current.String())
		}

		if current.IsSingular() {
			e.evaluate(current)
			continue
		}
		e.expand(current)
	}
}

// evaluate compares a singular node against the incumbent. Ties keep the
// incumbent: the first optimum reached in traversal order wins.
func (e *engine[N]) evaluate(n N) {
	e.stats.Leaves++
	v := e.objective(n)
	if v > e.bestValue {
		e.best = n
		e.bestValue = v
		e.found = true
		e.stats.Improvements++
	}
}

// expand branches n and pushes the children that survive the feasibility
// and bound tests. The bound test is non-strict: a child whose bound equals
// the incumbent is still explored.
func (e *engine[N]) expand(n N) {
	e.stats.Expanded++
	for _, child := range e.branch(n) {
		if !child.IsFeasible() {
			e.discard(child, Infeasible)
			continue
		}
		if child.IsSingular() || e.bound(child) >= e.bestValue {
			e.push(child)
			continue
		}
		e.discard(child, BoundTooLow)
	}
}

func (e *engine[N]) push(n N) {
	e.stack = append(e.stack, n)
	if len(e.stack) > e.stats.MaxStack {
		e.stats.MaxStack = len(e.stack)
	}
}

func (e *engine[N]) pop() N {
	var zero N
	last := len(e.stack) - 1
	n := e.stack[last]
	e.stack[last] = zero
	e.stack = e.stack[:last]

	return n
}

func (e *engine[N]) discard(n N, reason DiscardReason) {
	switch reason {
	case Infeasible:
		e.stats.PrunedInfeasible++
	case BoundTooLow:
		e.stats.PrunedBound++
	}
	if e.tracing {
		e.tracer.Discard(n.String(), reason)
	}
}
