// Package bnb defines the node contract, options and result types used by
// the branch-and-bound engine.
package bnb

import "fmt"

// Node is the capability set every concrete search-space node exposes.
// N is the concrete node type itself, so Branch returns children of the
// same type the engine is instantiated with:
//
//	type Item struct{ ... }
//	func (n *Item) Branch() []*Item { ... }
//	res := bnb.Search[*Item](root)
//
// Implementations must treat a node as immutable once it has been handed to
// the engine; children are independent snapshots of their parent plus one
// additional decision.
type Node[N any] interface {
	// IsSingular reports whether every decision variable is fixed.
	IsSingular() bool

	// IsFeasible reports whether the (possibly partial) assignment does not
	// yet violate a hard constraint. An infeasible node is never expanded.
	IsFeasible() bool

	// Branch fixes exactly one more decision and returns one child per value
	// of that decision. It must be deterministic and exhaustive. The engine
	// only calls it on feasible, non-singular nodes.
	Branch() []N

	// Bound is an admissible upper estimate of the best Objective reachable
	// from this node.
	Bound() float64

	// Objective is the final value of a singular node.
	Objective() float64

	// String is a short human-readable description used by trace output.
	fmt.Stringer
}

// Strategy overrides the node's own Objective, Bound and Branch methods.
// A nil field falls back to the corresponding method on N.
type Strategy[N Node[N]] struct {
	Objective func(N) float64
	Bound     func(N) float64
	Branch    func(N) []N
}

// DiscardReason tags why a node left the search without being expanded.
type DiscardReason int

const (
	// Infeasible marks a node whose assignment violates a hard constraint.
	Infeasible DiscardReason = iota
	// BoundTooLow marks a node whose bound is strictly below the incumbent.
	BoundTooLow
)

// String returns the trace label of the reason.
func (r DiscardReason) String() string {
	switch r {
	case Infeasible:
		return "infeasible"
	case BoundTooLow:
		return "bound too low"
	default:
		return fmt.Sprintf("DiscardReason(%d)", int(r))
	}
}

// Option configures a single Search call.
type Option func(*Options)

// Options holds the tunables of a Search call.
type Options struct {
	// Incumbent is the initial incumbent value. Only singular nodes whose
	// objective is strictly greater replace it. Default 0.
	Incumbent float64

	// Trace enables diagnostic output. It never changes the result.
	Trace bool

	// Tracer receives the trace lines when Trace is set. When nil, a
	// LogTracer on the global zerolog logger is used.
	Tracer Tracer
}

// DefaultOptions returns Options with:
//   - Incumbent 0
//   - tracing disabled
//   - no explicit Tracer
func DefaultOptions() Options {
	return Options{
		Incumbent: 0,
		Trace:     false,
		Tracer:    nil,
	}
}

// WithIncumbent sets the initial incumbent value.
func WithIncumbent(v float64) Option {
	return func(o *Options) {
		o.Incumbent = v
	}
}

// WithTrace toggles trace output.
func WithTrace(enabled bool) Option {
	return func(o *Options) {
		o.Trace = enabled
	}
}

// WithTracer installs t as the trace sink and enables tracing.
// Passing nil has no effect.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
			o.Trace = true
		}
	}
}

// Stats counts what happened during one Search call. Diagnostic only.
type Stats struct {
	Visited          int // nodes popped from the stack (root included)
	Expanded         int // calls to Branch
	Leaves           int // singular nodes evaluated
	Improvements     int // incumbent replacements
	PrunedInfeasible int // nodes discarded as infeasible
	PrunedBound      int // children discarded by the bound test
	MaxStack         int // peak stack length
}

// Result is the outcome of a Search call.
type Result[N any] struct {
	// Best is the incumbent node; meaningful only when Found is true.
	Best N

	// Found reports whether any singular node beat the initial incumbent.
	Found bool

	// Value is the incumbent value: Best.Objective() when Found, otherwise
	// the initial incumbent unchanged.
	Value float64

	Stats Stats
}
