package bnb_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/boundsearch/bnb"
)

// SearchSuite exercises the engine on scripted trees and a toy problem.
type SearchSuite struct {
	suite.Suite
}

// TestInfeasibleRoot checks that an infeasible root is never branched.
func (s *SearchSuite) TestInfeasibleRoot() {
	t := newTree()
	root := t.infeasible(t.inner("root", 100, t.leaf("a", 5)))

	res := bnb.Search(root, bnb.WithIncumbent(3))
	require.False(s.T(), res.Found)
	require.Nil(s.T(), res.Best)
	require.Equal(s.T(), 3.0, res.Value)
	require.Zero(s.T(), t.rec["root"], "branch must not run on an infeasible root")
	require.Equal(s.T(), 1, res.Stats.PrunedInfeasible)
	require.Zero(s.T(), res.Stats.Visited)
}

// TestSingularRoot evaluates a root that is already a leaf.
func (s *SearchSuite) TestSingularRoot() {
	t := newTree()

	res := bnb.Search(t.leaf("only", 7))
	require.True(s.T(), res.Found)
	require.Equal(s.T(), "only", res.Best.name)
	require.Equal(s.T(), 7.0, res.Value)

	res = bnb.Search(t.leaf("zero", 0))
	require.False(s.T(), res.Found, "0 does not strictly beat the default incumbent 0")
	require.Equal(s.T(), 0.0, res.Value)
}

// TestTieKeepsFirstFound verifies the strict leaf comparison: with LIFO
// order the last child is evaluated first and keeps the incumbent.
func (s *SearchSuite) TestTieKeepsFirstFound() {
	t := newTree()
	root := t.inner("root", 10, t.leaf("first", 5), t.leaf("second", 5))

	res := bnb.Search(root)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), "second", res.Best.name)
	require.Equal(s.T(), 5.0, res.Value)
	require.Equal(s.T(), 1, res.Stats.Improvements)
	require.Equal(s.T(), 2, res.Stats.Leaves)
}

// TestLIFOOrder checks that the last child is explored to full depth first.
func (s *SearchSuite) TestLIFOOrder() {
	t := newTree()
	root := t.inner("root", 10,
		t.inner("left", 10, t.leaf("l1", 1)),
		t.inner("right", 10, t.leaf("r1", 1), t.leaf("r2", 1)),
	)
	rt := &recordingTracer{}

	res := bnb.Search(root, bnb.WithTracer(rt))
	require.Equal(s.T(), []string{"root", "right", "r2", "r1", "left", "l1"}, rt.visits)
	require.Equal(s.T(), "r2", res.Best.name)
}

// TestBoundEqualToIncumbentIsExplored covers the non-strict pruning test.
func (s *SearchSuite) TestBoundEqualToIncumbentIsExplored() {
	t := newTree()
	root := t.inner("root", 20, t.inner("tight", 10, t.leaf("t1", 10)))

	res := bnb.Search(root, bnb.WithIncumbent(10))
	require.Equal(s.T(), 1, t.rec["tight"], "a child whose bound equals the incumbent must be expanded")
	require.False(s.T(), res.Found, "an equal leaf does not replace the incumbent")
	require.Equal(s.T(), 10.0, res.Value)
	require.Zero(s.T(), res.Stats.PrunedBound)
}

// TestBoundBelowIncumbentIsPruned is the counterpart of the test above.
func (s *SearchSuite) TestBoundBelowIncumbentIsPruned() {
	t := newTree()
	root := t.inner("root", 20, t.inner("loose", 9.5, t.leaf("l1", 9.5)))

	res := bnb.Search(root, bnb.WithIncumbent(10))
	require.Zero(s.T(), t.rec["loose"])
	require.Equal(s.T(), 1, res.Stats.PrunedBound)
	require.False(s.T(), res.Found)
}

// TestSingularChildBypassesBound pushes leaves regardless of their bound.
func (s *SearchSuite) TestSingularChildBypassesBound() {
	t := newTree()
	lf := t.leaf("leaf", 12)
	lf.bound = -1 // deliberately inconsistent; the engine must not look at it
	root := t.inner("root", 20, lf)

	res := bnb.Search(root, bnb.WithIncumbent(10))
	require.True(s.T(), res.Found)
	require.Equal(s.T(), 12.0, res.Value)
}

// TestInfeasibleChildNeverBranched checks feasibility monotonicity.
func (s *SearchSuite) TestInfeasibleChildNeverBranched() {
	t := newTree()
	bad := t.infeasible(t.inner("bad", 100, t.leaf("hidden", 100)))
	root := t.inner("root", 100, bad, t.leaf("ok", 1))

	res := bnb.Search(root)
	require.Zero(s.T(), t.rec["bad"])
	require.Equal(s.T(), "ok", res.Best.name)
	require.Equal(s.T(), 1, res.Stats.PrunedInfeasible)
}

// TestEmptyBranch absorbs an inner node without children.
func (s *SearchSuite) TestEmptyBranch() {
	t := newTree()

	res := bnb.Search(t.inner("dead-end", 5), bnb.WithIncumbent(-1))
	require.False(s.T(), res.Found)
	require.Equal(s.T(), -1.0, res.Value)
	require.Equal(s.T(), 1, res.Stats.Expanded)
}

// TestNoImprovement keeps the initial incumbent when it beats every leaf.
func (s *SearchSuite) TestNoImprovement() {
	items := []pickItem{{2, 3}, {3, 4}, {4, 5}, {5, 6}}
	opt := bruteForcePick(items, 5)

	res := bnb.Search(newPick(items, 5), bnb.WithIncumbent(opt+1))
	require.False(s.T(), res.Found)
	require.Equal(s.T(), opt+1, res.Value)
}

// TestStrategyOverrides routes objective, bound and branch through s.
func (s *SearchSuite) TestStrategyOverrides() {
	items := []pickItem{{2, 3}, {3, 4}, {4, 5}, {5, 6}}
	var objCalls, boundCalls, branchCalls int
	strat := bnb.Strategy[*pickNode]{
		Objective: func(n *pickNode) float64 { objCalls++; return n.Objective() },
		Bound:     func(n *pickNode) float64 { boundCalls++; return n.Bound() },
		Branch:    func(n *pickNode) []*pickNode { branchCalls++; return n.Branch() },
	}

	res := bnb.SearchWith(newPick(items, 5), strat)
	require.Equal(s.T(), bruteForcePick(items, 5), res.Value)
	require.Equal(s.T(), res.Stats.Leaves, objCalls)
	require.Equal(s.T(), res.Stats.Expanded, branchCalls)
	require.Positive(s.T(), boundCalls)
}

// TestZeroBoundPrunesEverythingButLeaves shows a hostile bound in action.
func (s *SearchSuite) TestZeroBoundPrunesEverythingButLeaves() {
	items := []pickItem{{1, 1}, {1, 1}, {1, 1}}
	strat := bnb.Strategy[*pickNode]{
		Bound: func(*pickNode) float64 { return math.Inf(-1) },
	}

	res := bnb.SearchWith(newPick(items, 3), strat)
	require.Equal(s.T(), 1, res.Stats.Expanded, "only the root is expanded")
	require.Equal(s.T(), 2, res.Stats.PrunedBound)
}

// TestAdmissibleBoundIsOptimal compares against exhaustive enumeration.
func (s *SearchSuite) TestAdmissibleBoundIsOptimal() {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 40; round++ {
		items, limit := randomPick(rng, 1+rng.Intn(10))
		want := bruteForcePick(items, limit)

		res := bnb.Search(newPick(items, limit))
		require.Equal(s.T(), want, res.Value, "round %d", round)
		if want > 0 {
			require.True(s.T(), res.Found)
			require.Equal(s.T(), want, res.Best.Objective())
			require.True(s.T(), res.Best.IsFeasible())
		}
	}
}

// TestDeterminism repeats the same search and expects identical outcomes.
func (s *SearchSuite) TestDeterminism() {
	rng := rand.New(rand.NewSource(7))
	items, limit := randomPick(rng, 12)
	first := bnb.Search(newPick(items, limit))
	for i := 0; i < 5; i++ {
		again := bnb.Search(newPick(items, limit))
		require.Equal(s.T(), first.Value, again.Value)
		require.Equal(s.T(), first.Best.String(), again.Best.String())
		require.Equal(s.T(), first.Stats, again.Stats)
	}
}

// TestTraceDoesNotChangeResult runs with and without tracing.
func (s *SearchSuite) TestTraceDoesNotChangeResult() {
	rng := rand.New(rand.NewSource(3))
	items, limit := randomPick(rng, 8)
	plain := bnb.Search(newPick(items, limit))

	rt := &recordingTracer{}
	traced := bnb.Search(newPick(items, limit), bnb.WithTracer(rt))
	require.Equal(s.T(), plain.Value, traced.Value)
	require.Equal(s.T(), plain.Stats, traced.Stats)
	require.Len(s.T(), rt.visits, traced.Stats.Visited)
	require.Len(s.T(), rt.discards, traced.Stats.PrunedBound+traced.Stats.PrunedInfeasible)
}

// TestTraceReasons checks the discard tags.
func (s *SearchSuite) TestTraceReasons() {
	t := newTree()
	root := t.inner("root", 20,
		t.infeasible(t.inner("heavy", 20)),
		t.inner("weak", 1, t.leaf("w1", 1)),
	)
	rt := &recordingTracer{}

	bnb.Search(root, bnb.WithIncumbent(5), bnb.WithTracer(rt))
	require.Equal(s.T(), []string{"heavy: infeasible", "weak: bound too low"}, rt.discards)
}

// TestLogTracer writes zerolog lines carrying the reason.
func (s *SearchSuite) TestLogTracer() {
	t := newTree()
	root := t.inner("root", 20,
		t.infeasible(t.leaf("heavy", 20)),
		t.inner("weak", 1, t.leaf("w1", 1)),
	)
	var buf bytes.Buffer

	bnb.Search(root, bnb.WithIncumbent(5), bnb.WithTracer(bnb.NewLogTracer(&buf)))
	out := buf.String()
	require.Contains(s.T(), out, `"node":"root"`)
	require.Contains(s.T(), out, `"reason":"infeasible"`)
	require.Contains(s.T(), out, `"reason":"bound too low"`)
}

// TestTraceDisabledIsSilent keeps the tracer unused when Trace is off.
func (s *SearchSuite) TestTraceDisabledIsSilent() {
	rt := &recordingTracer{}
	items := []pickItem{{1, 2}, {2, 3}}

	bnb.Search(newPick(items, 2), bnb.WithTracer(rt), bnb.WithTrace(false))
	require.Empty(s.T(), rt.visits)
	require.Empty(s.T(), rt.discards)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func TestDiscardReasonString(t *testing.T) {
	require.Equal(t, "infeasible", bnb.Infeasible.String())
	require.Equal(t, "bound too low", bnb.BoundTooLow.String())
	require.Equal(t, "DiscardReason(9)", bnb.DiscardReason(9).String())
}
