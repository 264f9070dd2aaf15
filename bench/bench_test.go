package bench_test

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boundsearch/bench"
	"github.com/katalvlaran/boundsearch/casefile"
	"github.com/katalvlaran/boundsearch/knapsack"
	"github.com/katalvlaran/boundsearch/tsp"
)

func testRunner() bench.Runner {
	r := bench.DefaultRunner()
	r.Repeat = 2
	r.Parallel = 2

	return r
}

func inf() float64 { return math.Inf(1) }

func TestRunKnapsack_Builtin(t *testing.T) {
	cases := casefile.Builtin().Knapsack[:3]
	reports, err := testRunner().RunKnapsack(context.Background(), cases)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for i, rep := range reports {
		assert.Equal(t, cases[i].Name, rep.Name, "reports keep input order")
		assert.Equal(t, bench.KindKnapsack, rep.Kind)
		require.Len(t, rep.Rows, 3)

		bb, ok := rep.Row(knapsack.BranchAndBound.String())
		require.True(t, ok)
		ex, ok := rep.Row(knapsack.Exhaustive.String())
		require.True(t, ok)
		gr, ok := rep.Row(knapsack.Greedy.String())
		require.True(t, ok)

		assert.InDelta(t, ex.Value, bb.Value, 1e-9, rep.Name)
		assert.LessOrEqual(t, gr.Value, bb.Value+1e-9)
		require.NotNil(t, bb.Stats)
		assert.Positive(t, bb.Stats.Visited)
		assert.Nil(t, gr.Stats)
		assert.Len(t, bb.Times, 2)

		var top float64
		for _, row := range rep.Rows {
			assert.LessOrEqual(t, row.PercentOfSlowest, 100.0+1e-9)
			top = max(top, row.PercentOfSlowest)
		}
		assert.InDelta(t, 100.0, top, 1e-9, "the slowest solver is the reference")
	}

	gr, _ := reports[0].Row(knapsack.Greedy.String())
	assert.Equal(t, 50.0, gr.Value)
	assert.Equal(t, "[1]", gr.Solution)
}

func TestRunKnapsack_SkipsExhaustive(t *testing.T) {
	r := testRunner()
	r.MaxExhaustiveItems = 4
	reports, err := r.RunKnapsack(context.Background(), casefile.Builtin().Knapsack[:2])
	require.NoError(t, err)

	ex, _ := reports[0].Row(knapsack.Exhaustive.String())
	assert.False(t, ex.Skipped, "3 items fit the limit")
	ex, _ = reports[1].Row(knapsack.Exhaustive.String())
	assert.True(t, ex.Skipped)
	assert.Empty(t, ex.Times)
	assert.Zero(t, ex.PercentOfSlowest)
}

func TestRunTSP_Builtin(t *testing.T) {
	cases := casefile.Builtin().TSP[:2]
	reports, err := testRunner().RunTSP(context.Background(), cases)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	want := []float64{76, 149}
	for i, rep := range reports {
		bb, _ := rep.Row(tsp.BranchAndBound.String())
		bf, _ := rep.Row(tsp.BruteForce.String())
		nn, _ := rep.Row(tsp.NearestNeighbor.String())
		assert.Equal(t, want[i], bb.Value, rep.Name)
		assert.Equal(t, want[i], bf.Value, rep.Name)
		assert.GreaterOrEqual(t, nn.Value, bb.Value)
		assert.True(t, strings.HasPrefix(bb.Solution, "[0 "), bb.Solution)
	}
}

func TestRunTSP_SolverErrorIsANote(t *testing.T) {
	c := casefile.TSPCase{Name: "gap", Matrix: [][]float64{
		{0, 1, 1},
		{1, 0, inf()},
		{1, inf(), 0},
	}}
	reports, err := testRunner().RunTSP(context.Background(), []casefile.TSPCase{c})
	require.NoError(t, err)

	bb, _ := reports[0].Row(tsp.BranchAndBound.String())
	assert.Equal(t, tsp.ErrNoTour.Error(), bb.Note)
	assert.Len(t, bb.Times, 1, "a failing solver is not repeated")
}

func TestRun_BadCase(t *testing.T) {
	c := casefile.KnapsackCase{Name: "broken", Items: []knapsack.Item{{ID: 1, Weight: 1, Value: 1}}}
	_, err := testRunner().RunKnapsack(context.Background(), []casefile.KnapsackCase{c})
	require.ErrorIs(t, err, knapsack.ErrNoCapacity)
	require.Contains(t, err.Error(), "broken")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testRunner().RunTSP(ctx, casefile.Builtin().TSP)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRender(t *testing.T) {
	reports, err := testRunner().RunKnapsack(context.Background(), casefile.Builtin().Knapsack[:1])
	require.NoError(t, err)

	for _, f := range []bench.Format{bench.FormatTable, bench.FormatMarkdown, bench.FormatCSV} {
		var buf bytes.Buffer
		require.NoError(t, bench.Render(&buf, reports, f), string(f))
		out := buf.String()
		assert.Contains(t, out, "branch-and-bound", string(f))
		assert.Contains(t, out, "60.00", string(f))
		assert.Contains(t, out, "[2 3]", string(f))
	}

	var buf bytes.Buffer
	require.NoError(t, bench.Render(&buf, reports, bench.FormatMarkdown))
	assert.True(t, strings.HasPrefix(buf.String(), "|"), buf.String())

	require.ErrorIs(t, bench.Render(&buf, reports, bench.Format("xml")), bench.ErrUnknownFormat)
}

func TestRenderHistogram(t *testing.T) {
	r := testRunner()
	r.Repeat = 5
	reports, err := r.RunKnapsack(context.Background(), casefile.Builtin().Knapsack[:1])
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bench.RenderHistogram(&buf, reports[0], knapsack.BranchAndBound.String(), 4))
	assert.Contains(t, buf.String(), "(5 runs)")
	assert.Greater(t, strings.Count(buf.String(), "\n"), 1)

	require.Error(t, bench.RenderHistogram(&buf, reports[0], "simplex", 4))
}

func TestParseFormat(t *testing.T) {
	f, err := bench.ParseFormat("markdown")
	require.NoError(t, err)
	require.Equal(t, bench.FormatMarkdown, f)

	_, err = bench.ParseFormat("html")
	require.ErrorIs(t, err, bench.ErrUnknownFormat)
}
