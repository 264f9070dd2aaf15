package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/boundsearch/bnb"
	"github.com/katalvlaran/boundsearch/casefile"
	"github.com/katalvlaran/boundsearch/knapsack"
	"github.com/katalvlaran/boundsearch/tsp"
)

// solver is one timed entry of a case.
type solver struct {
	name string
	// skip, when non-empty, is the reason the solver does not run.
	skip string
	// run returns the objective, the printable solution and, for the
	// engine, its counters.
	run func() (float64, string, *bnb.Stats, error)
}

// RunKnapsack benchmarks every case with branch-and-bound, greedy and
// exhaustive search. Reports come back in input order. The first case that
// fails to build cancels the rest and its error is returned.
func (r Runner) RunKnapsack(ctx context.Context, cases []casefile.KnapsackCase) ([]CaseReport, error) {
	return runAll(ctx, r, cases, r.knapsackCase)
}

// RunTSP benchmarks every case with branch-and-bound, nearest neighbour and
// brute force.
func (r Runner) RunTSP(ctx context.Context, cases []casefile.TSPCase) ([]CaseReport, error) {
	return runAll(ctx, r, cases, r.tspCase)
}

func runAll[C any](ctx context.Context, r Runner, cases []C, one func(context.Context, C) (CaseReport, error)) ([]CaseReport, error) {
	reports := make([]CaseReport, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Parallel, 1))
	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			rep, err := one(gctx, c)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r Runner) bnbOptions() []bnb.Option {
	return []bnb.Option{bnb.WithTrace(r.Trace)}
}

func (r Runner) knapsackCase(ctx context.Context, c casefile.KnapsackCase) (CaseReport, error) {
	inst, err := c.Instance()
	if err != nil {
		return CaseReport{}, err
	}
	log.Debug().Str("case", c.Name).Int("items", inst.Len()).Msg("running-knapsack-case")

	exhaustive := solver{
		name: knapsack.Exhaustive.String(),
		run: func() (float64, string, *bnb.Stats, error) {
			sol, err := knapsack.SolveExhaustive(inst)
			return sol.Value, fmt.Sprint(sol.Items), nil, err
		},
	}
	if inst.Len() > min(r.MaxExhaustiveItems, knapsack.MaxExhaustiveItems) {
		exhaustive.skip = fmt.Sprintf("%d items > limit", inst.Len())
	}

	solvers := []solver{
		{
			name: knapsack.BranchAndBound.String(),
			run: func() (float64, string, *bnb.Stats, error) {
				sol, stats := knapsack.SolveBranchAndBound(inst, r.bnbOptions()...)
				return sol.Value, fmt.Sprint(sol.Items), &stats, nil
			},
		},
		{
			name: knapsack.Greedy.String(),
			run: func() (float64, string, *bnb.Stats, error) {
				sol := knapsack.SolveGreedy(inst)
				return sol.Value, fmt.Sprint(sol.Items), nil, nil
			},
		},
		exhaustive,
	}

	rows, err := r.measure(ctx, c.Name, solvers)
	if err != nil {
		return CaseReport{}, err
	}

	return CaseReport{Kind: KindKnapsack, Name: c.Name, Size: inst.Len(), Rows: rows}, nil
}

func (r Runner) tspCase(ctx context.Context, c casefile.TSPCase) (CaseReport, error) {
	inst, err := c.Instance()
	if err != nil {
		return CaseReport{}, err
	}
	log.Debug().Str("case", c.Name).Int("cities", inst.Len()).Msg("running-tsp-case")

	tourRun := func(solve func() (tsp.TSResult, error)) func() (float64, string, *bnb.Stats, error) {
		return func() (float64, string, *bnb.Stats, error) {
			res, err := solve()
			return res.Cost, fmt.Sprint(res.Tour), nil, err
		}
	}
	brute := solver{
		name: tsp.BruteForce.String(),
		run:  tourRun(func() (tsp.TSResult, error) { return tsp.SolveBruteForce(inst) }),
	}
	if inst.Len() > min(r.MaxExhaustiveCities, tsp.MaxBruteForceCities) {
		brute.skip = fmt.Sprintf("%d cities > limit", inst.Len())
	}

	solvers := []solver{
		{
			name: tsp.BranchAndBound.String(),
			run: func() (float64, string, *bnb.Stats, error) {
				res, stats, err := tsp.SolveBranchAndBound(inst, r.bnbOptions()...)
				return res.Cost, fmt.Sprint(res.Tour), &stats, err
			},
		},
		{
			name: tsp.NearestNeighbor.String(),
			run:  tourRun(func() (tsp.TSResult, error) { return tsp.SolveNearestNeighbor(inst) }),
		},
		brute,
	}

	rows, err := r.measure(ctx, c.Name, solvers)
	if err != nil {
		return CaseReport{}, err
	}

	return CaseReport{Kind: KindTSP, Name: c.Name, Size: inst.Len(), Rows: rows}, nil
}

// measure times each solver Repeat times and fills the relative columns.
// A solver error ends that solver's runs and lands in Row.Note; only
// context cancellation aborts the case.
func (r Runner) measure(ctx context.Context, name string, solvers []solver) ([]Row, error) {
	rows := make([]Row, 0, len(solvers))
	for _, s := range solvers {
		row := Row{Solver: s.name}
		if s.skip != "" {
			row.Skipped = true
			row.Note = s.skip
			log.Debug().Str("case", name).Str("solver", s.name).Str("reason", s.skip).Msg("skipping-solver")
			rows = append(rows, row)
			continue
		}
		for i := 0; i < max(r.Repeat, 1); i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			start := time.Now()
			value, sol, stats, err := s.run()
			row.Times = append(row.Times, time.Since(start))
			if err != nil {
				row.Value = math.NaN()
				row.Note = err.Error()
				break
			}
			row.Value, row.Solution, row.Stats = value, sol, stats
		}
		row.Mean, row.StdDev = meanStdDev(row.Times)
		rows = append(rows, row)
	}

	slowest := lo.MaxBy(rows, func(a, b Row) bool { return a.Mean > b.Mean }).Mean
	for i := range rows {
		if slowest > 0 && !rows[i].Skipped {
			rows[i].PercentOfSlowest = 100 * float64(rows[i].Mean) / float64(slowest)
		}
	}

	return rows, nil
}

// meanStdDev returns the sample mean and standard deviation of ds. A single
// sample has zero deviation.
func meanStdDev(ds []time.Duration) (time.Duration, time.Duration) {
	if len(ds) == 0 {
		return 0, 0
	}
	xs := lo.Map(ds, func(d time.Duration, _ int) float64 { return float64(d) })
	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 || math.IsNaN(std) {
		std = 0
	}

	return time.Duration(mean), time.Duration(std)
}
