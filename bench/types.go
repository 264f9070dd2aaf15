// Package bench times the branch-and-bound engine against the baseline
// solvers on batches of cases and renders comparison tables.
//
// For each case every solver runs Repeat times. A row reports the solver's
// objective, the mean and standard deviation of its wall time, and its mean
// as a percentage of the slowest solver in the same case. Exponential
// baselines above the Runner's size limits are skipped, not run.
package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/boundsearch/bnb"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("bench: unknown format")

// Kind names the problem family of a case.
type Kind string

const (
	KindKnapsack Kind = "knapsack"
	KindTSP      Kind = "tsp"
)

// Format selects the table renderer.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
)

// ParseFormat accepts "table", "markdown" or "csv".
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatMarkdown, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Runner holds the harness settings. The zero value is not usable; start
// from DefaultRunner.
type Runner struct {
	// Repeat is the number of timed runs per solver and case.
	Repeat int
	// Parallel caps the number of cases running at once.
	Parallel int
	// MaxExhaustiveItems skips knapsack exhaustive search above this size.
	MaxExhaustiveItems int
	// MaxExhaustiveCities skips TSP brute force above this size.
	MaxExhaustiveCities int
	// Trace streams the engine trace of every branch-and-bound run to the
	// global zerolog logger.
	Trace bool
}

// DefaultRunner returns one repeat per solver, one case per CPU, and the
// exhaustive limits used by the reference suite.
func DefaultRunner() Runner {
	return Runner{
		Repeat:              1,
		Parallel:            runtime.NumCPU(),
		MaxExhaustiveItems:  25,
		MaxExhaustiveCities: 11,
	}
}

// Row is one solver's result on one case.
type Row struct {
	Solver string
	// Value is the solver's objective: total value for knapsack, tour
	// length for TSP.
	Value float64
	// Solution is the printable selection or tour.
	Solution string
	Times    []time.Duration
	Mean     time.Duration
	StdDev   time.Duration
	// PercentOfSlowest is Mean relative to the slowest solver of the case.
	PercentOfSlowest float64
	Skipped          bool
	// Note carries a skip reason or a solver error such as a dead end.
	Note string
	// Stats is set for branch-and-bound rows only.
	Stats *bnb.Stats
}

// CaseReport groups the rows of one case.
type CaseReport struct {
	Kind Kind
	Name string
	// Size is the item or city count.
	Size int
	Rows []Row
}

// Row returns the row of the named solver.
func (c CaseReport) Row(solver string) (Row, bool) {
	for _, r := range c.Rows {
		if r.Solver == solver {
			return r, true
		}
	}

	return Row{}, false
}
