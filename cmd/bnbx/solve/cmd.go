package solve

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boundsearch/bnb"
	"github.com/katalvlaran/boundsearch/casefile"
	"github.com/katalvlaran/boundsearch/internal/config"
	"github.com/katalvlaran/boundsearch/knapsack"
	"github.com/katalvlaran/boundsearch/tsp"
)

func NewSolveCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <file.yaml>",
		Short: "Solves every case in a case file with branch-and-bound",
		Long: `Loads a case file and runs branch-and-bound on each case, printing the
optimum and the engine counters. With --trace every explored and removed
node is logged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := casefile.LoadFile(args[0])
			if err != nil {
				return err
			}
			if f.Len() == 0 {
				log.Warn().Str("file", args[0]).Msg("no-cases")
				return nil
			}
			out := cmd.OutOrStdout()
			opt := bnb.WithTrace(cfg.Trace())
			for _, c := range f.Knapsack {
				if err = solveKnapsack(out, c, opt); err != nil {
					return err
				}
			}
			for _, c := range f.TSP {
				if err = solveTSP(out, c, opt); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func solveKnapsack(out io.Writer, c casefile.KnapsackCase, opt bnb.Option) error {
	inst, err := c.Instance()
	if err != nil {
		return err
	}
	log.Debug().Str("case", c.Name).Int("items", inst.Len()).Msg("solving-knapsack")
	sol, stats := knapsack.SolveBranchAndBound(inst, opt)
	_, err = fmt.Fprintf(out, "knapsack %s: value=%v weight=%v items=%v nodes=%d\n",
		c.Name, sol.Value, sol.Weight, sol.Items, stats.Visited)

	return err
}

func solveTSP(out io.Writer, c casefile.TSPCase, opt bnb.Option) error {
	inst, err := c.Instance()
	if err != nil {
		return err
	}
	log.Debug().Str("case", c.Name).Int("cities", inst.Len()).Msg("solving-tsp")
	res, stats, err := tsp.SolveBranchAndBound(inst, opt)
	switch {
	case errors.Is(err, tsp.ErrNoTour):
		_, err = fmt.Fprintf(out, "tsp %s: no tour nodes=%d\n", c.Name, stats.Visited)
		return err
	case err != nil:
		return fmt.Errorf("case %q: %w", c.Name, err)
	}
	_, err = fmt.Fprintf(out, "tsp %s: cost=%v tour=%v nodes=%d\n",
		c.Name, res.Cost, res.Tour, stats.Visited)

	return err
}
