package bench

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	harness "github.com/katalvlaran/boundsearch/bench"
	"github.com/katalvlaran/boundsearch/casefile"
	"github.com/katalvlaran/boundsearch/internal/config"
)

func NewBenchCommand(cfg *config.Config) *cobra.Command {
	var (
		casesPath string
		histBins  int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Times branch-and-bound against greedy and exhaustive baselines",
		Long: `Runs every case with branch-and-bound and the two baselines and prints
one comparison table. Without --cases the built-in reference suite is used.`,
	}
	cmd.PersistentFlags().StringVar(&casesPath, "cases", "", "YAML case file (default: built-in suite)")
	cmd.PersistentFlags().IntVar(&histBins, "histogram", 0, "also plot branch-and-bound run times with this many bins")

	load := func() (casefile.File, error) {
		if casesPath == "" {
			return casefile.Builtin(), nil
		}
		return casefile.LoadFile(casesPath)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "knapsack",
		Short: "Benchmarks knapsack cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := load()
			if err != nil {
				return err
			}
			reports, err := cfg.Runner().RunKnapsack(cmd.Context(), f.Knapsack)
			if err != nil {
				return err
			}
			return report(cmd, cfg, reports, histBins)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "tsp",
		Short: "Benchmarks travelling salesman cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := load()
			if err != nil {
				return err
			}
			reports, err := cfg.Runner().RunTSP(cmd.Context(), f.TSP)
			if err != nil {
				return err
			}
			return report(cmd, cfg, reports, histBins)
		},
	})

	return cmd
}

func report(cmd *cobra.Command, cfg *config.Config, reports []harness.CaseReport, bins int) error {
	if len(reports) == 0 {
		log.Warn().Msg("no-cases")
		return nil
	}
	format, err := cfg.Format()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err = harness.Render(out, reports, format); err != nil {
		return err
	}
	if bins <= 0 {
		return nil
	}
	for _, rep := range reports {
		solver := rep.Rows[0].Solver
		if err = harness.RenderHistogram(out, rep, solver, bins); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	return nil
}
