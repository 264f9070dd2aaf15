package gen

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boundsearch/casefile"
	"github.com/katalvlaran/boundsearch/casegen"
	"github.com/katalvlaran/boundsearch/internal/config"
	"github.com/katalvlaran/boundsearch/matrix"
)

// defaultFraction of the total item weight becomes the capacity when
// --capacity is not given.
const defaultFraction = 0.5

func NewGenCommand(cfg *config.Config) *cobra.Command {
	var (
		seed  int64
		count int
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Writes random cases as YAML to stdout",
		Long: `Draws random knapsack or TSP cases. The output is a case file that
bench --cases and solve accept. A seed of 0 draws a fresh seed, which is
logged so the run can be replayed.`,
	}
	cmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (default: config seed, 0 draws one)")
	cmd.PersistentFlags().IntVar(&count, "count", 1, "number of cases")

	// streams resolves the seed once and hands out one RNG per case.
	streams := func(cmd *cobra.Command) (func(i int) *rand.Rand, int64, error) {
		if count < 1 {
			return nil, 0, fmt.Errorf("gen: count must be at least 1, got %d", count)
		}
		s := seed
		if !cmd.Flags().Changed("seed") {
			s = cfg.Seed()
		}
		first, s := casegen.NewRand(s)
		log.Info().Int64("seed", s).Int("count", count).Msg("generating-cases")

		return func(i int) *rand.Rand {
			if i == 0 {
				return first
			}
			return casegen.Stream(s, i)
		}, s, nil
	}

	var capacity float64
	knapsackCmd := &cobra.Command{
		Use:   "knapsack <n>",
		Short: "Random knapsack cases with n items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}
			rngFor, s, err := streams(cmd)
			if err != nil {
				return err
			}
			var f casefile.File
			for i := 0; i < count; i++ {
				items, err := casegen.Knapsack(n, rngFor(i))
				if err != nil {
					return err
				}
				c := capacity
				if !cmd.Flags().Changed("capacity") {
					c = casegen.Capacity(items, defaultFraction)
				}
				f.Knapsack = append(f.Knapsack, casefile.KnapsackCase{
					Name:     caseName("knapsack", n, s, i),
					Capacity: &c,
					Items:    items,
				})
			}

			return casefile.Write(cmd.OutOrStdout(), f)
		},
	}
	knapsackCmd.Flags().Float64Var(&capacity, "capacity", 0, "knapsack capacity (default: half the total weight)")

	tspCmd := &cobra.Command{
		Use:   "tsp <n>",
		Short: "Random symmetric TSP cases with n cities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}
			rngFor, s, err := streams(cmd)
			if err != nil {
				return err
			}
			var f casefile.File
			for i := 0; i < count; i++ {
				m, err := casegen.SymmetricMatrix(n, rngFor(i))
				if err != nil {
					return err
				}
				rows, err := matrix.ToRows(m)
				if err != nil {
					return err
				}
				f.TSP = append(f.TSP, casefile.TSPCase{
					Name:      caseName("tsp", n, s, i),
					Symmetric: true,
					Matrix:    rows,
				})
			}

			return casefile.Write(cmd.OutOrStdout(), f)
		},
	}

	cmd.AddCommand(knapsackCmd, tspCmd)

	return cmd
}

func parseSize(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("gen: size %q: %w", arg, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("gen: size %d: %w", n, casegen.ErrSize)
	}

	return n, nil
}

func caseName(kind string, n int, seed int64, i int) string {
	return fmt.Sprintf("%s-n%d-s%d-%d", kind, n, seed, i+1)
}
