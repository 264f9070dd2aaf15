package root

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boundsearch/cmd/bnbx/bench"
	"github.com/katalvlaran/boundsearch/cmd/bnbx/gen"
	"github.com/katalvlaran/boundsearch/cmd/bnbx/solve"
	"github.com/katalvlaran/boundsearch/internal/config"
)

func NewRootCmd() *cobra.Command {
	cfg := config.New()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "bnbx",
		Short: "bnbx explores knapsack and TSP instances with branch-and-bound",
		Long: `A branch-and-bound search engine with knapsack and travelling salesman
collaborators, a case generator and a benchmarking harness.

Settings come from flags, BNBX_* environment variables or a config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.ReadFile(configPath); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), cfg.Debug() || cfg.Trace())
			log.Debug().Str("config", configPath).Msg("debug-logging-on")

			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (yaml, json or toml)")
	pf.Bool(config.KeyDebug, false, "debug logging")
	pf.Bool(config.KeyTrace, false, "log every node the engine explores or removes")
	pf.String(config.KeyFormat, "table", "output format: table, markdown or csv")
	pf.Int(config.KeyRepeat, 1, "timed runs per solver and case")
	pf.Int(config.KeyParallel, runtime.NumCPU(), "cases benchmarked at once")
	pf.Int(config.KeyMaxExhaustiveItems, 25, "skip knapsack exhaustive search above this many items")
	pf.Int(config.KeyMaxExhaustiveCities, 11, "skip TSP brute force above this many cities")
	if err := cfg.BindFlags(pf); err != nil {
		panic(err)
	}

	// add sub-commands
	rootCmd.AddCommand(bench.NewBenchCommand(cfg))
	rootCmd.AddCommand(gen.NewGenCommand(cfg))
	rootCmd.AddCommand(solve.NewSolveCommand(cfg))

	return rootCmd
}

// setupLogging installs the global console logger.
func setupLogging(w io.Writer, debug bool) {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}
