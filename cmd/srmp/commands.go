// SPDX-License-Identifier: MIT

// commands.go declares the command tree and wires every flag. Handlers
// live in cmd_solve.go and cmd_gen.go; config merging in config.go.

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/srmp/solve"
)

var (
	// Global flags.
	flagVerbose bool

	// solve flags (defaults mirror the library's).
	flagConfig         string
	flagLG             bool
	flagJSON           bool
	flagMaxIterations  = solve.DefaultMaxIterations
	flagEps            = solve.DefaultEps
	flagTimeLimit      = solve.DefaultTimeLimit
	flagSolutionPeriod = solve.DefaultSolutionPeriod
	flagBlend          = solve.DefaultBlend
	flagOppositeSlack  bool

	// gen flags. Subcommands with different defaults get their own
	// variables: pflag writes the default at registration time, so a
	// shared one would end up holding whichever command registered last.
	flagOut      string
	flagSeed     int64
	flagCoupling = 1.0
	flagChainN   int
	flagComplN   int
	flagRandN    int
	flagK        int
	flagRows     int
	flagCols     int
	flagDensity  float64

	rootCmd = &cobra.Command{
		Use:   "srmp",
		Short: "Sequential reweighted message passing over cost-function networks",
		Long: `srmp computes approximate MAP labelings and dual lower bounds for
discrete cost-function networks in the UAI MARKOV format.`,
		SilenceUsage: true,
	}

	solveCmd = &cobra.Command{
		Use:   "solve <model.uai>",
		Short: "Solve a UAI model: lower bound, labeling, energy",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	genCmd = &cobra.Command{
		Use:   "gen",
		Short: "Generate benchmark networks as UAI models",
	}
	genChainCmd = &cobra.Command{
		Use:   "chain",
		Short: "Chain of n variables with random unary and pairwise costs",
		RunE:  runGenChain,
	}
	genGridCmd = &cobra.Command{
		Use:   "grid",
		Short: "Potts grid: rows x cols cells, random per-link penalties",
		RunE:  runGenGrid,
	}
	genCompleteCmd = &cobra.Command{
		Use:   "complete",
		Short: "Complete graph over n variables with random pairwise costs",
		RunE:  runGenComplete,
	}
	genRandomCmd = &cobra.Command{
		Use:   "random",
		Short: "Random graph: each pair linked with the given density",
		RunE:  runGenRandom,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"log per-iteration bound progress")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&flagConfig, "config", "",
		"YAML file with solver options (flags win over file values)")
	solveCmd.Flags().BoolVar(&flagLG, "lg", false,
		"treat the model as the .LG log-space variant")
	solveCmd.Flags().BoolVar(&flagJSON, "json", false,
		"emit the result as JSON on stdout")
	solveCmd.Flags().IntVar(&flagMaxIterations, "max-iterations", flagMaxIterations,
		"iteration cap")
	solveCmd.Flags().Float64Var(&flagEps, "eps", flagEps,
		"stop once an iteration improves the bound by less than this")
	solveCmd.Flags().DurationVar(&flagTimeLimit, "time-limit", flagTimeLimit,
		"stop after this much wall time (checked between iterations)")
	solveCmd.Flags().IntVar(&flagSolutionPeriod, "solution-period", flagSolutionPeriod,
		"extract a labeling every this many iterations")
	solveCmd.Flags().Float64Var(&flagBlend, "blend", flagBlend,
		"weight blend in [0,1]: 0 anchors on tree weights, 1 spreads slack")
	solveCmd.Flags().BoolVar(&flagOppositeSlack, "opposite-slack", false,
		"measure weight slack against the opposite direction's in-edges")

	rootCmd.AddCommand(genCmd)
	genCmd.PersistentFlags().StringVar(&flagOut, "out", "",
		"output path (default stdout)")
	genCmd.PersistentFlags().BoolVar(&flagLG, "lg", false,
		"write the .LG log-space variant")
	genCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1,
		"RNG seed (same seed, same instance)")
	genCmd.PersistentFlags().Float64Var(&flagCoupling, "coupling", flagCoupling,
		"pairwise cost scale")

	genCmd.AddCommand(genChainCmd)
	genChainCmd.Flags().IntVar(&flagChainN, "n", 10, "number of variables")
	genChainCmd.Flags().IntVar(&flagK, "k", 3, "domain size")

	genCmd.AddCommand(genGridCmd)
	genGridCmd.Flags().IntVar(&flagRows, "rows", 4, "grid rows")
	genGridCmd.Flags().IntVar(&flagCols, "cols", 4, "grid columns")
	genGridCmd.Flags().IntVar(&flagK, "k", 3, "domain size")

	genCmd.AddCommand(genCompleteCmd)
	genCompleteCmd.Flags().IntVar(&flagComplN, "n", 8, "number of variables")
	genCompleteCmd.Flags().IntVar(&flagK, "k", 3, "domain size")

	genCmd.AddCommand(genRandomCmd)
	genRandomCmd.Flags().IntVar(&flagRandN, "n", 12, "number of variables")
	genRandomCmd.Flags().IntVar(&flagK, "k", 3, "domain size")
	genRandomCmd.Flags().Float64Var(&flagDensity, "density", 0.3,
		"probability that a pair is linked")
}
