// SPDX-License-Identifier: MIT

// cmd_solve.go - the solve command: read a UAI model, run the solver,
// print the result as text or JSON.

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/solve"
	"github.com/katalvlaran/srmp/uai"
)

// solveResult is the machine-readable shape of a run.
type solveResult struct {
	Bound      float64 `json:"bound"`
	Energy     float64 `json:"energy"`
	Labels     []int   `json:"labels"`
	Iterations int     `json:"iterations"`
	Runtime    string  `json:"runtime"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadSolveConfig(cmd, flagConfig)
	if err != nil {
		return err
	}

	net, err := readModel(args[0], flagLG)
	if err != nil {
		return err
	}

	opts := append(cfg.options(), solve.WithLogger(newLogger(flagVerbose)))
	solver, err := solve.New(net, opts...)
	if err != nil {
		return err
	}
	res, err := solver.Run()
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(solveResult{
			Bound:      res.Bound,
			Energy:     res.Energy,
			Labels:     res.Solution,
			Iterations: res.Iterations,
			Runtime:    res.Runtime.String(),
		})
	}
	fmt.Printf("bound:      %.9g\n", res.Bound)
	fmt.Printf("energy:     %.9g\n", res.Energy)
	fmt.Printf("labels:     %v\n", []int(res.Solution))
	fmt.Printf("iterations: %d\n", res.Iterations)
	fmt.Printf("runtime:    %s\n", res.Runtime)
	return nil
}

func readModel(path string, lg bool) (*cfn.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if lg {
		return uai.ReadLG(f)
	}
	return uai.Read(f)
}

// newLogger writes text records to stderr: Info by default, Debug (one
// record per iteration) with --verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
