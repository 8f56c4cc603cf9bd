// SPDX-License-Identifier: MIT

// config.go - the solve command's option set: defaults, YAML file layer
// and flag overrides, merged in that order.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/srmp/solve"
)

// duration decodes YAML scalars like "90s" or "20m" via time.ParseDuration.
type duration time.Duration

func (d *duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = duration(v)
	return nil
}

// solveConfig mirrors the solver options one flat key each.
type solveConfig struct {
	MaxIterations  int      `yaml:"max_iterations"`
	Eps            float64  `yaml:"eps"`
	TimeLimit      duration `yaml:"time_limit"`
	SolutionPeriod int      `yaml:"solution_period"`
	Blend          float64  `yaml:"blend"`
	OppositeSlack  bool     `yaml:"opposite_slack"`
}

func defaultSolveConfig() solveConfig {
	return solveConfig{
		MaxIterations:  solve.DefaultMaxIterations,
		Eps:            solve.DefaultEps,
		TimeLimit:      duration(solve.DefaultTimeLimit),
		SolutionPeriod: solve.DefaultSolutionPeriod,
		Blend:          solve.DefaultBlend,
	}
}

// loadSolveConfig resolves the effective configuration: defaults, then the
// YAML file (when given), then any flag the user set explicitly.
func loadSolveConfig(cmd *cobra.Command, path string) (solveConfig, error) {
	cfg := defaultSolveConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("max-iterations") {
		cfg.MaxIterations = flagMaxIterations
	}
	if flags.Changed("eps") {
		cfg.Eps = flagEps
	}
	if flags.Changed("time-limit") {
		cfg.TimeLimit = duration(flagTimeLimit)
	}
	if flags.Changed("solution-period") {
		cfg.SolutionPeriod = flagSolutionPeriod
	}
	if flags.Changed("blend") {
		cfg.Blend = flagBlend
	}
	if flags.Changed("opposite-slack") {
		cfg.OppositeSlack = flagOppositeSlack
	}
	return cfg, cfg.validate()
}

// validate reports bad values as errors; the solve.WithX constructors
// would panic, which is the wrong register for user input.
func (c solveConfig) validate() error {
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations %d (need >= 1)", c.MaxIterations)
	}
	if !(c.Eps >= 0) {
		return fmt.Errorf("eps %v (need >= 0)", c.Eps)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time_limit %v (need > 0)", time.Duration(c.TimeLimit))
	}
	if c.SolutionPeriod < 1 {
		return fmt.Errorf("solution_period %d (need >= 1)", c.SolutionPeriod)
	}
	if !(c.Blend >= 0 && c.Blend <= 1) {
		return fmt.Errorf("blend %v (need 0..1)", c.Blend)
	}
	return nil
}

// options renders the configuration as solver options.
func (c solveConfig) options() []solve.Option {
	opts := []solve.Option{
		solve.WithMaxIterations(c.MaxIterations),
		solve.WithEps(c.Eps),
		solve.WithTimeLimit(time.Duration(c.TimeLimit)),
		solve.WithSolutionPeriod(c.SolutionPeriod),
		solve.WithBlend(c.Blend),
	}
	if c.OppositeSlack {
		opts = append(opts, solve.WithOppositeSlack())
	}
	return opts
}
