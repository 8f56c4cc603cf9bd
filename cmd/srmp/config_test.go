// SPDX-License-Identifier: MIT

package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/srmp/solve"
)

func TestSolveConfig_YAMLOverDefaults(t *testing.T) {
	cfg := defaultSolveConfig()
	err := yaml.Unmarshal([]byte("max_iterations: 50\ntime_limit: 90s\nopposite_slack: true\n"), &cfg)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, duration(90*time.Second), cfg.TimeLimit)
	assert.True(t, cfg.OppositeSlack)
	assert.Equal(t, solve.DefaultEps, cfg.Eps, "absent keys keep their defaults")
	assert.Equal(t, solve.DefaultBlend, cfg.Blend)
}

func TestSolveConfig_BadDuration(t *testing.T) {
	cfg := defaultSolveConfig()
	err := yaml.Unmarshal([]byte("time_limit: banana\n"), &cfg)
	assert.Error(t, err)
}

func TestSolveConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*solveConfig)
	}{
		{"iterations", func(c *solveConfig) { c.MaxIterations = 0 }},
		{"eps", func(c *solveConfig) { c.Eps = -1 }},
		{"eps NaN", func(c *solveConfig) { c.Eps = math.NaN() }},
		{"time limit", func(c *solveConfig) { c.TimeLimit = 0 }},
		{"period", func(c *solveConfig) { c.SolutionPeriod = 0 }},
		{"blend", func(c *solveConfig) { c.Blend = 1.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultSolveConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.validate())
		})
	}
	assert.NoError(t, defaultSolveConfig().validate())
}

func TestLoadSolveConfig_FlagsWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_iterations: 50\neps: 0.5\n"), 0o644))

	require.NoError(t, solveCmd.Flags().Set("eps", "0.25"))

	cfg, err := loadSolveConfig(solveCmd, path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxIterations, "file layer applies")
	assert.Equal(t, 0.25, cfg.Eps, "explicit flag beats the file")
}

func TestLoadSolveConfig_MissingFile(t *testing.T) {
	_, err := loadSolveConfig(solveCmd, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSolveConfig_Options(t *testing.T) {
	cfg := defaultSolveConfig()
	assert.Len(t, cfg.options(), 5)
	cfg.OppositeSlack = true
	assert.Len(t, cfg.options(), 6)
}
