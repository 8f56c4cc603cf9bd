// SPDX-License-Identifier: MIT
// Package: srmp/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(domains, opts, cons...). Creates the
//     network, resolves the config, runs constructors in order.
//   - Constructors are closures over their shape parameters; they
//     validate early, add factors deterministically, and return only
//     sentinel errors.
//   - Determinism: same domains, options, seed and constructor order
//     produce an identical network.
//
// AI-Hints:
//   - Compose constructors to assemble mixed fixtures (a grid plus a
//     few long-range links) on one network and one RNG stream.
//   - The Chain/Grid/Complete/Random wrappers are the common one-call
//     shapes; reach for Build when composing.

package builder

import (
	"fmt"

	"github.com/katalvlaran/srmp/cfn"
)

// Constructor applies one deterministic network mutation using the
// resolved builderConfig. Implementations validate parameters first,
// draw costs only through cfg.rng, and emit factors in a stable order.
type Constructor func(net *cfn.Network, cfg builderConfig) error

// Build creates a network over the given domain sizes, resolves the
// builder configuration and applies all constructors in order. The first
// error is wrapped with "Build: " and returned; no partial cleanup.
func Build(domains []int, opts []Option, cons ...Constructor) (*cfn.Network, error) {
	net, err := cfn.New(domains)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrShape)
		}
		if err := fn(net, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return net, nil
}

// Chain builds n variables with domain size k, random unary costs and a
// random pairwise table on every consecutive pair (i, i+1).
//
// Constraints: n >= 2 (ErrTooFewVariables), k >= 1 (ErrBadDomain).
func Chain(n, k int, opts ...Option) (*cfn.Network, error) {
	domains, err := uniformDomains(n, k, 2)
	if err != nil {
		return nil, fmt.Errorf("Chain: %w", err)
	}
	return Build(domains, opts, Unaries(), ChainLinks())
}

// Grid builds a rows x cols Potts model with domain size k: random unary
// costs per cell and a Potts link (penalty for unequal labels) between
// 4-neighborhood cells. Variables are row-major, cell (r, c) is r*cols+c.
//
// Constraints: rows, cols >= 1 with at least two cells
// (ErrTooFewVariables), k >= 1 (ErrBadDomain).
func Grid(rows, cols, k int, opts ...Option) (*cfn.Network, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("Grid: %dx%d cells (need at least 2): %w",
			rows, cols, ErrTooFewVariables)
	}
	domains, err := uniformDomains(rows*cols, k, 2)
	if err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}
	return Build(domains, opts, Unaries(), GridPotts(rows, cols))
}

// Complete builds n variables with domain size k, random unaries and a
// random pairwise table on every pair (i < j).
//
// Constraints: n >= 2 (ErrTooFewVariables), k >= 1 (ErrBadDomain).
func Complete(n, k int, opts ...Option) (*cfn.Network, error) {
	domains, err := uniformDomains(n, k, 2)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	return Build(domains, opts, Unaries(), AllPairs())
}

// Random builds n variables with domain size k, random unaries and a
// random pairwise table on each pair (i < j) independently with the given
// density. Density 0 yields no links, density 1 the complete graph.
//
// Constraints: n >= 2 (ErrTooFewVariables), k >= 1 (ErrBadDomain),
// 0 <= density <= 1 (ErrInvalidDensity).
func Random(n, k int, density float64, opts ...Option) (*cfn.Network, error) {
	domains, err := uniformDomains(n, k, 2)
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}
	return Build(domains, opts, Unaries(), SparsePairs(density))
}
