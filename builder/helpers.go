// SPDX-License-Identifier: MIT
// Package: srmp/builder
//
// helpers.go - shared validation and cost-drawing primitives, plus the
// Unaries constructor every wrapper composes with.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/srmp/cfn"
)

// uniformDomains validates (n, k) against a minimum variable count and
// returns n copies of k.
func uniformDomains(n, k, minVars int) ([]int, error) {
	if n < minVars {
		return nil, fmt.Errorf("%d variables (need at least %d): %w",
			n, minVars, ErrTooFewVariables)
	}
	if k < 1 {
		return nil, fmt.Errorf("domain size %d: %w", k, ErrBadDomain)
	}
	domains := make([]int, n)
	for i := range domains {
		domains[i] = k
	}
	return domains, nil
}

// drawTable fills a fresh table of the given size with uniform draws from
// [0, scale). Draw order is index order, so layouts are reproducible.
func drawTable(rng *rand.Rand, size int, scale float64) []float64 {
	t := make([]float64, size)
	for i := range t {
		t[i] = scale * rng.Float64()
	}
	return t
}

// drawRange is drawTable over [lo, hi).
func drawRange(rng *rand.Rand, size int, lo, hi float64) []float64 {
	t := make([]float64, size)
	for i := range t {
		t[i] = lo + (hi-lo)*rng.Float64()
	}
	return t
}

// Unaries adds one random unary factor per variable, in variable order,
// drawing from the configured [unaryLo, unaryHi) range.
func Unaries() Constructor {
	return func(net *cfn.Network, cfg builderConfig) error {
		for v := 0; v < net.NumVariables(); v++ {
			costs := drawRange(cfg.rng, net.Domain(v), cfg.unaryLo, cfg.unaryHi)
			if _, err := net.AddUnary(v, costs); err != nil {
				return fmt.Errorf("Unaries: variable %d: %w", v, err)
			}
		}
		return nil
	}
}

// addPair attaches one random table over (u, v) with u < v.
func addPair(net *cfn.Network, cfg builderConfig, method string, u, v int) error {
	size := net.Domain(u) * net.Domain(v)
	if _, err := net.AddFactor([]int{u, v}, drawTable(cfg.rng, size, cfg.coupling)); err != nil {
		return fmt.Errorf("%s: pair (%d,%d): %w", method, u, v, err)
	}
	return nil
}
