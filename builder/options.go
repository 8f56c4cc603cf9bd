// SPDX-License-Identifier: MIT
// Package: srmp/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type Option func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     builders themselves never panic.
//   - Determinism is explicit: the default RNG is seeded, WithSeed or
//     WithRand replace it.
//
// AI-Hints:
//   - Prefer WithSeed to freeze fixtures in tests and golden files.
//   - WithRand shares one RNG stream across several Build calls.
//   - WithUnaryRange/WithCoupling shape the cost distributions; ranges
//     may be degenerate (lo == hi) for constant costs.

package builder

import (
	"math"
	"math/rand"
)

// Option customizes a builderConfig before construction begins.
type Option func(*builderConfig)

// WithSeed replaces the RNG with a fresh one seeded deterministically.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG, letting several builds share one
// stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithUnaryRange draws unary costs uniformly from [lo, hi). Panics unless
// lo <= hi and both are finite numbers.
func WithUnaryRange(lo, hi float64) Option {
	if !(lo <= hi) || !finite(lo) || !finite(hi) {
		panic("builder: WithUnaryRange(lo, hi) needs finite lo <= hi")
	}
	return func(c *builderConfig) {
		c.unaryLo, c.unaryHi = lo, hi
	}
}

// WithCoupling scales link costs: pairwise tables draw from [0, scale),
// Potts penalties are scale*U[0,1). Panics unless scale >= 0 and finite.
func WithCoupling(scale float64) Option {
	if !(scale >= 0) || !finite(scale) {
		panic("builder: WithCoupling(scale) needs finite scale >= 0")
	}
	return func(c *builderConfig) {
		c.coupling = scale
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
