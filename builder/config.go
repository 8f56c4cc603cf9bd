// SPDX-License-Identifier: MIT
// Package: srmp/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed
// by value, so constructors cannot leak changes into each other.
type builderConfig struct {
	// RNG for cost draws; always non-nil after resolution.
	rng *rand.Rand
	// Unary costs are drawn uniformly from [unaryLo, unaryHi).
	unaryLo, unaryHi float64
	// Link cost scale: pairwise tables draw from [0, coupling); Potts
	// penalties are coupling*U[0,1) per link.
	coupling float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed     = int64(1)
	defaultUnaryLo  = 0.0
	defaultUnaryHi  = 1.0
	defaultCoupling = 1.0
)

// newBuilderConfig resolves deterministic defaults, then applies options
// in order. The default RNG is seeded with defaultSeed, so builders are
// reproducible even with no options at all.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:      rand.New(rand.NewSource(defaultSeed)),
		unaryLo:  defaultUnaryLo,
		unaryHi:  defaultUnaryHi,
		coupling: defaultCoupling,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
