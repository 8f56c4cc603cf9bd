// SPDX-License-Identifier: MIT

// Package builder generates benchmark cost-function networks: chains,
// Potts grids, complete graphs and random sparse models, with uniform
// random cost tables.
//
// Architecture is one orchestrator plus composable constructors:
//
//	net, err := builder.Build([]int{3, 3, 3}, nil,
//	    builder.Unaries(),
//	    builder.ChainLinks(),
//	)
//
// The thin wrappers Chain, Grid, Complete and Random cover the standard
// shapes in one call. Everything is deterministic for a fixed seed and
// constructor order; the default configuration is seeded, so two calls
// with equal arguments produce identical networks.
//
// Options follow the functional pattern: WithSeed, WithRand,
// WithUnaryRange, WithCoupling. Option constructors panic on meaningless
// values; builders themselves never panic and return sentinel errors
// (ErrTooFewVariables, ErrBadDomain, ErrInvalidDensity, ErrShape).
package builder
