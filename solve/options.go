// SPDX-License-Identifier: MIT
// Package: srmp/solve
//
// options.go - functional options for the solver.
//
// Contract (strict):
//   • Options are functional (type Option func(*options)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the solver itself reports failures as errors and never panics.
//   • The solver is fully deterministic: same network, same options,
//     same result. There is nothing to seed here.
//
// AI-Hints:
//   • WithEps(0) disables the improvement test; the run then ends on the
//     iteration cap or the time limit only.
//   • WithSolutionPeriod(1) labels on every iteration. Labeling walks the
//     full cost tables, so large periods make long runs noticeably cheaper.
//   • WithBlend interpolates between plain forward/backward splitting (0)
//     and the balanced splitting (1) that reproduces tree-reweighted
//     behavior on chains.
//   • WithLogger enables per-iteration progress records at Debug level;
//     the default logger discards everything.

package solve

import (
	"log/slog"
	"time"
)

// Solver defaults, applied by New before any Option runs.
const (
	// DefaultMaxIterations caps the number of forward/backward rounds.
	DefaultMaxIterations = 10000
	// DefaultEps is the minimum bound improvement that keeps a run alive.
	DefaultEps = 1e-8
	// DefaultTimeLimit bounds the wall-clock time of Run.
	DefaultTimeLimit = 20 * time.Minute
	// DefaultSolutionPeriod labels every k-th iteration.
	DefaultSolutionPeriod = 10
	// DefaultBlend is the weight blend factor (balanced splitting).
	DefaultBlend = 1.0
)

// Option customizes a Solver by mutating its configuration before the
// relaxation is built. Applying N options costs O(N) time, O(1) space.
type Option func(*options)

// options is the resolved solver configuration.
type options struct {
	maxIterations  int           // iteration cap, > 0
	eps            float64       // minimum bound improvement, >= 0
	timeLimit      time.Duration // wall-clock cap, > 0
	solutionPeriod int           // labeling cadence, > 0
	blend          float64       // weight blend factor in [0,1]
	oppositeSlack  bool          // slack from the opposite direction's weight
	logger         *slog.Logger  // progress sink, never nil
}

// defaultOptions returns the configuration New starts from.
func defaultOptions() options {
	return options{
		maxIterations:  DefaultMaxIterations,
		eps:            DefaultEps,
		timeLimit:      DefaultTimeLimit,
		solutionPeriod: DefaultSolutionPeriod,
		blend:          DefaultBlend,
		logger:         slog.New(slog.DiscardHandler),
	}
}

// WithMaxIterations caps the number of forward/backward iterations.
// Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("solve: WithMaxIterations(n<=0)")
	}
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithEps sets the minimum per-iteration bound improvement; a smaller gain
// stops the run. Zero disables the test. Panics if eps < 0.
func WithEps(eps float64) Option {
	if eps < 0 {
		panic("solve: WithEps(eps<0)")
	}
	return func(o *options) {
		o.eps = eps
	}
}

// WithTimeLimit bounds the wall-clock time of Run. The limit is checked
// after each full iteration, so a run always completes at least one.
// Panics if d <= 0.
func WithTimeLimit(d time.Duration) Option {
	if d <= 0 {
		panic("solve: WithTimeLimit(d<=0)")
	}
	return func(o *options) {
		o.timeLimit = d
	}
}

// WithSolutionPeriod labels the variables on every k-th iteration
// (iteration 0 always labels). Panics if k <= 0.
func WithSolutionPeriod(k int) Option {
	if k <= 0 {
		panic("solve: WithSolutionPeriod(k<=0)")
	}
	return func(o *options) {
		o.solutionPeriod = k
	}
}

// WithBlend sets the weight blend factor in [0,1]; see Schedule.
// Panics outside the range (NaN included).
func WithBlend(blend float64) Option {
	if !(blend >= 0 && blend <= 1) {
		panic("solve: WithBlend outside [0,1]")
	}
	return func(o *options) {
		o.blend = blend
	}
}

// WithOppositeSlack switches the blended slack term to the opposite
// direction's in-edge weight instead of the unflagged remainder; see
// Schedule.
func WithOppositeSlack() Option {
	return func(o *options) {
		o.oppositeSlack = true
	}
}

// WithLogger sets the progress sink. The solver emits one Debug record per
// iteration and Info records at start and end. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("solve: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}
