// SPDX-License-Identifier: MIT

// solver.go drives the iteration loop: build and schedule the relaxation
// once, then alternate forward and backward phases until the bound stalls,
// the iteration cap is reached or the time limit expires.

package solve

import (
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/relax"
)

// Result is the outcome of one Run.
type Result struct {
	Bound      float64       // final lower bound on the network optimum
	Solution   cfn.Solution  // best labeling found
	Energy     float64       // energy of Solution
	Iterations int           // completed forward/backward iterations
	Runtime    time.Duration // wall-clock time spent inside Run
}

// Solver owns a scheduled relaxation of one network plus the working
// memory to sweep it. A Solver is not safe for concurrent use. Successive
// Runs are allowed and continue from the current messages.
type Solver struct {
	net     *cfn.Network
	graph   *relax.Graph
	seq     []int
	scratch *Scratch
	initial float64
	opts    options
}

// New builds the minimal relaxation of net, schedules it and sizes the
// working memory. Failures from relaxation and scheduling (ErrBlend,
// ErrWeightOverflow) are returned; option constructors panic on their own
// bad inputs before New ever sees them.
func New(net *cfn.Network, opts ...Option) (*Solver, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := relax.Minimal(net)
	if err != nil {
		return nil, err
	}
	seq, err := Schedule(g, o.blend, o.oppositeSlack)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		net:     net,
		graph:   g,
		seq:     seq,
		scratch: NewScratch(g),
		opts:    o,
	}
	s.initial = InitialBound(g, s.scratch)

	return s, nil
}

// Graph exposes the scheduled relaxation for inspection.
func (s *Solver) Graph() *relax.Graph { return s.graph }

// Run iterates forward/backward phases and returns the final bound, the
// best labeling found and its energy. The run stops when the per-iteration
// bound improvement drops below the configured eps, on the iteration cap,
// or once the time limit is exceeded; the bound itself never decreases
// between iterations.
func (s *Solver) Run() (Result, error) {
	start := time.Now()
	n := s.net.NumVariables()
	res := Result{Bound: s.initial, Energy: math.Inf(1)}

	s.opts.logger.Info("srmp: run",
		slog.Int("variables", n),
		slog.Int("nodes", s.graph.NumNodes()),
		slog.Int("edges", s.graph.NumEdges()),
		slog.Float64("initial_bound", s.initial))

	prev := math.Inf(-1)
	for iter := 0; iter < s.opts.maxIterations; iter++ {
		// Labeling is periodic: always on the first and last iteration,
		// every solutionPeriod-th in between.
		label := iter%s.opts.solutionPeriod == 0 || iter == s.opts.maxIterations-1

		var fwd cfn.Solution
		if label {
			fwd = cfn.NewSolution(n)
		}
		RunPhase(s.graph, s.seq, Forward, s.initial, fwd, s.scratch)
		if label {
			if err := s.consider(&res, fwd); err != nil {
				return res, err
			}
		}

		var bwd cfn.Solution
		if label {
			bwd = cfn.NewSolution(n)
		}
		bound := RunPhase(s.graph, s.seq, Backward, s.initial, bwd, s.scratch)
		if label {
			if err := s.consider(&res, bwd); err != nil {
				return res, err
			}
		}

		res.Bound = bound
		res.Iterations = iter + 1
		elapsed := time.Since(start)
		s.opts.logger.Debug("srmp: iteration",
			slog.Int("iteration", iter),
			slog.Float64("bound", bound),
			slog.Float64("energy", res.Energy),
			slog.Duration("elapsed", elapsed))

		if bound-prev < s.opts.eps {
			break
		}
		if elapsed >= s.opts.timeLimit {
			break
		}
		prev = bound
	}

	res.Runtime = time.Since(start)
	s.opts.logger.Info("srmp: done",
		slog.Float64("bound", res.Bound),
		slog.Float64("energy", res.Energy),
		slog.Int("iterations", res.Iterations),
		slog.Duration("runtime", res.Runtime))

	return res, nil
}

// consider keeps sol when its energy beats the best seen so far.
func (s *Solver) consider(res *Result, sol cfn.Solution) error {
	energy, err := s.net.Energy(sol)
	if err != nil {
		return err
	}
	if energy < res.Energy {
		res.Energy = energy
		res.Solution = sol.Clone()
	}

	return nil
}
