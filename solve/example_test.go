// SPDX-License-Identifier: MIT

package solve_test

import (
	"fmt"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/relax"
	"github.com/katalvlaran/srmp/solve"
)

// ExampleSolver solves a two-variable model: both variables prefer
// opposite labels on their own, but the pair term wants them equal.
func ExampleSolver() {
	net, _ := cfn.New([]int{2, 2})
	_, _ = net.AddUnary(0, []float64{0, 1})
	_, _ = net.AddUnary(1, []float64{1, 0})
	_, _ = net.AddFactor([]int{0, 1}, []float64{0, 2, 2, 0})

	s, _ := solve.New(net)
	res, _ := s.Run()
	fmt.Printf("bound=%.0f energy=%.0f labels=%v\n", res.Bound, res.Energy, res.Solution)
	// Output: bound=1 energy=1 labels=[0 0]
}

// ExampleRunPhase drives the phases by hand, which is what Solver.Run does
// internally: forward to refresh messages, backward to read off the bound.
func ExampleRunPhase() {
	net, _ := cfn.New([]int{2, 2, 2})
	_, _ = net.AddUnary(0, []float64{0, 2})
	_, _ = net.AddUnary(2, []float64{2, 0})
	_, _ = net.AddFactor([]int{0, 1}, []float64{0, 1, 1, 0})
	_, _ = net.AddFactor([]int{1, 2}, []float64{0, 1, 1, 0})

	g, _ := relax.Minimal(net)
	seq, _ := solve.Schedule(g, 1, false)
	s := solve.NewScratch(g)
	initial := solve.InitialBound(g, s)

	var bound float64
	for i := 0; i < 3; i++ {
		solve.RunPhase(g, seq, solve.Forward, initial, nil, s)
		bound = solve.RunPhase(g, seq, solve.Backward, initial, nil, s)
	}
	fmt.Printf("bound=%.0f\n", bound)
	// Output: bound=1
}
