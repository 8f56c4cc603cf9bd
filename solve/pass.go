// SPDX-License-Identifier: MIT

// pass.go sweeps a scheduled graph. Both directions share the same node
// step: pull fresh messages in, optionally label, split the node's
// reparameterized costs by its weight and push the share onto the edges
// the opposite sweep will consume.

package solve

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/relax"
)

// RunPhase sweeps the scheduled sequence once and returns the resulting
// lower bound. A Forward phase only refreshes messages and passes
// initialBound through; a Backward phase rebuilds the bound from
// initialBound, the bound-edge normalization deltas and the per-node
// closing terms, so its return value is the bound after the sweep.
//
// When sol is non-nil the sweep labels free variables greedily along the
// way, forward phases first to last, backward phases last to first. sol
// must span the network's variables; entries to be assigned start as
// cfn.Unlabeled.
func RunPhase(g *relax.Graph, seq []int, phase Phase, initialBound float64, sol cfn.Solution, s *Scratch) float64 {
	if phase == Forward {
		forwardPass(g, seq, sol, s)

		return initialBound
	}

	return backwardPass(g, seq, initialBound, sol, s)
}

func forwardPass(g *relax.Graph, seq []int, sol cfn.Solution, s *Scratch) {
	for _, b := range seq {
		node := g.Node(b)

		// 1) Refresh the messages this node consumes: sources already
		//    visited have changed since the last sweep.
		for _, ei := range node.In {
			if e := g.Edge(ei); e.IsBackward {
				send(g, e, s)
			}
		}

		// 2) Label free scope variables before the costs move on.
		if sol != nil {
			extract(g, b, sol, s)
		}

		// 3) Split the reparameterized costs by the node weight and push
		//    the share onto the edges the backward sweep will send.
		theta := reparam(g, b, nil, s)
		if w := node.WeightForward; w != 0 {
			floats.Scale(1/float64(w), theta)
		}
		for _, ei := range node.In {
			if e := g.Edge(ei); e.IsForward {
				floats.Sub(e.Msg, theta)
			}
		}
	}
}

func backwardPass(g *relax.Graph, seq []int, initialBound float64, sol cfn.Solution, s *Scratch) float64 {
	lb := initialBound
	for i := len(seq) - 1; i >= 0; i-- {
		b := seq[i]
		node := g.Node(b)

		// 1) Refresh consumed messages; bound edges bank their
		//    normalization delta.
		for _, ei := range node.In {
			e := g.Edge(ei)
			if e.IsForward || e.BoundEdge {
				delta := send(g, e, s)
				if e.BoundEdge {
					lb += delta
				}
			}
		}

		// 2) Label free scope variables.
		if sol != nil {
			extract(g, b, sol, s)
		}

		// 3) Split by the backward weight.
		theta := reparam(g, b, nil, s)
		if w := node.WeightBackward; w != 0 {
			floats.Scale(1/float64(w), theta)
		}

		// 4) Close the node's bound term: the weight shares no backward
		//    edge carries away stay here and enter the bound.
		if node.ComputeBound && node.WeightBackward > 0 {
			carried := 0
			for _, ei := range node.In {
				if g.Edge(ei).IsBackward {
					carried++
				}
			}
			lb += floats.Min(theta) * float64(int(node.WeightBackward)-carried)
		}

		// 5) Push the share onto the edges the forward sweep will send.
		for _, ei := range node.In {
			if e := g.Edge(ei); e.IsBackward {
				floats.Sub(e.Msg, theta)
			}
		}
	}

	return lb
}
