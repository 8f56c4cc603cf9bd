// SPDX-License-Identifier: MIT

// broadcast.go reparameterizes one node against all of its children at
// once. The passes reparameterize edge by edge instead; this operation
// serves the factors the sweeps never visit and custom splitting schemes
// built on representative vectors.

package solve

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/relax"
)

// Broadcast collects the full reparameterization of node a (cost table,
// incoming messages, current child representatives), then redistributes it:
// every child's representative is overwritten with its weight share of the
// min-marginals and subtracted back out of a's own representative, so the
// total mass is preserved. The returned delta is the minimum of the
// collected costs, the share no child absorbs.
//
// A child with a nil representative reads as all-zero and is materialized
// on write; a's own representative is updated only when already
// materialized. When sol is non-nil the unlabeled scope variables of a are
// labeled by the minimum of the collected costs under the labels already
// pinned. Nodes whose forward weights are all zero keep their mass: the
// children are left untouched.
func Broadcast(g *relax.Graph, a int, sol cfn.Solution, s *Scratch) float64 {
	node := g.Node(a)
	theta := s.theta[:node.Size()]
	if t := node.Costs(); t != nil {
		copy(theta, t)
	} else {
		clear(theta)
	}

	// 1) Collect: incoming messages elementwise, child representatives
	//    spread over the table.
	for _, ei := range node.In {
		floats.Add(theta, g.Edge(ei).Msg)
	}
	totalWeight := int(node.WeightForward)
	for _, ei := range node.Out {
		e := g.Edge(ei)
		if rep := g.Node(e.To).Rep; rep != nil {
			spread(theta, e, rep, +1)
		}
		totalWeight += int(e.WeightForward)
	}

	// 2) Label free scope variables off the collected costs.
	if sol != nil {
		argminTheta(theta, node.Factor.Variables, node.Factor.Dims, sol, s)
	}

	delta := floats.Min(theta)

	if node.Rep != nil {
		copy(node.Rep, theta)
	}

	// 3) Redistribute by weight share. Without a positive total weight
	//    there is nothing to hand out.
	if len(node.Out) == 0 || totalWeight <= 0 {
		return delta
	}
	inv := 1 / float64(totalWeight)
	for _, ei := range node.Out {
		e := g.Edge(ei)
		rho := float64(e.WeightForward) * inv
		rep := g.Node(e.To).MaterializeRep()
		for bi, off := range e.TB {
			vmin := theta[off+e.TC[0]]
			for _, co := range e.TC[1:] {
				if v := theta[off+co]; v < vmin {
					vmin = v
				}
			}
			rep[bi] = rho * (vmin - delta)
		}
		if node.Rep != nil {
			spread(node.Rep, e, rep, -1)
		}
	}

	return delta
}

// InitialBound folds into one number everything the sweeps never touch:
// the network constant and the minima of factors with no edges at all.
// RunPhase takes it as the starting value of every backward bound.
func InitialBound(g *relax.Graph, s *Scratch) float64 {
	lb := g.Network().Constant()
	for i := g.NumVariables(); i < g.NumNodes(); i++ {
		node := g.Node(i)
		if len(node.In) == 0 && len(node.Out) == 0 {
			lb += Broadcast(g, i, nil, s)
		}
	}

	return lb
}
