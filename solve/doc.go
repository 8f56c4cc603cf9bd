// SPDX-License-Identifier: MIT

// Package solve runs sequential reweighted message passing over a
// relaxation graph and extracts labelings from the reparameterized costs.
//
// Pipeline:
//
//   - Schedule orders the graph into a processing sequence, marks every
//     edge's role in the two sweep directions and assigns the integer
//     weights that split a node's reparameterized costs among its edges.
//   - RunPhase sweeps the sequence once. A forward phase refreshes the
//     messages the next phase consumes; a backward phase additionally
//     accumulates a lower bound on the network optimum from the message
//     normalization deltas and the per-node bound terms.
//   - InitialBound folds the network constant and the mass of factors the
//     sweeps never visit into the starting bound.
//   - Solver alternates the two phases until the bound stops improving,
//     the iteration cap is hit or the time limit expires, keeping the best
//     labeling seen along the way.
//
// The bound never decreases from one iteration to the next, and every
// returned labeling has energy at or above the final bound. On
// tree-structured networks the two meet and the labeling is optimal.
//
// Typical use:
//
//	s, err := solve.New(net, solve.WithEps(1e-6))
//	if err != nil { ... }
//	res, err := s.Run()
//	fmt.Println(res.Bound, res.Energy)
//
// Errors:
//
//   - ErrBlend: blend factor outside [0,1].
//   - ErrWeightOverflow: a scheduled node weight exceeds the int16 range.
//
// See package relax for the graph model and package cfn for networks.
package solve
