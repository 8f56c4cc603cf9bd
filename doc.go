// Package srmp is an in-memory engine for MAP inference on discrete
// cost-function networks: sequential reweighted message passing with
// monotone dual lower bounds, from stride tables to a full solver loop.
//
// 🚀 What is srmp?
//
//	A sequential reweighted message-passing (SRMP) toolkit that brings together:
//		• CFN primitives: variables, domains, factor tables, energies
//		• Stride tables: subset offsets, TB/TC index splits, odometer walks
//		• Relaxation graphs: factor→subset edges with cached offset tables
//		• Scheduling: two-sweep edge roles + integer pass weights
//		• Passes: forward/backward reparameterization, invariant-exact
//		• Bounds: monotone non-decreasing dual lower bounds (weak duality)
//		• I/O: UAI MARKOV reader/writer (plain and LG log-domain)
//		• Benchmarks: chain, grid (Potts), complete and random generators
//
// ✨ Why choose srmp?
//
//   - Deterministic – fixed orders everywhere, same input ⇒ same run
//   - Exact where it matters – integer strides, integer pass weights
//   - Pure Go hot path – dense float64 kernels, buffers sized once
//   - Practical – CLI, file format and generators included
//
// Under the hood, everything is organized under flat subpackages:
//
//	cfn/     — cost-function network: variables, factors, energy evaluation
//	stride/  — subset offset tables & index splits (the combinatorial core)
//	relax/   — relaxation graph: nodes, edges, message buffers
//	solve/   — scheduler, pass engine, broadcast init, solver loop
//	uai/     — UAI MARKOV text format reader/writer
//	builder/ — benchmark network generators
//	cmd/     —
//
// Quick ASCII example:
//
//	    [x0]───(x0,x1)───[x1]───(x1,x2)───[x2]
//
//	a three-variable chain: unary factors in brackets, one pairwise factor
//	per edge; SRMP sweeps this sequence left-to-right and back, tightening
//	a lower bound on the minimum energy at every backward visit.
//
// Next up: higher-order separators and tightening cuts.
//
//	go get github.com/katalvlaran/srmp
package srmp
