// SPDX-License-Identifier: MIT

// Package relax builds the relaxation graph a message-passing solver runs
// on: one node per variable and per non-unary factor, and directed edges
// from enclosing scopes to contained ones.
//
// Model:
//
//   - Node 0..NumVariables-1 is the unary node of the matching variable; it
//     carries the network's unary costs when present, all-zero costs
//     otherwise. Non-unary factors follow in first-insertion order, so node
//     index order is also the processing order downstream consumers use.
//   - An Edge points from a source node to a target node whose scope is
//     contained in the source's. At construction every edge caches the
//     TB/TC offset pair of the target inside the source (stride.Split) and
//     allocates its message buffer, sized to the target's table, never
//     resized afterwards.
//   - Edges live in one arena owned by the graph; nodes hold index lists
//     (In, Out) in deterministic construction order.
//   - Pass roles (IsForward, IsBackward, BoundEdge), weights and the
//     per-node ComputeBound flag are zero-valued at construction and
//     assigned exactly once by the solver's setup; the graph itself never
//     touches them.
//
// Construction:
//
//   - Minimal connects every non-unary factor to each of its variables'
//     unary nodes, in scope order (the standard relaxation).
//   - New builds the nodes only; Connect wires arbitrary containment edges
//     for custom relaxations.
//
// Errors:
//
//   - ErrNilNetwork: constructing over a nil network.
//   - ErrNode: an edge endpoint index is out of range.
//   - ErrSelfEdge: an edge from a node to itself.
//   - ErrNotContained: the target scope is not contained in the source's.
package relax
