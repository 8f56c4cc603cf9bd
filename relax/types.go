// SPDX-License-Identifier: MIT

// types.go holds the node and edge types of the relaxation graph plus the
// package sentinels. Construction lives in graph.go.

package relax

import (
	"errors"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/stride"
)

// Sentinel errors reported by graph construction.
var (
	// ErrNilNetwork signals construction over a nil network.
	ErrNilNetwork = errors.New("relax: nil network")
	// ErrNode signals an edge endpoint outside the node range.
	ErrNode = errors.New("relax: node index out of range")
	// ErrSelfEdge signals an edge whose endpoints coincide.
	ErrSelfEdge = errors.New("relax: edge endpoints must differ")
	// ErrNotContained signals a target scope not contained in the source's.
	ErrNotContained = errors.New("relax: target scope is not contained in the source scope")
)

// Node is one factor of the relaxation. Unary nodes exist for every
// variable; their Factor carries the network's unary costs or reads as
// all-zero. In and Out list edge indices in construction order.
//
// WeightForward, WeightBackward and ComputeBound are assigned exactly once
// by the solver's setup and are immutable afterwards; Rep is the node's
// representative vector, materialized on first use by the broadcast
// operation.
type Node struct {
	Factor *cfn.Factor // scope, domain sizes, costs (nil costs read as zero)
	In     []int       // incoming edge indices (this node is the target)
	Out    []int       // outgoing edge indices (this node is the source)
	Rep    []float64   // representative vector; nil until materialized

	WeightForward  int16 // pass weight, forward direction
	WeightBackward int16 // pass weight, backward direction
	ComputeBound   bool  // node contributes a bound term in backward passes
}

// Arity returns the number of scope variables.
func (n *Node) Arity() int { return len(n.Factor.Variables) }

// IsUnary reports whether the node covers exactly one variable.
func (n *Node) IsUnary() bool { return len(n.Factor.Variables) == 1 }

// Size returns the node's table size (the number of scope labelings).
func (n *Node) Size() int { return stride.Size(n.Factor.Dims) }

// Costs returns the node's cost table; nil reads as all-zero.
func (n *Node) Costs() []float64 { return n.Factor.Table }

// MaterializeRep returns the node's representative vector, allocating it
// zero-filled at full table size on first call. The slice is never resized.
func (n *Node) MaterializeRep() []float64 {
	if n.Rep == nil {
		n.Rep = make([]float64, n.Size())
	}
	return n.Rep
}

// Edge is one directed containment relation: the target's scope is a subset
// of the source's. TB/TC decompose every flat index of the source table as
// TB[b] + TC[c]; Msg is the persistent message buffer, one entry per target
// labeling, never resized.
//
// Roles and weights are assigned exactly once by the solver's setup. The
// two roles are not mutually exclusive: a middle edge of a wide factor may
// carry both.
type Edge struct {
	From int // source node index (enclosing scope)
	To   int // target node index (contained scope)

	TB  []int     // offsets of target labelings inside the source table
	TC  []int     // offsets of the complement labelings
	Msg []float64 // message buffer, len == target table size

	IsForward  bool // send target in backward passes, update target in forward passes
	IsBackward bool // send target in forward passes, update target in backward passes
	BoundEdge  bool // backward-pass send contributes its delta to the bound

	WeightForward  int16 // edge weight, forward direction (1 when IsForward)
	WeightBackward int16 // edge weight, backward direction (1 when IsBackward)
}
