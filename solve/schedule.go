// SPDX-License-Identifier: MIT

// schedule.go orders a relaxation graph for sequential processing and
// assigns every node and edge its pass roles and weights. Schedule is
// idempotent: it clears all roles before marking.

package solve

import (
	"errors"
	"math"

	"github.com/katalvlaran/srmp/relax"
)

// Sentinel errors reported by scheduling.
var (
	// ErrBlend signals a blend factor outside [0,1].
	ErrBlend = errors.New("solve: blend factor outside [0,1]")
	// ErrWeightOverflow signals a node weight beyond the int16 capacity.
	ErrWeightOverflow = errors.New("solve: node weight overflows int16")
)

// Phase selects a sweep direction over the scheduled sequence.
type Phase int

const (
	// Forward sweeps the sequence first to last.
	Forward Phase = iota
	// Backward sweeps the sequence last to first.
	Backward
)

// String returns "forward" or "backward".
func (p Phase) String() string {
	if p == Forward {
		return "forward"
	}

	return "backward"
}

// Schedule computes the processing sequence of g and assigns pass roles and
// weights in place. The sequence holds every unary node plus every
// non-unary node with at least one incoming edge, in node index order.
//
// An edge is marked IsBackward when its source has an earlier target in the
// sequence and IsForward when it has a later one; a source's first edge met
// in each direction gets neither mark. BoundEdge marks exactly the edges
// whose backward send seeds the lower bound, and ComputeBound the nodes
// that close it.
//
// blend interpolates the per-node weight between the plain split
// (in + out edges of the direction) at 0 and the balanced split at 1.
// With oppositeSlack the blended slack is measured against the opposite
// direction's in-weight instead of the unflagged remainder.
//
// Returns ErrBlend for a blend outside [0,1] and ErrWeightOverflow when a
// weight exceeds the int16 range.
func Schedule(g *relax.Graph, blend float64, oppositeSlack bool) ([]int, error) {
	if !(blend >= 0 && blend <= 1) {
		return nil, ErrBlend
	}

	// 1) Reset every role and weight so repeated scheduling starts clean.
	for i := 0; i < g.NumNodes(); i++ {
		node := g.Node(i)
		node.ComputeBound = false
		node.WeightForward, node.WeightBackward = 0, 0
	}
	for i := 0; i < g.NumEdges(); i++ {
		e := g.Edge(i)
		e.IsForward, e.IsBackward, e.BoundEdge = false, false, false
		e.WeightForward, e.WeightBackward = 0, 0
	}

	// 2) Collect the sequence: all unary nodes, then any non-unary node
	//    some other factor sends to. Node index order is sequence order.
	seq := make([]int, 0, g.NumNodes())
	for i := 0; i < g.NumNodes(); i++ {
		node := g.Node(i)
		if node.IsUnary() || len(node.In) > 0 {
			seq = append(seq, i)
		}
	}

	// 3) Forward sweep: mark IsBackward and the bound structure. A source
	//    is "seen" once any of its edges has been walked; the first edge of
	//    a source seeds the bound, later ones point backward.
	seen := make([]bool, g.NumNodes())
	for _, b := range seq {
		node := g.Node(b)
		if seen[b] {
			node.ComputeBound = node.IsUnary()
		} else {
			node.ComputeBound = true
			seen[b] = true
		}
		for _, ei := range node.In {
			e := g.Edge(ei)
			if seen[e.From] {
				e.IsBackward = true
				e.BoundEdge = false
			} else {
				e.IsBackward = false
				e.BoundEdge = true
				seen[e.From] = true
			}
		}
	}

	// 4) Backward sweep: mark IsForward symmetrically, walking the
	//    sequence in reverse with a fresh seen set.
	seen = make([]bool, g.NumNodes())
	for i := len(seq) - 1; i >= 0; i-- {
		b := seq[i]
		seen[b] = true
		for _, ei := range g.Node(b).In {
			e := g.Edge(ei)
			if seen[e.From] {
				e.IsForward = true
			} else {
				e.IsForward = false
				seen[e.From] = true
			}
		}
	}

	// 5) Weights. Each flagged in-edge carries unit weight; the node weight
	//    is the denominator its reparameterized costs are split by.
	for _, b := range seq {
		node := g.Node(b)

		var fwIn, bwIn int
		for _, ei := range node.In {
			e := g.Edge(ei)
			if e.IsForward {
				e.WeightForward = 1
				fwIn++
			}
			if e.IsBackward {
				e.WeightBackward = 1
				bwIn++
			}
		}

		// Out-edges split by whether the target comes later or earlier in
		// the sequence; only non-unary nodes have any.
		var fwOut, bwOut int
		for _, ei := range node.Out {
			if g.Edge(ei).To > b {
				fwOut++
			} else {
				bwOut++
			}
		}

		totalIn := len(node.In)
		wf, err := nodeWeight(fwOut, fwIn, bwIn, totalIn, blend, oppositeSlack)
		if err != nil {
			return nil, err
		}
		wb, err := nodeWeight(bwOut, bwIn, fwIn, totalIn, blend, oppositeSlack)
		if err != nil {
			return nil, err
		}
		node.WeightForward, node.WeightBackward = wf, wb
	}

	return seq, nil
}

// nodeWeight combines the directional edge counts of one node into its
// splitting weight. The slack term is what blend scales: the unflagged
// in-edge remainder by default, the opposite direction's in-weight with
// oppositeSlack. A zero result is floored to one so every scheduled node
// keeps a usable denominator.
func nodeWeight(dirOut, dirIn, otherIn, totalIn int, blend float64, oppositeSlack bool) (int16, error) {
	slack := (totalIn - dirIn) - dirIn
	if oppositeSlack {
		slack = otherIn - dirIn
	}
	if slack < 0 {
		slack = 0
	}

	w := dirOut + dirIn + int(blend*float64(slack))
	if w == 0 {
		w = 1
	}
	if w > math.MaxInt16 {
		return 0, ErrWeightOverflow
	}

	return int16(w), nil
}
