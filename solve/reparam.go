// SPDX-License-Identifier: MIT

// reparam.go holds the message algebra: node reparameterization, the
// min-convolving send along an edge, and its label-pinned variant used
// while extracting solutions. All heavy buffers live in Scratch and are
// allocated once per solver.

package solve

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/relax"
)

// Scratch is the reusable working memory of one solver. A single Scratch
// serves any number of passes over the graph it was sized for, but must
// not be shared between concurrent passes.
type Scratch struct {
	theta []float64 // node-sized accumulator for reparameterized costs
	msg   []float64 // message-sized buffer for pinned sends
	star  []float64 // node-sized accumulator for pinned reparameterization

	odo    []odoVar // odometer construction buffer
	digits []int    // odometer state / decoded labels
	best   []int    // best labeling digits seen by an argmin
}

// NewScratch sizes working memory for passes over g.
func NewScratch(g *relax.Graph) *Scratch {
	maxArity := 1
	for i := 0; i < g.NumNodes(); i++ {
		if a := g.Node(i).Arity(); a > maxArity {
			maxArity = a
		}
	}

	return &Scratch{
		theta:  make([]float64, g.MaxTableSize()),
		msg:    make([]float64, g.MaxMessageSize()),
		star:   make([]float64, g.MaxTableSize()),
		odo:    make([]odoVar, 0, maxArity),
		digits: make([]int, maxArity),
		best:   make([]int, maxArity),
	}
}

// odoVar is one free variable of an odometer enumeration: its domain size
// and the index steps one increment moves in the source table (k) and in
// the target message (kb, zero when the variable is absent from the
// target).
type odoVar struct {
	v      int // global variable id
	dim    int // domain size
	kStep  int // stride in the source table
	kbStep int // stride in the target message
}

// reparam fills s.theta with the reparameterized costs of node b: the cost
// table plus all incoming messages, minus every outgoing message spread
// over the table, except the one on skip. Passing skip == nil yields the
// node's full reparameterization; passing an outgoing edge yields the
// send base for that edge.
func reparam(g *relax.Graph, b int, skip *relax.Edge, s *Scratch) []float64 {
	node := g.Node(b)
	theta := s.theta[:node.Size()]
	if t := node.Costs(); t != nil {
		copy(theta, t)
	} else {
		clear(theta)
	}

	for _, ei := range node.In {
		floats.Add(theta, g.Edge(ei).Msg)
	}
	for _, ei := range node.Out {
		if e := g.Edge(ei); e != skip {
			spread(theta, e, e.Msg, -1)
		}
	}

	return theta
}

// spread adds sign*m[b] to every source-table entry that maps onto target
// labeling b, walking the edge's cached offset split.
func spread(theta []float64, e *relax.Edge, m []float64, sign float64) {
	for bi, off := range e.TB {
		v := sign * m[bi]
		for _, co := range e.TC {
			theta[off+co] += v
		}
	}
}

// send recomputes the message on e from the source's current
// reparameterization: each target labeling receives the minimum of the
// compatible source entries, the whole message is shifted so its minimum
// is zero, and the shift is returned. The previous message content is
// overwritten; it already participates through the reparameterization.
func send(g *relax.Graph, e *relax.Edge, s *Scratch) float64 {
	theta := reparam(g, e.From, e, s)

	for bi, off := range e.TB {
		best := theta[off+e.TC[0]]
		for _, co := range e.TC[1:] {
			if v := theta[off+co]; v < best {
				best = v
			}
		}
		e.Msg[bi] = best
	}

	delta := floats.Min(e.Msg)
	floats.AddConst(-delta, e.Msg)

	return delta
}

// sendRestricted computes into s.msg the message e would carry with the
// labels already assigned in sol pinned in place. Only source entries
// consistent with the pinned labels are minimized over; target entries no
// pinned-consistent source entry maps to stay +Inf and must not be read.
func sendRestricted(g *relax.Graph, e *relax.Edge, sol cfn.Solution, s *Scratch) []float64 {
	theta := reparam(g, e.From, e, s)
	src := g.Node(e.From).Factor
	dst := g.Node(e.To).Factor

	out := s.msg[:g.Node(e.To).Size()]
	for i := range out {
		out[i] = math.Inf(1)
	}

	// Walk the source scope last to first, building strides in the source
	// table (k) and the target message (kb) in tandem. Labeled variables
	// pin both bases; unlabeled ones become odometer digits.
	odo := s.odo[:0]
	baseK, baseKB := 0, 0
	kF, kbF := 1, 1
	t := len(dst.Variables) - 1
	for i := len(src.Variables) - 1; i >= 0; i-- {
		v := src.Variables[i]
		kb := 0
		if t >= 0 && dst.Variables[t] == v {
			kb = kbF
			kbF *= dst.Dims[t]
			t--
		}
		if l := sol[v]; l >= 0 {
			baseK += l * kF
			baseKB += l * kb
		} else {
			odo = append(odo, odoVar{v: v, dim: src.Dims[i], kStep: kF, kbStep: kb})
		}
		kF *= src.Dims[i]
	}

	// Enumerate every labeling of the free variables, folding each source
	// entry into its target slot.
	digits := s.digits[:len(odo)]
	clear(digits)
	k, kb := baseK, baseKB
	for {
		if theta[k] < out[kb] {
			out[kb] = theta[k]
		}
		j := 0
		for ; j < len(odo); j++ {
			digits[j]++
			k += odo[j].kStep
			kb += odo[j].kbStep
			if digits[j] < odo[j].dim {
				break
			}
			digits[j] = 0
			k -= odo[j].dim * odo[j].kStep
			kb -= odo[j].dim * odo[j].kbStep
		}
		if j == len(odo) {
			break
		}
	}

	return out
}
