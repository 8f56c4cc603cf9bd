// SPDX-License-Identifier: MIT

// solution.go extracts variable labels during a pass. Labels are assigned
// greedily in sweep order: each node labels its free scope variables by
// minimizing its reparameterized costs under the labels pinned so far.

package solve

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/relax"
	"github.com/katalvlaran/srmp/stride"
)

// extract labels the free scope variables of node b, if any.
func extract(g *relax.Graph, b int, sol cfn.Solution, s *Scratch) {
	node := g.Node(b)
	free := 0
	for _, v := range node.Factor.Variables {
		if sol[v] < 0 {
			free++
		}
	}
	if free == 0 {
		return
	}

	theta := restrictedReparam(g, b, sol, s)
	argminTheta(theta, node.Factor.Variables, node.Factor.Dims, sol, s)
}

// restrictedReparam fills s.star with the reparameterization of node b for
// labeling: the cost table minus outgoing messages, plus each incoming
// message recomputed with the pinned labels of its source honored. Sources
// with no pinned variables, and fully pinned sources, contribute their
// stored message unchanged.
func restrictedReparam(g *relax.Graph, b int, sol cfn.Solution, s *Scratch) []float64 {
	node := g.Node(b)
	star := s.star[:node.Size()]
	if t := node.Costs(); t != nil {
		copy(star, t)
	} else {
		clear(star)
	}

	for _, ei := range node.Out {
		e := g.Edge(ei)
		spread(star, e, e.Msg, -1)
	}
	for _, ei := range node.In {
		e := g.Edge(ei)
		src := g.Node(e.From).Factor
		labeled := 0
		for _, v := range src.Variables {
			if sol[v] >= 0 {
				labeled++
			}
		}
		if labeled > 0 && labeled < len(src.Variables) {
			floats.Add(star, sendRestricted(g, e, sol, s))
		} else {
			floats.Add(star, e.Msg)
		}
	}

	return star
}

// argminTheta writes into sol the labels of the free variables of one
// scope that minimize theta under the labels already pinned. Entries
// inconsistent with the pinned labels are never read, so +Inf padding from
// restricted sends is harmless.
func argminTheta(theta []float64, vars, dims []int, sol cfn.Solution, s *Scratch) {
	pinned := false
	for _, v := range vars {
		if sol[v] >= 0 {
			pinned = true
			break
		}
	}

	// Nothing pinned: one flat argmin, decoded into labels.
	if !pinned {
		digits := s.digits[:len(vars)]
		stride.Decode(dims, floats.MinIdx(theta), digits)
		for i, v := range vars {
			sol[v] = digits[i]
		}

		return
	}

	// Mixed: pinned labels fix a base offset, free variables are
	// enumerated as odometer digits.
	odo := s.odo[:0]
	base, kF := 0, 1
	for i := len(vars) - 1; i >= 0; i-- {
		v := vars[i]
		if l := sol[v]; l >= 0 {
			base += l * kF
		} else {
			odo = append(odo, odoVar{v: v, dim: dims[i], kStep: kF})
		}
		kF *= dims[i]
	}
	if len(odo) == 0 {
		return
	}

	digits := s.digits[:len(odo)]
	clear(digits)
	best := s.best[:len(odo)]
	bestV := math.Inf(1)
	k := base
	for {
		if theta[k] < bestV {
			bestV = theta[k]
			copy(best, digits)
		}
		j := 0
		for ; j < len(odo); j++ {
			digits[j]++
			k += odo[j].kStep
			if digits[j] < odo[j].dim {
				break
			}
			digits[j] = 0
			k -= odo[j].dim * odo[j].kStep
		}
		if j == len(odo) {
			break
		}
	}

	for j, ov := range odo {
		sol[ov.v] = best[j]
	}
}
