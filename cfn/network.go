// SPDX-License-Identifier: MIT

// network.go holds the Network container, its build API and energy
// evaluation. Value types and sentinels live in types.go.

package cfn

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/srmp/stride"
)

// Network is a cost-function network: per-variable domain sizes, an ordered
// factor list deduplicated by scope, and a constant energy offset. The zero
// value is not usable; construct through New.
type Network struct {
	domains  []int          // domain size per variable id
	factors  []*Factor      // first-insertion order, one factor per scope
	byScope  map[string]int // scope key → index into factors
	constant float64        // nullary energy offset
}

// New constructs a network over the given domain sizes (variable i gets
// domains[i]). Returns ErrDomain on any non-positive size.
func New(domains []int) (*Network, error) {
	n := &Network{byScope: make(map[string]int)}
	for _, d := range domains {
		if _, err := n.AddVariable(d); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// AddVariable appends one variable with the given domain size and returns
// its id (ids are dense, starting at 0). Returns ErrDomain on size <= 0.
func (n *Network) AddVariable(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("cfn.AddVariable: size %d: %w", size, ErrDomain)
	}
	n.domains = append(n.domains, size)
	return len(n.domains) - 1, nil
}

// AddFactor adds a cost term over the given scope and returns the factor
// that now carries it.
//
// Contracts:
//   - vars lists distinct, known variable ids in strictly increasing order.
//   - table is nil (all-zero costs) or has exactly one entry per labeling
//     of the scope, row-major with the last variable fastest.
//   - the table is copied; the caller keeps ownership of its slice.
//
// A scope that already exists is not duplicated: the new costs fold into
// the existing factor by elementwise addition, which leaves every energy
// unchanged and keeps one factor per scope for downstream consumers.
//
// Errors: ErrScope, ErrVariable, ErrTable.
func (n *Network) AddFactor(vars []int, table []float64) (*Factor, error) {
	// 1) Scope validation: known ids, strictly increasing.
	if len(vars) == 0 {
		return nil, fmt.Errorf("cfn.AddFactor: empty scope: %w", ErrScope)
	}
	for i, v := range vars {
		if v < 0 || v >= len(n.domains) {
			return nil, fmt.Errorf("cfn.AddFactor: variable %d: %w", v, ErrVariable)
		}
		if i > 0 && vars[i-1] >= v {
			return nil, fmt.Errorf("cfn.AddFactor: scope %v: %w", vars, ErrScope)
		}
	}

	// 2) Table length against the scope's labeling count.
	dims := make([]int, len(vars))
	for i, v := range vars {
		dims[i] = n.domains[v]
	}
	size := stride.Size(dims)
	if table != nil && len(table) != size {
		return nil, fmt.Errorf("cfn.AddFactor: %d entries for a scope of %d: %w",
			len(table), size, ErrTable)
	}

	// 3) Fold into an existing same-scope factor, if any.
	key := scopeKey(vars)
	if at, ok := n.byScope[key]; ok {
		f := n.factors[at]
		if table != nil {
			if f.Table == nil {
				f.Table = make([]float64, size)
			}
			floats.Add(f.Table, table)
		}
		return f, nil
	}

	// 4) Fresh factor, local copies of scope and table.
	f := &Factor{Variables: append([]int(nil), vars...), Dims: dims}
	if table != nil {
		f.Table = append([]float64(nil), table...)
	}
	n.byScope[key] = len(n.factors)
	n.factors = append(n.factors, f)
	return f, nil
}

// AddUnary adds (or folds) a unary cost term over variable v. The costs
// slice must have exactly one entry per label of v.
func (n *Network) AddUnary(v int, costs []float64) (*Factor, error) {
	return n.AddFactor([]int{v}, costs)
}

// AddConstant accumulates a nullary energy offset. It participates in
// Energy and seeds the solver's initial lower bound.
func (n *Network) AddConstant(c float64) { n.constant += c }

// Constant returns the accumulated nullary energy offset.
func (n *Network) Constant() float64 { return n.constant }

// NumVariables returns the number of variables.
func (n *Network) NumVariables() int { return len(n.domains) }

// Domain returns the domain size of variable v. Contract: v is a known id.
func (n *Network) Domain(v int) int { return n.domains[v] }

// Domains returns a copy of the per-variable domain sizes.
func (n *Network) Domains() []int { return append([]int(nil), n.domains...) }

// NumFactors returns the number of distinct-scope factors.
func (n *Network) NumFactors() int { return len(n.factors) }

// Factors returns the factors in first-insertion order. The slice is a
// copy; the factors themselves are shared and must not be mutated.
func (n *Network) Factors() []*Factor { return append([]*Factor(nil), n.factors...) }

// UnaryFactor returns the unary factor over v, or nil when no unary costs
// were ever added for it.
func (n *Network) UnaryFactor(v int) *Factor {
	if v < 0 || v >= len(n.domains) {
		return nil
	}
	if at, ok := n.byScope[strconv.Itoa(v)]; ok {
		return n.factors[at]
	}
	return nil
}

// Energy evaluates the total energy of a complete solution: the constant
// offset plus every factor's cost under sol.
//
// Errors: ErrLabeling when sol has the wrong length, leaves a variable
// Unlabeled, or assigns a label outside its domain.
func (n *Network) Energy(sol Solution) (float64, error) {
	if len(sol) != len(n.domains) {
		return 0, fmt.Errorf("cfn.Energy: %d labels for %d variables: %w",
			len(sol), len(n.domains), ErrLabeling)
	}
	for v, l := range sol {
		if l < 0 || l >= n.domains[v] {
			return 0, fmt.Errorf("cfn.Energy: variable %d label %d: %w", v, l, ErrLabeling)
		}
	}
	e := n.constant
	for _, f := range n.factors {
		e += f.Cost(sol)
	}
	return e, nil
}

// scopeKey renders a scope as a map key ("1,4,7").
func scopeKey(vars []int) string {
	var b strings.Builder
	for i, v := range vars {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
