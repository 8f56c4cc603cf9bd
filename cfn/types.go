// SPDX-License-Identifier: MIT

// types.go holds the factor and solution value types plus the package
// sentinels. The Network container and its build API live in network.go.

package cfn

import (
	"errors"

	"github.com/katalvlaran/srmp/stride"
)

// Unlabeled marks a variable that has not been assigned a label yet.
const Unlabeled = -1

// Sentinel errors reported by the build API and energy evaluation.
var (
	// ErrDomain signals a zero or negative domain size.
	ErrDomain = errors.New("cfn: non-positive domain size")
	// ErrVariable signals a variable id outside the network.
	ErrVariable = errors.New("cfn: variable id out of range")
	// ErrScope signals an empty, unsorted or duplicated factor scope.
	ErrScope = errors.New("cfn: scope must list distinct variables in increasing order")
	// ErrTable signals a cost table whose length disagrees with the scope.
	ErrTable = errors.New("cfn: table length does not match the scope")
	// ErrLabeling signals an incomplete or out-of-range solution.
	ErrLabeling = errors.New("cfn: labeling incomplete or out of range")
)

// Factor is one cost term over a scope of variables. Table is dense and
// row-major over Dims (last variable fastest); a nil Table reads as all
// zeros. Factors are created by Network.AddFactor and must not be mutated
// by callers afterwards.
type Factor struct {
	Variables []int     // scope, strictly increasing variable ids
	Dims      []int     // domain size per scope variable (aligned)
	Table     []float64 // costs, len == stride.Size(Dims); nil == all zero
}

// Arity returns the number of scope variables.
func (f *Factor) Arity() int { return len(f.Variables) }

// IsUnary reports whether the factor covers exactly one variable.
func (f *Factor) IsUnary() bool { return len(f.Variables) == 1 }

// Size returns the number of table entries the scope demands.
func (f *Factor) Size() int { return stride.Size(f.Dims) }

// Cost returns the factor's cost under a complete solution. Contract: sol
// is complete and in range for every scope variable (Energy validates).
func (f *Factor) Cost(sol Solution) float64 {
	if f.Table == nil {
		return 0
	}
	labels := make([]int, len(f.Variables))
	for i, v := range f.Variables {
		labels[i] = sol[v]
	}
	return f.Table[stride.Index(f.Dims, labels)]
}

// Solution assigns one label per variable; Unlabeled marks open variables.
type Solution []int

// NewSolution returns an all-Unlabeled solution over n variables.
func NewSolution(n int) Solution {
	s := make(Solution, n)
	for i := range s {
		s[i] = Unlabeled
	}
	return s
}

// Complete reports whether every variable carries a label.
func (s Solution) Complete() bool {
	for _, l := range s {
		if l == Unlabeled {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the solution.
func (s Solution) Clone() Solution {
	c := make(Solution, len(s))
	copy(c, s)
	return c
}
