// SPDX-License-Identifier: MIT

package cfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srmp/cfn"
)

// TestNew_RejectsBadDomain checks domain-size validation at construction.
func TestNew_RejectsBadDomain(t *testing.T) {
	_, err := cfn.New([]int{2, 0, 3})
	assert.ErrorIs(t, err, cfn.ErrDomain, "zero domain must be rejected")

	_, err = cfn.New([]int{-1})
	assert.ErrorIs(t, err, cfn.ErrDomain, "negative domain must be rejected")

	n, err := cfn.New([]int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, n.NumVariables())
	assert.Equal(t, 3, n.Domain(1))
}

// TestAddFactor_Validation drives every build-time sentinel.
func TestAddFactor_Validation(t *testing.T) {
	n, err := cfn.New([]int{2, 3, 4})
	require.NoError(t, err)

	cases := []struct {
		name  string
		vars  []int
		table []float64
		want  error
	}{
		{"empty scope", nil, nil, cfn.ErrScope},
		{"unknown variable", []int{0, 3}, nil, cfn.ErrVariable},
		{"negative variable", []int{-1}, nil, cfn.ErrVariable},
		{"unsorted scope", []int{1, 0}, nil, cfn.ErrScope},
		{"repeated variable", []int{1, 1}, nil, cfn.ErrScope},
		{"short table", []int{0, 1}, []float64{1, 2, 3}, cfn.ErrTable},
		{"long table", []int{2}, []float64{1, 2, 3, 4, 5}, cfn.ErrTable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := n.AddFactor(tc.vars, tc.table)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestAddFactor_FoldsSameScope checks that a repeated scope folds by
// elementwise addition instead of duplicating the factor.
func TestAddFactor_FoldsSameScope(t *testing.T) {
	n, err := cfn.New([]int{2, 2})
	require.NoError(t, err)

	f1, err := n.AddFactor([]int{0, 1}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	f2, err := n.AddFactor([]int{0, 1}, []float64{10, 20, 30, 40})
	require.NoError(t, err)

	assert.Same(t, f1, f2, "same scope must reuse the factor")
	assert.Equal(t, 1, n.NumFactors())
	assert.Equal(t, []float64{11, 22, 33, 44}, f1.Table)

	// Folding onto a factor that started with nil costs materializes zeros.
	g, err := n.AddFactor([]int{0}, nil)
	require.NoError(t, err)
	assert.Nil(t, g.Table)
	_, err = n.AddFactor([]int{0}, []float64{5, 7})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7}, g.Table)

	// Folding nil costs is a no-op.
	_, err = n.AddFactor([]int{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7}, g.Table)
}

// TestAddFactor_ClonesTable checks that the network is isolated from later
// mutation of the caller's slice.
func TestAddFactor_ClonesTable(t *testing.T) {
	n, err := cfn.New([]int{2})
	require.NoError(t, err)

	costs := []float64{1, 2}
	f, err := n.AddUnary(0, costs)
	require.NoError(t, err)

	costs[0] = 99
	assert.Equal(t, []float64{1, 2}, f.Table, "stored table must be a copy")
}

// TestUnaryFactor_Lookup checks the per-variable unary accessor.
func TestUnaryFactor_Lookup(t *testing.T) {
	n, err := cfn.New([]int{2, 3})
	require.NoError(t, err)

	_, err = n.AddUnary(1, []float64{4, 5, 6})
	require.NoError(t, err)

	require.NotNil(t, n.UnaryFactor(1))
	assert.Equal(t, []float64{4, 5, 6}, n.UnaryFactor(1).Table)
	assert.Nil(t, n.UnaryFactor(0), "no unary costs were added for variable 0")
	assert.Nil(t, n.UnaryFactor(9), "unknown variable has no unary factor")
}

// TestEnergy evaluates a two-variable network by hand:
// unary(0)=[1,2], pair table 2×3 = 0..5, constant 0.5, sol=(1,2).
func TestEnergy(t *testing.T) {
	n, err := cfn.New([]int{2, 3})
	require.NoError(t, err)

	_, err = n.AddUnary(0, []float64{1, 2})
	require.NoError(t, err)
	_, err = n.AddFactor([]int{0, 1}, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	n.AddConstant(0.5)

	e, err := n.Energy(cfn.Solution{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2+5+0.5, e, 1e-12, "unary 2, pair entry (1,2)=5, constant 0.5")

	e, err = n.Energy(cfn.Solution{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1+0+0.5, e, 1e-12)
}

// TestEnergy_Errors checks labeling validation.
func TestEnergy_Errors(t *testing.T) {
	n, err := cfn.New([]int{2, 3})
	require.NoError(t, err)

	_, err = n.Energy(cfn.Solution{0})
	assert.ErrorIs(t, err, cfn.ErrLabeling, "wrong length")

	_, err = n.Energy(cfn.Solution{0, cfn.Unlabeled})
	assert.ErrorIs(t, err, cfn.ErrLabeling, "incomplete labeling")

	_, err = n.Energy(cfn.Solution{0, 3})
	assert.ErrorIs(t, err, cfn.ErrLabeling, "label outside the domain")
}

// TestEnergy_NilTableReadsZero checks the all-zero convention.
func TestEnergy_NilTableReadsZero(t *testing.T) {
	n, err := cfn.New([]int{2, 2})
	require.NoError(t, err)
	_, err = n.AddFactor([]int{0, 1}, nil)
	require.NoError(t, err)

	e, err := n.Energy(cfn.Solution{1, 1})
	require.NoError(t, err)
	assert.Zero(t, e)
}

// TestSolution_Helpers covers the small Solution API.
func TestSolution_Helpers(t *testing.T) {
	s := cfn.NewSolution(3)
	assert.Equal(t, cfn.Solution{cfn.Unlabeled, cfn.Unlabeled, cfn.Unlabeled}, s)
	assert.False(t, s.Complete())

	s[0], s[1], s[2] = 1, 0, 2
	assert.True(t, s.Complete())

	c := s.Clone()
	c[0] = 0
	assert.Equal(t, 1, s[0], "clone must not alias the original")
}
