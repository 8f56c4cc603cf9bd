// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srmp/builder"
	"github.com/katalvlaran/srmp/cfn"
)

func TestChain_Shape(t *testing.T) {
	net, err := builder.Chain(5, 3, builder.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, 5, net.NumVariables())
	assert.Equal(t, []int{3, 3, 3, 3, 3}, net.Domains())
	assert.Equal(t, 5+4, net.NumFactors(), "5 unaries plus 4 consecutive links")
	for v := 0; v < 5; v++ {
		require.NotNil(t, net.UnaryFactor(v), "unary on variable %d", v)
		assert.Len(t, net.UnaryFactor(v).Table, 3)
	}
}

func TestChain_DeterministicPerSeed(t *testing.T) {
	a, err := builder.Chain(6, 4, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Chain(6, 4, builder.WithSeed(42))
	require.NoError(t, err)
	c, err := builder.Chain(6, 4, builder.WithSeed(43))
	require.NoError(t, err)

	fa, fb, fc := a.Factors(), b.Factors(), c.Factors()
	require.Equal(t, len(fa), len(fb))
	require.Equal(t, len(fa), len(fc))
	differs := false
	for i := range fa {
		assert.Equal(t, fa[i].Variables, fb[i].Variables)
		assert.Equal(t, fa[i].Table, fb[i].Table, "same seed, factor %d", i)
		if !assert.ObjectsAreEqual(fa[i].Table, fc[i].Table) {
			differs = true
		}
	}
	assert.True(t, differs, "a different seed must change some table")
}

func TestGrid_PottsStructure(t *testing.T) {
	net, err := builder.Grid(2, 3, 3, builder.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 6, net.NumVariables())
	assert.Equal(t, 6+7, net.NumFactors(), "6 unaries, 4 right links, 3 bottom links")

	var pairs [][]int
	for _, f := range net.Factors() {
		if f.IsUnary() {
			continue
		}
		require.Len(t, f.Variables, 2)
		pairs = append(pairs, f.Variables)

		// Potts shape: zero diagonal, one shared off-diagonal penalty.
		k := f.Dims[1]
		lambda := f.Table[1]
		assert.GreaterOrEqual(t, lambda, 0.0)
		for a := 0; a < f.Dims[0]; a++ {
			for b := 0; b < k; b++ {
				if a == b {
					assert.Zero(t, f.Table[a*k+b], "diagonal of (%v)", f.Variables)
				} else {
					assert.Equal(t, lambda, f.Table[a*k+b], "off-diagonal of (%v)", f.Variables)
				}
			}
		}
	}
	assert.ElementsMatch(t,
		[][]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {0, 3}, {1, 4}, {2, 5}},
		pairs, "4-neighborhood of a 2x3 grid")
}

func TestComplete_LinkCount(t *testing.T) {
	net, err := builder.Complete(5, 2, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 5+10, net.NumFactors())
}

func TestRandom_DensityExtremes(t *testing.T) {
	empty, err := builder.Random(6, 2, 0, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 6, empty.NumFactors(), "density 0 keeps unaries only")

	full, err := builder.Random(6, 2, 1, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 6+15, full.NumFactors(), "density 1 is the complete graph")

	a, err := builder.Random(8, 3, 0.4, builder.WithSeed(11))
	require.NoError(t, err)
	b, err := builder.Random(8, 3, 0.4, builder.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, a.NumFactors(), b.NumFactors(), "same seed, same links")
}

func TestBuild_ComposesConstructors(t *testing.T) {
	net, err := builder.Build([]int{2, 2, 2}, []builder.Option{builder.WithSeed(9)},
		builder.Unaries(),
		builder.GridPotts(1, 3),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, net.NumFactors(), "a 1x3 grid is a chain of Potts links")
}

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build([]int{2, 2}, nil, nil)
	assert.ErrorIs(t, err, builder.ErrShape)
}

func TestGridPotts_ShapeMismatch(t *testing.T) {
	_, err := builder.Build([]int{2, 2}, nil, builder.GridPotts(2, 2))
	assert.ErrorIs(t, err, builder.ErrShape)
}

func TestBuilders_Validation(t *testing.T) {
	cases := []struct {
		name string
		run  func() (*cfn.Network, error)
		want error
	}{
		{"chain too short", func() (*cfn.Network, error) { return builder.Chain(1, 2) }, builder.ErrTooFewVariables},
		{"chain bad domain", func() (*cfn.Network, error) { return builder.Chain(3, 0) }, builder.ErrBadDomain},
		{"grid no rows", func() (*cfn.Network, error) { return builder.Grid(0, 5, 2) }, builder.ErrTooFewVariables},
		{"grid single cell", func() (*cfn.Network, error) { return builder.Grid(1, 1, 2) }, builder.ErrTooFewVariables},
		{"complete too short", func() (*cfn.Network, error) { return builder.Complete(1, 2) }, builder.ErrTooFewVariables},
		{"random density high", func() (*cfn.Network, error) { return builder.Random(4, 2, 1.5) }, builder.ErrInvalidDensity},
		{"random density low", func() (*cfn.Network, error) { return builder.Random(4, 2, -0.1) }, builder.ErrInvalidDensity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.run()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWithUnaryRange_Degenerate(t *testing.T) {
	net, err := builder.Chain(3, 2,
		builder.WithSeed(2),
		builder.WithUnaryRange(5, 5),
		builder.WithCoupling(0),
	)
	require.NoError(t, err)

	for _, f := range net.Factors() {
		if f.IsUnary() {
			assert.Equal(t, []float64{5, 5}, f.Table)
		} else {
			assert.Equal(t, []float64{0, 0, 0, 0}, f.Table)
		}
	}
}

func TestWithRand_SharesOneStream(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	a, err := builder.Chain(3, 2, builder.WithRand(r))
	require.NoError(t, err)
	b, err := builder.Chain(3, 2, builder.WithRand(r))
	require.NoError(t, err)

	differs := false
	for i, f := range a.Factors() {
		if !assert.ObjectsAreEqual(f.Table, b.Factors()[i].Table) {
			differs = true
		}
	}
	assert.True(t, differs, "a shared stream advances between builds")
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithUnaryRange(2, 1) })
	assert.Panics(t, func() { builder.WithUnaryRange(0, math.Inf(1)) })
	assert.Panics(t, func() { builder.WithUnaryRange(math.NaN(), 1) })
	assert.Panics(t, func() { builder.WithCoupling(-1) })
	assert.Panics(t, func() { builder.WithCoupling(math.NaN()) })
}
