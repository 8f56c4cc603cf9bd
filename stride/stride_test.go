// SPDX-License-Identifier: MIT

package stride_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srmp/stride"
)

// TestOffsets_MiddleSingleton pins the canonical single-variable case:
// super (0,1,2) with sizes (3,4,5), sub (1). The stride of variable 1 is the
// product of everything after it (5), so the table walks 0,5,10,15.
func TestOffsets_MiddleSingleton(t *testing.T) {
	tb, err := stride.Offsets([]int{0, 1, 2}, []int{3, 4, 5}, []int{1})
	require.NoError(t, err, "valid subset must not fail")
	assert.Equal(t, []int{0, 5, 10, 15}, tb, "stride of the middle variable is 5")
}

// TestOffsets_SkipMiddle pins the two-variable case that skips the middle
// variable: super (0,1,2) with sizes (5,4,3), sub (0,2). Variable 0 strides
// by 12, variable 2 by 1, and the last sub variable advances fastest.
func TestOffsets_SkipMiddle(t *testing.T) {
	tb, err := stride.Offsets([]int{0, 1, 2}, []int{5, 4, 3}, []int{0, 2})
	require.NoError(t, err, "valid subset must not fail")
	want := []int{0, 1, 2, 12, 13, 14, 24, 25, 26, 36, 37, 38, 48, 49, 50}
	assert.Equal(t, want, tb, "rows of 3 offset by 12 per label of variable 0")
}

// TestOffsets_FullScope checks that sub == super enumerates the dense table
// in its native order, i.e. the offsets are exactly 0..Size-1.
func TestOffsets_FullScope(t *testing.T) {
	super := []int{4, 7, 9}
	dims := []int{3, 4, 5}
	tb, err := stride.Offsets(super, dims, super)
	require.NoError(t, err)
	require.Len(t, tb, 60)
	for r, off := range tb {
		assert.Equal(t, r, off, "full-scope offsets are the identity")
	}
}

// TestOffsets_EmptySub checks the degenerate empty sub-scope: exactly one
// labeling (the empty one) selecting offset 0.
func TestOffsets_EmptySub(t *testing.T) {
	tb, err := stride.Offsets([]int{0, 1}, []int{2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, tb, "the empty scope has the single offset 0")
}

// TestOffsets_Errors drives every sentinel through a malformed input.
func TestOffsets_Errors(t *testing.T) {
	cases := []struct {
		name  string
		super []int
		dims  []int
		sub   []int
		want  error
	}{
		{"length mismatch", []int{0, 1, 2}, []int{3, 4}, []int{1}, stride.ErrShape},
		{"zero domain", []int{0, 1}, []int{3, 0}, []int{0}, stride.ErrDomain},
		{"negative domain", []int{0, 1}, []int{3, -2}, []int{0}, stride.ErrDomain},
		{"foreign variable", []int{0, 1, 2}, []int{3, 4, 5}, []int{3}, stride.ErrNotSubset},
		{"repeated variable", []int{0, 1, 2}, []int{3, 4, 5}, []int{1, 1}, stride.ErrNotSubset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := stride.Offsets(tc.super, tc.dims, tc.sub)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSplit_Bijection checks the decomposition contract on a spread of
// scope shapes: every flat index of the super table is hit by exactly one
// (b, c) pair of the TB/TC split.
func TestSplit_Bijection(t *testing.T) {
	cases := []struct {
		name  string
		super []int
		dims  []int
		sub   []int
	}{
		{"middle singleton", []int{0, 1, 2}, []int{3, 4, 5}, []int{1}},
		{"skip middle", []int{0, 1, 2}, []int{5, 4, 3}, []int{0, 2}},
		{"full scope", []int{0, 1, 2}, []int{2, 2, 2}, []int{0, 1, 2}},
		{"empty sub", []int{0, 1}, []int{4, 3}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tb, tc2, err := stride.Split(tc.super, tc.dims, tc.sub)
			require.NoError(t, err)

			size := stride.Size(tc.dims)
			require.Equal(t, size, len(tb)*len(tc2), "|TB|×|TC| must equal the table size")

			hit := make([]bool, size)
			for _, b := range tb {
				for _, c := range tc2 {
					f := b + c
					require.GreaterOrEqual(t, f, 0)
					require.Less(t, f, size, "decomposed index stays inside the table")
					require.False(t, hit[f], "index %d produced twice", f)
					hit[f] = true
				}
			}
			for f, ok := range hit {
				assert.True(t, ok, "index %d never produced", f)
			}
		})
	}
}

// TestStrides pins the row-major convention: last variable fastest.
func TestStrides(t *testing.T) {
	assert.Equal(t, []int{20, 5, 1}, stride.Strides([]int{3, 4, 5}))
	assert.Equal(t, []int{1}, stride.Strides([]int{7}))
	assert.Empty(t, stride.Strides(nil))
}

// TestIndexDecode exercises the mixed-radix pair on every rank of a small
// shape plus a couple of hand-computed spot checks.
func TestIndexDecode(t *testing.T) {
	dims := []int{3, 4, 5}
	out := make([]int, 3)
	for r := 0; r < stride.Size(dims); r++ {
		stride.Decode(dims, r, out)
		assert.Equal(t, r, stride.Index(dims, out), "Decode then Index is the identity")
	}
	assert.Equal(t, 27, stride.Index(dims, []int{1, 1, 2}), "1*20 + 1*5 + 2")
	assert.Equal(t, 59, stride.Index(dims, []int{2, 3, 4}), "last rank")
}

// TestComplement checks order preservation and the trivial cases.
func TestComplement(t *testing.T) {
	assert.Equal(t, []int{0, 2}, stride.Complement([]int{0, 1, 2}, []int{1}))
	assert.Equal(t, []int{}, stride.Complement([]int{3, 5}, []int{3, 5}))
	assert.Equal(t, []int{3, 5}, stride.Complement([]int{3, 5}, nil))
}

// TestSize covers the empty-scope convention used across the module.
func TestSize(t *testing.T) {
	assert.Equal(t, 1, stride.Size(nil))
	assert.Equal(t, 60, stride.Size([]int{3, 4, 5}))
}
