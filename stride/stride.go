// SPDX-License-Identifier: MIT

// stride.go holds the offset-table construction (Offsets, Split) and the
// mixed-radix primitives (Strides, Index, Decode, Size) they build on.

package stride

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by table construction.
var (
	// ErrShape signals that super and superDims differ in length.
	ErrShape = errors.New("stride: variables and domain sizes length mismatch")
	// ErrDomain signals a zero or negative domain size.
	ErrDomain = errors.New("stride: non-positive domain size")
	// ErrNotSubset signals that sub is not a plain subset of super.
	ErrNotSubset = errors.New("stride: sub variables are not a subset of super")
)

// Strides returns the row-major strides of dims: the last variable varies
// fastest, so strides[len(dims)-1] == 1 and strides[i] == dims[i+1] *
// strides[i+1]. Contract: every dims[i] > 0 (not re-checked here).
func Strides(dims []int) []int {
	var (
		s    = make([]int, len(dims)) // result, one stride per variable
		prod = 1                      // running product of trailing dims
	)
	for i := len(dims) - 1; i >= 0; i-- {
		s[i] = prod
		prod *= dims[i]
	}
	return s
}

// Size returns the number of entries of a dense table over dims, i.e. the
// product of all domain sizes. Size(nil) == 1 (the empty scope has exactly
// one labeling).
func Size(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// Index flattens a full labeling of dims into its row-major rank
// (last variable fastest). Contract: len(labels) == len(dims) and
// 0 <= labels[i] < dims[i].
func Index(dims, labels []int) int {
	idx := 0
	for i, d := range dims {
		idx = idx*d + labels[i]
	}
	return idx
}

// Decode is the inverse of Index: it writes the mixed-radix digits of rank
// over dims into out. Contract: len(out) >= len(dims) and
// 0 <= rank < Size(dims).
func Decode(dims []int, rank int, out []int) {
	for i := len(dims) - 1; i >= 0; i-- {
		out[i] = rank % dims[i]
		rank /= dims[i]
	}
}

// Offsets builds the flat-offset table of the sub-scope sub inside the
// super-scope super whose domain sizes are superDims.
//
// Contracts:
//   - super lists distinct variable ids; superDims[i] is the domain size of
//     super[i] and every size is positive.
//   - sub lists distinct variable ids, each present in super; sub's own
//     order defines the enumeration (row-major, last variable fastest).
//
// The result has Size(dims(sub)) entries, starts at 0, and entry r is the
// flat offset into super's dense table selected by the labeling whose
// mixed-radix rank over dims(sub) is r. Offsets(super, superDims, nil)
// returns the one-entry table [0].
//
// Errors: ErrShape, ErrDomain, ErrNotSubset (see package doc).
func Offsets(super, superDims, sub []int) ([]int, error) {
	// 1) Shape and domain validation.
	if len(super) != len(superDims) {
		return nil, fmt.Errorf("stride.Offsets: %d variables vs %d sizes: %w",
			len(super), len(superDims), ErrShape)
	}
	for i, d := range superDims {
		if d <= 0 {
			return nil, fmt.Errorf("stride.Offsets: variable %d has size %d: %w",
				super[i], d, ErrDomain)
		}
	}

	// 2) Per-variable stride: scan super backward, multiplying the sizes of
	//    everything strictly after the match.
	var (
		subStr = make([]int, len(sub))        // stride of each sub variable in super's table
		subDim = make([]int, len(sub))        // domain size of each sub variable
		seen   = make(map[int]bool, len(sub)) // duplicate guard over sub
	)
	for i, v := range sub {
		if seen[v] {
			return nil, fmt.Errorf("stride.Offsets: variable %d repeated in sub: %w", v, ErrNotSubset)
		}
		seen[v] = true
		prod, found := 1, false
		for j := len(super) - 1; j >= 0; j-- {
			if super[j] == v {
				subStr[i], subDim[i], found = prod, superDims[j], true
				break
			}
			prod *= superDims[j]
		}
		if !found {
			return nil, fmt.Errorf("stride.Offsets: variable %d not in super: %w", v, ErrNotSubset)
		}
	}

	// 3) Odometer enumeration: advance the last sub variable fastest and
	//    carry leftward, maintaining the flat offset incrementally.
	var (
		size   = Size(subDim)            // number of sub labelings
		out    = make([]int, size)       // out[0] == 0 by construction
		digits = make([]int, len(sub))   // current mixed-radix labeling
		off    = 0                       // flat offset of digits in super's table
	)
	for r := 1; r < size; r++ {
		for j := len(sub) - 1; j >= 0; j-- {
			digits[j]++
			off += subStr[j]
			if digits[j] < subDim[j] {
				break
			}
			digits[j] = 0
			off -= subDim[j] * subStr[j]
		}
		out[r] = off
	}
	return out, nil
}

// Complement returns the variables of super that do not occur in sub,
// preserving super's order. It performs no validation.
func Complement(super, sub []int) []int {
	in := make(map[int]bool, len(sub))
	for _, v := range sub {
		in[v] = true
	}
	rest := make([]int, 0, len(super)-len(sub))
	for _, v := range super {
		if !in[v] {
			rest = append(rest, v)
		}
	}
	return rest
}

// Split builds the offset pair (tb, tc) of sub and its complement inside
// super. The pair decomposes super's table exactly: for every flat index f
// of the super table there is exactly one (b, c) with f == tb[b] + tc[c].
// len(tb) == Size(dims(sub)), len(tc) == Size(dims(complement)).
//
// Errors: the same sentinels as Offsets.
func Split(super, superDims, sub []int) (tb, tc []int, err error) {
	if tb, err = Offsets(super, superDims, sub); err != nil {
		return nil, nil, err
	}
	if tc, err = Offsets(super, superDims, Complement(super, sub)); err != nil {
		return nil, nil, err
	}
	return tb, tc, nil
}
