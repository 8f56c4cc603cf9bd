// SPDX-License-Identifier: MIT

// Package stride computes flat-offset tables for sub-scopes of dense,
// row-major factor tables, the combinatorial core of message passing.
//
// What:
//
//   - Offsets builds, for a sub-scope B of a super-scope A, the table of
//     flat offsets into A's dense table that B's labelings select.
//   - Split builds the (TB, TC) pair for B and its complement C inside A,
//     so that every flat index of A's table decomposes uniquely as
//     TB[b] + TC[c].
//   - Strides, Index and Decode are the underlying mixed-radix helpers
//     (row-major, last variable fastest).
//
// Why:
//
//   - Min-marginalization over a sub-scope walks TB once and TC per entry;
//     no label tuples are ever materialized on the hot path.
//   - Tables are built once per edge and cached; passes touch integers only.
//
// Contracts:
//
//   - Domain sizes are strictly positive; super carries no duplicates.
//   - Offsets follows sub's own variable order, last variable fastest, and
//     always starts at offset 0.
//   - Integer arithmetic throughout; no floats anywhere in this package.
//
// Complexity:
//
//   - Offsets: O(|sub| × |super| + ∏ dims(sub)) time, O(∏ dims(sub)) memory.
//   - Split:   two Offsets calls.
//
// Errors:
//
//   - ErrShape: super and its domain-size slice differ in length.
//   - ErrDomain: a domain size is zero or negative.
//   - ErrNotSubset: sub mentions a variable absent from super, or twice.
package stride
