// SPDX-License-Identifier: MIT

// Package uai reads and writes cost-function networks in the UAI MARKOV
// model format (https://uaicompetition.github.io/uci-2022/file-formats/).
//
// Layout: the token stream "MARKOV", the variable count, one domain size
// per variable, the function count, one scope line per function (arity
// followed by variable ids), then per function its table size and that
// many row-major values. Tokens are whitespace-separated; line breaks are
// cosmetic and values may span lines.
//
// Deviations from the letter of the format are conservative:
//
//   - Scopes may list variables in any order; tables are re-indexed into
//     ascending variable order on read, so equal labelings keep equal
//     costs.
//   - Functions sharing a scope merge additively into one factor.
//
// ReadLG/WriteLG handle the .LG variant, which stores values in log space:
// reading exponentiates, writing takes logarithms. Writing a table with
// non-positive entries yields non-finite output.
//
// Errors: ErrModelType, ErrSyntax, ErrScope, ErrTable, each wrapped with
// the offending line number.
package uai
