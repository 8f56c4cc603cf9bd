// SPDX-License-Identifier: MIT

// Package cfn models discrete cost-function networks: variables with finite
// domains, factors with dense row-major cost tables, and complete labelings
// with their total energy.
//
// Model:
//
//   - A Network owns the domain sizes and an ordered factor list. Factors
//     are added through the build API; a factor's scope lists distinct
//     variables in strictly increasing order, and its table (if present)
//     has exactly one entry per labeling of the scope, last variable
//     varying fastest. A nil table reads as all zeros.
//   - Adding a factor whose scope already exists folds the new costs into
//     the existing table by elementwise addition: the energy is a sum over
//     factors, so the fold never changes it, and downstream consumers see
//     at most one factor per scope.
//   - A constant (nullary) energy offset is tracked separately via
//     AddConstant and participates in Energy.
//   - A Solution assigns one label per variable; Unlabeled (-1) marks
//     variables not decided yet.
//
// Determinism:
//
//   - Factors iterate in first-insertion order, merges notwithstanding.
//
// Errors:
//
//   - ErrDomain: a domain size is zero or negative.
//   - ErrVariable: a variable id is outside the network.
//   - ErrScope: a scope is empty, unsorted, or repeats a variable.
//   - ErrTable: a table length disagrees with the scope's labeling count.
//   - ErrLabeling: a solution is incomplete or holds an out-of-range label.
package cfn
