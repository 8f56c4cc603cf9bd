// SPDX-License-Identifier: MIT
// Package: srmp/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (strict):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context with %w wrapping; sentinels stay bare.
//   - Builders never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVariables - a size parameter (n, rows, cols) is below the
// minimum for the requested shape.
var ErrTooFewVariables = errors.New("builder: parameter too small")

// ErrBadDomain - a domain size k < 1.
var ErrBadDomain = errors.New("builder: domain size out of range")

// ErrInvalidDensity - a link density outside the closed interval [0,1].
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrShape - a constructor's shape disagrees with the network it is
// applied to (GridPotts over a variable count that is not rows*cols).
var ErrShape = errors.New("builder: shape mismatch")
