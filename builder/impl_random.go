// SPDX-License-Identifier: MIT
// Package: srmp/builder
//
// impl_random.go - SparsePairs constructor (Erdos-Renyi style links).
//
// Contract:
//   - Network has >= 2 variables (else ErrTooFewVariables).
//   - 0 <= density <= 1 (else ErrInvalidDensity).
//   - Visits pairs (i, j), i < j, in lexicographic order; one RNG draw
//     per pair decides membership, then accepted pairs draw their table.
//     Same seed and density reproduce the same network.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/srmp/cfn"
)

const methodSparsePairs = "SparsePairs"

// SparsePairs returns a Constructor linking each variable pair
// independently with the given probability.
func SparsePairs(density float64) Constructor {
	return func(net *cfn.Network, cfg builderConfig) error {
		if density < 0 || density > 1 || math.IsNaN(density) {
			return fmt.Errorf("%s: density %v: %w", methodSparsePairs, density, ErrInvalidDensity)
		}
		n := net.NumVariables()
		if n < 2 {
			return fmt.Errorf("%s: %d variables: %w", methodSparsePairs, n, ErrTooFewVariables)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= density {
					continue
				}
				if err := addPair(net, cfg, methodSparsePairs, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
