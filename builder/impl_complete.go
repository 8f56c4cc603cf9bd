// SPDX-License-Identifier: MIT
// Package: srmp/builder
//
// impl_complete.go - AllPairs constructor.
//
// Contract:
//   - Network has >= 2 variables (else ErrTooFewVariables).
//   - Adds one random table per pair (i, j), i < j, in lexicographic
//     order, each drawn from [0, coupling).

package builder

import (
	"fmt"

	"github.com/katalvlaran/srmp/cfn"
)

const methodAllPairs = "AllPairs"

// AllPairs returns a Constructor linking every pair of variables.
func AllPairs() Constructor {
	return func(net *cfn.Network, cfg builderConfig) error {
		n := net.NumVariables()
		if n < 2 {
			return fmt.Errorf("%s: %d variables: %w", methodAllPairs, n, ErrTooFewVariables)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addPair(net, cfg, methodAllPairs, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
