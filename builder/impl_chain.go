// SPDX-License-Identifier: MIT
// Package: srmp/builder
//
// impl_chain.go - ChainLinks constructor.
//
// Contract:
//   - Network has >= 2 variables (else ErrTooFewVariables).
//   - Adds one random pairwise table per consecutive pair (i, i+1), in
//     ascending i, each drawn from [0, coupling).

package builder

import (
	"fmt"

	"github.com/katalvlaran/srmp/cfn"
)

const methodChainLinks = "ChainLinks"

// ChainLinks returns a Constructor linking consecutive variables.
func ChainLinks() Constructor {
	return func(net *cfn.Network, cfg builderConfig) error {
		n := net.NumVariables()
		if n < 2 {
			return fmt.Errorf("%s: %d variables: %w", methodChainLinks, n, ErrTooFewVariables)
		}
		for i := 0; i+1 < n; i++ {
			if err := addPair(net, cfg, methodChainLinks, i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}
