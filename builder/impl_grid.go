// SPDX-License-Identifier: MIT
// Package: srmp/builder
//
// impl_grid.go - GridPotts constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right and bottom links per
//     cell), variables row-major: cell (r, c) is variable r*cols+c.
//   - Each link is a Potts table: 0 on the diagonal, one shared penalty
//     lambda = coupling*U[0,1) off it, drawn per link.
//
// Determinism:
//   - Stable link order: for each cell (row-major), Right then Bottom.
//   - One RNG draw per link, before the table is laid out.

package builder

import (
	"fmt"

	"github.com/katalvlaran/srmp/cfn"
)

const methodGridPotts = "GridPotts"

// GridPotts returns a Constructor that links a rows x cols grid with
// Potts tables. The network must hold exactly rows*cols variables.
func GridPotts(rows, cols int) Constructor {
	return func(net *cfn.Network, cfg builderConfig) error {
		// 1) Shape checks before any mutation.
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodGridPotts, rows, cols, ErrTooFewVariables)
		}
		if net.NumVariables() != rows*cols {
			return fmt.Errorf("%s: %d variables for a %dx%d grid: %w",
				methodGridPotts, net.NumVariables(), rows, cols, ErrShape)
		}

		// 2) Emit links cell by cell: right neighbor, then bottom.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addPotts(net, cfg, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addPotts(net, cfg, u, u+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// addPotts attaches one Potts table over (u, v): zero when labels agree,
// a per-link lambda when they differ.
func addPotts(net *cfn.Network, cfg builderConfig, u, v int) error {
	ku, kv := net.Domain(u), net.Domain(v)
	lambda := cfg.coupling * cfg.rng.Float64()
	table := make([]float64, ku*kv)
	for a := 0; a < ku; a++ {
		for b := 0; b < kv; b++ {
			if a != b {
				table[a*kv+b] = lambda
			}
		}
	}
	if _, err := net.AddFactor([]int{u, v}, table); err != nil {
		return fmt.Errorf("%s: pair (%d,%d): %w", methodGridPotts, u, v, err)
	}
	return nil
}
