// SPDX-License-Identifier: MIT

// cmd_gen.go - the gen subcommands: build a benchmark network and write
// it as a UAI model to --out or stdout.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/srmp/builder"
	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/uai"
)

func runGenChain(cmd *cobra.Command, args []string) error {
	opts, err := genOptions()
	if err != nil {
		return err
	}
	net, err := builder.Chain(flagChainN, flagK, opts...)
	if err != nil {
		return err
	}
	return writeModel(net)
}

func runGenGrid(cmd *cobra.Command, args []string) error {
	opts, err := genOptions()
	if err != nil {
		return err
	}
	net, err := builder.Grid(flagRows, flagCols, flagK, opts...)
	if err != nil {
		return err
	}
	return writeModel(net)
}

func runGenComplete(cmd *cobra.Command, args []string) error {
	opts, err := genOptions()
	if err != nil {
		return err
	}
	net, err := builder.Complete(flagComplN, flagK, opts...)
	if err != nil {
		return err
	}
	return writeModel(net)
}

func runGenRandom(cmd *cobra.Command, args []string) error {
	opts, err := genOptions()
	if err != nil {
		return err
	}
	net, err := builder.Random(flagRandN, flagK, flagDensity, opts...)
	if err != nil {
		return err
	}
	return writeModel(net)
}

// genOptions validates the shared gen flags; builder.WithCoupling panics
// on nonsense, which is the wrong register for user input.
func genOptions() ([]builder.Option, error) {
	if !(flagCoupling >= 0) {
		return nil, fmt.Errorf("coupling %v (need >= 0)", flagCoupling)
	}
	return []builder.Option{
		builder.WithSeed(flagSeed),
		builder.WithCoupling(flagCoupling),
	}, nil
}

func writeModel(net *cfn.Network) (err error) {
	w := io.Writer(os.Stdout)
	if flagOut != "" {
		f, cerr := os.Create(flagOut)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if e := f.Close(); err == nil {
				err = e
			}
		}()
		w = f
	}
	if flagLG {
		return uai.WriteLG(w, net)
	}
	return uai.Write(w, net)
}
