// SPDX-License-Identifier: MIT

// write.go renders a cfn.Network back into the MARKOV token stream, in a
// layout the reader (and other UAI tooling) accepts: preamble, one scope
// line per factor, then each table as a blank line, its size and its
// values.

package uai

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/srmp/cfn"
)

// Write renders net in the UAI MARKOV format. Factors appear in their
// insertion order; a factor that never received costs is written as an
// all-zero table. The nullary constant has no MARKOV syntax and is not
// written.
func Write(w io.Writer, net *cfn.Network) error { return write(w, net, false) }

// WriteLG renders the .LG variant: every value is written as its natural
// logarithm. Non-positive entries come out non-finite.
func WriteLG(w io.Writer, net *cfn.Network) error { return write(w, net, true) }

func write(w io.Writer, net *cfn.Network, lg bool) error {
	bw := bufio.NewWriter(w)

	// 1) Preamble.
	fmt.Fprintln(bw, "MARKOV")
	fmt.Fprintln(bw, net.NumVariables())
	fmt.Fprintln(bw, joinInts(net.Domains()))

	// 2) Scopes.
	factors := net.Factors()
	fmt.Fprintln(bw, len(factors))
	for _, f := range factors {
		fmt.Fprintf(bw, "%d %s\n", f.Arity(), joinInts(f.Variables))
	}

	// 3) Tables.
	for _, f := range factors {
		table := f.Table
		if table == nil {
			table = make([]float64, f.Size())
		}
		if lg {
			logs := make([]float64, len(table))
			for i, v := range table {
				logs[i] = math.Log(v)
			}
			table = logs
		}
		fmt.Fprintf(bw, "\n%d\n%s\n", len(table), joinFloats(table))
	}
	return bw.Flush()
}
