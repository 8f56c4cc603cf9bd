// SPDX-License-Identifier: MIT

// read.go parses the MARKOV token stream into a cfn.Network. The shared
// tokenizer and sentinels live in uai.go.

package uai

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/stride"
)

// Read parses a UAI MARKOV model into a network.
//
// Errors: ErrModelType, ErrSyntax, ErrScope, ErrTable, plus cfn build
// errors (a non-positive domain size surfaces as cfn.ErrDomain). Every
// error names the input line it was detected on.
func Read(r io.Reader) (*cfn.Network, error) { return read(r, false) }

// ReadLG parses the .LG variant: stored values are logarithms and are
// exponentiated into plain costs.
func ReadLG(r io.Reader) (*cfn.Network, error) { return read(r, true) }

func read(r io.Reader, lg bool) (*cfn.Network, error) {
	t := newTokens(r)

	// 1) Preamble: model type, variable count, one domain size each.
	model, err := t.next()
	if err != nil {
		return nil, err
	}
	if model != "MARKOV" {
		return nil, fmt.Errorf("uai: line %d: model %q: %w", t.line, model, ErrModelType)
	}
	numVars, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	if numVars < 0 {
		return nil, fmt.Errorf("uai: line %d: %d variables: %w", t.line, numVars, ErrSyntax)
	}
	domains := make([]int, numVars)
	for i := range domains {
		if domains[i], err = t.nextInt(); err != nil {
			return nil, err
		}
	}
	net, err := cfn.New(domains)
	if err != nil {
		return nil, fmt.Errorf("uai: line %d: %w", t.line, err)
	}

	// 2) Function scopes, all before any table.
	numFns, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	if numFns < 0 {
		return nil, fmt.Errorf("uai: line %d: %d functions: %w", t.line, numFns, ErrSyntax)
	}
	scopes := make([][]int, numFns)
	for i := range scopes {
		arity, err := t.nextInt()
		if err != nil {
			return nil, err
		}
		if arity < 1 {
			return nil, fmt.Errorf("uai: line %d: arity %d: %w", t.line, arity, ErrScope)
		}
		scope := make([]int, arity)
		for j := range scope {
			v, err := t.nextInt()
			if err != nil {
				return nil, err
			}
			if v < 0 || v >= numVars {
				return nil, fmt.Errorf("uai: line %d: variable %d of %d: %w",
					t.line, v, numVars, ErrScope)
			}
			for _, seen := range scope[:j] {
				if seen == v {
					return nil, fmt.Errorf("uai: line %d: variable %d repeats: %w",
						t.line, v, ErrScope)
				}
			}
			scope[j] = v
		}
		scopes[i] = scope
	}

	// 3) Tables, one per scope: declared size, then that many values.
	for _, scope := range scopes {
		want := 1
		for _, v := range scope {
			want *= net.Domain(v)
		}
		count, err := t.nextInt()
		if err != nil {
			return nil, err
		}
		if count != want {
			return nil, fmt.Errorf("uai: line %d: %d values for a scope of %d: %w",
				t.line, count, want, ErrTable)
		}
		values := make([]float64, count)
		for j := range values {
			if values[j], err = t.nextFloat(); err != nil {
				return nil, err
			}
		}
		if lg {
			for j, v := range values {
				values[j] = math.Exp(v)
			}
		}
		if err := addScoped(net, scope, values); err != nil {
			return nil, fmt.Errorf("uai: line %d: %w", t.line, err)
		}
	}
	return net, nil
}

// addScoped folds one function into the network. A scope listed out of
// ascending variable order gets its table re-indexed first, so the stored
// factor assigns the same cost to the same labeling as the file did.
func addScoped(net *cfn.Network, scope []int, values []float64) error {
	if sort.IntsAreSorted(scope) {
		_, err := net.AddFactor(scope, values)
		return err
	}

	srcDims := make([]int, len(scope))
	for i, v := range scope {
		srcDims[i] = net.Domain(v)
	}
	srcStrides := stride.Strides(srcDims)

	vars := append([]int(nil), scope...)
	sort.Ints(vars)
	pos := make([]int, len(vars)) // sorted slot -> position in the file's scope
	dims := make([]int, len(vars))
	for i, v := range vars {
		for j, s := range scope {
			if s == v {
				pos[i] = j
				break
			}
		}
		dims[i] = net.Domain(v)
	}

	out := make([]float64, len(values))
	digits := make([]int, len(vars))
	for rank := range out {
		stride.Decode(dims, rank, digits)
		src := 0
		for i, d := range digits {
			src += d * srcStrides[pos[i]]
		}
		out[rank] = values[src]
	}
	_, err := net.AddFactor(vars, out)
	return err
}
