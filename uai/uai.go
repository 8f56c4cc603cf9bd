// SPDX-License-Identifier: MIT

package uai

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrModelType - the preamble names a model other than MARKOV.
	ErrModelType = errors.New("uai: unsupported model type")
	// ErrSyntax - a malformed or missing token (truncated file included).
	ErrSyntax = errors.New("uai: syntax error")
	// ErrScope - a function scope names an unknown or repeated variable.
	ErrScope = errors.New("uai: bad function scope")
	// ErrTable - a table size disagrees with its scope's domain product.
	ErrTable = errors.New("uai: bad table size")
)

// tokens streams whitespace-separated fields out of line-oriented input
// while remembering the current line for error messages.
type tokens struct {
	sc     *bufio.Scanner
	fields []string
	pos    int
	line   int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	// Whole tables sometimes sit on a single line.
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	return &tokens{sc: sc}
}

func (t *tokens) next() (string, error) {
	for t.pos >= len(t.fields) {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", fmt.Errorf("uai: line %d: %w", t.line, err)
			}
			return "", fmt.Errorf("uai: line %d: unexpected end of input: %w", t.line, ErrSyntax)
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
		t.pos = 0
	}
	f := t.fields[t.pos]
	t.pos++
	return f, nil
}

func (t *tokens) nextInt() (int, error) {
	f, err := t.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(f)
	if err != nil {
		return 0, fmt.Errorf("uai: line %d: %q is not an integer: %w", t.line, f, ErrSyntax)
	}
	return n, nil
}

func (t *tokens) nextFloat() (float64, error) {
	f, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, fmt.Errorf("uai: line %d: %q is not a number: %w", t.line, f, ErrSyntax)
	}
	return v, nil
}

func joinInts(xs []int) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}

func joinFloats(xs []float64) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return b.String()
}
