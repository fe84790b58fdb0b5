// Package rr is RR's embeddable façade: a small public API wrapping the
// internal lexer/parser/evaluator pipeline so RR can be used as a
// library, not only driven through the cmd/rr CLI.
//
// Grounded on the teacher's pkg/dwscript façade package, which exists for
// exactly this reason — to give go-dws an importable public surface
// distinct from its cmd/dwscript CLI.
package rr

import (
	"bufio"
	"io"
	"strings"

	"github.com/ivangav/rr/internal/builtins"
	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/eval"
	"github.com/ivangav/rr/internal/lexer"
	"github.com/ivangav/rr/internal/parser"
	"github.com/ivangav/rr/internal/trace"
	"github.com/ivangav/rr/internal/value"
)

// Options configures a Run.
type Options struct {
	// Trace enables the "--start <phase>:"/"--end <phase>." diagnostic
	// dump of tokens, AST, and evaluation (spec §6).
	Trace bool
	// TraceWriter receives trace output; defaults to the Run/Eval output
	// writer when nil.
	TraceWriter io.Writer
}

// Result is the outcome of a successful Run: the final value and its
// rendered string form.
type Result struct {
	Value    value.Value
	Rendered string
}

// Run tokenizes, parses and evaluates source as a single top-level block
// of statements, writing any print output to w, and returns the value of
// the final statement (spec §6's CLI contract, generalized for embedding).
func Run(source string, w io.Writer, opts Options) (Result, error) {
	out := bufio.NewWriter(w)
	defer out.Flush()

	e := env.New(out)
	builtins.Register(e)

	traceW := opts.TraceWriter
	if traceW == nil {
		traceW = w
	}
	tr := trace.New(traceW, opts.Trace)

	tr.Start("tokenize")
	toks, err := lexer.Tokenize(source, lexer.WithTracing(opts.Trace))
	if opts.Trace {
		for _, t := range toks {
			tr.Line(t.String())
		}
	}
	tr.End("tokenize")
	if err != nil {
		return Result{}, err
	}

	tr.Start("parse")
	p := parser.New(toks, e, source)
	program, err := p.ParseProgram()
	if err != nil {
		tr.End("parse")
		return Result{}, err
	}
	if opts.Trace {
		tr.Line(program.String())
	}
	tr.End("parse")

	tr.Start("evaluate")
	v, err := eval.Eval(program, e)
	tr.End("evaluate")
	if err != nil {
		return Result{}, err
	}

	out.Flush()
	return Result{Value: v, Rendered: v.Render()}, nil
}

// Eval is a convenience wrapper over Run discarding any print output,
// returning only the final value's rendering.
func Eval(source string) (string, error) {
	var sb strings.Builder
	res, err := Run(source, &sb, Options{})
	if err != nil {
		return "", err
	}
	return res.Rendered, nil
}
