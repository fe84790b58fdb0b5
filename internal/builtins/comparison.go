package builtins

import (
	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// registerComparison installs "==" (priority 2) with its sole required
// overload (Int,Int)->Bool. Equality on any other type pair is
// deliberately left unresolved — per spec §9's open question, resolution
// simply fails with UnknownFunction rather than silently extending "=="
// to types the spec does not list.
func registerComparison(e *env.Environment) {
	e.RegisterOperator("==", 2, []token.Type{token.Int, token.Int}, token.Bool,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewBool(args[0].Int == args[1].Int), nil
		})
}
