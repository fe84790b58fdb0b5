package eval

import (
	"github.com/ivangav/rr/internal/ast"
	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/value"
)

// evalLiteral returns a deep-owned clone of the stored value (spec §4.4;
// every Literal's stored value is already owned, per the AST invariant
// in spec §3, so ToOwned is a documentation no-op here — but calling it
// keeps the contract explicit rather than relying on the invariant).
func evalLiteral(n *ast.Literal) (value.Value, error) {
	v := n.Lit.(value.Value)
	return v.ToOwned(), nil
}

// evalVar returns a borrowed alias of the variable's stored value
// (spec §4.4).
func evalVar(n *ast.Var, e *env.Environment) (value.Value, error) {
	return e.GetVar(n.Name)
}

// evalFun returns a Str value carrying the function's name: the
// enclosing Evaluate node performs overload resolution once it also
// knows the evaluated argument types (spec §4.4, §9).
func evalFun(n *ast.Fun) (value.Value, error) {
	return value.NewStr(n.Name), nil
}

func evalVarMut(n *ast.Var, e *env.Environment) (Slot, error) {
	name := n.Name
	e.EnsureVar(name)
	return Slot{
		get: func() value.Value { v, _ := e.GetVar(name); return v },
		set: func(v value.Value) { e.Assign(name, v) },
	}, nil
}
