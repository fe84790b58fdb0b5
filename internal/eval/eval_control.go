package eval

import (
	"github.com/ivangav/rr/internal/ast"
	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/rrerr"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// evalStatement evaluates every child in order and returns the last
// child's value. An empty Statement returns None (spec §4.4).
func evalStatement(n *ast.Statement, e *env.Environment) (value.Value, error) {
	var result value.Value = value.None()
	for _, child := range n.Children {
		v, err := Eval(child, e)
		if err != nil {
			return value.Value{}, err
		}
		result = v
	}
	return result, nil
}

func evalStatementMut(n *ast.Statement, e *env.Environment) (Slot, error) {
	if len(n.Children) == 0 {
		return Slot{}, rrerr.New(rrerr.InvalidAssignTarget, n.Pos(), "",
			"cannot assign to an empty statement")
	}
	return EvalMut(n.Children[len(n.Children)-1], e)
}

// evalIf evaluates the condition, which must be Bool, and returns the
// then- or else-branch's value accordingly (spec §4.4).
func evalIf(n *ast.If, e *env.Environment) (value.Value, error) {
	cond, err := Eval(n.Cond, e)
	if err != nil {
		return value.Value{}, err
	}
	if cond.Tag != token.Bool {
		return value.Value{}, rrerr.New(rrerr.TypeMismatch, n.Pos(), "",
			"if condition must be Bool, got "+cond.Tag.String())
	}
	if cond.Bool {
		return Eval(n.Then, e)
	}
	return Eval(n.Else, e)
}
