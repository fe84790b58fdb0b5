package eval

import (
	"github.com/ivangav/rr/internal/ast"
	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/value"
)

// evalOp evaluates an Op node (spec §4.4):
//   - zero children: the operator's name as a Str, same as Fun.
//   - "=": evaluate the lhs as a mutable slot, the rhs as a value, assign,
//     and return a borrowed alias of the slot.
//   - otherwise: evaluate every child left-to-right, resolve the overload
//     by name and the evaluated argument types, and invoke it.
func evalOp(n *ast.Op, e *env.Environment) (value.Value, error) {
	if len(n.Children) == 0 {
		return value.NewStr(n.Name), nil
	}

	if n.Name == "=" {
		return evalAssign(n, e)
	}

	args := make([]value.Value, len(n.Children))
	for i, child := range n.Children {
		v, err := Eval(child, e)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	rec, err := e.Resolve(n.Name, argTypes(args))
	if err != nil {
		return value.Value{}, err
	}
	return rec.Impl(args, e)
}

func evalAssign(n *ast.Op, e *env.Environment) (value.Value, error) {
	slot, err := EvalMut(n.Children[0], e)
	if err != nil {
		return value.Value{}, err
	}
	rhs, err := Eval(n.Children[1], e)
	if err != nil {
		return value.Value{}, err
	}
	slot.Set(rhs.ToOwned())
	return slot.Get(), nil
}
