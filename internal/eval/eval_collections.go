package eval

import (
	"github.com/ivangav/rr/internal/ast"
	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/rrerr"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// evalCsv constructs a List value from the evaluation of each child, in
// order (spec §4.4). Used directly by Csv and, via its single child, by
// ListBuilder.
func evalCsv(n *ast.Csv, e *env.Environment) (value.Value, error) {
	elems := make([]value.Value, len(n.Items))
	for i, item := range n.Items {
		v, err := Eval(item, e)
		if err != nil {
			return value.Value{}, err
		}
		elems[i] = v
	}
	return value.NewList(elems), nil
}

// evalEvaluate evaluates the callee (which must yield a Str naming a
// function, or a Fn function reference) and the argument Csv, resolves
// the overload by name and argument types, and invokes it (spec §4.4).
func evalEvaluate(n *ast.Evaluate, e *env.Environment) (value.Value, error) {
	callee, err := Eval(n.Callee, e)
	if err != nil {
		return value.Value{}, err
	}

	var name string
	switch callee.Tag {
	case token.Str:
		name = callee.Str
	case token.Fn:
		name = callee.FnName
	default:
		return value.Value{}, rrerr.New(rrerr.TypeMismatch, n.Pos(), "",
			"call target must name a function, got "+callee.Tag.String())
	}

	args := make([]value.Value, len(n.Args.Items))
	for i, item := range n.Args.Items {
		v, err := Eval(item, e)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	rec, err := e.Resolve(name, argTypes(args))
	if err != nil {
		return value.Value{}, err
	}
	return rec.Impl(args, e)
}

// evalIndex evaluates both children and resolves the built-in index
// overload for (collection type, index type) (spec §4.4). Two overloads
// are registered by default: (List,Int) for single-element access and
// (List,List) for gather.
func evalIndex(n *ast.Index, e *env.Environment) (value.Value, error) {
	coll, err := Eval(n.Collection, e)
	if err != nil {
		return value.Value{}, err
	}
	idx, err := Eval(n.IndexExpr, e)
	if err != nil {
		return value.Value{}, err
	}
	rec, err := e.Resolve("index", []token.Type{coll.Tag, idx.Tag})
	if err != nil {
		return value.Value{}, err
	}
	return rec.Impl([]value.Value{coll, idx}, e)
}

func evalIndexMut(n *ast.Index, e *env.Environment) (Slot, error) {
	coll, err := Eval(n.Collection, e)
	if err != nil {
		return Slot{}, err
	}
	if coll.Tag != token.List {
		return Slot{}, rrerr.New(rrerr.TypeMismatch, n.Pos(), "",
			"cannot index into "+coll.Tag.String())
	}
	idx, err := Eval(n.IndexExpr, e)
	if err != nil {
		return Slot{}, err
	}
	if idx.Tag != token.Int {
		return Slot{}, rrerr.New(rrerr.TypeMismatch, n.Pos(), "",
			"index must be Int, got "+idx.Tag.String())
	}
	i := int(idx.Int)
	if i < 0 || i >= len(coll.List) {
		return Slot{}, rrerr.New(rrerr.IndexOutOfRange, n.Pos(), "",
			"index out of range")
	}
	list := coll.List
	return Slot{
		get: func() value.Value { return list[i] },
		set: func(v value.Value) { list[i] = v },
	}, nil
}
