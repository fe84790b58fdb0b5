// Package eval implements RR's tree-walking evaluator (spec §4.4):
// Eval produces a value from an AST node, and EvalMut produces a mutable
// slot for the handful of node kinds legal as an assignment target.
//
// Grounded on the teacher's internal/interp/evaluator package split — one
// file per node-kind family (visitor_expressions_primitives.go,
// visitor_expressions_indexing.go, visitor_statements.go, ...) rather
// than a single monolithic Eval switch — and its lvalue.go
// evaluate-once-assign-via-closure pattern, reworked here as an
// explicit Slot type.
package eval

import (
	"fmt"

	"github.com/ivangav/rr/internal/ast"
	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/rrerr"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// Slot is a mutable reference to a value location, returned by EvalMut
// for use as an assignment target (spec §4.4).
type Slot struct {
	get func() value.Value
	set func(value.Value)
}

// Get reads the slot's current value (a borrowed alias, per spec §4.4's
// "return a borrowed alias of the slot" rule for assignment's result).
func (s Slot) Get() value.Value { return s.get().Borrow() }

// Set stores v (converted to owned) into the slot.
func (s Slot) Set(v value.Value) { s.set(v.ToOwned()) }

// Eval evaluates node against e and returns its value.
func Eval(node ast.Node, e *env.Environment) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Statement:
		return evalStatement(n, e)
	case *ast.Literal:
		return evalLiteral(n)
	case *ast.Var:
		return evalVar(n, e)
	case *ast.Fun:
		return evalFun(n)
	case *ast.Op:
		return evalOp(n, e)
	case *ast.If:
		return evalIf(n, e)
	case *ast.Csv:
		return evalCsv(n, e)
	case *ast.ListBuilder:
		return evalCsv(n.Items, e)
	case *ast.Evaluate:
		return evalEvaluate(n, e)
	case *ast.Index:
		return evalIndex(n, e)
	default:
		return value.Value{}, fmt.Errorf("eval: unhandled node type %T", node)
	}
}

// EvalMut evaluates node as an assignment target and returns a mutable
// Slot. Legal only on Var, Statement (the slot of its last child), and
// Index (spec §4.4); anything else is a ParseError{InvalidAssignTarget} —
// structurally a parse-time concern, but RR's grammar does not reject
// illegal assignment targets until the evaluator walks them, so it is
// raised here.
func EvalMut(node ast.Node, e *env.Environment) (Slot, error) {
	switch n := node.(type) {
	case *ast.Var:
		return evalVarMut(n, e)
	case *ast.Statement:
		return evalStatementMut(n, e)
	case *ast.Index:
		return evalIndexMut(n, e)
	default:
		return Slot{}, rrerr.New(rrerr.InvalidAssignTarget, node.Pos(), "",
			fmt.Sprintf("cannot assign to %s", describe(node)))
	}
}

func describe(node ast.Node) string {
	switch node.(type) {
	case *ast.Literal:
		return "a literal"
	case *ast.Op:
		return "an operator expression"
	case *ast.If:
		return "an if expression"
	case *ast.Csv:
		return "a comma-separated list"
	case *ast.ListBuilder:
		return "a list literal"
	case *ast.Evaluate:
		return "a function call"
	case *ast.Fun:
		return "a function reference"
	default:
		return "this expression"
	}
}

// argTypes collects the type tags of already-evaluated arguments, for
// overload resolution (spec §4.2, §4.4).
func argTypes(args []value.Value) []token.Type {
	types := make([]token.Type, len(args))
	for i, a := range args {
		types[i] = a.Tag
	}
	return types
}
