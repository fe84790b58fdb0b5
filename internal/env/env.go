// Package env implements RR's Environment: the variable store, the
// function/operator overload table, and the operator-priority table that
// the parser and evaluator share (spec §3, §4.2).
//
// Grounded on the teacher's interp/types.FunctionRegistry (overload lists
// per name, internal/interp/types/function_registry.go) for the
// function table, and its runtime.Environment (internal/interp/runtime/
// environment.go) for the variable store — RR has exactly one scope, so
// there is no outer-environment chain to walk.
package env

import (
	"fmt"
	"strings"

	"github.com/ivangav/rr/internal/rrerr"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// Primitive is a built-in function or operator implementation. It
// receives already-evaluated, type-checked arguments and the environment
// (so primitives like print can reach the output sink, and index/concat
// need no environment access at all but take one for a uniform shape).
type Primitive func(args []value.Value, env *Environment) (value.Value, error)

// FunctionRecord is one registered overload: a parameter type-tag
// sequence (whose length encodes arity), a return type tag, and the
// primitive implementation (spec §3).
type FunctionRecord struct {
	Name    string
	Params  []token.Type
	Return  token.Type
	Impl    Primitive
}

// Matches reports whether argTypes satisfies this record's signature
// under the Any wildcard rule (token.Equiv), per spec §4.2.
func (r *FunctionRecord) Matches(argTypes []token.Type) bool {
	if len(r.Params) != len(argTypes) {
		return false
	}
	for i, p := range r.Params {
		if !token.Equiv(argTypes[i], p) {
			return false
		}
	}
	return true
}

// Signature renders the record's parameter types for diagnostics, e.g.
// "<Int,Str>".
func (r *FunctionRecord) Signature() string {
	names := make([]string, len(r.Params))
	for i, p := range r.Params {
		names[i] = p.String()
	}
	return "<" + strings.Join(names, ",") + ">"
}

// Environment holds RR's single, global, mutable scope: variables,
// overload sets, and operator priorities.
type Environment struct {
	variables map[string]value.Value
	functions map[string][]*FunctionRecord
	priority  map[string]int

	Output Sink
}

// Sink is where print writes its rendering. Satisfied by any writer with
// a WriteString method, such as *bufio.Writer or *strings.Builder;
// declared locally so this package does not need to import io for this
// one method.
type Sink interface {
	WriteString(s string) (int, error)
}

// New creates an empty Environment. Callers typically follow this with
// builtins.Register(env) to install the default registrations (spec §6).
func New(out Sink) *Environment {
	return &Environment{
		variables: make(map[string]value.Value),
		functions: make(map[string][]*FunctionRecord),
		priority:  make(map[string]int),
		Output:    out,
	}
}

// GetVar returns a borrowed alias of the stored variable value. Fails
// with RuntimeError{UnknownVariable} if absent (spec §4.2).
func (e *Environment) GetVar(name string) (value.Value, error) {
	v, ok := e.variables[name]
	if !ok {
		return value.Value{}, rrerr.New(rrerr.UnknownVariable, token.Position{}, "",
			fmt.Sprintf("unknown variable %q", name))
	}
	return v.Borrow(), nil
}

// HasVar reports whether name is a currently-assigned variable.
func (e *Environment) HasVar(name string) bool {
	_, ok := e.variables[name]
	return ok
}

// Assign stores value as owned into the named variable slot, converting
// it to owned first if it arrived borrowed, and releasing any previous
// payload (the old Go value is simply overwritten — spec §4.2, §5).
func (e *Environment) Assign(name string, v value.Value) {
	e.variables[name] = v.ToOwned()
}

// EnsureVar inserts a default None value for name if absent, then returns
// the current stored value. Used as the preparation step before a mutable
// slot is addressed during assignment (spec §4.2's get_or_new_var_mut).
func (e *Environment) EnsureVar(name string) value.Value {
	if v, ok := e.variables[name]; ok {
		return v
	}
	v := value.None()
	e.variables[name] = v
	return v
}

// RegisterOperator records name as an operator with the given binding
// priority in [0,16] and registers its overload. Membership in the
// priority table is what makes name an operator rather than a plain
// function (spec §4.2's discriminator) — a name may not be registered as
// both; RegisterFunction panics if name is already an operator.
func (e *Environment) RegisterOperator(name string, priority int, params []token.Type, ret token.Type, impl Primitive) {
	if _, isFunc := e.functions[name]; isFunc && !e.IsOperator(name) {
		panic(fmt.Sprintf("rr: %q already registered as a function", name))
	}
	e.priority[name] = priority
	e.functions[name] = append(e.functions[name], &FunctionRecord{
		Name: name, Params: params, Return: ret, Impl: impl,
	})
}

// RegisterAssignOperator marks name as an operator purely for the
// priority table, with no overload set: "=" is handled directly by the
// evaluator via EvalMut rather than through overload resolution
// (spec §4.4), but it must still appear in the priority table so the
// parser recognizes it as an operator symbol (spec §4.2's discriminator).
func (e *Environment) RegisterAssignOperator(name string, priority int) {
	e.priority[name] = priority
}

// RegisterFunction registers a plain (non-operator) overload.
func (e *Environment) RegisterFunction(name string, params []token.Type, ret token.Type, impl Primitive) {
	if e.IsOperator(name) {
		panic(fmt.Sprintf("rr: %q already registered as an operator", name))
	}
	e.functions[name] = append(e.functions[name], &FunctionRecord{
		Name: name, Params: params, Return: ret, Impl: impl,
	})
}

// IsFunction reports whether name has at least one registered overload.
func (e *Environment) IsFunction(name string) bool {
	_, ok := e.functions[name]
	return ok
}

// IsOperator reports whether name is registered in the operator-priority
// table — the sole discriminator between operator and function symbols
// (spec §4.2, §9).
func (e *Environment) IsOperator(name string) bool {
	_, ok := e.priority[name]
	return ok
}

// Priority returns the binding priority of a registered operator. Callers
// must check IsOperator first; an unregistered name reports 0.
func (e *Environment) Priority(name string) int {
	return e.priority[name]
}

// OpPriorityHigher reports whether rhs binds tighter than lhs, i.e.
// priority[rhs] > priority[lhs] (spec §4.2). Used by the parser's
// operator-precedence insertion.
func (e *Environment) OpPriorityHigher(lhs, rhs string) bool {
	return e.priority[rhs] > e.priority[lhs]
}

// Resolve selects the first registered overload of name whose signature
// matches argTypes under the Any rule (linear scan in registration
// order — spec §4.2). Fails with RuntimeError{UnknownFunction} naming the
// attempted argument types.
func (e *Environment) Resolve(name string, argTypes []token.Type) (*FunctionRecord, error) {
	for _, rec := range e.functions[name] {
		if rec.Matches(argTypes) {
			return rec, nil
		}
	}
	names := make([]string, len(argTypes))
	for i, t := range argTypes {
		names[i] = t.String()
	}
	return nil, rrerr.New(rrerr.UnknownFunction, token.Position{}, "",
		fmt.Sprintf("%s<%s>", name, strings.Join(names, ",")))
}
