// Package value implements RR's value model: a tagged union carrying a
// primitive or container payload plus an ownership flag distinguishing
// values that own their heap payload from borrowed aliases that must not
// release it (spec §3).
//
// Grounded on the teacher's runtime.Value family (internal/interp/runtime)
// and its RefCountManager (refcount.go): RR replaces the teacher's
// reference-counted objects with a simpler owned/borrowed flag, per the
// design note in spec §9 that favors Go's value semantics over manual
// reference counting — there is no cyclic data and no destructor to run.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ivangav/rr/internal/token"
)

// Fn is a reference to a registered function's name — RR has no
// first-class closures, so a Fn value is just the name under which the
// evaluator re-resolves an overload at call time.
type Fn struct {
	Name string
}

// Value is an RR runtime value. The zero Value is a borrowed Bool false,
// not None; use None() for the absence of a value.
type Value struct {
	Tag    token.Type
	Bool   bool
	Int    int64
	Float  float64
	Str    string
	List   []Value
	FnName string

	owned bool
}

// None is the canonical absence-of-value, owned (there is nothing to own).
func None() Value { return Value{Tag: token.None, owned: true} }

func NewBool(b bool) Value   { return Value{Tag: token.Bool, Bool: b, owned: true} }
func NewInt(i int64) Value   { return Value{Tag: token.Int, Int: i, owned: true} }
func NewFloat(f float64) Value { return Value{Tag: token.Float, Float: f, owned: true} }
func NewStr(s string) Value  { return Value{Tag: token.Str, Str: s, owned: true} }
func NewFn(name string) Value { return Value{Tag: token.Fn, FnName: name, owned: true} }

// NewList constructs an owned List value. Every element is converted to
// owned: a List never holds a borrowed element, matching Csv/ListBuilder
// evaluation (spec §4.4), which builds its elements from already-evaluated
// (and thus independently owned-or-borrowed-from-a-longer-lived-scope)
// values.
func NewList(elems []Value) Value {
	owned := make([]Value, len(elems))
	for i, e := range elems {
		owned[i] = e.ToOwned()
	}
	return Value{Tag: token.List, List: owned, owned: true}
}

// IsOwned reports whether this Value owns its heap payload (Str, List).
func (v Value) IsOwned() bool { return v.owned }

// ToOwned returns a deep-owned copy of v. If v is already owned, it is
// returned unchanged (no-op, per spec §3).
func (v Value) ToOwned() Value {
	if v.owned {
		return v
	}
	out := v
	out.owned = true
	if v.Tag == token.List {
		out.List = make([]Value, len(v.List))
		for i, e := range v.List {
			out.List[i] = e.ToOwned()
		}
	}
	return out
}

// Borrow returns a borrowed alias of v sharing the same payload. The
// caller must guarantee the alias does not outlive v's owner (spec §5).
func (v Value) Borrow() Value {
	out := v
	out.owned = false
	return out
}

// Render produces the human-readable form used by print and by the CLI's
// final-value output (spec §4.4): "Bool: <v>", "Int: <v>", "Float: <v>",
// "Str: <v>", "List: [e1,e2,...]", "None".
func (v Value) Render() string {
	switch v.Tag {
	case token.Bool:
		return fmt.Sprintf("Bool: %v", v.Bool)
	case token.Int:
		return fmt.Sprintf("Int: %d", v.Int)
	case token.Float:
		return fmt.Sprintf("Float: %s", strconv.FormatFloat(v.Float, 'g', -1, 64))
	case token.Str:
		return fmt.Sprintf("Str: %s", v.Str)
	case token.Fn:
		return fmt.Sprintf("Fn: %s", v.FnName)
	case token.List:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.Render()
		}
		return fmt.Sprintf("List: [%s]", strings.Join(parts, ","))
	case token.None:
		return "None"
	default:
		return v.Tag.String()
	}
}

func (v Value) String() string { return v.Render() }
