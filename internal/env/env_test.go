package env

import (
	"testing"

	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

func identity(args []value.Value, _ *Environment) (value.Value, error) {
	return args[0], nil
}

func TestResolveFirstMatchInRegistrationOrder(t *testing.T) {
	e := New(nil)
	e.RegisterFunction("f", []token.Type{token.Int}, token.Int, identity)
	e.RegisterFunction("f", []token.Type{token.Any}, token.Any, identity)

	rec, err := e.Resolve("f", []token.Type{token.Int})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Return != token.Int {
		t.Fatalf("expected the Int overload to win by registration order, got return type %v", rec.Return)
	}
}

func TestResolveAnyWildcardMatchesAnything(t *testing.T) {
	e := New(nil)
	e.RegisterFunction("f", []token.Type{token.Any}, token.Any, identity)

	for _, ty := range []token.Type{token.Int, token.Str, token.Bool, token.List} {
		if _, err := e.Resolve("f", []token.Type{ty}); err != nil {
			t.Fatalf("expected Any to match %v, got error: %v", ty, err)
		}
	}
}

func TestResolveUnknownFunctionError(t *testing.T) {
	e := New(nil)
	e.RegisterFunction("f", []token.Type{token.Int}, token.Int, identity)

	_, err := e.Resolve("f", []token.Type{token.Str})
	if err == nil {
		t.Fatal("expected UnknownFunction error")
	}
}

func TestOperatorPriorityTable(t *testing.T) {
	e := New(nil)
	e.RegisterOperator("+", 10, []token.Type{token.Int, token.Int}, token.Int, identity)
	e.RegisterOperator("*", 11, []token.Type{token.Int, token.Int}, token.Int, identity)

	if !e.IsOperator("+") || !e.IsOperator("*") {
		t.Fatal("expected both + and * to be registered operators")
	}
	if !e.OpPriorityHigher("+", "*") {
		t.Fatal("expected * to bind tighter than +")
	}
	if e.OpPriorityHigher("*", "+") {
		t.Fatal("expected + to not bind tighter than *")
	}
}

func TestRegisterFunctionPanicsIfAlreadyAnOperator(t *testing.T) {
	e := New(nil)
	e.RegisterOperator("+", 10, []token.Type{token.Int, token.Int}, token.Int, identity)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic registering a function under an operator's name")
		}
	}()
	e.RegisterFunction("+", []token.Type{token.Str}, token.Str, identity)
}

func TestAssignAndGetVar(t *testing.T) {
	e := New(nil)
	e.Assign("x", value.NewInt(42))

	v, err := e.GetVar("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag != token.Int || v.Int != 42 {
		t.Fatalf("unexpected value: %+v", v)
	}
}

func TestGetVarUnknownError(t *testing.T) {
	e := New(nil)
	if _, err := e.GetVar("missing"); err == nil {
		t.Fatal("expected UnknownVariable error")
	}
}
