package builtins

import (
	"testing"

	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

func newTestEnv() *env.Environment {
	e := env.New(nil)
	Register(e)
	return e
}

func resolveAndCall(t *testing.T, e *env.Environment, name string, args ...value.Value) value.Value {
	t.Helper()
	types := make([]token.Type, len(args))
	for i, a := range args {
		types[i] = a.Tag
	}
	rec, err := e.Resolve(name, types)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", name, err)
	}
	v, err := rec.Impl(args, e)
	if err != nil {
		t.Fatalf("%s(%v): %v", name, args, err)
	}
	return v
}

func TestRepeatBuiltin(t *testing.T) {
	e := newTestEnv()
	got := resolveAndCall(t, e, "repeat", value.NewStr("ab"), value.NewInt(3))
	if got.Str != "ababab" {
		t.Fatalf("got %q", got.Str)
	}
	got = resolveAndCall(t, e, "repeat", value.NewStr("ab"), value.NewInt(0))
	if got.Str != "" {
		t.Fatalf("expected empty string for n=0, got %q", got.Str)
	}
}

func TestConcatSkipsUnsupportedElementTypes(t *testing.T) {
	e := newTestEnv()
	list := value.NewList([]value.Value{
		value.NewInt(1), value.NewStr("a"), value.NewBool(true), value.NewInt(2),
	})
	got := resolveAndCall(t, e, "concat", list, value.NewStr("-"))
	if got.Str != "1-a-2" {
		t.Fatalf("got %q, expected bool element to be skipped", got.Str)
	}
}

func TestLocaleCmpBuiltin(t *testing.T) {
	e := newTestEnv()
	got := resolveAndCall(t, e, "localecmp", value.NewStr("a"), value.NewStr("a"))
	if got.Int != 0 {
		t.Fatalf("expected 0 for equal strings, got %d", got.Int)
	}
	got = resolveAndCall(t, e, "localecmp", value.NewStr("a"), value.NewStr("b"))
	if got.Int >= 0 {
		t.Fatalf("expected a negative result for \"a\" < \"b\", got %d", got.Int)
	}
}

func TestIndexBuiltinOutOfRange(t *testing.T) {
	e := newTestEnv()
	list := value.NewList([]value.Value{value.NewInt(1)})
	rec, err := e.Resolve("index", []token.Type{token.List, token.Int})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, err := rec.Impl([]value.Value{list, value.NewInt(5)}, e); err == nil {
		t.Fatal("expected IndexOutOfRange error")
	}
}

func TestRoundTiesAwayFromZero(t *testing.T) {
	e := newTestEnv()
	got := resolveAndCall(t, e, "round", value.NewFloat(2.5))
	if got.Int != 3 {
		t.Fatalf("round(2.5) = %d, want 3", got.Int)
	}
	got = resolveAndCall(t, e, "round", value.NewFloat(2.4))
	if got.Int != 2 {
		t.Fatalf("round(2.4) = %d, want 2", got.Int)
	}
	got = resolveAndCall(t, e, "round", value.NewFloat(-2.5))
	if got.Int != -3 {
		t.Fatalf("round(-2.5) = %d, want -3 (ties away from zero)", got.Int)
	}
}
