package eval_test

import (
	"strings"
	"testing"

	"github.com/ivangav/rr/pkg/rr"
)

func mustEval(t *testing.T, source string) string {
	t.Helper()
	got, err := rr.Eval(source)
	if err != nil {
		t.Fatalf("unexpected error evaluating %q: %v", source, err)
	}
	return got
}

func TestArithmeticAndPrecedence(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3", "Int: 7"},
		{"(1 + 2) * 3", "Int: 9"},
		{"1.5 + 2", "Float: 3.5"},
		{"2 + 1.5", "Float: 3.5"},
		{"\"ha\" repeat 3", "Str: hahaha"},
		{"\"ha\" repeat 0", "Str: "},
		{"round 2.5", "Int: 3"},
		{"round 3.5", "Int: 4"},
		{"max(3,7)", "Int: 7"},
		{"1 == 1", "Bool: true"},
		{"1 == 2", "Bool: false"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got := mustEval(t, tt.source)
			if got != tt.want {
				t.Fatalf("eval(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestVariableAssignmentAndReuse(t *testing.T) {
	got := mustEval(t, "x = 5\nx + 1")
	if got != "Int: 6" {
		t.Fatalf("got %q", got)
	}
}

func TestChainedAssignmentIsRightAssociative(t *testing.T) {
	got := mustEval(t, "a = b = 1\na + b")
	if got != "Int: 2" {
		t.Fatalf("got %q", got)
	}
}

func TestListIndexingAndGather(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"xs = [10,20,30]\nxs[1]", "Int: 20"},
		{"xs = [10,20,30]\nxs[[0,2]]", "List: [Int: 10,Int: 30]"},
	}
	for _, tt := range tests {
		got := mustEval(t, tt.source)
		if got != tt.want {
			t.Fatalf("eval(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestIndexOutOfRangeError(t *testing.T) {
	_, err := rr.Eval("xs = [1,2]\nxs[5]")
	if err == nil {
		t.Fatal("expected IndexOutOfRange error")
	}
}

func TestMutableIndexAssignment(t *testing.T) {
	got := mustEval(t, "xs = [1,2,3]\nxs[0] = 99\nxs")
	if got != "List: [Int: 99,Int: 2,Int: 3]" {
		t.Fatalf("got %q", got)
	}
}

func TestIfBranching(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"if true 1 else 2", "Int: 1"},
		{"if false 1 else 2", "Int: 2"},
		{"if 1 == 1 \"yes\" else \"no\"", "Str: yes"},
		{"if 1 == 2 \"yes\" else \"no\"", "Str: no"},
	}
	for _, tt := range tests {
		got := mustEval(t, tt.source)
		if got != tt.want {
			t.Fatalf("eval(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestConcatAndGlue(t *testing.T) {
	got := mustEval(t, `concat([1,"a",2], ",")`)
	if got != "Str: 1,a,2" {
		t.Fatalf("got %q", got)
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	_, err := rr.Eval("if 1 2 else 3")
	if err == nil {
		t.Fatal("expected TypeMismatch error")
	}
}

func TestUnknownFunctionMentionsAttemptedSignature(t *testing.T) {
	_, err := rr.Eval(`1 + "x"`)
	if err == nil {
		t.Fatal("expected UnknownFunction error")
	}
	if !strings.Contains(err.Error(), "+<Int,Str>") {
		t.Fatalf("expected error to mention +<Int,Str>, got: %v", err)
	}
}

func TestPrintWritesRenderingAndReturnsNone(t *testing.T) {
	var sb strings.Builder
	res, err := rr.Run(`print(42)`, &sb, rr.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != "Int: 42\n" {
		t.Fatalf("unexpected print output: %q", sb.String())
	}
	if res.Rendered != "None" {
		t.Fatalf("expected print's own result to be None, got %q", res.Rendered)
	}
}

func TestUnknownVariableError(t *testing.T) {
	_, err := rr.Eval("y")
	if err == nil {
		t.Fatal("expected UnknownVariable error")
	}
}
