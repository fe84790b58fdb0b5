package rrerr

import (
	"strings"
	"testing"

	"github.com/ivangav/rr/internal/token"
)

func TestFormatIncludesFamilyTagAndPosition(t *testing.T) {
	err := New(UnknownFunction, token.Position{Line: 1, Column: 3}, "1 + \"x\"", "+<Int,Str>")
	out := err.Format()

	if !strings.HasPrefix(out, "--RR: RuntimeError{UnknownFunction}: +<Int,Str>") {
		t.Fatalf("unexpected format prefix: %q", out)
	}
	if !strings.Contains(out, "(line 1, col 3)") {
		t.Fatalf("expected position in output: %q", out)
	}
	if !strings.Contains(out, "1 + \"x\"") {
		t.Fatalf("expected source line in output: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret in output: %q", out)
	}
}

func TestFamilyGrouping(t *testing.T) {
	tests := []struct {
		tag  Tag
		want Family
	}{
		{UnterminatedString, Tokenizer},
		{UnknownChar, Tokenizer},
		{UnknownDelim, Parser},
		{ExpectedOperator, Parser},
		{IndexIntoOperator, Parser},
		{UnknownVariable, Runtime},
		{TypeMismatch, Runtime},
	}
	for _, tt := range tests {
		if got := familyOf(tt.tag); got != tt.want {
			t.Fatalf("familyOf(%v) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestFormatWithoutSourceOmitsCaret(t *testing.T) {
	err := New(UnknownVariable, token.Position{}, "", "unknown variable \"y\"")
	out := err.Format()
	if strings.Contains(out, "^") {
		t.Fatalf("did not expect a caret with no position/source: %q", out)
	}
}
