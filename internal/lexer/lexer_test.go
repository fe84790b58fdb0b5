package lexer

import (
	"testing"

	"github.com/ivangav/rr/internal/token"
)

func TestNextTokenBasic(t *testing.T) {
	input := `x = 1 + 2`

	tests := []struct {
		kind    token.Kind
		sub     token.SubKind
		literal string
	}{
		{token.Symbol, token.SubLetter, "x"},
		{token.Symbol, token.SubSpecial, "="},
		{token.Literal, token.SubInt, "1"},
		{token.Symbol, token.SubSpecial, "+"},
		{token.Literal, token.SubInt, "2"},
		{token.Newline, token.SubNone, "\n"},
		{token.End, token.SubNone, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d]: unexpected error: %v", i, err)
		}
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, tt.kind, tok.Kind)
		}
		if tok.Sub != tt.sub {
			t.Fatalf("tests[%d] - sub wrong. expected=%v, got=%v", i, tt.sub, tok.Sub)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, tok.Literal)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
		sub     token.SubKind
	}{
		{"int", "42", "42", token.SubInt},
		{"float", "3.14", "3.14", token.SubFloat},
		{"trailing dot is delim", "3.", "3", token.SubInt},
		{"zero", "0", "0", token.SubInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Sub != tt.sub {
				t.Fatalf("sub wrong. expected=%v, got=%v", tt.sub, tok.Sub)
			}
			if tok.Literal != tt.literal {
				t.Fatalf("literal wrong. expected=%q, got=%q", tt.literal, tok.Literal)
			}
		})
	}
}

func TestStringLiteralsEitherMarker(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`""`, ""},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != token.Literal || tok.Sub != token.SubStr {
			t.Fatalf("expected string literal token, got kind=%v sub=%v", tok.Kind, tok.Sub)
		}
		if tok.Literal != tt.expected {
			t.Fatalf("literal wrong. expected=%q, got=%q", tt.expected, tok.Literal)
		}
	}
}

func TestUnterminatedStringError(t *testing.T) {
	l := New(`"never closed`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an UnterminatedString error")
	}
}

func TestSemicolonActsAsStatementTerminator(t *testing.T) {
	// New() appends an implicit trailing newline, so "1;2" tokenizes as
	// Literal("1"), Newline(;), Literal("2"), Newline(implicit), End.
	toks, err := Tokenize("1;2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 5 {
		t.Fatalf("expected 5 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[1].Kind != token.Newline {
		t.Fatalf("expected ';' to tokenize as Newline, got %v", toks[1].Kind)
	}
}

func TestDelimiters(t *testing.T) {
	input := `([{}]),.`
	want := []string{"(", "[", "{", "}", "]", ")", ",", "."}
	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, w := range want {
		if toks[i].Kind != token.Delim || toks[i].Literal != w {
			t.Fatalf("tests[%d]: expected delim %q, got kind=%v literal=%q", i, w, toks[i].Kind, toks[i].Literal)
		}
	}
}

func TestUnknownCharError(t *testing.T) {
	_, err := Tokenize("@")
	if err == nil {
		t.Fatal("expected an UnknownChar error for '@'")
	}
}
