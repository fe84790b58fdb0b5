// Package lexer implements RR's tokenizer: a character-class-driven scanner
// that turns source text into the typed token stream consumed by the
// parser (spec §4.1).
package lexer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/ivangav/rr/internal/rrerr"
	"github.com/ivangav/rr/internal/token"
)

// Option configures a Lexer at construction time, mirroring the teacher's
// functional-options lexer constructor.
type Option func(*Lexer)

// WithTracing records whether tracing was requested, as reported by
// Tracing. The Lexer itself writes no trace output; the token dump for
// the CLI's diagnostics is written by pkg/rr through internal/trace.
func WithTracing(enabled bool) Option {
	return func(l *Lexer) { l.tracing = enabled }
}

// Lexer scans RR source text into tokens one at a time.
type Lexer struct {
	input   string
	pos     int // byte offset of ch
	readPos int // byte offset of next byte to read
	line    int
	column  int
	ch      byte

	tracing bool
}

// New creates a Lexer over input. An implicit trailing newline is appended
// so that every statement, including the source's last, terminates
// (spec §4.1).
func New(input string, opts ...Option) *Lexer {
	if len(input) == 0 || input[len(input)-1] != '\n' {
		input += "\n"
	}
	l := &Lexer{input: input, line: 1, column: 0}
	for _, opt := range opts {
		opt(l)
	}
	l.readByte()
	return l
}

func (l *Lexer) readByte() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = l.readPos
		return
	}
	l.ch = l.input[l.readPos]
	l.pos = l.readPos
	l.readPos++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekByte() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

// Tokenize scans the entire input and returns the full token stream,
// terminated by a single End token. Returns the first TokenizerError
// (rrerr.Error with Tag UnterminatedString or UnknownChar) encountered.
func Tokenize(input string, opts ...Option) ([]token.Token, error) {
	l := New(input, opts...)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.End {
			return toks, nil
		}
	}
}

// NextToken scans and returns the next token. Returns a *rrerr.Error for
// UnterminatedString or UnknownChar.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	pos := l.currentPos()

	if l.atEnd() {
		return token.Token{Kind: token.End, Pos: pos}, nil
	}

	class := classify(l.ch)
	switch class {
	case classNewline:
		l.readByte()
		return token.Token{Kind: token.Newline, Literal: "\n", Pos: pos}, nil

	case classDelim:
		lit := string(l.ch)
		l.readByte()
		return token.Token{Kind: token.Delim, Literal: lit, Pos: pos}, nil

	case classStrMarker:
		return l.readString(pos)

	case classNumber:
		return l.readNumber(pos)

	case classLetter:
		return l.readLetterSymbol(pos)

	case classSpecial:
		return l.readSpecialSymbol(pos)

	default:
		lit := string(l.ch)
		l.readByte()
		return token.Token{}, rrerr.New(rrerr.UnknownChar, pos, l.input,
			"unexpected byte '"+lit+"'")
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && classify(l.ch) == classWhitespace {
		l.readByte()
	}
}

func (l *Lexer) readString(pos token.Position) (token.Token, error) {
	marker := l.ch
	l.readByte() // consume opening marker
	start := l.pos
	for {
		if l.atEnd() {
			return token.Token{}, rrerr.New(rrerr.UnterminatedString, pos, l.input,
				"string starting here is never closed")
		}
		if l.ch == marker {
			break
		}
		l.readByte()
	}
	// Normalize to NFC so that visually identical strings compare equal
	// regardless of how the source encoded combining characters.
	lit := norm.NFC.String(l.input[start:l.pos])
	l.readByte() // consume closing marker
	return token.Token{Kind: token.Literal, Sub: token.SubStr, Literal: lit, Pos: pos}, nil
}

func (l *Lexer) readNumber(pos token.Position) (token.Token, error) {
	start := l.pos
	sub := token.SubInt
	for !l.atEnd() && classify(l.ch) == classNumber {
		l.readByte()
	}
	if !l.atEnd() && l.ch == '.' && l.peekByte() >= '0' && l.peekByte() <= '9' {
		sub = token.SubFloat
		l.readByte() // consume '.'
		for !l.atEnd() && classify(l.ch) == classNumber {
			l.readByte()
		}
	}
	lit := l.input[start:l.pos]
	return token.Token{Kind: token.Literal, Sub: sub, Literal: lit, Pos: pos}, nil
}

func (l *Lexer) readLetterSymbol(pos token.Position) (token.Token, error) {
	start := l.pos
	for !l.atEnd() {
		c := classify(l.ch)
		if c != classLetter && c != classNumber {
			break
		}
		l.readByte()
	}
	lit := l.input[start:l.pos]
	return token.Token{Kind: token.Symbol, Sub: token.SubLetter, Literal: lit, Pos: pos}, nil
}

func (l *Lexer) readSpecialSymbol(pos token.Position) (token.Token, error) {
	start := l.pos
	for !l.atEnd() && classify(l.ch) == classSpecial {
		l.readByte()
	}
	lit := l.input[start:l.pos]
	return token.Token{Kind: token.Symbol, Sub: token.SubSpecial, Literal: lit, Pos: pos}, nil
}

// Tracing reports whether this Lexer was constructed WithTracing(true).
func (l *Lexer) Tracing() bool { return l.tracing }
