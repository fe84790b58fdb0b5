// Package rrerr implements RR's error taxonomy (spec §7) and formats
// diagnostics the way the teacher's internal/errors package formats
// compiler errors: a position header, the offending source line, and a
// caret pointing at the fault — prefixed with RR's required "--RR:" tag
// instead of the teacher's "Error in %s:%d:%d".
package rrerr

import (
	"fmt"
	"strings"

	"github.com/ivangav/rr/internal/token"
)

// Tag enumerates the fixed error codes named by spec §7.
type Tag int

const (
	// Tokenizer errors.
	UnterminatedString Tag = iota
	UnknownChar

	// Parser errors.
	UnknownDelim
	ExpectedOperator
	ExpectedExpression
	IfWithoutElse
	ElseWithoutIf
	IndexIntoOperator
	InvalidAssignTarget

	// Runtime errors.
	UnknownVariable
	UnknownFunction
	TypeMismatch
	IndexOutOfRange
	ReferenceStoredAsValue
)

var tagNames = map[Tag]string{
	UnterminatedString:    "UnterminatedString",
	UnknownChar:           "UnknownChar",
	UnknownDelim:          "UnknownDelim",
	ExpectedOperator:      "ExpectedOperator",
	ExpectedExpression:    "ExpectedExpression",
	IfWithoutElse:         "IfWithoutElse",
	ElseWithoutIf:         "ElseWithoutIf",
	IndexIntoOperator:     "IndexIntoOperator",
	InvalidAssignTarget:   "InvalidAssignTarget",
	UnknownVariable:       "UnknownVariable",
	UnknownFunction:       "UnknownFunction",
	TypeMismatch:          "TypeMismatch",
	IndexOutOfRange:       "IndexOutOfRange",
	ReferenceStoredAsValue: "ReferenceStoredAsValue",
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "Unknown"
}

// Family groups a Tag under its class, used only for the "<Family>Error"
// label in formatted output.
type Family int

const (
	Tokenizer Family = iota
	Parser
	Runtime
)

func (f Family) String() string {
	switch f {
	case Tokenizer:
		return "TokenizerError"
	case Parser:
		return "ParseError"
	case Runtime:
		return "RuntimeError"
	default:
		return "Error"
	}
}

func familyOf(t Tag) Family {
	switch t {
	case UnterminatedString, UnknownChar:
		return Tokenizer
	case UnknownDelim, ExpectedOperator, ExpectedExpression, IfWithoutElse,
		ElseWithoutIf, IndexIntoOperator, InvalidAssignTarget:
		return Parser
	default:
		return Runtime
	}
}

// Error is RR's single error type: every TokenizerError, ParseError and
// RuntimeError in the taxonomy is one of these, discriminated by Tag.
type Error struct {
	Tag     Tag
	Message string // human-readable detail, e.g. the unknown function's argument types
	Source  string // full program source, for caret rendering; may be empty
	Pos     token.Position
}

// New builds an Error. msg may be empty when the tag name is self-explanatory.
func New(tag Tag, pos token.Position, source, msg string) *Error {
	return &Error{Tag: tag, Message: msg, Source: source, Pos: pos}
}

func (e *Error) Error() string {
	return e.Format()
}

// Format renders the error the way the CLI prints it: "--RR: " followed
// by the family/tag, an optional detail, and — when source is available —
// the offending line with a caret under the fault column.
func (e *Error) Format() string {
	var sb strings.Builder

	sb.WriteString("--RR: ")
	sb.WriteString(familyOf(e.Tag).String())
	sb.WriteString("{")
	sb.WriteString(e.Tag.String())
	sb.WriteString("}")
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Pos.Line > 0 {
		sb.WriteString(fmt.Sprintf(" (line %d, col %d)", e.Pos.Line, e.Pos.Column))
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		sb.WriteString("\n")
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
		sb.WriteString("^")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
