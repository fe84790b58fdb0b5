package token

// Kind identifies the coarse lexical category of a Token.
type Kind int

const (
	Newline Kind = iota
	Delim
	Literal
	Symbol
	End
)

func (k Kind) String() string {
	switch k {
	case Newline:
		return "Newline"
	case Delim:
		return "Delim"
	case Literal:
		return "Literal"
	case Symbol:
		return "Symbol"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}

// SubKind refines a Literal or Symbol token. The zero value (None) is used
// by Kinds that carry no sub-classification (Newline, Delim, End).
type SubKind int

const (
	SubNone SubKind = iota
	// Literal sub-kinds.
	SubBool
	SubInt
	SubFloat
	SubStr
	// Symbol sub-kinds.
	SubLetter
	SubSpecial
)

func (s SubKind) String() string {
	switch s {
	case SubBool:
		return "Bool"
	case SubInt:
		return "Int"
	case SubFloat:
		return "Float"
	case SubStr:
		return "Str"
	case SubLetter:
		return "Letter"
	case SubSpecial:
		return "Special"
	default:
		return "None"
	}
}

// Position locates a token within the original source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in bytes
	Offset int // 0-based byte offset
}

// Token is a single lexical unit produced by the tokenizer.
type Token struct {
	Kind    Kind
	Sub     SubKind
	Literal string // the raw source text this token spans
	Pos     Position
}

func (t Token) String() string {
	if t.Sub == SubNone {
		return t.Kind.String() + "(" + t.Literal + ")"
	}
	return t.Kind.String() + "/" + t.Sub.String() + "(" + t.Literal + ")"
}
