// Package ast defines RR's abstract syntax tree node types (spec §3).
//
// Grounded on the teacher's ast.Node interface shape
// (internal/ast/ast.go): every node reports a token literal, a source
// position, and a debug string. RR folds statement and expression nodes
// into a single Node interface — unlike DWScript, RR has no statement
// forms that are not also expressions (every RR construct yields a
// value, per spec §3's AST node table).
package ast

import "github.com/ivangav/rr/internal/token"

// Node is the base interface every AST node satisfies.
type Node interface {
	// TokenLiteral returns the literal text of the token this node is
	// most closely associated with, for diagnostics.
	TokenLiteral() string
	// String renders the node for debugging and AST-dump tracing.
	String() string
	// Pos returns the node's source position for error reporting.
	Pos() token.Position
}

// Statement is a Statement node: a sequence of child nodes whose value is
// its last child's value (spec §3). An empty Statement evaluates to None.
type Statement struct {
	Children []Node
	pos      token.Position
}

func NewStatement(pos token.Position, children ...Node) *Statement {
	return &Statement{Children: children, pos: pos}
}

func (s *Statement) TokenLiteral() string  { return "{statement}" }
func (s *Statement) Pos() token.Position   { return s.pos }
func (s *Statement) String() string {
	out := "{"
	for i, c := range s.Children {
		if i > 0 {
			out += "; "
		}
		out += c.String()
	}
	return out + "}"
}

// Literal carries an owned value.Value directly — the spec's Value type
// lives in internal/value; ast imports it via an opaque carrier to avoid
// a circular dependency with the evaluator, mirroring the teacher's
// ast.Identifier carrying a resolved *TypeAnnotation set by a later pass.
type Literal struct {
	Lit LiteralValue
	tok token.Token
}

// LiteralValue is satisfied by value.Value; declared here as an interface
// so ast does not need to import internal/value, matching how the
// teacher keeps ast free of interp-package imports.
type LiteralValue interface {
	Render() string
}

func NewLiteral(tok token.Token, v LiteralValue) *Literal {
	return &Literal{Lit: v, tok: tok}
}

func (l *Literal) TokenLiteral() string { return l.tok.Literal }
func (l *Literal) Pos() token.Position  { return l.tok.Pos }
func (l *Literal) String() string       { return l.Lit.Render() }

// Var references a variable by name.
type Var struct {
	Name string
	tok  token.Token
}

func NewVar(tok token.Token) *Var { return &Var{Name: tok.Literal, tok: tok} }

func (v *Var) TokenLiteral() string { return v.tok.Literal }
func (v *Var) Pos() token.Position  { return v.tok.Pos }
func (v *Var) String() string       { return v.Name }

// Fun is a bare reference to a registered function name, looked up at its
// enclosing Evaluate call site (spec §3, §9).
type Fun struct {
	Name string
	tok  token.Token
}

func NewFun(tok token.Token) *Fun { return &Fun{Name: tok.Literal, tok: tok} }

func (f *Fun) TokenLiteral() string { return f.tok.Literal }
func (f *Fun) Pos() token.Position  { return f.tok.Pos }
func (f *Fun) String() string       { return f.Name }

// Op is an operator node: 0 children (function-like reference, spec §9),
// 1 (prefix unary) or 2 (binary).
type Op struct {
	Name     string
	Children []Node
	tok      token.Token
}

func NewOp(tok token.Token, children ...Node) *Op {
	return &Op{Name: tok.Literal, Children: children, tok: tok}
}

func (o *Op) TokenLiteral() string { return o.tok.Literal }
func (o *Op) Pos() token.Position  { return o.tok.Pos }
func (o *Op) String() string {
	switch len(o.Children) {
	case 0:
		return o.Name
	case 1:
		return "(" + o.Name + " " + o.Children[0].String() + ")"
	default:
		return "(" + o.Children[0].String() + " " + o.Name + " " + o.Children[1].String() + ")"
	}
}

// AddChild appends a child to an Op node (used by the parser to attach a
// prefix operator's operand). A childless Op followed by "(" keeps no
// children; postfix attachment wraps it in an Evaluate instead.
func (o *Op) AddChild(n Node) { o.Children = append(o.Children, n) }

// If is a conditional expression: exactly 3 children (condition, then,
// else).
type If struct {
	Cond, Then, Else Node
	pos              token.Position
}

func NewIf(pos token.Position, cond, then, els Node) *If {
	return &If{Cond: cond, Then: then, Else: els, pos: pos}
}

func (i *If) TokenLiteral() string { return "if" }
func (i *If) Pos() token.Position  { return i.pos }
func (i *If) String() string {
	return "if " + i.Cond.String() + " " + i.Then.String() + " else " + i.Else.String()
}

// Csv is a comma-separated list of expressions. Call arguments and list
// literals always use a Csv, so it may also hold a single item, or none
// for an empty call like f(). It never nests directly inside another Csv
// (spec §3 invariant).
type Csv struct {
	Items []Node
	pos   token.Position
}

func NewCsv(pos token.Position, items ...Node) *Csv {
	return &Csv{Items: items, pos: pos}
}

func (c *Csv) TokenLiteral() string { return "," }
func (c *Csv) Pos() token.Position  { return c.pos }
func (c *Csv) String() string {
	out := ""
	for i, it := range c.Items {
		if i > 0 {
			out += ","
		}
		out += it.String()
	}
	return out
}

// Append adds an expression to the Csv, used while parsing a growing
// comma-separated list.
func (c *Csv) Append(n Node) { c.Items = append(c.Items, n) }

// ListBuilder wraps a single Csv child and evaluates to a List value.
type ListBuilder struct {
	Items *Csv
	pos   token.Position
}

func NewListBuilder(pos token.Position, items *Csv) *ListBuilder {
	return &ListBuilder{Items: items, pos: pos}
}

func (lb *ListBuilder) TokenLiteral() string { return "[" }
func (lb *ListBuilder) Pos() token.Position  { return lb.pos }
func (lb *ListBuilder) String() string       { return "[" + lb.Items.String() + "]" }

// Evaluate is a call: callee (child 0) applied to a Csv of arguments
// (child 1).
type Evaluate struct {
	Callee Node
	Args   *Csv
	pos    token.Position
}

func NewEvaluate(pos token.Position, callee Node, args *Csv) *Evaluate {
	return &Evaluate{Callee: callee, Args: args, pos: pos}
}

func (e *Evaluate) TokenLiteral() string { return "(" }
func (e *Evaluate) Pos() token.Position  { return e.pos }
func (e *Evaluate) String() string {
	return e.Callee.String() + "(" + e.Args.String() + ")"
}

// Index is a collection[expr] access.
type Index struct {
	Collection Node
	IndexExpr  Node
	pos        token.Position
}

func NewIndex(pos token.Position, collection, idx Node) *Index {
	return &Index{Collection: collection, IndexExpr: idx, pos: pos}
}

func (ix *Index) TokenLiteral() string { return "[" }
func (ix *Index) Pos() token.Position  { return ix.pos }
func (ix *Index) String() string {
	return ix.Collection.String() + "[" + ix.IndexExpr.String() + "]"
}
