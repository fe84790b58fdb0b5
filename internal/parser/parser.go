// Package parser implements RR's operator-precedence expression parser
// (spec §4.3): three mutually recursive productions threading a shared
// token cursor, with contextual postfix attachment for call application
// (f(...)) and indexing (a[...]).
//
// Grounded on the teacher's parser.Parser / parser/cursor.go
// cursor-threading style (internal/parser/cursor.go): RR reuses that
// shape over a flat []token.Token instead of the teacher's streaming
// lexer-backed cursor, since RR tokenizes eagerly (internal/lexer.Tokenize).
package parser

import (
	"fmt"

	"github.com/ivangav/rr/internal/ast"
	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/rrerr"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// Parser builds an AST from a token stream, resolving operator vs.
// function symbols against the shared Environment's priority table
// (spec §4.2's discriminator).
type Parser struct {
	toks   []token.Token
	at     int
	env    *env.Environment
	source string
}

// New creates a Parser over toks. env supplies the operator-priority and
// function tables the parser consults while building the AST. source is
// the original program text, kept only for error messages' caret lines.
func New(toks []token.Token, environment *env.Environment, source string) *Parser {
	return &Parser{toks: toks, env: environment, source: source}
}

// ParseProgram parses the entire token stream as a single top-level
// block of statements (spec §6's CLI contract).
func (p *Parser) ParseProgram() (*ast.Statement, error) {
	return p.parseBlockStatement()
}

func (p *Parser) current() token.Token {
	if p.at >= len(p.toks) {
		return token.Token{Kind: token.End}
	}
	return p.toks[p.at]
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.at < len(p.toks) {
		p.at++
	}
	return tok
}

func (p *Parser) atEnd() bool {
	return p.current().Kind == token.End
}

func isDelim(tok token.Token, lit string) bool {
	return tok.Kind == token.Delim && tok.Literal == lit
}

func (p *Parser) skipNewlines() {
	for p.current().Kind == token.Newline {
		p.advance()
	}
}

// parseBlockStatement returns a Statement node; it consumes tokens until
// a '}' (consumed) or end-of-input (spec §4.3).
func (p *Parser) parseBlockStatement() (*ast.Statement, error) {
	pos := p.current().Pos
	stmt := ast.NewStatement(pos)
	for {
		p.skipNewlines()
		if p.atEnd() {
			break
		}
		if isDelim(p.current(), "}") {
			p.advance()
			break
		}
		line, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		stmt.Children = append(stmt.Children, line)
	}
	return stmt, nil
}

// parseLine parses one logical line: an expression followed by zero or
// more postfix/operator/comma continuations, per spec §4.3's algorithm.
func (p *Parser) parseLine() (ast.Node, error) {
	return p.parseOperatorExpression(false)
}

// parseIfOperand parses one of an `if`'s three clauses (spec §4.4): the
// same operator-precedence continuation loop as parseLine, so a
// condition like `1 == 1` parses as a full expression rather than the
// bare `1` that a single parseNextExpression call would stop at. Unlike
// parseLine, an unrecognized continuation token is not an error here:
// it marks the start of the if's next clause, so parsing simply stops
// and leaves the token for the caller.
func (p *Parser) parseIfOperand() (ast.Node, error) {
	return p.parseOperatorExpression(true)
}

// parseOperatorExpression implements the continuation loop shared by
// parseLine and parseIfOperand. When stopOnUnknown is true, a token
// that matches none of the continuation cases ends the expression
// instead of raising ExpectedOperator.
func (p *Parser) parseOperatorExpression(stopOnUnknown bool) (ast.Node, error) {
	root, err := p.parseNextExpression()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.current()
		switch {
		case tok.Kind == token.Newline:
			p.advance()
			return root, nil

		case tok.Kind == token.End:
			return root, nil

		case isDelim(tok, ")"):
			p.advance()
			if !isCsvOrStatement(root) {
				root = ast.NewStatement(root.Pos(), root)
			}
			return root, nil

		case isDelim(tok, "]"):
			p.advance()
			return root, nil

		case isDelim(tok, "}"):
			// Caller (parseBlockStatement) decides; do not consume.
			return root, nil

		case isDelim(tok, ","):
			p.advance()
			csv := asCsv(root)
			next, err := p.parseNextExpression()
			if err != nil {
				return nil, err
			}
			csv.Append(next)
			root = csv

		case isDelim(tok, "["):
			p.advance()
			idxExpr, err := p.parseLine()
			if err != nil {
				return nil, err
			}
			root, err = p.applyPostfixIndex(root, idxExpr)
			if err != nil {
				return nil, err
			}

		case isDelim(tok, "("):
			p.advance()
			var args *ast.Csv
			if isDelim(p.current(), ")") {
				p.advance()
				args = ast.NewCsv(tok.Pos)
			} else {
				inner, err := p.parseLine()
				if err != nil {
					return nil, err
				}
				args = asCsv(inner)
			}
			root = p.applyPostfixEvaluate(root, args)

		case tok.Kind == token.Symbol && p.env.IsOperator(tok.Literal):
			p.advance()
			root, err = p.insertOp(root, tok)
			if err != nil {
				return nil, err
			}

		case stopOnUnknown:
			return root, nil

		default:
			return nil, rrerr.New(rrerr.ExpectedOperator, tok.Pos, p.source,
				fmt.Sprintf("expected an operator, got %q", tok.Literal))
		}
	}
}

// parseNextExpression returns exactly one independent expression
// (spec §4.3).
func (p *Parser) parseNextExpression() (ast.Node, error) {
	tok := p.current()

	switch {
	case isDelim(tok, "("):
		p.advance()
		return p.parseLine()

	case isDelim(tok, "{"):
		p.advance()
		return p.parseBlockStatement()

	case isDelim(tok, "["):
		p.advance()
		line, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		return ast.NewListBuilder(tok.Pos, asCsv(line)), nil

	case tok.Kind == token.Literal:
		p.advance()
		lit, err := literalValue(tok)
		if err != nil {
			return nil, err
		}
		return ast.NewLiteral(tok, lit), nil

	case tok.Kind == token.Symbol && tok.Literal == "if":
		p.advance()
		cond, err := p.parseIfOperand()
		if err != nil {
			return nil, err
		}
		then, err := p.parseIfOperand()
		if err != nil {
			return nil, err
		}
		if !(p.current().Kind == token.Symbol && p.current().Literal == "else") {
			return nil, rrerr.New(rrerr.IfWithoutElse, tok.Pos, p.source, "if has no matching else")
		}
		p.advance()
		elseExpr, err := p.parseIfOperand()
		if err != nil {
			return nil, err
		}
		return ast.NewIf(tok.Pos, cond, then, elseExpr), nil

	case tok.Kind == token.Symbol && tok.Literal == "else":
		return nil, rrerr.New(rrerr.ElseWithoutIf, tok.Pos, p.source, "else with no matching if")

	case tok.Kind == token.Symbol && tok.Literal == "true":
		p.advance()
		return ast.NewLiteral(tok, value.NewBool(true)), nil

	case tok.Kind == token.Symbol && tok.Literal == "false":
		p.advance()
		return ast.NewLiteral(tok, value.NewBool(false)), nil

	case tok.Kind == token.Symbol && p.env.IsOperator(tok.Literal):
		p.advance()
		opNode := ast.NewOp(tok)
		if isDelim(p.current(), "(") || isDelim(p.current(), "[") {
			// Childless: "(" attaches arguments via postfix Evaluate: a
			// bare "[" is left for postfix Index to reject, since
			// indexing an operator reference itself is meaningless
			// (spec's IndexIntoOperator).
			return opNode, nil
		}
		operand, err := p.parseNextExpression()
		if err != nil {
			return nil, err
		}
		opNode.AddChild(operand)
		return opNode, nil

	case tok.Kind == token.Symbol && p.env.IsFunction(tok.Literal):
		p.advance()
		return ast.NewFun(tok), nil

	case tok.Kind == token.Symbol:
		p.advance()
		return ast.NewVar(tok), nil

	case tok.Kind == token.Delim:
		return nil, rrerr.New(rrerr.UnknownDelim, tok.Pos, p.source,
			fmt.Sprintf("unexpected delimiter %q", tok.Literal))

	default:
		return nil, rrerr.New(rrerr.ExpectedExpression, tok.Pos, p.source,
			fmt.Sprintf("expected an expression, got %s", tok.Kind))
	}
}

// insertOp performs operator-precedence insertion (spec §4.3). "=" is
// the one right-associative operator (spec §4.4): a run of "=" at equal
// priority descends rather than wrapping, so chained assignments like
// `a = b = 1` nest as `a = (b = 1)` instead of `(a = b) = 1`.
func (p *Parser) insertOp(root ast.Node, opTok token.Token) (ast.Node, error) {
	name := opTok.Literal

	if op, ok := root.(*ast.Op); ok && len(op.Children) > 0 {
		rightAssocChain := name == "=" && op.Name == "="
		if p.env.Priority(name) > p.env.Priority(op.Name) || rightAssocChain {
			last := len(op.Children) - 1
			child, err := p.insertOp(op.Children[last], opTok)
			if err != nil {
				return nil, err
			}
			op.Children[last] = child
			return op, nil
		}
		rhs, err := p.parseNextExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewOp(opTok, root, rhs), nil
	}

	if csv, ok := root.(*ast.Csv); ok {
		last := len(csv.Items) - 1
		child, err := p.insertOp(csv.Items[last], opTok)
		if err != nil {
			return nil, err
		}
		csv.Items[last] = child
		return csv, nil
	}

	rhs, err := p.parseNextExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewOp(opTok, root, rhs), nil
}

// attachPoint is the node a postfix application or index should wrap,
// plus how to splice the wrapped replacement back into its parent (nil
// when root itself is the target, per apply_postfix's "wrap the whole
// root" case).
type attachPoint struct {
	node ast.Node
	set  func(ast.Node)
}

// locateAttachPoint implements apply_postfix's shared target-finding
// rule (spec §4.3): descend through the last child of each Op until
// that child is not an Op or is a childless Op.
func locateAttachPoint(root ast.Node) attachPoint {
	op, ok := root.(*ast.Op)
	if !ok || len(op.Children) == 0 {
		return attachPoint{node: root}
	}
	parent := op
	for {
		idx := len(parent.Children) - 1
		last := parent.Children[idx]
		lastOp, isOp := last.(*ast.Op)
		if !isOp || len(lastOp.Children) == 0 {
			p, i := parent, idx
			return attachPoint{node: last, set: func(n ast.Node) { p.Children[i] = n }}
		}
		parent = lastOp
	}
}

func (p *Parser) applyPostfixEvaluate(root ast.Node, args *ast.Csv) ast.Node {
	pt := locateAttachPoint(root)
	wrapped := ast.NewEvaluate(pt.node.Pos(), pt.node, args)
	if pt.set == nil {
		return wrapped
	}
	pt.set(wrapped)
	return root
}

func (p *Parser) applyPostfixIndex(root ast.Node, idx ast.Node) (ast.Node, error) {
	pt := locateAttachPoint(root)
	if op, ok := pt.node.(*ast.Op); ok && len(op.Children) == 0 {
		return nil, rrerr.New(rrerr.IndexIntoOperator, op.Pos(), p.source,
			fmt.Sprintf("cannot index operator reference %q", op.Name))
	}
	wrapped := ast.NewIndex(pt.node.Pos(), pt.node, idx)
	if pt.set == nil {
		return wrapped, nil
	}
	pt.set(wrapped)
	return root, nil
}

func isCsvOrStatement(n ast.Node) bool {
	switch n.(type) {
	case *ast.Csv, *ast.Statement:
		return true
	default:
		return false
	}
}

// asCsv wraps n in a new Csv unless it already is one.
func asCsv(n ast.Node) *ast.Csv {
	if csv, ok := n.(*ast.Csv); ok {
		return csv
	}
	return ast.NewCsv(n.Pos(), n)
}

func literalValue(tok token.Token) (value.Value, error) {
	switch tok.Sub {
	case token.SubStr:
		return value.NewStr(tok.Literal), nil
	case token.SubFloat:
		f, err := parseFloat(tok.Literal)
		if err != nil {
			return value.Value{}, rrerr.New(rrerr.ExpectedExpression, tok.Pos, "",
				fmt.Sprintf("malformed float literal %q", tok.Literal))
		}
		return value.NewFloat(f), nil
	default: // token.SubInt
		i, err := parseInt(tok.Literal)
		if err != nil {
			return value.Value{}, rrerr.New(rrerr.ExpectedExpression, tok.Pos, "",
				fmt.Sprintf("malformed integer literal %q", tok.Literal))
		}
		return value.NewInt(i), nil
	}
}
