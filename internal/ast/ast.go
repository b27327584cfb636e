package ast

import (
	"strconv"
	"strings"

	"github.com/sanmaykant/viper/internal/token"
)

// Node is implemented by every AST node. Every node carries a span into the
// original source buffer, even after parsing discards the token stream.
type Node interface {
	TokenLiteral() string
	String() string
	Span() token.Span
}

// Expression is a node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action; it may still produce a
// return value that propagates out of a block (see Return).
type Statement interface {
	Node
	statementNode()
}

// Program is the root of a parsed source buffer or REPL block: a flat list
// of top-level statements in source order.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Span() token.Span {
	if len(p.Statements) > 0 {
		return token.Span{Begin: p.Statements[0].Span().Begin, End: p.Statements[len(p.Statements)-1].Span().End}
	}
	return token.Span{}
}

// Number is an integer or floating-point literal. IsInt distinguishes the
// two forms the lexer produces from a digit run with or without a '.'.
type Number struct {
	Tok   token.Token
	Value float64
	IsInt bool
}

func (n *Number) expressionNode()      {}
func (n *Number) TokenLiteral() string { return n.Tok.Lexeme }
func (n *Number) Span() token.Span     { return n.Tok.Span }
func (n *Number) String() string {
	if n.IsInt {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// String is a string literal; the lexeme already excludes its delimiters.
type String struct {
	Tok   token.Token
	Value string
}

func (s *String) expressionNode()      {}
func (s *String) TokenLiteral() string { return s.Tok.Lexeme }
func (s *String) Span() token.Span     { return s.Tok.Span }
func (s *String) String() string       { return "\"" + s.Value + "\"" }

// Bool is a boolean literal (True/true/TRUE or False/false/FALSE).
type Bool struct {
	Tok   token.Token
	Value bool
}

func (b *Bool) expressionNode()      {}
func (b *Bool) TokenLiteral() string { return b.Tok.Lexeme }
func (b *Bool) Span() token.Span     { return b.Tok.Span }
func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Identifier is a single name, optionally followed by a chained identifier
// that models dotted access (a.b.c), built as a linked list: Identifier{a,
// Chained: Identifier{b, Chained: Identifier{c}}}.
type Identifier struct {
	Tok     token.Token
	Name    string
	Chained *Identifier
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Tok.Lexeme }
func (i *Identifier) Span() token.Span {
	end := i.Tok.Span.End
	if i.Chained != nil {
		end = i.Chained.Span().End
	}
	return token.Span{Begin: i.Tok.Span.Begin, End: end}
}
func (i *Identifier) String() string {
	if i.Chained == nil {
		return i.Name
	}
	return i.Name + "." + i.Chained.String()
}

// UnaryOp is a prefix operator applied to a single operand: "-" (negate) or
// "not" (logical negation).
type UnaryOp struct {
	Tok     token.Token
	Op      string
	Operand Expression
}

func (u *UnaryOp) expressionNode()      {}
func (u *UnaryOp) TokenLiteral() string { return u.Tok.Lexeme }
func (u *UnaryOp) Span() token.Span     { return token.Span{Begin: u.Tok.Span.Begin, End: u.Operand.Span().End} }
func (u *UnaryOp) String() string {
	sep := ""
	if len(u.Op) > 0 && isWordStart(u.Op[0]) {
		sep = " "
	}
	return "(" + u.Op + sep + u.Operand.String() + ")"
}

func isWordStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// BinOp is an arithmetic or logical binary operator: + - * / ** and or.
type BinOp struct {
	Tok   token.Token
	Left  Expression
	Op    string
	Right Expression
}

func (b *BinOp) expressionNode()      {}
func (b *BinOp) TokenLiteral() string { return b.Tok.Lexeme }
func (b *BinOp) Span() token.Span     { return token.Span{Begin: b.Left.Span().Begin, End: b.Right.Span().End} }
func (b *BinOp) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

// CompOp is a comparison operator: < > <= >= == !=. Kept distinct from
// BinOp because comparisons never chain arithmetically and always yield a
// Bool.
type CompOp struct {
	Tok   token.Token
	Left  Expression
	Op    string
	Right Expression
}

func (c *CompOp) expressionNode()      {}
func (c *CompOp) TokenLiteral() string { return c.Tok.Lexeme }
func (c *CompOp) Span() token.Span     { return token.Span{Begin: c.Left.Span().Begin, End: c.Right.Span().End} }
func (c *CompOp) String() string {
	return "(" + c.Left.String() + " " + c.Op + " " + c.Right.String() + ")"
}
