// Package token defines the position, span, and token model shared by the
// lexer, parser and interpreter.
package token

import "fmt"

// Position is a (index, line, column) triple locating a single character in
// a source buffer. All three fields are zero-based internally; callers that
// render a Position for a human (diagnostics, "L:C" strings) add one to
// Line and Column.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Advance moves the Position past ch, incrementing Offset and Column. A
// newline additionally bumps Line and resets Column to zero.
func (p Position) Advance(ch rune) Position {
	p.Offset++
	p.Column++
	if ch == '\n' {
		p.Line++
		p.Column = 0
	}
	return p
}

// Revert is the best-effort inverse of Advance for exactly one character.
// It is only used to construct end positions when walking backwards over a
// lexeme; column underflow clamps to zero and, past that, steals a line.
func (p Position) Revert() Position {
	p.Offset--
	p.Column--
	if p.Column < 0 {
		p.Column = 0
		if p.Line > 0 {
			p.Line--
		}
	}
	return p
}

// String renders the 1-based "line:column" form used in diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Span is a (begin, end) pair of Positions carried by every Token and every
// AST node. When no explicit end is supplied it equals begin.
type Span struct {
	Begin Position
	End   Position
}

// Family groups token Kinds that share a role in the grammar.
type Family int

const (
	FamilyLiteral Family = iota
	FamilyArithmeticOp
	FamilyCompOp
	FamilyAssignOp
	FamilyLogicalOp
	FamilyKeyword
	FamilyPunctuator
	FamilyIdentifier
	FamilyEOF
)

func (f Family) String() string {
	switch f {
	case FamilyLiteral:
		return "Literal"
	case FamilyArithmeticOp:
		return "ArithmeticOp"
	case FamilyCompOp:
		return "CompOp"
	case FamilyAssignOp:
		return "AssignOp"
	case FamilyLogicalOp:
		return "LogicalOp"
	case FamilyKeyword:
		return "Keyword"
	case FamilyPunctuator:
		return "Punctuator"
	case FamilyIdentifier:
		return "Identifier"
	case FamilyEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Kind is the enumerated value within a Family, e.g. Plus, EqEqual, If, Num.
// The concrete integer values are only meaningful within their own Family;
// a Token's Kind must always be read alongside its Family.
type Kind int

const (
	// Literal kinds
	Num Kind = iota
	Str
	Bool

	// ArithmeticOp kinds
	Plus
	Minus
	Star
	Slash
	DoubleStar

	// CompOp kinds
	Less
	Greater
	LessEqual
	GreaterEqual
	EqEqual
	NotEqual

	// AssignOp kinds
	Equal
	PlusEqual
	MinusEqual
	StarEqual
	SlashEqual
	DoubleStarEqual

	// LogicalOp kinds
	And
	Or
	Not

	// Keyword kinds
	If
	Elif
	Else
	For
	While
	Return

	// Punctuator kinds
	Semi
	Dot
	LParen
	RParen
	LBrack
	RBrack
	LBrace
	RBrace
	Comma

	// Identifier kind
	Name

	// EOF
	EndOfFile
)

var kindStrings = [...]string{
	Num: "Num", Str: "Str", Bool: "Bool",
	Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash", DoubleStar: "DoubleStar",
	Less: "Less", Greater: "Greater", LessEqual: "LessEqual", GreaterEqual: "GreaterEqual",
	EqEqual: "EqEqual", NotEqual: "NotEqual",
	Equal: "Equal", PlusEqual: "PlusEqual", MinusEqual: "MinusEqual", StarEqual: "StarEqual",
	SlashEqual: "SlashEqual", DoubleStarEqual: "DoubleStarEqual",
	And: "And", Or: "Or", Not: "Not",
	If: "If", Elif: "Elif", Else: "Else", For: "For", While: "While", Return: "Return",
	Semi: "Semi", Dot: "Dot", LParen: "LParen", RParen: "RParen", LBrack: "LBrack",
	RBrack: "RBrack", LBrace: "LBrace", RBrace: "RBrace", Comma: "Comma",
	Name: "Name", EndOfFile: "EOF",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindStrings) {
		return kindStrings[k]
	}
	return "UNKNOWN"
}

// Token is the lexer's unit of output: a family-tagged kind, the literal
// text that produced it, and its span in the source buffer.
type Token struct {
	Family Family
	Kind   Kind
	Lexeme string
	Span   Span
}

// New constructs a Token whose end position equals its begin position.
func New(family Family, kind Kind, lexeme string, begin Position) Token {
	return Token{Family: family, Kind: kind, Lexeme: lexeme, Span: Span{Begin: begin, End: begin}}
}

// NewSpan constructs a Token with an explicit span.
func NewSpan(family Family, kind Kind, lexeme string, span Span) Token {
	return Token{Family: family, Kind: kind, Lexeme: lexeme, Span: span}
}

// Is reports whether the token has the given family and kind.
func (t Token) Is(family Family, kind Kind) bool {
	return t.Family == family && t.Kind == kind
}

// Keywords maps the keyword surface to their Kind. and/or/not are
// word-shaped but resolve through LookupWordOperator instead, so a word
// run is tried as a boolean, then a keyword, then an operator, and only
// then falls back to an identifier.
var Keywords = map[string]Kind{
	"if":     If,
	"elif":   Elif,
	"else":   Else,
	"for":    For,
	"while":  While,
	"return": Return,
}

// boolLiterals maps the recognized spellings of true/false to their value.
var boolLiterals = map[string]bool{
	"True": true, "true": true, "TRUE": true,
	"False": false, "false": false, "FALSE": false,
}

// LookupBool reports whether word is a recognized boolean spelling and its
// value.
func LookupBool(word string) (value bool, ok bool) {
	v, ok := boolLiterals[word]
	return v, ok
}

// wordOperators maps the word-shaped logical operator spellings to their
// Kind, so that "and", "or" and "not" lex as LogicalOp tokens rather than
// Identifiers.
var wordOperators = map[string]Kind{
	"and": And,
	"or":  Or,
	"not": Not,
}

// LookupWordOperator reports whether word is one of the word-shaped logical
// operators.
func LookupWordOperator(word string) (kind Kind, ok bool) {
	kind, ok = wordOperators[word]
	return kind, ok
}
