package parser

import (
	"strings"

	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/token"
)

// Parser walks a buffered token slice with a mutable index cursor:
// advance/revert move it, mark/reset bracket a speculative parse that may
// need rolling back.
type Parser struct {
	tokens []token.Token
	idx    int
	lines  []string
}

// New constructs a Parser over tokens (including the trailing EOF token)
// and source, used only to build the excerpt line carried by diagnostics.
func New(tokens []token.Token, source string) *Parser {
	return &Parser{tokens: tokens, lines: strings.Split(source, "\n")}
}

// Parse consumes the whole token stream, returning a Program of top-level
// statements separated by optional ';'. It stops at the first error.
func Parse(tokens []token.Token, source string) (*ast.Program, *errors.Diagnostic) {
	return New(tokens, source).parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, *errors.Diagnostic) {
	var stmts []ast.Statement
	for !p.at(token.FamilyEOF, token.EndOfFile) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return nil, p.errAt(errors.KindUnexpectedToken, "unexpected token: "+p.current().Lexeme, p.current().Span)
		}
		stmts = append(stmts, stmt)
		p.skipSemicolons()
	}
	return &ast.Program{Statements: stmts}, nil
}

func (p *Parser) skipSemicolons() {
	for p.at(token.FamilyPunctuator, token.Semi) {
		p.advance(1)
	}
}

func (p *Parser) sourceLine(line int) string {
	if line < 0 || line >= len(p.lines) {
		return ""
	}
	return p.lines[line]
}

func (p *Parser) errAt(kind, detail string, span token.Span) *errors.Diagnostic {
	return errors.NewSpan(kind, detail, p.sourceLine(span.Begin.Line), span.Begin, span.End)
}
