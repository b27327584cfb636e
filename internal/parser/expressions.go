package parser

import (
	"strconv"
	"strings"

	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/token"
)

// logicalExpr -> compExpr (('and' | 'or') logicalExpr)?
//
// Right-associative by construction: the right-hand side recurses into
// logicalExpr rather than looping, matching the grammar's literal shape.
func (p *Parser) logicalExpr() (ast.Expression, *errors.Diagnostic) {
	left, err := p.compExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Family == token.FamilyLogicalOp && (tok.Kind == token.And || tok.Kind == token.Or) {
		p.advance(1)
		right, err := p.logicalExpr()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Tok: tok, Left: left, Op: tok.Lexeme, Right: right}, nil
	}
	return left, nil
}

// compExpr -> mathExpr (compOp compExpr)?
func (p *Parser) compExpr() (ast.Expression, *errors.Diagnostic) {
	left, err := p.mathExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Family == token.FamilyCompOp {
		p.advance(1)
		right, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		return &ast.CompOp{Tok: tok, Left: left, Op: tok.Lexeme, Right: right}, nil
	}
	return left, nil
}

// mathExpr -> factor (('+' | '-') mathExpr)?
func (p *Parser) mathExpr() (ast.Expression, *errors.Diagnostic) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Is(token.FamilyArithmeticOp, token.Plus) || tok.Is(token.FamilyArithmeticOp, token.Minus) {
		p.advance(1)
		right, err := p.mathExpr()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Tok: tok, Left: left, Op: tok.Lexeme, Right: right}, nil
	}
	return left, nil
}

// factor -> term (('*' | '/' | '**') factor)?
func (p *Parser) factor() (ast.Expression, *errors.Diagnostic) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Family == token.FamilyArithmeticOp &&
		(tok.Kind == token.Star || tok.Kind == token.Slash || tok.Kind == token.DoubleStar) {
		p.advance(1)
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Tok: tok, Left: left, Op: tok.Lexeme, Right: right}, nil
	}
	return left, nil
}

// term is the grammar's leaf: a literal, a unary operator applied to
// another term, a parenthesized group, or an identifier — either a call
// (name immediately followed by '(') or a bare (possibly dotted) name.
func (p *Parser) term() (ast.Expression, *errors.Diagnostic) {
	tok := p.current()

	if tok.Family == token.FamilyLiteral {
		switch tok.Kind {
		case token.Num:
			p.advance(1)
			return numberFromToken(tok), nil
		case token.Str:
			p.advance(1)
			return &ast.String{Tok: tok, Value: tok.Lexeme}, nil
		case token.Bool:
			p.advance(1)
			val, _ := token.LookupBool(tok.Lexeme)
			return &ast.Bool{Tok: tok, Value: val}, nil
		}
	}

	if tok.Is(token.FamilyArithmeticOp, token.Minus) {
		p.advance(1)
		operand, err := p.term()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Tok: tok, Op: "-", Operand: operand}, nil
	}

	if tok.Is(token.FamilyLogicalOp, token.Not) {
		p.advance(1)
		operand, err := p.term()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Tok: tok, Op: "not", Operand: operand}, nil
	}

	if tok.Is(token.FamilyPunctuator, token.LParen) {
		p.advance(1)
		expr, err := p.logicalExpr()
		if err != nil {
			return nil, err
		}
		if !p.at(token.FamilyPunctuator, token.RParen) {
			return nil, p.errAt(errors.KindMissingParen, "missing closing ')'", p.current().Span)
		}
		p.advance(1)
		return expr, nil
	}

	if tok.Family == token.FamilyIdentifier {
		call, err := p.callableNode()
		if err != nil {
			return nil, err
		}
		if call != nil {
			return call, nil
		}
		if id := p.dotChain(); id != nil {
			return id, nil
		}
	}

	return nil, p.errAt(errors.KindMissingExpr, "expected an expression, found "+tok.Lexeme, tok.Span)
}

func numberFromToken(tok token.Token) *ast.Number {
	isInt := !strings.Contains(tok.Lexeme, ".")
	val, _ := strconv.ParseFloat(tok.Lexeme, 64)
	return &ast.Number{Tok: tok, Value: val, IsInt: isInt}
}

// dotChain consumes a run of identifiers joined by '.', building the linked
// Identifier chain a.b.c -> Identifier{a, Chained: Identifier{b, Chained:
// Identifier{c}}}. Returns nil without consuming anything if the current
// token isn't an identifier.
func (p *Parser) dotChain() *ast.Identifier {
	if !p.at(token.FamilyIdentifier, token.Name) {
		return nil
	}
	names := []token.Token{p.current()}
	p.advance(1)
	for p.at(token.FamilyPunctuator, token.Dot) {
		m := p.mark()
		p.advance(1)
		if !p.at(token.FamilyIdentifier, token.Name) {
			p.reset(m)
			break
		}
		names = append(names, p.current())
		p.advance(1)
	}
	return buildIdentifierChain(names, 0)
}

func buildIdentifierChain(names []token.Token, i int) *ast.Identifier {
	id := &ast.Identifier{Tok: names[i], Name: names[i].Lexeme}
	if i+1 < len(names) {
		id.Chained = buildIdentifierChain(names, i+1)
	}
	return id
}
