package parser

import (
	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/token"
)

// callableNode recognises name(args...) — a dotted name immediately
// followed by '('. It backtracks to its starting position and reports
// "not applicable" (nil, nil) rather than an error when the name isn't
// followed by a call, so term() and the statement dispatcher can fall
// through to plain identifier or declaration parsing.
func (p *Parser) callableNode() (*ast.Callable, *errors.Diagnostic) {
	m := p.mark()
	name := p.dotChain()
	if name == nil {
		return nil, nil
	}
	if !p.at(token.FamilyPunctuator, token.LParen) {
		p.reset(m)
		return nil, nil
	}
	params, rparen, err := p.actualParameters()
	if err != nil {
		return nil, err
	}
	return &ast.Callable{Tok: rparen, Name: name, Params: params}, nil
}

// actualParameters consumes a parenthesized, comma-separated expression
// list and returns the token of its closing ')', used as the call node's
// span anchor.
func (p *Parser) actualParameters() ([]ast.Expression, token.Token, *errors.Diagnostic) {
	p.advance(1) // '('
	var params []ast.Expression
	for !p.at(token.FamilyPunctuator, token.RParen) {
		if p.at(token.FamilyEOF, token.EndOfFile) {
			return nil, token.Token{}, p.errAt(errors.KindMissingParen, "missing closing ')'", p.current().Span)
		}
		expr, err := p.logicalExpr()
		if err != nil {
			return nil, token.Token{}, err
		}
		params = append(params, expr)
		if p.at(token.FamilyPunctuator, token.Comma) {
			p.advance(1)
		}
	}
	rparen := p.current()
	p.advance(1)
	return params, rparen, nil
}

// functionNode recognises "typeId name(params) { body }". The lookahead is
// two identifiers followed by '(': a bare peek, so a non-match leaves the
// cursor untouched and the dispatcher falls through to the next builder.
func (p *Parser) functionNode() (*ast.Function, *errors.Diagnostic) {
	typeTok := p.current()
	nameTok := p.peek(1)
	parenTok := p.peek(2)
	if typeTok.Family != token.FamilyIdentifier || nameTok.Family != token.FamilyIdentifier ||
		!parenTok.Is(token.FamilyPunctuator, token.LParen) {
		return nil, nil
	}
	p.advance(2)

	params, err := p.formalParameters()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Tok:        typeTok,
		ReturnType: &ast.Identifier{Tok: typeTok, Name: typeTok.Lexeme},
		Name:       &ast.Identifier{Tok: nameTok, Name: nameTok.Lexeme},
		Params:     params,
		Body:       body,
	}, nil
}

// formalParameters consumes "(type1 name1, type2 name2, ...)".
func (p *Parser) formalParameters() ([]ast.Parameter, *errors.Diagnostic) {
	p.advance(1) // '('
	var params []ast.Parameter
	for !p.at(token.FamilyPunctuator, token.RParen) {
		if p.at(token.FamilyEOF, token.EndOfFile) {
			return nil, p.errAt(errors.KindMissingParen, "missing closing ')'", p.current().Span)
		}
		typeTok := p.current()
		if typeTok.Family != token.FamilyIdentifier {
			return nil, p.errAt(errors.KindInvalidSyntax, "expected a parameter type", typeTok.Span)
		}
		nameTok := p.peek(1)
		if nameTok.Family != token.FamilyIdentifier {
			return nil, p.errAt(errors.KindInvalidSyntax, "expected a parameter name", nameTok.Span)
		}
		p.advance(2)
		params = append(params, ast.Parameter{
			Type: &ast.Identifier{Tok: typeTok, Name: typeTok.Lexeme},
			Name: &ast.Identifier{Tok: nameTok, Name: nameTok.Lexeme},
		})
		if p.at(token.FamilyPunctuator, token.Comma) {
			p.advance(1)
		}
	}
	p.advance(1) // ')'
	return params, nil
}
