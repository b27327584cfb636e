package parser

import (
	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/token"
)

// parseStatement tries each statement builder in a fixed order and returns
// the first match. A nil, nil result means none of the builders recognised
// the current token — the caller reports UnexpectedTokenError.
func (p *Parser) parseStatement() (ast.Statement, *errors.Diagnostic) {
	if stmt, err := p.ifElseNode(); err != nil {
		return nil, err
	} else if stmt != nil {
		return stmt, nil
	}
	if stmt, err := p.functionNode(); err != nil {
		return nil, err
	} else if stmt != nil {
		return stmt, nil
	}
	if stmt, err := p.returnNode(); err != nil {
		return nil, err
	} else if stmt != nil {
		return stmt, nil
	}
	if stmt, err := p.forLoopNode(); err != nil {
		return nil, err
	} else if stmt != nil {
		return stmt, nil
	}
	if stmt, err := p.callableNode(); err != nil {
		return nil, err
	} else if stmt != nil {
		return stmt, nil
	}
	if stmt, err := p.assignmentNode(); err != nil {
		return nil, err
	} else if stmt != nil {
		return stmt, nil
	}
	if stmt, err := p.reassignmentNode(); err != nil {
		return nil, err
	} else if stmt != nil {
		return stmt, nil
	}
	return nil, nil
}

// parseBody implements the body grammar: a brace-delimited block of zero or
// more statements, or — when '{' is absent — exactly one statement.
func (p *Parser) parseBody() ([]ast.Statement, *errors.Diagnostic) {
	if !p.at(token.FamilyPunctuator, token.LBrace) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return nil, p.errAt(errors.KindUnexpectedToken, "unexpected token: "+p.current().Lexeme, p.current().Span)
		}
		return []ast.Statement{stmt}, nil
	}

	p.advance(1) // '{'
	var stmts []ast.Statement
	for {
		p.skipSemicolons()
		if p.at(token.FamilyPunctuator, token.RBrace) {
			p.advance(1)
			return stmts, nil
		}
		if p.at(token.FamilyEOF, token.EndOfFile) {
			return nil, p.errAt(errors.KindMissingBrace, "missing closing '}'", p.current().Span)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return nil, p.errAt(errors.KindUnexpectedToken, "unexpected token: "+p.current().Lexeme, p.current().Span)
		}
		stmts = append(stmts, stmt)
	}
}

// assignmentNode recognises a declaration: "typeId name assignOp expr".
// The three-token lookahead is non-consuming on a mismatch, so other
// builders (in particular callableNode and reassignmentNode) still get a
// chance at the same tokens.
func (p *Parser) assignmentNode() (*ast.Assign, *errors.Diagnostic) {
	typeTok := p.current()
	nameTok := p.peek(1)
	opTok := p.peek(2)
	if typeTok.Family != token.FamilyIdentifier || nameTok.Family != token.FamilyIdentifier ||
		opTok.Family != token.FamilyAssignOp {
		return nil, nil
	}
	p.advance(3)

	if p.current().Family == token.FamilyKeyword {
		return nil, p.errAt(errors.KindInvalidSyntax, "expected an expression after '"+opTok.Lexeme+"'", p.current().Span)
	}
	value, err := p.logicalExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{
		Tok:          opTok,
		Name:         &ast.Identifier{Tok: nameTok, Name: nameTok.Lexeme},
		Value:        value,
		AssignOp:     opTok.Lexeme,
		DeclaredType: &ast.Identifier{Tok: typeTok, Name: typeTok.Lexeme},
	}, nil
}

// reassignmentNode recognises "dottedName assignOp expr" — no declared
// type, unlike assignmentNode. It backtracks past a consumed dotted name
// when no AssignOp follows.
func (p *Parser) reassignmentNode() (*ast.Assign, *errors.Diagnostic) {
	m := p.mark()
	name := p.dotChain()
	if name == nil {
		return nil, nil
	}
	opTok := p.current()
	if opTok.Family != token.FamilyAssignOp {
		p.reset(m)
		return nil, nil
	}
	p.advance(1)

	if p.current().Family == token.FamilyKeyword {
		return nil, p.errAt(errors.KindInvalidSyntax, "expected an expression after '"+opTok.Lexeme+"'", p.current().Span)
	}
	value, err := p.logicalExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Tok: opTok, Name: name, Value: value, AssignOp: opTok.Lexeme}, nil
}

// returnNode recognises "return" optionally followed by a value expression.
// A return with nothing after it — immediately before ';', '}' or EOF — is
// a bare return.
func (p *Parser) returnNode() (*ast.Return, *errors.Diagnostic) {
	if !p.at(token.FamilyKeyword, token.Return) {
		return nil, nil
	}
	tok := p.current()
	p.advance(1)

	switch {
	case p.at(token.FamilyPunctuator, token.Semi),
		p.at(token.FamilyPunctuator, token.RBrace),
		p.at(token.FamilyEOF, token.EndOfFile):
		return &ast.Return{Tok: tok}, nil
	}

	value, err := p.logicalExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Tok: tok, Value: value}, nil
}
