package parser

import (
	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/token"
)

// ifElseNode recognises "if cond body (elif cond body)* (else body)?".
func (p *Parser) ifElseNode() (*ast.IfElse, *errors.Diagnostic) {
	if !p.at(token.FamilyKeyword, token.If) {
		return nil, nil
	}
	ifTok := p.current()
	p.advance(1)
	cond, err := p.logicalExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	ifBranch := &ast.If{Tok: ifTok, Condition: cond, Body: body}

	var elifs []*ast.If
	for p.at(token.FamilyKeyword, token.Elif) {
		elifTok := p.current()
		p.advance(1)
		econd, err := p.logicalExpr()
		if err != nil {
			return nil, err
		}
		ebody, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		elifs = append(elifs, &ast.If{Tok: elifTok, Condition: econd, Body: ebody})
	}

	var elseBranch *ast.Else
	if p.at(token.FamilyKeyword, token.Else) {
		elseTok := p.current()
		p.advance(1)
		ebody, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		elseBranch = &ast.Else{Tok: elseTok, Body: ebody}
	}

	return &ast.IfElse{If: ifBranch, Elifs: elifs, Else: elseBranch}, nil
}

// forLoopNode recognises "for ( init ; cond ; reassign ) body". init is
// parsed as a declaration (assignmentNode) and reassign as a bare
// reassignment (reassignmentNode) — the initializer always introduces its
// loop variable with a type, while the increment never repeats it, e.g.
// "for (num i = 0; i < 3; i += 1) { ... }".
func (p *Parser) forLoopNode() (*ast.ForLoop, *errors.Diagnostic) {
	if !p.at(token.FamilyKeyword, token.For) {
		return nil, nil
	}
	forTok := p.current()
	p.advance(1)

	if !p.at(token.FamilyPunctuator, token.LParen) {
		return nil, p.errAt(errors.KindMissingParen, "expected '(' after 'for'", p.current().Span)
	}
	p.advance(1)

	init, err := p.assignmentNode()
	if err != nil {
		return nil, err
	}
	if init == nil {
		return nil, p.errAt(errors.KindInvalidSyntax, "expected a declaration in for-loop initializer", p.current().Span)
	}
	if p.at(token.FamilyPunctuator, token.Semi) {
		p.advance(1)
	}

	cond, err := p.logicalExpr()
	if err != nil {
		return nil, err
	}
	if p.at(token.FamilyPunctuator, token.Semi) {
		p.advance(1)
	}

	reassign, err := p.reassignmentNode()
	if err != nil {
		return nil, err
	}
	if reassign == nil {
		return nil, p.errAt(errors.KindInvalidSyntax, "expected a reassignment in for-loop increment", p.current().Span)
	}

	if !p.at(token.FamilyPunctuator, token.RParen) {
		return nil, p.errAt(errors.KindMissingParen, "missing closing ')'", p.current().Span)
	}
	p.advance(1)

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &ast.ForLoop{Tok: forTok, Init: init, Condition: cond, ReAssign: reassign, Body: body}, nil
}
