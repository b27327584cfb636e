package ast

import (
	"strings"

	"github.com/sanmaykant/viper/internal/token"
)

// Assign is both a declaration and a reassignment, distinguished by
// DeclaredType: non-nil means "typeId name assignOp expr" (a declaration
// that fixes the variable's type for its lifetime), nil means a bare
// "dottedName assignOp expr" reassignment.
type Assign struct {
	Tok          token.Token
	Name         *Identifier
	Value        Expression
	AssignOp     string
	DeclaredType *Identifier
}

func (a *Assign) statementNode()       {}
func (a *Assign) TokenLiteral() string { return a.Tok.Lexeme }
func (a *Assign) Span() token.Span {
	begin := a.Name.Span().Begin
	if a.DeclaredType != nil {
		begin = a.DeclaredType.Span().Begin
	}
	return token.Span{Begin: begin, End: a.Value.Span().End}
}
func (a *Assign) String() string {
	var out strings.Builder
	if a.DeclaredType != nil {
		out.WriteString(a.DeclaredType.String())
		out.WriteString(" ")
	}
	out.WriteString(a.Name.String())
	out.WriteString(" " + a.AssignOp + " ")
	out.WriteString(a.Value.String())
	return out.String()
}

// Return exits the enclosing function (or for/if body), optionally
// carrying a value. Value is nil for a bare "return".
type Return struct {
	Tok   token.Token
	Value Expression
}

func (r *Return) statementNode()       {}
func (r *Return) TokenLiteral() string { return r.Tok.Lexeme }
func (r *Return) Span() token.Span {
	end := r.Tok.Span.End
	if r.Value != nil {
		end = r.Value.Span().End
	}
	return token.Span{Begin: r.Tok.Span.Begin, End: end}
}
func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}
