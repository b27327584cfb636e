package ast

import (
	"strings"

	"github.com/sanmaykant/viper/internal/token"
)

// Parameter is a single formal parameter of a Function: a declared type
// identifier paired with the parameter's name.
type Parameter struct {
	Type *Identifier
	Name *Identifier
}

func (p Parameter) String() string { return p.Type.String() + " " + p.Name.String() }

// Function is a function definition. Viper has no separate procedure form:
// a function whose body never reaches a Return with a value simply yields
// no value to its caller.
type Function struct {
	Tok        token.Token
	ReturnType *Identifier
	Name       *Identifier
	Params     []Parameter
	Body       []Statement
}

func (f *Function) statementNode()       {}
func (f *Function) TokenLiteral() string { return f.Tok.Lexeme }
func (f *Function) Span() token.Span {
	end := f.Tok.Span.End
	if len(f.Body) > 0 {
		end = f.Body[len(f.Body)-1].Span().End
	}
	return token.Span{Begin: f.Tok.Span.Begin, End: end}
}
func (f *Function) String() string {
	var out strings.Builder
	out.WriteString(f.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(f.Name.String())
	out.WriteString("(")
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(blockString(f.Body))
	return out.String()
}

// Callable is an invocation of a name (user function, built-in, or a
// chained method on a primitive) with a parenthesized argument list. It
// appears both as a standalone statement and as a term inside an
// expression, so it implements both Statement and Expression.
type Callable struct {
	Tok    token.Token
	Name   *Identifier
	Params []Expression
}

func (c *Callable) statementNode()       {}
func (c *Callable) expressionNode()      {}
func (c *Callable) TokenLiteral() string { return c.Tok.Lexeme }
func (c *Callable) Span() token.Span     { return token.Span{Begin: c.Name.Span().Begin, End: c.Tok.Span.End} }
func (c *Callable) String() string {
	args := make([]string, len(c.Params))
	for i, p := range c.Params {
		args[i] = p.String()
	}
	return c.Name.String() + "(" + strings.Join(args, ", ") + ")"
}
