package ast

import (
	"strings"

	"github.com/sanmaykant/viper/internal/token"
)

// If is a single condition/body pair, used both as the leading "if" branch
// and as each "elif" branch of an IfElse.
type If struct {
	Tok       token.Token
	Condition Expression
	Body      []Statement
}

func (i *If) statementNode()       {}
func (i *If) TokenLiteral() string { return i.Tok.Lexeme }
func (i *If) Span() token.Span {
	end := i.Tok.Span.End
	if len(i.Body) > 0 {
		end = i.Body[len(i.Body)-1].Span().End
	}
	return token.Span{Begin: i.Tok.Span.Begin, End: end}
}
func (i *If) String() string {
	return "if " + i.Condition.String() + " " + blockString(i.Body)
}

// Else is the trailing unconditional branch of an IfElse.
type Else struct {
	Tok  token.Token
	Body []Statement
}

func (e *Else) statementNode()       {}
func (e *Else) TokenLiteral() string { return e.Tok.Lexeme }
func (e *Else) Span() token.Span {
	end := e.Tok.Span.End
	if len(e.Body) > 0 {
		end = e.Body[len(e.Body)-1].Span().End
	}
	return token.Span{Begin: e.Tok.Span.Begin, End: end}
}
func (e *Else) String() string { return "else " + blockString(e.Body) }

// IfElse chains an If, zero or more elif branches (each an *If), and an
// optional trailing Else.
type IfElse struct {
	If    *If
	Elifs []*If
	Else  *Else
}

func (ie *IfElse) statementNode()       {}
func (ie *IfElse) TokenLiteral() string { return ie.If.TokenLiteral() }
func (ie *IfElse) Span() token.Span {
	end := ie.If.Span().End
	if ie.Else != nil {
		end = ie.Else.Span().End
	} else if len(ie.Elifs) > 0 {
		end = ie.Elifs[len(ie.Elifs)-1].Span().End
	}
	return token.Span{Begin: ie.If.Span().Begin, End: end}
}
func (ie *IfElse) String() string {
	var out strings.Builder
	out.WriteString(ie.If.String())
	for _, elif := range ie.Elifs {
		out.WriteString(" el" + elif.String())
	}
	if ie.Else != nil {
		out.WriteString(" " + ie.Else.String())
	}
	return out.String()
}

// ForLoop is a C-style counted loop: init runs once, condition is checked
// before each iteration, reAssign runs after each iteration's body.
type ForLoop struct {
	Tok       token.Token
	Init      *Assign
	Condition Expression
	ReAssign  *Assign
	Body      []Statement
}

func (f *ForLoop) statementNode()       {}
func (f *ForLoop) TokenLiteral() string { return f.Tok.Lexeme }
func (f *ForLoop) Span() token.Span {
	end := f.Tok.Span.End
	if len(f.Body) > 0 {
		end = f.Body[len(f.Body)-1].Span().End
	}
	return token.Span{Begin: f.Tok.Span.Begin, End: end}
}
func (f *ForLoop) String() string {
	return "for (" + f.Init.String() + "; " + f.Condition.String() + "; " + f.ReAssign.String() + ") " + blockString(f.Body)
}

func blockString(body []Statement) string {
	var out strings.Builder
	out.WriteString("{\n")
	for _, stmt := range body {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(stmt.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
