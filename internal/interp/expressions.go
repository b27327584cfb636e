package interp

import (
	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/symtab"
	"github.com/sanmaykant/viper/internal/token"
	"github.com/sanmaykant/viper/internal/value"
)

// eval reduces an expression to a Value. There is one case per concrete AST
// expression type, found by a type switch rather than reflection.
func (i *Interpreter) eval(expr ast.Expression) (value.Value, *errors.Diagnostic) {
	switch e := expr.(type) {
	case *ast.Number:
		return &value.Number{Val: e.Value, IsInt: e.IsInt}, nil
	case *ast.String:
		return &value.String{Val: e.Value}, nil
	case *ast.Bool:
		return &value.Bool{Val: e.Value}, nil
	case *ast.Identifier:
		return i.evalIdentifier(e)
	case *ast.UnaryOp:
		return i.evalUnary(e)
	case *ast.BinOp:
		return i.evalBinOp(e)
	case *ast.CompOp:
		return i.evalCompOp(e)
	case *ast.Callable:
		return i.evalCallable(e)
	default:
		return nil, i.errAt(errors.KindInvalidSyntax, "unsupported expression", expr.Span())
	}
}

// evalIdentifier resolves a bare name to its current value. Only the base
// name is ever read here — a dotted chain with no call (e.g. "s.upper" with
// no parens) is not a method call, so Chained is ignored.
func (i *Interpreter) evalIdentifier(id *ast.Identifier) (value.Value, *errors.Diagnostic) {
	entry, ok := i.scope.Get(id.Name)
	if !ok {
		return nil, i.errAt(errors.KindUndefinedName, "name '"+id.Name+"' is not defined", id.Span())
	}
	if entry.Kind != symtab.Variable {
		return nil, i.errAt(errors.KindInvalidType, "'"+id.Name+"' is not a value", id.Span())
	}
	return entry.Value, nil
}

func (i *Interpreter) evalUnary(u *ast.UnaryOp) (value.Value, *errors.Diagnostic) {
	operand, err := i.eval(u.Operand)
	if err != nil {
		return nil, err
	}
	switch u.Tok.Kind {
	case token.Not:
		return value.Not(operand), nil
	case token.Minus:
		v, ok := value.Negate(operand)
		if !ok {
			return nil, i.invalidTypeUnary(u.Op, operand, u.Span())
		}
		return v, nil
	default:
		return nil, i.errAt(errors.KindInvalidSyntax, "unsupported unary operator '"+u.Op+"'", u.Span())
	}
}

func (i *Interpreter) evalBinOp(b *ast.BinOp) (value.Value, *errors.Diagnostic) {
	left, err := i.eval(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Tok.Kind {
	case token.And:
		return value.And(left, right), nil
	case token.Or:
		return value.Or(left, right), nil
	}

	var v value.Value
	var ok bool
	switch b.Tok.Kind {
	case token.Plus:
		v, ok = value.Add(left, right)
	case token.Minus:
		v, ok = value.Sub(left, right)
	case token.Star:
		v, ok = value.Mul(left, right)
	case token.Slash:
		v, ok = value.Div(left, right)
	case token.DoubleStar:
		v, ok = value.Pow(left, right)
	default:
		return nil, i.errAt(errors.KindInvalidSyntax, "unsupported binary operator '"+b.Op+"'", b.Span())
	}
	if !ok {
		return nil, i.invalidTypeBinary(b.Op, left, right, b.Span())
	}
	return v, nil
}

func (i *Interpreter) evalCompOp(c *ast.CompOp) (value.Value, *errors.Diagnostic) {
	left, err := i.eval(c.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(c.Right)
	if err != nil {
		return nil, err
	}

	switch c.Tok.Kind {
	case token.EqEqual:
		return value.Equal(left, right), nil
	case token.NotEqual:
		return value.NotEqual(left, right), nil
	}

	var v value.Value
	var ok bool
	switch c.Tok.Kind {
	case token.Less:
		v, ok = value.Less(left, right)
	case token.Greater:
		v, ok = value.Greater(left, right)
	case token.LessEqual:
		v, ok = value.LessEq(left, right)
	case token.GreaterEqual:
		v, ok = value.GreaterEq(left, right)
	default:
		return nil, i.errAt(errors.KindInvalidSyntax, "unsupported comparison operator '"+c.Op+"'", c.Span())
	}
	if !ok {
		return nil, i.invalidTypeBinary(c.Op, left, right, c.Span())
	}
	return v, nil
}
