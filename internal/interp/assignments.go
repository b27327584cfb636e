package interp

import (
	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/symtab"
	"github.com/sanmaykant/viper/internal/token"
	"github.com/sanmaykant/viper/internal/value"
)

// execAssign handles both forms Assign can hold: a declaration
// (DeclaredType non-nil; its assignment operator is not consulted, the
// value is stored as is), and a reassignment against an already-declared
// name using one of "= += -= *= /= ^=".
func (i *Interpreter) execAssign(a *ast.Assign) *errors.Diagnostic {
	rhs, err := i.eval(a.Value)
	if err != nil {
		return err
	}
	if rhs == nil {
		return i.errAt(errors.KindInvalidType, "expression produced no value", a.Value.Span())
	}

	if a.DeclaredType != nil {
		return i.execDeclaration(a, rhs)
	}
	return i.execReassignment(a, rhs)
}

func (i *Interpreter) execDeclaration(a *ast.Assign, rhs value.Value) *errors.Diagnostic {
	typeName := a.DeclaredType.Name
	entry, ok := i.scope.Get(typeName)
	if !ok || entry.Kind != symtab.DataType {
		return i.errAt(errors.KindUndefinedName, "type '"+typeName+"' is not defined", a.DeclaredType.Span())
	}
	if rhs.Type() != typeName {
		return i.errAt(errors.KindInvalidAssignment,
			"type "+rhs.Type()+" can't be assigned to declared type "+typeName, a.Span())
	}
	i.scope.Add(a.Name.Name, rhs)
	return nil
}

func (i *Interpreter) execReassignment(a *ast.Assign, rhs value.Value) *errors.Diagnostic {
	entry, ok := i.scope.Get(a.Name.Name)
	if !ok {
		return i.errAt(errors.KindUndefinedName, "name '"+a.Name.Name+"' is not defined", a.Name.Span())
	}
	if entry.Kind != symtab.Variable {
		return i.errAt(errors.KindInvalidAssignment, "name '"+a.Name.Name+"' is not a variable", a.Name.Span())
	}

	newVal, err := i.combineAssign(a.AssignOp, entry.Value, rhs, a.Span())
	if err != nil {
		return err
	}
	if newVal.Type() != entry.Value.Type() {
		return i.errAt(errors.KindInvalidAssignment,
			"type "+newVal.Type()+" can't be assigned to declared type "+entry.Value.Type(), a.Span())
	}
	i.scope.Update(a.Name.Name, newVal)
	return nil
}

// combineAssign folds a compound assignment operator into a plain value,
// using the variable's current value as the left-hand operand. The "^="
// case is spelled with the caret because that is the only compound-assign
// lexeme the lexer produces for exponentiation ("**=" is not an operator).
func (i *Interpreter) combineAssign(op string, current, rhs value.Value, span token.Span) (value.Value, *errors.Diagnostic) {
	var v value.Value
	var ok bool
	switch op {
	case "=":
		return rhs, nil
	case "+=":
		v, ok = value.Add(current, rhs)
	case "-=":
		v, ok = value.Sub(current, rhs)
	case "*=":
		v, ok = value.Mul(current, rhs)
	case "/=":
		v, ok = value.Div(current, rhs)
	case "^=":
		v, ok = value.Pow(current, rhs)
	default:
		return nil, i.errAt(errors.KindInvalidSyntax, "unsupported assignment operator '"+op+"'", span)
	}
	if !ok {
		return nil, i.invalidTypeBinary(op, current, rhs, span)
	}
	return v, nil
}
