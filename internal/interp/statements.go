package interp

import (
	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/value"
)

// traverse runs stmts in order. A Return anywhere in the list — directly,
// or bubbled up from a nested if/elif/else or for body — stops execution
// immediately and reports (value, true); value is nil for a bare "return".
func (i *Interpreter) traverse(stmts []ast.Statement) (value.Value, bool, *errors.Diagnostic) {
	for _, stmt := range stmts {
		val, returned, err := i.execStatement(stmt)
		if err != nil {
			return nil, false, err
		}
		if returned {
			return val, true, nil
		}
	}
	return nil, false, nil
}

func (i *Interpreter) execStatement(stmt ast.Statement) (value.Value, bool, *errors.Diagnostic) {
	switch s := stmt.(type) {
	case *ast.Assign:
		return nil, false, i.execAssign(s)
	case *ast.Return:
		if s.Value == nil {
			return nil, true, nil
		}
		val, err := i.eval(s.Value)
		if err != nil {
			return nil, false, err
		}
		return val, true, nil
	case *ast.IfElse:
		return i.execIfElse(s)
	case *ast.ForLoop:
		return i.execForLoop(s)
	case *ast.Function:
		return nil, false, i.execFunctionDef(s)
	case *ast.Callable:
		_, err := i.evalCallable(s)
		return nil, false, err
	default:
		return nil, false, i.errAt(errors.KindInvalidSyntax, "unsupported statement", stmt.Span())
	}
}
