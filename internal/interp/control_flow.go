package interp

import (
	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/value"
)

// execIfElse evaluates branches in order — if, then each elif, then else
// — running the body of (and only of) the first truthy one.
func (i *Interpreter) execIfElse(ie *ast.IfElse) (value.Value, bool, *errors.Diagnostic) {
	cond, err := i.eval(ie.If.Condition)
	if err != nil {
		return nil, false, err
	}
	if value.Truthy(cond) {
		return i.traverse(ie.If.Body)
	}

	for _, elif := range ie.Elifs {
		econd, err := i.eval(elif.Condition)
		if err != nil {
			return nil, false, err
		}
		if value.Truthy(econd) {
			return i.traverse(elif.Body)
		}
	}

	if ie.Else != nil {
		return i.traverse(ie.Else.Body)
	}
	return nil, false, nil
}

// execForLoop runs init once, then repeats condition/body/reAssign until
// condition is falsy. A Return inside the body exits the loop and
// propagates immediately, skipping the pending reAssign.
func (i *Interpreter) execForLoop(f *ast.ForLoop) (value.Value, bool, *errors.Diagnostic) {
	if err := i.execAssign(f.Init); err != nil {
		return nil, false, err
	}

	for {
		cond, err := i.eval(f.Condition)
		if err != nil {
			return nil, false, err
		}
		if !value.Truthy(cond) {
			return nil, false, nil
		}

		val, returned, err := i.traverse(f.Body)
		if err != nil {
			return nil, false, err
		}
		if returned {
			return val, true, nil
		}

		if err := i.execAssign(f.ReAssign); err != nil {
			return nil, false, err
		}
	}
}
