package interp

import (
	"strconv"

	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/symtab"
	"github.com/sanmaykant/viper/internal/value"
)

// execFunctionDef verifies every formal parameter's declared type is a type
// already in scope, then installs the function under its own name. Nothing
// about the body is checked here — a call site validates argument types
// against it.
func (i *Interpreter) execFunctionDef(fn *ast.Function) *errors.Diagnostic {
	for _, p := range fn.Params {
		entry, ok := i.scope.Get(p.Type.Name)
		if !ok || entry.Kind != symtab.DataType {
			return i.errAt(errors.KindUndefinedName, "type '"+p.Type.Name+"' is not defined", p.Type.Span())
		}
	}
	i.scope.AddFunc(fn.Name.Name, fn)
	return nil
}

// evalCallable dispatches a call by the kind of symbol its base name
// resolves to: a built-in, a chained method on a variable's value, or a
// user-defined function. A variable with no chained segment, or a bare type
// name, is not callable.
func (i *Interpreter) evalCallable(c *ast.Callable) (value.Value, *errors.Diagnostic) {
	entry, ok := i.scope.Get(c.Name.Name)
	if !ok {
		return nil, i.errAt(errors.KindUndefinedName, "name '"+c.Name.Name+"' is not defined", c.Name.Span())
	}

	switch entry.Kind {
	case symtab.InbuiltFunc:
		args, err := i.evalArgs(c.Params)
		if err != nil {
			return nil, err
		}
		return i.callInbuilt(c.Name.Name, args, c.Span())
	case symtab.FuncDef:
		return i.callFunction(entry.Node, c)
	case symtab.Variable:
		if c.Name.Chained == nil {
			return nil, i.errAt(errors.KindInvalidType, "'"+c.Name.Name+"' is not callable", c.Span())
		}
		method := c.Name.Chained.Name
		result, ok := value.CallMethod(entry.Value, method)
		if !ok {
			return nil, i.errAt(errors.KindUndefinedName, "'"+method+"' is not a method of "+entry.Value.Type(), c.Name.Chained.Span())
		}
		return result, nil
	default:
		return nil, i.errAt(errors.KindInvalidType, "'"+c.Name.Name+"' is not callable", c.Span())
	}
}

// evalArgs evaluates each actual parameter in the caller's current scope,
// left to right, stopping at the first error.
func (i *Interpreter) evalArgs(params []ast.Expression) ([]value.Value, *errors.Diagnostic) {
	args := make([]value.Value, len(params))
	for idx, p := range params {
		v, err := i.eval(p)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	return args, nil
}

// callFunction evaluates call's arguments against fn's formal parameters,
// checking both arity and declared type, then runs fn's body in a fresh
// child scope whose parent is the caller's current scope. The body's first
// return value (or nil, for a function that falls off the end or returns
// bare) becomes the call's result.
func (i *Interpreter) callFunction(fn *ast.Function, call *ast.Callable) (value.Value, *errors.Diagnostic) {
	if len(call.Params) != len(fn.Params) {
		return nil, i.errAt(errors.KindInvalidSyntax,
			"function '"+fn.Name.Name+"' expects "+strconv.Itoa(len(fn.Params))+" argument(s)", call.Span())
	}

	args, err := i.evalArgs(call.Params)
	if err != nil {
		return nil, err
	}

	child := i.scope.NewChild()
	for idx, param := range fn.Params {
		arg := args[idx]
		if arg.Type() != param.Type.Name {
			return nil, i.errAt(errors.KindInvalidType,
				"argument '"+param.Name.Name+"' expects type "+param.Type.Name+", got "+arg.Type(), call.Params[idx].Span())
		}
		child.Add(param.Name.Name, arg)
	}

	sub := i.withScope(child)
	val, _, rerr := sub.traverse(fn.Body)
	return val, rerr
}

