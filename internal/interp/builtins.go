package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/token"
	"github.com/sanmaykant/viper/internal/value"
)

// callInbuilt dispatches one of the four pre-installed names to its
// implementation.
func (i *Interpreter) callInbuilt(name string, args []value.Value, span token.Span) (value.Value, *errors.Diagnostic) {
	switch name {
	case "print":
		return i.builtinPrint(args), nil
	case "sum":
		return i.builtinSum(args, span)
	case "inputExpr":
		return i.builtinInputExpr(args, span)
	case "inputNum":
		return i.builtinInputNum(args, span)
	default:
		return nil, i.errAt(errors.KindUndefinedName, "inbuilt '"+name+"' is not implemented", span)
	}
}

// builtinPrint writes every argument's String() form, space-separated,
// followed by a newline, and returns nothing (nil).
func (i *Interpreter) builtinPrint(args []value.Value) value.Value {
	parts := make([]string, len(args))
	for idx, a := range args {
		parts[idx] = a.String()
	}
	fmt.Fprintln(i.stdout, strings.Join(parts, " "))
	return nil
}

// builtinSum left-folds '+' across its arguments, starting from the first.
// It requires at least one argument since there is no type-neutral zero
// value to start from (a Number zero would reject an all-String call).
func (i *Interpreter) builtinSum(args []value.Value, span token.Span) (value.Value, *errors.Diagnostic) {
	if len(args) == 0 {
		return nil, i.errAt(errors.KindInvalidSyntax, "sum() requires at least one argument", span)
	}
	acc := args[0]
	for _, a := range args[1:] {
		v, ok := value.Add(acc, a)
		if !ok {
			return nil, i.invalidTypeBinary("+", acc, a, span)
		}
		acc = v
	}
	return acc, nil
}

// promptArg extracts the single optional prompt argument shared by
// inputExpr/inputNum; with no argument the prompt is empty.
func (i *Interpreter) promptArg(args []value.Value, span token.Span) (string, *errors.Diagnostic) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		s, ok := args[0].(*value.String)
		if !ok {
			return "", i.errAt(errors.KindInvalidType, "prompt must be a String, got "+args[0].Type(), span)
		}
		return s.Val, nil
	default:
		return "", i.errAt(errors.KindInvalidSyntax, "expects at most one argument", span)
	}
}

func (i *Interpreter) readLine() (string, error) {
	line, err := i.stdin.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

// builtinInputExpr prints an optional prompt, reads one line from stdin and
// returns it verbatim as a String.
func (i *Interpreter) builtinInputExpr(args []value.Value, span token.Span) (value.Value, *errors.Diagnostic) {
	prompt, err := i.promptArg(args, span)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(i.stdout, prompt)
	line, _ := i.readLine()
	return &value.String{Val: line}, nil
}

// builtinInputNum prints an optional prompt, reads one line from stdin and
// parses it as a float; the result is always a non-integer Number even
// when the input looks like "3".
func (i *Interpreter) builtinInputNum(args []value.Value, span token.Span) (value.Value, *errors.Diagnostic) {
	prompt, err := i.promptArg(args, span)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(i.stdout, prompt)
	line, _ := i.readLine()
	n, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if perr != nil {
		return nil, i.errAt(errors.KindInvalidLiteral, "could not parse '"+line+"' as a number", span)
	}
	return &value.Number{Val: n, IsInt: false}, nil
}
