package interp

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/symtab"
	"github.com/sanmaykant/viper/internal/token"
	"github.com/sanmaykant/viper/internal/value"
)

// Interpreter executes a Program against a single symbol table scope. A
// function call runs its body through a derived Interpreter whose scope is
// a child of the calling scope, so a function sees the locals of whoever
// called it — not just its own definition site — matching the language's
// dynamic-ish scoping rather than a closure over its defining environment.
type Interpreter struct {
	scope  *symtab.Table
	lines  []string
	stdout io.Writer
	stdin  *bufio.Reader
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithStdout redirects print() and the inputExpr/inputNum prompts.
func WithStdout(w io.Writer) Option {
	return func(i *Interpreter) { i.stdout = w }
}

// WithStdin redirects inputExpr/inputNum's source of input lines.
func WithStdin(r io.Reader) Option {
	return func(i *Interpreter) { i.stdin = bufio.NewReader(r) }
}

// New builds an Interpreter with a fresh global scope. source is kept only
// to build the excerpt line carried by diagnostics.
func New(source string, opts ...Option) *Interpreter {
	i := &Interpreter{
		scope:  symtab.NewGlobal(),
		lines:  strings.Split(source, "\n"),
		stdout: os.Stdout,
		stdin:  bufio.NewReader(os.Stdin),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// withScope returns a new Interpreter over child, sharing this one's
// source lines and I/O — used to run a called function's body.
func (i *Interpreter) withScope(child *symtab.Table) *Interpreter {
	return &Interpreter{scope: child, lines: i.lines, stdout: i.stdout, stdin: i.stdin}
}

// Run executes prog's top-level statements against a fresh global scope
// and reports the first diagnostic encountered, if any.
func Run(prog *ast.Program, source string, opts ...Option) *errors.Diagnostic {
	i := New(source, opts...)
	_, _, err := i.traverse(prog.Statements)
	return err
}

func (i *Interpreter) sourceLine(line int) string {
	if line < 0 || line >= len(i.lines) {
		return ""
	}
	return i.lines[line]
}

func (i *Interpreter) errAt(kind, detail string, span token.Span) *errors.Diagnostic {
	return errors.NewSpan(kind, detail, i.sourceLine(span.Begin.Line), span.Begin, span.End)
}

func (i *Interpreter) invalidTypeBinary(op string, left, right value.Value, span token.Span) *errors.Diagnostic {
	return i.errAt(errors.KindInvalidType, "unsupported operand types for '"+op+"': "+typeName(left)+" and "+typeName(right), span)
}

func (i *Interpreter) invalidTypeUnary(op string, operand value.Value, span token.Span) *errors.Diagnostic {
	return i.errAt(errors.KindInvalidType, "unsupported operand type for '"+op+"': "+typeName(operand), span)
}

// typeName reports v's dataType tag, or "void" for the nil Value that a
// built-in or function call yields when it has nothing to return.
func typeName(v value.Value) string {
	if v == nil {
		return "void"
	}
	return v.Type()
}
