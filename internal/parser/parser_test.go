package parser

import (
	"testing"

	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, lexErr := lexer.New(src).Tokenize()
	if lexErr != nil {
		t.Fatalf("unexpected lex error: %s", lexErr.Error())
	}
	prog, err := Parse(tokens, src)
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err.Error())
	}
	return prog
}

func parseSourceErr(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, lexErr := lexer.New(src).Tokenize()
	if lexErr != nil {
		t.Fatalf("unexpected lex error: %s", lexErr.Error())
	}
	prog, err := Parse(tokens, src)
	if err == nil {
		t.Fatalf("expected parse error, got program: %s", prog.String())
	}
	return nil
}

func TestDeclarationAssignment(t *testing.T) {
	prog := parseSource(t, "num x = 5")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	assign, ok := prog.Statements[0].(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", prog.Statements[0])
	}
	if assign.DeclaredType == nil || assign.DeclaredType.Name != "num" {
		t.Errorf("expected declared type num, got %v", assign.DeclaredType)
	}
	if assign.Name.Name != "x" || assign.AssignOp != "=" {
		t.Errorf("unexpected assign shape: %s", assign.String())
	}
}

func TestReassignmentHasNoDeclaredType(t *testing.T) {
	prog := parseSource(t, "x += 1")
	assign := prog.Statements[0].(*ast.Assign)
	if assign.DeclaredType != nil {
		t.Errorf("expected no declared type on a reassignment, got %v", assign.DeclaredType)
	}
	if assign.AssignOp != "+=" {
		t.Errorf("AssignOp = %q, want %q", assign.AssignOp, "+=")
	}
}

func TestArithmeticPrecedenceIsRightAssociative(t *testing.T) {
	prog := parseSource(t, "num x = 1 + 2 * 3")
	assign := prog.Statements[0].(*ast.Assign)
	bin, ok := assign.Value.(*ast.BinOp)
	if !ok {
		t.Fatalf("expected *ast.BinOp, got %T", assign.Value)
	}
	if bin.Op != "+" {
		t.Fatalf("expected the top operator to be '+', got %q", bin.Op)
	}
	right, ok := bin.Right.(*ast.BinOp)
	if !ok || right.Op != "*" {
		t.Errorf("expected the right-hand side to be a '*' BinOp, got %#v", bin.Right)
	}

	chain := parseSource(t, "num y = 1 - 2 - 3").Statements[0].(*ast.Assign)
	top, ok := chain.Value.(*ast.BinOp)
	if !ok {
		t.Fatalf("expected *ast.BinOp, got %T", chain.Value)
	}
	if inner, ok := top.Right.(*ast.BinOp); !ok || inner.Op != "-" {
		t.Errorf("expected 1 - 2 - 3 to group as 1 - (2 - 3), got %s", top.String())
	}
}

func TestIfElifElse(t *testing.T) {
	prog := parseSource(t, `
if x < 1 {
  return 1
} elif x < 2 {
  return 2
} else {
  return 3
}`)
	ie, ok := prog.Statements[0].(*ast.IfElse)
	if !ok {
		t.Fatalf("expected *ast.IfElse, got %T", prog.Statements[0])
	}
	if len(ie.Elifs) != 1 {
		t.Fatalf("expected 1 elif branch, got %d", len(ie.Elifs))
	}
	if ie.Else == nil {
		t.Fatal("expected an else branch")
	}
}

func TestForLoopInitConditionAndIncrement(t *testing.T) {
	prog := parseSource(t, "for (num i = 0; i < 3; i += 1) { x += i }")
	loop, ok := prog.Statements[0].(*ast.ForLoop)
	if !ok {
		t.Fatalf("expected *ast.ForLoop, got %T", prog.Statements[0])
	}
	if loop.Init.DeclaredType == nil || loop.Init.DeclaredType.Name != "num" {
		t.Errorf("expected a declared-type initializer, got %v", loop.Init.DeclaredType)
	}
	if loop.ReAssign.DeclaredType != nil {
		t.Errorf("expected the increment to have no declared type, got %v", loop.ReAssign.DeclaredType)
	}
	if loop.ReAssign.AssignOp != "+=" {
		t.Errorf("ReAssign.AssignOp = %q, want %q", loop.ReAssign.AssignOp, "+=")
	}
}

func TestFunctionDefinitionAndCall(t *testing.T) {
	prog := parseSource(t, `
num add(num a, num b) {
  return a + b
}
add(1, 2)`)
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	fn, ok := prog.Statements[0].(*ast.Function)
	if !ok {
		t.Fatalf("expected *ast.Function, got %T", prog.Statements[0])
	}
	if len(fn.Params) != 2 || fn.Params[0].Type.Name != "num" || fn.Params[0].Name.Name != "a" {
		t.Errorf("unexpected params: %+v", fn.Params)
	}
	call, ok := prog.Statements[1].(*ast.Callable)
	if !ok {
		t.Fatalf("expected *ast.Callable, got %T", prog.Statements[1])
	}
	if call.Name.Name != "add" || len(call.Params) != 2 {
		t.Errorf("unexpected call: %s", call.String())
	}
}

func TestChainedMethodCall(t *testing.T) {
	prog := parseSource(t, `String s = "hi"
s.upper()`)
	call := prog.Statements[1].(*ast.Callable)
	if call.Name.Name != "s" || call.Name.Chained == nil || call.Name.Chained.Name != "upper" {
		t.Errorf("expected a chained s.upper() call, got %s", call.String())
	}
}

func TestMissingClosingBraceIsReported(t *testing.T) {
	parseSourceErr(t, "if true { return 1")
}

func TestMissingExpressionIsReported(t *testing.T) {
	parseSourceErr(t, "num x = )")
}

func TestStatementsSeparatedBySemicolons(t *testing.T) {
	prog := parseSource(t, "num x = 1; num y = 2")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
}
