package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/lexer"
	"github.com/sanmaykant/viper/internal/parser"
)

// runSource lexes, parses and interprets src, returning whatever print()
// wrote to stdout and the first diagnostic encountered, if any.
func runSource(t *testing.T, src string, opts ...Option) (string, *errors.Diagnostic) {
	t.Helper()
	tokens, lexErr := lexer.New(src).Tokenize()
	if lexErr != nil {
		t.Fatalf("unexpected lex error: %s", lexErr.Error())
	}
	prog, parseErr := parser.Parse(tokens, src)
	if parseErr != nil {
		t.Fatalf("unexpected parse error: %s", parseErr.Error())
	}
	var out bytes.Buffer
	allOpts := append([]Option{WithStdout(&out)}, opts...)
	err := Run(prog, src, allOpts...)
	return out.String(), err
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := runSource(t, "num x = 1 + 2 * 3\nprint(x)")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "7\n" {
		t.Errorf("print output = %q, want %q", out, "7\n")
	}
}

func TestReassignmentWithCompoundOperator(t *testing.T) {
	out, err := runSource(t, "num x = 1\nx += 2\nprint(x)")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "3\n" {
		t.Errorf("print output = %q, want %q", out, "3\n")
	}
}

func TestExponentAssignUsesCaretSpelling(t *testing.T) {
	out, err := runSource(t, "num x = 2\nx ^= 3\nprint(x)")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "8\n" {
		t.Errorf("print output = %q, want %q", out, "8\n")
	}
}

func TestDivisionAssignRoutesToDivision(t *testing.T) {
	out, err := runSource(t, "num x = 10\nx /= 2\nprint(x)")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "5\n" {
		t.Errorf("print output = %q, want %q", out, "5\n")
	}
}

func TestIfElifElseRunsOnlyFirstTruthyBranch(t *testing.T) {
	out, err := runSource(t, `
num x = 2
if x < 1 {
  print("a")
} elif x < 3 {
  print("b")
} else {
  print("c")
}`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "b\n" {
		t.Errorf("print output = %q, want %q", out, "b\n")
	}
}

func TestForLoopAccumulates(t *testing.T) {
	out, err := runSource(t, `
num total = 0
for (num i = 0; i < 5; i += 1) {
  total += i
}
print(total)`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "10\n" {
		t.Errorf("print output = %q, want %q", out, "10\n")
	}
}

func TestFunctionCallAndRecursion(t *testing.T) {
	out, err := runSource(t, `
num fact(num n) {
  if n <= 1 {
    return 1
  }
  return n * fact(n - 1)
}
print(fact(5))`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "120\n" {
		t.Errorf("print output = %q, want %q", out, "120\n")
	}
}

func TestFunctionScopeDoesNotLeakLocals(t *testing.T) {
	_, err := runSource(t, `
num addOne(num n) {
  num result = n + 1
  return result
}
addOne(1)
print(result)`)
	if err == nil {
		t.Fatal("expected an error looking up a name local to the function")
	}
	if err.Kind != errors.KindUndefinedName {
		t.Errorf("Kind = %q, want %q", err.Kind, errors.KindUndefinedName)
	}
}

func TestChainedStringMethods(t *testing.T) {
	out, err := runSource(t, `
String s = "Hi"
print(s.upper())
print(s.lower())
print(s.length())`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "HI\nhi\n2\n" {
		t.Errorf("print output = %q, want %q", out, "HI\nhi\n2\n")
	}
}

func TestUnknownMethodIsUndefinedName(t *testing.T) {
	_, err := runSource(t, `String s = "hi"
s.reverse()`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Kind != errors.KindUndefinedName {
		t.Errorf("Kind = %q, want %q", err.Kind, errors.KindUndefinedName)
	}
}

func TestBareIdentifierChainIgnoresMethodSegment(t *testing.T) {
	// "s.upper" with no call parens is a plain identifier expression whose
	// Chained segment is never consulted outside a Callable.
	out, err := runSource(t, `String s = "hi"
print(s.upper)`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "hi\n" {
		t.Errorf("print output = %q, want %q", out, "hi\n")
	}
}

func TestSumBuiltin(t *testing.T) {
	out, err := runSource(t, "print(sum(1, 2, 3))")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "6\n" {
		t.Errorf("print output = %q, want %q", out, "6\n")
	}
}

func TestInputExprAndInputNum(t *testing.T) {
	out, err := runSource(t, `
String name = inputExpr("name: ")
num age = inputNum("age: ")
print(name)
print(age)`, WithStdin(strings.NewReader("Ada\n30\n")))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if !strings.Contains(out, "Ada\n") || !strings.Contains(out, "30\n") {
		t.Errorf("print output = %q, missing expected lines", out)
	}
}

func TestTypeMismatchOnDeclarationIsInvalidAssignment(t *testing.T) {
	_, err := runSource(t, `num x = "not a number"`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Kind != errors.KindInvalidAssignment {
		t.Errorf("Kind = %q, want %q", err.Kind, errors.KindInvalidAssignment)
	}
}

func TestUndefinedNameOnReassignment(t *testing.T) {
	_, err := runSource(t, "y += 1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Kind != errors.KindUndefinedName {
		t.Errorf("Kind = %q, want %q", err.Kind, errors.KindUndefinedName)
	}
}

func TestLogicalAndOrReturnOperandIdentity(t *testing.T) {
	out, err := runSource(t, `
bool a = false
num b = 5
print(a and b)
print(a or b)`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if out != "false\n5\n" {
		t.Errorf("print output = %q, want %q", out, "false\n5\n")
	}
}
