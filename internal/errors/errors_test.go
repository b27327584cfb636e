package errors

import (
	"strings"
	"testing"

	"github.com/sanmaykant/viper/internal/token"
)

func TestFormatSingleCaret(t *testing.T) {
	pos := token.Position{Line: 2, Column: 4}
	d := New(KindUndefinedName, "name 'x' is not defined", "  x + 1", pos)

	got := d.Format()
	if !strings.HasPrefix(got, "UndefinedNameError: name 'x' is not defined | column 5 line 3") {
		t.Fatalf("unexpected header: %q", got)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, blank, source, caret), got %d: %q", len(lines), got)
	}
	caretLine := lines[3]
	if caretLine != strings.Repeat(" ", 4)+"^" {
		t.Errorf("expected single caret at column 4, got %q", caretLine)
	}
}

func TestFormatCaretRun(t *testing.T) {
	begin := token.Position{Line: 0, Column: 2}
	end := token.Position{Line: 0, Column: 5}
	d := NewSpan(KindInvalidLiteral, "invalid number literal: 1.2.3", "x = 1.2.3", begin, end)

	got := d.Format()
	lines := strings.Split(got, "\n")
	caretLine := lines[len(lines)-1]
	want := strings.Repeat(" ", 2) + strings.Repeat("^", 4)
	if caretLine != want {
		t.Errorf("caret run = %q, want %q", caretLine, want)
	}
}

func TestFormatDropsCaretForMultilineSource(t *testing.T) {
	d := New(KindInvalidSyntax, "unexpected block", "line one\nline two", token.Position{})
	got := d.Format()
	if strings.Contains(got, "^") {
		t.Errorf("expected no caret row for a multi-line source excerpt, got %q", got)
	}
}

func TestErrorStringMatchesHeader(t *testing.T) {
	d := New(KindInvalidChar, "unexpected character: &", "a & b", token.Position{Line: 0, Column: 2})
	if d.Error() != "InvalidCharError: unexpected character: & | column 3 line 1" {
		t.Errorf("unexpected Error() string: %q", d.Error())
	}
}
