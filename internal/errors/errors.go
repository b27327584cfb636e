// Package errors defines the diagnostic value shared by the lexer, parser
// and interpreter. Viper has no exceptions: every stage that can fail
// returns a *Diagnostic alongside (or instead of) its product, and the CLI
// is the only place that renders one to a human.
package errors

import (
	"strconv"
	"strings"

	"github.com/sanmaykant/viper/internal/token"
)

// Diagnostic is a single reported error: a named kind, a human-readable
// detail message, the offending source line, and the span it covers.
type Diagnostic struct {
	Kind    string
	Details string
	Line    string
	Begin   token.Position
	End     token.Position
}

// New constructs a Diagnostic whose end position equals its begin position.
func New(kind, details, line string, begin token.Position) *Diagnostic {
	return &Diagnostic{Kind: kind, Details: details, Line: line, Begin: begin, End: begin}
}

// NewSpan constructs a Diagnostic covering an explicit begin/end span.
func NewSpan(kind, details, line string, begin, end token.Position) *Diagnostic {
	return &Diagnostic{Kind: kind, Details: details, Line: line, Begin: begin, End: end}
}

// Error satisfies the standard error interface with the one-line summary
// used by Format's header row.
func (d *Diagnostic) Error() string {
	return d.Kind + ": " + d.Details + " | column " + strconv.Itoa(d.Begin.Column+1) +
		" line " + strconv.Itoa(d.Begin.Line+1)
}

// Format renders the full caret-annotated diagnostic: a header line, a
// blank line, the offending source line, and a caret line under the span.
// A source line containing a newline (a caller handed us a multi-line
// excerpt rather than a single line) drops the caret row, since a single
// caret offset can't be placed sensibly against more than one line.
func (d *Diagnostic) Format() string {
	var b strings.Builder
	b.WriteString(d.Error())
	b.WriteString("\n\n")
	b.WriteString(d.Line)

	if strings.Contains(d.Line, "\n") {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", d.Begin.Column))

	if d.Begin == d.End {
		b.WriteString("^")
	} else {
		width := d.End.Column + 1 - d.Begin.Column
		if width < 1 {
			width = 1
		}
		b.WriteString(strings.Repeat("^", width))
	}

	return b.String()
}

// Named diagnostic kinds. MissingTokenError carries a specialised name per
// expected token (MissingParenError, MissingBraceError) rather than a
// generic detail string.
const (
	KindInvalidLiteral    = "InvalidLiteralError"
	KindInvalidChar       = "InvalidCharError"
	KindMissingToken      = "MissingTokenError"
	KindMissingParen      = "MissingParenError"
	KindMissingBrace      = "MissingBraceError"
	KindMissingExpr       = "MissingExprError"
	KindUnexpectedToken   = "UnexpectedTokenError"
	KindInvalidSyntax     = "InvalidSyntaxError"
	KindInvalidAssignment = "InvalidAssignmentError"
	KindInvalidType       = "InvalidTypeError"
	KindUndefinedName     = "UndefinedNameError"
)
