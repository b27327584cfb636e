// Package lexer turns Viper source text into a stream of tokens.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/sanmaykant/viper/internal/errors"
	"github.com/sanmaykant/viper/internal/token"
)

// Lexer scans UTF-8 source text into tokens one at a time. Column positions
// are rune counts, not byte offsets, so multi-byte sequences never skew a
// diagnostic's column.
type Lexer struct {
	input   string
	pos     token.Position // position of ch
	readPos int            // byte offset of the next rune
	ch      rune
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.advance()
	return l
}

// advance consumes the current character and reads the next one, updating
// the position cursor via token.Position.Advance.
func (l *Lexer) advance() {
	if l.ch != 0 {
		l.pos = l.pos.Advance(l.ch)
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += size
}

func (l *Lexer) peek() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func isDigit(ch rune) bool  { return ch >= '0' && ch <= '9' }
func isLetter(ch rune) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

// sourceLine returns the text of the given zero-based line number, used to
// build the source excerpt carried by a lexical Diagnostic.
func (l *Lexer) sourceLine(line int) string {
	lines := strings.Split(l.input, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}

func (l *Lexer) errAt(kind, detail string, span token.Span) *errors.Diagnostic {
	return errors.NewSpan(kind, detail, l.sourceLine(span.Begin.Line), span.Begin, span.End)
}

// Tokenize scans the entire input and returns the token list terminated by
// an EOF token, or the first lexical error encountered. The lexer aborts
// at the first error rather than recovering and continuing.
func (l *Lexer) Tokenize() ([]token.Token, *errors.Diagnostic) {
	var tokens []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Family == token.FamilyEOF {
			return tokens, nil
		}
	}
}

// next produces the next single token, skipping whitespace first.
func (l *Lexer) next() (token.Token, *errors.Diagnostic) {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r' {
		l.advance()
	}

	begin := l.pos

	switch {
	case l.ch == 0:
		return token.New(token.FamilyEOF, token.EndOfFile, "", begin), nil
	case isDigit(l.ch):
		return l.readNumber(begin)
	case l.ch == '\'' || l.ch == '"':
		return l.readString(begin)
	case isLetter(l.ch):
		return l.readWord(begin), nil
	default:
		return l.readOperatorOrPunctuator(begin)
	}
}

// readNumber accumulates digits and at most one '.'. A second '.' is an
// InvalidLiteralError covering the whole run; the run is still consumed in
// full before the error is returned.
func (l *Lexer) readNumber(begin token.Position) (token.Token, *errors.Diagnostic) {
	var sb strings.Builder
	dots := 0
	var badSpan token.Span
	bad := false

	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			dots++
			if dots > 1 && !bad {
				bad = true
				badSpan = token.Span{Begin: begin, End: l.pos}
			}
		}
		sb.WriteRune(l.ch)
		l.advance()
	}

	lexeme := sb.String()
	end := l.pos.Revert()
	span := token.Span{Begin: begin, End: end}

	if bad {
		badSpan.End = end
		return token.Token{}, l.errAt(errors.KindInvalidLiteral, "invalid number literal: "+lexeme, badSpan)
	}

	return token.NewSpan(token.FamilyLiteral, token.Num, lexeme, span), nil
}

// readString consumes until the matching quote or end-of-input; the
// delimiter itself is excluded from the value. Reaching EOF before the
// closing quote is reported as an InvalidLiteralError (no closing
// delimiter).
func (l *Lexer) readString(begin token.Position) (token.Token, *errors.Diagnostic) {
	quote := l.ch
	l.advance() // consume opening quote

	var sb strings.Builder
	for l.ch != quote && l.ch != 0 {
		sb.WriteRune(l.ch)
		l.advance()
	}

	if l.ch == 0 {
		return token.Token{}, l.errAt(errors.KindInvalidLiteral, "unterminated string literal", token.Span{Begin: begin, End: l.pos})
	}

	end := l.pos
	l.advance() // consume closing quote
	return token.NewSpan(token.FamilyLiteral, token.Str, sb.String(), token.Span{Begin: begin, End: end}), nil
}

// readWord reads an identifier-shaped run and resolves it in order: boolean
// literal, then keyword, then word-operator (and/or/not), then Identifier.
func (l *Lexer) readWord(begin token.Position) token.Token {
	var sb strings.Builder
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		sb.WriteRune(l.ch)
		l.advance()
	}
	word := sb.String()
	end := l.pos.Revert()
	span := token.Span{Begin: begin, End: end}

	if _, ok := token.LookupBool(word); ok {
		return token.NewSpan(token.FamilyLiteral, token.Bool, word, span)
	}
	if kind, ok := token.Keywords[word]; ok {
		return token.NewSpan(token.FamilyKeyword, kind, word, span)
	}
	if kind, ok := token.LookupWordOperator(word); ok {
		return token.NewSpan(token.FamilyLogicalOp, kind, word, span)
	}
	return token.NewSpan(token.FamilyIdentifier, token.Name, word, span)
}

// twoCharOperators lists the two-character operator spellings, always tried
// before falling back to a one-character operator.
var twoCharOperators = map[string]struct {
	family token.Family
	kind   token.Kind
}{
	"**": {token.FamilyArithmeticOp, token.DoubleStar},
	"<=": {token.FamilyCompOp, token.LessEqual},
	">=": {token.FamilyCompOp, token.GreaterEqual},
	"==": {token.FamilyCompOp, token.EqEqual},
	"!=": {token.FamilyCompOp, token.NotEqual},
	"+=": {token.FamilyAssignOp, token.PlusEqual},
	"-=": {token.FamilyAssignOp, token.MinusEqual},
	"*=": {token.FamilyAssignOp, token.StarEqual},
	"/=": {token.FamilyAssignOp, token.SlashEqual},
	"^=": {token.FamilyAssignOp, token.DoubleStarEqual},
	"&&": {token.FamilyLogicalOp, token.And},
}

// oneCharOperators lists the single-character operator spellings. '^' alone
// means exponentiation, an alias for '**'.
var oneCharOperators = map[rune]struct {
	family token.Family
	kind   token.Kind
}{
	'+': {token.FamilyArithmeticOp, token.Plus},
	'-': {token.FamilyArithmeticOp, token.Minus},
	'*': {token.FamilyArithmeticOp, token.Star},
	'/': {token.FamilyArithmeticOp, token.Slash},
	'^': {token.FamilyArithmeticOp, token.DoubleStar},
	'<': {token.FamilyCompOp, token.Less},
	'>': {token.FamilyCompOp, token.Greater},
	'=': {token.FamilyAssignOp, token.Equal},
	'|': {token.FamilyLogicalOp, token.Or},
	'!': {token.FamilyLogicalOp, token.Not},
}

var punctuators = map[rune]token.Kind{
	';': token.Semi,
	'.': token.Dot,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBrack,
	']': token.RBrack,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
}

// readOperatorOrPunctuator handles every remaining first-match class:
// two-char operators, one-char operators, punctuators/separators, and the
// bare-'&' and unknown-character failure cases.
func (l *Lexer) readOperatorOrPunctuator(begin token.Position) (token.Token, *errors.Diagnostic) {
	first := l.ch

	if first == '&' {
		// '&' is only valid as the lead character of '&&'; a lone '&' fails.
		if l.peek() == '&' {
			l.advance()
			l.advance()
			return token.NewSpan(token.FamilyLogicalOp, token.And, "&&", token.Span{Begin: begin, End: l.pos.Revert()}), nil
		}
		l.advance()
		return token.Token{}, l.errAt(errors.KindInvalidChar, "unexpected character: &", token.Span{Begin: begin, End: begin})
	}

	two := string(first) + string(l.peek())
	if op, ok := twoCharOperators[two]; ok {
		l.advance()
		l.advance()
		return token.NewSpan(op.family, op.kind, two, token.Span{Begin: begin, End: l.pos.Revert()}), nil
	}

	if op, ok := oneCharOperators[first]; ok {
		l.advance()
		return token.New(op.family, op.kind, string(first), begin), nil
	}

	if kind, ok := punctuators[first]; ok {
		l.advance()
		return token.New(token.FamilyPunctuator, kind, string(first), begin), nil
	}

	l.advance()
	return token.Token{}, l.errAt(errors.KindInvalidChar, "unexpected character: "+string(first), token.Span{Begin: begin, End: begin})
}
