package parser

import "github.com/sanmaykant/viper/internal/token"

// current returns the token at idx, clamped to the final (EOF) token once
// idx runs past the end of the buffer.
func (p *Parser) current() token.Token {
	if p.idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.idx]
}

// peek returns the token n positions ahead of idx without moving the
// cursor, clamped to EOF the same way current is.
func (p *Parser) peek(n int) token.Token {
	i := p.idx + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	if i < 0 {
		i = 0
	}
	return p.tokens[i]
}

// advance moves the cursor forward n positions, clamped to one past the
// last token (current then keeps returning EOF).
func (p *Parser) advance(n int) {
	p.idx += n
	if p.idx > len(p.tokens) {
		p.idx = len(p.tokens)
	}
}

// revert moves the cursor back n positions, clamped to the start.
func (p *Parser) revert(n int) {
	p.idx -= n
	if p.idx < 0 {
		p.idx = 0
	}
}

// mark and reset support the lookahead-then-undo pattern used by the
// dotted-name/callable builders: save idx, try a parse, roll back on a
// mismatch that consumed tokens.
func (p *Parser) mark() int { return p.idx }

func (p *Parser) reset(m int) { p.idx = m }

// at reports whether the current token has the given family and kind.
func (p *Parser) at(family token.Family, kind token.Kind) bool {
	return p.current().Is(family, kind)
}
