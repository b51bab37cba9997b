package parser

import "github.com/Azzajazz/lcl/internal/token"

// recoverEatUntil consumes tokens until one whose type is in kinds has
// itself been consumed (inclusive), or EOF. It reports whether a
// matching token was found before EOF.
func (p *Parser) recoverEatUntil(kinds ...token.Type) bool {
	for {
		if p.curIs(token.EOF) {
			return false
		}
		matched := p.curIsAny(kinds...)
		p.advance()
		if matched {
			return true
		}
	}
}

// recoverEatUpTo consumes tokens while the current token is not in
// kinds, leaving the matching token (or EOF) for the caller.
func (p *Parser) recoverEatUpTo(kinds ...token.Type) bool {
	for !p.curIsAny(kinds...) {
		if p.curIs(token.EOF) {
			return false
		}
		p.advance()
	}
	return true
}
