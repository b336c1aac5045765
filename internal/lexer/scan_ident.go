package lexer

import (
	"uvss/internal/token"
)

// scanIdentOrKeyword scans an identifier, optionally led by one '-', and
// checks it against the keyword table. Keywords are case-sensitive and must
// match the whole identifier, so "set-handled" stays an identifier.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	var lead uint32
	if lx.cursor.Peek() == '-' {
		lead = 1
	}
	if r, size := lx.runeAt(int(lead)); size == 0 || !isIdentStartRune(r) {
		if lx.cursor.EOF() {
			return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(start)}
		}
		return lx.scanUnknown()
	}
	lx.cursor.BumpN(lead)
	lx.bumpRune()
	for r, size := lx.peekRune(); size > 0 && isIdentContinueRune(r); r, size = lx.peekRune() {
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	kind, ok := token.LookupKeyword(text)
	if !ok {
		kind = token.Ident
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanDirective scans "$name". A lone '$' is an Unknown token.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	ident := lx.scanIdentOrKeyword()
	if ident.Kind != token.Ident && !ident.Kind.IsKeyword() {
		lx.cursor.Reset(start)
		return lx.scanUnknown()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Directive, Span: sp, Text: lx.text(sp)}
}

// scanUnknown consumes one character: a whole rune when the input is valid
// UTF-8, a single byte otherwise.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Unknown, Span: sp, Text: lx.text(sp)}
}
