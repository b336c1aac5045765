package lexer

import (
	"strconv"

	"uvss/internal/token"
)

// scanNumber scans "-"? digits ("." digits)?.
// Malformed forms ("1.", "1.2.3") still produce a Number token; they are
// flagged with FlagBadNumber and carry no decoded Value.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	bad := false

	lx.cursor.Eat('-')
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	fractions := 0
	for lx.cursor.Peek() == '.' {
		_, b1, ok := lx.cursor.Peek2()
		if !ok || !isDec(b1) {
			// "1." at the end of the number; keep the dot only when nothing
			// that could follow a number is glued to it
			if !ok || !isIdentStartByte(b1) {
				lx.cursor.Bump()
				bad = true
			}
			break
		}
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		fractions++
	}
	if fractions > 1 {
		bad = true
	}

	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
	if bad {
		tok.Flags |= token.FlagBadNumber
		return tok
	}
	if v, err := strconv.ParseFloat(tok.Text, 64); err == nil {
		tok.Value = v
	} else {
		tok.Flags |= token.FlagBadNumber
	}
	return tok
}
