package lexer

import (
	"strings"

	"uvss/internal/token"
)

// scanString scans a double-quoted literal with backslash escapes.
// A string may not span lines: a line break or EOF before the closing
// quote yields a String token flagged FlagUnterminated.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			closed = true
			break
		}
		if b == '\n' || b == '\r' {
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if c := lx.cursor.Peek(); c == '\n' || c == '\r' {
				break
			}
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	tok := token.Token{Kind: token.String, Span: sp, Text: text, Value: Unquote(text)}
	if !closed {
		tok.Flags |= token.FlagUnterminated
	}
	return tok
}

// Unquote decodes the body of a string literal. It tolerates a missing
// closing quote and unknown escapes (which stand for the escaped character).
func Unquote(text string) string {
	text = strings.TrimPrefix(text, `"`)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '"' {
			break
		}
		if c != '\\' || i+1 == len(text) {
			b.WriteByte(c)
			continue
		}
		i++
		switch text[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(text[i])
		}
	}
	return b.String()
}
