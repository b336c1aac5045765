package lexer

import (
	"uvss/internal/token"
)

const important = "!important"

// twoCharOps are tried before singleChar so "<=" never lexes as "<" "=".
var twoCharOps = [...]struct {
	text string
	kind token.Kind
}{
	{"<>", token.NotEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{">>", token.GtGt},
}

var singleChar = [128]token.Kind{
	'{': token.LBrace, '}': token.RBrace,
	'(': token.LParen, ')': token.RParen,
	'[': token.LBracket, ']': token.RBracket,
	':': token.Colon, ';': token.Semicolon, ',': token.Comma,
	'.': token.Dot, '#': token.Hash, '@': token.At, '*': token.Star,
	'!': token.Bang, '|': token.Pipe, '=': token.Assign,
	'<': token.Lt, '>': token.Gt,
}

// scanOperatorOrPunct takes the longest operator at the cursor. Bytes that
// start no operator become a single Unknown character.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	finish := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	if lx.atImportant() {
		lx.cursor.BumpN(uint32(len(important)))
		return finish(token.KwImportant)
	}
	for _, op := range twoCharOps {
		if lx.cursor.HasPrefix(op.text) {
			lx.cursor.BumpN(2)
			return finish(op.kind)
		}
	}
	if b := lx.cursor.Peek(); b < utf8RuneSelf && singleChar[b] != token.Invalid {
		lx.cursor.Bump()
		return finish(singleChar[b])
	}
	return lx.scanUnknown()
}

// atImportant reports a complete "!important", not a prefix of a longer
// identifier.
func (lx *Lexer) atImportant() bool {
	if !lx.cursor.HasPrefix(important) {
		return false
	}
	next, ok := lx.cursor.At(uint32(len(important)))
	return !ok || !isIdentContinueByte(next)
}
