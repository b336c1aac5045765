package lexer

import (
	"unicode"
	"unicode/utf8"
)

const utf8RuneSelf = utf8.RuneSelf

// runeAt decodes the rune k bytes ahead of the cursor; size is 0 at EOF.
func (lx *Lexer) runeAt(k int) (r rune, size int) {
	rest := lx.cursor.Rest()
	switch {
	case k >= len(rest):
		return utf8.RuneError, 0
	case rest[k] < utf8RuneSelf:
		return rune(rest[k]), 1
	}
	return utf8.DecodeRune(rest[k:])
}

func (lx *Lexer) peekRune() (r rune, size int) { return lx.runeAt(0) }

func (lx *Lexer) bumpRune() {
	// size is at most utf8.UTFMax
	for _, size := lx.runeAt(0); size > 0; size-- {
		lx.cursor.Bump()
	}
}

func isDec(b byte) bool { return '0' <= b && b <= '9' }

func isIdentStartByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return b == '-' || isDec(b) || isIdentStartByte(b)
}

func isIdentStartRune(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentContinueRune(r rune) bool {
	return r == '-' || isIdentStartRune(r) || unicode.IsDigit(r)
}

// isIdentAfterDash reports "-name": a dash and then an identifier start.
func (lx *Lexer) isIdentAfterDash() bool {
	if lx.cursor.Peek() != '-' {
		return false
	}
	r, size := lx.runeAt(1)
	return size > 0 && isIdentStartRune(r)
}

// isNumberAfterDash reports "-1".
func (lx *Lexer) isNumberAfterDash() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '-' && isDec(b1)
}
