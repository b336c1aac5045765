package lexer

import (
	"uvss/internal/source"
	"uvss/internal/token"
)

// ValueMode selects where raw value text ends.
type ValueMode uint8

const (
	// ValueRule ends at ';', '{', '}', "!important", a comment or EOF.
	ValueRule ValueMode = iota
	// ValueBraced ends at the '}' matching the already consumed '{',
	// at a comment or at EOF.
	ValueBraced
)

// ScanValue drops any buffered lookahead and scans raw value text from the
// position right after the last consumed token. Quoted strings are atomic.
// Trailing whitespace is left for the next token.
//
// An empty value yields a Value token with empty Text and no trivia; the
// cursor is left before any trivia it skipped.
func (lx *Lexer) ScanValue(mode ValueMode) token.Token {
	start := lx.rewind()
	lx.collectLeadingTrivia()
	bodyStart := lx.cursor.Off
	end := bodyStart
	depth := 0

loop:
	for !lx.cursor.EOF() {
		if lx.atCommentStart() {
			break
		}
		switch lx.cursor.Peek() {
		case ';':
			if mode == ValueRule {
				break loop
			}
		case '{':
			if mode == ValueRule {
				break loop
			}
			depth++
		case '}':
			if mode == ValueRule || depth == 0 {
				break loop
			}
			depth--
		case '!':
			if mode == ValueRule && lx.atImportant() {
				break loop
			}
		case '"':
			lx.skipQuoted()
			end = lx.cursor.Off
			continue
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
			continue
		}
		lx.bumpRune()
		end = lx.cursor.Off
	}

	if end == bodyStart {
		lx.cursor.Reset(Mark(start))
		lx.hold = nil
		return token.Token{
			Kind: token.Value,
			Span: source.Span{File: lx.file.ID, Start: start, End: start},
		}
	}

	lx.cursor.Reset(Mark(end))
	sp := source.Span{File: lx.file.ID, Start: bodyStart, End: end}
	tok := token.Token{Kind: token.Value, Span: sp, Text: lx.text(sp), Leading: lx.hold}
	lx.hold = nil
	lx.reportAnomalies(tok)
	return tok
}

// skipQuoted consumes a string inside a value up to the closing quote,
// the end of the line or EOF.
func (lx *Lexer) skipQuoted() {
	lx.cursor.Bump() // '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return
		case '\n', '\r':
			return
		case '\\':
			lx.cursor.Bump()
			if c := lx.cursor.Peek(); c == '\n' || c == '\r' {
				return
			}
		}
		lx.bumpRune()
	}
}
