package lexer

import (
	"strings"

	"uvss/internal/token"
)

// collectLeadingTrivia gathers the trivia in front of the next token into lx.hold:
//   - runs of ' ' and '\t' become one TriviaWhitespace
//   - every line break ("\r\n", "\n" or "\r") is its own TriviaEndOfLine
//   - "//..." up to the line break is a TriviaSingleLineComment
//   - "/* ... */" is a TriviaMultiLineComment; an unclosed one runs to EOF
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = nil
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t':
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaWhitespace, start)
			continue

		case b == '\r':
			lx.cursor.Bump()
			lx.cursor.Eat('\n')
			lx.pushTrivia(token.TriviaEndOfLine, start)
			continue

		case b == '\n':
			lx.cursor.Bump()
			lx.pushTrivia(token.TriviaEndOfLine, start)
			continue

		case b == '/':
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		// no more trivia
		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

// scanCommentIntoHold handles "//..." and "/*...*/".
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}
	switch b1 {
	case '/':
		lx.cursor.BumpN(2)
		for !lx.cursor.EOF() {
			if c := lx.cursor.Peek(); c == '\n' || c == '\r' {
				break
			}
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaSingleLineComment, start)
		return true

	case '*':
		lx.cursor.BumpN(2)
		for !lx.cursor.EOF() {
			if lx.cursor.HasPrefix("*/") {
				lx.cursor.BumpN(2)
				break
			}
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaMultiLineComment, start)
		return true
	}
	return false
}

// atCommentStart reports whether the cursor is on "//" or "/*".
func (lx *Lexer) atCommentStart() bool {
	return lx.cursor.HasPrefix("//") || lx.cursor.HasPrefix("/*")
}

// IsClosedComment reports whether a block comment text ends with its terminator.
func IsClosedComment(text string) bool {
	return len(text) >= 4 && strings.HasSuffix(text, "*/")
}
