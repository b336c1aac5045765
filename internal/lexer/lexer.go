package lexer

import (
	"uvss/internal/diag"
	"uvss/internal/source"
	"uvss/internal/token"
)

// Lexer turns a file into tokens with attached trivia.
//
// Every byte of the input ends up either in a token's Text or in one of
// its trivia, so concatenating the full text of all tokens reproduces the
// file exactly.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	ahead  []token.Token  // lookahead buffer, at most two tokens
	hold   []token.Trivia // leading trivia being collected
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		ahead:  make([]token.Token, 0, 2),
	}
}

// Lex tokenizes src and returns every token up to and including EOF.
func Lex(src string) []token.Token {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", []byte(src)))
	lx := New(file, Options{})
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// Next returns the next significant token with its Leading trivia.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	var tok token.Token
	if len(lx.ahead) > 0 {
		tok = lx.ahead[0]
		copy(lx.ahead, lx.ahead[1:])
		lx.ahead = lx.ahead[:len(lx.ahead)-1]
	} else {
		tok = lx.scan()
	}
	lx.reportAnomalies(tok)
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	lx.fill(1)
	return lx.ahead[0]
}

// Peek2 returns the token after the next one without consuming anything.
func (lx *Lexer) Peek2() token.Token {
	lx.fill(2)
	return lx.ahead[1]
}

// TakeTrailing detaches the trivia that belongs on the same line as the
// previously consumed token: the prefix of the next token's Leading up to
// and including the first line break, or all of it when there is none.
// Trivia before EOF is never taken: it stays on the EOF token.
func (lx *Lexer) TakeTrailing() []token.Trivia {
	lx.fill(1)
	next := &lx.ahead[0]
	if next.Kind == token.EOF || len(next.Leading) == 0 {
		return nil
	}
	cut := len(next.Leading)
	for i, tr := range next.Leading {
		if tr.Kind == token.TriviaEndOfLine {
			cut = i + 1
			break
		}
	}
	taken := next.Leading[:cut:cut]
	if cut == len(next.Leading) {
		next.Leading = nil
	} else {
		next.Leading = next.Leading[cut:]
	}
	lx.checkTrivia(taken)
	// the second buffered token was scanned past the trivia; it is unaffected
	return taken
}

// fill scans tokens until the lookahead buffer holds n of them.
func (lx *Lexer) fill(n int) {
	for len(lx.ahead) < n {
		lx.ahead = append(lx.ahead, lx.scan())
	}
}

// rewind drops the lookahead buffer and moves the cursor to the first
// byte the buffer covered, trivia included.
func (lx *Lexer) rewind() uint32 {
	if len(lx.ahead) == 0 {
		return lx.cursor.Off
	}
	off := fullStart(lx.ahead[0])
	lx.ahead = lx.ahead[:0]
	lx.cursor.Reset(Mark(off))
	return off
}

func fullStart(tok token.Token) uint32 {
	if tok.Kind == token.EOF && len(tok.Trailing) > 0 {
		return tok.Trailing[0].Span.Start
	}
	return tok.FullStart()
}

// scan produces one token from the cursor position.
func (lx *Lexer) scan() token.Token {
	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{
			Kind:     token.EOF,
			Span:     lx.emptySpan(),
			Trailing: lx.hold,
		}
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// scanIdentOrKeyword falls back to Unknown for non-letters
		tok = lx.scanIdentOrKeyword()

	case ch == '-' && lx.isIdentAfterDash():
		tok = lx.scanIdentOrKeyword()

	case isDec(ch), ch == '-' && lx.isNumberAfterDash():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '$':
		tok = lx.scanDirective()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

func (lx *Lexer) reportAnomalies(tok token.Token) {
	lx.checkTrivia(tok.Leading)
	lx.checkTrivia(tok.Trailing)
	if tok.Flags&token.FlagUnterminated != 0 {
		lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	}
	if tok.Flags&token.FlagBadNumber != 0 {
		lx.errLex(diag.LexBadNumber, tok.Span, "malformed number "+tok.Text)
	}
}

func (lx *Lexer) checkTrivia(list []token.Trivia) {
	for _, tr := range list {
		if tr.Kind == token.TriviaMultiLineComment && !IsClosedComment(tr.Text) {
			lx.errLex(diag.LexUnterminatedComment, tr.Span, "unterminated block comment")
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
