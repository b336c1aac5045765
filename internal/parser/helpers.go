package parser

import (
	"fmt"

	"uvss/internal/diag"
	"uvss/internal/lexer"
	"uvss/internal/syntax"
	"uvss/internal/token"
)

// advance consumes the next token together with the trivia that follows
// it on the same line.
func (p *Parser) advance() *syntax.Token {
	tok := p.lx.Next()
	return p.convert(tok, p.lx.TakeTrailing())
}

// advanceGlued consumes the next token without trailing trivia, so the
// whitespace after it stays visible to the next token (selectors).
func (p *Parser) advanceGlued() *syntax.Token {
	return p.convert(p.lx.Next(), nil)
}

// expect consumes a token of kind k, or synthesizes a missing one with a
// diagnostic without advancing.
func (p *Parser) expect(k token.Kind) *syntax.Token {
	if p.at(k) {
		return p.advance()
	}
	return p.missing(k)
}

// expectGlued is expect for selector tokens.
func (p *Parser) expectGlued(k token.Kind) *syntax.Token {
	if p.at(k) {
		return p.advanceGlued()
	}
	return p.missing(k)
}

// optional consumes a token of kind k if present.
func (p *Parser) optional(k token.Kind) *syntax.Token {
	if p.at(k) {
		return p.advance()
	}
	return nil
}

func (p *Parser) missing(k token.Kind) *syntax.Token {
	msg := fmt.Sprintf("expected %s, found %s", describeKind(k), describe(p.lx.Peek()))
	d := syntax.Error(diag.SynMissingToken, 0, msg)
	d.Insert = k.Spelling()
	return syntax.Attach(syntax.MissingToken(k), d)
}

// missingSilent synthesizes a missing token without a diagnostic, for
// tokens whose absence is already reported.
func missingSilent(k token.Kind) *syntax.Token {
	return syntax.MissingToken(k)
}

// parseValue scans raw value text. An empty value becomes a missing Value
// token; report controls whether that is diagnosed.
func (p *Parser) parseValue(mode lexer.ValueMode, report bool) *syntax.Token {
	tok := p.lx.ScanValue(mode)
	if tok.Text == "" {
		if !report {
			return missingSilent(token.Value)
		}
		return syntax.Attach(syntax.MissingToken(token.Value), syntax.Error(diag.SynEmptyValue, 0, "expected a value"))
	}
	return p.convert(tok, p.lx.TakeTrailing())
}

// convert turns a lexer token into a tree token. Lexical anomalies
// become diagnostics on the token.
func (p *Parser) convert(tok token.Token, trailing []token.Trivia) *syntax.Token {
	leading := convertTrivia(tok.Leading)
	trail := convertTrivia(trailing)
	if tok.Kind == token.EOF {
		trail = convertTrivia(tok.Trailing)
	}
	out := syntax.NewToken(tok.Kind, tok.Text, tok.Value, leading, trail)

	var diags []syntax.Diagnostic
	if tok.Flags&token.FlagUnterminated != 0 {
		diags = append(diags, syntax.Error(diag.LexUnterminatedString, len(tok.Text), "unterminated string literal"))
	}
	if tok.Flags&token.FlagBadNumber != 0 {
		diags = append(diags, syntax.Error(diag.LexBadNumber, len(tok.Text), "malformed number "+tok.Text))
	}
	// offsets are relative to the token text
	off := 0
	for i := len(leading) - 1; i >= 0; i-- {
		off -= len(leading[i].Text)
		if unterminatedComment(leading[i]) {
			diags = append(diags, commentDiagnostic(off, leading[i]))
		}
	}
	off = len(tok.Text)
	for _, tr := range trail {
		if unterminatedComment(tr) {
			diags = append(diags, commentDiagnostic(off, tr))
		}
		off += len(tr.Text)
	}
	if len(diags) > 0 {
		syntax.Attach(out, diags...)
	}
	return out
}

func convertTrivia(list []token.Trivia) []syntax.Trivia {
	if len(list) == 0 {
		return nil
	}
	out := make([]syntax.Trivia, len(list))
	for i, tr := range list {
		out[i] = syntax.Trivia{Kind: tr.Kind, Text: tr.Text}
	}
	return out
}

func unterminatedComment(tr syntax.Trivia) bool {
	return tr.Kind == token.TriviaMultiLineComment && !lexer.IsClosedComment(tr.Text)
}

func commentDiagnostic(off int, tr syntax.Trivia) syntax.Diagnostic {
	d := syntax.Error(diag.LexUnterminatedComment, len(tr.Text), "unterminated block comment")
	d.Offset = off
	return d
}

func describeKind(k token.Kind) string {
	switch k {
	case token.Ident:
		return "identifier"
	case token.Number:
		return "number"
	case token.String:
		return "string"
	case token.Value:
		return "value"
	case token.EOF:
		return "end of file"
	}
	if sp := k.Spelling(); sp != "" {
		return "'" + sp + "'"
	}
	return k.String()
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return fmt.Sprintf("%q", tok.Text)
}
