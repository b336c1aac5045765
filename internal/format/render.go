package format

import (
	"slices"
	"strings"

	"uvss/internal/syntax"
	"uvss/internal/token"
)

// render turns the planned separators into trivia. Comments and skipped
// tokens are the only trivia carried over: each goes on a line of its
// own in front of the token that follows it in the source.
func (p *planner) render(opt Options) map[*syntax.Token][]syntax.Trivia {
	out := make(map[*syntax.Token][]syntax.Trivia, len(p.toks))
	w := &writer{opt: opt}
	pending := none()
	var carry []syntax.Trivia
	openString := false

	for _, pl := range p.toks {
		t := pl.tok
		if t.IsMissing() {
			pending = stronger(pending, pl.sep)
			continue
		}
		s := stronger(pending, pl.sep)
		pending = none()
		// a string cut by a line break must stay cut
		if openString {
			s = stronger(s, line(w.indent))
		}

		kept := append(carry, preserved(t.Leading())...)
		carry = nil
		if t.TokenKind() == token.EOF {
			kept = append(kept, preserved(t.Trailing())...)
		} else {
			carry = preserved(t.Trailing())
		}
		if t.TokenKind() == token.Empty {
			// comments after the skipped run belong to the next item
			var after []syntax.Trivia
			kept, after = splitAfterSkipped(kept)
			carry = append(after, carry...)
		}

		w.reset()
		w.emit(s, kept, t)
		out[t] = w.Trivia()
		if t.Text() != "" {
			w.started = true
			openString = endsInOpenString(t.Text())
		}
	}
	return out
}

// splitAfterSkipped cuts kept after its last skipped run.
func splitAfterSkipped(kept []syntax.Trivia) (head, tail []syntax.Trivia) {
	for i := len(kept) - 1; i >= 0; i-- {
		if kept[i].Kind == token.TriviaSkippedTokens {
			return kept[:i+1], slices.Clone(kept[i+1:])
		}
	}
	return kept, nil
}

// endsInOpenString reports whether text ends inside a string literal that
// a line break cut short.
func endsInOpenString(text string) bool {
	open := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			open = !open
		case '\\':
			if open {
				i++
			}
		case '\n', '\r':
			open = false
		}
	}
	return open
}

// unterminatedComment reports a block comment that runs to EOF.
func unterminatedComment(tr syntax.Trivia) bool {
	return tr.Kind == token.TriviaMultiLineComment &&
		(len(tr.Text) < 4 || !strings.HasSuffix(tr.Text, "*/"))
}

// emit writes the separator s and the kept trivia in front of t.
func (w *writer) emit(s sep, kept []syntax.Trivia, t *syntax.Token) {
	if len(kept) == 0 {
		w.Separator(s)
		return
	}
	commentIndent := w.indent
	if s.kind == sepLine {
		commentIndent = s.commentIndent
		if s.blank {
			w.BlankLine()
		}
	}
	for _, tr := range kept {
		w.Newline(commentIndent)
		w.Keep(tr)
	}
	// an empty statement ends with its skipped tokens; an unterminated
	// comment swallows everything up to EOF
	if t.TokenKind() == token.Empty || unterminatedComment(kept[len(kept)-1]) {
		return
	}
	level := commentIndent
	if s.kind == sepLine {
		level = s.indent
	}
	w.Newline(level)
}

// preserved returns the comments and skipped tokens of list, with the
// outer whitespace of skipped runs trimmed.
func preserved(list []syntax.Trivia) []syntax.Trivia {
	var out []syntax.Trivia
	for _, tr := range list {
		switch tr.Kind {
		case token.TriviaSingleLineComment, token.TriviaMultiLineComment:
			out = append(out, syntax.Comment(tr.Text))
		case token.TriviaSkippedTokens:
			out = append(out, trimSkipped(tr)...)
		}
	}
	return out
}

// trimSkipped drops the whitespace around a skipped run; comments found
// there become separate items around it.
func trimSkipped(tr syntax.Trivia) []syntax.Trivia {
	toks := tr.Tokens
	if len(toks) == 0 {
		return nil
	}
	first, last := toks[0], toks[len(toks)-1]
	before := preserved(first.Leading())
	after := preserved(last.Trailing())

	trimmed := make([]*syntax.Token, len(toks))
	for i, t := range toks {
		lead, trail := t.Leading(), t.Trailing()
		if i == 0 {
			lead = nil
		}
		if i == len(toks)-1 {
			trail = nil
		}
		trimmed[i] = t.WithTrivia(lead, trail)
	}

	out := append(before, syntax.SkippedTokens(trimmed...))
	return append(out, after...)
}
