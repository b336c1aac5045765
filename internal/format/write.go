package format

import (
	"strings"

	"uvss/internal/syntax"
)

// sepKind is the layout requested in front of a token.
type sepKind uint8

const (
	sepNone sepKind = iota
	sepSpace
	sepLine
)

type sep struct {
	kind   sepKind
	indent int
	blank  bool
	// commentIndent is the level of comments emitted before the token;
	// it differs from indent only for closing braces.
	commentIndent int
}

func none() sep  { return sep{kind: sepNone} }
func space() sep { return sep{kind: sepSpace} }

func line(indent int) sep {
	return sep{kind: sepLine, indent: indent, commentIndent: indent}
}

// stronger merges the separator of a missing token into the one of the
// next present token.
func stronger(a, b sep) sep {
	if a.kind != b.kind {
		if a.kind > b.kind {
			return a
		}
		return b
	}
	if b.kind == sepLine {
		b.blank = b.blank || a.blank
	}
	return b
}

// writer accumulates the trivia placed in front of one token.
type writer struct {
	opt     Options
	out     []syntax.Trivia
	started bool
	// indent is the level of the current output line.
	indent int
}

func (w *writer) reset() {
	w.out = nil
}

// Newline starts a new line at level, unless nothing has been written
// yet: the output never starts with a line break.
func (w *writer) Newline(level int) {
	if w.started {
		w.out = append(w.out, syntax.EndOfLine(w.opt.Newline))
	}
	w.indent = level
	if level > 0 {
		w.out = append(w.out, syntax.Whitespace(strings.Repeat(w.opt.Indent, level)))
	}
}

// BlankLine writes an empty line.
func (w *writer) BlankLine() {
	if w.started {
		w.out = append(w.out, syntax.EndOfLine(w.opt.Newline))
	}
}

func (w *writer) Space() {
	if w.started {
		w.out = append(w.out, syntax.Whitespace(" "))
	}
}

// Keep appends preserved trivia (a comment or skipped tokens) verbatim.
func (w *writer) Keep(tr syntax.Trivia) {
	w.out = append(w.out, tr)
	w.started = true
}

// Separator writes s.
func (w *writer) Separator(s sep) {
	switch s.kind {
	case sepSpace:
		w.Space()
	case sepLine:
		if s.blank {
			w.BlankLine()
		}
		w.Newline(s.indent)
	}
}

func (w *writer) Trivia() []syntax.Trivia {
	if len(w.out) == 0 {
		return nil
	}
	return w.out
}
