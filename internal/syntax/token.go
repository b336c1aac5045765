package syntax

import (
	"strings"

	"uvss/internal/token"
)

// Trivia is whitespace, a comment, or a run of skipped tokens.
// Tokens is only set for token.TriviaSkippedTokens.
type Trivia struct {
	Kind   token.TriviaKind
	Text   string
	Tokens []*Token
}

// Token is a leaf of the tree.
type Token struct {
	kind      token.Kind
	text      string
	value     any
	leading   []Trivia
	trailing  []Trivia
	missing   bool
	fullWidth int
	diags     []Diagnostic
	parent    Node
	index     int
}

func (t *Token) Kind() Kind { return Kind(t.kind) }
func (t *Token) TokenKind() token.Kind { return t.kind }

// Text is the exact source slice; empty for missing tokens.
func (t *Token) Text() string { return t.text }

// Value is the decoded literal: float64 for numbers, string for strings.
func (t *Token) Value() any { return t.value }

func (t *Token) Leading() []Trivia { return t.leading }
func (t *Token) Trailing() []Trivia { return t.trailing }
func (t *Token) IsMissing() bool { return t.missing }
func (t *Token) FullWidth() int { return t.fullWidth }
func (t *Token) Parent() Node { return t.parent }
func (t *Token) Index() int { return t.index }
func (t *Token) SlotCount() int { return 0 }
func (t *Token) Slot(int) Element { return nil }
func (t *Token) Diagnostics() []Diagnostic { return t.diags }

func (t *Token) Position() int { return Position(t) }
func (t *Token) FullPosition() int { return FullPosition(t) }
func (t *Token) Width() int { return len(t.text) }
func (t *Token) ToFullString() string { return ToFullString(t) }
func (t *Token) String() string { return t.text }
func (t *Token) GetLeadingTrivia() []Trivia { return t.leading }
func (t *Token) GetTrailingTrivia() []Trivia { return t.trailing }

// Number returns the numeric value of a Number token.
func (t *Token) Number() (float64, bool) {
	v, ok := t.value.(float64)
	return v, ok
}

func (t *Token) writeTo(b *strings.Builder) {
	for _, tr := range t.leading {
		b.WriteString(tr.Text)
	}
	b.WriteString(t.text)
	for _, tr := range t.trailing {
		b.WriteString(tr.Text)
	}
}

func (t *Token) setParent(p Node, index int) {
	if t.parent != nil {
		panic("syntax: token " + t.kind.String() + " already has a parent")
	}
	t.parent = p
	t.index = index
}

func (t *Token) addDiagnostics(d []Diagnostic) {
	if t.parent != nil {
		panic("syntax: diagnostics must be attached before the element is placed")
	}
	t.diags = append(t.diags, d...)
}

// NewToken builds a present token.
func NewToken(kind token.Kind, text string, value any, leading, trailing []Trivia) *Token {
	t := &Token{
		kind:     kind,
		text:     text,
		value:    value,
		leading:  leading,
		trailing: trailing,
	}
	t.fullWidth = triviaWidth(leading) + len(text) + triviaWidth(trailing)
	return t
}

// Punct builds a keyword or punctuation token with its fixed spelling
// and no trivia.
func Punct(kind token.Kind) *Token {
	sp := kind.Spelling()
	if sp == "" {
		panic("syntax: " + kind.String() + " has no fixed spelling")
	}
	return NewToken(kind, sp, nil, nil, nil)
}

// Ident builds an identifier token without trivia.
func Ident(name string) *Token {
	return NewToken(token.Ident, name, nil, nil, nil)
}

// MissingToken builds a zero-width placeholder for an expected token.
func MissingToken(kind token.Kind) *Token {
	return &Token{kind: kind, missing: true}
}

// WithTrivia returns a parentless copy of t with the given trivia.
// Missing tokens stay missing and never carry trivia.
func (t *Token) WithTrivia(leading, trailing []Trivia) *Token {
	if t.missing {
		return t.clone()
	}
	c := NewToken(t.kind, t.text, t.value, leading, trailing)
	c.diags = t.diags
	return c
}

// clone returns a parentless copy of t.
func (t *Token) clone() *Token {
	c := *t
	c.parent = nil
	c.index = 0
	return &c
}

// Whitespace builds whitespace trivia.
func Whitespace(text string) Trivia {
	return Trivia{Kind: token.TriviaWhitespace, Text: text}
}

// EndOfLine builds a line break trivia.
func EndOfLine(text string) Trivia {
	return Trivia{Kind: token.TriviaEndOfLine, Text: text}
}

// Comment builds comment trivia of the kind implied by its text.
func Comment(text string) Trivia {
	if strings.HasPrefix(text, "/*") {
		return Trivia{Kind: token.TriviaMultiLineComment, Text: text}
	}
	return Trivia{Kind: token.TriviaSingleLineComment, Text: text}
}

// SkippedTokens wraps tokens the parser could not place. Their full text,
// trivia included, becomes the trivia text.
func SkippedTokens(tokens ...*Token) Trivia {
	var b strings.Builder
	for _, t := range tokens {
		t.writeTo(&b)
	}
	return Trivia{Kind: token.TriviaSkippedTokens, Text: b.String(), Tokens: tokens}
}
