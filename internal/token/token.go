package token

import (
	"uvss/internal/source"
)

// Flags records lexical anomalies the parser turns into diagnostics.
type Flags uint8

const (
	// FlagUnterminated marks a string literal without a closing quote.
	FlagUnterminated Flags = 1 << iota
	// FlagBadNumber marks a numeric literal whose text is malformed.
	FlagBadNumber
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
	// Trailing is only populated for EOF: trivia after the last real token.
	Trailing []Trivia
	// Value holds the decoded literal: float64 for Number, string for String.
	Value any
	Flags Flags
}

// FullStart returns the offset of the first byte covered by the token,
// including its leading trivia.
func (t Token) FullStart() uint32 {
	if len(t.Leading) > 0 {
		return t.Leading[0].Span.Start
	}
	return t.Span.Start
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	return t.Kind == Number || t.Kind == String
}

// IsPunct reports whether the token is a punctuation or operator.
func (t Token) IsPunct() bool { return t.Kind.IsPunct() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// HasLeadingTrivia reports whether any trivia precedes the token.
func (t Token) HasLeadingTrivia() bool { return len(t.Leading) > 0 }
