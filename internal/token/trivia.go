package token

import "uvss/internal/source"

// TriviaKind classifies non-semantic source text.
type TriviaKind uint8

const (
	// TriviaWhitespace is a run of spaces and tabs.
	TriviaWhitespace TriviaKind = iota
	// TriviaEndOfLine is a single line break: "\r\n", "\n" or "\r".
	TriviaEndOfLine
	// TriviaSingleLineComment is "// ..." up to (excluding) the line break.
	TriviaSingleLineComment
	// TriviaMultiLineComment is "/* ... */".
	TriviaMultiLineComment
	// TriviaSkippedTokens wraps tokens the parser could not place.
	TriviaSkippedTokens
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaEndOfLine:
		return "EndOfLine"
	case TriviaSingleLineComment:
		return "SingleLineComment"
	case TriviaMultiLineComment:
		return "MultiLineComment"
	case TriviaSkippedTokens:
		return "SkippedTokens"
	}
	return "TriviaKind(?)"
}

// IsComment reports whether the trivia is a comment.
func (k TriviaKind) IsComment() bool {
	return k == TriviaSingleLineComment || k == TriviaMultiLineComment
}

// Trivia is a piece of whitespace or comment text attached to a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
