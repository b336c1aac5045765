package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"uvss/internal/source"
	"uvss/internal/token"
)

type TriviaOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text"`
	Span source.Span `json:"span"`
}

// TokenOutput is one entry of the tokenize JSON array.
type TokenOutput struct {
	Kind     string         `json:"kind"`
	Text     string         `json:"text,omitempty"`
	Span     source.Span    `json:"span"`
	Value    any            `json:"value,omitempty"`
	Leading  []TriviaOutput `json:"leading,omitempty"`
	Trailing []TriviaOutput `json:"trailing,omitempty"`
}

// untilEOF cuts the stream after the first EOF token.
func untilEOF(tokens []token.Token) []token.Token {
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			return tokens[:i+1]
		}
	}
	return tokens
}

func triviaOutputs(list []token.Trivia) []TriviaOutput {
	var out []TriviaOutput
	for _, tr := range list {
		out = append(out, TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text, Span: tr.Span})
	}
	return out
}

func writeTriviaKinds(b *strings.Builder, label string, list []token.Trivia) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(b, " (%s: ", label)
	for i, tr := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(tr.Kind.String())
	}
	b.WriteByte(')')
}

// FormatTokensPretty writes "N: Kind "text" at l:c-l:c" per token, followed
// by the kinds of its leading and trailing trivia.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	var b strings.Builder
	for i, tok := range untilEOF(tokens) {
		from, to := fs.Resolve(tok.Span)
		fmt.Fprintf(&b, "%3d: %-18s", i+1, tok.Kind)
		if tok.Text != "" {
			fmt.Fprintf(&b, " %q", tok.Text)
		}
		fmt.Fprintf(&b, " at %d:%d-%d:%d", from.Line, from.Col, to.Line, to.Col)
		writeTriviaKinds(&b, "leading", tok.Leading)
		writeTriviaKinds(&b, "trailing", tok.Trailing)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	tokens = untilEOF(tokens)
	out := make([]TokenOutput, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Span:     tok.Span,
			Value:    tok.Value,
			Leading:  triviaOutputs(tok.Leading),
			Trailing: triviaOutputs(tok.Trailing),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
