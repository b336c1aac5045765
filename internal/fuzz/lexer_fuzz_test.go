package fuzztests

import (
	"strings"
	"testing"

	"uvss/internal/diag"
	"uvss/internal/lexer"
	"uvss/internal/source"
)

// FuzzLexerTokens checks that the raw token stream covers the input
// exactly: trivia and token texts concatenate back to the source.
func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.uvss", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		var b strings.Builder
		for range len(input) + 2 {
			tok := lx.Next()
			for _, tr := range tok.Leading {
				b.WriteString(tr.Text)
			}
			b.WriteString(tok.Text)
			for _, tr := range tok.Trailing {
				b.WriteString(tr.Text)
			}
			if tok.Kind.IsEOF() {
				if b.String() != string(input) {
					t.Fatalf("token stream does not cover input:\ngot:  %q\nwant: %q", b.String(), input)
				}
				return
			}
		}
		t.Fatalf("lexer did not reach EOF within %d tokens", len(input)+2)
	})
}
