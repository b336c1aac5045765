package parser_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"uvss/internal/diag"
	"uvss/internal/parser"
	"uvss/internal/source"
	"uvss/internal/syntax"
)

func parseSource(t *testing.T, src string) (*syntax.Document, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSetWithBase("")
	file := fs.Get(fs.AddVirtual("test.uvss", []byte(src)))
	res, err := parser.ParseFile(context.Background(), file, parser.Options{})
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if got := res.Document.ToFullString(); got != src {
		t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", src, got)
	}
	return res.Document, res.Bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func diagnosticCodes(bag *diag.Bag) []diag.Code {
	var codes []diag.Code
	for _, d := range bag.Items() {
		codes = append(codes, d.Code)
	}
	return codes
}

func onlyRuleSet(t *testing.T, doc *syntax.Document) *syntax.RuleSet {
	t.Helper()
	sets := doc.RuleSets()
	if len(sets) != 1 {
		t.Fatalf("expected 1 rule set, got %d", len(sets))
	}
	return sets[0]
}

// checkSpans verifies that every node's width is the sum of its slots and
// that slots are laid out back to back.
func checkSpans(t *testing.T, root syntax.Element) {
	t.Helper()
	syntax.Inspect(root, func(e syntax.Element) bool {
		if tok, ok := e.(*syntax.Token); ok {
			if tok.IsMissing() && tok.FullWidth() != 0 {
				t.Fatalf("missing %s token has width %d", tok.TokenKind(), tok.FullWidth())
			}
			return true
		}
		pos := syntax.FullPosition(e)
		sum := 0
		for i := range e.SlotCount() {
			s := e.Slot(i)
			if s == nil {
				continue
			}
			if got := syntax.FullPosition(s); got != pos+sum {
				t.Fatalf("%s slot %d at %d, want %d", e.Kind(), i, got, pos+sum)
			}
			sum += s.FullWidth()
		}
		if sum != e.FullWidth() {
			t.Fatalf("%s width %d, slots sum to %d", e.Kind(), e.FullWidth(), sum)
		}
		return true
	})
}
