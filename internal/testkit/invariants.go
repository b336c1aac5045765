// Package testkit holds invariant checkers shared by package tests and
// fuzz harnesses. Every checker returns a descriptive error instead of
// failing a test so callers decide how to report it.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"uvss/internal/format"
	"uvss/internal/parser"
	"uvss/internal/syntax"
)

// CheckRoundTrip verifies that doc prints back to exactly src.
func CheckRoundTrip(src string, doc *syntax.Document) error {
	if got := doc.ToFullString(); got != src {
		return fmt.Errorf("round trip mismatch: got %q, want %q", got, src)
	}
	if doc.FullWidth() != len(src) {
		return fmt.Errorf("document full width %d, source length %d", doc.FullWidth(), len(src))
	}
	return nil
}

// CheckSpanInvariants verifies width additivity and sibling adjacency for
// every node under root:
//  1. FullWidth(node) == sum of FullWidth(children)
//  2. FullPosition(child[i+1]) == FullPosition(child[i]) + FullWidth(child[i])
//  3. FullPosition(e) <= Position(e) and Width(e) <= FullWidth(e)
func CheckSpanInvariants(root syntax.Element) error {
	var err error
	syntax.Inspect(root, func(e syntax.Element) bool {
		if err != nil {
			return false
		}
		full, pos := syntax.FullPosition(e), syntax.Position(e)
		if pos < full {
			err = fmt.Errorf("%s: position %d before full position %d", e.Kind(), pos, full)
			return false
		}
		if w := syntax.Width(e); w > e.FullWidth() {
			err = fmt.Errorf("%s: width %d exceeds full width %d", e.Kind(), w, e.FullWidth())
			return false
		}

		sum := 0
		next := full
		for i := range e.SlotCount() {
			child := e.Slot(i)
			if child == nil {
				continue
			}
			if got := syntax.FullPosition(child); got != next {
				err = fmt.Errorf("%s slot %d (%s): full position %d, want %d", e.Kind(), i, child.Kind(), got, next)
				return false
			}
			sum += child.FullWidth()
			next += child.FullWidth()
		}
		if e.SlotCount() > 0 && sum != e.FullWidth() {
			err = fmt.Errorf("%s: children cover %d bytes, full width %d", e.Kind(), sum, e.FullWidth())
			return false
		}
		return true
	})
	return err
}

// CheckMissingTokens verifies that synthesized tokens are empty and carry
// no trivia.
func CheckMissingTokens(root syntax.Element) error {
	for _, t := range syntax.Tokens(root) {
		if !t.IsMissing() {
			continue
		}
		if t.FullWidth() != 0 || t.Text() != "" {
			return fmt.Errorf("missing %s has width %d", t.Kind(), t.FullWidth())
		}
		if len(t.Leading()) > 0 || len(t.Trailing()) > 0 {
			return fmt.Errorf("missing %s carries trivia", t.Kind())
		}
	}
	return nil
}

// CheckDiagnostics verifies that every diagnostic of doc lies inside the
// document text.
func CheckDiagnostics(doc *syntax.Document) error {
	size, err := safecast.Conv[uint32](doc.FullWidth())
	if err != nil {
		return fmt.Errorf("document size overflow: %w", err)
	}
	for _, d := range doc.GetDiagnostics() {
		if d.Primary.Start > d.Primary.End || d.Primary.End > size {
			return fmt.Errorf("%s %q: span %d..%d outside 0..%d", d.Code.ID(), d.Message, d.Primary.Start, d.Primary.End, size)
		}
	}
	return nil
}

// CheckNormalizeIdempotent verifies that normalizing twice gives the same
// text as normalizing once and that normalization keeps every token.
func CheckNormalizeIdempotent(doc *syntax.Document) error {
	once := format.NormalizeDocument(doc)
	twice := format.NormalizeDocument(once)
	if a, b := once.ToFullString(), twice.ToFullString(); a != b {
		return fmt.Errorf("normalize not idempotent:\nonce:  %q\ntwice: %q", a, b)
	}
	before, after := syntax.Tokens(doc), syntax.Tokens(once)
	if len(before) != len(after) {
		return fmt.Errorf("normalize changed token count: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].Kind() != after[i].Kind() || before[i].Text() != after[i].Text() {
			return fmt.Errorf("normalize changed token %d: %s %q -> %s %q",
				i, before[i].Kind(), before[i].Text(), after[i].Kind(), after[i].Text())
		}
	}
	return nil
}

// CheckAll parses src and runs every checker on the result.
func CheckAll(src string) error {
	doc := parser.Parse(src)
	checks := []func() error{
		func() error { return CheckRoundTrip(src, doc) },
		func() error { return CheckSpanInvariants(doc) },
		func() error { return CheckMissingTokens(doc) },
		func() error { return CheckDiagnostics(doc) },
		func() error { return CheckNormalizeIdempotent(doc) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
