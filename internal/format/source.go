package format

import (
	"uvss/internal/parser"
	"uvss/internal/syntax"
)

// FormatSource parses src and returns its normalized text and whether it
// differs from src.
func FormatSource(src string) (string, bool) {
	out := NormalizeDocument(parser.Parse(src)).ToFullString()
	return out, out != src
}

// FormatDocument returns the normalized text of doc.
func FormatDocument(doc *syntax.Document, opt Options) string {
	return NormalizeWith(doc, opt).ToFullString()
}
