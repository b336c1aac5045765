package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"uvss/internal/lexer"
	"uvss/internal/parser"
	"uvss/internal/source"
)

func TestFormatTreePretty(t *testing.T) {
	doc := parser.Parse("#a { b: c; }")

	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, doc, nil, TreeOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Document (0..12)",
		"├─ List (0..12)",
		"RuleSet (0..12)",
		"Ident \"b\" (5..6)",
		"└─ EOF (12..12)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected tree to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatTreeShowsMissingAndDiagnostics(t *testing.T) {
	doc := parser.Parse("#a { b c; }")

	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, doc, nil, TreeOpts{ShowTrivia: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Colon <missing>", "! SYN2002", "trailing Whitespace \" \""} {
		if !strings.Contains(out, want) {
			t.Errorf("expected tree to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatTreeJSON(t *testing.T) {
	doc := parser.Parse("#a {}")

	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, doc); err != nil {
		t.Fatal(err)
	}
	var root NodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if root.Kind != "Document" || len(root.Children) != 2 {
		t.Fatalf("unexpected root: %+v", root)
	}
	if root.End != 5 {
		t.Errorf("expected document to end at 5, got %d", root.End)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.uvss", []byte("a /* x */ b"))
	toks := lexer.Lex(string(fs.Get(id).Content))
	for i := range toks {
		toks[i].Span.File = id
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "(leading: Whitespace, MultiLineComment, Whitespace)") {
		t.Errorf("expected leading trivia kinds, got:\n%s", out)
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 3 || decoded[2].Kind != "EOF" {
		t.Fatalf("unexpected tokens: %+v", decoded)
	}
}
