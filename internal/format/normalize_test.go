package format_test

import (
	"strings"
	"testing"

	"uvss/internal/format"
	"uvss/internal/parser"
	"uvss/internal/syntax"
	"uvss/internal/token"
)

func crlf(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

func TestNormalize_NestedBlocks(t *testing.T) {
	open := syntax.Punct(token.LBrace).WithTrivia([]syntax.Trivia{syntax.Comment("// comment")}, nil)
	inner := syntax.NewBlock(open, syntax.NewList(), syntax.Punct(token.RBrace))
	wrap := func(b *syntax.Block) *syntax.Block {
		return syntax.NewBlock(syntax.Punct(token.LBrace), syntax.NewList(b), syntax.Punct(token.RBrace))
	}
	root := wrap(wrap(wrap(inner)))

	got := format.Normalize(root).ToFullString()
	want := crlf(
		"{",
		"\t{",
		"\t\t{",
		"\t\t\t// comment",
		"\t\t\t{",
		"\t\t\t}",
		"\t\t}",
		"\t}",
		"}",
	)
	if got != want {
		t.Fatalf("unexpected layout:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatSource_Layout(t *testing.T) {
	src := "$culture \"en-US\"\n" +
		"#a,#b>#c   .d{color:red;margin : 1 !important;" +
		"trigger property IsMouseOver={true}{set color{blue} play-sfx {click}}}" +
		"@sb{target Button{animation Opacity{keyframe 0{0} keyframe 100 ease-in{1}}}}"
	want := crlf(
		`$culture "en-US"`,
		"",
		"#a, #b > #c .d {",
		"\tcolor: red;",
		"\tmargin: 1 !important;",
		"",
		"\ttrigger property IsMouseOver = { true } {",
		"\t\tset color { blue }",
		"\t\tplay-sfx { click }",
		"\t}",
		"}",
		"",
		"@sb {",
		"\ttarget Button {",
		"\t\tanimation Opacity {",
		"\t\t\tkeyframe 0 { 0 }",
		"\t\t\tkeyframe 100 ease-in { 1 }",
		"\t\t}",
		"\t}",
		"}",
		"",
	)
	got, changed := format.FormatSource(src)
	if !changed {
		t.Fatalf("expected a change")
	}
	if got != want {
		t.Fatalf("unexpected layout:\nwant %q\ngot  %q", want, got)
	}
	if again, changed := format.FormatSource(got); changed || again != got {
		t.Fatalf("formatting is not stable:\n%q", again)
	}
}

func TestFormatSource_Comments(t *testing.T) {
	src := "// header\n#a { b: c; // note\n}\n/* end */"
	want := crlf(
		"// header",
		"#a {",
		"\tb: c;",
		"\t// note",
		"}",
		"/* end */",
		"",
	)
	got, _ := format.FormatSource(src)
	if got != want {
		t.Fatalf("unexpected layout:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatSource_SkippedTokens(t *testing.T) {
	got, _ := format.FormatSource("} #a {&&&}")
	want := crlf(
		"}",
		"",
		"#a {",
		"\t&&&",
		"}",
		"",
	)
	if got != want {
		t.Fatalf("unexpected layout:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatSource_MissingTokens(t *testing.T) {
	got, _ := format.FormatSource("#foo")
	if got != "#foo\r\n" {
		t.Fatalf("unexpected layout %q", got)
	}
	got, _ = format.FormatSource("")
	if got != "" {
		t.Fatalf("empty input formatted as %q", got)
	}
}

func TestNormalizeWith_Options(t *testing.T) {
	doc := parser.Parse("#a{b:c;}")
	got := format.FormatDocument(doc, format.Options{Indent: "  ", Newline: "\n"})
	if got != "#a {\n  b: c;\n}\n" {
		t.Fatalf("unexpected layout %q", got)
	}
}

func TestFormatSource_StableText(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1//\nb{}", crlf("1", "", "//", "b {", "}", "")},
		{"#a{}\n/* open", crlf("#a {", "}", "/* open")},
		{"a{t\"\n;", crlf("a {", "\tt \"", "\t;", "")},
	}
	for _, tt := range tests {
		once, _ := format.FormatSource(tt.src)
		if once != tt.want {
			t.Fatalf("FormatSource(%q):\nwant %q\ngot  %q", tt.src, tt.want, once)
		}
		if twice, changed := format.FormatSource(once); changed {
			t.Fatalf("FormatSource(%q) not stable:\nonce  %q\ntwice %q", tt.src, once, twice)
		}
		if a, b := tokenText(parser.Parse(tt.src)), tokenText(parser.Parse(once)); a != b {
			t.Fatalf("tokens changed for %q:\nbefore %q\nafter  %q", tt.src, a, b)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"#foo {}",
		"#foo",
		"#foo {&&&}",
		"} #foo {}",
		"#foo | bar[3.1] as baz {}",
		"a > b >> c, d { [transition]: 1s; Grid.row: 2; transition (Opacity): 1s ease; }",
		"#a { trigger event Click (x, y) !important { play-storyboard (#b) { sb } } }",
		"/* a */ #a /* b */ { /* c */ b /* d */ : c; } // e",
		"@s loop { target (#x) { animation Opacity | Content as Label { keyframe 1 { 2 } } } }",
		"$culture \"de\" $nope #a { b: ; c }",
		"#a { b: c !important !important; }\r\n\r\n\r\n",
		"\xff #a { \"unterminated\n}",
		"1//\nb{}",
		"a{t\"\n;",
		"#a {} /* open",
	}
	for _, src := range inputs {
		doc := parser.Parse(src)
		once := format.Normalize(doc)
		twice := format.Normalize(once)
		if a, b := once.ToFullString(), twice.ToFullString(); a != b {
			t.Fatalf("normalize not idempotent for %q:\nonce  %q\ntwice %q", src, a, b)
		}
		if a, b := tokenText(doc), tokenText(once); a != b {
			t.Fatalf("token text changed for %q:\nbefore %q\nafter  %q", src, a, b)
		}
		if len(once.(*syntax.Document).GetDiagnostics()) != len(doc.GetDiagnostics()) {
			t.Fatalf("diagnostics lost for %q", src)
		}
	}
}

func tokenText(e syntax.Element) string {
	var b strings.Builder
	for _, t := range syntax.Tokens(e) {
		b.WriteString(t.Text())
		b.WriteByte(' ')
	}
	return b.String()
}
