package driver

import (
	"context"
	"errors"
	"os"
	"testing"

	"uvss/internal/format"
)

func TestFormatPaths(t *testing.T) {
	dir := t.TempDir()
	messy := writeFile(t, dir, "messy.uvss", "#a{b:c;}")
	clean := writeFile(t, dir, "clean.uvss", "#a {\r\n\tb: c;\r\n}\r\n")
	broken := writeFile(t, dir, "broken.uvss", "#a { b c }")

	check, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{Check: true})
	if err != nil {
		t.Fatalf("FormatPaths check: %v", err)
	}
	byPath := make(map[string]FormatResult)
	for _, r := range check {
		byPath[r.Path] = r
	}
	if !byPath[messy].Changed || byPath[clean].Changed {
		t.Fatalf("unexpected check results: %+v", check)
	}
	if !errors.Is(byPath[broken].Err, ErrParseErrors) {
		t.Fatalf("expected parse error for broken file, got %v", byPath[broken].Err)
	}
	if data, _ := os.ReadFile(messy); string(data) != "#a{b:c;}" {
		t.Fatalf("check mode must not write files")
	}

	stdout, err := FormatPaths(context.Background(), []string{messy}, FormatOptions{Stdout: true})
	if err != nil {
		t.Fatalf("FormatPaths stdout: %v", err)
	}
	if got := string(stdout[0].Formatted); got != "#a {\r\n\tb: c;\r\n}\r\n" {
		t.Fatalf("unexpected formatted text %q", got)
	}

	if _, err := FormatPaths(context.Background(), []string{messy}, FormatOptions{}); err != nil {
		t.Fatalf("FormatPaths write: %v", err)
	}
	if data, _ := os.ReadFile(messy); string(data) != "#a {\r\n\tb: c;\r\n}\r\n" {
		t.Fatalf("file not rewritten: %q", data)
	}
}

func TestFormatPathsOptions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.css", "#a{b:c;}")
	res, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Stdout:  true,
		Options: format.Options{Indent: "  ", Newline: "\n"},
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if got := string(res[0].Formatted); got != "#a {\n  b: c;\n}\n" {
		t.Fatalf("unexpected formatted text %q", got)
	}
}

func TestFormatPathsEmpty(t *testing.T) {
	if _, err := FormatPaths(context.Background(), []string{t.TempDir()}, FormatOptions{}); err == nil {
		t.Fatalf("expected an error for a directory without style sheets")
	}
}

func TestFormatPathsRewriteIsStable(t *testing.T) {
	src := "// header\n#a{b:c; // note\n}\n#c{} /* tail */"
	path := writeFile(t, t.TempDir(), "a.uvss", src)
	want, _ := format.FormatSource(src)

	if _, err := FormatPaths(context.Background(), []string{path}, FormatOptions{}); err != nil {
		t.Fatalf("FormatPaths write: %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != want {
		t.Fatalf("unexpected rewrite:\nwant %q\ngot  %q", want, data)
	}
	check, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Check: true})
	if err != nil {
		t.Fatalf("FormatPaths check: %v", err)
	}
	if check[0].Err != nil || check[0].Changed {
		t.Fatalf("formatted file reported as changed: %+v", check[0])
	}
}
