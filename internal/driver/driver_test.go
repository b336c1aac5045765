package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"uvss/internal/diag"
	"uvss/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func codes(bag *diag.Bag) []diag.Code {
	out := make([]diag.Code, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.uvss", "#a { b: \"c }")
	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	last := res.Tokens[len(res.Tokens)-1]
	if last.Kind != token.EOF {
		t.Fatalf("expected EOF last, got %v", last.Kind)
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected one unterminated string diagnostic, got %v", codes(res.Bag))
	}
}

func TestParse(t *testing.T) {
	src := "#a {\r\n\tb: c;\r\n}\r\n"
	path := writeFile(t, t.TempDir(), "a.uvss", src)
	res, err := Parse(context.Background(), path, 10)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := res.Document.ToFullString(); got != src {
		t.Fatalf("round trip mismatch: %q", got)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", codes(res.Bag))
	}
}

func TestDiagnoseOptions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.uvss", "$culture \"not a culture tag\"\n#a { b c; }\n")

	tests := []struct {
		name string
		opts DiagnoseOptions
		want []diag.Severity
	}{
		{
			name: "default",
			opts: DiagnoseOptions{MaxDiagnostics: 10},
			want: []diag.Severity{diag.SevWarning, diag.SevError},
		},
		{
			name: "ignore warnings",
			opts: DiagnoseOptions{MaxDiagnostics: 10, IgnoreWarnings: true},
			want: []diag.Severity{diag.SevError},
		},
		{
			name: "warnings as errors",
			opts: DiagnoseOptions{MaxDiagnostics: 10, WarningsAsErrors: true},
			want: []diag.Severity{diag.SevError, diag.SevError},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Diagnose(context.Background(), path, tt.opts)
			if err != nil {
				t.Fatalf("Diagnose error: %v", err)
			}
			var got []diag.Severity
			for _, d := range res.Bag.Items() {
				got = append(got, d.Severity)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v (%v)", tt.want, got, codes(res.Bag))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("diagnostic %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestDiagnoseTimings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.uvss", "#a {}")
	res, err := Diagnose(context.Background(), path, DiagnoseOptions{MaxDiagnostics: 10, EnableTimings: true})
	if err != nil {
		t.Fatalf("Diagnose error: %v", err)
	}
	if res.Timing == nil || len(res.Timing.Phases) == 0 {
		t.Fatalf("expected timing report")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.ObsTimings || len(items[0].Notes) != 1 {
		t.Fatalf("expected a single timings diagnostic with payload, got %+v", items)
	}
	if !strings.Contains(items[0].Notes[0].Msg, `"kind":"file"`) {
		t.Errorf("unexpected payload: %s", items[0].Notes[0].Msg)
	}
}

func TestDiagnoseMissingFile(t *testing.T) {
	_, err := Diagnose(context.Background(), filepath.Join(t.TempDir(), "nope.uvss"), DiagnoseOptions{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestDiagnoseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.uvss", "#b { x }")
	writeFile(t, dir, "a.uvss", "#a {}")
	writeFile(t, dir, "nested/c.uvss", "#c { d: e; }")
	writeFile(t, dir, "ignored.txt", "&&&")

	var mu sync.Mutex
	var visited []string
	opts := DiagnoseOptions{
		MaxDiagnostics: 10,
		Jobs:           2,
		OnFile: func(path string, _ *diag.Bag) {
			mu.Lock()
			defer mu.Unlock()
			visited = append(visited, path)
		},
	}
	fs, results, err := DiagnoseDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("DiagnoseDir error: %v", err)
	}
	if len(results) != 3 || len(visited) != 3 {
		t.Fatalf("expected 3 files, got %d results and %d callbacks", len(results), len(visited))
	}
	wantOrder := []string{"a.uvss", "b.uvss", filepath.Join("nested", "c.uvss")}
	for i, r := range results {
		if !strings.HasSuffix(r.Path, wantOrder[i]) {
			t.Errorf("result %d: expected %s, got %s", i, wantOrder[i], r.Path)
		}
		if r.FileSet != fs {
			t.Errorf("result %d does not share the FileSet", i)
		}
	}
	if results[0].Bag.Len() != 0 || results[1].Bag.Len() == 0 || results[2].Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v / %v / %v", codes(results[0].Bag), codes(results[1].Bag), codes(results[2].Bag))
	}

	merged := MergeBags(results)
	if merged.Len() != results[1].Bag.Len() {
		t.Errorf("merged bag has %d items, want %d", merged.Len(), results[1].Bag.Len())
	}
}

func TestDiagnoseDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.uvss", "#a {}")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := DiagnoseDir(ctx, dir, DiagnoseOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
