package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[diagnostics]\nmax = 50\nwarnings-as-errors = true\n\n[format]\nextensions = [\".uvss\", \".style\"]\nindent = \"2\"\nnewline = \"lf\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest: ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
	cfg := m.Config
	if cfg.Diagnostics.Max != 50 || !cfg.Diagnostics.WarningsAsErrors {
		t.Errorf("unexpected diagnostics config: %+v", cfg.Diagnostics)
	}
	if len(cfg.Format.Extensions) != 2 {
		t.Errorf("unexpected extensions: %v", cfg.Format.Extensions)
	}
	if indent, _ := cfg.Format.IndentString(); indent != "  " {
		t.Errorf("indent = %q", indent)
	}
	if nl, _ := cfg.Format.NewlineString(); nl != "\n" {
		t.Errorf("newline = %q", nl)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	_, ok, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Skip("found a uvss.toml above the temp directory")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[diagnostics\n", "failed to parse TOML"},
		{"unknown key", "[diagnostics]\nmaxx = 1\n", "unknown keys: diagnostics.maxx"},
		{"negative max", "[diagnostics]\nmax = -1\n", "must not be negative"},
		{"extension", "[format]\nextensions = [\"uvss\"]\n", "must start with a dot"},
		{"indent", "[format]\nindent = \"wide\"\n", "[format].indent"},
		{"newline", "[format]\nnewline = \"cr\"\n", "[format].newline"},
		{"constraint", "[tool]\nrequires = \"not a range\"\n", "[tool].requires"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCheckRequires(t *testing.T) {
	tests := []struct {
		requires string
		version  string
		ok       bool
	}{
		{"", "0.1.0", true},
		{">= 0.1.0", "0.1.0", true},
		{">= 0.2.0", "0.1.0", false},
		{"~0.1", "0.1.7", true},
		{"^1.0.0", "0.9.0", false},
	}
	for _, tt := range tests {
		cfg := Config{Tool: ToolConfig{Requires: tt.requires}}
		err := cfg.CheckRequires(tt.version)
		if (err == nil) != tt.ok {
			t.Errorf("CheckRequires(%q, %q) = %v, want ok=%v", tt.requires, tt.version, err, tt.ok)
		}
	}
}

func TestCombine(t *testing.T) {
	var a, b Digest
	a[0], b[0] = 1, 2
	if Combine(a, b) == Combine(b, a) {
		t.Errorf("Combine must be order-sensitive")
	}
	if Combine(a) == a {
		t.Errorf("Combine must hash its input")
	}
}
