package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"uvss/internal/version"
)

// resetFlags restores every flag to its default; cobra keeps flag state
// between Execute calls on the same command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--color", "off"}, args...))
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

// emptyConfig keeps the tests independent of any uvss.toml above the
// working directory.
func emptyConfig(t *testing.T) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "uvss.toml", "")
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json", "--hash")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload struct {
		Tool      string `json:"tool"`
		Version   string `json:"version"`
		GitCommit string `json:"git_commit"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if payload.Tool != "uvss" || payload.Version != version.Version || payload.GitCommit == "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestParseSourceRoundTrip(t *testing.T) {
	src := "$culture \"en-US\"\r\n/* c */ #a > Button.c { x: 1 ; }\r\n"
	path := writeFile(t, t.TempDir(), "a.uvss", src)
	out, _, err := execute(t, "--config", emptyConfig(t), "parse", "--format", "source", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out != src {
		t.Fatalf("round trip mismatch: %q", out)
	}
}

func TestDiagShortReportsErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.uvss", "#a { color red; }")
	out, _, err := execute(t, "--config", emptyConfig(t), "diag", "--format", "short", path)
	if !errors.Is(err, errFailed) {
		t.Fatalf("expected errFailed, got %v", err)
	}
	if !strings.HasPrefix(out, "error SYN2002 ") || !strings.Contains(out, "a.uvss:1:") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDiagCleanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.uvss", "#a { b: c; }")
	writeFile(t, dir, "b.uvss", "#b { c: d; }")
	out, _, err := execute(t, "--config", emptyConfig(t), "diag", "--ui", "off", dir)
	if err != nil {
		t.Fatalf("diag: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestFmtCheck(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.uvss", "#a{b:c;}")
	out, _, err := execute(t, "--config", emptyConfig(t), "fmt", "--check", path)
	if err == nil || !strings.Contains(err.Error(), "formatting changes required") {
		t.Fatalf("expected check failure, got %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Fatalf("expected the file to be listed, got %q", out)
	}
}

func TestFmtStdoutUsesConfig(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "uvss.toml", "[format]\nindent = \"2\"\nnewline = \"lf\"\n")
	path := writeFile(t, dir, "a.uvss", "#a{b:c;}")
	out, _, err := execute(t, "--config", config, "fmt", "--stdout", path)
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if out != "#a {\n  b: c;\n}\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConfigRequires(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "uvss.toml", "[tool]\nrequires = \">= 99.0.0\"\n")
	path := writeFile(t, dir, "a.uvss", "#a { b: c; }")
	_, _, err := execute(t, "--config", config, "diag", path)
	if err == nil || !strings.Contains(err.Error(), "does not satisfy") {
		t.Fatalf("expected a version constraint error, got %v", err)
	}
}

func TestFixDryRun(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.uvss", "#a { b: c }")
	out, _, err := execute(t, "--config", emptyConfig(t), "fix", "--dry-run", path)
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if !strings.Contains(out, ";") || strings.Count(out, "#a") != 1 {
		t.Fatalf("unexpected output %q", out)
	}
	if data, _ := os.ReadFile(path); string(data) != "#a { b: c }" {
		t.Fatalf("dry run must not write files, got %q", data)
	}
}
