package driver

import (
	"context"
	"os"
	"testing"
)

func TestFixPaths(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.uvss", "#a { b c; d: e }")
	clean := writeFile(t, dir, "clean.uvss", "#a { b: c; }")

	results, err := FixPaths(context.Background(), []string{dir}, FixOptions{All: true, DryRun: true})
	if err != nil {
		t.Fatalf("FixPaths: %v", err)
	}
	if len(results) != 2 || results[0].Path != broken || results[1].Path != clean {
		t.Fatalf("unexpected results %+v", results)
	}
	if results[0].Err != nil || len(results[0].Result.Applied) != 2 {
		t.Fatalf("expected two fixes for %s, got %+v", broken, results[0])
	}
	if results[1].Err != nil || len(results[1].Result.Applied) != 0 {
		t.Fatalf("expected no fixes for %s, got %+v", clean, results[1])
	}
	if data, _ := os.ReadFile(broken); string(data) != "#a { b c; d: e }" {
		t.Fatalf("dry run must not write files")
	}

	results, err = FixPaths(context.Background(), []string{broken}, FixOptions{})
	if err != nil {
		t.Fatalf("FixPaths: %v", err)
	}
	if len(results[0].Result.Applied) != 1 {
		t.Fatalf("expected a single fix without All, got %+v", results[0].Result.Applied)
	}
	res, err := Diagnose(context.Background(), broken, DiagnoseOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("expected one remaining diagnostic, got %v", codes(res.Bag))
	}
}
