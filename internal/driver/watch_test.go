package driver

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"

	"uvss/internal/diag"
	"uvss/internal/source"
)

func TestRelevantEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		exts []string
		want bool
	}{
		{"write style sheet", fsnotify.Event{Name: "a.uvss", Op: fsnotify.Write}, nil, true},
		{"remove style sheet", fsnotify.Event{Name: "a.uvss", Op: fsnotify.Remove}, nil, true},
		{"chmod only", fsnotify.Event{Name: "a.uvss", Op: fsnotify.Chmod}, nil, false},
		{"other extension", fsnotify.Event{Name: "a.txt", Op: fsnotify.Write}, nil, false},
		{"configured extension", fsnotify.Event{Name: "a.style", Op: fsnotify.Create}, []string{".style"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevantEvent(tt.ev, tt.exts); got != tt.want {
				t.Fatalf("relevantEvent(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

type watchRun struct {
	paths []string
	codes [][]diag.Code
}

func TestWatchRerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.uvss", "#a { b: c; }")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan watchRun, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, WatchOptions{
			Diagnose: DiagnoseOptions{MaxDiagnostics: 10},
			Debounce: 20 * time.Millisecond,
		}, func(_ *source.FileSet, results []DiagnoseDirResult) {
			var run watchRun
			for _, r := range results {
				run.paths = append(run.paths, filepath.Base(r.Path))
				run.codes = append(run.codes, codes(r.Bag))
			}
			runs <- run
		})
	}()

	wait := func() watchRun {
		t.Helper()
		select {
		case run := <-runs:
			return run
		case err := <-done:
			t.Fatalf("Watch returned early: %v", err)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a diagnostics run")
		}
		return watchRun{}
	}

	first := wait()
	want := watchRun{paths: []string{"a.uvss"}, codes: [][]diag.Code{{}}}
	if diff := cmp.Diff(want, first, cmp.AllowUnexported(watchRun{})); diff != "" {
		t.Fatalf("initial run mismatch (-want +got):\n%s", diff)
	}

	writeFile(t, dir, filepath.Base(path), "#a { b c; }")
	second := wait()
	want = watchRun{paths: []string{"a.uvss"}, codes: [][]diag.Code{{diag.SynMissingToken}}}
	if diff := cmp.Diff(want, second, cmp.AllowUnexported(watchRun{})); diff != "" {
		t.Fatalf("run after change mismatch (-want +got):\n%s", diff)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
