package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"uvss/internal/format"
	"uvss/internal/parser"
	"uvss/internal/source"
)

// ErrParseErrors marks files that are left alone because they do not
// parse cleanly.
var ErrParseErrors = errors.New("format: parse errors present")

type FormatOptions struct {
	// Check only reports whether files would change.
	Check bool
	// Stdout returns the formatted text instead of writing it.
	Stdout     bool
	Options    format.Options
	Extensions []string
	// Jobs bounds the number of files formatted at once; 0 means GOMAXPROCS.
	Jobs int
}

// FormatResult is the outcome for one file. Err is per file; FormatPaths
// only fails as a whole for bad arguments or cancellation.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats files and, recursively, directories. Results follow
// the order of the collected paths.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	files, err := collectSourceFiles(ctx, paths, opts.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func formatOne(ctx context.Context, path string, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}
	original, formatted, err := formatFile(ctx, path, opts.Options)
	if err != nil {
		res.Err = err
		return res
	}
	res.Changed = !bytes.Equal(original, formatted)
	switch {
	case opts.Stdout:
		res.Formatted = formatted
	case opts.Check || !res.Changed:
	default:
		res.Err = writeKeepingMode(path, formatted)
	}
	return res
}

// formatFile returns the file's bytes and their formatted form.
func formatFile(ctx context.Context, path string, opt format.Options) (original, formatted []byte, err error) {
	fset := source.NewFileSet()
	id, err := fset.Load(path)
	if err != nil {
		return nil, nil, err
	}
	file := fset.Get(id)
	parsed, err := parser.ParseFile(ctx, file, parser.Options{})
	if err != nil {
		return nil, nil, err
	}
	if parsed.Bag.HasErrors() {
		return nil, nil, fmt.Errorf("%s: %w", path, ErrParseErrors)
	}
	return file.Content, []byte(format.FormatDocument(parsed.Document, opt)), nil
}

func writeKeepingMode(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}
