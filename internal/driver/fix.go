package driver

import (
	"context"
	"errors"

	"uvss/internal/fix"
	"uvss/internal/parser"
	"uvss/internal/source"
)

type FixOptions struct {
	// All applies every non-conflicting fix instead of only the first one
	// of each file.
	All        bool
	DryRun     bool
	Extensions []string
}

type FixResult struct {
	Path string
	// Result is nil when the file could not be read or parsed.
	Result *fix.ApplyResult
	Err    error
}

// FixPaths parses every style sheet under paths and applies the fixes
// attached to its diagnostics. A file without fixes yields an empty
// Result, not an error.
func FixPaths(ctx context.Context, paths []string, opts FixOptions) ([]FixResult, error) {
	files, err := collectSourceFiles(ctx, paths, opts.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("fix: no source files found")
	}

	mode := fix.ApplyModeOnce
	if opts.All {
		mode = fix.ApplyModeAll
	}

	results := make([]FixResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result := FixResult{Path: path}
		result.Result, result.Err = fixFile(ctx, path, fix.ApplyOptions{Mode: mode, DryRun: opts.DryRun})
		results = append(results, result)
	}
	return results, nil
}

func fixFile(ctx context.Context, path string, opts fix.ApplyOptions) (*fix.ApplyResult, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.ParseFile(ctx, fileSet.Get(id), parser.Options{})
	if err != nil {
		return nil, err
	}
	res, err := fix.Apply(fileSet, parsed.Bag.Items(), opts)
	if errors.Is(err, fix.ErrNoFixes) {
		return res, nil
	}
	return res, err
}
