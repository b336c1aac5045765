package driver

import (
	"context"
	"fmt"

	"uvss/internal/diag"
	"uvss/internal/parser"
	"uvss/internal/source"
	"uvss/internal/syntax"
)

type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Document *syntax.Document
	Bag      *diag.Bag
}

// Parse loads path and builds its syntax tree. Diagnostics beyond
// maxDiagnostics are dropped; a non-positive limit keeps them all.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	res := &ParseResult{FileSet: source.NewFileSet()}
	id, err := res.FileSet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	res.File = res.FileSet.Get(id)
	parsed, err := parser.ParseFile(ctx, res.File, parser.Options{MaxDiagnostics: maxDiagnostics})
	if err != nil {
		return nil, err
	}
	res.Document, res.Bag = parsed.Document, parsed.Bag
	return res, nil
}
