package driver

import (
	"context"
	"fmt"

	"uvss/internal/diag"
	"uvss/internal/observ"
	"uvss/internal/parser"
	"uvss/internal/project"
	"uvss/internal/source"
	"uvss/internal/syntax"
)

// DiagnoseOptions controls Diagnose and DiagnoseDir.
type DiagnoseOptions struct {
	MaxDiagnostics   int
	IgnoreWarnings   bool
	WarningsAsErrors bool
	EnableTimings    bool
	// Jobs bounds DiagnoseDir parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Extensions selects the files DiagnoseDir visits.
	Extensions []string
	// Cache, when set, skips parsing files whose diagnostics are cached.
	Cache *DiskCache
	// OnFile is called after each file of DiagnoseDir completes. It may be
	// called from several goroutines at once.
	OnFile func(path string, bag *diag.Bag)
}

type DiagnoseResult struct {
	FileSet *source.FileSet
	File    *source.File
	// Document is nil when the diagnostics came from the disk cache.
	Document *syntax.Document
	Bag      *diag.Bag
	Cached   bool
	Timing   *observ.Report
}

// Diagnose loads a single file and collects its diagnostics.
func Diagnose(ctx context.Context, path string, opts DiagnoseOptions) (*DiagnoseResult, error) {
	timer := newTimer(opts.EnableTimings)

	endLoad := timer.Begin("load_file")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	endLoad("")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	res, err := diagnoseFile(ctx, file, opts, timer)
	if err != nil {
		return nil, err
	}
	res.FileSet = fs
	return res, nil
}

// diagnoseFile runs the pipeline on an already loaded file.
func diagnoseFile(ctx context.Context, file *source.File, opts DiagnoseOptions, timer *observ.Timer) (*DiagnoseResult, error) {
	res := &DiagnoseResult{File: file}

	key := cacheKey(file, opts.MaxDiagnostics)
	if opts.Cache != nil {
		endLookup := timer.Begin("cache_lookup")
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		endLookup(fmt.Sprintf("hit=%v", hit))
		if err == nil && hit && payload.ContentHash == project.Digest(file.Hash) {
			res.Bag = payloadToBag(file, &payload, opts.MaxDiagnostics)
			res.Cached = true
		}
	}

	if !res.Cached {
		endParse := timer.Begin("parse")
		parsed, err := parser.ParseFile(ctx, file, parser.Options{MaxDiagnostics: opts.MaxDiagnostics})
		if err != nil {
			endParse("cancelled")
			return nil, err
		}
		endParse(fmt.Sprintf("items=%d diags=%d", parsed.Document.Content().Len(), parsed.Bag.Len()))
		res.Document = parsed.Document
		res.Bag = parsed.Bag

		if opts.Cache != nil {
			endStore := timer.Begin("cache_store")
			err := opts.Cache.Put(key, bagToPayload(file, res.Bag))
			note := ""
			if err != nil {
				note = err.Error()
			}
			endStore(note)
		}
	}

	applySeverityOptions(res.Bag, opts)

	if report := timer.Report(); report != nil {
		res.Timing = report
		appendTimingDiagnostic(res.Bag, file.ID, timingPayload{
			Kind:    "file",
			Path:    file.Path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}
	return res, nil
}

func applySeverityOptions(bag *diag.Bag, opts DiagnoseOptions) {
	if opts.IgnoreWarnings {
		bag.Filter(func(d diag.Diagnostic) bool {
			return d.Severity >= diag.SevError
		})
	}
	if opts.WarningsAsErrors {
		bag.Transform(func(d diag.Diagnostic) diag.Diagnostic {
			if d.Severity == diag.SevWarning {
				d.Severity = diag.SevError
			}
			return d
		})
		bag.Sort()
	}
}
