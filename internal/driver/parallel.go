package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"uvss/internal/diag"
	"uvss/internal/source"
)

// DiagnoseDirResult is the outcome for one file of a directory run.
type DiagnoseDirResult struct {
	Path   string
	FileID source.FileID
	*DiagnoseResult
}

// DiagnoseDir diagnoses every style sheet under dir in parallel. Results
// are in path order and share one FileSet. Files that fail to load get an
// IOLoadFileError diagnostic instead of failing the whole run.
func DiagnoseDir(ctx context.Context, dir string, opts DiagnoseOptions) (*source.FileSet, []DiagnoseDirResult, error) {
	files, err := ListSourceFiles(dir, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading is sequential: FileSet is not safe for concurrent Add.
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			// an empty placeholder keeps the diagnostic span resolvable
			loadErrors[i] = err
			id = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]DiagnoseDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if loadErr, failed := loadErrors[i]; failed {
				bag := diag.NewBag(max(opts.MaxDiagnostics, 1))
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileIDs[i]}, "failed to load file: "+loadErr.Error()))
				results[i] = DiagnoseDirResult{Path: path, FileID: fileIDs[i], DiagnoseResult: &DiagnoseResult{FileSet: fileSet, File: fileSet.Get(fileIDs[i]), Bag: bag}}
			} else {
				res, err := diagnoseFile(gctx, fileSet.Get(fileIDs[i]), opts, newTimer(opts.EnableTimings))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				res.FileSet = fileSet
				results[i] = DiagnoseDirResult{Path: path, FileID: fileIDs[i], DiagnoseResult: res}
			}

			if opts.OnFile != nil {
				opts.OnFile(path, results[i].Bag)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags collects the diagnostics of all results into one sorted bag.
func MergeBags(results []DiagnoseDirResult) *diag.Bag {
	total := 0
	for _, r := range results {
		if r.DiagnoseResult != nil {
			total += r.Bag.Len()
		}
	}
	out := diag.NewBag(total)
	for _, r := range results {
		if r.DiagnoseResult != nil {
			out.Merge(r.Bag)
		}
	}
	out.Sort()
	return out
}
