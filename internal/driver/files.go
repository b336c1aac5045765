package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// DefaultExtensions select style sheets when no extensions are configured.
var DefaultExtensions = []string{".uvss"}

func hasExtension(path string, exts []string) bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return slices.Contains(exts, filepath.Ext(path))
}

// ListSourceFiles walks dir and returns its style sheets in lexical order.
// An empty exts means DefaultExtensions.
func ListSourceFiles(dir string, exts []string) ([]string, error) {
	var files []string
	walk := func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.Type().IsRegular() && hasExtension(path, exts):
			files = append(files, path)
		}
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// collectSourceFiles expands paths into a sorted, duplicate-free list.
// Directories are walked; files named explicitly are kept whatever their
// extension.
func collectSourceFiles(ctx context.Context, paths []string, exts []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := ListSourceFiles(p, exts)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
