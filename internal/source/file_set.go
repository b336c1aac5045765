package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every loaded version of every file. Adding a path twice
// keeps both versions; lookups by path see the newest.
type FileSet struct {
	files  []File
	latest map[string]FileID
	base   string
}

func NewFileSet() *FileSet { return NewFileSetWithBase("") }

// NewFileSetWithBase renders relative paths against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{latest: make(map[string]FileID), base: baseDir}
}

func (fs *FileSet) SetBaseDir(dir string) { fs.base = dir }

// BaseDir falls back to the working directory when no base was set.
func (fs *FileSet) BaseDir() string {
	if fs.base != "" {
		return fs.base
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func (fs *FileSet) Len() int { return len(fs.files) }

// Add registers content under path and returns the new version's ID.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	if bytes.HasPrefix(content, utf8BOM) {
		flags |= FileHasBOM
	}
	if bytes.Contains(content, []byte("\r\n")) {
		flags |= FileHasCRLF
	}
	path = filepath.ToSlash(filepath.Clean(path))
	f := File{
		ID:      FileID(n),
		Path:    path,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
	f.indexLines()
	fs.files = append(fs.files, f)
	fs.latest[path] = f.ID
	return f.ID
}

// AddVirtual adds in-memory content such as stdin or test input.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Load reads path from disk and adds it unchanged.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- reading user-named files is the point
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fs.Add(path, content, 0), nil
}

// Get panics on an ID that did not come from this set.
func (fs *FileSet) Get(id FileID) *File { return &fs.files[id] }

// GetLatest finds the newest version added under path.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fs.latest[filepath.ToSlash(filepath.Clean(path))]
	return id, ok
}

// Resolve maps both ends of span to line and column.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	return f.Position(span.Start), f.Position(span.End)
}
