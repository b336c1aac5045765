package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fortio.org/safecast"
)

type (
	// FileID indexes a File inside its FileSet.
	FileID uint32
	// FileFlags records facts about the raw content.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk.
	FileVirtual FileFlags = 1 << iota
	FileHasBOM
	FileHasCRLF
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// File is one loaded document. Content is stored exactly as read; a BOM or
// CRLF line breaks are only noted in Flags.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags

	// lineStarts[i] is the offset of the first byte of line i+1.
	lineStarts []uint32
}

// LineCol is a 1-based line and byte column.
type LineCol struct {
	Line uint32
	Col  uint32
}

func (f *File) size() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("%s: file too large: %w", f.Path, err))
	}
	return n
}

func (f *File) indexLines() {
	f.lineStarts = append(f.lineStarts[:0], 0)
	for off := 0; ; {
		i := bytes.IndexByte(f.Content[off:], '\n')
		if i < 0 {
			return
		}
		off += i + 1
		start, err := safecast.Conv[uint32](off)
		if err != nil {
			return
		}
		f.lineStarts = append(f.lineStarts, start)
	}
}

// LineCount is the number of lines; a trailing line break opens an empty
// last line.
func (f *File) LineCount() int { return len(f.lineStarts) }

// Position converts a byte offset into a line and column.
func (f *File) Position(off uint32) LineCol {
	i, exact := slices.BinarySearch(f.lineStarts, off)
	if !exact {
		i--
	}
	if i < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	line, err := safecast.Conv[uint32](i + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: line, Col: off - f.lineStarts[i] + 1}
}

// LineRange returns the offset where line starts and the offset where the
// following line starts (or the end of the content).
func (f *File) LineRange(line uint32) (start, next uint32, ok bool) {
	if line == 0 || int(line) > len(f.lineStarts) {
		return 0, 0, false
	}
	start = f.lineStarts[line-1]
	next = f.size()
	if int(line) < len(f.lineStarts) {
		next = f.lineStarts[line]
	}
	return start, next, true
}

// GetLine returns the text of a 1-based line without its line break, or ""
// when there is no such line.
func (f *File) GetLine(line uint32) string {
	start, next, ok := f.LineRange(line)
	if !ok {
		return ""
	}
	text := string(f.Content[start:next])
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}

// FormatPath renders Path for display. Modes: "absolute", "relative" (to
// baseDir, or the working directory), "basename" and "auto", which shortens
// long absolute paths to their base name.
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		return absSlash(f.Path)
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		return relativeTo(f.Path, baseDir)
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		if filepath.IsAbs(f.Path) && len(f.Path) >= 40 {
			return filepath.Base(f.Path)
		}
	}
	return f.Path
}

func absSlash(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(abs)
}

// relativeTo falls back to the absolute path for files outside base.
func relativeTo(p, base string) string {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return p
	}
	abs := absSlash(p)
	rel, err := filepath.Rel(absBase, filepath.FromSlash(abs))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return abs
	}
	return filepath.ToSlash(rel)
}
