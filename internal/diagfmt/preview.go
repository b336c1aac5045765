package diagfmt

import (
	"errors"
	"fmt"
	"strings"

	"uvss/internal/diag"
	"uvss/internal/source"
)

type fixEditPreview struct {
	before []string
	after  []string
}

var errPreviewRange = errors.New("edit outside its preview block")

// buildFixEditPreview returns the whole lines touched by edit, before and
// after it is applied.
func buildFixEditPreview(fs *source.FileSet, edit diag.FixEdit) (fixEditPreview, error) {
	if fs == nil || int(edit.Span.File) >= fs.Len() {
		return fixEditPreview{}, fmt.Errorf("preview: unknown file %d", edit.Span.File)
	}
	file := fs.Get(edit.Span.File)
	first, last := fs.Resolve(edit.Span)
	start, end := lineBlock(file, first.Line, max(first.Line, last.Line))
	if edit.Span.Start < start || edit.Span.End < edit.Span.Start || edit.Span.End > end {
		return fixEditPreview{}, errPreviewRange
	}

	block := string(file.Content[start:end])
	cut, rest := edit.Span.Start-start, edit.Span.End-start
	patched := block[:cut] + edit.NewText + block[rest:]
	return fixEditPreview{before: previewLines(block), after: previewLines(patched)}, nil
}

func previewLines(text string) []string {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// lineBlock spans from the start of line first to the start of the line
// after last.
func lineBlock(f *source.File, first, last uint32) (start, end uint32) {
	start, _, ok := f.LineRange(first)
	if !ok {
		return 0, 0
	}
	end = start
	if _, next, ok := f.LineRange(last); ok {
		end = max(next, start)
	}
	return start, end
}
