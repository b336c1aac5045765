package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"uvss/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatGoldenDiagnostics renders one "severity CODE path:line:col message"
// line per diagnostic, sorted, with no trailing newline. Paths are relative
// to the file set base so the output is stable across machines.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return formatDiagnostics(diags, fs, includeNotes)
}

// FormatShortDiagnostics is the golden layout without notes.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	return formatDiagnostics(diags, fs, false)
}

func formatDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendDiagnostic(rendered, &diags[i], fs, includeNotes)
	}
	slices.SortStableFunc(rendered, func(x, y goldenDiagnostic) int {
		return cmp.Or(
			strings.Compare(x.Path, y.Path),
			cmp.Compare(x.Line, y.Line),
			cmp.Compare(x.Column, y.Column),
			strings.Compare(x.Severity, y.Severity),
			strings.Compare(x.Code, y.Code),
			strings.Compare(x.Message, y.Message),
		)
	})

	lines := make([]string, len(rendered))
	for i, d := range rendered {
		lines[i] = fmt.Sprintf("%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
	}
	return strings.Join(lines, "\n")
}

func appendDiagnostic(out []goldenDiagnostic, d *Diagnostic, fs *source.FileSet, includeNotes bool) []goldenDiagnostic {
	add := func(label string, span source.Span, msg string) {
		path, pos, ok := resolveStart(fs, span)
		if !ok {
			return
		}
		out = append(out, goldenDiagnostic{
			Severity: label,
			Code:     d.Code.ID(),
			Path:     path,
			Line:     pos.Line,
			Column:   pos.Col,
			Message:  strings.Join(strings.Fields(msg), " "),
		})
	}

	add(d.Severity.Label(), d.Primary, d.Message)
	if includeNotes {
		for _, note := range d.Notes {
			add("note", note.Span, note.Msg)
		}
	}
	return out
}

// resolveStart returns the base-relative slash path and start position of
// span; ok is false for spans outside fs.
func resolveStart(fs *source.FileSet, span source.Span) (path string, pos source.LineCol, ok bool) {
	if int(span.File) >= fs.Len() {
		return "", source.LineCol{}, false
	}
	file := fs.Get(span.File)
	if int(span.Start) > len(file.Content) {
		return "", source.LineCol{}, false
	}
	pos, _ = fs.Resolve(span)
	path = filepath.ToSlash(file.FormatPath("relative", fs.BaseDir()))
	return strings.TrimPrefix(path, "./"), pos, true
}
