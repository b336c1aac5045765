package syntax

import (
	"fmt"

	"fortio.org/safecast"

	"uvss/internal/diag"
	"uvss/internal/source"
)

// Diagnostic is a finding attached to an element. Offset is relative to
// the element's Position (its first byte after leading trivia).
type Diagnostic struct {
	Code     diag.Code
	Severity diag.Severity
	Message  string
	Offset   int
	Width    int
	// Insert, when set, is text whose insertion at the diagnostic start
	// repairs the problem; it resolves to a fix.
	Insert string
}

// Error builds an error diagnostic covering width bytes from the element start.
func Error(code diag.Code, width int, msg string) Diagnostic {
	return Diagnostic{Code: code, Severity: diag.SevError, Message: msg, Width: width}
}

// Warning builds a warning diagnostic covering width bytes from the element start.
func Warning(code diag.Code, width int, msg string) Diagnostic {
	return Diagnostic{Code: code, Severity: diag.SevWarning, Message: msg, Width: width}
}

// Attach adds diagnostics to e and returns it. It must be called before
// e is placed into a parent.
func Attach[E Element](e E, d ...Diagnostic) E {
	e.addDiagnostics(d)
	return e
}

// GetDiagnostics resolves every diagnostic in the subtree of e, including
// those on skipped tokens, to absolute spans in file. Order is document
// order, parents before children.
func GetDiagnostics(e Element, file source.FileID) []diag.Diagnostic {
	if e == nil {
		return nil
	}
	var out []diag.Diagnostic
	collectDiagnostics(e, FullPosition(e), file, &out)
	return out
}

func (n *nodeBase) GetDiagnostics() []diag.Diagnostic {
	return GetDiagnostics(n.self, fileOf(n.self))
}

func (t *Token) GetDiagnostics() []diag.Diagnostic {
	return GetDiagnostics(t, fileOf(t))
}

// Span is the absolute range of e without its outer trivia, in the file of
// the enclosing Document.
func Span(e Element) source.Span {
	start, err := safecast.Conv[uint32](Position(e))
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	width, err := safecast.Conv[uint32](Width(e))
	if err != nil {
		panic(fmt.Errorf("span width overflow: %w", err))
	}
	return source.Span{File: fileOf(e), Start: start, End: start + width}
}

func fileOf(e Element) source.FileID {
	if doc, ok := Root(e).(*Document); ok {
		return doc.file
	}
	return 0
}

func collectDiagnostics(e Element, fullPos int, file source.FileID, out *[]diag.Diagnostic) {
	if diags := e.Diagnostics(); len(diags) > 0 {
		pos := fullPos + triviaWidth(LeadingTrivia(e))
		for _, d := range diags {
			*out = append(*out, resolve(d, pos, file))
		}
	}

	if t, ok := e.(*Token); ok {
		collectSkipped(t.leading, fullPos, file, out)
		collectSkipped(t.trailing, fullPos+triviaWidth(t.leading)+len(t.text), file, out)
		return
	}

	for i := 0; i < e.SlotCount(); i++ {
		s := e.Slot(i)
		if s == nil {
			continue
		}
		collectDiagnostics(s, fullPos, file, out)
		fullPos += s.FullWidth()
	}
}

func collectSkipped(list []Trivia, pos int, file source.FileID, out *[]diag.Diagnostic) {
	for _, tr := range list {
		if len(tr.Tokens) > 0 {
			p := pos
			for _, t := range tr.Tokens {
				collectDiagnostics(t, p, file, out)
				p += t.FullWidth()
			}
		}
		pos += len(tr.Text)
	}
}

func resolve(d Diagnostic, pos int, file source.FileID) diag.Diagnostic {
	start, err := safecast.Conv[uint32](max(pos+d.Offset, 0))
	if err != nil {
		panic(fmt.Errorf("diagnostic offset overflow: %w", err))
	}
	width, err := safecast.Conv[uint32](max(d.Width, 0))
	if err != nil {
		panic(fmt.Errorf("diagnostic width overflow: %w", err))
	}
	out := diag.Diagnostic{
		Severity: d.Severity,
		Code:     d.Code,
		Message:  d.Message,
		Primary:  source.Span{File: file, Start: start, End: start + width},
	}
	if d.Insert != "" {
		at := source.Span{File: file, Start: start, End: start}
		out = out.WithFix(fmt.Sprintf("insert %q", d.Insert), diag.FixEdit{Span: at, NewText: d.Insert})
	}
	return out
}
