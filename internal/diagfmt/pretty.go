package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"uvss/internal/diag"
	"uvss/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note, help, path, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		note:   mk(color.FgBlue, color.Bold),
		help:   mk(color.FgGreen, color.Bold),
		path:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics for humans. It walks bag.Items() in order
// (call bag.Sort() first). Each diagnostic is printed as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with the span underlined as ^~~~, then its
// notes and fixes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := formatPath(f.FormatPath, opts.PathMode, fs.BaseDir())

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", path, start.Line, start.Col),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.severity(d.Severity).Sprint(d.Code.ID()),
		d.Message)

	writeSnippet(w, f, start, end, int(opts.Context), int(opts.Width), pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
				formatPath(nf.FormatPath, opts.PathMode, fs.BaseDir()), ns.Line, ns.Col, n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.help.Sprint("fix:"), fix.Title)
			if !opts.ShowPreview {
				continue
			}
			for _, edit := range fix.Edits {
				preview, err := buildFixEditPreview(fs, edit)
				if err != nil {
					continue
				}
				for _, l := range preview.before {
					fmt.Fprintf(w, "    - %s\n", l)
				}
				for _, l := range preview.after {
					fmt.Fprintf(w, "    + %s\n", l)
				}
			}
		}
	}
}

// writeSnippet prints context lines around the primary line and the
// underline. Columns are display columns: tabs expand and wide runes
// count double.
func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, context, width int, pal palette) {
	first := max(int(start.Line)-context, 1)
	gutterWidth := len(fmt.Sprint(start.Line))
	for ln := first; ln <= int(start.Line); ln++ {
		lineNum, err := safecast.Conv[uint32](ln)
		if err != nil {
			panic(fmt.Errorf("line number overflow: %w", err))
		}
		text := expandTabs(f.GetLine(lineNum))
		if width > 0 {
			text = runewidth.Truncate(text, width, "…")
		}
		fmt.Fprintf(w, " %s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := f.GetLine(start.Line)
	from := displayWidth(prefix(line, int(start.Col)-1))
	to := from + 1
	if end.Line == start.Line && end.Col > start.Col {
		to = displayWidth(prefix(line, int(end.Col)-1))
	} else if end.Line > start.Line {
		to = max(displayWidth(expandTabs(line)), from+1)
	}
	if width > 0 && to > width {
		to = max(width, from+1)
	}
	underline := "^" + strings.Repeat("~", max(to-from-1, 0))
	fmt.Fprintf(w, " %s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", from), pal.caret.Sprint(underline))
}

func prefix(line string, n int) string {
	if n <= 0 {
		return ""
	}
	if n > len(line) {
		return line
	}
	return line[:n]
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

func displayWidth(s string) int {
	return runewidth.StringWidth(expandTabs(s))
}
