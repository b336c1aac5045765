package main

import (
	"fmt"
	"io"

	"uvss/internal/diag"
	"uvss/internal/observ"
)

type fileTiming struct {
	path   string
	report *observ.Report
}

func printTimings(out io.Writer, path string, report *observ.Report) {
	if out == nil || report == nil {
		return
	}
	_, printErr := fmt.Fprintf(out, "%s: %.2f ms\n", path, report.TotalMS)
	if printErr != nil {
		panic(printErr)
	}
	for _, p := range report.Phases {
		line := fmt.Sprintf("  %-14s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			line += "  " + p.Note
		}
		_, printErr = fmt.Fprintln(out, line)
		if printErr != nil {
			panic(printErr)
		}
	}
}

// dropTimingDiagnostics removes the machine-readable timing entries that
// text output replaces with printTimings.
func dropTimingDiagnostics(bag *diag.Bag) {
	bag.Filter(func(d diag.Diagnostic) bool {
		return d.Code != diag.ObsTimings
	})
}
