package diag

// Reporter receives diagnostics as a phase produces them.
type Reporter interface {
	Report(d Diagnostic)
}

// ReportFunc adapts a function to Reporter.
type ReportFunc func(Diagnostic)

func (f ReportFunc) Report(d Diagnostic) { f(d) }

// BagReporter stores diagnostics into Bag; diagnostics past the bag limit
// are dropped.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}
