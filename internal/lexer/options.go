package lexer

import (
	"uvss/internal/diag"
	"uvss/internal/source"
)

type Options struct {
	// Reporter receives lexical anomalies; may be nil.
	// Anomalies are reported once, when the owning token is consumed.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.NewError(code, sp, msg))
	}
}
