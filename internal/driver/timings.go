package driver

import (
	"cmp"
	"encoding/json"
	"fmt"

	"uvss/internal/diag"
	"uvss/internal/observ"
	"uvss/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// appendTimingDiagnostic records payload as an ObsTimings info diagnostic
// whose single note is the JSON payload. A full bag is grown by one so the
// timing entry is never lost.
func appendTimingDiagnostic(bag *diag.Bag, file source.FileID, payload timingPayload) {
	if bag == nil {
		return
	}
	payload.Kind = cmp.Or(payload.Kind, "pipeline")
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg += ": " + payload.Path
	}
	at := source.Span{File: file}
	entry := diag.New(diag.SevInfo, diag.ObsTimings, at, msg).WithNote(at, string(data))
	if !bag.Add(entry) {
		extra := diag.NewBag(1)
		extra.Add(entry)
		bag.Merge(extra)
	}
}

// newTimer returns nil when timings are off; a nil Timer records nothing.
func newTimer(enabled bool) *observ.Timer {
	if !enabled {
		return nil
	}
	return observ.NewTimer()
}
