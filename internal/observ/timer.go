// Package observ measures how long the phases of a file pipeline take.
package observ

import (
	"time"
)

// Timer records named phases in the order they were opened. A nil *Timer
// is valid and records nothing, so callers can time unconditionally.
type Timer struct {
	now    func() time.Time
	phases []phase
}

type phase struct {
	name  string
	note  string
	start time.Time
	dur   time.Duration
}

func NewTimer() *Timer { return &Timer{now: time.Now} }

// Begin opens a phase and returns the func that closes it. Closing twice
// keeps the first duration.
func (t *Timer) Begin(name string) (end func(note string)) {
	if t == nil {
		return func(string) {}
	}
	idx := len(t.phases)
	t.phases = append(t.phases, phase{name: name, start: t.now(), dur: -1})
	return func(note string) {
		p := &t.phases[idx]
		if p.dur >= 0 {
			return
		}
		p.dur = t.now().Sub(p.start)
		p.note = note
	}
}

// PhaseReport is one phase as written to JSON and to the timing note.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report snapshots the closed phases. It returns nil for a nil Timer.
// Phases that were never closed are reported with zero duration.
func (t *Timer) Report() *Report {
	if t == nil {
		return nil
	}
	r := &Report{Phases: make([]PhaseReport, 0, len(t.phases))}
	var total time.Duration
	for _, p := range t.phases {
		d := max(p.dur, 0)
		total += d
		r.Phases = append(r.Phases, PhaseReport{Name: p.name, DurationMS: millis(d), Note: p.note})
	}
	r.TotalMS = millis(total)
	return r
}

func millis(d time.Duration) float64 { return d.Seconds() * 1e3 }
