package ui

// Status is the state of one file in a diagnostics run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports progress for File. An event with an empty File updates
// the run header instead.
type Event struct {
	File     string
	Status   Status
	Errors   int
	Warnings int
	// Note replaces the header label for run-level events.
	Note string
}
