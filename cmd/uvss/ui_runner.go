package main

import (
	"context"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"uvss/internal/diag"
	"uvss/internal/driver"
	"uvss/internal/source"
	"uvss/internal/ui"
)

type diagnoseOutcome struct {
	fileSet *source.FileSet
	results []driver.DiagnoseDirResult
	err     error
}

// runDiagnoseDirWithUI runs DiagnoseDir while a progress view follows the
// files as they complete.
func runDiagnoseDirWithUI(ctx context.Context, dir string, files []string, opts driver.DiagnoseOptions) (*source.FileSet, []driver.DiagnoseDirResult, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan diagnoseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.OnFile = func(path string, bag *diag.Bag) {
			events <- fileEvent(path, bag)
			if opts.OnFile != nil {
				opts.OnFile(path, bag)
			}
		}
		events <- ui.Event{Note: dir}
		for _, f := range files {
			events <- ui.Event{File: f, Status: ui.StatusWorking}
		}
		fs, results, err := driver.DiagnoseDir(ctx, dir, optsCopy)
		outcomeCh <- diagnoseOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("diagnosing", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the view may quit early on ctrl+c; keep the producer from blocking
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}

func fileEvent(path string, bag *diag.Bag) ui.Event {
	ev := ui.Event{File: path, Status: ui.StatusDone}
	ev.Errors, ev.Warnings = bag.Counts()
	if slices.ContainsFunc(bag.Items(), func(d diag.Diagnostic) bool { return d.Code == diag.IOLoadFileError }) {
		ev.Status = ui.StatusError
	}
	return ev
}
