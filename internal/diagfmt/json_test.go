package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"uvss/internal/diag"
)

func TestJSONBasic(t *testing.T) {
	bag, fs := missingColonBag(t)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
		IncludeFixes:     true,
		IncludePreviews:  true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", output.Count)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SYN2002" {
		t.Errorf("unexpected severity/code: %s %s", d.Severity, d.Code)
	}
	if d.Location.File != "test.uvss" {
		t.Errorf("expected basename path, got %q", d.Location.File)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 7 {
		t.Errorf("expected 2:7, got %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("expected one fix with one edit, got %+v", d.Fixes)
	}
	edit := d.Fixes[0].Edits[0]
	if edit.NewText != ":" {
		t.Errorf("expected ':' insertion, got %q", edit.NewText)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != "\tcolor: red;" {
		t.Errorf("unexpected preview: %q", edit.AfterLines)
	}
}

func TestJSONMaxAndPositions(t *testing.T) {
	bag, fs := missingColonBag(t)
	bag.Add(diag.New(diag.SevWarning, diag.SynUnknownDirective, bag.Items()[0].Primary, "unknown directive"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1, PathMode: PathModeBasename})
	if out.Count != 1 {
		t.Fatalf("expected Max to cap output at 1, got %d", out.Count)
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Errorf("positions must be omitted unless requested")
	}
	if out.Diagnostics[0].Fixes != nil {
		t.Errorf("fixes must be omitted unless requested")
	}
}

func TestSarif(t *testing.T) {
	bag, fs := missingColonBag(t)

	var buf bytes.Buffer
	meta := SarifRunMeta{ToolName: "uvss", ToolVersion: "0.1.0", InvocationArgs: []string{"diag", "test.uvss"}}
	if err := Sarif(&buf, bag, fs, meta); err != nil {
		t.Fatalf("Sarif() error: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid SARIF output: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("unexpected SARIF envelope: %+v", log)
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "uvss" || len(run.Tool.Driver.Rules) != 1 {
		t.Errorf("unexpected driver: %+v", run.Tool.Driver)
	}
	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run.Results))
	}
	res := run.Results[0]
	if res.RuleID != "SYN2002" || res.Level != "error" {
		t.Errorf("unexpected result: %+v", res)
	}
	region := res.Locations[0].Physical.Region
	if region.StartLine != 2 || region.StartColumn != 7 || region.ByteOffset != 11 {
		t.Errorf("unexpected region: %+v", region)
	}
	if run.Invocations[0].ExecutionSuccessful {
		t.Errorf("a run with errors must not report success")
	}
}
