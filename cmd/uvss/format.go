package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"uvss/internal/driver"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format style sheets",
	Long: `Normalize the whitespace of UVSS files: one declaration per line,
nesting indented one level per block. Comments are kept.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

var (
	errFmtFailed  = errors.New("fmt: failed to format some files")
	errFmtChanges = errors.New("fmt: formatting changes required")
)

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
}

type fmtFlags struct {
	check  bool
	stdout bool
	format string
}

func readFmtFlags(cmd *cobra.Command) (fmtFlags, error) {
	var f fmtFlags
	var err error
	if f.check, err = cmd.Flags().GetBool("check"); err != nil {
		return f, fmt.Errorf("failed to get check flag: %w", err)
	}
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.stdout, err = cmd.Flags().GetBool("stdout"); err != nil {
		return f, fmt.Errorf("failed to get stdout flag: %w", err)
	}
	switch {
	case f.format != "text" && f.format != "json":
		return f, fmt.Errorf("fmt: unsupported output format %q", f.format)
	case f.stdout && f.check:
		return f, errors.New("fmt: --stdout cannot be used with --check")
	case f.stdout && f.format != "text":
		return f, errors.New("fmt: --stdout is only supported with text output")
	}
	return f, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	flags, err := readFmtFlags(cmd)
	if err != nil {
		return err
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	layout, err := s.formatOptions()
	if err != nil {
		return err
	}

	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:      flags.check,
		Stdout:     flags.stdout,
		Options:    layout,
		Extensions: s.extensions(),
		Jobs:       s.config.Diagnostics.Jobs,
	})
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for _, res := range results {
		if res.Err != nil && flags.format == "text" {
			fmt.Fprintf(errOut, "fmt: %s: %v\n", res.Path, res.Err)
		}
	}
	switch {
	case flags.format == "json":
		err = renderFmtJSON(out, results, flags.check)
	case flags.stdout:
		renderFmtStdout(out, results)
	case !s.quiet:
		renderFmtText(out, results, flags.check)
	}
	if err != nil {
		return err
	}
	return fmtOutcome(results, flags.check)
}

// fmtOutcome turns per-file results into the command error: failures win
// over pending changes, which only count under --check.
func fmtOutcome(results []driver.FormatResult, check bool) error {
	changed := false
	for _, res := range results {
		if res.Err != nil {
			return errFmtFailed
		}
		changed = changed || res.Changed
	}
	if check && changed {
		return errFmtChanges
	}
	return nil
}

func renderFmtStdout(out io.Writer, results []driver.FormatResult) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if _, err := out.Write(res.Formatted); err != nil {
			panic(err)
		}
	}
}

// renderFmtText lists changed files: bare paths under --check, otherwise
// "reformatted <path>".
func renderFmtText(out io.Writer, results []driver.FormatResult, check bool) {
	verb := "reformatted "
	if check {
		verb = ""
	}
	for _, res := range results {
		if res.Err != nil || !res.Changed {
			continue
		}
		if _, err := fmt.Fprintf(out, "%s%s\n", verb, res.Path); err != nil {
			panic(err)
		}
	}
}

type fmtJSONResult struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
	Check   bool   `json:"check"`
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	payload := make([]fmtJSONResult, len(results))
	for i, res := range results {
		payload[i] = fmtJSONResult{Path: res.Path, Changed: res.Changed, Check: check}
		if res.Err != nil {
			payload[i].Error = res.Err.Error()
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
