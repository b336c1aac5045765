package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"uvss/internal/diagfmt"
	"uvss/internal/driver"
	"uvss/internal/source"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <directory>",
	Short: "Diagnose a directory again whenever a style sheet changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", 150*time.Millisecond, "wait this long after the last change before diagnosing")
	watchCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	watchCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("failed to get debounce flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cfg := s.config.Diagnostics
	opts := driver.DiagnoseOptions{
		MaxDiagnostics: s.maxDiagnostics,
		Jobs:           cfg.Jobs,
		Extensions:     s.extensions(),
	}
	if opts.IgnoreWarnings, err = boolSetting(cmd, "no-warnings", cfg.IgnoreWarnings); err != nil {
		return err
	}
	if opts.WarningsAsErrors, err = boolSetting(cmd, "warnings-as-errors", cfg.WarningsAsErrors); err != nil {
		return err
	}
	color, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	return driver.Watch(ctx, dir, driver.WatchOptions{Diagnose: opts, Debounce: debounce}, func(fileSet *source.FileSet, results []driver.DiagnoseDirResult) {
		bag := driver.MergeBags(results)
		if !s.quiet || bag.HasErrors() {
			diagfmt.Pretty(out, bag, fileSet, diagfmt.PrettyOpts{Color: color, Context: 2})
		}
		errors, warnings := 0, 0
		for _, r := range results {
			ev := fileEvent(r.Path, r.Bag)
			errors += ev.Errors
			warnings += ev.Warnings
		}
		fmt.Fprintf(out, "[%s] %d files, %d errors, %d warnings\n", time.Now().Format(time.TimeOnly), len(results), errors, warnings)
	})
}
