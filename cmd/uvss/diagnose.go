package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"uvss/internal/diag"
	"uvss/internal/diagfmt"
	"uvss/internal/driver"
	"uvss/internal/source"
	"uvss/internal/version"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.uvss|directory>",
	Short: "Diagnose style sheets",
	Long:  `Parse UVSS files and report lexical, syntax and culture diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory diagnostics (0=auto)")
	diagCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	diagCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes")
	diagCmd.Flags().Bool("suggest", false, "show fix suggestions")
	diagCmd.Flags().Bool("preview", false, "show fix previews (implies --suggest)")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths")
	diagCmd.Flags().Bool("disk-cache", false, "reuse diagnostics of unchanged files across runs")
	diagCmd.Flags().Bool("clear-cache", false, "drop the diagnostics cache before running")
	diagCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

type diagFlags struct {
	format    string
	withNotes bool
	suggest   bool
	preview   bool
	fullPath  bool
	ui        uiMode
}

func readDiagFlags(cmd *cobra.Command) (diagFlags, error) {
	var f diagFlags
	var err error
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.suggest, err = cmd.Flags().GetBool("suggest"); err != nil {
		return f, fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if f.preview, err = cmd.Flags().GetBool("preview"); err != nil {
		return f, fmt.Errorf("failed to get preview flag: %w", err)
	}
	if f.fullPath, err = cmd.Flags().GetBool("fullpath"); err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiValue); err != nil {
		return f, err
	}
	switch f.format {
	case "pretty", "short", "json", "sarif":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	return f, nil
}

// diagnoseOptions builds driver options from flags and the configuration.
func diagnoseOptions(cmd *cobra.Command, s *settings) (driver.DiagnoseOptions, error) {
	cfg := s.config.Diagnostics
	opts := driver.DiagnoseOptions{
		MaxDiagnostics: s.maxDiagnostics,
		EnableTimings:  s.timings,
		Jobs:           cfg.Jobs,
		Extensions:     s.extensions(),
	}
	var err error
	if opts.IgnoreWarnings, err = boolSetting(cmd, "no-warnings", cfg.IgnoreWarnings); err != nil {
		return opts, err
	}
	if opts.WarningsAsErrors, err = boolSetting(cmd, "warnings-as-errors", cfg.WarningsAsErrors); err != nil {
		return opts, err
	}
	if cmd.Flags().Changed("jobs") {
		if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	useCache, err := boolSetting(cmd, "disk-cache", cfg.DiskCache)
	if err != nil {
		return opts, err
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return opts, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if useCache || clearCache {
		cache, cacheErr := driver.OpenDiskCache("uvss")
		if cacheErr != nil {
			if !s.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache disabled: %v\n", cacheErr)
			}
			return opts, nil
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return opts, fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		if useCache {
			opts.Cache = cache
		}
	}
	return opts, nil
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	target := args[0]

	flags, err := readDiagFlags(cmd)
	if err != nil {
		return err
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := diagnoseOptions(cmd, s)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}

	var (
		fileSet *source.FileSet
		bag     *diag.Bag
		timings []fileTiming
	)
	if info.IsDir() {
		var results []driver.DiagnoseDirResult
		fileSet, results, err = diagnoseDir(cmd.Context(), target, opts, flags.ui, flags.format == "pretty" && !s.quiet)
		if err != nil {
			return fmt.Errorf("diagnosis failed: %w", err)
		}
		bag = driver.MergeBags(results)
		for _, r := range results {
			if r.DiagnoseResult != nil && r.Timing != nil {
				timings = append(timings, fileTiming{path: r.Path, report: r.Timing})
			}
		}
	} else {
		res, diagErr := driver.Diagnose(cmd.Context(), target, opts)
		if diagErr != nil {
			return fmt.Errorf("diagnosis failed: %w", diagErr)
		}
		fileSet, bag = res.FileSet, res.Bag
		if res.Timing != nil {
			timings = append(timings, fileTiming{path: res.File.Path, report: res.Timing})
		}
	}

	if err := renderDiagnostics(cmd, cmd.OutOrStdout(), bag, fileSet, flags, s); err != nil {
		return err
	}
	if flags.format == "pretty" || flags.format == "short" {
		for _, t := range timings {
			printTimings(cmd.ErrOrStderr(), t.path, t.report)
		}
	}

	if bag.HasErrors() {
		return errFailed
	}
	return nil
}

func diagnoseDir(ctx context.Context, dir string, opts driver.DiagnoseOptions, mode uiMode, interactive bool) (*source.FileSet, []driver.DiagnoseDirResult, error) {
	if !interactive || !shouldUseTUI(mode) {
		return driver.DiagnoseDir(ctx, dir, opts)
	}
	files, err := driver.ListSourceFiles(dir, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}
	return runDiagnoseDirWithUI(ctx, dir, files, opts)
}

func renderDiagnostics(cmd *cobra.Command, out io.Writer, bag *diag.Bag, fileSet *source.FileSet, flags diagFlags, s *settings) error {
	pathMode := diagfmt.PathModeAuto
	if flags.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	showFixes := flags.suggest || flags.preview

	switch flags.format {
	case "pretty":
		dropTimingDiagnostics(bag)
		if s.quiet && !bag.HasErrors() {
			return nil
		}
		color, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		diagfmt.Pretty(out, bag, fileSet, diagfmt.PrettyOpts{
			Color:       color,
			Context:     2,
			PathMode:    pathMode,
			ShowNotes:   flags.withNotes,
			ShowFixes:   showFixes,
			ShowPreview: flags.preview,
		})
	case "short":
		dropTimingDiagnostics(bag)
		text := diag.FormatShortDiagnostics(bag.Items(), fileSet)
		if text == "" {
			return nil
		}
		_, err := io.WriteString(out, text+"\n")
		return err
	case "json":
		return diagfmt.JSON(out, bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			Max:              s.maxDiagnostics,
			IncludeNotes:     flags.withNotes,
			IncludeFixes:     showFixes,
			IncludePreviews:  flags.preview,
		})
	case "sarif":
		return diagfmt.Sarif(out, bag, fileSet, diagfmt.SarifRunMeta{
			ToolName:       "uvss",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	}
	return nil
}
