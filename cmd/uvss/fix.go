package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"uvss/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <path> [path...]",
	Short: "Apply suggested fixes to style sheets",
	Long: `Insert the tokens the parser reported as missing.
By default only the first fix of each file is applied; --all applies every fix that does not overlap another.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every non-conflicting fix")
	fixCmd.Flags().Bool("dry-run", false, "print the fixed files instead of writing them")
}

func runFix(cmd *cobra.Command, args []string) error {
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	results, err := driver.FixPaths(cmd.Context(), args, driver.FixOptions{
		All:        all,
		DryRun:     dryRun,
		Extensions: s.extensions(),
	})
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	hasErrors := false
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(errOut, "fix: %s: %v\n", res.Path, res.Err)
			continue
		}
		if dryRun {
			for _, change := range res.Result.FileChanges {
				if _, err := out.Write(change.Content); err != nil {
					return err
				}
			}
			continue
		}
		if !s.quiet {
			reportFixes(out, res)
		}
	}
	if hasErrors {
		return errFailed
	}
	return nil
}

func reportFixes(out io.Writer, res driver.FixResult) {
	for _, applied := range res.Result.Applied {
		fmt.Fprintf(out, "%s: %s (%s)\n", res.Path, applied.Title, applied.Code.ID())
	}
	for _, skipped := range res.Result.Skipped {
		fmt.Fprintf(out, "%s: skipped %s: %s\n", res.Path, skipped.Title, skipped.Reason)
	}
}
