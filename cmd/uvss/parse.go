package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"uvss/internal/diagfmt"
	"uvss/internal/driver"
	"uvss/internal/syntax"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.uvss>",
	Short: "Parse a style sheet and print its syntax tree",
	Long: `Parse a UVSS file into its full-fidelity syntax tree.
The source format reprints the tree, which reproduces the input byte for byte.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json|source)")
	parseCmd.Flags().Bool("trivia", false, "show trivia in tree output")
	parseCmd.Flags().Bool("positions", false, "show line:col ranges instead of offsets")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	showTrivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}
	showPositions, err := cmd.Flags().GetBool("positions")
	if err != nil {
		return fmt.Errorf("failed to get positions flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(cmd.Context(), filePath, s.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "tree":
		err = diagfmt.FormatTreePretty(out, result.Document, result.FileSet, diagfmt.TreeOpts{
			ShowTrivia:    showTrivia,
			ShowPositions: showPositions,
		})
	case "json":
		err = diagfmt.FormatTreeJSON(out, result.Document)
	case "source":
		_, err = io.WriteString(out, syntax.ToFullString(result.Document))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if result.Bag.Len() > 0 && !s.quiet {
		color, colorErr := useColor(cmd, os.Stderr)
		if colorErr != nil {
			return colorErr
		}
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: color, Context: 1})
	}
	if result.Bag.HasErrors() {
		return errFailed
	}
	return nil
}
