package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zinc/internal/diagfmt"
	"zinc/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|directory> [path...]",
	Short: "Parse models or data files and print an item outline",
	Long: `Parse checks the syntax of MiniZinc models (.mzn) and data files (.dzn).
Directories are searched for both kinds; the first syntax error of each file is reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "text", "output format (text|json)")
	parseCmd.Flags().Bool("data", false, "parse every file with the data grammar")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	asData, err := cmd.Flags().GetBool("data")
	if err != nil {
		return fmt.Errorf("failed to get data flag: %w", err)
	}

	files, err := driver.CollectFiles(cmd.Context(), args)
	if err != nil {
		return err
	}
	opts, err := sess.driverOptions()
	if err != nil {
		return err
	}
	if asData {
		opts.Grammar = driver.KindData
	}

	fs, results, err := driver.ParsePaths(cmd.Context(), files, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := false
	for _, r := range results {
		if r.Err != nil {
			failed = true
			if format == "json" {
				err = diagfmt.JSON(os.Stdout, r.Bag, fs, diagfmt.JSONOpts{
					IncludePositions: true,
					IncludeNotes:     true,
					IncludeFixes:     true,
				})
			} else {
				sess.printDiagnostics(r.Bag, fs)
			}
		} else {
			err = printOutline(r, format)
		}
		if err != nil {
			return err
		}
	}
	if failed {
		return errReported
	}
	return nil
}

func printOutline(r driver.ParseResult, format string) error {
	switch {
	case r.Data != nil && format == "json":
		return diagfmt.FormatDataJSON(os.Stdout, r.Data, r.Path)
	case r.Data != nil:
		return diagfmt.FormatDataPretty(os.Stdout, r.Data, r.Path)
	case format == "json":
		return diagfmt.FormatASTJSON(os.Stdout, r.Model, r.Path)
	default:
		return diagfmt.FormatASTPretty(os.Stdout, r.Model, r.Path)
	}
}
