package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zinc/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <path> [path...]",
	Short: "Apply suggested fixes for syntax errors",
	Long: `Fix parses each file, applies the fix suggested for its syntax error (such as a
missing ';') and parses again until the file is clean or nothing more can be fixed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "print the fixed text instead of rewriting files")
	fixCmd.Flags().Int("max-rounds", driver.DefaultFixRounds, "max fix rounds per file")
}

func runFix(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	maxRounds, err := cmd.Flags().GetInt("max-rounds")
	if err != nil {
		return err
	}
	files, err := driver.CollectFiles(cmd.Context(), args)
	if err != nil {
		return err
	}
	base, err := sess.driverOptions()
	if err != nil {
		return err
	}

	results, err := driver.FixPaths(cmd.Context(), files, driver.FixOptions{
		Options:   base,
		DryRun:    dryRun,
		MaxRounds: maxRounds,
	})
	if err != nil {
		return err
	}

	failed := false
	for _, r := range results {
		for _, a := range r.Applied {
			if !sess.quiet {
				fmt.Fprintf(os.Stderr, "%s: %s (%s)\n", r.Path, a.Title, a.Code.ID())
			}
		}
		if dryRun && r.Changed {
			if _, err := os.Stdout.Write(r.Fixed); err != nil {
				return err
			}
		}
		if r.Err != nil {
			failed = true
			if r.Bag.HasErrors() {
				sess.printDiagnostics(r.Bag, r.FileSet)
			} else {
				fmt.Fprintf(os.Stderr, "fix: %v\n", r.Err)
			}
		}
	}
	if failed {
		return errReported
	}
	return nil
}
