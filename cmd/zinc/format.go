package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zinc/internal/driver"
	"zinc/internal/format"
	"zinc/internal/project"
	"zinc/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format models and data files",
	Long: `Fmt rewrites .mzn and .dzn files in canonical form. Every result is parsed
again and compared with the input before anything is written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "list files that are not formatted; write nothing")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("minify", false, "single-line output (overrides format.minify)")
	fmtCmd.Flags().Bool("prettify", false, "reorder items by kind (overrides format.prettify)")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0 = driver.jobs or GOMAXPROCS)")
	fmtCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
	fmtCmd.Flags().Bool("no-cache", false, "do not read or write the format cache")
	fmtCmd.Flags().Bool("clear-cache", false, "drop every cached result before formatting")
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return err
	}
	if err := applyFmtOverrides(cmd, &sess.cfg); err != nil {
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
	opts := driver.FormatOptions{
		Options: base,
		Check:   check,
		Stdout:  writeToStdout,
		Write: format.Options{
			Minify:   sess.cfg.Format.Minify,
			Prettify: sess.cfg.Format.Prettify,
			Indent:   sess.cfg.Format.Indent,
		},
	}
	if opts.Cache, err = prepareCache(sess.cfg, noCache, clearCache); err != nil {
		return err
	}

	var (
		fs      *source.FileSet
		results []driver.FormatResult
	)
	if useProgress(mode, fmtRun{stdout: writeToStdout, quiet: sess.quiet, files: len(files)}) {
		fs, results, err = runFormatWithUI(cmd.Context(), "zinc fmt", files, opts)
	} else {
		fs, results, err = driver.FormatPaths(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	renderFmtResults(fs, results, check, writeToStdout)

	sum := driver.Summarize(results)
	if !sess.quiet && !writeToStdout {
		fmt.Fprintf(os.Stderr, "%d file(s): %d %s, %d cached, %d failed\n",
			sum.Files, sum.Changed, changedVerb(check), sum.Cached, sum.Failed)
	}
	if sum.Failed > 0 || (check && sum.Changed > 0) {
		return errReported
	}
	return nil
}

// applyFmtOverrides folds explicitly set fmt flags into cfg.
func applyFmtOverrides(cmd *cobra.Command, cfg *project.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("minify") {
		if cfg.Format.Minify, err = flags.GetBool("minify"); err != nil {
			return err
		}
	}
	if flags.Changed("prettify") {
		if cfg.Format.Prettify, err = flags.GetBool("prettify"); err != nil {
			return err
		}
	}
	if flags.Changed("jobs") {
		if cfg.Driver.Jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

// prepareCache opens the configured cache, dropping every entry first when
// clear is set. A nil cache means fmt runs uncached.
func prepareCache(cfg project.Config, noCache, clear bool) (*driver.DiskCache, error) {
	if !cfg.Cache.Enabled || noCache {
		return nil, nil
	}
	cache := openCache(cfg)
	if clear && cache != nil {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("fmt: clear cache %s: %w", cache.Dir(), err)
		}
	}
	return cache, nil
}

// openCache returns nil when the cache cannot be used; fmt then works uncached.
func openCache(cfg project.Config) *driver.DiskCache {
	dir, err := cfg.CacheDir()
	if err == nil {
		var cache *driver.DiskCache
		if cache, err = driver.OpenDiskCache(dir); err == nil {
			return cache
		}
	}
	if !sess.quiet {
		fmt.Fprintf(os.Stderr, "fmt: cache disabled: %v\n", err)
	}
	return nil
}

func renderFmtResults(fs *source.FileSet, results []driver.FormatResult, check, writeToStdout bool) {
	for _, res := range results {
		sess.printDiagnostics(res.Bag, fs)
		if res.Err != nil {
			// ошибки разбора и ввода-вывода уже напечатаны как диагностика
			if !res.Bag.HasErrors() {
				fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			}
			continue
		}
		switch {
		case writeToStdout:
			if _, err := os.Stdout.Write(res.Formatted); err != nil && !errors.Is(err, os.ErrClosed) {
				fmt.Fprintf(os.Stderr, "fmt: %v\n", err)
			}
		case !res.Changed || sess.quiet:
		case check:
			fmt.Fprintln(os.Stdout, res.Path)
		default:
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func changedVerb(check bool) string {
	if check {
		return "need formatting"
	}
	return "reformatted"
}
