package main

import (
	"fmt"
	"os"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"zinc/internal/diag"
	"zinc/internal/diagfmt"
	"zinc/internal/driver"
	"zinc/internal/observ"
	"zinc/internal/prof"
	"zinc/internal/project"
	"zinc/internal/source"
)

// skipConfig marks commands that must work without a valid zinc.toml.
const skipConfig = "zinc/skip-config"

// session holds what every command derives from the global flags.
type session struct {
	cfg      project.Config
	color    bool
	quiet    bool
	short    bool
	timer    *observ.Timer
	progress *driver.Progress
	prof     *prof.Session
	cleanup  func(failed bool)
}

var sess session

func setupSession(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	sess.color, err = colorEnabled(colorFlag, os.Stderr)
	if err != nil {
		return err
	}
	if sess.quiet, err = flags.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	diagFormat, err := flags.GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch diagFormat {
	case "pretty":
	case "short":
		sess.short = true
	default:
		return fmt.Errorf("invalid --diag-format value %q (expected pretty|short)", diagFormat)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		sess.timer = observ.NewTimer()
	}

	sess.cfg = project.Default()
	if cmd.Annotations[skipConfig] == "" {
		if sess.cfg, err = loadConfig(cmd); err != nil {
			return err
		}
	}

	if sess.prof, err = startProfiling(cmd); err != nil {
		return err
	}
	sess.progress = driver.NewProgress()
	sess.cleanup, err = setupTracing(cmd, sess.progress.Snapshot)
	return err
}

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpuprofile"); err != nil {
		return nil, err
	}
	if cfg.Mem, err = flags.GetString("memprofile"); err != nil {
		return nil, err
	}
	if cfg.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return nil, err
	}
	if cfg == (prof.Config{}) {
		return nil, nil
	}
	return prof.Start(cfg)
}

func (s *session) close(err error) {
	if s.timer != nil {
		s.timer.Stop()
		fmt.Fprint(os.Stderr, s.timer.Summary())
	}
	if s.cleanup != nil {
		s.cleanup(err != nil)
	}
	if perr := s.prof.Stop(); perr != nil {
		fmt.Fprintf(os.Stderr, "zinc: %v\n", perr)
	}
}

// loadConfig reads --config or the nearest zinc.toml and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (project.Config, error) {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg project.Config
	if path != "" {
		cfg, err = project.Load(path)
	} else {
		var wd string
		if wd, err = os.Getwd(); err != nil {
			return project.Config{}, err
		}
		cfg, err = project.Discover(wd)
	}
	if err != nil {
		return project.Config{}, err
	}

	if flags.Changed("max-diagnostics") {
		if cfg.Driver.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return project.Config{}, err
		}
	}
	return cfg, cfg.Validate()
}

// driverOptions builds the options shared by parse and fmt.
func (s *session) driverOptions() (driver.Options, error) {
	jobs, err := safecast.Conv[uint](s.cfg.Jobs())
	if err != nil {
		return driver.Options{}, fmt.Errorf("jobs: %w", err)
	}
	return driver.Options{
		MaxDiagnostics: s.cfg.Driver.MaxDiagnostics,
		KeepComments:   s.cfg.Lexer.KeepComments,
		Jobs:           jobs,
		Timer:          s.timer,
		Progress:       s.progress,
	}, nil
}

func (s *session) printDiagnostics(bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	if s.short {
		fmt.Fprintln(os.Stderr, diag.FormatShort(bag.Items(), fs, true))
		return
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:       s.color,
		Context:     2,
		PathMode:    diagfmt.PathModeAuto,
		ShowNotes:   true,
		ShowFixes:   true,
		ShowPreview: true,
	})
}

func colorEnabled(flag string, f *os.File) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "", "auto":
		return isTerminal(f), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", flag)
	}
}
