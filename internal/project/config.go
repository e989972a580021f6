package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"zinc/internal/diag"
)

// ManifestName is the configuration file looked up from the working directory upwards.
const ManifestName = "zinc.toml"

// Config is the decoded zinc.toml. Zero sections keep their defaults.
type Config struct {
	Format FormatConfig `toml:"format"`
	Driver DriverConfig `toml:"driver"`
	Cache  CacheConfig  `toml:"cache"`
	Lexer  LexerConfig  `toml:"lexer"`

	// Path is the manifest the values came from; empty for defaults.
	Path string `toml:"-"`
}

type FormatConfig struct {
	Minify   bool `toml:"minify"`
	Prettify bool `toml:"prettify"`
	Indent   int  `toml:"indent"`
}

type DriverConfig struct {
	// Jobs ограничивает число файлов в работе; 0: GOMAXPROCS.
	Jobs           int `toml:"jobs"`
	MaxDiagnostics int `toml:"max_diagnostics"`
}

type CacheConfig struct {
	Enabled bool `toml:"enabled"`
	// Dir пустой: $XDG_CACHE_HOME/zinc (os.UserCacheDir).
	Dir string `toml:"dir"`
}

type LexerConfig struct {
	KeepComments bool `toml:"keep_comments"`
}

// Default returns the configuration used when no zinc.toml is found.
func Default() Config {
	return Config{
		Format: FormatConfig{Indent: 2},
		Driver: DriverConfig{MaxDiagnostics: 100},
		Cache:  CacheConfig{Enabled: true},
		Lexer:  LexerConfig{KeepComments: true},
	}
}

var (
	// ErrBadManifest wraps TOML syntax errors and unknown keys.
	ErrBadManifest = errors.New("malformed zinc.toml")
	// ErrInvalidOption wraps values that decode but make no sense.
	ErrInvalidOption = errors.New("invalid configuration value")
)

// Error names the file and, when known, the key at fault.
type Error struct {
	Path string
	Key  string
	Msg  string
	Err  error // ErrBadManifest or ErrInvalidOption
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Key, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Code maps the error onto a diagnostic code.
func (e *Error) Code() diag.Code {
	if errors.Is(e.Err, ErrInvalidOption) {
		return diag.ProjInvalidOption
	}
	return diag.ProjBadManifest
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		return Config{}, &Error{Path: path, Msg: err.Error(), Err: ErrBadManifest}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return Config{}, &Error{Path: path, Key: keys[0], Msg: "unknown key", Err: ErrBadManifest}
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	path := c.Path
	if path == "" {
		path = ManifestName
	}
	bad := func(key, msg string) error {
		return &Error{Path: path, Key: key, Msg: msg, Err: ErrInvalidOption}
	}
	switch {
	case c.Format.Indent < 1 || c.Format.Indent > 16:
		return bad("format.indent", fmt.Sprintf("must be within 1..16, got %d", c.Format.Indent))
	case c.Driver.Jobs < 0:
		return bad("driver.jobs", fmt.Sprintf("must not be negative, got %d", c.Driver.Jobs))
	case c.Driver.MaxDiagnostics < 0:
		return bad("driver.max_diagnostics", fmt.Sprintf("must not be negative, got %d", c.Driver.MaxDiagnostics))
	case c.Cache.Dir != "" && strings.ContainsRune(c.Cache.Dir, 0):
		return bad("cache.dir", "contains a NUL byte")
	}
	return nil
}

// Jobs returns the effective worker limit.
func (c Config) Jobs() int {
	if c.Driver.Jobs > 0 {
		return c.Driver.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// CacheDir resolves the cache directory. A relative cache.dir is taken
// relative to the manifest.
func (c Config) CacheDir() (string, error) {
	dir := c.Cache.Dir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("cache dir: %w", err)
		}
		return filepath.Join(base, "zinc"), nil
	}
	if !filepath.IsAbs(dir) && c.Path != "" {
		dir = filepath.Join(filepath.Dir(c.Path), dir)
	}
	return dir, nil
}

// Discover loads the nearest zinc.toml at or above startDir; without one it
// returns Default().
func Discover(startDir string) (Config, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// FindManifest walks up from startDir to the filesystem root.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
