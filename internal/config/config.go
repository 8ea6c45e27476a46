// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// mutated by the flags registered with [BindFlags], and then passed (by
// pointer) to the packages that need it.
type Config struct {
	// Paths.
	ResultsDir  string // Default: <executable>/../../public/results. Set by positional arg or --results-dir.
	MappingFile string // Optional YAML file overlaying the built-in lookup tables.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. ResultsDir is
// left empty and filled in by [Config.ResolveResultsDir].
func DefaultConfig() Config {
	return Config{
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
		CheckOnly: false,
	}
}

// DefaultResultsDir returns the conventional results directory for a binary
// located at executable: two levels up, then public/results. A binary at
// <repo>/bin/rename-results therefore operates on <repo>/public/results.
func DefaultResultsDir(executable string) string {
	root := filepath.Dir(filepath.Dir(executable))
	return filepath.Join(root, "public", "results")
}

// ResolveResultsDir fills ResultsDir from the running executable's location
// when no directory was given on the command line.
func (c *Config) ResolveResultsDir() error {
	if c.ResultsDir != "" {
		c.ResultsDir = NormalizeDirArg(c.ResultsDir)
		return nil
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	c.ResultsDir = DefaultResultsDir(exe)
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the color mode and requires a results directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if c.ResultsDir == "" {
		return errors.New("results directory is not set")
	}
	return nil
}
