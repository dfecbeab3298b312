// Package config holds runtime configuration: defaults, validation, and
// path-argument normalization. Flag binding lives in the command entrypoint.
package config

import (
	"errors"
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

// Config holds all runtime settings for one invocation. It is populated by
// [DefaultConfig] and then mutated by flag binding before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Paths (positional args).
	Paths []string

	// Behavior flags.
	NoOp      bool // Report intended renames without touching the filesystem.
	Overwrite bool // Allow renaming onto an existing entry.
	Recursive bool // Descend into directory arguments.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// NormalizePathArg strips trailing path separators so "dir/" and "dir"
// expand to identical candidates. A bare root (or drive root like "C:\")
// is returned unchanged so we don't produce an empty string.
func NormalizePathArg(path string) string {
	sep := string(filepath.Separator)
	root := filepath.VolumeName(path) + sep
	for len(path) > len(root) && strings.HasSuffix(path, sep) {
		path = strings.TrimSuffix(path, sep)
	}
	return path
}

// Validate checks that enum fields hold valid values.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
}
