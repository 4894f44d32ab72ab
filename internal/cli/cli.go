// Package cli implements the mayanum command-line interface.
//
// This package provides commands for converting numbers and dates into Mayan
// numerals, exporting them as SVG, PNG, PDF or JSON, browsing them in an
// interactive terminal UI, and serving them over HTTP. The CLI is built using
// cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - convert: Decompose a number and print its digits and glyphs
//   - date: Decompose a DD-MM-YYYY date into day, month and year numerals
//   - render: Export a numeral to svg, png, pdf or json files
//   - layout: Print the computed glyph layout as JSON
//   - presets: List export sizes for a numeral
//   - tui: Live converter in the terminal
//   - serve: HTTP API
//   - cache, config: Manage the artifact cache and the config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// registers observability hooks that trace every pipeline stage. Loggers are
// passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mayanum/internal/config"
	"github.com/matzehuels/mayanum/pkg/cache"
	"github.com/matzehuels/mayanum/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag; empty means the XDG default.
	configPath string
	// fileCfg is loaded before any subcommand runs.
	fileCfg config.FileConfig
	verbose bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	fc, err := openFileCache()
	if err != nil {
		return nil, err
	}
	return fc, nil
}

func openFileCache() (*cache.FileCache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/mayanum/).
func cacheDir() (string, error) {
	return config.DefaultCacheDir(), nil
}

// configFile returns the config path in effect.
func (c *CLI) configFile() string {
	if c.configPath != "" {
		return c.configPath
	}
	return config.DefaultConfigPath()
}
