// Package cli implements the salonsite command-line interface.
//
// The commands run the site server and give operators offline access to
// the layout registry: listing and inspecting profiles, exporting static
// pages, checking registry consistency, drawing the profile diagram and
// picking a profile interactively. The CLI is built with cobra and logs
// through charmbracelet/log.
//
// # Commands
//
//   - serve: run the HTTP server
//   - profiles: list profiles or print one configuration
//   - render: export static HTML pages
//   - validate: check registry totality and resolver consistency
//   - diagram: draw the profile -> variant diagram
//   - pick: choose the CLI's profile interactively
//   - cache: manage the page cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels in the command context, and observability hooks are bridged to
// it so resolver fallbacks and preference changes show up in the log.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/petspa/salonsite/pkg/buildinfo"
	"github.com/petspa/salonsite/pkg/cache"
	"github.com/petspa/salonsite/pkg/storage"
)

// appName is the application name used for directories and display.
const appName = "salonsite"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Salonsite serves the PetSPA2 grooming salon website",
		Long:         `Salonsite renders the PetSPA2 grooming salon website in one of fourteen layout profiles and three colour palettes, remembering each visitor's choice.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			installHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.profilesCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/salonsite/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/salonsite/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// pageCacheDir is where the CLI and a file-backed server keep rendered pages.
func pageCacheDir() (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pages"), nil
}

// openPreferences opens the CLI's own preference store, shared by pick and
// render.
func openPreferences() (*storage.File, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return storage.NewFile(filepath.Join(dir, "preferences"))
}

// newPageCache returns the CLI's file cache, or a null cache when disabled
// or when no cache directory is available.
func newPageCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := pageCacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return cache.Instrument(fc)
}
