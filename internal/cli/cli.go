// Package cli implements the forcegraph command-line interface.
//
// This package provides commands for running the force-directed layout
// headlessly, querying shortest paths, serving the simulation over HTTP,
// and exploring a graph interactively in the terminal. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - run: Settle a layout headlessly and optionally export it
//   - path: Find the shortest path between two nodes
//   - serve: Host the simulation behind a JSON HTTP API
//   - view: Explore a graph interactively in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/forcegraph/pkg/buildinfo"
	"github.com/matzehuels/forcegraph/pkg/cache"
	"github.com/matzehuels/forcegraph/pkg/graphio"
	"github.com/matzehuels/forcegraph/pkg/sim"
	"github.com/matzehuels/forcegraph/pkg/topo"
)

// appName is the application name used for directories and display.
const appName = "forcegraph"

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

	configPath string
}

// New creates a new CLI instance with a default logger.
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
		Short:        "Forcegraph lays out node-link diagrams with force-directed physics",
		Long:         `Forcegraph is a force-directed layout engine for node-link diagrams. It settles graphs with spring and repulsion physics, answers shortest-path queries, and hosts interactive sessions over HTTP or in the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/forcegraph/config.toml)")

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Simulation Factory
// =============================================================================

// newSim builds a simulation from the config file and an optional graph path.
// An empty path loads the built-in demo graph.
func (c *CLI) newSim(graphPath string) (*sim.Sim, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	g, err := loadGraph(graphPath)
	if err != nil {
		return nil, err
	}

	return sim.New(sim.Options{
		Graph:       g,
		Physics:     cfg.physicsConfig(),
		Interaction: cfg.interactionConfig(),
		Logger:      c.Logger,
	})
}

func (c *CLI) loadConfig() (*Config, error) {
	if c.configPath != "" {
		return LoadConfig(c.configPath)
	}
	path, err := defaultConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

func loadGraph(path string) (*topo.Graph, error) {
	if path == "" {
		return demoGraph()
	}
	return graphio.ImportJSON(path)
}

// =============================================================================
// Paths
// =============================================================================

// defaultConfigPath returns the config file location using the XDG standard
// (~/.config/forcegraph/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// newCache builds the layout cache, falling back to a no-op cache when the
// cache directory is unavailable.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/forcegraph/).
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
