// Package cli implements the supertile command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/supertile/internal/config"
	"github.com/matzehuels/supertile/pkg/buildinfo"
	"github.com/matzehuels/supertile/pkg/cache"
	"github.com/matzehuels/supertile/pkg/catalog"
	"github.com/matzehuels/supertile/pkg/pipeline"
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
	Config *config.Config

	// catalogPath is set by the persistent --catalog flag.
	catalogPath string
}

// New creates a new CLI instance with a default logger. A nil cfg uses the
// built-in defaults.
func New(w io.Writer, level log.Level, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg, _ = config.LoadFrom(map[string]string{})
	}
	return &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "supertile",
		Short: "Supertile lays out hexagonal logic supertiles",
		Long: `Supertile computes the wiring of a hexagonal supertile: a core gate in the
middle and six ring slots around it. Given the core kind and the sides where
signals enter and leave, it orients the core, routes every signal around the
ring and names the wire tile each slot needs.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "catalog file merged over the built-in kinds (env SUPERTILE_CATALOG)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.kindsCommand())
	root.AddCommand(c.explainCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Factories
// =============================================================================

// loadCatalog reads the built-in catalog merged with the user catalog from
// --catalog, SUPERTILE_CATALOG or the config directory.
func (c *CLI) loadCatalog() (*catalog.Catalog, error) {
	path := c.catalogPath
	if path == "" {
		path = c.Config.CatalogPath()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		c.Logger.Debug("loaded catalog", "path", path, "kinds", cat.Len())
	}
	return cat, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, *catalog.Catalog, error) {
	cat, err := c.loadCatalog()
	if err != nil {
		return nil, nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "build:"+buildinfo.Version+":")
	return pipeline.NewRunner(cat, c.newCache(noCache), keyer, c.Logger), cat, nil
}

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache || c.Config.NoCache {
		return cache.NewNullCache()
	}
	dir, err := c.Config.UserCacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}
