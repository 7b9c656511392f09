// Package cli implements the chartscript command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartscript/pkg/buildinfo"
	"github.com/matzehuels/chartscript/pkg/cache"
	chartio "github.com/matzehuels/chartscript/pkg/io"
	"github.com/matzehuels/chartscript/pkg/pipeline"
	"github.com/matzehuels/chartscript/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "chartscript"

	// Environment variables consulted when the matching flag is unset.
	envRedisURL = "CHARTSCRIPT_REDIS_URL"
	envMongoURI = "CHARTSCRIPT_MONGO_URI"
	envStoreDir = "CHARTSCRIPT_STORE_DIR"

	// mongoDatabase is the database charts are kept in.
	mongoDatabase = appName
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Output streams. Replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Backend selection, bound to persistent flags.
	storeDir string
	mongoURI string
	redisURL string
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
		Use:   appName,
		Short: "Chartscript turns chart definitions into jqPlot scripts",
		Long: `Chartscript builds jqPlot chart options from TOML or JSON chart definitions
and writes the client-side script that draws them, along with the plugin
scripts the chart needs, a standalone preview page and a plugin dependency graph.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.storeDir, "store", "", "chart store directory (env "+envStoreDir+")")
	pf.StringVar(&c.mongoURI, "mongo", "", "MongoDB URI for the chart store (env "+envMongoURI+")")
	pf.StringVar(&c.redisURL, "redis", "", "Redis URL for the script cache (env "+envRedisURL+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.pluginsCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.dateformatCommand())
	root.AddCommand(c.chartsCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Keys are scoped to the
// build so a new release never reads scripts an older one cached.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.CacheScope())
	return pipeline.NewRunner(ch, keyer, c.Logger), nil
}

// newCache picks Redis when a URL is configured and the file cache
// otherwise.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := flagOrEnv(c.redisURL, envRedisURL); url != "" {
		c.Logger.Debug("using redis cache")
		return cache.NewRedisCache(ctx, url, appName+":")
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Store Factory
// =============================================================================

// openStore opens MongoDB when a URI is configured and the directory
// store otherwise.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	if uri := flagOrEnv(c.mongoURI, envMongoURI); uri != "" {
		c.Logger.Debug("using mongo store", "database", mongoDatabase)
		return store.NewMongoStore(ctx, uri, mongoDatabase)
	}
	dir := flagOrEnv(c.storeDir, envStoreDir)
	if dir == "" {
		var err error
		if dir, err = dataDir(); err != nil {
			return nil, err
		}
	}
	return store.NewDirStore(dir, chartio.FormatTOML)
}

func flagOrEnv(flag, env string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(env)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/chartscript/).
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

// dataDir returns the default chart store (~/.local/share/chartscript/charts).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "charts"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "charts"), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatJS}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
