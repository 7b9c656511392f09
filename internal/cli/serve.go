package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartscript/pkg/observability"
	"github.com/matzehuels/chartscript/pkg/server"
)

const defaultAddr = ":8080"

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		assetBase string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stored charts and ad-hoc renders over HTTP",
		Long: `Serve exposes the chart store and the render pipeline over HTTP.

  GET    /charts                 list stored charts
  PUT    /charts/{id}            store a definition
  GET    /charts/{id}/script.js  the chart's script
  GET    /charts/{id}/page       a standalone preview page
  GET    /charts/{id}/plugins    plugin scripts the chart needs
  GET    /charts/{id}/graph      plugin dependency graph (dot or svg)
  POST   /render                 render a posted definition
  GET    /stats                  request and cache counters`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			stats := observability.NewStats()
			installHooks(stats, c.Logger)
			defer observability.Reset()

			srv, err := server.New(server.Config{
				Store:     st,
				Runner:    runner,
				Logger:    c.Logger,
				Stats:     stats,
				AssetBase: assetBase,
			})
			if err != nil {
				return err
			}

			printSuccess("Listening on %s", addr)
			printNextStep("Try", "curl http://localhost"+addr+"/charts")
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&assetBase, "asset-base", "", "base URL preview pages load jqPlot from")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the script cache")

	return cmd
}

// installHooks counts requests, builds and cache traffic in stats. At debug
// level build and cache events are logged instead of counted.
func installHooks(stats *observability.Stats, logger *log.Logger) {
	observability.SetServerHooks(stats)
	if logger.GetLevel() <= log.DebugLevel {
		lh := observability.LogHooks{Logger: logger}
		observability.SetPipelineHooks(lh)
		observability.SetCacheHooks(lh)
		return
	}
	observability.SetPipelineHooks(stats)
	observability.SetCacheHooks(stats)
}
