package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/supertile/pkg/cache"
	"github.com/matzehuels/supertile/pkg/pipeline"
	"github.com/matzehuels/supertile/pkg/server"
)

// serveCacheEntries bounds the in-memory cache of a running server.
const serveCacheEntries = 1024

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts over HTTP",
		Long: `Serve layouts over HTTP.

Routes:
  GET /healthz
  GET /v1/kinds
  GET /v1/layout?kind=OR&in=05&out=3[&paths=1][&format=svg]
  GET /v1/table/{kind}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}

			var store cache.Cache = cache.NewMemoryCache(serveCacheEntries)
			if noCache || c.Config.NoCache {
				store = cache.NewNullCache()
			}
			runner := pipeline.NewRunner(cat, store, nil, c.Logger)
			defer runner.Close()

			srv := server.New(runner, cat, c.Logger, server.Options{
				Addr:              addr,
				ReadHeaderTimeout: c.Config.ReadTimeout,
			})
			printInfo("Listening on %s", StyleHighlight.Render(addr))
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.Addr, "listen address (env SUPERTILE_ADDR)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
