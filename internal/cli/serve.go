package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/forcegraph/internal/server"
)

// serveCommand creates the serve command for the HTTP host.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [graph.json]",
		Short: "Host the simulation behind a JSON HTTP API",
		Long: `Host the simulation behind a JSON HTTP API.

The serve command loads a graph and ticks its physics continuously while
exposing state and interaction endpoints under /api. Prometheus metrics
are served on /metrics and a liveness probe on /healthz.

The server runs until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			s, err := c.newSim(path)
			if err != nil {
				return err
			}

			tick := msToDuration(cfg.Server.TickMS)
			srv := server.New(s, c.Logger, tick)
			c.Logger.Info("serving simulation",
				"nodes", s.Graph().NodeCount(),
				"edges", s.Graph().EdgeCount(),
				"tick", tick,
			)
			return srv.Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config, \":8080\")")

	return cmd
}
