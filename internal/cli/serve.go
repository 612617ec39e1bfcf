package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwalk/remote"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve step sequences over HTTP",
		Long: `Start the HTTP server remote clients (--remote) compute Dijkstra runs on.
Prometheus metrics are exposed on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if addr == "" {
				addr = cfg.Server.Addr
			}

			gin.SetMode(gin.ReleaseMode)
			srv := remote.NewServer(
				remote.WithLogger(loggerFromContext(ctx)),
				remote.WithRateLimit(cfg.Server.RateLimit, cfg.Server.Burst),
				remote.WithMaxVertices(cfg.Server.MaxVertices),
				remote.WithMaxEdges(cfg.Server.MaxEdges),
				remote.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
			)
			return srv.Serve(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8420\")")

	return cmd
}
