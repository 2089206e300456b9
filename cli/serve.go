package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gobd/preprocess/api"
	"github.com/spf13/cobra"
)

const defaultAddr = ":8080"

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transforms as a JSON HTTP API",
		Long: `Serve exposes every transform as POST /{group}/{command}, the OpenAPI
document at /openapi.json, a Swagger UI at /swagger/ and Prometheus metrics
at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if v, ok := lookupEnv(cmd.Flags(), "addr", EnvAddr); ok {
				addr = v
			}
			srv, err := api.NewServer(a.log)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s (docs at /swagger/)\n", addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address ($"+EnvAddr+")")
	return cmd
}
