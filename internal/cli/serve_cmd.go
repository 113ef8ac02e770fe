package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/peak/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				app.Config.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := api.NewRouter(app.Plans, app.Catalog, app.Config, app.Logger)
			srv := api.NewServer(app.Config.Addr, router, app.Config.ShutdownTimeout(), app.Logger)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (env: PEAK_ADDR)")

	return cmd
}
