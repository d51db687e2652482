package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sasusim/remuneration-simulator/internal/logging"
	"github.com/sasusim/remuneration-simulator/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var origins []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := server.NewRouter(server.RouterConfig{
				Env:            a.settings.Env,
				Version:        version,
				AllowedOrigins: origins,
				LogOutput:      cmd.ErrOrStderr(),
				LogLevel:       logging.SlogLevel(a.settings.LogLevel),
			}, server.NewHandler(a.engine(nil)))

			a.logger.Infof("listening on %s", a.settings.HTTPAddr)
			if err := server.ListenAndServe(ctx, a.settings.HTTPAddr, router); err != nil {
				return err
			}
			a.logger.Infof("server stopped")
			return nil
		},
	}
	cmd.Flags().String("http-addr", ":8080", "listen address (SASUSIM_HTTP_ADDR)")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "allowed CORS origins")
	return cmd
}

