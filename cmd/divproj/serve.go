package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpgo/dividend-projector/internal/api"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := a.settings.API.Addr
			if v, _ := cmd.Flags().GetString("addr"); v != "" {
				addr = v
			}
			srv := api.NewServer(a.engine, api.Options{
				CORSOrigins: a.settings.API.CORSOrigins,
				CacheTTL:    a.settings.API.CacheDuration(),
				Logger:      a.logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from settings, :8080)")
	return cmd
}
