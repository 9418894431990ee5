package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ideaplan/internal/server"
)

func (a *app) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and websocket stream",
		Long: `Serve the HTTP API:

  GET  /healthz
  GET  /api/renderers
  POST /api/analyze          {"idea": "..."}
  POST /api/plan             {"idea": "..."}
  POST /api/render/:renderer {"idea": "..."}
  GET  /ws                   send {"idea": "..."}, receive session snapshots`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv, err := server.New(a.orch,
				server.WithAllowedOrigins(a.cfg.Server.AllowedOrigins...),
				server.WithDelay(a.cfg.Analysis.Delay),
				server.WithTheme(a.cfg.Render.Theme, a.cfg.Render.Variant),
				server.WithLogger(log.New(a.errOut, "", log.LstdFlags)),
			)
			if err != nil {
				return err
			}
			a.printer.Info("Listening on %s", addr)
			return srv.Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
