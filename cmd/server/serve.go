package main

import (
	"github.com/spf13/cobra"

	"legenda/internal/adapters/handlers"
	"legenda/internal/logging"
	"legenda/internal/server"
)

type serveOverrides struct {
	host string
	port int
}

func newServeCommand(ctx *commandContext) *cobra.Command {
	var overrides serveOverrides

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the caption download HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, ctx, overrides)
		},
	}

	cmd.Flags().StringVar(&overrides.host, "host", "", "Bind host (overrides config and HOST)")
	cmd.Flags().IntVarP(&overrides.port, "port", "p", 0, "Bind port (overrides config and PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, ctx *commandContext, overrides serveOverrides) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger()
	if err != nil {
		return err
	}

	serverCfg := cfg.Server
	if overrides.host != "" {
		serverCfg.Host = overrides.host
	}
	if overrides.port > 0 {
		serverCfg.Port = overrides.port
	}

	if ctx.configExists {
		logger.Info("configuration loaded", logging.String("path", ctx.configPath))
	}
	logger.Info("caption backend ready",
		logging.String("backend", cfg.Captions.Backend),
		logging.String("language", cfg.Captions.Language),
	)

	httpHandler := handlers.NewHTTPHandler(newSubtitleService(cfg, logger), logger)
	routes := httpHandler.Routes(handlers.RouteOptions{
		AllowedOrigins: serverCfg.AllowedOrigins,
		MaxBodyBytes:   serverCfg.MaxBodyBytes,
	})

	return server.New(serverCfg, routes, logger).Run(cmd.Context())
}
