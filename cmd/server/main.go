package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/brasilutil/infohub-server/internal/app"
	"github.com/brasilutil/infohub-server/internal/config"
	"github.com/brasilutil/infohub-server/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "infohub-server",
		Short:         "Aggregation gateway for Brazilian public data APIs with a room chat relay",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")

	return cmd
}

func run(configPath string) error {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	bootLog := log.New("info")
	cfg, resolvedPath, err := config.Load(bootLog, configPath)
	if err != nil {
		bootLog.Error().Err(err).Msg("load config")
		return err
	}

	logger := log.New(cfg.LogLevel)
	logger.Info().Str("config", resolvedPath).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, logger)

	logger.Info().Str("addr", cfg.Addr).Msg("starting infohub server")
	if err := application.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
