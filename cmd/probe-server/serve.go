package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NordCoder/healthcheck-mcp/internal/obs"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the check_api_status tool over MCP streamable HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	rootCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting probe-server", zap.String("env", cfg.App.Env), zap.String("ver", cfg.App.Version))

	otelShutdown, err := initOTel(rootCtx, cfg)
	if err != nil {
		logger.Error("otel init", zap.Error(err))
		return err
	}
	defer func() { _ = otelShutdown(context.Background()) }()

	httpSrv := buildHTTPServer(cfg, logger, initProbe(cfg, logger))
	ms := obs.BootstrapMetricsServer(cfg.Server.MetricsAddr, nil, logger)

	g, gctx := errgroup.WithContext(rootCtx)
	g.Go(func() error {
		logger.Info("http listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal", zap.Error(context.Cause(gctx)))

		shCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer cancel()
		_ = ms.Shutdown(shCtx)
		return httpSrv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http serve", zap.Error(err))
		return err
	}
	logger.Info("bye")
	return nil
}
