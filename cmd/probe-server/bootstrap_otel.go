package main

import (
	"context"

	config "github.com/NordCoder/healthcheck-mcp/internal/config/probe-server"
	"github.com/NordCoder/healthcheck-mcp/internal/obs"
)

func initOTel(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	closer, err := obs.SetupOTel(ctx, cfg.OTEL.AsOTELConfig(cfg.App))
	if err != nil {
		return nil, err
	}
	return closer.Shutdown, nil
}
