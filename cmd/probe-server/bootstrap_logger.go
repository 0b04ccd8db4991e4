package main

import (
	config "github.com/NordCoder/healthcheck-mcp/internal/config/probe-server"
	"github.com/NordCoder/healthcheck-mcp/internal/obs"
	"go.uber.org/zap"
)

func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return obs.NewLogger(cfg.Log.AsLoggerConfig(cfg.App))
}
