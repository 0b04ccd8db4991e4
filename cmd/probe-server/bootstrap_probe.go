package main

import (
	config "github.com/NordCoder/healthcheck-mcp/internal/config/probe-server"
	apiprobe "github.com/NordCoder/healthcheck-mcp/internal/services/api-probe"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func initProbe(cfg *config.Config, logger *zap.Logger) *apiprobe.Handler {
	client := apiprobe.NewHTTPClient(cfg.Probe)
	return apiprobe.NewHandler(
		logger.With(zap.String("component", "api-probe")),
		apiprobe.HTTPPing{Client: client},
		apiprobe.NewClock(),
		cfg.Probe.Timeout,
	)
}
