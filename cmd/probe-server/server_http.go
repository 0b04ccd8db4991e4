package main

import (
	"net/http"

	config "github.com/NordCoder/healthcheck-mcp/internal/config/probe-server"
	"github.com/NordCoder/healthcheck-mcp/internal/obs"
	apiprobe "github.com/NordCoder/healthcheck-mcp/internal/services/api-probe"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func buildHTTPServer(cfg *config.Config, logger *zap.Logger, h *apiprobe.Handler) *http.Server {
	server := apiprobe.NewServer(cfg.App.Name, cfg.App.Version, h)
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server },
		&mcp.StreamableHTTPOptions{
			Stateless:    cfg.MCP.Stateless,
			JSONResponse: cfg.MCP.JSONResponse,
		})

	root := http.NewServeMux()
	root.Handle("/healthz", obs.HealthHandler(nil))
	root.Handle(cfg.Server.MCPPath, mcpHandler)

	logger.Info("mcp endpoint",
		zap.String("path", cfg.Server.MCPPath),
		zap.String("tool", apiprobe.ToolName),
		zap.Bool("stateless", cfg.MCP.Stateless),
	)

	return &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           otelhttp.NewHandler(root, "mcp"),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
}
