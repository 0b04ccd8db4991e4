package probe_server_config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const (
	ErrNegativeTimeout = ErrConfig("probe.timeout must not be negative")
	ErrUnknownExporter = ErrConfig("otel.exporter must be one of: otlp, stdout")
	ErrEmptyHTTPAddr   = ErrConfig("server.http_addr is required")
	ErrBadMCPPath      = ErrConfig("server.mcp_path must start with /")
)

// Load reads path (optional), applies defaults and then environment overrides,
// e.g. PROBE_TIMEOUT=5s or SERVER_HTTP_ADDR=:9000.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	v.SetDefault("app.name", "healthcheck-mcp")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("server.mcp_path", "/")
	v.SetDefault("server.metrics_addr", ":9091")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.graceful_timeout", "15s")

	v.SetDefault("mcp.stateless", false)
	v.SetDefault("mcp.json_response", false)

	v.SetDefault("probe.timeout", "30s")
	v.SetDefault("probe.follow_redirects", true)

	v.SetDefault("otel.enable", false)
	v.SetDefault("otel.exporter", "otlp")
	v.SetDefault("otel.service_name", "healthcheck-mcp")
	v.SetDefault("otel.sample_ratio", 1.0)
	v.SetDefault("otel.otlp_endpoint", "localhost:4317")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return ErrEmptyHTTPAddr
	}
	if !strings.HasPrefix(c.Server.MCPPath, "/") {
		return ErrBadMCPPath
	}
	if c.Probe.Timeout < 0 {
		return ErrNegativeTimeout
	}
	switch c.OTEL.Exporter {
	case "otlp", "stdout":
	default:
		return ErrUnknownExporter
	}
	return nil
}
