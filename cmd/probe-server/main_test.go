package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	config "github.com/NordCoder/healthcheck-mcp/internal/config/probe-server"
	"github.com/NordCoder/healthcheck-mcp/internal/domain/probe"
	apiprobe "github.com/NordCoder/healthcheck-mcp/internal/services/api-probe"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckCmd_PrintsProbeResult(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer target.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"check", target.URL})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	var p probe.Payload
	require.NoError(t, json.Unmarshal(out.Bytes(), &p))
	assert.Equal(t, probe.StatusUp, p.Status)
	assert.Equal(t, http.StatusNotFound, *p.HTTPStatusCode)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Server.MCPPath = "/mcp"
	cfg.Probe.Timeout = time.Second
	return cfg
}

func TestHTTPServer_Healthz(t *testing.T) {
	cfg := testConfig(t)
	srv := buildHTTPServer(cfg, zap.NewNop(), initProbe(cfg, zap.NewNop()))
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestHTTPServer_MCPInitializeAndCall(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.Name = "probe-under-test"
	srv := buildHTTPServer(cfg, zap.NewNop(), initProbe(cfg, zap.NewNop()))
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: ts.URL + "/mcp"}, nil)
	require.NoError(t, err)
	defer cs.Close()

	initRes := cs.InitializeResult()
	require.NotNil(t, initRes)
	assert.Equal(t, "probe-under-test", initRes.ServerInfo.Name)
	require.NotNil(t, initRes.Capabilities.Tools)
	assert.NotEmpty(t, cs.ID())

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      apiprobe.ToolName,
		Arguments: map[string]any{"url": ts.URL + "/healthz"},
	})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	var p probe.Payload
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(*mcp.TextContent).Text), &p))
	assert.Equal(t, probe.StatusUp, p.Status)
	assert.Equal(t, http.StatusOK, *p.HTTPStatusCode)
}
