package api_probe

import (
	"net/http"

	config "github.com/NordCoder/healthcheck-mcp/internal/config/probe-server"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPClient builds the outbound client. The probe deadline is applied per
// request by Handler, so the client itself carries no Timeout.
func NewHTTPClient(cfg config.Probe) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	client := &http.Client{
		Transport: otelhttp.NewTransport(transport),
	}
	if !cfg.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return client
}
