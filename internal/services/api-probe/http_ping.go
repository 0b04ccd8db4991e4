package api_probe

import (
	"context"
	"net/http"

	"github.com/NordCoder/healthcheck-mcp/internal/domain/probe"
)

var _ probe.Pinger = HTTPPing{}

type HTTPPing struct {
	Client *http.Client
}

// Ping returns once response headers arrive. The body is closed unread.
func (h HTTPPing) Ping(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return 0, err
	}
	_ = resp.Body.Close()
	return resp.StatusCode, nil
}
