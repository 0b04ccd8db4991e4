package api_probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/NordCoder/healthcheck-mcp/internal/domain/probe"
	"github.com/NordCoder/healthcheck-mcp/internal/obs"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "healthcheck-mcp/api-probe"

// Handler probes one URL per call. It keeps no per-call state and is safe for
// concurrent use.
type Handler struct {
	Log     *zap.Logger
	HTTP    probe.Pinger
	Clock   probe.Clock
	Timeout time.Duration
}

func NewHandler(log *zap.Logger, pinger probe.Pinger, clock probe.Clock, timeout time.Duration) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = NewClock()
	}
	if pinger == nil {
		pinger = HTTPPing{Client: http.DefaultClient}
	}
	return &Handler{Log: log, HTTP: pinger, Clock: clock, Timeout: timeout}
}

// CheckAPIStatus probes url and returns the serialized result. Probe failures
// are reported as DOWN, not as errors; an error means ctx was cancelled before
// a result existed or the result could not be encoded.
func (h *Handler) CheckAPIStatus(ctx context.Context, url string) (string, error) {
	res, err := h.Probe(ctx, url)
	if err != nil {
		return "", err
	}
	b, err := probe.Encode(res)
	if err != nil {
		h.Log.Error("encode probe result", zap.String("url", url), zap.Error(err))
		return "", err
	}
	return string(b), nil
}

func (h *Handler) Probe(ctx context.Context, url string) (probe.Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "probe.check_api_status",
		trace.WithAttributes(attribute.String("url.full", url)),
	)
	defer span.End()

	log := obs.WithTrace(ctx, h.Log, zap.String("probe_id", uuid.NewString()), zap.String("url", url))

	pctx := ctx
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		pctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	start := h.Clock.Now()
	code, pingErr := h.HTTP.Ping(pctx, url)
	at := h.Clock.Now()

	if pingErr != nil {
		if ctx.Err() != nil {
			probesCanceled.Inc()
			span.SetStatus(codes.Error, "canceled")
			log.Debug("probe canceled", zap.Error(ctx.Err()))
			return nil, ctx.Err()
		}
		down := probe.Down{Reason: h.describe(pingErr, errors.Is(pctx.Err(), context.DeadlineExceeded)), At: at}
		observe(down)
		span.SetAttributes(attribute.String("probe.status", string(probe.StatusDown)))
		span.RecordError(pingErr)
		log.Info("probe down", zap.String("error_details", down.Reason))
		return down, nil
	}

	up := probe.Up{StatusCode: code, Latency: at.Sub(start), At: at}
	observe(up)
	span.SetAttributes(
		attribute.String("probe.status", string(probe.StatusUp)),
		attribute.Int("http.response.status_code", code),
	)
	log.Info("probe up", zap.Int("http_status_code", code), zap.Int64("latency_ms", up.Latency.Milliseconds()))
	return up, nil
}

// describe credits a timeout to the configured deadline only when that
// deadline fired; transport-level timeouts keep the plain prefix.
func (h *Handler) describe(err error, deadlineHit bool) string {
	if !isTimeout(err) {
		return err.Error()
	}
	probesTimedOut.Inc()
	if deadlineHit && h.Timeout > 0 {
		return fmt.Sprintf("timeout after %s: %s", h.Timeout, err)
	}
	return "timeout: " + err.Error()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
