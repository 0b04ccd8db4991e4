package api_probe

import (
	"github.com/NordCoder/healthcheck-mcp/internal/domain/probe"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	probesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "probe_results_total",
		Help: "Probe results by status.",
	}, []string{"status"})
	probesTimedOut = promauto.NewCounter(prometheus.CounterOpts{
		Name: "probe_timeouts_total",
		Help: "DOWN results caused by the probe deadline.",
	})
	probesCanceled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "probe_canceled_total",
		Help: "Probes abandoned because the caller went away.",
	})
	probeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "probe_latency_seconds",
		Help:    "Time to response headers for UP results.",
		Buckets: prometheus.DefBuckets,
	})
)

func observe(r probe.Result) {
	probesTotal.WithLabelValues(string(r.Status())).Inc()
	if up, ok := r.(probe.Up); ok {
		probeLatency.Observe(up.Latency.Seconds())
	}
}
