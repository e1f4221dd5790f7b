package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "runlet_http_requests_total", Help: "http requests by code and method"},
		[]string{"code", "method"},
	)

	scriptRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "runlet_script_runs_total", Help: "script executions by outcome"},
		[]string{"outcome"},
	)

	scriptDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "runlet_script_duration_seconds",
			Help:    "script execution wall-clock time.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		scriptRunsTotal,
		scriptDuration,
	)
}

// metricsHandler exposes the Prometheus registry over HTTP.
func metricsHandler() http.Handler { return promhttp.Handler() }
