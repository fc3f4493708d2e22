package http

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "epiview_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"path", "status"})

	httpRequestDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "epiview_http_request_duration_seconds",
		Help:    "Duration of HTTP request handling in seconds",
		Buckets: prometheus.DefBuckets,
	})

	chartRendersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "epiview_chart_renders_total",
		Help: "Total number of chart PNG renders",
	}, []string{"chart"})

	registerOnce sync.Once
)

// initMetrics registers all Prometheus collectors used by the server
func initMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestsTotal,
			httpRequestDurationSeconds,
			chartRendersTotal,
		)
	})
}
