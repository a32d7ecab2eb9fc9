// Package metrics exposes Prometheus instrumentation for the enrichment
// pipeline, mounted at /metrics by the HTTP server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EnrichRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "enrich_requests_total",
		Help: "Total number of /enrich requests",
	})
	EnrichRowsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "enrich_rows_total",
		Help: "Total number of input rows processed",
	})
	EnrichRowsFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "enrich_rows_failed_total",
		Help: "Total rows with unparseable coordinates",
	})
	ZoneMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "enrich_zone_misses_total",
		Help: "Total rows without a zone match",
	})
	FreguesiaMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "enrich_freguesia_misses_total",
		Help: "Total rows without a freguesia match",
	})
	EnrichDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "enrich_request_duration_ms",
		Help:    "Enrich request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	})
)

func init() {
	prometheus.MustRegister(EnrichRequestsTotal)
	prometheus.MustRegister(EnrichRowsTotal)
	prometheus.MustRegister(EnrichRowsFailedTotal)
	prometheus.MustRegister(ZoneMissesTotal)
	prometheus.MustRegister(FreguesiaMissesTotal)
	prometheus.MustRegister(EnrichDurationMs)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler { return promhttp.Handler() }
