// Package metrics exposes Prometheus collectors for fetches, cache lookups
// and engine runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	fetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intradayscope_fetch_duration_seconds",
			Help:    "Latency of price bar fetches by provider",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	fetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intradayscope_fetch_errors_total",
			Help: "Total number of failed price bar fetches",
		},
		[]string{"provider"},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intradayscope_cache_lookups_total",
			Help: "Bar cache lookups by backend and result",
		},
		[]string{"backend", "result"},
	)

	analyses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intradayscope_analyses_total",
			Help: "Completed analyses by suggestion",
		},
		[]string{"suggestion"},
	)

	analysisErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intradayscope_analysis_errors_total",
			Help: "Analyses that failed, by reason",
		},
		[]string{"reason"},
	)

	lastScan = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "intradayscope_last_scan_timestamp_seconds",
			Help: "Unix time of the last completed universe scan",
		},
	)
)

func init() {
	prometheus.MustRegister(fetchDuration)
	prometheus.MustRegister(fetchErrors)
	prometheus.MustRegister(cacheLookups)
	prometheus.MustRegister(analyses)
	prometheus.MustRegister(analysisErrors)
	prometheus.MustRegister(lastScan)
}

// Handler serves the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveFetch records one fetch attempt.
func ObserveFetch(provider string, took time.Duration, err error) {
	fetchDuration.WithLabelValues(provider).Observe(took.Seconds())
	if err != nil {
		fetchErrors.WithLabelValues(provider).Inc()
	}
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(backend, result).Inc()
}

// RecordAnalysis records a completed analysis.
func RecordAnalysis(suggestion string) {
	analyses.WithLabelValues(suggestion).Inc()
}

// RecordAnalysisError records a failed analysis.
func RecordAnalysisError(reason string) {
	analysisErrors.WithLabelValues(reason).Inc()
}

// RecordScan stamps the completion time of a universe scan.
func RecordScan(at time.Time) {
	lastScan.Set(float64(at.Unix()))
}
