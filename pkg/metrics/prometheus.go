package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	refreshesTotal  *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	cachedPairs     prometheus.Gauge
	historySize     prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		refreshesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forexpulse_refreshes_total",
				Help: "Total number of signal refreshes by source",
			},
			[]string{"source"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forexpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		refreshDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forexpulse_refresh_duration_seconds",
				Help:    "Duration of refresh cycles in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		cachedPairs: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "forexpulse_cached_pairs",
				Help: "Number of pairs currently cached in the signal store",
			},
		),
		historySize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "forexpulse_history_size",
				Help: "Number of entries in the signal history",
			},
		),
	}
}

// RecordRefresh records a completed refresh by source (producer or fallback).
func (r *Recorder) RecordRefresh(source string) {
	r.refreshesTotal.WithLabelValues(source).Inc()
}

// RecordRefreshDuration records how long a refresh cycle took.
func (r *Recorder) RecordRefreshDuration(seconds float64) {
	r.refreshDuration.Observe(seconds)
}

// RecordCachedPairs records the current size of the latest-per-pair cache.
func (r *Recorder) RecordCachedPairs(n int) {
	r.cachedPairs.Set(float64(n))
}

// RecordHistorySize records the current history length.
func (r *Recorder) RecordHistorySize(n int) {
	r.historySize.Set(float64(n))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
