// Package metrics collects run statistics in a private Prometheus registry
// and writes them as a node_exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the collectors of one run
type Registry struct {
	reg             *prometheus.Registry
	Rows            prometheus.Counter
	DistinctNames   prometheus.Counter
	Translated      prometheus.Counter
	Passthrough     prometheus.Counter
	Fallbacks       prometheus.Counter
	ProviderCalls   *prometheus.CounterVec
	ProviderLatency *prometheus.HistogramVec
	RunDurationSec  prometheus.Gauge
}

// NewRegistry creates a Registry with every collector registered
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	rows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cattrans_rows_total",
		Help: "Order-line records processed.",
	})
	distinct := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cattrans_distinct_names_total",
		Help: "Distinct product names translated.",
	})
	translated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cattrans_translated_total",
		Help: "Distinct names whose translation differs from the original.",
	})
	passthrough := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cattrans_passthrough_total",
		Help: "Distinct names left untranslated.",
	})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cattrans_fallback_total",
		Help: "Names handed to the secondary provider.",
	})
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cattrans_provider_calls_total",
		Help: "Provider calls by outcome.",
	}, []string{"provider", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cattrans_provider_latency_seconds",
		Help:    "Provider call latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cattrans_run_duration_seconds",
		Help: "Wall time of the last run.",
	})

	r.MustRegister(rows, distinct, translated, passthrough, fallbacks, calls, latency, duration)
	return &Registry{
		reg:             r,
		Rows:            rows,
		DistinctNames:   distinct,
		Translated:      translated,
		Passthrough:     passthrough,
		Fallbacks:       fallbacks,
		ProviderCalls:   calls,
		ProviderLatency: latency,
		RunDurationSec:  duration,
	}
}

// ObserveCall records one provider call
func (r *Registry) ObserveCall(provider, outcome string, d time.Duration) {
	r.ProviderCalls.WithLabelValues(provider, outcome).Inc()
	r.ProviderLatency.WithLabelValues(provider).Observe(d.Seconds())
}

// ObserveFallback records a hand-over to the secondary provider
func (r *Registry) ObserveFallback() {
	r.Fallbacks.Inc()
}

// WriteTextfile writes all metrics to path in the text exposition format
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
