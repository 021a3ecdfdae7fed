// Package metrics exposes order-maintenance and benchmark events as
// Prometheus metrics.
//
// A [Registry] implements [observability.OrderHooks] and
// [observability.BenchHooks]; register it once at startup:
//
//	reg := metrics.NewRegistry()
//	observability.SetOrderHooks(reg)
//	observability.SetBenchHooks(reg)
//
// Each Registry owns a private prometheus.Registry, so tests can create as
// many as they like without duplicate-registration panics.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/toporder/pkg/observability"
)

const namespace = "toporder"

// Registry holds all metrics for the application
type Registry struct {
	// Order Metrics
	InsertsTotal        *prometheus.CounterVec
	ReordersTotal       prometheus.Counter
	ReorderAttempts     prometheus.Histogram
	ReorderShiftedNodes prometheus.Histogram
	ReorderDuration     prometheus.Histogram
	CycleCollapsesTotal prometheus.Counter
	CycleLength         prometheus.Histogram
	EdgesCancelledTotal prometheus.Counter

	// Bench Metrics
	BenchRunsTotal    *prometheus.CounterVec
	BenchRunDuration  prometheus.Histogram
	BenchRunsInFlight prometheus.Gauge

	registry *prometheus.Registry
}

var (
	_ observability.OrderHooks = (*Registry)(nil)
	_ observability.BenchHooks = (*Registry)(nil)
)

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initOrderMetrics()
	r.initBenchMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
