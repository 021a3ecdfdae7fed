package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBenchMetrics() {
	r.BenchRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bench_runs_total",
			Help:      "Total number of benchmark runs by status",
		},
		[]string{"status"},
	)

	r.BenchRunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bench_run_duration_seconds",
			Help:      "Benchmark run duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	r.BenchRunsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bench_runs_in_flight",
			Help:      "Benchmark runs currently executing",
		},
	)
}
