package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initOrderMetrics() {
	r.InsertsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserts_total",
			Help:      "Total number of edge insertions by insertion path",
		},
		[]string{"path"},
	)

	r.ReordersTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reorders_total",
			Help:      "Total number of insertions that ran the reorder protocol",
		},
	)

	r.ReorderAttempts = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reorder_attempts",
			Help:      "Expansions run per reorder",
			Buckets:   []float64{1, 2, 3, 5, 10, 25, 100},
		},
	)

	r.ReorderShiftedNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reorder_shifted_nodes",
			Help:      "Nodes renumbered per committed reorder",
			Buckets:   []float64{2, 4, 8, 16, 64, 256, 1024},
		},
	)

	r.ReorderDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reorder_duration_seconds",
			Help:      "Reorder duration in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
	)

	r.CycleCollapsesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycle_collapses_total",
			Help:      "Total number of collapsed cycles",
		},
	)

	r.CycleLength = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_length",
			Help:      "Number of nodes on each collapsed cycle",
			Buckets:   []float64{2, 3, 4, 8, 16, 64},
		},
	)

	r.EdgesCancelledTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_cancelled_total",
			Help:      "Total number of inserted edges erased by their own cycle",
		},
	)
}
