package metrics

import (
	"context"
	"time"

	"github.com/matzehuels/toporder/pkg/observability"
)

// OnInsert records an edge insertion
func (r *Registry) OnInsert(path observability.InsertPath) {
	r.InsertsTotal.WithLabelValues(string(path)).Inc()
}

// OnReorder records a finished reorder. Cancelled edges report zero shifted
// nodes and are left out of the shift histogram.
func (r *Registry) OnReorder(attempts, shifted int, duration time.Duration) {
	r.ReordersTotal.Inc()
	r.ReorderAttempts.Observe(float64(attempts))
	r.ReorderDuration.Observe(duration.Seconds())
	if shifted > 0 {
		r.ReorderShiftedNodes.Observe(float64(shifted))
	}
}

// OnCycleCollapse records a cycle collapse
func (r *Registry) OnCycleCollapse(length int) {
	r.CycleCollapsesTotal.Inc()
	r.CycleLength.Observe(float64(length))
}

// OnEdgeCancelled records an edge erased by its own cycle
func (r *Registry) OnEdgeCancelled() {
	r.EdgesCancelledTotal.Inc()
}

// OnRunStart records the start of a benchmark run
func (r *Registry) OnRunStart(context.Context, string, int, int) {
	r.BenchRunsInFlight.Inc()
}

// OnRunComplete records the end of a benchmark run
func (r *Registry) OnRunComplete(_ context.Context, _ string, duration time.Duration, err error) {
	r.BenchRunsInFlight.Dec()
	status := "success"
	if err != nil {
		status = "error"
	}
	r.BenchRunsTotal.WithLabelValues(status).Inc()
	r.BenchRunDuration.Observe(duration.Seconds())
}
