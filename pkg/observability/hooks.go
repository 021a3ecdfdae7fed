// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about order maintenance and benchmark runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (Prometheus, plain logs, test recorders)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    reg := metrics.NewRegistry()
//	    observability.SetOrderHooks(reg)
//	    observability.SetBenchHooks(reg)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Order().OnInsert(observability.InsertReorder)
//	// ... run the reorder protocol ...
//	observability.Order().OnReorder(attempts, shifted, duration)
//
// Order hooks take no context: insertion is synchronous and never blocks.
package observability

import (
	"context"
	"sync"
	"time"
)

// InsertPath names the branch an edge insertion took.
type InsertPath string

const (
	InsertSelfLoop  InsertPath = "self_loop"
	InsertNewPair   InsertPath = "new_pair"
	InsertNewSource InsertPath = "new_source"
	InsertNewSink   InsertPath = "new_sink"
	InsertOrdered   InsertPath = "ordered"
	InsertReorder   InsertPath = "reorder"
	InsertRejected  InsertPath = "rejected"
)

// =============================================================================
// Order Hooks
// =============================================================================

// OrderHooks receives events from the order maintainer.
type OrderHooks interface {
	// OnInsert records one AddEdge call and the branch it took.
	OnInsert(path InsertPath)

	// OnReorder records a finished reorder. attempts counts the expansions
	// run (one more than the number of cycle collapses); shifted is the
	// number of renumbered nodes, zero when the inserted edge was cancelled.
	OnReorder(attempts, shifted int, duration time.Duration)

	// OnCycleCollapse records one cycle collapse with the cycle's length.
	OnCycleCollapse(length int)

	// OnEdgeCancelled records an inserted edge erased by its own cycle.
	OnEdgeCancelled()
}

// =============================================================================
// Bench Hooks
// =============================================================================

// BenchHooks receives events from stress benchmark runs.
type BenchHooks interface {
	OnRunStart(ctx context.Context, runID string, nodes, edges int)
	OnRunComplete(ctx context.Context, runID string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopOrderHooks is a no-op implementation of OrderHooks.
type NoopOrderHooks struct{}

func (NoopOrderHooks) OnInsert(InsertPath)               {}
func (NoopOrderHooks) OnReorder(int, int, time.Duration) {}
func (NoopOrderHooks) OnCycleCollapse(int)               {}
func (NoopOrderHooks) OnEdgeCancelled()                  {}

// NoopBenchHooks is a no-op implementation of BenchHooks.
type NoopBenchHooks struct{}

func (NoopBenchHooks) OnRunStart(context.Context, string, int, int)                {}
func (NoopBenchHooks) OnRunComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	orderHooks OrderHooks = NoopOrderHooks{}
	benchHooks BenchHooks = NoopBenchHooks{}
	hooksMu    sync.RWMutex
)

// SetOrderHooks registers custom order hooks.
// This should be called once at application startup before any insertion.
func SetOrderHooks(h OrderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		orderHooks = h
	}
}

// SetBenchHooks registers custom benchmark hooks.
// This should be called once at application startup before any benchmark run.
func SetBenchHooks(h BenchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		benchHooks = h
	}
}

// Order returns the registered order hooks.
func Order() OrderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return orderHooks
}

// Bench returns the registered benchmark hooks.
func Bench() BenchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return benchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	orderHooks = NoopOrderHooks{}
	benchHooks = NoopBenchHooks{}
}
