package order

import (
	"cmp"
	"maps"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toporder/pkg/digraph"
	"github.com/matzehuels/toporder/pkg/errors"
	"github.com/matzehuels/toporder/pkg/observability"
)

// Maintainer keeps a topological numbering of a graph up to date as edges
// are inserted.
//
// The zero value is not usable - use New to create a Maintainer.
// Maintainer is not safe for concurrent use without external synchronization.
type Maintainer[N comparable] struct {
	graph digraph.Graph[N]
	index map[N]int

	nextTop    int // next free slot above every index
	nextBottom int // next free slot below every index

	logger *log.Logger
}

// New creates a Maintainer over g. The graph is expected to be empty: nodes
// already in it are not indexed. A nil logger falls back to log.Default().
func New[N comparable](g digraph.Graph[N], logger *log.Logger) *Maintainer[N] {
	if logger == nil {
		logger = log.Default()
	}
	return &Maintainer[N]{
		graph:      g,
		index:      make(map[N]int),
		nextTop:    1,
		nextBottom: 0,
		logger:     logger,
	}
}

// AddEdge stores the edge and restores the order invariant.
//
// Self-loops are ignored. Weights rejected by the graph (negative, NaN,
// infinite) leave the graph and the order untouched. An edge that closes a
// cycle is resolved by cycle collapse; if the collapse erases the edge
// itself, AddEdge returns nil with the edge gone.
func (m *Maintainer[N]) AddEdge(from, to N, weight float64) error {
	hooks := observability.Order()
	if from == to {
		hooks.OnInsert(observability.InsertSelfLoop)
		return nil
	}
	if err := m.graph.AddEdge(from, to, weight); err != nil {
		hooks.OnInsert(observability.InsertRejected)
		return err
	}

	fi, fromKnown := m.index[from]
	ti, toKnown := m.index[to]
	switch {
	case !fromKnown && !toKnown:
		m.index[from] = m.nextTop
		m.index[to] = m.nextTop + 1
		m.nextTop += 2
		hooks.OnInsert(observability.InsertNewPair)
	case !fromKnown:
		m.index[from] = m.nextBottom
		m.nextBottom--
		hooks.OnInsert(observability.InsertNewSource)
	case !toKnown:
		m.index[to] = m.nextTop
		m.nextTop++
		hooks.OnInsert(observability.InsertNewSink)
	case fi < ti:
		hooks.OnInsert(observability.InsertOrdered)
	default:
		hooks.OnInsert(observability.InsertReorder)
		return m.reorder(from, to)
	}
	return nil
}

// reorder runs expansions for (from, to) until one finishes without finding
// a cycle or the edge is no longer visible.
func (m *Maintainer[N]) reorder(from, to N) error {
	hooks := observability.Order()
	start := time.Now()
	for attempt := 1; ; attempt++ {
		if !m.graph.HasEdge(from, to) {
			m.logger.Debug("edge cancelled by cycle collapse", "from", from, "to", to, "collapses", attempt-1)
			hooks.OnEdgeCancelled()
			hooks.OnReorder(attempt-1, 0, time.Since(start))
			return nil
		}

		e, err := m.newExpansion(from, to)
		if err != nil {
			return err
		}
		if err := e.run(); err != nil {
			return err
		}

		if e.cycle != nil {
			if err := m.graph.RemoveCycle(e.cycle); err != nil {
				return err
			}
			m.logger.Debug("collapsed cycle", "from", from, "to", to, "length", len(e.cycle))
			hooks.OnCycleCollapse(len(e.cycle))
			continue
		}

		if err := m.switchPositions(e.shiftUp, e.shiftDown); err != nil {
			return err
		}
		shifted := len(e.shiftUp) + len(e.shiftDown)
		m.logger.Debug("reordered", "from", from, "to", to, "shifted", shifted, "attempts", attempt)
		hooks.OnReorder(attempt, shifted, time.Since(start))
		return nil
	}
}

// switchPositions renumbers up and down inside the index slots they occupy:
// down takes the lowest slots and up the rest, each keeping its relative
// order.
func (m *Maintainer[N]) switchPositions(up, down map[N]struct{}) error {
	for n := range down {
		if _, ok := up[n]; ok {
			return errors.New(errors.ErrCodeInvalidExpansionState, "node %v must shift both up and down", n)
		}
	}
	downs, err := m.sortedByIndex(down)
	if err != nil {
		return err
	}
	ups, err := m.sortedByIndex(up)
	if err != nil {
		return err
	}

	moved := append(downs, ups...)
	slots := make([]int, len(moved))
	for i, n := range moved {
		slots[i] = m.index[n]
	}
	slices.Sort(slots)
	for i, n := range moved {
		m.index[n] = slots[i]
	}
	return nil
}

func (m *Maintainer[N]) sortedByIndex(set map[N]struct{}) ([]N, error) {
	out := make([]N, 0, len(set))
	for n := range set {
		if _, ok := m.index[n]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidExpansionState, "node %v is unindexed", n)
		}
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b N) int { return cmp.Compare(m.index[a], m.index[b]) })
	return out, nil
}

// =============================================================================
// Queries
// =============================================================================

// Before reports whether a is ordered before b. It returns false when either
// node has never been indexed.
func (m *Maintainer[N]) Before(a, b N) bool {
	ia, ok := m.index[a]
	if !ok {
		return false
	}
	ib, ok := m.index[b]
	return ok && ia < ib
}

// Index returns the current index of n.
func (m *Maintainer[N]) Index(n N) (int, bool) {
	i, ok := m.index[n]
	return i, ok
}

// Indices returns a copy of the index map.
func (m *Maintainer[N]) Indices() map[N]int { return maps.Clone(m.index) }

// Order returns every indexed node sorted by index.
func (m *Maintainer[N]) Order() []N {
	out := slices.Collect(maps.Keys(m.index))
	slices.SortFunc(out, func(a, b N) int { return cmp.Compare(m.index[a], m.index[b]) })
	return out
}

// Len returns the number of indexed nodes.
func (m *Maintainer[N]) Len() int { return len(m.index) }

// Graph returns the underlying store.
func (m *Maintainer[N]) Graph() digraph.Graph[N] { return m.graph }

func (m *Maintainer[N]) Successors(n N) map[N]float64   { return m.graph.Successors(n) }
func (m *Maintainer[N]) Predecessors(n N) map[N]float64 { return m.graph.Predecessors(n) }
func (m *Maintainer[N]) ForwardKeys() []N               { return m.graph.ForwardKeys() }
func (m *Maintainer[N]) BackwardKeys() []N              { return m.graph.BackwardKeys() }
