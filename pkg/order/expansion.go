package order

import (
	"github.com/matzehuels/toporder/pkg/errors"
)

// expansion is the state of one reorder attempt for the edge (from, to).
// It is built fresh for every attempt and dropped afterwards.
type expansion[N comparable] struct {
	m        *Maintainer[N]
	from, to N
	lower    int // index(to)
	upper    int // index(from)

	forward   *frontier[N]
	backward  *frontier[N]
	shiftUp   map[N]struct{}
	shiftDown map[N]struct{}

	// cycle is set when the frontiers meet. It starts at to and ends at
	// from.
	cycle []N
}

func (m *Maintainer[N]) newExpansion(from, to N) (*expansion[N], error) {
	upper, ok := m.index[from]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidExpansionState, "source %v is unindexed", from)
	}
	lower, ok := m.index[to]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidExpansionState, "sink %v is unindexed", to)
	}
	return &expansion[N]{
		m:         m,
		from:      from,
		to:        to,
		lower:     lower,
		upper:     upper,
		forward:   newFrontier(to, lower, false),
		backward:  newFrontier(from, upper, true),
		shiftUp:   map[N]struct{}{to: {}},
		shiftDown: map[N]struct{}{from: {}},
	}, nil
}

// run alternates forward and backward steps until both frontiers are empty
// or a cycle is found.
func (e *expansion[N]) run() error {
	for !e.forward.empty() || !e.backward.empty() {
		if !e.forward.empty() {
			if err := e.stepForward(); err != nil || e.cycle != nil {
				return err
			}
		}
		if !e.backward.empty() {
			if err := e.stepBackward(); err != nil || e.cycle != nil {
				return err
			}
		}
	}
	return nil
}

func (e *expansion[N]) stepForward() error {
	p := e.forward.pop()
	if _, ok := e.m.index[p.node]; !ok {
		return errors.New(errors.ErrCodeInvalidExpansionState, "forward path ends at unindexed node %v", p.node)
	}
	for s := range e.m.graph.Successors(p.node) {
		if back, ok := e.backward.reached[s]; ok {
			return e.closeCycle(p, back)
		}
		if _, ok := e.forward.reached[s]; ok {
			continue
		}
		idx, ok := e.m.index[s]
		if !ok {
			return errors.New(errors.ErrCodeInvalidExpansionState, "successor %v of %v is unindexed", s, p.node)
		}
		if idx >= e.upper {
			continue
		}
		e.forward.push(p.extend(s), idx)
		e.shiftUp[s] = struct{}{}
	}
	return nil
}

func (e *expansion[N]) stepBackward() error {
	p := e.backward.pop()
	if _, ok := e.m.index[p.node]; !ok {
		return errors.New(errors.ErrCodeInvalidExpansionState, "backward path ends at unindexed node %v", p.node)
	}
	for q := range e.m.graph.Predecessors(p.node) {
		if fwd, ok := e.forward.reached[q]; ok {
			return e.closeCycle(fwd, p)
		}
		if _, ok := e.backward.reached[q]; ok {
			continue
		}
		idx, ok := e.m.index[q]
		if !ok {
			return errors.New(errors.ErrCodeInvalidExpansionState, "predecessor %v of %v is unindexed", q, p.node)
		}
		if idx <= e.lower {
			continue
		}
		e.backward.push(p.extend(q), idx)
		e.shiftDown[q] = struct{}{}
	}
	return nil
}

// closeCycle records the cycle formed by a forward path and a backward path
// whose endpoints are joined by an edge.
func (e *expansion[N]) closeCycle(forward, backward *path[N]) error {
	cycle := joinCycle(forward, backward)
	if cycle[0] != e.to || cycle[len(cycle)-1] != e.from {
		return errors.New(errors.ErrCodeInvalidExpansionState, "cycle %v does not run from %v to %v", cycle, e.to, e.from)
	}
	e.cycle = cycle
	return nil
}
