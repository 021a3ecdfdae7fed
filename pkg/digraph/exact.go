package digraph

import (
	"math"

	"github.com/matzehuels/toporder/pkg/errors"
)

// DefaultEpsilon is the zero tolerance of [NewExact]. Weights whose absolute
// value is below it are treated as absent.
const DefaultEpsilon = 1e-4

// Exact is a store that deletes an edge as soon as its weight reaches zero
// within Epsilon. Every stored edge is visible.
//
// The zero value is not usable; create one with [NewExact] or
// [NewExactWithEpsilon].
type Exact[N comparable] struct {
	adj     adjacency[N]
	epsilon float64
	edges   int
}

// NewExact creates an empty exact store with [DefaultEpsilon].
func NewExact[N comparable]() *Exact[N] {
	return &Exact[N]{adj: newAdjacency[N](), epsilon: DefaultEpsilon}
}

// NewExactWithEpsilon creates an empty exact store with a custom zero
// tolerance. epsilon must be positive and finite.
func NewExactWithEpsilon[N comparable](epsilon float64) (*Exact[N], error) {
	if err := errors.ValidateThreshold("epsilon", epsilon); err != nil {
		return nil, err
	}
	if epsilon == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "epsilon must be positive")
	}
	return &Exact[N]{adj: newAdjacency[N](), epsilon: epsilon}, nil
}

// Epsilon returns the zero tolerance.
func (g *Exact[N]) Epsilon() float64 { return g.epsilon }

func (g *Exact[N]) zero(w float64) bool { return math.Abs(w) < g.epsilon }

// AddEdge accumulates weight onto the edge. A sum that stays within epsilon
// of zero is not stored.
func (g *Exact[N]) AddEdge(from, to N, weight float64) error {
	if err := errors.ValidateWeight(weight); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	w, ok := g.adj.weight(from, to)
	w += weight
	switch {
	case g.zero(w):
		if ok {
			g.adj.remove(from, to)
			g.edges--
		}
	default:
		g.adj.set(from, to, w)
		if !ok {
			g.edges++
		}
	}
	return nil
}

func (g *Exact[N]) HasEdge(from, to N) bool {
	_, ok := g.adj.weight(from, to)
	return ok
}

func (g *Exact[N]) Successors(n N) map[N]float64 { return g.adj.forward[n] }

func (g *Exact[N]) Predecessors(n N) map[N]float64 { return g.adj.backward[n] }

// RemoveCycle subtracts the smallest cycle weight from every cycle edge and
// deletes the edges that reach zero.
func (g *Exact[N]) RemoveCycle(cycle []N) error {
	edges, minWeight, err := cycleEdges(&g.adj, cycle, func(float64) bool { return true })
	if err != nil {
		return err
	}
	for _, e := range edges {
		w := e.Weight - minWeight
		if g.zero(w) {
			g.adj.remove(e.From, e.To)
			g.edges--
			continue
		}
		g.adj.set(e.From, e.To, w)
	}
	return nil
}

func (g *Exact[N]) ForwardKeys() []N { return keys(g.adj.forward) }

func (g *Exact[N]) BackwardKeys() []N { return keys(g.adj.backward) }

func (g *Exact[N]) Weight(from, to N) (float64, bool) { return g.adj.weight(from, to) }

func (g *Exact[N]) EdgeCount() int { return g.edges }

func keys[N comparable](m map[N]map[N]float64) []N {
	out := make([]N, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
