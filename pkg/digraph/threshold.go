package digraph

import "github.com/matzehuels/toporder/pkg/errors"

// Threshold is a store that hides edges whose weight is at or below Floor.
// Hidden edges stay stored and become visible again if later insertions push
// them back above the floor.
//
// The zero value is not usable; create one with [NewThreshold].
type Threshold[N comparable] struct {
	adj   adjacency[N]
	floor float64
}

// NewThreshold creates an empty threshold store. floor must be non-negative
// and finite.
func NewThreshold[N comparable](floor float64) (*Threshold[N], error) {
	if err := errors.ValidateThreshold("floor", floor); err != nil {
		return nil, err
	}
	return &Threshold[N]{adj: newAdjacency[N](), floor: floor}, nil
}

// Floor returns the visibility floor.
func (g *Threshold[N]) Floor() float64 { return g.floor }

func (g *Threshold[N]) visible(w float64) bool { return w > g.floor }

func (g *Threshold[N]) AddEdge(from, to N, weight float64) error {
	if err := errors.ValidateWeight(weight); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	w, _ := g.adj.weight(from, to)
	g.adj.set(from, to, w+weight)
	return nil
}

func (g *Threshold[N]) HasEdge(from, to N) bool {
	w, ok := g.adj.weight(from, to)
	return ok && g.visible(w)
}

func (g *Threshold[N]) Successors(n N) map[N]float64 { return g.filter(g.adj.forward[n]) }

func (g *Threshold[N]) Predecessors(n N) map[N]float64 { return g.filter(g.adj.backward[n]) }

func (g *Threshold[N]) filter(m map[N]float64) map[N]float64 {
	out := make(map[N]float64, len(m))
	for k, w := range m {
		if g.visible(w) {
			out[k] = w
		}
	}
	return out
}

// RemoveCycle subtracts the smallest cycle weight from every cycle edge.
// Nothing is deleted; the lightest edge drops to zero and thereby below the
// floor.
func (g *Threshold[N]) RemoveCycle(cycle []N) error {
	edges, minWeight, err := cycleEdges(&g.adj, cycle, g.visible)
	if err != nil {
		return err
	}
	for _, e := range edges {
		g.adj.set(e.From, e.To, e.Weight-minWeight)
	}
	return nil
}

func (g *Threshold[N]) ForwardKeys() []N { return g.visibleKeys(g.adj.forward) }

func (g *Threshold[N]) BackwardKeys() []N { return g.visibleKeys(g.adj.backward) }

func (g *Threshold[N]) visibleKeys(m map[N]map[N]float64) []N {
	var out []N
	for k, nbrs := range m {
		for _, w := range nbrs {
			if g.visible(w) {
				out = append(out, k)
				break
			}
		}
	}
	return out
}

func (g *Threshold[N]) Weight(from, to N) (float64, bool) { return g.adj.weight(from, to) }

func (g *Threshold[N]) EdgeCount() int {
	n := 0
	for _, nbrs := range g.adj.forward {
		for _, w := range nbrs {
			if g.visible(w) {
				n++
			}
		}
	}
	return n
}
