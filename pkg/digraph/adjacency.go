package digraph

import "github.com/matzehuels/toporder/pkg/errors"

// adjacency is the forward/backward map pair shared by both stores. It
// performs no visibility filtering.
type adjacency[N comparable] struct {
	forward  map[N]map[N]float64
	backward map[N]map[N]float64
}

func newAdjacency[N comparable]() adjacency[N] {
	return adjacency[N]{
		forward:  make(map[N]map[N]float64),
		backward: make(map[N]map[N]float64),
	}
}

func (a *adjacency[N]) weight(from, to N) (float64, bool) {
	w, ok := a.forward[from][to]
	return w, ok
}

func (a *adjacency[N]) set(from, to N, w float64) {
	out := a.forward[from]
	if out == nil {
		out = make(map[N]float64)
		a.forward[from] = out
	}
	out[to] = w

	in := a.backward[to]
	if in == nil {
		in = make(map[N]float64)
		a.backward[to] = in
	}
	in[from] = w
}

// remove deletes the edge from both maps and drops neighbor maps that
// become empty, so map keys always have at least one stored edge.
func (a *adjacency[N]) remove(from, to N) {
	if out := a.forward[from]; out != nil {
		delete(out, to)
		if len(out) == 0 {
			delete(a.forward, from)
		}
	}
	if in := a.backward[to]; in != nil {
		delete(in, from)
		if len(in) == 0 {
			delete(a.backward, to)
		}
	}
}

// cycleEdges resolves the edges of cycle, closing edge included, and the
// smallest weight among them. visible decides whether a stored edge counts.
func cycleEdges[N comparable](a *adjacency[N], cycle []N, visible func(float64) bool) ([]Edge[N], float64, error) {
	if len(cycle) < 2 {
		return nil, 0, errors.New(errors.ErrCodeInvalidExpansionState, "cycle needs at least two nodes, got %d", len(cycle))
	}
	edges := make([]Edge[N], len(cycle))
	seen := make(map[N]struct{}, len(cycle))
	var minWeight float64
	for i, from := range cycle {
		if _, dup := seen[from]; dup {
			return nil, 0, errors.New(errors.ErrCodeInvalidExpansionState, "cycle visits %v twice", from)
		}
		seen[from] = struct{}{}
		to := cycle[(i+1)%len(cycle)]
		w, ok := a.weight(from, to)
		if !ok || !visible(w) {
			return nil, 0, errors.New(errors.ErrCodeInvalidExpansionState, "cycle edge %v->%v is not present", from, to)
		}
		edges[i] = Edge[N]{From: from, To: to, Weight: w}
		if i == 0 || w < minWeight {
			minWeight = w
		}
	}
	return edges, minWeight, nil
}
