package digraph

import (
	"strings"

	"github.com/matzehuels/toporder/pkg/errors"
)

// Graph is the capability set the order maintainer needs from a store.
//
// Successors and Predecessors return the visible neighbor weights of a node.
// The returned map may be shared with the store: callers must not mutate it
// and must not hold it across a mutating call.
type Graph[N comparable] interface {
	// AddEdge accumulates weight onto the (from, to) edge. Self-loops are
	// ignored. Negative, NaN and infinite weights are rejected.
	AddEdge(from, to N, weight float64) error
	// HasEdge reports whether the edge is stored and visible.
	HasEdge(from, to N) bool
	Successors(n N) map[N]float64
	Predecessors(n N) map[N]float64
	// RemoveCycle decrements every edge of cycle (closing edge last -> first
	// implied) by the smallest weight on it.
	RemoveCycle(cycle []N) error
	// ForwardKeys returns the nodes with at least one visible outgoing edge.
	ForwardKeys() []N
	// BackwardKeys returns the nodes with at least one visible incoming edge.
	BackwardKeys() []N
	// Weight returns the raw stored weight, visible or not.
	Weight(from, to N) (float64, bool)
	// EdgeCount returns the number of visible edges.
	EdgeCount() int
}

// Edge is a weighted directed edge.
type Edge[N comparable] struct {
	From   N
	To     N
	Weight float64
}

// Edges returns every visible edge of g. The order is unspecified; callers
// that need a stable order sort the result.
func Edges[N comparable](g Graph[N]) []Edge[N] {
	var out []Edge[N]
	for _, from := range g.ForwardKeys() {
		for to, w := range g.Successors(from) {
			out = append(out, Edge[N]{From: from, To: to, Weight: w})
		}
	}
	return out
}

// Kind selects a store variant.
type Kind string

const (
	KindExact     Kind = "exact"
	KindThreshold Kind = "threshold"
)

// ParseKind converts a user-supplied name into a Kind. Matching is
// case-insensitive; the empty string selects [KindExact].
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindExact:
		return KindExact, nil
	case KindThreshold:
		return KindThreshold, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown store %q (want %s or %s)", s, KindExact, KindThreshold)
}

// Options configures [New].
type Options struct {
	Kind Kind
	// Floor is the visibility floor of the threshold store.
	Floor float64
	// Epsilon is the zero tolerance of the exact store. Zero selects
	// DefaultEpsilon.
	Epsilon float64
}

// New creates the store selected by opts.
func New[N comparable](opts Options) (Graph[N], error) {
	switch opts.Kind {
	case "", KindExact:
		if opts.Epsilon == 0 {
			return NewExact[N](), nil
		}
		return NewExactWithEpsilon[N](opts.Epsilon)
	case KindThreshold:
		return NewThreshold[N](opts.Floor)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store %q", opts.Kind)
}

var (
	_ Graph[string] = (*Exact[string])(nil)
	_ Graph[string] = (*Threshold[string])(nil)
)
