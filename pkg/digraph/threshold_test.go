package digraph

import (
	"math"
	"testing"

	"github.com/matzehuels/toporder/pkg/errors"
)

func TestThresholdVisibility(t *testing.T) {
	g, err := NewThreshold[string](1.0)
	if err != nil {
		t.Fatalf("NewThreshold: %v", err)
	}

	_ = g.AddEdge("a", "b", 1.0)
	if g.HasEdge("a", "b") {
		t.Error("edge at the floor is visible")
	}
	if len(g.Successors("a")) != 0 {
		t.Errorf("Successors(a) = %v, want empty", g.Successors("a"))
	}
	if len(g.ForwardKeys()) != 0 {
		t.Errorf("ForwardKeys() = %v, want empty", g.ForwardKeys())
	}
	if w, ok := g.Weight("a", "b"); !ok || w != 1.0 {
		t.Errorf("Weight(a, b) = %v, %v; want stored 1.0", w, ok)
	}

	_ = g.AddEdge("a", "b", 0.1)
	if !g.HasEdge("a", "b") {
		t.Error("edge above the floor is hidden")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if _, ok := g.Predecessors("b")["a"]; !ok {
		t.Error("Predecessors(b) misses a")
	}
}

func TestThresholdRemoveCycleKeepsEdges(t *testing.T) {
	g, _ := NewThreshold[string](0.05)
	_ = g.AddEdge("a", "b", 1.2)
	_ = g.AddEdge("b", "c", 1.4)
	_ = g.AddEdge("c", "a", 1.3)

	if err := g.RemoveCycle([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("RemoveCycle: %v", err)
	}

	if g.HasEdge("a", "b") {
		t.Error("lightest edge still visible")
	}
	if w, ok := g.Weight("a", "b"); !ok || w != 0 {
		t.Errorf("Weight(a, b) = %v, %v; want stored 0", w, ok)
	}
	if w, _ := g.Weight("b", "c"); math.Abs(w-0.2) > 1e-9 {
		t.Errorf("Weight(b, c) = %v, want 0.2", w)
	}
	if w, _ := g.Weight("c", "a"); math.Abs(w-0.1) > 1e-9 {
		t.Errorf("Weight(c, a) = %v, want 0.1", w)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
}

func TestThresholdRemoveCycleRejectsHiddenEdge(t *testing.T) {
	g, _ := NewThreshold[string](1.0)
	_ = g.AddEdge("a", "b", 0.5)
	_ = g.AddEdge("b", "a", 2)

	err := g.RemoveCycle([]string{"a", "b"})
	if !errors.Is(err, errors.ErrCodeInvalidExpansionState) {
		t.Fatalf("RemoveCycle error = %v, want INVALID_EXPANSION_STATE", err)
	}
}

func TestNewThresholdRejects(t *testing.T) {
	for _, floor := range []float64{-0.1, math.Inf(1), math.NaN()} {
		if _, err := NewThreshold[int](floor); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("NewThreshold(%v) error = %v, want INVALID_INPUT", floor, err)
		}
	}
}
