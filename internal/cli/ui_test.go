package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/toporder/pkg/bench"
	"github.com/matzehuels/toporder/pkg/metrics"
)

func TestRenderOrderTable(t *testing.T) {
	out := renderOrderTable([]string{"C", "A", "B"}, map[string]int{"C": 1, "A": 2, "B": 3})

	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		if strings.Contains(l, "A") || strings.Contains(l, "B") || strings.Contains(l, "C") {
			rows = append(rows, l)
		}
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 node rows, got %d:\n%s", len(rows), out)
	}
	for i, want := range []string{"C", "A", "B"} {
		if !strings.Contains(rows[i], want) {
			t.Errorf("row %d = %q, want node %s", i, rows[i], want)
		}
	}
}

func TestRenderBenchTable(t *testing.T) {
	out := renderBenchTable([]bench.Cell{
		{Nodes: 10, Edges: 20, Mean: 2 * time.Millisecond, Min: time.Millisecond, Max: 3 * time.Millisecond},
		{Nodes: 10, Edges: 0},
	})
	for _, want := range []string{"Nodes", "Per edge", "2ms", "100µs"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMetricsTable(t *testing.T) {
	out := renderMetricsTable([]metrics.Sample{
		{Name: "toporder_inserts_total", Labels: "path=reorder", Value: 3},
	})
	for _, want := range []string{"toporder_inserts_total", "path=reorder", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFmtDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1500 * time.Nanosecond, "1.5µs"},
		{1234567 * time.Nanosecond, "1.235ms"},
		{1234567890 * time.Nanosecond, "1.235s"},
	}
	for _, tt := range tests {
		if got := fmtDuration(tt.d); got != tt.want {
			t.Errorf("fmtDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	printSuccess(&buf, "done %d", 1)
	printWarning(&buf, "careful")
	printInfo(&buf, "note")
	printFile(&buf, "out.json")
	printKeyValue(&buf, "store", "exact")
	printStats(&buf, 4, 3)

	out := buf.String()
	for _, want := range []string{iconSuccess + " done 1", "careful", iconInfo + " note", "out.json", "exact", "4 nodes, 3 edges"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
