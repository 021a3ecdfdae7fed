package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toporder/pkg/errors"
)

// GridConfig sweeps node and edge counts. Cell (i, j) runs Base with
// Nodes + i*NodeStep nodes and Edges + j*EdgeStep edges, Repeat times.
type GridConfig struct {
	Base      Config `json:"base"`
	NodeSteps int    `json:"node_steps" validate:"min=1"`
	NodeStep  int    `json:"node_step" validate:"min=0"`
	EdgeSteps int    `json:"edge_steps" validate:"min=1"`
	EdgeStep  int    `json:"edge_step" validate:"min=0"`
	Repeat    int    `json:"repeat" validate:"min=1"`
	// Warmup runs every cell once before measuring and discards the result.
	Warmup bool `json:"warmup"`
}

// Cell is the averaged outcome of one grid point.
type Cell struct {
	Nodes int           `json:"nodes"`
	Edges int           `json:"edges"`
	Mean  time.Duration `json:"mean_ns"`
	Min   time.Duration `json:"min_ns"`
	Max   time.Duration `json:"max_ns"`
	Runs  []Result      `json:"runs"`
}

// Grid runs every cell of cfg in row-major order (nodes outer, edges
// inner). progress, when non-nil, is called after each finished cell. With
// a non-zero base seed, repetition r of every cell uses seed Base.Seed+r.
func Grid(ctx context.Context, cfg GridConfig, logger *log.Logger, progress func(Cell)) ([]Cell, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid grid config")
	}

	if cfg.Warmup {
		logger.Debug("warmup")
		for i := 0; i < cfg.NodeSteps; i++ {
			for j := 0; j < cfg.EdgeSteps; j++ {
				if _, err := Run(ctx, cfg.cell(i, j, 0), logger); err != nil {
					return nil, err
				}
			}
		}
	}

	cells := make([]Cell, 0, cfg.NodeSteps*cfg.EdgeSteps)
	for i := 0; i < cfg.NodeSteps; i++ {
		for j := 0; j < cfg.EdgeSteps; j++ {
			run := cfg.cell(i, j, 0)
			cell := Cell{Nodes: run.Nodes, Edges: run.Edges}
			var total time.Duration
			for r := 0; r < cfg.Repeat; r++ {
				res, err := Run(ctx, cfg.cell(i, j, r), logger)
				if err != nil {
					return cells, fmt.Errorf("nodes=%d edges=%d: %w", cell.Nodes, cell.Edges, err)
				}
				cell.Runs = append(cell.Runs, res)
				total += res.Duration
				if r == 0 || res.Duration < cell.Min {
					cell.Min = res.Duration
				}
				if res.Duration > cell.Max {
					cell.Max = res.Duration
				}
			}
			cell.Mean = total / time.Duration(cfg.Repeat)
			cells = append(cells, cell)
			if progress != nil {
				progress(cell)
			}
		}
	}
	return cells, nil
}

func (g GridConfig) cell(i, j, rep int) Config {
	c := g.Base
	c.Nodes += i * g.NodeStep
	c.Edges += j * g.EdgeStep
	if c.Seed != 0 {
		c.Seed += uint64(rep)
	}
	return c
}

// Report is the JSON document written by [WriteReport].
type Report struct {
	Grid  GridConfig `json:"grid"`
	Cells []Cell     `json:"cells"`
}

// WriteReport encodes the grid results as indented JSON.
func WriteReport(w io.Writer, cfg GridConfig, cells []Cell) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Report{Grid: cfg, Cells: cells}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
