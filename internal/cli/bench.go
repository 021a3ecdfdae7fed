package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toporder/pkg/bench"
	"github.com/matzehuels/toporder/pkg/digraph"
	"github.com/matzehuels/toporder/pkg/metrics"
	"github.com/matzehuels/toporder/pkg/observability"
)

const (
	defaultBenchNodes = 100
	defaultBenchEdges = 500
)

// benchOpts holds the command-line flags for the bench command.
type benchOpts struct {
	grid    bench.GridConfig
	store   string
	output  string // JSON report path
	metrics bool   // collect and print Prometheus metrics
}

// benchCommand creates the bench command for timing random insertion runs.
func (c *CLI) benchCommand() *cobra.Command {
	opts := benchOpts{
		grid: bench.GridConfig{
			Base:      bench.Config{Nodes: defaultBenchNodes, Edges: defaultBenchEdges},
			NodeSteps: 1,
			EdgeSteps: 1,
			Repeat:    1,
		},
		store: string(digraph.KindExact),
	}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time random insertion runs",
		Long: `Time random insertion runs.

Each run inserts random edges with weights drawn uniformly from (0, 1) between
random nodes into an empty maintainer and times the insertions. Runs are laid
out on a grid: --node-steps rows of --node-step more nodes each, and
--edge-steps columns of --edge-step more edges each. Every cell is repeated
--repeat times and averaged.

A fixed --seed makes the sequence of inserted edges reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			base := &opts.grid.Base
			overrideString(flags, "store", &opts.store, c.config.Store)
			overrideFloat(flags, "floor", &base.Floor, c.config.Floor)
			overrideBool(flags, "check", &base.Check, c.config.Check)
			overrideInt(flags, "nodes", &base.Nodes, c.config.Bench.Nodes)
			overrideInt(flags, "edges", &base.Edges, c.config.Bench.Edges)
			overrideUint(flags, "seed", &base.Seed, c.config.Bench.Seed)
			overrideInt(flags, "repeat", &opts.grid.Repeat, c.config.Bench.Repeat)
			overrideBool(flags, "warmup", &opts.grid.Warmup, c.config.Bench.Warmup)

			kind, err := digraph.ParseKind(opts.store)
			if err != nil {
				return err
			}
			base.Store = kind
			return c.runBench(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	base := &opts.grid.Base
	cmd.Flags().IntVar(&base.Nodes, "nodes", base.Nodes, "number of nodes")
	cmd.Flags().IntVar(&base.Edges, "edges", base.Edges, "number of edges to insert")
	cmd.Flags().StringVar(&opts.store, "store", opts.store, "edge store: exact (default), threshold")
	cmd.Flags().Float64Var(&base.Floor, "floor", 0, "visibility floor (threshold store)")
	cmd.Flags().Uint64Var(&base.Seed, "seed", 0, "random seed (0 draws a fresh seed per run)")
	cmd.Flags().BoolVar(&base.Check, "check", false, "verify the order after every insertion")
	cmd.Flags().IntVar(&opts.grid.Repeat, "repeat", opts.grid.Repeat, "runs per grid cell")
	cmd.Flags().IntVar(&opts.grid.NodeSteps, "node-steps", opts.grid.NodeSteps, "number of node counts")
	cmd.Flags().IntVar(&opts.grid.NodeStep, "node-step", 0, "node count increment between rows")
	cmd.Flags().IntVar(&opts.grid.EdgeSteps, "edge-steps", opts.grid.EdgeSteps, "number of edge counts")
	cmd.Flags().IntVar(&opts.grid.EdgeStep, "edge-step", 0, "edge count increment between columns")
	cmd.Flags().BoolVar(&opts.grid.Warmup, "warmup", false, "run every cell once before measuring")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write a JSON report to this file")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "collect and print insertion metrics")

	return cmd
}

// runBench runs the grid and prints the summary table.
func (c *CLI) runBench(ctx context.Context, stdout, stderr io.Writer, opts benchOpts) error {
	logger := loggerFromContext(ctx)

	var reg *metrics.Registry
	if opts.metrics {
		reg = metrics.NewRegistry()
		prevOrder, prevBench := observability.Order(), observability.Bench()
		observability.SetOrderHooks(reg)
		observability.SetBenchHooks(reg)
		defer func() {
			observability.SetOrderHooks(prevOrder)
			observability.SetBenchHooks(prevBench)
		}()
	}

	total := opts.grid.NodeSteps * opts.grid.EdgeSteps
	done := 0
	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, stderr, stdout, fmt.Sprintf("Running %d cells x %d runs...", total, opts.grid.Repeat))
	spinner.Start()
	cells, err := bench.Grid(ctx, opts.grid, logger, func(cell bench.Cell) {
		done++
		logger.Debug("cell done", "cell", done, "of", total, "nodes", cell.Nodes, "edges", cell.Edges, "mean", cell.Mean)
	})
	if err != nil {
		if ctx.Err() != nil {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Benchmark failed")
		return fmt.Errorf("bench: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Ran %d cells", len(cells)))

	fmt.Fprintln(stdout, StyleTitle.Render("Benchmark"))
	printKeyValue(stdout, "store", string(opts.grid.Base.Store))
	if opts.grid.Base.Store == digraph.KindThreshold {
		printKeyValue(stdout, "floor", strconv.FormatFloat(opts.grid.Base.Floor, 'g', -1, 64))
	}
	if seed := opts.grid.Base.Seed; seed != 0 {
		printKeyValue(stdout, "seed", strconv.FormatUint(seed, 10))
	}
	printKeyValue(stdout, "repeat", strconv.Itoa(opts.grid.Repeat))
	fmt.Fprintln(stdout, renderBenchTable(cells))

	if opts.output != "" {
		if err := writeReportFile(opts.output, opts.grid, cells); err != nil {
			return err
		}
		printFile(stdout, opts.output)
	}

	if reg != nil {
		samples, err := reg.Snapshot()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		printInfo(stdout, "Metrics")
		fmt.Fprintln(stdout, renderMetricsTable(samples))
	}
	return nil
}

func writeReportFile(path string, grid bench.GridConfig, cells []bench.Cell) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()
	if err := bench.WriteReport(f, grid, cells); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
