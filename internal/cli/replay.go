package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toporder/pkg/digraph"
	toporderio "github.com/matzehuels/toporder/pkg/io"
	"github.com/matzehuels/toporder/pkg/observability"
	"github.com/matzehuels/toporder/pkg/order"
	"github.com/matzehuels/toporder/pkg/render/nodelink"
)

// replayOpts holds the command-line flags for the replay command.
type replayOpts struct {
	store    string  // edge store: exact or threshold
	floor    float64 // visibility floor of the threshold store
	epsilon  float64 // zero tolerance of the exact store
	check    bool    // verify the order after every insertion
	output   string  // order JSON output path
	dot      string  // DOT output path
	svg      string  // SVG output path
	png      string  // PNG output path
	weights  bool    // label diagram edges with their weights
	detailed bool    // add indices to diagram labels
	quiet    bool    // skip the order table
}

// replayCommand creates the replay command, which inserts an edge list into
// a fresh maintainer and reports the resulting order.
func (c *CLI) replayCommand() *cobra.Command {
	opts := replayOpts{store: string(digraph.KindExact)}

	cmd := &cobra.Command{
		Use:   "replay [edges.json|edges.yaml|edges.toml]",
		Short: "Insert an edge list and print the resulting order",
		Long: `Insert an edge list and print the resulting order.

Edges are inserted one at a time in file order. Cycles closed by an insertion
are collapsed by subtracting their lightest weight, so the final graph and
order can differ from the input.

The edge list is an object with an "edges" array of {from, to, weight}
records; weight defaults to 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			overrideString(flags, "store", &opts.store, c.config.Store)
			overrideFloat(flags, "floor", &opts.floor, c.config.Floor)
			overrideFloat(flags, "epsilon", &opts.epsilon, c.config.Epsilon)
			overrideBool(flags, "check", &opts.check, c.config.Check)
			return c.runReplay(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.store, "store", opts.store, "edge store: exact (default), threshold")
	cmd.Flags().Float64Var(&opts.floor, "floor", 0, "visibility floor (threshold store)")
	cmd.Flags().Float64Var(&opts.epsilon, "epsilon", 0, "zero tolerance (exact store, default 1e-4)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "verify the order after every insertion")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the order as JSON to this file")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write a DOT diagram to this file")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write an SVG diagram to this file")
	cmd.Flags().StringVar(&opts.png, "png", "", "write a PNG diagram to this file")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "label diagram edges with their weights")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "add node indices to diagram labels")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the order table")

	return cmd
}

// replayStats counts what happened to the inserted edges.
type replayStats struct {
	observability.NoopOrderHooks
	collapses int
	cancelled int
}

func (s *replayStats) OnCycleCollapse(int) { s.collapses++ }
func (s *replayStats) OnEdgeCancelled()    { s.cancelled++ }

// runReplay imports input, replays it and writes the requested outputs.
func (c *CLI) runReplay(ctx context.Context, stdout, stderr io.Writer, input string, opts replayOpts) error {
	logger := loggerFromContext(ctx)

	edges, err := toporderio.ImportEdges(input)
	if err != nil {
		return fmt.Errorf("load edges: %w", err)
	}
	logger.Debug("loaded edge list", "path", input, "edges", len(edges))

	kind, err := digraph.ParseKind(opts.store)
	if err != nil {
		return err
	}
	g, err := digraph.New[string](digraph.Options{Kind: kind, Floor: opts.floor, Epsilon: opts.epsilon})
	if err != nil {
		return err
	}
	m := order.New(g, logger)

	stats := &replayStats{}
	prev := observability.Order()
	observability.SetOrderHooks(stats)
	defer observability.SetOrderHooks(prev)

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, stderr, stdout, fmt.Sprintf("Replaying %d edges...", len(edges)))
	spinner.Start()
	if err := toporderio.Apply(m, edges, opts.check); err != nil {
		spinner.StopWithError("Replay failed")
		return fmt.Errorf("replay %s: %w", input, err)
	}
	if err := order.CheckAll(m); err != nil {
		spinner.StopWithError("Order check failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Replayed %d edges", len(edges)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess(stdout, "Replayed %s", input)
	printStats(stdout, m.Len(), g.EdgeCount())
	if stats.collapses > 0 || stats.cancelled > 0 {
		printWarning(stdout, "%d cycle collapses, %d inserted edges cancelled", stats.collapses, stats.cancelled)
	}
	if !opts.quiet {
		fmt.Fprintln(stdout, renderOrderTable(m.Order(), m.Indices()))
	}

	return c.writeReplayOutputs(ctx, stdout, m, opts)
}

// writeReplayOutputs writes every output file requested in opts.
func (c *CLI) writeReplayOutputs(ctx context.Context, stdout io.Writer, m *order.Maintainer[string], opts replayOpts) error {
	if opts.output != "" {
		if err := toporderio.ExportOrderJSON(m, opts.output); err != nil {
			return fmt.Errorf("write order: %w", err)
		}
		printFile(stdout, opts.output)
	}

	if opts.dot == "" && opts.svg == "" && opts.png == "" {
		return nil
	}
	dot := nodelink.ToDOT(m, nodelink.Options{Detailed: opts.detailed, Weights: opts.weights})

	if opts.dot != "" {
		if err := os.WriteFile(opts.dot, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
		printFile(stdout, opts.dot)
	}

	renders := []struct {
		path string
		fn   func(context.Context, string) ([]byte, error)
	}{
		{opts.svg, nodelink.RenderSVG},
		{opts.png, nodelink.RenderPNG},
	}
	for _, r := range renders {
		if r.path == "" {
			continue
		}
		start := time.Now()
		data, err := r.fn(ctx, dot)
		if err != nil {
			return fmt.Errorf("render %s: %w", r.path, err)
		}
		if err := os.WriteFile(r.path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", r.path, err)
		}
		loggerFromContext(ctx).Debug("rendered diagram", "path", r.path, "bytes", len(data), "took", time.Since(start))
		printFile(stdout, r.path)
	}
	return nil
}
