package bench

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/matzehuels/toporder/pkg/digraph"
	"github.com/matzehuels/toporder/pkg/errors"
	"github.com/matzehuels/toporder/pkg/observability"
	"github.com/matzehuels/toporder/pkg/order"
)

// MinWeight is the smallest weight a run inserts. Draws at or below it are
// discarded and redrawn.
const MinWeight = 1e-4

// cancelCheckInterval is the number of insertions between context checks.
const cancelCheckInterval = 256

var validate = validator.New()

// Config describes one run.
type Config struct {
	Nodes int          `json:"nodes" validate:"min=1"`
	Edges int          `json:"edges" validate:"min=0"`
	Store digraph.Kind `json:"store" validate:"omitempty,oneof=exact threshold"`
	Floor float64      `json:"floor" validate:"min=0"`
	Seed  uint64       `json:"seed"`
	// Check verifies the order invariant after every insertion. It makes
	// runs much slower and is meant for soak testing.
	Check bool `json:"check"`
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid bench config")
	}
	return nil
}

// Result describes a finished run.
type Result struct {
	RunID    string        `json:"run_id"`
	Config   Config        `json:"config"`
	Duration time.Duration `json:"duration_ns"`
	// Indexed is the number of nodes holding an index at the end.
	Indexed int `json:"indexed"`
	// Visible is the number of visible edges left after cycle collapses.
	Visible int `json:"visible"`
}

// PerInsert returns the mean time per insertion.
func (r Result) PerInsert() time.Duration {
	if r.Config.Edges == 0 {
		return 0
	}
	return r.Duration / time.Duration(r.Config.Edges)
}

// Run performs one randomized insertion run. Only the insertions are timed;
// store and maintainer construction are not.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	g, err := digraph.New[int](digraph.Options{Kind: cfg.Store, Floor: cfg.Floor})
	if err != nil {
		return Result{}, err
	}
	m := order.New(g, logger)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	res := Result{RunID: uuid.NewString(), Config: cfg}
	hooks := observability.Bench()
	hooks.OnRunStart(ctx, res.RunID, cfg.Nodes, cfg.Edges)
	logger.Debug("bench run started", "run", res.RunID, "nodes", cfg.Nodes, "edges", cfg.Edges, "store", cfg.Store, "seed", cfg.Seed)

	start := time.Now()
	err = insertRandom(ctx, m, rng, cfg)
	res.Duration = time.Since(start)
	res.Indexed = m.Len()
	res.Visible = g.EdgeCount()

	hooks.OnRunComplete(ctx, res.RunID, res.Duration, err)
	if err != nil {
		return res, err
	}
	logger.Debug("bench run finished", "run", res.RunID, "duration", res.Duration, "visible", res.Visible)
	return res, nil
}

func insertRandom(ctx context.Context, m *order.Maintainer[int], rng *rand.Rand, cfg Config) error {
	for i := 0; i < cfg.Edges; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		w := rng.Float64()
		for w <= MinWeight {
			w = rng.Float64()
		}
		from, to := rng.IntN(cfg.Nodes), rng.IntN(cfg.Nodes)
		if err := m.AddEdge(from, to, w); err != nil {
			return err
		}
		if cfg.Check {
			if err := order.CheckAll(m); err != nil {
				return err
			}
		}
	}
	return nil
}
