package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var tracer = otel.Tracer("gridpath.evaluator")

// Evaluator runs a fixed set of algorithms as one batch.
// It holds no per-batch state and is safe for concurrent use.
type Evaluator struct {
	algorithms []search.Algorithm
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    *metrics // nil: metrics disabled

	optErr error
}

// New builds an Evaluator running search.Algorithms() unless
// WithAlgorithms says otherwise.
func New(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		algorithms: search.Algorithms(),
		logger:     slog.Default(),
		tracer:     tracer,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.optErr != nil {
		return nil, e.optErr
	}
	return e, nil
}

// Algorithms returns the names run by each batch, in registration order.
func (e *Evaluator) Algorithms() []string {
	names := make([]string, len(e.algorithms))
	for i, a := range e.algorithms {
		names[i] = a.Name
	}
	return names
}

// Evaluate runs every algorithm on its own clone of g and ranks the
// results under order.
//
// Steps:
//  1. Validate order; an invalid order runs nothing.
//  2. Clone g once per algorithm and submit all runs to a pool sized to
//     the algorithm count.
//  3. Collect results in completion order; a panic becomes search.Failed.
//  4. Select the best, then sort results by name for display.
//
// ctx only carries the trace; runs are neither cancelled nor timed out.
func (e *Evaluator) Evaluate(ctx context.Context, g *grid.Grid, order PriorityOrder) (*Outcome, error) {
	// 1) Validate inputs.
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	batchID := uuid.NewString()
	ctx, span := e.tracer.Start(ctx, "Evaluator.Evaluate",
		trace.WithAttributes(
			attribute.String("gridpath.batch_id", batchID),
			attribute.Int("gridpath.grid.rows", g.Rows()),
			attribute.Int("gridpath.grid.cols", g.Cols()),
			attribute.Int("gridpath.algorithms", len(e.algorithms)),
			attribute.String("gridpath.priority", order.String()),
		),
	)
	defer span.End()

	e.metrics.batch()
	started := time.Now()
	e.logger.Debug("evaluation started",
		slog.String("batch_id", batchID),
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()),
		slog.String("priority", order.String()),
	)

	// 2) Fan out, one clone per algorithm.
	var (
		mu      sync.Mutex
		results = make([]search.Result, 0, len(e.algorithms))
		pool    errgroup.Group
	)
	pool.SetLimit(len(e.algorithms))
	for _, a := range e.algorithms {
		a := a // per-iteration copy (go 1.21 loop semantics)
		clone := g.Clone()
		pool.Go(func() error {
			res := e.run(ctx, batchID, a, clone)
			// 3) Join in completion order.
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	_ = pool.Wait() // runs never return errors

	// 4) Rank, then sort for display. Best is copied out first.
	out := &Outcome{BatchID: batchID, Order: order}
	best, err := SelectBest(results, order)
	if err != nil {
		return nil, err
	}
	if best != nil {
		b := *best
		out.Best = &b
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	out.Results = results

	bestName := ""
	if out.Best != nil {
		bestName = out.Best.Name
	}
	span.SetAttributes(
		attribute.String("gridpath.best", bestName),
		attribute.Int("gridpath.succeeded", out.Succeeded()),
	)
	e.logger.Info("evaluation finished",
		slog.String("batch_id", batchID),
		slog.String("best", bestName),
		slog.Int("succeeded", out.Succeeded()),
		slog.Int("algorithms", len(results)),
		slog.Duration("elapsed", time.Since(started)),
	)
	return out, nil
}

// run executes one algorithm under TimedRun, converting a panic into the
// failed placeholder.
func (e *Evaluator) run(ctx context.Context, batchID string, a search.Algorithm, g *grid.Grid) (res search.Result) {
	_, span := e.tracer.Start(ctx, "Evaluator.run",
		trace.WithAttributes(attribute.String("gridpath.algorithm", a.Name)),
	)
	defer span.End()

	started := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = search.Failed(a.Name)
			span.SetStatus(codes.Error, fmt.Sprint(p))
			e.metrics.failure(a.Name)
			e.logger.Warn("algorithm panicked",
				slog.String("batch_id", batchID),
				slog.String("algorithm", a.Name),
				slog.Any("panic", p),
			)
		}
		e.metrics.observe(res, time.Since(started))
		span.SetAttributes(
			attribute.Bool("gridpath.success", res.Success),
			attribute.Int("gridpath.explored_nodes", res.ExploredNodes),
			attribute.Float64("gridpath.cost", res.Cost),
		)
		e.logger.Debug("algorithm finished",
			slog.String("batch_id", batchID),
			slog.String("algorithm", res.Name),
			slog.Bool("success", res.Success),
			slog.Float64("cost", res.Cost),
			slog.Int("explored", res.ExploredNodes),
			slog.Duration("duration", res.Duration),
		)
	}()

	return search.TimedRun(a.Name, func() search.Result { return a.Run(g) })
}
