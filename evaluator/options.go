package evaluator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for construction.
var (
	// ErrNoAlgorithms indicates WithAlgorithms was given an empty set.
	ErrNoAlgorithms = errors.New("evaluator: no algorithms")

	// ErrInvalidAlgorithm indicates an algorithm with an empty name or nil Run.
	ErrInvalidAlgorithm = errors.New("evaluator: invalid algorithm")

	// ErrDuplicateAlgorithm indicates two algorithms sharing a name.
	ErrDuplicateAlgorithm = errors.New("evaluator: duplicate algorithm name")

	// ErrNilGrid indicates Evaluate was called without a grid.
	ErrNilGrid = errors.New("evaluator: nil grid")
)

// Option configures an Evaluator. Invalid values are recorded and returned
// by New.
type Option func(*Evaluator)

// WithAlgorithms replaces the default suite (search.Algorithms()).
func WithAlgorithms(algos ...search.Algorithm) Option {
	return func(e *Evaluator) {
		if len(algos) == 0 {
			e.optErr = ErrNoAlgorithms
			return
		}
		seen := make(map[string]bool, len(algos))
		for _, a := range algos {
			if a.Name == "" || a.Run == nil {
				e.optErr = fmt.Errorf("%w: %q", ErrInvalidAlgorithm, a.Name)
				return
			}
			if seen[a.Name] {
				e.optErr = fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, a.Name)
				return
			}
			seen[a.Name] = true
		}
		e.algorithms = append([]search.Algorithm(nil), algos...)
	}
}

// WithLogger sets the structured logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics registers the evaluator metrics on reg. Registering twice on
// the same registerer panics, as with promauto.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Evaluator) {
		if reg != nil {
			e.metrics = newMetrics(reg)
		}
	}
}

// WithTracer overrides the package tracer. Nil is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(e *Evaluator) {
		if t != nil {
			e.tracer = t
		}
	}
}
