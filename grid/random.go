package grid

import (
	"fmt"
	"math"
	"math/rand"
)

// RandomOptions tunes Random.
type RandomOptions struct {
	// ObstacleRatio is the probability that a cell becomes an obstacle.
	ObstacleRatio float64
	// WeightedRatio is the probability that a non-obstacle cell receives a
	// random weight from WeightRange.
	WeightedRatio float64
	// WeightRange bounds random weights, inclusive. Rounded to 2 decimals.
	WeightRange [2]float64
	// Seed drives the generator; equal seeds give equal grids.
	Seed int64
	// EnsureConnected re-rolls until start and goal are connected,
	// giving up after MaxAttempts.
	EnsureConnected bool
	// MaxAttempts bounds re-rolls when EnsureConnected is set.
	MaxAttempts int
}

// DefaultRandomOptions returns 20% obstacles, 20% weighted cells with
// weights in [1.5, 5.0], seed 0, no connectivity guarantee.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		ObstacleRatio: 0.2,
		WeightedRatio: 0.2,
		WeightRange:   [2]float64{1.5, 5.0},
		MaxAttempts:   64,
	}
}

func (o RandomOptions) validate() error {
	switch {
	case o.ObstacleRatio < 0 || o.WeightedRatio < 0 || o.ObstacleRatio+o.WeightedRatio > 1:
		return fmt.Errorf("%w: ratios %v/%v", ErrInvalidRandomOptions, o.ObstacleRatio, o.WeightedRatio)
	case o.WeightRange[0] < 0 || o.WeightRange[1] < o.WeightRange[0]:
		return fmt.Errorf("%w: weight range %v", ErrInvalidRandomOptions, o.WeightRange)
	case o.EnsureConnected && o.MaxAttempts <= 0:
		return fmt.Errorf("%w: MaxAttempts must be positive", ErrInvalidRandomOptions)
	}
	return nil
}

// Random builds a rows×cols grid with start (0,0) and goal (rows-1,cols-1).
// Each other cell independently becomes an obstacle with ObstacleRatio,
// else a weighted cell with WeightedRatio, else stays default. The anchors
// are never touched.
//
// With EnsureConnected, successive rolls reuse the same generator so the
// result is still a pure function of the options.
func Random(rows, cols int, opts RandomOptions) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	attempts := 1
	if opts.EnsureConnected {
		attempts = opts.MaxAttempts
	}
	for i := 0; i < attempts; i++ {
		g, err := roll(rows, cols, opts, rng)
		if err != nil {
			return nil, err
		}
		if !opts.EnsureConnected || g.Connected(g.start, g.goal) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: after %d attempts", ErrNotConnected, attempts)
}

func roll(rows, cols int, opts RandomOptions, rng *rand.Rand) (*Grid, error) {
	start, goal := Position{0, 0}, Position{rows - 1, cols - 1}
	var obstacles []Position
	weights := make(map[Position]float64)
	lo, hi := opts.WeightRange[0], opts.WeightRange[1]

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := Position{r, c}
			if p == start || p == goal {
				continue
			}
			roll := rng.Float64()
			switch {
			case roll < opts.ObstacleRatio:
				obstacles = append(obstacles, p)
			case roll < opts.ObstacleRatio+opts.WeightedRatio:
				w := lo + rng.Float64()*(hi-lo)
				weights[p] = math.Round(w*100) / 100
			}
		}
	}
	return New(rows, cols,
		WithStart(start),
		WithGoal(goal),
		WithObstacles(obstacles...),
		WithWeights(weights),
	)
}
