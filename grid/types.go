// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates rows or cols is not positive.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")
	// ErrNegativeWeight indicates a cell weight below zero.
	ErrNegativeWeight = errors.New("grid: cell weight must be non-negative")
	// ErrOutOfBounds indicates an edit targeted a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrInvalidRandomOptions indicates inconsistent RandomOptions.
	ErrInvalidRandomOptions = errors.New("grid: invalid random options")
	// ErrNotConnected indicates Random exhausted its attempts without
	// connecting start and goal.
	ErrNotConnected = errors.New("grid: start and goal are not connected")
)

// MinWeight is the lightest walkable weight for which the Manhattan
// heuristic stays admissible.
const MinWeight = 1.0

// Position identifies a cell by row and column.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: r, Col: c}.
func Pos(r, c int) Position {
	return Position{Row: r, Col: c}
}

// Less reports whether p precedes q in row-major order.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) float64 {
	return float64(abs(p.Row-q.Row) + abs(p.Col-q.Col))
}

// Adjacent reports whether p and q are 4-neighbors.
func (p Position) Adjacent(q Position) bool {
	return abs(p.Row-q.Row)+abs(p.Col-q.Col) == 1
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Cell holds the per-position attributes of a grid cell.
type Cell struct {
	Weight   float64 // movement cost charged on entry
	Obstacle bool    // obstacles are never traversed
}

// DefaultCell is the implicit value of every cell absent from the sparse map.
var DefaultCell = Cell{Weight: 1.0, Obstacle: false}

// neighborOffsets lists the 4-connected moves in the fixed order
// up, down, left, right.
var neighborOffsets = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Option configures a Grid built by New.
// Invalid options are recorded and surfaced as an error by New.
type Option func(*buildOptions)

type buildOptions struct {
	start, goal *Position
	obstacles   []Position
	weights     map[Position]float64
	err         error
}

// WithStart sets the start anchor. It is clamped into the grid.
func WithStart(p Position) Option {
	return func(o *buildOptions) {
		o.start = &p
	}
}

// WithGoal sets the goal anchor. It is clamped into the grid.
func WithGoal(p Position) Option {
	return func(o *buildOptions) {
		o.goal = &p
	}
}

// WithObstacles marks the given positions as obstacles.
// Out-of-bounds positions are ignored.
func WithObstacles(ps ...Position) Option {
	return func(o *buildOptions) {
		o.obstacles = append(o.obstacles, ps...)
	}
}

// WithWeights assigns weights to walkable cells. Weights given for obstacle
// positions are ignored; a negative weight makes New fail with
// ErrNegativeWeight.
func WithWeights(weights map[Position]float64) Option {
	return func(o *buildOptions) {
		if o.weights == nil {
			o.weights = make(map[Position]float64, len(weights))
		}
		for p, w := range weights {
			if w < 0 {
				o.err = fmt.Errorf("%w: %v at %s", ErrNegativeWeight, w, p)
				continue
			}
			o.weights[p] = w
		}
	}
}
