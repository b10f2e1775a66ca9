package grid

import (
	"fmt"
	"math"
)

// Grid is a rows×cols board with a start and a goal anchor.
// Cells are stored sparsely; see DefaultCell.
//
// A Grid is not safe for concurrent mutation. Concurrent readers are fine,
// and the evaluator gives every algorithm its own Clone anyway.
type Grid struct {
	rows, cols  int
	start, goal Position
	cells       map[Position]Cell
}

// New constructs a rows×cols Grid. Start defaults to (0,0) and Goal to
// (rows-1, cols-1); both are clamped into the grid.
// Returns ErrInvalidDimensions if rows or cols is not positive, or
// ErrNegativeWeight if WithWeights received a negative weight.
// Complexity: O(len(obstacles) + len(weights)).
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make(map[Position]Cell, len(o.obstacles)+len(o.weights)),
	}
	g.start = g.clamp(Position{0, 0})
	g.goal = g.clamp(Position{rows - 1, cols - 1})
	if o.start != nil {
		g.start = g.clamp(*o.start)
	}
	if o.goal != nil {
		g.goal = g.clamp(*o.goal)
	}

	for _, p := range o.obstacles {
		if !g.InBounds(p) {
			continue
		}
		g.cells[p] = Cell{Weight: DefaultCell.Weight, Obstacle: true}
	}
	for p, w := range o.weights {
		if !g.InBounds(p) || g.cells[p].Obstacle {
			continue // obstacle wins
		}
		g.cells[p] = Cell{Weight: w}
	}

	return g, nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(rows, cols int, opts ...Option) *Grid {
	g, err := New(rows, cols, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) clamp(p Position) Position {
	return Position{
		Row: max(0, min(g.rows-1, p.Row)),
		Col: max(0, min(g.cols-1, p.Col)),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start anchor.
func (g *Grid) Start() Position { return g.start }

// Goal returns the goal anchor.
func (g *Grid) Goal() Position { return g.goal }

// InBounds reports whether p lies within [0,Rows) × [0,Cols).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Cell returns the stored cell at p, or DefaultCell when none is stored.
func (g *Grid) Cell(p Position) Cell {
	if c, ok := g.cells[p]; ok {
		return c
	}
	return DefaultCell
}

// IsWalkable reports whether p is in bounds and not an obstacle.
func (g *Grid) IsWalkable(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return !g.cells[p].Obstacle
}

// Weight returns the movement weight of p (1.0 for default cells).
// The weight of an obstacle is meaningless since it is never entered.
func (g *Grid) Weight(p Position) float64 {
	return g.Cell(p).Weight
}

// Neighbors returns the walkable 4-neighbors of p in the order
// up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		q := Position{p.Row + d.Row, p.Col + d.Col}
		if g.IsWalkable(q) {
			out = append(out, q)
		}
	}
	return out
}

// Cost returns the cost of moving from current into neighbor,
// which is the weight of neighbor.
func (g *Grid) Cost(_ Position, neighbor Position) float64 {
	return g.Weight(neighbor)
}

// Clone returns a deep copy; no mutable state is shared with g.
// Complexity: O(K), K = number of stored cells.
func (g *Grid) Clone() *Grid {
	cells := make(map[Position]Cell, len(g.cells))
	for p, c := range g.cells {
		cells[p] = c
	}
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		start: g.start,
		goal:  g.goal,
		cells: cells,
	}
}

// Matrix expands the sparse storage into a dense [row][col] slice.
// Complexity: O(R×C).
func (g *Grid) Matrix() [][]Cell {
	m := make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		m[r] = make([]Cell, g.cols)
		for c := 0; c < g.cols; c++ {
			m[r][c] = g.Cell(Position{r, c})
		}
	}
	return m
}

// SetStart moves the start anchor, clamping it into the grid.
func (g *Grid) SetStart(p Position) { g.start = g.clamp(p) }

// SetGoal moves the goal anchor, clamping it into the grid.
func (g *Grid) SetGoal(p Position) { g.goal = g.clamp(p) }

// SetCell stores c at p. Storing DefaultCell removes the entry.
func (g *Grid) SetCell(p Position, c Cell) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if c.Weight < 0 {
		return fmt.Errorf("%w: %v at %s", ErrNegativeWeight, c.Weight, p)
	}
	if c == DefaultCell {
		delete(g.cells, p)
		return nil
	}
	g.cells[p] = c
	return nil
}

// SetWeight makes p a walkable cell of weight w.
func (g *Grid) SetWeight(p Position, w float64) error {
	return g.SetCell(p, Cell{Weight: w})
}

// SetObstacle marks or clears an obstacle at p. Clearing restores the
// cell's previous weight.
func (g *Grid) SetObstacle(p Position, obstacle bool) error {
	c := g.Cell(p)
	c.Obstacle = obstacle
	return g.SetCell(p, c)
}

// ToggleObstacle flips the obstacle flag at p. The anchors cannot become
// obstacles; toggling them is a no-op returning false.
func (g *Grid) ToggleObstacle(p Position) (bool, error) {
	if p == g.start || p == g.goal {
		return false, nil
	}
	c := g.Cell(p)
	if err := g.SetObstacle(p, !c.Obstacle); err != nil {
		return false, err
	}
	return true, nil
}

// MinWalkableWeight returns the smallest weight over all walkable cells.
// Default cells count as DefaultCell.Weight whenever any exist.
func (g *Grid) MinWalkableWeight() float64 {
	lo := math.Inf(1)
	stored := 0
	for _, c := range g.cells {
		stored++
		if c.Obstacle {
			continue
		}
		lo = math.Min(lo, c.Weight)
	}
	if stored < g.rows*g.cols {
		lo = math.Min(lo, DefaultCell.Weight)
	}
	return lo
}

// Admissible reports whether every walkable cell weighs at least MinWeight,
// which keeps the Manhattan heuristic admissible.
func (g *Grid) Admissible() bool {
	return g.MinWalkableWeight() >= MinWeight
}
