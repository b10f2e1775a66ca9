package preset

import "github.com/katalvlaran/gridpath/grid"

// Stock preset names, in the order Builtin registers them.
const (
	Small    = "5x5"
	Medium   = "10x10"
	Large    = "15x15"
	Maze     = "Maze"
	Weighted = "Weighted"
)

// Builtin returns a new registry holding the stock layouts. Every stock
// grid starts at (0,0) and ends at the bottom-right corner.
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range []struct {
		name string
		g    *grid.Grid
	}{
		{Small, small()},
		{Medium, medium()},
		{Large, large()},
		{Maze, maze()},
		{Weighted, weighted()},
	} {
		if err := r.Register(p.name, p.g); err != nil {
			panic(err) // stock names are unique
		}
	}
	return r
}

func small() *grid.Grid {
	return grid.MustNew(5, 5, grid.WithObstacles(
		grid.Pos(1, 1), grid.Pos(1, 2), grid.Pos(2, 1),
	))
}

func medium() *grid.Grid {
	return grid.MustNew(10, 10, grid.WithObstacles(
		grid.Pos(3, 3), grid.Pos(3, 4), grid.Pos(3, 5),
		grid.Pos(4, 5), grid.Pos(5, 5), grid.Pos(6, 5), grid.Pos(7, 5),
	))
}

// large crosses a horizontal wall on row 5 with a vertical one on column 7.
func large() *grid.Grid {
	var walls []grid.Position
	for c := 1; c <= 13; c++ {
		walls = append(walls, grid.Pos(5, c))
	}
	for r := 3; r <= 11; r++ {
		walls = append(walls, grid.Pos(r, 7))
	}
	return grid.MustNew(15, 15, grid.WithObstacles(walls...))
}

// maze encloses the interior in a closed ring of walls, so every route
// runs along the outer border.
func maze() *grid.Grid {
	var walls []grid.Position
	for i := 1; i <= 8; i++ {
		walls = append(walls, grid.Pos(1, i))
	}
	for i := 2; i <= 8; i++ {
		walls = append(walls, grid.Pos(i, 1), grid.Pos(8, i), grid.Pos(i, 8))
	}
	return grid.MustNew(10, 10, grid.WithObstacles(walls...))
}

func weighted() *grid.Grid {
	return grid.MustNew(8, 8,
		grid.WithObstacles(grid.Pos(3, 3), grid.Pos(3, 4), grid.Pos(4, 3)),
		grid.WithWeights(map[grid.Position]float64{
			grid.Pos(1, 1): 3,
			grid.Pos(2, 2): 2.5,
			grid.Pos(2, 5): 4,
			grid.Pos(5, 2): 2,
			grid.Pos(6, 6): 5,
		}),
	)
}
