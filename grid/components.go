package grid

// Components finds all 4-connected regions of walkable cells.
// Components are discovered in row-major order of their first cell, and
// each component lists its cells in BFS discovery order.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for the seen flags and the output.
func (g *Grid) Components() [][]Position {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]Position

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p0 := Position{r, c}
			if !g.IsWalkable(p0) || seen[g.index(p0)] {
				continue
			}
			seen[g.index(p0)] = true
			comps = append(comps, g.flood(p0, seen))
		}
	}
	return comps
}

// Connected reports whether a walkable path joins a and b.
// Time: O(R·C) worst case; stops as soon as b is reached.
func (g *Grid) Connected(a, b Position) bool {
	if !g.IsWalkable(a) || !g.IsWalkable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.rows*g.cols)
	seen[g.index(a)] = true
	queue := []Position{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi]) {
			if v == b {
				return true
			}
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

// flood collects the component containing p0. p0 must already be marked seen.
func (g *Grid) flood(p0 Position, seen []bool) []Position {
	queue := []Position{p0}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi]) {
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// index maps p to its row-major index: Row*Cols + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
