package search

import "github.com/katalvlaran/gridpath/grid"

// BFS runs breadth-first search from g.Start to g.Goal.
// Nodes are marked visited on discovery; the path is shortest by hop
// count, not by weighted cost.
// Complexity: O(V) time and memory.
func BFS(g *grid.Grid) Result {
	start, goal := g.Start(), g.Goal()
	n := g.Rows() * g.Cols()

	queue := make([]grid.Position, 0, n)
	queue = append(queue, start)
	visited := map[grid.Position]bool{start: true}
	parent := newParentMap(start, n)
	order := []grid.Position{start}

	for qi := 0; qi < len(queue); qi++ {
		current := queue[qi]
		if current == goal {
			break
		}
		for _, nb := range g.Neighbors(current) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = current
			queue = append(queue, nb)
			order = append(order, nb)
		}
	}

	return finish(g, NameBFS, parent, len(visited), order)
}
