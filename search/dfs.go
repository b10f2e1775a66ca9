package search

import "github.com/katalvlaran/gridpath/grid"

// DFS runs depth-first search with an explicit LIFO stack. Nodes are
// marked visited when pushed, so the resulting path reflects stack order
// and carries no optimality guarantee.
// Complexity: O(V) time and memory.
func DFS(g *grid.Grid) Result {
	start, goal := g.Start(), g.Goal()

	stack := []grid.Position{start}
	visited := map[grid.Position]bool{start: true}
	parent := newParentMap(start, g.Rows()*g.Cols())
	order := []grid.Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == goal {
			break
		}
		for _, nb := range g.Neighbors(current) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = current
			stack = append(stack, nb)
			order = append(order, nb)
		}
	}

	return finish(g, NameDFS, parent, len(visited), order)
}
