package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// GreedyBestFirst always expands the frontier node closest to the goal by
// Manhattan distance. No cumulative cost is tracked and nodes are marked
// visited on discovery, so the path is not optimal.
// Complexity: O(V log V).
func GreedyBestFirst(g *grid.Grid) Result {
	start, goal := g.Start(), g.Goal()

	pq := make(frontier, 0, g.Rows()+g.Cols())
	heap.Init(&pq)
	pq.push(heuristic(start, goal), start)
	visited := map[grid.Position]bool{start: true}
	parent := newParentMap(start, g.Rows()*g.Cols())
	order := []grid.Position{start}

	for pq.Len() > 0 {
		current := pq.pop().pos
		if current == goal {
			break
		}
		for _, nb := range g.Neighbors(current) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = current
			pq.push(heuristic(nb, goal), nb)
			order = append(order, nb)
		}
	}

	return finish(g, NameGreedyBestFirst, parent, len(visited), order)
}
