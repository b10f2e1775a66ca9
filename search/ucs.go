package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// UniformCost runs uniform-cost search (Dijkstra from a single source,
// stopped at the goal). The frontier is keyed by cumulative cost g.
// Optimal for non-negative weights.
// Complexity: O(V log V).
func UniformCost(g *grid.Grid) Result {
	r := newCostRunner(g, nil)
	r.process()
	return finish(g, NameUniformCost, r.parent, len(r.closed), r.order)
}

// AStar runs A* with the Manhattan heuristic; the frontier is keyed by
// f = g + h. Optimal when the grid is admissible (see grid.Grid.Admissible).
// Complexity: O(V log V).
func AStar(g *grid.Grid) Result {
	goal := g.Goal()
	r := newCostRunner(g, func(p grid.Position) float64 { return heuristic(p, goal) })
	r.process()
	return finish(g, NameAStar, r.parent, len(r.closed), r.order)
}

// costRunner holds the mutable state of one best-first search over
// cumulative cost. A nil h makes it uniform-cost search.
type costRunner struct {
	g      *grid.Grid
	h      func(grid.Position) float64
	pq     frontier                  // lazy min-heap of (g+h, pos)
	gCost  map[grid.Position]float64 // best-known cost from start
	parent parentMap
	closed map[grid.Position]bool // finalized nodes
	order  []grid.Position
}

func newCostRunner(g *grid.Grid, h func(grid.Position) float64) *costRunner {
	n := g.Rows() * g.Cols()
	start := g.Start()
	r := &costRunner{
		g:      g,
		h:      h,
		pq:     make(frontier, 0, n),
		gCost:  map[grid.Position]float64{start: 0},
		parent: newParentMap(start, n),
		closed: make(map[grid.Position]bool, n),
		order:  []grid.Position{start},
	}
	heap.Init(&r.pq)
	r.pq.push(0, start)
	return r
}

// process pops until the goal is finalized or the frontier runs dry.
func (r *costRunner) process() {
	goal := r.g.Goal()
	for r.pq.Len() > 0 {
		// 1) Pop the smallest key; skip stale entries of finalized nodes.
		u := r.pq.pop().pos
		if r.closed[u] {
			continue
		}
		// 2) u is final.
		r.closed[u] = true
		if u == goal {
			return
		}
		// 3) Relax outgoing moves.
		r.relax(u)
	}
}

// relax pushes a fresh entry for every neighbor whose cost strictly improves.
func (r *costRunner) relax(u grid.Position) {
	gu := r.gCost[u]
	for _, v := range r.g.Neighbors(u) {
		tentative := gu + r.g.Cost(u, v)
		if old, seen := r.gCost[v]; seen && tentative >= old {
			continue
		}
		r.gCost[v] = tentative
		r.parent[v] = u
		key := tentative
		if r.h != nil {
			key += r.h(v)
		}
		r.pq.push(key, v)
		r.order = append(r.order, v)
	}
}
