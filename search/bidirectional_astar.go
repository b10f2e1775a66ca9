package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// BidirectionalAStar runs two A* searches in lockstep: one from the start
// toward the goal and one from the goal toward the start, each with the
// Manhattan heuristic to its opposite anchor.
//
// Every relaxation checks whether the neighbor was already finalized by
// the opposite side; if so, g_side(neighbor) + g_other(neighbor) is a
// candidate total and the minimum over all such crossings is kept. Once a
// candidate exists and both frontiers are non-empty, the search stops when
// either frontier's smallest f reaches the best candidate: with a consistent
// heuristic, no path cheaper than best can pass through that side's
// unfinalized nodes. Otherwise it runs until both frontiers are exhausted.
//
// Optimal when the grid is admissible (Manhattan is then consistent).
// Complexity: O(V log V).
func BidirectionalAStar(g *grid.Grid) Result {
	start, goal := g.Start(), g.Goal()
	if start == goal {
		return trivial(NameBidirectionalAStar, start)
	}

	n := g.Rows() * g.Cols()
	fwd := newAStarSide(start, goal, n)
	bwd := newAStarSide(goal, start, n)
	order := []grid.Position{start, goal}

	var meet *grid.Position
	best := math.Inf(1)

	for fwd.pq.Len() > 0 || bwd.pq.Len() > 0 {
		// 1) One expansion from the start side, then one from the goal side.
		for _, side := range [2]struct{ this, other *astarSide }{{fwd, bwd}, {bwd, fwd}} {
			if p, total := side.this.step(g, side.other, &order, best); total < best {
				best = total
				meet = &p
			}
		}

		// 2) Stop once either side can no longer improve on best.
		if meet != nil && fwd.pq.Len() > 0 && bwd.pq.Len() > 0 {
			if max(fwd.pq.peek().value, bwd.pq.peek().value) >= best {
				break
			}
		}
	}

	explored := len(fwd.closed)
	for p := range bwd.closed {
		if !fwd.closed[p] {
			explored++
		}
	}
	return finishJoined(g, NameBidirectionalAStar, meet, fwd.parent, bwd.parent, explored, order)
}

// astarSide is one half of a bidirectional A* search.
type astarSide struct {
	target grid.Position // anchor this side heads toward
	pq     frontier
	gCost  map[grid.Position]float64
	parent parentMap
	closed map[grid.Position]bool
}

func newAStarSide(root, target grid.Position, sizeHint int) *astarSide {
	s := &astarSide{
		target: target,
		pq:     make(frontier, 0, sizeHint),
		gCost:  map[grid.Position]float64{root: 0},
		parent: newParentMap(root, sizeHint),
		closed: make(map[grid.Position]bool, sizeHint),
	}
	heap.Init(&s.pq)
	s.pq.push(0, root)
	return s
}

// step pops one entry and, unless it is stale, finalizes and relaxes it.
// It returns the crossing with the smallest total found during this step
// that beats best, or +Inf when there was none.
func (s *astarSide) step(g *grid.Grid, other *astarSide, order *[]grid.Position, best float64) (grid.Position, float64) {
	var meet grid.Position
	total := math.Inf(1)
	if s.pq.Len() == 0 {
		return meet, total
	}
	u := s.pq.pop().pos
	if s.closed[u] {
		return meet, total
	}
	s.closed[u] = true

	gu := s.gCost[u]
	for _, v := range g.Neighbors(u) {
		tentative := gu + g.Cost(u, v)
		if old, seen := s.gCost[v]; !seen || tentative < old {
			s.gCost[v] = tentative
			s.parent[v] = u
			s.pq.push(tentative+heuristic(v, s.target), v)
			*order = append(*order, v)
		}
		// Crossing check runs on every neighbor, improved or not.
		if other.closed[v] {
			if cand := tentative + other.gCost[v]; cand < best && cand < total {
				total = cand
				meet = v
			}
		}
	}
	return meet, total
}
