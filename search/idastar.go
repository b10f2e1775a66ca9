package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// IDAStar runs iterative-deepening A*. Each iteration is a depth-first
// probe bounded by an f-limit that starts at h(start, goal). Within a probe
// only nodes on the current path are rejected, so a cell may be re-entered
// from different branches. The smallest pruned f becomes the next bound;
// an unbounded (+Inf) bound means no path exists.
//
// The probe keeps an explicit frame stack instead of recursing, so memory
// is bounded by the path depth and not by the goroutine stack.
//
// ExploredNodes counts the distinct cells ever entered by any probe.
// Complexity: exponential in the worst case; O(depth) memory per probe.
func IDAStar(g *grid.Grid) Result {
	return idaStar(g, nil)
}

// probeResult is the tagged outcome of one bounded probe: either the goal
// was found along path, or bound holds the smallest f that exceeded the limit.
type probeResult struct {
	found bool
	path  []grid.Position
	bound float64
}

func foundAt(path []grid.Position) probeResult { return probeResult{found: true, path: path} }
func boundAt(f float64) probeResult           { return probeResult{bound: f} }

// idaFrame is one level of the explicit depth-first stack.
type idaFrame struct {
	pos  grid.Position
	g    float64
	nbrs []grid.Position
	next int     // index of the next neighbor to try
	min  float64 // smallest pruned f seen below this frame
}

type idaRunner struct {
	g        *grid.Grid
	goal     grid.Position
	explored map[grid.Position]bool
	order    []grid.Position
}

// idaStar is IDAStar with an optional hook observing every bound used.
func idaStar(g *grid.Grid, onBound func(float64)) Result {
	start, goal := g.Start(), g.Goal()
	r := &idaRunner{
		g:        g,
		goal:     goal,
		explored: map[grid.Position]bool{start: true},
		order:    []grid.Position{start},
	}

	bound := heuristic(start, goal)
	var path []grid.Position
	for {
		if onBound != nil {
			onBound(bound)
		}
		res := r.probe(bound)
		if res.found {
			path = res.path
			break
		}
		if math.IsInf(res.bound, 1) {
			break
		}
		bound = res.bound
	}

	out := Result{
		Name:          NameIDAStar,
		ExploredNodes: len(r.explored),
		VisitedOrder:  r.order,
		Path:          []grid.Position{},
		Cost:          math.Inf(1),
	}
	if path != nil {
		out.Success = true
		out.Path = path
		out.Cost = PathCost(g, path)
	}
	return out
}

// probe performs one depth-first pass under limit.
func (r *idaRunner) probe(limit float64) probeResult {
	start := r.g.Start()
	if f := heuristic(start, r.goal); f > limit {
		return boundAt(f)
	}
	if start == r.goal {
		return foundAt([]grid.Position{start})
	}

	onPath := map[grid.Position]bool{start: true}
	stack := []idaFrame{{pos: start, nbrs: r.g.Neighbors(start), min: math.Inf(1)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 1) All neighbors tried: hand the smallest pruned f to the parent.
		if top.next == len(top.nbrs) {
			m := top.min
			delete(onPath, top.pos)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return boundAt(m)
			}
			if parent := &stack[len(stack)-1]; m < parent.min {
				parent.min = m
			}
			continue
		}

		// 2) Try the next neighbor not already on the current path.
		nb := top.nbrs[top.next]
		top.next++
		if onPath[nb] {
			continue
		}
		r.explored[nb] = true
		r.order = append(r.order, nb)

		gNb := top.g + r.g.Cost(top.pos, nb)
		f := gNb + heuristic(nb, r.goal)

		// 3) Prune above the limit, remembering the overshoot.
		if f > limit {
			if f < top.min {
				top.min = f
			}
			continue
		}

		// 4) Goal reached within the limit.
		if nb == r.goal {
			path := make([]grid.Position, 0, len(stack)+1)
			for _, fr := range stack {
				path = append(path, fr.pos)
			}
			return foundAt(append(path, nb))
		}

		// 5) Descend.
		onPath[nb] = true
		stack = append(stack, idaFrame{pos: nb, g: gNb, nbrs: r.g.Neighbors(nb), min: math.Inf(1)})
	}

	return boundAt(math.Inf(1))
}
