package search

import "github.com/katalvlaran/gridpath/grid"

// Bidirectional runs two breadth-first searches, one rooted at the start
// and one at the goal. Each round expands one full layer from the start
// side, then one full layer from the goal side. The first node discovered
// by one side that the other side has already visited becomes the meeting
// node and stops the search.
//
// The path is hop-shortest; its cost is computed afterwards from the grid
// weights and is not guaranteed minimal.
// Complexity: O(V) time and memory.
func Bidirectional(g *grid.Grid) Result {
	start, goal := g.Start(), g.Goal()
	if start == goal {
		return trivial(NameBidirectional, start)
	}

	n := g.Rows() * g.Cols()
	fwd := newLayeredSide(start, n)
	bwd := newLayeredSide(goal, n)
	order := []grid.Position{start, goal}

	var meet *grid.Position
	for len(fwd.queue) > 0 && len(bwd.queue) > 0 {
		if meet = fwd.expandLayer(g, bwd, &order); meet != nil {
			break
		}
		if meet = bwd.expandLayer(g, fwd, &order); meet != nil {
			break
		}
	}

	explored := len(fwd.visited)
	for p := range bwd.visited {
		if !fwd.visited[p] {
			explored++
		}
	}
	return finishJoined(g, NameBidirectional, meet, fwd.parent, bwd.parent, explored, order)
}

// layeredSide is one BFS frontier of a bidirectional search.
type layeredSide struct {
	queue   []grid.Position
	visited map[grid.Position]bool
	parent  parentMap
}

func newLayeredSide(root grid.Position, sizeHint int) *layeredSide {
	return &layeredSide{
		queue:   []grid.Position{root},
		visited: map[grid.Position]bool{root: true},
		parent:  newParentMap(root, sizeHint),
	}
}

// expandLayer dequeues exactly the nodes present when it was called and
// enqueues their unvisited neighbors. It returns the meeting node as soon
// as a discovered neighbor is already visited by other.
func (s *layeredSide) expandLayer(g *grid.Grid, other *layeredSide, order *[]grid.Position) *grid.Position {
	width := len(s.queue)
	for i := 0; i < width; i++ {
		current := s.queue[0]
		s.queue = s.queue[1:]
		for _, nb := range g.Neighbors(current) {
			if s.visited[nb] {
				continue
			}
			s.visited[nb] = true
			s.parent[nb] = current
			*order = append(*order, nb)
			if other.visited[nb] {
				meet := nb
				return &meet
			}
			s.queue = append(s.queue, nb)
		}
	}
	return nil
}
