package search

import (
	"math"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// parentMap records the predecessor of every reached node. The root maps
// to itself, so membership alone tells whether a node was reached.
type parentMap map[grid.Position]grid.Position

func newParentMap(root grid.Position, sizeHint int) parentMap {
	pm := make(parentMap, sizeHint)
	pm[root] = root
	return pm
}

// walk follows parent links from p and returns p..root.
func (pm parentMap) walk(p grid.Position) []grid.Position {
	var path []grid.Position
	for {
		path = append(path, p)
		prev := pm[p]
		if prev == p {
			return path
		}
		p = prev
	}
}

// chainTo returns root..p.
func (pm parentMap) chainTo(p grid.Position) []grid.Position {
	path := pm.walk(p)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// joinAt builds start..meet..goal from a start-rooted and a goal-rooted
// parent map. meet must be reached by both.
func joinAt(meet grid.Position, fromStart, fromGoal parentMap) []grid.Position {
	path := fromStart.chainTo(meet)
	if next := fromGoal[meet]; next != meet {
		path = append(path, fromGoal.walk(next)...)
	}
	return path
}

// PathCost sums g.Cost over consecutive pairs of path, rounded to
// 4 decimals. Paths of length ≤ 1 cost 0.
func PathCost(g *grid.Grid, path []grid.Position) float64 {
	cost := 0.0
	for i := 1; i < len(path); i++ {
		cost += g.Cost(path[i-1], path[i])
	}
	return math.Round(cost*1e4) / 1e4
}

// TimedRun executes fn and stamps name and the elapsed wall-clock time on
// its result. It is the only place Duration is assigned.
func TimedRun(name string, fn func() Result) Result {
	start := time.Now()
	res := fn()
	res.Duration = time.Since(start)
	res.Name = name
	return res
}

// finish assembles a Result from a start-rooted parent map.
func finish(g *grid.Grid, name string, parent parentMap, explored int, order []grid.Position) Result {
	res := Result{
		Name:          name,
		ExploredNodes: explored,
		VisitedOrder:  order,
	}
	if _, ok := parent[g.Goal()]; !ok {
		res.Path = []grid.Position{}
		res.Cost = math.Inf(1)
		return res
	}
	res.Success = true
	res.Path = parent.chainTo(g.Goal())
	res.Cost = PathCost(g, res.Path)
	return res
}

// finishJoined assembles a Result for the bidirectional variants.
func finishJoined(g *grid.Grid, name string, meet *grid.Position, fromStart, fromGoal parentMap, explored int, order []grid.Position) Result {
	res := Result{
		Name:          name,
		ExploredNodes: explored,
		VisitedOrder:  order,
	}
	if meet == nil {
		res.Path = []grid.Position{}
		res.Cost = math.Inf(1)
		return res
	}
	res.Success = true
	res.Path = joinAt(*meet, fromStart, fromGoal)
	res.Cost = PathCost(g, res.Path)
	return res
}

// trivial is the start == goal result shared by the bidirectional variants.
func trivial(name string, p grid.Position) Result {
	return Result{
		Name:          name,
		Path:          []grid.Position{p},
		Cost:          0,
		ExploredNodes: 1,
		Success:       true,
		VisitedOrder:  []grid.Position{p},
	}
}
