package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ------------------------------------------------------------------------
// 1. Contract shared by every algorithm.
// ------------------------------------------------------------------------

func TestAlgorithms_CanonicalOrder(t *testing.T) {
	var names []string
	for _, a := range search.Algorithms() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{
		"BFS", "DFS", "Uniform Cost", "Greedy Best-First",
		"A*", "IDA*", "Bidirectional", "Bidirectional A*",
	}, names)
}

func TestAlgorithms_StartEqualsGoal(t *testing.T) {
	g := grid.MustNew(3, 3, grid.WithStart(P(1, 1)), grid.WithGoal(P(1, 1)))
	for _, a := range search.Algorithms() {
		t.Run(a.Name, func(t *testing.T) {
			res := a.Run(g)
			assert.Equal(t, a.Name, res.Name)
			assert.True(t, res.Success)
			assert.Equal(t, []grid.Position{P(1, 1)}, res.Path)
			assert.Equal(t, 0.0, res.Cost)
			assert.Equal(t, 1, res.ExploredNodes)
			assert.Equal(t, P(1, 1), res.VisitedOrder[0])
		})
	}
}

// TestAlgorithms_NoPath walls the goal off completely.
//
//	S . #
//	. # .
//	# . G
func TestAlgorithms_NoPath(t *testing.T) {
	g := grid.MustNew(3, 3, grid.WithObstacles(P(0, 2), P(1, 1), P(2, 0)))
	for _, a := range search.Algorithms() {
		t.Run(a.Name, func(t *testing.T) {
			res := a.Run(g)
			assert.False(t, res.Success)
			assert.Empty(t, res.Path)
			assert.NotNil(t, res.Path)
			assert.True(t, math.IsInf(res.Cost, 1))
			assert.Positive(t, res.ExploredNodes)
		})
	}
}

func TestAlgorithms_DoNotMutateGrid(t *testing.T) {
	g := randomConnected(t, 7, 7, 3)
	before := g.Matrix()
	for _, a := range search.Algorithms() {
		_ = a.Run(g)
	}
	assert.Equal(t, before, g.Matrix())
}

// ------------------------------------------------------------------------
// 2. Hand-traced expectations on an open 3×3 grid.
// ------------------------------------------------------------------------

func TestBFS_Open3x3(t *testing.T) {
	g := grid.MustNew(3, 3)
	res := search.BFS(g)
	requireWellFormed(t, g, res)
	assert.Equal(t, []grid.Position{P(0, 0), P(1, 0), P(2, 0), P(2, 1), P(2, 2)}, res.Path)
	assert.Equal(t, 4.0, res.Cost)
	assert.Equal(t, 9, res.ExploredNodes)
	assert.Equal(t, []grid.Position{
		P(0, 0), P(1, 0), P(0, 1), P(2, 0), P(1, 1), P(0, 2), P(2, 1), P(1, 2), P(2, 2),
	}, res.VisitedOrder)
}

func TestDFS_Open3x3(t *testing.T) {
	g := grid.MustNew(3, 3)
	res := search.DFS(g)
	requireWellFormed(t, g, res)
	assert.Equal(t, []grid.Position{P(0, 0), P(0, 1), P(0, 2), P(1, 2), P(2, 2)}, res.Path)
	assert.Equal(t, 7, res.ExploredNodes)
}

func TestGreedy_Open3x3_RowMajorTieBreak(t *testing.T) {
	g := grid.MustNew(3, 3)
	res := search.GreedyBestFirst(g)
	requireWellFormed(t, g, res)
	// (0,1) and (1,0) tie on h; row-major order expands (0,1) first.
	assert.Equal(t, []grid.Position{P(0, 0), P(0, 1), P(0, 2), P(1, 2), P(2, 2)}, res.Path)
	assert.Equal(t, 7, res.ExploredNodes)
}

func TestAStar_Open3x3(t *testing.T) {
	g := grid.MustNew(3, 3)
	res := search.AStar(g)
	requireWellFormed(t, g, res)
	assert.Equal(t, []grid.Position{P(0, 0), P(0, 1), P(0, 2), P(1, 2), P(2, 2)}, res.Path)
	assert.Equal(t, 9, res.ExploredNodes)
}

func TestIDAStar_Open3x3(t *testing.T) {
	g := grid.MustNew(3, 3)
	res := search.IDAStar(g)
	requireWellFormed(t, g, res)
	assert.Equal(t, []grid.Position{P(0, 0), P(1, 0), P(2, 0), P(2, 1), P(2, 2)}, res.Path)
	assert.Equal(t, 4.0, res.Cost)
}

func TestBidirectional_Open3x3(t *testing.T) {
	g := grid.MustNew(3, 3)
	res := search.Bidirectional(g)
	requireWellFormed(t, g, res)
	// The goal side's second layer meets the start side at (0,2).
	assert.Equal(t, []grid.Position{P(0, 0), P(0, 1), P(0, 2), P(1, 2), P(2, 2)}, res.Path)
	assert.Equal(t, 9, res.ExploredNodes)
	assert.Equal(t, []grid.Position{P(0, 0), P(2, 2)}, res.VisitedOrder[:2])
}

// ------------------------------------------------------------------------
// 3. Weighted behavior.
// ------------------------------------------------------------------------

// TestWeighted_DetourBeatsDirect puts a heavy cell between start and goal.
//
//	S 5 G
//	. . .
func TestWeighted_DetourBeatsDirect(t *testing.T) {
	g := grid.MustNew(2, 3,
		grid.WithGoal(P(0, 2)),
		grid.WithWeights(map[grid.Position]float64{P(0, 1): 5}),
	)

	bfs := search.BFS(g)
	requireWellFormed(t, g, bfs)
	assert.Equal(t, []grid.Position{P(0, 0), P(0, 1), P(0, 2)}, bfs.Path)
	assert.Equal(t, 6.0, bfs.Cost)

	for _, fn := range []search.Func{search.UniformCost, search.AStar, search.IDAStar, search.BidirectionalAStar} {
		res := fn(g)
		requireWellFormed(t, g, res)
		assert.Equal(t, 4.0, res.Cost, res.Name)
		assert.Len(t, res.Path, 5, res.Name)
	}
}

// ------------------------------------------------------------------------
// 4. Properties over random connected grids.
// ------------------------------------------------------------------------

// TestProperty_Admissibility: UCS, A* and bidirectional A* agree on the
// optimal cost for admissible grids of several shapes.
func TestProperty_Admissibility(t *testing.T) {
	sizes := []struct{ rows, cols int }{{5, 5}, {8, 13}, {12, 12}, {20, 20}, {30, 17}}
	for _, sz := range sizes {
		for seed := int64(0); seed < 60; seed++ {
			g := randomConnected(t, sz.rows, sz.cols, seed)
			require.True(t, g.Admissible())

			ucs := search.UniformCost(g)
			astar := search.AStar(g)
			biastar := search.BidirectionalAStar(g)
			for _, res := range []search.Result{ucs, astar, biastar} {
				requireWellFormed(t, g, res)
			}
			assert.InDelta(t, ucs.Cost, astar.Cost, 1e-6, "%dx%d seed %d: A*", sz.rows, sz.cols, seed)
			assert.InDelta(t, ucs.Cost, biastar.Cost, 1e-6, "%dx%d seed %d: bidirectional A*", sz.rows, sz.cols, seed)
		}
	}
}

// TestBidirectionalAStar_NoEarlyStopOnSumOfKeys covers grids where the sum
// of both frontier minima reaches the first crossing before the cheapest
// crossing has been seen.
func TestBidirectionalAStar_NoEarlyStopOnSumOfKeys(t *testing.T) {
	cases := []struct {
		rows, cols int
		seed       int64
	}{{5, 5, 0}, {12, 12, 11}, {12, 12, 20}, {12, 12, 23}}
	for _, tc := range cases {
		g := randomConnected(t, tc.rows, tc.cols, tc.seed)
		ucs := search.UniformCost(g)
		res := search.BidirectionalAStar(g)
		requireWellFormed(t, g, res)
		assert.InDelta(t, ucs.Cost, res.Cost, 1e-6, "%dx%d seed %d", tc.rows, tc.cols, tc.seed)
	}
}

// TestProperty_IDAStarOptimal runs IDA* on small grids only; it revisits
// cells across branches and grows quickly with weighted grids.
func TestProperty_IDAStarOptimal(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := randomConnected(t, 5, 5, seed)
		ucs := search.UniformCost(g)
		ida := search.IDAStar(g)
		requireWellFormed(t, g, ida)
		assert.InDelta(t, ucs.Cost, ida.Cost, 1e-6, "seed %d", seed)
	}
}

// TestProperty_WellFormedAndHopShortest checks every algorithm's path and
// that no successful path is shorter in hops than BFS's.
func TestProperty_WellFormedAndHopShortest(t *testing.T) {
	for seed := int64(100); seed < 110; seed++ {
		g := randomConnected(t, 6, 6, seed)
		bfs := search.BFS(g)
		requireWellFormed(t, g, bfs)
		for _, a := range search.Algorithms() {
			res := a.Run(g)
			requireWellFormed(t, g, res)
			assert.LessOrEqual(t, len(bfs.Path), len(res.Path), "seed %d: %s", seed, a.Name)
		}
	}
}

// TestProperty_Idempotence runs every algorithm on two separate clones.
func TestProperty_Idempotence(t *testing.T) {
	g := randomConnected(t, 6, 6, 9)
	for _, a := range search.Algorithms() {
		r1 := a.Run(g.Clone())
		r2 := a.Run(g.Clone())
		assert.Equal(t, r1.Path, r2.Path, a.Name)
		assert.Equal(t, r1.Cost, r2.Cost, a.Name)
		assert.Equal(t, r1.ExploredNodes, r2.ExploredNodes, a.Name)
		assert.Equal(t, r1.VisitedOrder, r2.VisitedOrder, a.Name)
	}
}

// ------------------------------------------------------------------------
// 5. IDA* bounds.
// ------------------------------------------------------------------------

func TestIDAStar_BoundsNonDecreasing(t *testing.T) {
	// A wall forces several deepening rounds.
	//
	//	S . . .
	//	# # # .
	//	G . . .
	g := grid.MustNew(3, 4,
		grid.WithGoal(P(2, 0)),
		grid.WithObstacles(P(1, 0), P(1, 1), P(1, 2)),
	)
	var bounds []float64
	res := search.IDAStarWithBounds(g, func(b float64) { bounds = append(bounds, b) })
	requireWellFormed(t, g, res)
	assert.Equal(t, 8.0, res.Cost)
	assert.Equal(t, []float64{2, 4, 6, 8}, bounds)
	assert.IsNonDecreasing(t, bounds)
}

func TestIDAStar_NoPathTerminates(t *testing.T) {
	g := grid.MustNew(3, 3, grid.WithObstacles(P(0, 2), P(1, 1), P(2, 0)))
	var bounds []float64
	res := search.IDAStarWithBounds(g, func(b float64) { bounds = append(bounds, b) })
	assert.False(t, res.Success)
	assert.IsNonDecreasing(t, bounds)
	assert.Equal(t, 4.0, bounds[0])
	assert.Equal(t, 3, res.ExploredNodes)
}
