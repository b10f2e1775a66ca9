package search

import (
	"math"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Canonical algorithm names, as stamped on Result.Name.
const (
	NameBFS                = "BFS"
	NameDFS                = "DFS"
	NameUniformCost        = "Uniform Cost"
	NameGreedyBestFirst    = "Greedy Best-First"
	NameAStar              = "A*"
	NameIDAStar            = "IDA*"
	NameBidirectional      = "Bidirectional"
	NameBidirectionalAStar = "Bidirectional A*"
)

// Result is the outcome of one algorithm invocation. It is produced once
// and treated as immutable afterwards.
type Result struct {
	Name          string
	Path          []grid.Position // start..goal inclusive; empty on failure
	Cost          float64         // +Inf on failure
	ExploredNodes int
	Duration      time.Duration // stamped by TimedRun only
	Success       bool
	VisitedOrder  []grid.Position // discovery trace
}

// Func is a search strategy. Implementations must not mutate g.
type Func func(g *grid.Grid) Result

// Algorithm pairs a display name with its strategy.
type Algorithm struct {
	Name string
	Run  Func
}

// Algorithms returns the full suite in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{NameBFS, BFS},
		{NameDFS, DFS},
		{NameUniformCost, UniformCost},
		{NameGreedyBestFirst, GreedyBestFirst},
		{NameAStar, AStar},
		{NameIDAStar, IDAStar},
		{NameBidirectional, Bidirectional},
		{NameBidirectionalAStar, BidirectionalAStar},
	}
}

// Failed returns the placeholder substituted for an algorithm that could
// not produce a result.
func Failed(name string) Result {
	return Result{
		Name:         name,
		Path:         []grid.Position{},
		Cost:         math.Inf(1),
		VisitedOrder: []grid.Position{},
	}
}

// heuristic is the Manhattan distance, admissible when every walkable
// weight is at least grid.MinWeight.
func heuristic(a, b grid.Position) float64 {
	return a.Manhattan(b)
}
