// Package gridpath compares classical pathfinding strategies on weighted
// 2-D grids and picks the best result under a configurable ranking.
//
// 🚀 What is in the box?
//
//	• Grid model: 4-connected cells with weights, obstacles, start & goal
//	• Eight searches: BFS, DFS, Uniform Cost, Greedy Best-First, A*,
//	  IDA*, Bidirectional BFS, Bidirectional A*
//	• Evaluator: runs the whole suite concurrently on isolated clones and
//	  ranks results lexicographically by (cost, nodes, time) in any order
//	• Presets: an explicit registry of stock layouts, extendable from YAML
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/         Grid, Position, Cell; construction, editing, random grids
//	search/       the eight algorithms, Result, PathCost, TimedRun
//	evaluator/    concurrent batch runs, scoring, SelectBest, metrics & tracing
//	preset/       Registry, Builtin layouts, YAML loading
//	config/       env > file > defaults configuration, slog setup
//	cmd/gridpath  command-line front end (run, rank, presets)
//
// Quick start:
//
//	g, _ := preset.Builtin().Get(preset.Weighted)
//	e, _ := evaluator.New()
//	out, _ := e.Evaluate(ctx, g, evaluator.DefaultPriorityOrder)
//	fmt.Println(out.Best.Name, out.Best.Cost)
//
//	// Re-rank without re-running anything:
//	best, _ := out.Rerank(evaluator.PriorityOrder{"nodes", "cost", "time"})
package gridpath
