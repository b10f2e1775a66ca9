// Package search implements eight classical path-finding strategies over a
// grid.Grid and the result utilities shared by all of them.
//
// Overview:
//
//   - BFS, DFS: uninformed traversals with visited-on-discovery marking.
//   - UniformCost: Dijkstra-style search keyed by cumulative cost g.
//   - GreedyBestFirst: keyed by the Manhattan heuristic h only.
//   - AStar: keyed by f = g + h.
//   - IDAStar: iterative deepening on an f-bound with an explicit path stack.
//   - Bidirectional: two BFS frontiers expanded layer by layer.
//   - BidirectionalAStar: two A* searches heading toward opposite anchors.
//
// Every algorithm is a Func: a pure function from *grid.Grid to Result that
// never mutates the grid. start == goal is an immediate success with a
// single-node path of cost 0.
//
// Result conventions:
//
//   - VisitedOrder records each node when it is first discovered
//     (enqueued, pushed or relaxed). It is a diagnostic trace for replay.
//   - ExploredNodes counts the distinct nodes each algorithm marks visited.
//   - Cost is PathCost of the returned path, rounded to 4 decimals, or +Inf
//     when Success is false.
//   - Duration is always zero here; TimedRun stamps it.
//
// Determinism:
//
//   - Heap-based algorithms order entries by a composite key: the primary
//     metric, then row-major position. Results are reproducible run to run.
//
// Complexity (V = R×C cells):
//
//   - BFS, DFS, Bidirectional: O(V) time and memory.
//   - UniformCost, GreedyBestFirst, AStar, BidirectionalAStar: O(V log V).
//   - IDAStar: exponential in the worst case, O(depth) path memory per probe.
package search
