// Package grid models a rectangular 2-D grid of weighted cells
// as the search space for the path-finding algorithms in package search.
//
// What:
//
//   - Position is a (Row, Col) pair used as a map key everywhere.
//   - Cell carries a movement Weight and an Obstacle flag.
//   - Grid stores cells sparsely: any cell absent from the map is DefaultCell
//     (weight 1.0, walkable).
//   - Start and Goal are always clamped into [0,Rows) × [0,Cols).
//
// Movement:
//
//   - 4-connectivity only. Neighbors are returned in the fixed order
//     up, down, left, right; algorithms rely on this order for tie-breaking.
//   - Cost(current, neighbor) is the weight of the destination cell: cost is
//     charged on entry, never on departure.
//
// Admissibility:
//
//   - The Manhattan heuristic used by A*, IDA* and bidirectional A* is only
//     admissible when every walkable cell weighs at least MinWeight (1.0).
//     Constructors accept lighter cells; Admissible reports whether the
//     invariant holds.
//
// Complexity:
//
//   - InBounds, IsWalkable, Weight, Cost: O(1) expected (map lookup).
//   - Neighbors: O(1), at most 4 results.
//   - Clone: O(K) where K is the number of stored (non-default) cells.
//   - Components: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols is not positive.
//   - ErrNegativeWeight: a weight below zero was supplied.
//   - ErrOutOfBounds: an edit targeted a position outside the grid.
//   - ErrInvalidRandomOptions: ratios or weight range are out of range.
//   - ErrNotConnected: Random could not produce a connected grid.
package grid
