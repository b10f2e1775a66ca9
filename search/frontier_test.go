package search

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/grid"
)

func TestFrontier_OrdersByValueThenRowMajor(t *testing.T) {
	f := &frontier{}
	heap.Init(f)
	f.push(2, grid.Pos(0, 0))
	f.push(1, grid.Pos(3, 0))
	f.push(1, grid.Pos(0, 3))
	f.push(1, grid.Pos(0, 1))
	f.push(0.5, grid.Pos(9, 9))

	assert.Equal(t, priorityKey{0.5, grid.Pos(9, 9)}, f.peek())

	var got []grid.Position
	for f.Len() > 0 {
		got = append(got, f.pop().pos)
	}
	assert.Equal(t, []grid.Position{
		grid.Pos(9, 9), grid.Pos(0, 1), grid.Pos(0, 3), grid.Pos(3, 0), grid.Pos(0, 0),
	}, got)
}

func TestParentMap_JoinAt(t *testing.T) {
	// start (0,0) → (0,1) → meet (0,2) ← (1,2) ← goal (2,2)
	fromStart := newParentMap(grid.Pos(0, 0), 4)
	fromStart[grid.Pos(0, 1)] = grid.Pos(0, 0)
	fromStart[grid.Pos(0, 2)] = grid.Pos(0, 1)

	fromGoal := newParentMap(grid.Pos(2, 2), 4)
	fromGoal[grid.Pos(1, 2)] = grid.Pos(2, 2)
	fromGoal[grid.Pos(0, 2)] = grid.Pos(1, 2)

	assert.Equal(t, []grid.Position{
		grid.Pos(0, 0), grid.Pos(0, 1), grid.Pos(0, 2), grid.Pos(1, 2), grid.Pos(2, 2),
	}, joinAt(grid.Pos(0, 2), fromStart, fromGoal))

	// Meeting at the goal itself contributes nothing from the goal side.
	fromStart[grid.Pos(1, 2)] = grid.Pos(0, 2)
	fromStart[grid.Pos(2, 2)] = grid.Pos(1, 2)
	assert.Equal(t, []grid.Position{
		grid.Pos(0, 0), grid.Pos(0, 1), grid.Pos(0, 2), grid.Pos(1, 2), grid.Pos(2, 2),
	}, joinAt(grid.Pos(2, 2), fromStart, fromGoal))
}
