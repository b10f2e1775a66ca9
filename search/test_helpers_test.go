package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// P is shorthand for grid.Pos in fixtures.
func P(r, c int) grid.Position { return grid.Pos(r, c) }

// requireWellFormed checks the path invariants of a successful result:
// it starts at Start, ends at Goal, moves between 4-neighbors only, never
// enters an obstacle, and its Cost matches PathCost.
func requireWellFormed(t *testing.T, g *grid.Grid, res search.Result) {
	t.Helper()
	require.True(t, res.Success, "%s: expected success", res.Name)
	require.NotEmpty(t, res.Path, "%s: empty path", res.Name)
	assert.Equal(t, g.Start(), res.Path[0], "%s: path must begin at start", res.Name)
	assert.Equal(t, g.Goal(), res.Path[len(res.Path)-1], "%s: path must end at goal", res.Name)
	for i, p := range res.Path {
		assert.True(t, g.IsWalkable(p), "%s: %s is not walkable", res.Name, p)
		if i > 0 {
			assert.True(t, res.Path[i-1].Adjacent(p), "%s: %s→%s is not a 4-move", res.Name, res.Path[i-1], p)
		}
	}
	assert.Equal(t, search.PathCost(g, res.Path), res.Cost, "%s: cost mismatch", res.Name)
	assert.Zero(t, res.Duration, "%s: algorithms never stamp duration", res.Name)
}

// randomConnected returns a connected, admissible random grid.
func randomConnected(t testing.TB, rows, cols int, seed int64) *grid.Grid {
	t.Helper()
	opts := grid.DefaultRandomOptions()
	opts.Seed = seed
	opts.EnsureConnected = true
	g, err := grid.Random(rows, cols, opts)
	require.NoError(t, err)
	return g
}
