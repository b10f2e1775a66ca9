package evaluator_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/evaluator"
	"github.com/katalvlaran/gridpath/search"
)

func result(name string, cost float64, nodes int, secs float64) search.Result {
	return search.Result{
		Name:          name,
		Cost:          cost,
		ExploredNodes: nodes,
		Duration:      time.Duration(secs * float64(time.Second)),
		Success:       true,
	}
}

func order(t *testing.T, ss ...string) evaluator.PriorityOrder {
	t.Helper()
	o, err := evaluator.ParsePriorityOrder(ss)
	require.NoError(t, err)
	return o
}

func TestParseCriterion(t *testing.T) {
	for in, want := range map[string]evaluator.Criterion{
		"cost": evaluator.CriterionCost, " Nodes ": evaluator.CriterionNodes, "TIME": evaluator.CriterionTime,
	} {
		got, err := evaluator.ParseCriterion(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := evaluator.ParseCriterion("speed")
	assert.ErrorIs(t, err, evaluator.ErrUnknownCriterion)
}

func TestParsePriorityOrder(t *testing.T) {
	o := order(t, "nodes", "cost", "time")
	assert.Equal(t, evaluator.PriorityOrder{"nodes", "cost", "time"}, o)
	assert.Equal(t, "nodes,cost,time", o.String())

	cases := []struct {
		name string
		in   []string
		want error
	}{
		{"too few", []string{"cost", "nodes"}, evaluator.ErrInvalidPriorityOrder},
		{"too many", []string{"cost", "nodes", "time", "cost"}, evaluator.ErrInvalidPriorityOrder},
		{"repeated", []string{"cost", "cost", "time"}, evaluator.ErrInvalidPriorityOrder},
		{"unknown", []string{"cost", "speed", "time"}, evaluator.ErrUnknownCriterion},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := evaluator.ParsePriorityOrder(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPriorityOrder_Validate(t *testing.T) {
	assert.NoError(t, evaluator.DefaultPriorityOrder.Validate())
	assert.ErrorIs(t, evaluator.PriorityOrder{"cost", "nodes", "bogus"}.Validate(), evaluator.ErrUnknownCriterion)
	assert.ErrorIs(t, evaluator.PriorityOrder{}.Validate(), evaluator.ErrUnknownCriterion)
	assert.ErrorIs(t, evaluator.PriorityOrder{"time", "nodes", "time"}.Validate(), evaluator.ErrInvalidPriorityOrder)
}

func TestReorder(t *testing.T) {
	def := evaluator.DefaultPriorityOrder
	assert.Equal(t, evaluator.PriorityOrder{"time", "cost", "nodes"}, evaluator.Reorder(def, 2, 0))
	assert.Equal(t, evaluator.PriorityOrder{"nodes", "time", "cost"}, evaluator.Reorder(def, 0, 2))
	assert.Equal(t, evaluator.PriorityOrder{"nodes", "cost", "time"}, evaluator.Reorder(def, 1, 0))
	assert.Equal(t, def, evaluator.Reorder(def, 1, 1))
	assert.Equal(t, def, evaluator.Reorder(def, -1, 2))
	assert.Equal(t, def, evaluator.Reorder(def, 0, 3))
	// The input is a value and stays untouched.
	assert.Equal(t, evaluator.PriorityOrder{"cost", "nodes", "time"}, def)
}

func TestPermutations(t *testing.T) {
	perms := evaluator.Permutations()
	require.Len(t, perms, 6)
	assert.Equal(t, evaluator.DefaultPriorityOrder, perms[0])
	seen := map[evaluator.PriorityOrder]bool{}
	for _, p := range perms {
		assert.NoError(t, p.Validate())
		seen[p] = true
	}
	assert.Len(t, seen, 6)
}

func TestValue(t *testing.T) {
	r := result("X", 7.5, 42, 0.25)
	for c, want := range map[evaluator.Criterion]float64{
		evaluator.CriterionCost: 7.5, evaluator.CriterionNodes: 42, evaluator.CriterionTime: 0.25,
	} {
		got, err := evaluator.Value(r, c)
		require.NoError(t, err)
		assert.Equal(t, want, got, string(c))
	}
	_, err := evaluator.Value(r, "bogus")
	assert.ErrorIs(t, err, evaluator.ErrUnknownCriterion)
}

func TestScore_Less(t *testing.T) {
	assert.True(t, evaluator.Score{1, 9, 9}.Less(evaluator.Score{2, 0, 0}))
	assert.True(t, evaluator.Score{1, 2, 9}.Less(evaluator.Score{1, 3, 0}))
	assert.True(t, evaluator.Score{1, 2, 3}.Less(evaluator.Score{1, 2, 4}))
	assert.False(t, evaluator.Score{1, 2, 3}.Less(evaluator.Score{1, 2, 3}))
}

// TestSelectBest_ReRanking uses (cost, nodes, time) triples
// (10,50,0.1), (10,30,0.2) and (12,20,0.05). Expected winners are computed
// from the lexicographic order: nodes-first picks Third (20 nodes).
func TestSelectBest_ReRanking(t *testing.T) {
	results := []search.Result{
		result("First", 10, 50, 0.1),
		result("Second", 10, 30, 0.2),
		result("Third", 12, 20, 0.05),
	}

	cases := []struct {
		order []string
		want  string
	}{
		{[]string{"cost", "nodes", "time"}, "Second"}, // cost tie broken by nodes
		{[]string{"cost", "time", "nodes"}, "First"},  // cost tie broken by time
		{[]string{"nodes", "cost", "time"}, "Third"},
		{[]string{"time", "cost", "nodes"}, "Third"},
	}
	for _, tc := range cases {
		best, err := evaluator.SelectBest(results, order(t, tc.order...))
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, tc.want, best.Name, "%v", tc.order)
	}
}

func TestSelectBest_IgnoresFailures(t *testing.T) {
	failed := search.Failed("AlgoD")
	results := []search.Result{
		result("AlgoA", 10, 50, 0.1),
		result("AlgoB", 8, 100, 0.2),
		result("AlgoC", 12, 30, 0.05),
		failed, // zero nodes and zero time, but unsuccessful
	}

	best, err := evaluator.SelectBest(results, evaluator.DefaultPriorityOrder)
	require.NoError(t, err)
	assert.Equal(t, "AlgoB", best.Name)

	best, err = evaluator.SelectBest(results, order(t, "nodes", "cost", "time"))
	require.NoError(t, err)
	assert.Equal(t, "AlgoC", best.Name)

	best, err = evaluator.SelectBest(results, order(t, "time", "nodes", "cost"))
	require.NoError(t, err)
	assert.Equal(t, "AlgoC", best.Name)
}

func TestSelectBest_TieKeepsFirst(t *testing.T) {
	results := []search.Result{
		result("TieA", 10, 30, 0.1),
		result("TieB", 10, 30, 0.1),
	}
	best, err := evaluator.SelectBest(results, evaluator.DefaultPriorityOrder)
	require.NoError(t, err)
	assert.Equal(t, "TieA", best.Name)
	assert.Same(t, &results[0], best)
}

func TestSelectBest_NoneSucceeded(t *testing.T) {
	best, err := evaluator.SelectBest([]search.Result{search.Failed("A"), search.Failed("B")}, evaluator.DefaultPriorityOrder)
	require.NoError(t, err)
	assert.Nil(t, best)

	best, err = evaluator.SelectBest(nil, evaluator.DefaultPriorityOrder)
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestSelectBest_RejectsUnknownCriterion(t *testing.T) {
	results := []search.Result{result("A", 1, 1, 0)}
	_, err := evaluator.SelectBest(results, evaluator.PriorityOrder{"cost", "nodes", "latency"})
	assert.ErrorIs(t, err, evaluator.ErrUnknownCriterion)
}

func TestSelectBest_InfiniteCostStillRanks(t *testing.T) {
	// A successful result never carries +Inf cost, but ranking must not
	// depend on that.
	results := []search.Result{result("Inf", math.Inf(1), 1, 0), result("Finite", 3, 9, 0)}
	best, err := evaluator.SelectBest(results, evaluator.DefaultPriorityOrder)
	require.NoError(t, err)
	assert.Equal(t, "Finite", best.Name)
}
