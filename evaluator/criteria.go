package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for ranking.
var (
	// ErrUnknownCriterion indicates a criterion name outside {cost, nodes, time}.
	ErrUnknownCriterion = errors.New("evaluator: unknown criterion")

	// ErrInvalidPriorityOrder indicates an order that is not a permutation
	// of the three criteria.
	ErrInvalidPriorityOrder = errors.New("evaluator: priority order must be a permutation of cost, nodes, time")
)

// Criterion is one ranking dimension.
type Criterion string

const (
	CriterionCost  Criterion = "cost"  // Result.Cost
	CriterionNodes Criterion = "nodes" // Result.ExploredNodes
	CriterionTime  Criterion = "time"  // Result.Duration in seconds
)

// Criteria returns all criteria in default priority order.
func Criteria() []Criterion {
	return []Criterion{CriterionCost, CriterionNodes, CriterionTime}
}

// ParseCriterion maps a (case-insensitive, space-trimmed) name to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	c := Criterion(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CriterionCost, CriterionNodes, CriterionTime:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
}

// PriorityOrder is a permutation of the three criteria, most significant first.
type PriorityOrder [3]Criterion

// DefaultPriorityOrder ranks by cost, then explored nodes, then time.
var DefaultPriorityOrder = PriorityOrder{CriterionCost, CriterionNodes, CriterionTime}

// ParsePriorityOrder parses exactly three criterion names and validates
// that they form a permutation.
func ParsePriorityOrder(ss []string) (PriorityOrder, error) {
	var order PriorityOrder
	if len(ss) != len(order) {
		return order, fmt.Errorf("%w: got %d criteria", ErrInvalidPriorityOrder, len(ss))
	}
	for i, s := range ss {
		c, err := ParseCriterion(s)
		if err != nil {
			return PriorityOrder{}, err
		}
		order[i] = c
	}
	if err := order.Validate(); err != nil {
		return PriorityOrder{}, err
	}
	return order, nil
}

// Validate reports ErrUnknownCriterion for a foreign entry and
// ErrInvalidPriorityOrder for a repeated one.
func (o PriorityOrder) Validate() error {
	seen := make(map[Criterion]bool, len(o))
	for _, c := range o {
		switch c {
		case CriterionCost, CriterionNodes, CriterionTime:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownCriterion, string(c))
		}
		if seen[c] {
			return fmt.Errorf("%w: %q repeated", ErrInvalidPriorityOrder, string(c))
		}
		seen[c] = true
	}
	return nil
}

// String renders the order as "cost,nodes,time".
func (o PriorityOrder) String() string {
	return string(o[0]) + "," + string(o[1]) + "," + string(o[2])
}

// Reorder returns a copy of o with the criterion at index from moved to
// index to; entries in between shift by one. Out-of-range indices return
// o unchanged.
func Reorder(o PriorityOrder, from, to int) PriorityOrder {
	n := len(o)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return o
	}
	items := make([]Criterion, 0, n)
	for i, c := range o {
		if i != from {
			items = append(items, c)
		}
	}
	items = append(items[:to], append([]Criterion{o[from]}, items[to:]...)...)

	var out PriorityOrder
	copy(out[:], items)
	return out
}

// Permutations returns all six priority orders, starting with the default.
func Permutations() []PriorityOrder {
	cs := Criteria()
	out := make([]PriorityOrder, 0, 6)
	for i := range cs {
		for j := range cs {
			for k := range cs {
				if i != j && j != k && i != k {
					out = append(out, PriorityOrder{cs[i], cs[j], cs[k]})
				}
			}
		}
	}
	return out
}

// Value extracts criterion c from r.
func Value(r search.Result, c Criterion) (float64, error) {
	switch c {
	case CriterionCost:
		return r.Cost, nil
	case CriterionNodes:
		return float64(r.ExploredNodes), nil
	case CriterionTime:
		return r.Duration.Seconds(), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, string(c))
}

// Score is a result's criterion values in priority order.
type Score [3]float64

// Less compares lexicographically.
func (s Score) Less(o Score) bool {
	for i := range s {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return false
}

// ScoreOf builds the score of r under order.
func ScoreOf(r search.Result, order PriorityOrder) (Score, error) {
	var s Score
	for i, c := range order {
		v, err := Value(r, c)
		if err != nil {
			return Score{}, err
		}
		s[i] = v
	}
	return s, nil
}

// SelectBest returns a pointer to the successful result in results with the
// smallest score under order, or nil when none succeeded. Ties keep the
// earliest result. The input slice is not modified.
func SelectBest(results []search.Result, order PriorityOrder) (*search.Result, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	var (
		best      *search.Result
		bestScore Score
	)
	for i := range results {
		if !results[i].Success {
			continue
		}
		s, err := ScoreOf(results[i], order)
		if err != nil {
			return nil, err
		}
		if best == nil || s.Less(bestScore) {
			best, bestScore = &results[i], s
		}
	}
	return best, nil
}
