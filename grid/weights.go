package grid

import "math"

// DefaultWeightCycle is the sequence an editor steps through when a user
// repeatedly re-weights a cell.
var DefaultWeightCycle = []float64{1.0, 2.0, 3.0, 5.0, 10.0}

// NextWeight returns the value following current in cycle, wrapping around.
// If current is not in cycle the first value is returned; an empty cycle
// returns current unchanged.
func NextWeight(current float64, cycle ...float64) float64 {
	if len(cycle) == 0 {
		return current
	}
	for i, v := range cycle {
		if closeTo(current, v, 1e-9) {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// HasCustomWeights reports whether any walkable stored cell deviates from
// the default weight by more than tolerance.
func (g *Grid) HasCustomWeights(tolerance float64) bool {
	for _, c := range g.cells {
		if c.Obstacle {
			continue
		}
		if !closeTo(c.Weight, DefaultCell.Weight, tolerance) {
			return true
		}
	}
	return false
}

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
