package evaluator

import "github.com/katalvlaran/gridpath/search"

// Outcome is one finished evaluation batch.
type Outcome struct {
	BatchID string
	Results []search.Result // one per algorithm, sorted by name
	Best    *search.Result  // nil when no algorithm succeeded
	Order   PriorityOrder
}

// Rerank selects the best result under a different order. Nothing is
// re-run and the Outcome is not modified.
func (o *Outcome) Rerank(order PriorityOrder) (*search.Result, error) {
	return SelectBest(o.Results, order)
}

// Result returns the result of the named algorithm.
func (o *Outcome) Result(name string) (search.Result, bool) {
	for _, r := range o.Results {
		if r.Name == name {
			return r, true
		}
	}
	return search.Result{}, false
}

// Succeeded returns how many results found a path.
func (o *Outcome) Succeeded() int {
	n := 0
	for _, r := range o.Results {
		if r.Success {
			n++
		}
	}
	return n
}
