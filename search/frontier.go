package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// priorityKey is a frontier entry. Entries are totally ordered by value,
// then by position in row-major order (row, then col).
type priorityKey struct {
	value float64
	pos   grid.Position
}

// less implements the total order documented on priorityKey.
func (k priorityKey) less(o priorityKey) bool {
	if k.value != o.value {
		return k.value < o.value
	}
	return k.pos.Less(o.pos)
}

// frontier is a min-heap of priorityKey. Stale entries are tolerated:
// callers skip nodes that were finalized after the entry was pushed
// ("lazy decrease-key").
type frontier []priorityKey

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders entries by priorityKey.less.
func (f frontier) Less(i, j int) bool { return f[i].less(f[j]) }

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be a priorityKey.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(priorityKey)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

func (f *frontier) push(value float64, p grid.Position) {
	heap.Push(f, priorityKey{value: value, pos: p})
}

func (f *frontier) pop() priorityKey {
	return heap.Pop(f).(priorityKey)
}

// peek returns the smallest entry without removing it. f must be non-empty.
func (f frontier) peek() priorityKey {
	return f[0]
}
